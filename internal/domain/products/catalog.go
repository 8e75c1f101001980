package products

// The catalog is static: a handful of digital files, compiled in. There is
// no admin surface for it, so a database table would only add moving parts.
var catalog = []Product{
	{
		ID:       "1",
		Title:    "Floating Base Logos Animation",
		Preview:  "A smooth, interactive animation component featuring floating Base logos with wave motion and screen wrapping.",
		Price:    1.00,
		FileType: "tsx",
		FileSize: "4.2KB",
		Features: []string{
			"Smooth Wave Motion",
			"GPU Accelerated",
			"Screen Edge Wrapping",
			"Configurable Parameters",
			"React/Next.js Component",
		},
		FileID: 1,
	},
}

// All returns every product in the catalog.
func All() []Product {
	out := make([]Product, len(catalog))
	copy(out, catalog)
	return out
}

// Find returns the product with the given id, or nil if it is not in the
// catalog.
func Find(id string) *Product {
	for i := range catalog {
		if catalog[i].ID == id {
			p := catalog[i]
			return &p
		}
	}
	return nil
}
