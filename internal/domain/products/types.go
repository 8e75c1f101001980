package products

// Product is a single digital deliverable sold by the storefront.
// Prices are in USD. FileID is the internal handle the downloads signer
// encodes into download references; it never leaves the server raw.
type Product struct {
	ID       string   `json:"id"`
	Title    string   `json:"title"`
	Preview  string   `json:"preview"`
	Price    float64  `json:"price"`
	FileType string   `json:"file_type"`
	FileSize string   `json:"file_size"`
	Features []string `json:"features"`
	FileID   int64    `json:"-"`
}
