package main

import (
	"fmt"
	"net/http"

	"basestation/internal/domain/products"

	"github.com/go-chi/chi/v5"
)

// listProductsHandler godoc
//
//	@Summary		List products
//	@Description	Returns the storefront catalog
//	@Tags			Store
//	@Produce		json
//	@Success		200	{array}	products.Product
//	@Router			/store/products [get]
func (app *application) listProductsHandler(w http.ResponseWriter, r *http.Request) {
	if err := app.jsonResponse(w, http.StatusOK, products.All()); err != nil {
		app.internalServerError(w, r, err)
	}
}

// getProductHandler godoc
//
//	@Summary		Get a product
//	@Description	Returns one catalog product by id
//	@Tags			Store
//	@Produce		json
//	@Param			productID	path		string	true	"Product ID"
//	@Success		200			{object}	products.Product
//	@Failure		404			{object}	error	"Product not found"
//	@Router			/store/products/{productID} [get]
func (app *application) getProductHandler(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "productID")

	product := products.Find(productID)
	if product == nil {
		app.notFoundResponse(w, r, fmt.Errorf("Product not found"))
		return
	}

	if err := app.jsonResponse(w, http.StatusOK, product); err != nil {
		app.internalServerError(w, r, err)
	}
}
