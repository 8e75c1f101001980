package main

import (
	"fmt"
	"net/http"

	"basestation/internal/domain/products"

	"github.com/go-chi/chi/v5"
)

type DownloadResponse struct {
	ProductID string `json:"product_id"`
	Title     string `json:"title"`
	FileType  string `json:"file_type"`
	FileSize  string `json:"file_size"`
}

// redeemDownloadHandler godoc
//
//	@Summary		Redeem a download link
//	@Description	Validates a signed download reference and serves the file metadata
//	@Tags			Store
//	@Produce		json
//	@Param			ref		path		string	true	"Download reference"
//	@Param			token	query		string	true	"Signed download token"
//	@Success		200		{object}	DownloadResponse
//	@Failure		401		{object}	error	"Invalid or expired download token"
//	@Failure		404		{object}	error	"Product not found"
//	@Router			/store/downloads/{ref} [get]
func (app *application) redeemDownloadHandler(w http.ResponseWriter, r *http.Request) {
	ref := chi.URLParam(r, "ref")
	token := r.URL.Query().Get("token")
	if token == "" {
		app.unauthorizedResponse(w, r, fmt.Errorf("download token is required"))
		return
	}

	productID, fileID, err := app.signer.Verify(ref, token)
	if err != nil {
		app.unauthorizedResponse(w, r, err)
		return
	}

	product := products.Find(productID)
	if product == nil || product.FileID != fileID {
		app.notFoundResponse(w, r, fmt.Errorf("Product not found"))
		return
	}

	resp := DownloadResponse{
		ProductID: product.ID,
		Title:     product.Title,
		FileType:  product.FileType,
		FileSize:  product.FileSize,
	}

	if err := app.jsonResponse(w, http.StatusOK, resp); err != nil {
		app.internalServerError(w, r, err)
	}
}
