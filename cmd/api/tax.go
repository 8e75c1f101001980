package main

import (
	"context"
	"fmt"
	"math"
	"net/http"
	"time"

	"basestation/internal/domain/products"
	"basestation/internal/tax"
)

type CalculateTaxRequest struct {
	ProductID string `json:"productId" validate:"required"`
	ZipCode   string `json:"zipCode" validate:"required,uszip"`
}

type CalculateTaxResponse struct {
	TaxRate     float64 `json:"taxRate"`
	TaxAmount   float64 `json:"taxAmount"`
	TotalAmount float64 `json:"totalAmount"`
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// calculateTaxHandler godoc
//
//	@Summary		Calculate sales tax
//	@Description	Quotes sales tax for a product shipped to a ZIP code
//	@Tags			Store
//	@Accept			json
//	@Produce		json
//	@Param			payload	body		CalculateTaxRequest	true	"Product and destination"
//	@Success		200		{object}	CalculateTaxResponse
//	@Failure		400		{object}	error	"Missing required fields"
//	@Failure		404		{object}	error	"Product not found"
//	@Failure		500		{object}	error	"Failed to calculate tax"
//	@Router			/store/tax/calculate [post]
func (app *application) calculateTaxHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 15*time.Second)
	defer cancel()

	var payload CalculateTaxRequest
	if err := readJSON(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(payload); err != nil {
		app.badRequestResponse(w, r, fmt.Errorf("Missing required fields"))
		return
	}

	product := products.Find(payload.ProductID)
	if product == nil {
		app.notFoundResponse(w, r, fmt.Errorf("Product not found"))
		return
	}

	// Jurisdiction rate for the destination; this is the quoted figure.
	rate, err := app.tax.Rate(ctx, payload.ZipCode)
	if err != nil {
		app.upstreamErrorResponse(w, r, "Failed to calculate tax", err)
		return
	}

	// Full nexus-aware calculation; logged for reconciliation, the
	// combined rate above stays authoritative for the quote.
	estimate, err := app.tax.Estimate(ctx, tax.EstimateRequest{
		ToZip:   payload.ZipCode,
		ToState: rate.State,
		Amount:  product.Price,
	})
	if err != nil {
		app.upstreamErrorResponse(w, r, "Failed to calculate tax", err)
		return
	}

	taxAmount := round2(product.Price * rate.CombinedRate)
	totalAmount := round2(product.Price + taxAmount)

	app.logger.Infow("tax quote",
		"product_id", product.ID,
		"zip", payload.ZipCode,
		"combined_rate", rate.CombinedRate,
		"provider_estimate", estimate.AmountToCollect,
		"tax_amount", taxAmount,
	)

	resp := CalculateTaxResponse{
		TaxRate:     round2(rate.CombinedRate * 100),
		TaxAmount:   taxAmount,
		TotalAmount: totalAmount,
	}

	if err := app.jsonResponse(w, http.StatusOK, resp); err != nil {
		app.internalServerError(w, r, err)
	}
}
