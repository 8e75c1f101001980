package main

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"basestation/internal/commerce"
	"basestation/internal/domain/charges"
	"basestation/internal/domain/products"
)

type CreateChargeRequest struct {
	ProductID   string  `json:"productId" validate:"required"`
	TotalAmount float64 `json:"totalAmount" validate:"required,gt=0"`
	TaxAmount   float64 `json:"taxAmount" validate:"gte=0"`
}

type CreateChargeResponse struct {
	ChargeID string `json:"chargeId"`
}

type ChargeStatusResponse struct {
	Status      string `json:"status"`
	DownloadURL string `json:"downloadUrl,omitempty"`
}

// createChargeHandler godoc
//
//	@Summary		Create a payment charge
//	@Description	Creates a crypto charge with the commerce provider for a product plus tax
//	@Tags			Payments
//	@Accept			json
//	@Produce		json
//	@Param			payload	body		CreateChargeRequest	true	"Product and amounts"
//	@Success		200		{object}	CreateChargeResponse
//	@Failure		400		{object}	error	"Missing required fields"
//	@Failure		404		{object}	error	"Product not found"
//	@Failure		500		{object}	error	"Failed to create charge"
//	@Router			/store/payments/charges [post]
func (app *application) createChargeHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 15*time.Second)
	defer cancel()

	var payload CreateChargeRequest
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

	orderRef := app.orderRefs.Generate(product.ID)

	resp, err := app.gateways.CreateCharge(ctx, app.config.commerce.provider, commerce.ChargeRequest{
		Name:        product.Title,
		Description: fmt.Sprintf("%s (includes $%.2f tax)", product.Title, payload.TaxAmount),
		Amount:      payload.TotalAmount,
		Currency:    "USD",
		Metadata: map[string]string{
			"productId": product.ID,
			"taxAmount": fmt.Sprintf("%.2f", payload.TaxAmount),
			"basePrice": fmt.Sprintf("%.2f", product.Price),
			"orderRef":  orderRef,
		},
	})
	if err != nil {
		app.upstreamErrorResponse(w, r, "Failed to create charge", err)
		return
	}

	app.logger.Infow("charge created",
		"charge_id", resp.ChargeID,
		"product_id", product.ID,
		"order_ref", orderRef,
		"total_amount", payload.TotalAmount,
	)

	if err := app.jsonResponse(w, http.StatusOK, CreateChargeResponse{ChargeID: resp.ChargeID}); err != nil {
		app.internalServerError(w, r, err)
	}
}

// chargeStatusHandler godoc
//
//	@Summary		Check charge status
//	@Description	Polled by the checkout page until the download link is ready
//	@Tags			Payments
//	@Produce		json
//	@Param			chargeId	query		string	true	"Charge ID"
//	@Success		200			{object}	ChargeStatusResponse
//	@Failure		400			{object}	error	"No charge ID provided"
//	@Router			/store/payments/charge-status [get]
func (app *application) chargeStatusHandler(w http.ResponseWriter, r *http.Request) {
	chargeID := r.URL.Query().Get("chargeId")
	if chargeID == "" {
		app.badRequestResponse(w, r, fmt.Errorf("No charge ID provided"))
		return
	}

	rec, err := app.charges.Get(r.Context(), chargeID)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	// The webhook may simply not have arrived yet.
	if rec == nil {
		app.jsonResponse(w, http.StatusOK, ChargeStatusResponse{Status: string(charges.StatusUnknown)})
		return
	}

	resp := ChargeStatusResponse{
		Status:      string(rec.Status),
		DownloadURL: rec.DownloadURL,
	}

	if err := app.jsonResponse(w, http.StatusOK, resp); err != nil {
		app.internalServerError(w, r, err)
	}
}
