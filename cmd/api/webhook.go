package main

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"basestation/internal/commerce"
	"basestation/internal/domain/charges"
	"basestation/internal/domain/products"
	"basestation/internal/mailer"
)

type WebhookResponse struct {
	Received    bool   `json:"received"`
	ProductID   string `json:"productId,omitempty"`
	Status      string `json:"status,omitempty"`
	DownloadURL string `json:"downloadUrl,omitempty"`
}

// coinbaseWebhookHandler godoc
//
//	@Summary		Payment provider webhook
//	@Description	Receives signed charge lifecycle events from the commerce provider
//	@Tags			Payments
//	@Accept			json
//	@Produce		json
//	@Param			x-cc-webhook-signature	header		string	true	"HMAC-SHA256 of the raw body"
//	@Success		200						{object}	WebhookResponse
//	@Failure		400						{object}	error	"Missing or invalid signature"
//	@Failure		500						{object}	error	"Webhook handler failed"
//	@Router			/store/payments/coinbase/webhook [post]
func (app *application) coinbaseWebhookHandler(w http.ResponseWriter, r *http.Request) {
	sig := r.Header.Get("x-cc-webhook-signature")
	if sig == "" {
		app.badRequestResponse(w, r, fmt.Errorf("No signature"))
		return
	}

	// The signature covers the exact raw body, so read it before decoding.
	rawBody, err := io.ReadAll(http.MaxBytesReader(w, r.Body, 1_048_578))
	if err != nil {
		app.badRequestResponse(w, r, fmt.Errorf("failed to read request body"))
		return
	}

	if !commerce.VerifySignature(app.config.commerce.webhookSecret, rawBody, sig) {
		app.badRequestResponse(w, r, fmt.Errorf("Invalid signature"))
		return
	}

	var event commerce.WebhookEvent
	if err := json.Unmarshal(rawBody, &event); err != nil {
		app.badRequestResponse(w, r, fmt.Errorf("invalid event payload"))
		return
	}

	chargeID := event.Event.Data.ID
	productID := event.Event.Data.Metadata["productId"]

	app.logger.Infow("webhook received",
		"event_id", event.Event.ID,
		"event_type", event.Event.Type,
		"charge_id", chargeID,
		"product_id", productID,
	)

	switch event.Event.Type {
	case commerce.EventChargePending:
		downloadURL, err := app.provisionDownload(productID)
		if err != nil {
			// Track the charge anyway; the confirmed event gets
			// another chance to provision the link.
			app.logger.Errorw("download provisioning failed", "charge_id", chargeID, "product_id", productID, "error", err.Error())
		}

		rec := &charges.Record{
			ChargeID:    chargeID,
			ProductID:   productID,
			Status:      charges.StatusPending,
			DownloadURL: downloadURL,
		}
		if err := app.charges.Set(r.Context(), rec); err != nil {
			app.webhookFailure(w, r, err)
			return
		}

		app.jsonResponse(w, http.StatusOK, WebhookResponse{
			Received:    true,
			ProductID:   productID,
			Status:      string(charges.StatusPending),
			DownloadURL: downloadURL,
		})
		return

	case commerce.EventChargeConfirmed, commerce.EventChargeResolved:
		existing, err := app.charges.Get(r.Context(), chargeID)
		if err != nil {
			app.webhookFailure(w, r, err)
			return
		}

		rec := &charges.Record{
			ChargeID:  chargeID,
			ProductID: productID,
			Status:    charges.StatusConfirmed,
		}
		if existing != nil {
			if rec.ProductID == "" {
				rec.ProductID = existing.ProductID
			}
			rec.DownloadURL = existing.DownloadURL
		}
		// The pending event may never have arrived.
		if rec.DownloadURL == "" {
			url, err := app.provisionDownload(rec.ProductID)
			if err != nil {
				app.logger.Errorw("download provisioning failed", "charge_id", chargeID, "product_id", rec.ProductID, "error", err.Error())
			}
			rec.DownloadURL = url
		}

		if err := app.charges.Set(r.Context(), rec); err != nil {
			app.webhookFailure(w, r, err)
			return
		}

		app.sendReceipt(event, rec)

		app.jsonResponse(w, http.StatusOK, WebhookResponse{Received: true})
		return

	case commerce.EventChargeFailed:
		rec := &charges.Record{
			ChargeID:  chargeID,
			ProductID: productID,
			Status:    charges.StatusFailed,
		}
		if err := app.charges.Set(r.Context(), rec); err != nil {
			app.webhookFailure(w, r, err)
			return
		}

		app.jsonResponse(w, http.StatusOK, WebhookResponse{Received: true})
		return

	default:
		// Acknowledged, no state change.
		app.jsonResponse(w, http.StatusOK, WebhookResponse{Received: true})
		return
	}
}

func (app *application) webhookFailure(w http.ResponseWriter, r *http.Request, err error) {
	app.logger.Errorw("webhook handler failed", "method", r.Method, "path", r.URL.Path, "error", err.Error())
	writeJSONError(w, http.StatusInternalServerError, "Webhook handler failed")
}

// provisionDownload derives the signed download link for a product.
func (app *application) provisionDownload(productID string) (string, error) {
	product := products.Find(productID)
	if product == nil {
		return "", fmt.Errorf("unknown product %q in charge metadata", productID)
	}
	return app.signer.SignURL(product.ID, product.FileID)
}

// sendReceipt emails the buyer the download link once the charge is
// confirmed. Best-effort: the charge metadata may not carry an email, and a
// send failure only gets logged.
func (app *application) sendReceipt(event commerce.WebhookEvent, rec *charges.Record) {
	if app.mailer == nil {
		return
	}
	email := event.Event.Data.Metadata["email"]
	if email == "" || rec.DownloadURL == "" {
		return
	}

	product := products.Find(rec.ProductID)
	if product == nil {
		return
	}

	go func() {
		status, err := app.mailer.Send(mailer.ReceiptTemplate, event.Event.Data.Metadata["name"], email, map[string]any{
			"Username":     event.Event.Data.Metadata["name"],
			"ProductTitle": product.Title,
			"DownloadURL":  rec.DownloadURL,
			"OrderRef":     event.Event.Data.Metadata["orderRef"],
		})
		if err != nil {
			app.logger.Errorw("receipt email failed", "charge_id", rec.ChargeID, "error", err.Error())
			return
		}
		app.logger.Infow("receipt email sent", "charge_id", rec.ChargeID, "status_code", status)
	}()
}
