package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"basestation/internal/commerce"
	"basestation/internal/domain/charges"
	"basestation/internal/domain/orders"
	"basestation/internal/downloads"
	"basestation/internal/ratelimiter"
	"basestation/internal/tax"

	"go.uber.org/zap"
)

const testWebhookSecret = "whsec_test"

type stubGateway struct {
	resp commerce.ChargeResponse
	err  error
}

func (s stubGateway) CreateCharge(ctx context.Context, req commerce.ChargeRequest) (commerce.ChargeResponse, error) {
	return s.resp, s.err
}

type stubTaxService struct {
	rate        *tax.Rate
	rateErr     error
	estimate    *tax.Estimate
	estimateErr error
}

func (s stubTaxService) Rate(ctx context.Context, zip string) (*tax.Rate, error) {
	return s.rate, s.rateErr
}

func (s stubTaxService) Estimate(ctx context.Context, req tax.EstimateRequest) (*tax.Estimate, error) {
	return s.estimate, s.estimateErr
}

func newTestApplication(t *testing.T) *application {
	t.Helper()

	signer, err := downloads.NewSigner("test-download-secret", "https://shop.example.com", "basestation", time.Hour)
	if err != nil {
		t.Fatal(err)
	}

	gateways := commerce.NewManager()
	gateways.RegisterGateway("coinbase", stubGateway{resp: commerce.ChargeResponse{ChargeID: "ch_test"}})

	return &application{
		config: config{
			addr: ":0",
			env:  "test",
			auth: authConfig{basic: basicConfig{user: "admin", pass: "admin"}},
			commerce: commerceConfig{
				webhookSecret: testWebhookSecret,
				provider:      "coinbase",
			},
			rateLimiter: ratelimiter.Config{Enabled: false},
		},
		logger:  zap.NewNop().Sugar(),
		charges: charges.NewMemoryStore(),
		gateways: gateways,
		tax: stubTaxService{
			rate:     &tax.Rate{Zip: "92093", State: "CA", CombinedRate: 0.0775},
			estimate: &tax.Estimate{AmountToCollect: 0.08, Rate: 0.0775},
		},
		signer:      signer,
		orderRefs:   orders.NewReferenceGenerator("test-download-secret"),
		rateLimiter: ratelimiter.NewFixedWindowLimiter(1000, time.Hour),
	}
}

func executeRequest(req *http.Request, mux http.Handler) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)
	return rr
}

func checkResponseCode(t *testing.T, expected, actual int) {
	t.Helper()
	if expected != actual {
		t.Errorf("Expected response code %d. Got %d", expected, actual)
	}
}
