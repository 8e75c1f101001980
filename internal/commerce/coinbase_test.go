package commerce

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestCoinbaseCreateCharge(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/charges" || r.Method != http.MethodPost {
			t.Fatalf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		if r.Header.Get("X-CC-Api-Key") != "key_test" {
			t.Fatalf("missing api key header")
		}
		if r.Header.Get("X-CC-Version") != coinbaseAPIVersion {
			t.Fatalf("missing api version header")
		}

		var payload struct {
			Name        string            `json:"name"`
			PricingType string            `json:"pricing_type"`
			LocalPrice  map[string]string `json:"local_price"`
			Metadata    map[string]string `json:"metadata"`
		}
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			t.Fatalf("decode payload: %v", err)
		}
		if payload.PricingType != "fixed_price" {
			t.Fatalf("expected fixed_price, got %q", payload.PricingType)
		}
		if payload.LocalPrice["amount"] != "1.08" || payload.LocalPrice["currency"] != "USD" {
			t.Fatalf("unexpected local_price: %v", payload.LocalPrice)
		}
		if payload.Metadata["productId"] != "1" {
			t.Fatalf("expected productId metadata, got %v", payload.Metadata)
		}

		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"data":{"id":"ch_abc","hosted_url":"https://commerce/pay/ch_abc","expires_at":"2026-09-01T00:00:00Z"}}`))
	}))
	defer srv.Close()

	adapter := NewCoinbaseAdapter("key_test", srv.URL)
	resp, err := adapter.CreateCharge(context.Background(), ChargeRequest{
		Name:     "Floating Base Logos Animation",
		Amount:   1.08,
		Metadata: map[string]string{"productId": "1"},
	})
	if err != nil {
		t.Fatalf("create charge: %v", err)
	}
	if resp.ChargeID != "ch_abc" {
		t.Fatalf("expected ch_abc, got %q", resp.ChargeID)
	}
	if resp.HostedURL == "" {
		t.Fatal("expected hosted url")
	}
}

func TestCoinbaseCreateChargeSurfacesProviderMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":{"type":"invalid_request","message":"Amount is too small"}}`))
	}))
	defer srv.Close()

	adapter := NewCoinbaseAdapter("key_test", srv.URL)
	_, err := adapter.CreateCharge(context.Background(), ChargeRequest{Name: "x", Amount: 0.0001})
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "Amount is too small") {
		t.Fatalf("expected provider message to surface, got %v", err)
	}
}

func TestManagerUnknownGateway(t *testing.T) {
	m := NewManager()
	_, err := m.CreateCharge(context.Background(), "coinbase", ChargeRequest{})
	if err == nil || !strings.Contains(err.Error(), "gateway not registered") {
		t.Fatalf("expected gateway not registered error, got %v", err)
	}
}

type fakeGateway struct{ resp ChargeResponse }

func (f fakeGateway) CreateCharge(ctx context.Context, req ChargeRequest) (ChargeResponse, error) {
	return f.resp, nil
}

func TestManagerDispatch(t *testing.T) {
	m := NewManager()
	m.RegisterGateway("coinbase", fakeGateway{resp: ChargeResponse{ChargeID: "ch_1"}})

	resp, err := m.CreateCharge(context.Background(), "coinbase", ChargeRequest{})
	if err != nil {
		t.Fatal(err)
	}
	if resp.ChargeID != "ch_1" {
		t.Fatalf("expected ch_1, got %q", resp.ChargeID)
	}
}
