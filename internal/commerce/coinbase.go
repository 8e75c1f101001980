package commerce

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

const coinbaseAPIVersion = "2018-03-22"

type CoinbaseAdapter struct {
	APIKey     string
	APIBase    string
	httpClient *http.Client
}

func NewCoinbaseAdapter(apiKey, apiBase string) *CoinbaseAdapter {
	if apiBase == "" {
		apiBase = "https://api.commerce.coinbase.com"
	}
	return &CoinbaseAdapter{
		APIKey:     apiKey,
		APIBase:    strings.TrimRight(apiBase, "/"),
		httpClient: http.DefaultClient,
	}
}

func (c *CoinbaseAdapter) CreateCharge(ctx context.Context, req ChargeRequest) (ChargeResponse, error) {
	currency := req.Currency
	if currency == "" {
		currency = "USD"
	}

	payload := map[string]any{
		"name":         req.Name,
		"description":  req.Description,
		"pricing_type": "fixed_price",
		"local_price": map[string]string{
			"amount":   fmt.Sprintf("%.2f", req.Amount),
			"currency": currency,
		},
		"metadata": req.Metadata,
	}

	body, _ := json.Marshal(payload)

	httpReq, _ := http.NewRequestWithContext(ctx, http.MethodPost, c.APIBase+"/charges", bytes.NewBuffer(body))
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("X-CC-Api-Key", c.APIKey)
	httpReq.Header.Set("X-CC-Version", coinbaseAPIVersion)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return ChargeResponse{}, fmt.Errorf("coinbase create charge request: %w", err)
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(resp.Body)

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		// Surface the provider's own message where it gives one.
		var apiErr struct {
			Error struct {
				Type    string `json:"type"`
				Message string `json:"message"`
			} `json:"error"`
		}
		if err := json.Unmarshal(raw, &apiErr); err == nil && apiErr.Error.Message != "" {
			return ChargeResponse{}, fmt.Errorf("coinbase create charge: %s", apiErr.Error.Message)
		}
		return ChargeResponse{}, fmt.Errorf("coinbase create charge failed: http=%d body=%s", resp.StatusCode, string(raw))
	}

	var res struct {
		Data struct {
			ID        string `json:"id"`
			HostedURL string `json:"hosted_url"`
			ExpiresAt string `json:"expires_at"`
		} `json:"data"`
	}
	if err := json.Unmarshal(raw, &res); err != nil {
		return ChargeResponse{}, fmt.Errorf("coinbase create charge decode: %w body=%s", err, string(raw))
	}
	if res.Data.ID == "" {
		return ChargeResponse{}, fmt.Errorf("coinbase create charge: empty charge id in response")
	}

	return ChargeResponse{
		ChargeID:  res.Data.ID,
		HostedURL: res.Data.HostedURL,
		ExpiresAt: res.Data.ExpiresAt,
	}, nil
}
