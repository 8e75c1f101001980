package poller

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Client is the HTTP StatusClient against the storefront's charge-status
// endpoint.
type Client struct {
	BaseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *Client) ChargeStatus(ctx context.Context, chargeID string) (*StatusResult, error) {
	endpoint := fmt.Sprintf("%s/v1/store/payments/charge-status?chargeId=%s", c.BaseURL, url.QueryEscape(chargeID))

	req, _ := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("charge status request: %w", err)
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("charge status failed: http=%d body=%s", resp.StatusCode, string(raw))
	}

	var res struct {
		Status      string `json:"status"`
		DownloadURL string `json:"downloadUrl"`
	}
	if err := json.Unmarshal(raw, &res); err != nil {
		return nil, fmt.Errorf("charge status decode: %w body=%s", err, string(raw))
	}

	return &StatusResult{Status: res.Status, DownloadURL: res.DownloadURL}, nil
}
