package tax

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
)

// Seller nexus is a fixed part of the provider contract: a single US
// location the tax jurisdiction is computed against.
const (
	nexusCountry = "US"
	nexusZip     = "92093"
	nexusState   = "CA"
	nexusCity    = "La Jolla"
	nexusStreet  = "9500 Gilman Drive"

	// Product tax code for digital goods.
	digitalGoodsTaxCode = "31000"
)

type Client struct {
	APIKey     string
	APIBase    string
	httpClient *http.Client
}

func NewClient(apiKey, apiBase string) *Client {
	if apiBase == "" {
		apiBase = "https://api.taxjar.com/v2"
	}
	return &Client{
		APIKey:     apiKey,
		APIBase:    strings.TrimRight(apiBase, "/"),
		httpClient: http.DefaultClient,
	}
}

func (c *Client) Rate(ctx context.Context, zip string) (*Rate, error) {
	httpReq, _ := http.NewRequestWithContext(ctx, http.MethodGet, c.APIBase+"/rates/"+zip, nil)
	httpReq.Header.Set("Authorization", "Bearer "+c.APIKey)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("tax rate request: %w", err)
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("tax rate lookup failed: http=%d body=%s", resp.StatusCode, string(raw))
	}

	// The provider returns rates as decimal strings.
	var res struct {
		Rate struct {
			Zip          string `json:"zip"`
			State        string `json:"state"`
			CombinedRate string `json:"combined_rate"`
		} `json:"rate"`
	}
	if err := json.Unmarshal(raw, &res); err != nil {
		return nil, fmt.Errorf("tax rate decode: %w body=%s", err, string(raw))
	}

	combined, err := strconv.ParseFloat(res.Rate.CombinedRate, 64)
	if err != nil {
		return nil, fmt.Errorf("tax rate parse %q: %w", res.Rate.CombinedRate, err)
	}

	return &Rate{
		Zip:          res.Rate.Zip,
		State:        res.Rate.State,
		CombinedRate: combined,
	}, nil
}

func (c *Client) Estimate(ctx context.Context, req EstimateRequest) (*Estimate, error) {
	payload := map[string]any{
		"from_country": nexusCountry,
		"from_zip":     nexusZip,
		"from_state":   nexusState,
		"to_country":   nexusCountry,
		"to_zip":       req.ToZip,
		"to_state":     req.ToState,
		"amount":       req.Amount,
		"shipping":     0,
		"nexus_addresses": []map[string]string{{
			"id":      "Main Location",
			"country": nexusCountry,
			"zip":     nexusZip,
			"state":   nexusState,
			"city":    nexusCity,
			"street":  nexusStreet,
		}},
		"line_items": []map[string]any{{
			"id":               "1",
			"quantity":         1,
			"unit_price":       req.Amount,
			"product_tax_code": digitalGoodsTaxCode,
		}},
	}

	body, _ := json.Marshal(payload)

	httpReq, _ := http.NewRequestWithContext(ctx, http.MethodPost, c.APIBase+"/taxes", bytes.NewBuffer(body))
	httpReq.Header.Set("Authorization", "Bearer "+c.APIKey)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("tax estimate request: %w", err)
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("tax estimate failed: http=%d body=%s", resp.StatusCode, string(raw))
	}

	var res struct {
		Tax struct {
			AmountToCollect float64 `json:"amount_to_collect"`
			Rate            float64 `json:"rate"`
		} `json:"tax"`
	}
	if err := json.Unmarshal(raw, &res); err != nil {
		return nil, fmt.Errorf("tax estimate decode: %w body=%s", err, string(raw))
	}

	return &Estimate{
		AmountToCollect: res.Tax.AmountToCollect,
		Rate:            res.Tax.Rate,
	}, nil
}
