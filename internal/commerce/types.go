package commerce

type ChargeRequest struct {
	Name        string
	Description string
	Amount      float64
	Currency    string
	Metadata    map[string]string
}

type ChargeResponse struct {
	ChargeID  string
	HostedURL string
	ExpiresAt string
}

// Webhook event types the provider delivers. Anything else is acknowledged
// without a state change.
const (
	EventChargePending   = "charge:pending"
	EventChargeConfirmed = "charge:confirmed"
	EventChargeResolved  = "charge:resolved"
	EventChargeFailed    = "charge:failed"
)

// WebhookEvent is the provider's event envelope.
type WebhookEvent struct {
	Event struct {
		ID   string `json:"id"`
		Type string `json:"type"`
		Data struct {
			ID       string            `json:"id"`
			Metadata map[string]string `json:"metadata"`
		} `json:"data"`
	} `json:"event"`
}
