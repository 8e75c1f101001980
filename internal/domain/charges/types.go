package charges

import "time"

type Status string

const (
	// StatusUnknown is the sentinel for charges the store has never seen.
	// The payment provider may simply not have called the webhook yet.
	StatusUnknown   Status = "unknown"
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusFailed    Status = "failed"
)

// Record tracks the lifecycle of a single provider charge. A record exists
// only once the provider has acknowledged the charge over the webhook.
type Record struct {
	ChargeID    string    `json:"charge_id"`
	ProductID   string    `json:"product_id"`
	Status      Status    `json:"status"`
	DownloadURL string    `json:"download_url,omitempty"`
	UpdatedAt   time.Time `json:"updated_at"`
}
