package commerce

import "context"

// Gateway defines a common interface for all crypto commerce providers
type Gateway interface {
	CreateCharge(ctx context.Context, req ChargeRequest) (ChargeResponse, error)
}
