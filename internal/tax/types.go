package tax

import "context"

// Rate is the jurisdiction rate for a destination ZIP. CombinedRate is the
// authoritative figure used for the quote; the provider returns it as a
// decimal fraction (0.0775 for 7.75%).
type Rate struct {
	Zip          string
	State        string
	CombinedRate float64
}

type EstimateRequest struct {
	ToZip   string
	ToState string
	Amount  float64
}

// Estimate is the provider's own tax calculation. It is fetched alongside
// the rate lookup; the rate lookup stays the source of the quoted figures.
type Estimate struct {
	AmountToCollect float64
	Rate            float64
}

type Service interface {
	Rate(ctx context.Context, zip string) (*Rate, error)
	Estimate(ctx context.Context, req EstimateRequest) (*Estimate, error)
}
