package charges

import (
	"context"
	"errors"
)

var ErrEmptyChargeID = errors.New("charge id is required")

// Store is the single source of truth for charge lifecycle. The webhook
// handler writes, the status endpoint reads; both may run concurrently.
//
// Invariants every implementation must keep:
//   - Set is an upsert and is observed by subsequent Gets immediately.
//   - DownloadURL is set at most once and never cleared: once a record
//     carries one, later Sets keep it regardless of the incoming value.
//   - Get returns (nil, nil) for absent charges. Absence is an expected
//     outcome, not an error.
type Store interface {
	Set(ctx context.Context, rec *Record) error
	Get(ctx context.Context, chargeID string) (*Record, error)
}
