package charges

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Querier is the slice of pgxpool.Pool the repository needs, so it can run
// against a pool, a tx, or a mock.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Repository is the durable Store backing. COALESCE on download_url keeps
// the first provisioned link through any later webhook replays.
type Repository struct{ q Querier }

func NewRepository(q Querier) *Repository { return &Repository{q: q} }

func (r *Repository) Set(ctx context.Context, rec *Record) error {
	if rec == nil || rec.ChargeID == "" {
		return ErrEmptyChargeID
	}

	_, err := r.q.Exec(ctx, `
		INSERT INTO charge_statuses (charge_id, product_id, status, download_url, updated_at)
		VALUES ($1, $2, $3, NULLIF($4,''), now())
		ON CONFLICT (charge_id) DO UPDATE
		   SET product_id   = EXCLUDED.product_id,
		       status       = EXCLUDED.status,
		       download_url = COALESCE(charge_statuses.download_url, EXCLUDED.download_url),
		       updated_at   = now()
	`, rec.ChargeID, rec.ProductID, string(rec.Status), rec.DownloadURL)
	if err != nil {
		return fmt.Errorf("set charge status: %w", err)
	}
	return nil
}

func (r *Repository) Get(ctx context.Context, chargeID string) (*Record, error) {
	var (
		rec Record
		url *string
	)
	err := r.q.QueryRow(ctx, `
		SELECT charge_id, product_id, status, download_url, updated_at
		  FROM charge_statuses
		 WHERE charge_id = $1
	`, chargeID).Scan(&rec.ChargeID, &rec.ProductID, &rec.Status, &url, &rec.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get charge status: %w", err)
	}
	if url != nil {
		rec.DownloadURL = *url
	}
	return &rec, nil
}
