package analytics

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
)

type postgresRepo struct{ db *sql.DB }

// NewPostgresRepository creates a new PostgreSQL analytics repository.
func NewPostgresRepository(db *sql.DB) Repository { return &postgresRepo{db: db} }

func (r *postgresRepo) SpendBetween(ctx context.Context, facilityID uuid.UUID, start, end time.Time) (float64, int, error) {
	var total float64
	var count int
	err := r.db.QueryRowContext(ctx, `
		SELECT COALESCE(SUM(total_amount), 0), COUNT(*)
		FROM orders
		WHERE facility_id = $1
		  AND created_at >= $2 AND created_at < $3
		  AND status IN ('confirmed', 'out_for_delivery', 'delivered')`,
		facilityID, start, end).Scan(&total, &count)
	return total, count, err
}
