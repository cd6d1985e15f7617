package inventory

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
)

type postgresRepo struct{ db *sql.DB }

// NewPostgresRepository creates a new PostgreSQL inventory repository.
func NewPostgresRepository(db *sql.DB) Repository { return &postgresRepo{db: db} }

func (r *postgresRepo) StockLevels(ctx context.Context, vendorID uuid.UUID) ([]*StockLevel, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, stock, min_threshold, last_updated
		FROM products
		WHERE vendor_id = $1
		ORDER BY stock ASC, name ASC`, vendorID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	levels := make([]*StockLevel, 0)
	for rows.Next() {
		l := &StockLevel{}
		if err := rows.Scan(&l.ProductID, &l.Name, &l.Stock, &l.MinThreshold, &l.LastUpdated); err != nil {
			return nil, err
		}
		l.Low = l.Stock < l.MinThreshold
		levels = append(levels, l)
	}
	return levels, rows.Err()
}
