package needs

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

type postgresRepo struct{ db *sql.DB }

// NewPostgresRepository creates a new PostgreSQL needs repository.
func NewPostgresRepository(db *sql.DB) Repository { return &postgresRepo{db: db} }

func (r *postgresRepo) CreateNeeds(ctx context.Context, needs []*Need) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, n := range needs {
		if err := tx.QueryRowContext(ctx, `
			INSERT INTO needs (id, facility_id, name, qty, cadence)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING created_at`,
			n.ID, n.FacilityID, n.Name, n.Qty, n.Cadence).Scan(&n.CreatedAt); err != nil {
			return fmt.Errorf("insert need: %w", err)
		}
	}
	return tx.Commit()
}

func (r *postgresRepo) ListByFacility(ctx context.Context, facilityID uuid.UUID) ([]*Need, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, facility_id, name, qty, cadence, created_at
		FROM needs WHERE facility_id = $1 ORDER BY created_at ASC`, facilityID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	needs := make([]*Need, 0)
	for rows.Next() {
		n := &Need{}
		if err := rows.Scan(&n.ID, &n.FacilityID, &n.Name, &n.Qty, &n.Cadence, &n.CreatedAt); err != nil {
			return nil, err
		}
		needs = append(needs, n)
	}
	return needs, rows.Err()
}

func (r *postgresRepo) BestMatch(ctx context.Context, name string, qty int) (*Match, error) {
	m := &Match{}
	err := r.db.QueryRowContext(ctx, `
		SELECT p.id, p.price, p.stock, u.id, u.name
		FROM products p
		JOIN users u ON u.id = p.vendor_id
		WHERE p.name ILIKE '%' || $1 || '%' AND p.stock >= $2
		ORDER BY p.price ASC
		LIMIT 1`, name, qty).Scan(
		&m.Product.ID, &m.Product.Price, &m.Product.Stock, &m.Vendor.ID, &m.Vendor.Name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return m, nil
}
