package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/medsupply-ke/medsupply-backend/internal/apperror"
)

type postgresRepo struct{ db *sql.DB }

// NewPostgresRepository creates a new PostgreSQL catalog repository.
func NewPostgresRepository(db *sql.DB) Repository { return &postgresRepo{db: db} }

func (r *postgresRepo) Create(ctx context.Context, p *Product) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO products
		  (id, vendor_id, name, category, sku, price, stock, unit, min_threshold, warehouse_lat, warehouse_lon)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)`,
		p.ID, p.VendorID, p.Name, p.Category, p.SKU, p.Price, p.Stock,
		p.Unit, p.MinThreshold, p.WarehouseLat, p.WarehouseLon)
	if err != nil {
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

func (r *postgresRepo) GetByID(ctx context.Context, id string) (*Product, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, apperror.NotFound("product not found")
	}
	p := &Product{}
	var sku sql.NullString
	err = r.db.QueryRowContext(ctx, `
		SELECT id, vendor_id, name, category, sku, price, stock, unit, min_threshold,
		       warehouse_lat, warehouse_lon, last_updated
		FROM products WHERE id = $1`, uid).Scan(
		&p.ID, &p.VendorID, &p.Name, &p.Category, &sku, &p.Price, &p.Stock,
		&p.Unit, &p.MinThreshold, &p.WarehouseLat, &p.WarehouseLon, &p.LastUpdated)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperror.NotFound("product not found")
	}
	if err != nil {
		return nil, err
	}
	p.SKU = sku.String
	return p, nil
}

func (r *postgresRepo) List(ctx context.Context, f Filter) ([]*Listing, error) {
	query := `
		SELECT p.id, p.name, p.price, p.stock, u.id, u.name, u.verified
		FROM products p
		JOIN users u ON u.id = p.vendor_id
		WHERE 1=1`
	args := []interface{}{}
	if f.NameQuery != "" {
		args = append(args, "%"+f.NameQuery+"%")
		query += fmt.Sprintf(" AND p.name ILIKE $%d", len(args))
	}
	if f.VendorID != "" {
		args = append(args, f.VendorID)
		query += fmt.Sprintf(" AND p.vendor_id = $%d::uuid", len(args))
	}
	switch f.SortBy {
	case SortByVendor:
		query += " ORDER BY p.vendor_id ASC"
	default:
		query += " ORDER BY p.price ASC"
	}
	query += fmt.Sprintf(" LIMIT %d", listLimit)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	listings := make([]*Listing, 0)
	for rows.Next() {
		l := &Listing{}
		var vendorName sql.NullString
		if err := rows.Scan(&l.ID, &l.Name, &l.Price, &l.Stock,
			&l.Vendor.ID, &vendorName, &l.Vendor.Verified); err != nil {
			return nil, err
		}
		l.Vendor.Name = vendorName.String
		listings = append(listings, l)
	}
	return listings, rows.Err()
}
