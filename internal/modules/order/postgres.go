package order

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/medsupply-ke/medsupply-backend/internal/apperror"
)

type postgresRepo struct{ db *sql.DB }

// NewPostgresRepository creates a new PostgreSQL order repository.
func NewPostgresRepository(db *sql.DB) Repository { return &postgresRepo{db: db} }

// CreateOrder runs the placement as a single transaction. Product rows are
// locked with SELECT ... FOR UPDATE so concurrent placements against the
// same product serialize on the stock check; any failure rolls back every
// decrement and item insert performed earlier in the call.
func (r *postgresRepo) CreateOrder(ctx context.Context, o *Order, items []ItemRequest) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var pending []*OrderItem
	var total float64
	for i, it := range items {
		pid, err := uuid.Parse(it.ProductID)
		if err != nil {
			return invalidProductErr(i)
		}

		var vendorID uuid.UUID
		var name string
		var price float64
		var stock int
		err = tx.QueryRowContext(ctx, `
			SELECT vendor_id, name, price, stock
			FROM products WHERE id = $1
			FOR UPDATE`, pid).Scan(&vendorID, &name, &price, &stock)
		if errors.Is(err, sql.ErrNoRows) {
			return invalidProductErr(i)
		}
		if err != nil {
			return err
		}

		if i == 0 {
			o.VendorID = vendorID
		} else if vendorID != o.VendorID {
			return apperror.BusinessRule("all items must be from same vendor")
		}

		if !o.Emergency {
			if stock < it.Qty {
				return apperror.BusinessRule("not enough stock for %s", name)
			}
			if _, err := tx.ExecContext(ctx, `
				UPDATE products SET stock = stock - $1, last_updated = now()
				WHERE id = $2`, it.Qty, pid); err != nil {
				return fmt.Errorf("decrement stock: %w", err)
			}
		}

		pending = append(pending, &OrderItem{
			ID: uuid.New(), OrderID: o.ID, ProductID: pid, Qty: it.Qty, UnitPrice: price,
		})
		total += price * float64(it.Qty)
	}

	if err := tx.QueryRowContext(ctx, `
		INSERT INTO orders (id, facility_id, vendor_id, status, total_amount, emergency)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at`,
		o.ID, o.FacilityID, o.VendorID, o.Status, total, o.Emergency).Scan(&o.CreatedAt); err != nil {
		return fmt.Errorf("insert order: %w", err)
	}
	for _, item := range pending {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO order_items (id, order_id, product_id, qty, unit_price)
			VALUES ($1, $2, $3, $4, $5)`,
			item.ID, item.OrderID, item.ProductID, item.Qty, item.UnitPrice); err != nil {
			return fmt.Errorf("insert order_item: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return err
	}
	o.TotalAmount = total
	o.Items = pending
	return nil
}

func (r *postgresRepo) GetOrderByID(ctx context.Context, id string) (*Order, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, apperror.NotFound("order not found")
	}
	o := &Order{}
	err = r.db.QueryRowContext(ctx, `
		SELECT id, facility_id, vendor_id, status, total_amount, emergency, created_at
		FROM orders WHERE id = $1`, uid).Scan(
		&o.ID, &o.FacilityID, &o.VendorID, &o.Status, &o.TotalAmount, &o.Emergency, &o.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperror.NotFound("order not found")
	}
	if err != nil {
		return nil, err
	}
	o.Items, err = r.listItems(ctx, o.ID)
	return o, err
}

func (r *postgresRepo) UpdateStatus(ctx context.Context, id uuid.UUID, next Status) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE orders SET status = $1 WHERE id = $2`, next, id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return apperror.NotFound("order not found")
	}
	return nil
}

const listQuery = `
	SELECT o.id, o.facility_id, o.vendor_id, o.status, o.total_amount, o.emergency, o.created_at,
	       f.name, v.name
	FROM orders o
	JOIN users f ON f.id = o.facility_id
	JOIN users v ON v.id = o.vendor_id`

func (r *postgresRepo) ListByFacility(ctx context.Context, facilityID uuid.UUID) ([]*Order, error) {
	return r.queryOrders(ctx, listQuery+` WHERE o.facility_id = $1 ORDER BY o.created_at DESC`, facilityID)
}

func (r *postgresRepo) ListByVendor(ctx context.Context, vendorID uuid.UUID) ([]*Order, error) {
	return r.queryOrders(ctx, listQuery+` WHERE o.vendor_id = $1 ORDER BY o.created_at DESC`, vendorID)
}

func (r *postgresRepo) ListAll(ctx context.Context) ([]*Order, error) {
	return r.queryOrders(ctx, listQuery+` ORDER BY o.created_at DESC`)
}

func (r *postgresRepo) VendorEmail(ctx context.Context, vendorID uuid.UUID) (string, error) {
	var email string
	err := r.db.QueryRowContext(ctx,
		`SELECT email FROM users WHERE id = $1`, vendorID).Scan(&email)
	if errors.Is(err, sql.ErrNoRows) {
		return "", apperror.NotFound("vendor not found")
	}
	return email, err
}

func (r *postgresRepo) PickupPoint(ctx context.Context, orderID string) (float64, float64, error) {
	uid, err := uuid.Parse(orderID)
	if err != nil {
		return 0, 0, apperror.NotFound("order not found")
	}

	var exists bool
	if err := r.db.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM orders WHERE id = $1)`, uid).Scan(&exists); err != nil {
		return 0, 0, err
	}
	if !exists {
		return 0, 0, apperror.NotFound("order not found")
	}

	var lat, lon float64
	err = r.db.QueryRowContext(ctx, `
		SELECT COALESCE(p.warehouse_lat, 0), COALESCE(p.warehouse_lon, 0)
		FROM order_items oi
		JOIN products p ON p.id = oi.product_id
		WHERE oi.order_id = $1
		ORDER BY oi.created_at ASC
		LIMIT 1`, uid).Scan(&lat, &lon)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, 0, apperror.BusinessRule("no items")
	}
	return lat, lon, err
}

func (r *postgresRepo) listItems(ctx context.Context, orderID uuid.UUID) ([]*OrderItem, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, order_id, product_id, qty, unit_price
		FROM order_items WHERE order_id = $1 ORDER BY created_at ASC`, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []*OrderItem
	for rows.Next() {
		item := &OrderItem{}
		if err := rows.Scan(&item.ID, &item.OrderID, &item.ProductID, &item.Qty, &item.UnitPrice); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (r *postgresRepo) queryOrders(ctx context.Context, query string, args ...interface{}) ([]*Order, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]*Order, 0)
	for rows.Next() {
		o := &Order{}
		var facilityName, vendorName sql.NullString
		if err := rows.Scan(&o.ID, &o.FacilityID, &o.VendorID, &o.Status,
			&o.TotalAmount, &o.Emergency, &o.CreatedAt,
			&facilityName, &vendorName); err != nil {
			return nil, err
		}
		o.Facility = &Party{ID: o.FacilityID, Name: facilityName.String}
		o.Vendor = &Party{ID: o.VendorID, Name: vendorName.String}
		orders = append(orders, o)
	}
	return orders, rows.Err()
}

// invalidProductErr mirrors the distinction the placement contract draws
// between a bad first item and a bad later item.
func invalidProductErr(index int) error {
	if index == 0 {
		return apperror.BusinessRule("invalid product")
	}
	return apperror.BusinessRule("product not found")
}
