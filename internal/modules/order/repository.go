package order

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines data access for orders.
//
// CreateOrder carries the stock-consistency guarantee of the whole system:
// implementations must resolve each item's product, enforce the same-vendor
// constraint, check and decrement stock (unless the order is an emergency),
// snapshot unit prices, and persist the order with its items as one
// all-or-nothing unit. Relational implementations must rely on the store's
// own locking so concurrent placements against the same product can never
// both pass the stock check.
type Repository interface {
	// CreateOrder validates and commits o against the catalog. On success
	// o.VendorID, o.TotalAmount, o.Items and o.CreatedAt are populated.
	// On any failure nothing is committed.
	CreateOrder(ctx context.Context, o *Order, items []ItemRequest) error

	GetOrderByID(ctx context.Context, id string) (*Order, error)

	UpdateStatus(ctx context.Context, id uuid.UUID, next Status) error

	// Listings are newest first and enriched with counterpart identities.
	ListByFacility(ctx context.Context, facilityID uuid.UUID) ([]*Order, error)
	ListByVendor(ctx context.Context, vendorID uuid.UUID) ([]*Order, error)
	ListAll(ctx context.Context) ([]*Order, error)

	// VendorEmail resolves the notification recipient for an order's vendor.
	VendorEmail(ctx context.Context, vendorID uuid.UUID) (string, error)

	// PickupPoint returns the warehouse coordinates of the order's first
	// item's product, zero-valued where the warehouse has no location.
	PickupPoint(ctx context.Context, orderID string) (lat, lon float64, err error)
}
