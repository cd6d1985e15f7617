package order

import (
	"time"

	"github.com/google/uuid"
)

// Status represents the lifecycle state of an order.
type Status string

const (
	StatusPending        Status = "pending"
	StatusConfirmed      Status = "confirmed"
	StatusOutForDelivery Status = "out_for_delivery"
	StatusDelivered      Status = "delivered"
	StatusCancelled      Status = "cancelled"
)

// validTransitions defines the allowed lifecycle moves. Delivered and
// cancelled are terminal.
var validTransitions = map[Status][]Status{
	StatusPending:        {StatusConfirmed, StatusCancelled},
	StatusConfirmed:      {StatusOutForDelivery, StatusCancelled},
	StatusOutForDelivery: {StatusDelivered},
	StatusDelivered:      {},
	StatusCancelled:      {},
}

// CanTransition reports whether an order may move from current to next.
func CanTransition(current, next Status) bool {
	for _, s := range validTransitions[current] {
		if s == next {
			return true
		}
	}
	return false
}

// Order is a facility's purchase from a single vendor. Every item must
// reference a product owned by VendorID; the constraint is enforced at
// placement and never revisited.
type Order struct {
	ID          uuid.UUID    `json:"id"`
	FacilityID  uuid.UUID    `json:"facility_id"`
	VendorID    uuid.UUID    `json:"vendor_id"`
	Status      Status       `json:"status"`
	TotalAmount float64      `json:"total_amount"`
	Emergency   bool         `json:"emergency"`
	CreatedAt   time.Time    `json:"created_at"`
	Items       []*OrderItem `json:"items,omitempty"`

	// Counterpart identities, populated on listing.
	Facility *Party `json:"facility,omitempty"`
	Vendor   *Party `json:"vendor,omitempty"`
}

// OrderItem is an immutable line item. UnitPrice is a point-in-time copy of
// the product price at order time, not a live reference, so later price
// changes never affect historical orders.
type OrderItem struct {
	ID        uuid.UUID `json:"id"`
	OrderID   uuid.UUID `json:"order_id"`
	ProductID uuid.UUID `json:"product_id"`
	Qty       int       `json:"qty"`
	UnitPrice float64   `json:"unit_price"`
}

// Party is the display identity of a facility or vendor on a listed order.
type Party struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// ItemRequest names a product and quantity in a placement request.
type ItemRequest struct {
	ProductID string `json:"product_id"`
	Qty       int    `json:"qty"`
}

// PlaceOrderRequest is the payload for placing an order. Emergency orders
// bypass the stock check and leave stock untouched.
type PlaceOrderRequest struct {
	Items     []ItemRequest `json:"items"`
	Emergency bool          `json:"emergency"`
}

// UpdateStatusRequest is the payload for moving an order along its lifecycle.
type UpdateStatusRequest struct {
	Status string `json:"status"`
}
