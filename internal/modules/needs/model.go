package needs

import (
	"time"

	"github.com/google/uuid"
)

// Need is a facility's declared recurring demand for an item. It only feeds
// procurement recommendations; nothing reorders automatically on its behalf.
type Need struct {
	ID         uuid.UUID `json:"id"`
	FacilityID uuid.UUID `json:"facility_id"`
	Name       string    `json:"name"`
	Qty        int       `json:"qty"`
	Cadence    string    `json:"cadence"`
	CreatedAt  time.Time `json:"created_at"`
}

// Subscription links a facility to a vendor for future auto-ordering.
// The entity is persisted but no workflow consumes it yet.
type Subscription struct {
	ID           uuid.UUID `json:"id"`
	FacilityID   uuid.UUID `json:"facility_id"`
	VendorID     uuid.UUID `json:"vendor_id"`
	AutoOrderQty *int      `json:"auto_order_qty,omitempty"`
	Cadence      string    `json:"cadence"`
	Active       bool      `json:"active"`
}

// NeedRequest is one entry of a needs upload.
type NeedRequest struct {
	Name    string `json:"name"`
	Qty     int    `json:"qty"`
	Cadence string `json:"cadence"`
}

// Recommendation matches a stored need against the catalog. Vendor and
// Product are nil when no product qualifies.
type Recommendation struct {
	Need    string      `json:"need"`
	Vendor  *VendorRef  `json:"vendor"`
	Product *ProductRef `json:"product,omitempty"`
}

// VendorRef identifies the vendor offering a recommended product.
type VendorRef struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// ProductRef identifies a recommended product with its current price and
// stock.
type ProductRef struct {
	ID    uuid.UUID `json:"id"`
	Price float64   `json:"price"`
	Stock int       `json:"stock"`
}

// Match pairs a qualifying product with its vendor.
type Match struct {
	Vendor  VendorRef
	Product ProductRef
}
