package catalog

import (
	"time"

	"github.com/google/uuid"
)

// Product is a supply item owned by exactly one vendor. Stock is mutated
// only by committed order placements.
type Product struct {
	ID           uuid.UUID `json:"id"`
	VendorID     uuid.UUID `json:"vendor_id"`
	Name         string    `json:"name"`
	Category     string    `json:"category"`
	SKU          string    `json:"sku,omitempty"`
	Price        float64   `json:"price"`
	Stock        int       `json:"stock"`
	Unit         string    `json:"unit"`
	MinThreshold int       `json:"min_threshold"`
	WarehouseLat *float64  `json:"warehouse_lat,omitempty"`
	WarehouseLon *float64  `json:"warehouse_lon,omitempty"`
	LastUpdated  time.Time `json:"last_updated"`
}

// VendorIdentity is the public slice of a vendor account joined onto
// catalog listings.
type VendorIdentity struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Verified bool      `json:"verified"`
}

// Listing is a catalog search result: a product plus its vendor's public
// identity.
type Listing struct {
	ID     uuid.UUID      `json:"id"`
	Name   string         `json:"name"`
	Price  float64        `json:"price"`
	Stock  int            `json:"stock"`
	Vendor VendorIdentity `json:"vendor"`
}

// Sort keys accepted by the listing endpoint.
const (
	SortByPrice  = "price"
	SortByVendor = "vendor"
)

// Filter narrows and orders a product listing.
type Filter struct {
	NameQuery string
	VendorID  string
	SortBy    string
}

// CreateProductRequest is the payload for adding a product to the catalog.
type CreateProductRequest struct {
	Name         string   `json:"name"`
	Category     string   `json:"category"`
	SKU          string   `json:"sku"`
	Price        float64  `json:"price"`
	Stock        int      `json:"stock"`
	Unit         string   `json:"unit"`
	MinThreshold *int     `json:"min_threshold"`
	WarehouseLat *float64 `json:"warehouse_lat"`
	WarehouseLon *float64 `json:"warehouse_lon"`
}
