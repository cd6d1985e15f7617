package catalog

import "context"

// listLimit caps how many products a single listing query returns.
const listLimit = 500

// Repository defines data access for the product catalog.
type Repository interface {
	Create(ctx context.Context, p *Product) error
	GetByID(ctx context.Context, id string) (*Product, error)

	// List returns up to 500 listings matching the filter, each joined with
	// the owning vendor's public identity, ordered by the filter's sort key.
	List(ctx context.Context, f Filter) ([]*Listing, error)
}
