package needs

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines data access for facility needs.
type Repository interface {
	CreateNeeds(ctx context.Context, needs []*Need) error
	ListByFacility(ctx context.Context, facilityID uuid.UUID) ([]*Need, error)

	// BestMatch returns the cheapest product whose name contains name
	// (case-insensitive) with stock >= qty, or nil when none qualifies.
	BestMatch(ctx context.Context, name string, qty int) (*Match, error)
}
