package inventory

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines data access for inventory reporting.
type Repository interface {
	// StockLevels returns every product the vendor owns, lowest stock first.
	StockLevels(ctx context.Context, vendorID uuid.UUID) ([]*StockLevel, error)
}
