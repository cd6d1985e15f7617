package analytics

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Repository defines the spend aggregation query.
type Repository interface {
	// SpendBetween sums total_amount and counts the facility's orders
	// created in [start, end) whose status is one of the committed
	// statuses (confirmed, out_for_delivery, delivered).
	SpendBetween(ctx context.Context, facilityID uuid.UUID, start, end time.Time) (total float64, count int, err error)
}
