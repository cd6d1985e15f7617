package analytics

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/medsupply-ke/medsupply-backend/internal/memstore"
)

type memoryRepo struct {
	store *memstore.Store
}

// NewMemoryRepository creates an analytics repository backed by the shared
// in-memory store. Used by tests.
func NewMemoryRepository(store *memstore.Store) Repository {
	return &memoryRepo{store: store}
}

var committedStatuses = map[string]bool{
	"confirmed":        true,
	"out_for_delivery": true,
	"delivered":        true,
}

func (r *memoryRepo) SpendBetween(_ context.Context, facilityID uuid.UUID, start, end time.Time) (float64, int, error) {
	r.store.Lock()
	defer r.store.Unlock()

	var total float64
	var count int
	for _, o := range r.store.Orders {
		if o.FacilityID != facilityID {
			continue
		}
		if o.CreatedAt.Before(start) || !o.CreatedAt.Before(end) {
			continue
		}
		if !committedStatuses[o.Status] {
			continue
		}
		total += o.TotalAmount
		count++
	}
	return total, count, nil
}
