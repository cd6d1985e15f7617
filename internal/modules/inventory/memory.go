package inventory

import (
	"context"
	"sort"

	"github.com/google/uuid"

	"github.com/medsupply-ke/medsupply-backend/internal/memstore"
)

type memoryRepo struct {
	store *memstore.Store
}

// NewMemoryRepository creates an inventory repository backed by the shared
// in-memory store. Used by tests.
func NewMemoryRepository(store *memstore.Store) Repository {
	return &memoryRepo{store: store}
}

func (r *memoryRepo) StockLevels(_ context.Context, vendorID uuid.UUID) ([]*StockLevel, error) {
	r.store.Lock()
	defer r.store.Unlock()

	levels := make([]*StockLevel, 0)
	for _, p := range r.store.Products {
		if p.VendorID != vendorID {
			continue
		}
		levels = append(levels, &StockLevel{
			ProductID:    p.ID,
			Name:         p.Name,
			Stock:        p.Stock,
			MinThreshold: p.MinThreshold,
			Low:          p.Stock < p.MinThreshold,
			LastUpdated:  p.LastUpdated,
		})
	}
	sort.Slice(levels, func(i, j int) bool {
		if levels[i].Stock != levels[j].Stock {
			return levels[i].Stock < levels[j].Stock
		}
		return levels[i].Name < levels[j].Name
	})
	return levels, nil
}
