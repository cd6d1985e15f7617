package needs

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/medsupply-ke/medsupply-backend/internal/memstore"
)

type memoryRepo struct {
	store *memstore.Store
}

// NewMemoryRepository creates a needs repository backed by the shared
// in-memory store. Used by tests.
func NewMemoryRepository(store *memstore.Store) Repository {
	return &memoryRepo{store: store}
}

func (r *memoryRepo) CreateNeeds(_ context.Context, needs []*Need) error {
	r.store.Lock()
	defer r.store.Unlock()
	now := time.Now().UTC()
	for i, n := range needs {
		n.CreatedAt = now.Add(time.Duration(i))
		r.store.Needs[n.ID] = &memstore.Need{
			ID:         n.ID,
			FacilityID: n.FacilityID,
			Name:       n.Name,
			Qty:        n.Qty,
			Cadence:    n.Cadence,
			CreatedAt:  n.CreatedAt,
		}
	}
	return nil
}

func (r *memoryRepo) ListByFacility(_ context.Context, facilityID uuid.UUID) ([]*Need, error) {
	r.store.Lock()
	defer r.store.Unlock()

	needs := make([]*Need, 0)
	for _, rec := range r.store.Needs {
		if rec.FacilityID != facilityID {
			continue
		}
		needs = append(needs, &Need{
			ID:         rec.ID,
			FacilityID: rec.FacilityID,
			Name:       rec.Name,
			Qty:        rec.Qty,
			Cadence:    rec.Cadence,
			CreatedAt:  rec.CreatedAt,
		})
	}
	sort.Slice(needs, func(i, j int) bool {
		return needs[i].CreatedAt.Before(needs[j].CreatedAt)
	})
	return needs, nil
}

func (r *memoryRepo) BestMatch(_ context.Context, name string, qty int) (*Match, error) {
	r.store.Lock()
	defer r.store.Unlock()

	var best *memstore.Product
	for _, p := range r.store.Products {
		if !strings.Contains(strings.ToLower(p.Name), strings.ToLower(name)) {
			continue
		}
		if p.Stock < qty {
			continue
		}
		if best == nil || p.Price < best.Price {
			best = p
		}
	}
	if best == nil {
		return nil, nil
	}

	m := &Match{
		Product: ProductRef{ID: best.ID, Price: best.Price, Stock: best.Stock},
	}
	if v, ok := r.store.Accounts[best.VendorID]; ok {
		m.Vendor = VendorRef{ID: v.ID, Name: v.Name}
	}
	return m, nil
}
