package catalog

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/medsupply-ke/medsupply-backend/internal/apperror"
	"github.com/medsupply-ke/medsupply-backend/internal/memstore"
)

type memoryRepo struct {
	store *memstore.Store
}

// NewMemoryRepository creates a catalog repository backed by the shared
// in-memory store. Used by tests.
func NewMemoryRepository(store *memstore.Store) Repository {
	return &memoryRepo{store: store}
}

func (r *memoryRepo) Create(_ context.Context, p *Product) error {
	r.store.Lock()
	defer r.store.Unlock()
	if p.LastUpdated.IsZero() {
		p.LastUpdated = time.Now().UTC()
	}
	r.store.Products[p.ID] = &memstore.Product{
		ID:           p.ID,
		VendorID:     p.VendorID,
		Name:         p.Name,
		Category:     p.Category,
		SKU:          p.SKU,
		Price:        p.Price,
		Stock:        p.Stock,
		Unit:         p.Unit,
		MinThreshold: p.MinThreshold,
		WarehouseLat: p.WarehouseLat,
		WarehouseLon: p.WarehouseLon,
		LastUpdated:  p.LastUpdated,
	}
	return nil
}

func (r *memoryRepo) GetByID(_ context.Context, id string) (*Product, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, apperror.NotFound("product not found")
	}
	r.store.Lock()
	defer r.store.Unlock()
	rec, ok := r.store.Products[uid]
	if !ok {
		return nil, apperror.NotFound("product not found")
	}
	return fromProductRecord(rec), nil
}

func (r *memoryRepo) List(_ context.Context, f Filter) ([]*Listing, error) {
	r.store.Lock()
	defer r.store.Unlock()

	listings := make([]*Listing, 0)
	for _, p := range r.store.Products {
		if f.NameQuery != "" && !strings.Contains(strings.ToLower(p.Name), strings.ToLower(f.NameQuery)) {
			continue
		}
		if f.VendorID != "" && p.VendorID.String() != f.VendorID {
			continue
		}
		l := &Listing{ID: p.ID, Name: p.Name, Price: p.Price, Stock: p.Stock}
		if v, ok := r.store.Accounts[p.VendorID]; ok {
			l.Vendor = VendorIdentity{ID: v.ID, Name: v.Name, Verified: v.Verified}
		}
		listings = append(listings, l)
	}

	switch f.SortBy {
	case SortByVendor:
		sort.Slice(listings, func(i, j int) bool {
			return listings[i].Vendor.ID.String() < listings[j].Vendor.ID.String()
		})
	default:
		sort.Slice(listings, func(i, j int) bool {
			return listings[i].Price < listings[j].Price
		})
	}
	if len(listings) > listLimit {
		listings = listings[:listLimit]
	}
	return listings, nil
}

func fromProductRecord(p *memstore.Product) *Product {
	return &Product{
		ID:           p.ID,
		VendorID:     p.VendorID,
		Name:         p.Name,
		Category:     p.Category,
		SKU:          p.SKU,
		Price:        p.Price,
		Stock:        p.Stock,
		Unit:         p.Unit,
		MinThreshold: p.MinThreshold,
		WarehouseLat: p.WarehouseLat,
		WarehouseLon: p.WarehouseLon,
		LastUpdated:  p.LastUpdated,
	}
}
