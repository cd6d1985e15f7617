package order

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/medsupply-ke/medsupply-backend/internal/apperror"
	"github.com/medsupply-ke/medsupply-backend/internal/memstore"
)

type memoryRepo struct {
	store *memstore.Store
}

// NewMemoryRepository creates an order repository backed by the shared
// in-memory store. Used by tests.
func NewMemoryRepository(store *memstore.Store) Repository {
	return &memoryRepo{store: store}
}

// CreateOrder holds the store lock for the whole placement and stages every
// stock decrement before applying any, so a failure on a later item leaves
// the store exactly as it was.
func (r *memoryRepo) CreateOrder(_ context.Context, o *Order, items []ItemRequest) error {
	r.store.Lock()
	defer r.store.Unlock()

	newStock := make(map[uuid.UUID]int)
	var pending []*OrderItem
	var total float64
	now := time.Now().UTC()

	for i, it := range items {
		pid, err := uuid.Parse(it.ProductID)
		if err != nil {
			return invalidProductErr(i)
		}
		p, ok := r.store.Products[pid]
		if !ok {
			return invalidProductErr(i)
		}

		if i == 0 {
			o.VendorID = p.VendorID
		} else if p.VendorID != o.VendorID {
			return apperror.BusinessRule("all items must be from same vendor")
		}

		if !o.Emergency {
			remaining, staged := newStock[pid]
			if !staged {
				remaining = p.Stock
			}
			if remaining < it.Qty {
				return apperror.BusinessRule("not enough stock for %s", p.Name)
			}
			newStock[pid] = remaining - it.Qty
		}

		pending = append(pending, &OrderItem{
			ID: uuid.New(), OrderID: o.ID, ProductID: pid, Qty: it.Qty, UnitPrice: p.Price,
		})
		total += p.Price * float64(it.Qty)
	}

	for pid, stock := range newStock {
		r.store.Products[pid].Stock = stock
		r.store.Products[pid].LastUpdated = now
	}
	for i, item := range pending {
		r.store.OrderItems[item.ID] = &memstore.OrderItem{
			ID:        item.ID,
			OrderID:   item.OrderID,
			ProductID: item.ProductID,
			Qty:       item.Qty,
			UnitPrice: item.UnitPrice,
			CreatedAt: now.Add(time.Duration(i)), // preserve insertion order
		}
	}
	o.TotalAmount = total
	o.CreatedAt = now
	o.Items = pending
	r.store.Orders[o.ID] = &memstore.Order{
		ID:          o.ID,
		FacilityID:  o.FacilityID,
		VendorID:    o.VendorID,
		Status:      string(o.Status),
		TotalAmount: o.TotalAmount,
		Emergency:   o.Emergency,
		CreatedAt:   o.CreatedAt,
	}
	return nil
}

func (r *memoryRepo) GetOrderByID(_ context.Context, id string) (*Order, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, apperror.NotFound("order not found")
	}
	r.store.Lock()
	defer r.store.Unlock()
	rec, ok := r.store.Orders[uid]
	if !ok {
		return nil, apperror.NotFound("order not found")
	}
	o := fromOrderRecord(rec)
	for _, it := range r.store.ItemsOf(uid) {
		o.Items = append(o.Items, &OrderItem{
			ID: it.ID, OrderID: it.OrderID, ProductID: it.ProductID,
			Qty: it.Qty, UnitPrice: it.UnitPrice,
		})
	}
	return o, nil
}

func (r *memoryRepo) UpdateStatus(_ context.Context, id uuid.UUID, next Status) error {
	r.store.Lock()
	defer r.store.Unlock()
	rec, ok := r.store.Orders[id]
	if !ok {
		return apperror.NotFound("order not found")
	}
	rec.Status = string(next)
	return nil
}

func (r *memoryRepo) ListByFacility(_ context.Context, facilityID uuid.UUID) ([]*Order, error) {
	return r.list(func(o *memstore.Order) bool { return o.FacilityID == facilityID })
}

func (r *memoryRepo) ListByVendor(_ context.Context, vendorID uuid.UUID) ([]*Order, error) {
	return r.list(func(o *memstore.Order) bool { return o.VendorID == vendorID })
}

func (r *memoryRepo) ListAll(_ context.Context) ([]*Order, error) {
	return r.list(func(*memstore.Order) bool { return true })
}

func (r *memoryRepo) VendorEmail(_ context.Context, vendorID uuid.UUID) (string, error) {
	r.store.Lock()
	defer r.store.Unlock()
	a, ok := r.store.Accounts[vendorID]
	if !ok {
		return "", apperror.NotFound("vendor not found")
	}
	return a.Email, nil
}

func (r *memoryRepo) PickupPoint(_ context.Context, orderID string) (float64, float64, error) {
	uid, err := uuid.Parse(orderID)
	if err != nil {
		return 0, 0, apperror.NotFound("order not found")
	}
	r.store.Lock()
	defer r.store.Unlock()
	if _, ok := r.store.Orders[uid]; !ok {
		return 0, 0, apperror.NotFound("order not found")
	}
	items := r.store.ItemsOf(uid)
	if len(items) == 0 {
		return 0, 0, apperror.BusinessRule("no items")
	}
	p, ok := r.store.Products[items[0].ProductID]
	if !ok {
		return 0, 0, apperror.NotFound("product not found")
	}
	var lat, lon float64
	if p.WarehouseLat != nil {
		lat = *p.WarehouseLat
	}
	if p.WarehouseLon != nil {
		lon = *p.WarehouseLon
	}
	return lat, lon, nil
}

func (r *memoryRepo) list(match func(*memstore.Order) bool) ([]*Order, error) {
	r.store.Lock()
	defer r.store.Unlock()

	orders := make([]*Order, 0)
	for _, rec := range r.store.Orders {
		if !match(rec) {
			continue
		}
		o := fromOrderRecord(rec)
		if f, ok := r.store.Accounts[rec.FacilityID]; ok {
			o.Facility = &Party{ID: f.ID, Name: f.Name}
		}
		if v, ok := r.store.Accounts[rec.VendorID]; ok {
			o.Vendor = &Party{ID: v.ID, Name: v.Name}
		}
		orders = append(orders, o)
	}
	sort.Slice(orders, func(i, j int) bool {
		return orders[i].CreatedAt.After(orders[j].CreatedAt)
	})
	return orders, nil
}

func fromOrderRecord(rec *memstore.Order) *Order {
	return &Order{
		ID:          rec.ID,
		FacilityID:  rec.FacilityID,
		VendorID:    rec.VendorID,
		Status:      Status(rec.Status),
		TotalAmount: rec.TotalAmount,
		Emergency:   rec.Emergency,
		CreatedAt:   rec.CreatedAt,
	}
}
