package memstore

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Account mirrors a row in the users table.
type Account struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	Role         string
	Verified     bool
	Name         string
	Lat          *float64
	Lon          *float64
	CreatedAt    time.Time
}

// Product mirrors a row in the products table.
type Product struct {
	ID           uuid.UUID
	VendorID     uuid.UUID
	Name         string
	Category     string
	SKU          string
	Price        float64
	Stock        int
	Unit         string
	MinThreshold int
	WarehouseLat *float64
	WarehouseLon *float64
	LastUpdated  time.Time
}

// Order mirrors a row in the orders table.
type Order struct {
	ID          uuid.UUID
	FacilityID  uuid.UUID
	VendorID    uuid.UUID
	Status      string
	TotalAmount float64
	Emergency   bool
	CreatedAt   time.Time
}

// OrderItem mirrors a row in the order_items table.
type OrderItem struct {
	ID        uuid.UUID
	OrderID   uuid.UUID
	ProductID uuid.UUID
	Qty       int
	UnitPrice float64
	CreatedAt time.Time
}

// Need mirrors a row in the needs table.
type Need struct {
	ID         uuid.UUID
	FacilityID uuid.UUID
	Name       string
	Qty        int
	Cadence    string
	CreatedAt  time.Time
}

// Store is a mutex-guarded in-memory stand-in for the relational store.
// Each module's memory repository operates on a shared Store, which lets
// service-level tests run without a database.
type Store struct {
	sync.Mutex
	Accounts   map[uuid.UUID]*Account
	Products   map[uuid.UUID]*Product
	Orders     map[uuid.UUID]*Order
	OrderItems map[uuid.UUID]*OrderItem
	Needs      map[uuid.UUID]*Need
}

func New() *Store {
	return &Store{
		Accounts:   make(map[uuid.UUID]*Account),
		Products:   make(map[uuid.UUID]*Product),
		Orders:     make(map[uuid.UUID]*Order),
		OrderItems: make(map[uuid.UUID]*OrderItem),
		Needs:      make(map[uuid.UUID]*Need),
	}
}

// AccountByEmail scans for an account by email. Caller must hold the lock.
func (s *Store) AccountByEmail(email string) *Account {
	for _, a := range s.Accounts {
		if a.Email == email {
			return a
		}
	}
	return nil
}

// ItemsOf returns the items of an order ordered by creation time.
// Caller must hold the lock.
func (s *Store) ItemsOf(orderID uuid.UUID) []*OrderItem {
	var items []*OrderItem
	for _, it := range s.OrderItems {
		if it.OrderID == orderID {
			items = append(items, it)
		}
	}
	for i := 0; i < len(items); i++ {
		for j := i + 1; j < len(items); j++ {
			if items[j].CreatedAt.Before(items[i].CreatedAt) {
				items[i], items[j] = items[j], items[i]
			}
		}
	}
	return items
}
