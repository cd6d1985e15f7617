package analytics

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/medsupply-ke/medsupply-backend/internal/apperror"
	"github.com/medsupply-ke/medsupply-backend/internal/memstore"
)

func seedOrder(store *memstore.Store, facilityID uuid.UUID, status string, total float64, createdAt time.Time) {
	id := uuid.New()
	store.Orders[id] = &memstore.Order{
		ID: id, FacilityID: facilityID, VendorID: uuid.New(),
		Status: status, TotalAmount: total, CreatedAt: createdAt,
	}
}

func TestSpendForMonth(t *testing.T) {
	ctx := context.Background()
	store := memstore.New()
	svc := NewService(NewMemoryRepository(store))
	facilityID := uuid.New()

	mar := func(day int) time.Time {
		return time.Date(2026, time.March, day, 10, 0, 0, 0, time.UTC)
	}

	seedOrder(store, facilityID, "confirmed", 100, mar(1))
	seedOrder(store, facilityID, "delivered", 50, mar(31))
	seedOrder(store, facilityID, "out_for_delivery", 25, mar(15))
	seedOrder(store, facilityID, "pending", 999, mar(10))   // not committed
	seedOrder(store, facilityID, "cancelled", 999, mar(12)) // not committed
	seedOrder(store, facilityID, "confirmed", 999, time.Date(2026, time.April, 1, 0, 0, 0, 0, time.UTC))
	seedOrder(store, facilityID, "confirmed", 999, time.Date(2026, time.February, 28, 23, 59, 0, 0, time.UTC))
	seedOrder(store, uuid.New(), "confirmed", 999, mar(5)) // another facility

	got, err := svc.SpendForMonth(ctx, facilityID, 2026, 3)
	if err != nil {
		t.Fatalf("spend: %v", err)
	}
	if got.TotalSpend != 175 || got.OrdersCount != 3 {
		t.Fatalf("expected 175/3, got %v/%v", got.TotalSpend, got.OrdersCount)
	}
	if got.Year != 2026 || got.Month != 3 {
		t.Fatalf("window echo wrong: %+v", got)
	}
}

func TestSpendForMonthEmpty(t *testing.T) {
	ctx := context.Background()
	svc := NewService(NewMemoryRepository(memstore.New()))

	got, err := svc.SpendForMonth(ctx, uuid.New(), 2026, 1)
	if err != nil {
		t.Fatalf("spend: %v", err)
	}
	if got.TotalSpend != 0 || got.OrdersCount != 0 {
		t.Fatalf("empty month should be 0/0, got %+v", got)
	}
}

func TestSpendForMonthValidation(t *testing.T) {
	ctx := context.Background()
	svc := NewService(NewMemoryRepository(memstore.New()))

	for _, month := range []int{0, 13, -1} {
		if _, err := svc.SpendForMonth(ctx, uuid.New(), 2026, month); !apperror.IsKind(err, apperror.KindValidation) {
			t.Fatalf("month %d: expected validation error, got %v", month, err)
		}
	}
	if _, err := svc.SpendForMonth(ctx, uuid.New(), 0, 5); !apperror.IsKind(err, apperror.KindValidation) {
		t.Fatalf("year 0: expected validation error, got %v", err)
	}
}
