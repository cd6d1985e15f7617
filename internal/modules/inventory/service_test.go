package inventory

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/medsupply-ke/medsupply-backend/internal/memstore"
)

func seedProduct(store *memstore.Store, vendorID uuid.UUID, name string, stock, threshold int) {
	id := uuid.New()
	store.Products[id] = &memstore.Product{
		ID: id, VendorID: vendorID, Name: name, Stock: stock, MinThreshold: threshold,
	}
}

func TestStockReport(t *testing.T) {
	ctx := context.Background()
	store := memstore.New()
	svc := NewService(NewMemoryRepository(store))
	vendorID := uuid.New()

	seedProduct(store, vendorID, "Surgical Gloves - M", 50, 100) // low
	seedProduct(store, vendorID, "IV Set - Std", 200, 20)
	seedProduct(store, uuid.New(), "Someone Else's Gauze", 1, 100)

	report, err := svc.StockReport(ctx, vendorID)
	if err != nil {
		t.Fatalf("report: %v", err)
	}
	if len(report.Items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(report.Items))
	}
	// Lowest stock first.
	if report.Items[0].Name != "Surgical Gloves - M" || !report.Items[0].Low {
		t.Fatalf("low item not first or not flagged: %+v", report.Items[0])
	}
	if report.Items[1].Low {
		t.Fatalf("well-stocked item flagged low: %+v", report.Items[1])
	}
	if report.LowCount != 1 {
		t.Fatalf("expected 1 low item, got %d", report.LowCount)
	}
}

func TestStockReportEmpty(t *testing.T) {
	ctx := context.Background()
	svc := NewService(NewMemoryRepository(memstore.New()))

	report, err := svc.StockReport(ctx, uuid.New())
	if err != nil {
		t.Fatalf("report: %v", err)
	}
	if len(report.Items) != 0 || report.LowCount != 0 {
		t.Fatalf("expected empty report, got %+v", report)
	}
}
