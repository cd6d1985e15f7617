package needs

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/medsupply-ke/medsupply-backend/internal/apperror"
	"github.com/medsupply-ke/medsupply-backend/internal/memstore"
)

func setup(t *testing.T) (*memstore.Store, Service) {
	t.Helper()
	store := memstore.New()
	return store, NewService(NewMemoryRepository(store))
}

func seedVendor(store *memstore.Store, name string) uuid.UUID {
	id := uuid.New()
	store.Accounts[id] = &memstore.Account{ID: id, Email: name + "@example.com", Role: "vendor", Name: name}
	return id
}

func seedProduct(store *memstore.Store, vendorID uuid.UUID, name string, price float64, stock int) uuid.UUID {
	id := uuid.New()
	store.Products[id] = &memstore.Product{ID: id, VendorID: vendorID, Name: name, Price: price, Stock: stock}
	return id
}

func TestUploadNeeds(t *testing.T) {
	ctx := context.Background()
	store, svc := setup(t)
	facilityID := uuid.New()

	created, err := svc.UploadNeeds(ctx, facilityID, []NeedRequest{
		{Name: "gloves", Qty: 100},
		{Name: "iv set", Qty: 20, Cadence: "monthly"},
		{Name: "gloves", Qty: 100}, // duplicates are kept
	})
	if err != nil {
		t.Fatalf("upload: %v", err)
	}
	if len(created) != 3 || len(store.Needs) != 3 {
		t.Fatalf("expected 3 needs, got %d created / %d stored", len(created), len(store.Needs))
	}
	if created[0].Cadence != "weekly" || created[1].Cadence != "monthly" {
		t.Fatalf("cadence defaulting broken: %+v", created)
	}

	if _, err := svc.UploadNeeds(ctx, facilityID, []NeedRequest{{Name: "", Qty: 1}}); !apperror.IsKind(err, apperror.KindValidation) {
		t.Fatalf("empty name: expected validation error, got %v", err)
	}
	if _, err := svc.UploadNeeds(ctx, facilityID, []NeedRequest{{Name: "gauze", Qty: 0}}); !apperror.IsKind(err, apperror.KindValidation) {
		t.Fatalf("zero qty: expected validation error, got %v", err)
	}
}

func TestRecommendPicksCheapestQualifying(t *testing.T) {
	ctx := context.Background()
	store, svc := setup(t)
	facilityID := uuid.New()
	vendorA := seedVendor(store, "BestMed")
	vendorB := seedVendor(store, "OtherMed")

	seedProduct(store, vendorA, "Surgical Gloves - M", 0.5, 1000)
	seedProduct(store, vendorB, "Surgical Gloves - L", 0.4, 1000)
	seedProduct(store, vendorB, "Exam Gloves", 0.3, 10) // understocked

	if _, err := svc.UploadNeeds(ctx, facilityID, []NeedRequest{{Name: "gloves", Qty: 100}}); err != nil {
		t.Fatalf("upload: %v", err)
	}

	recs, err := svc.Recommend(ctx, facilityID)
	if err != nil {
		t.Fatalf("recommend: %v", err)
	}
	if len(recs) != 1 {
		t.Fatalf("expected 1 recommendation, got %d", len(recs))
	}
	rec := recs[0]
	if rec.Need != "gloves" {
		t.Fatalf("need name lost: %+v", rec)
	}
	// The cheapest product is skipped for stock, so the 0.4 one wins.
	if rec.Product == nil || rec.Product.Price != 0.4 {
		t.Fatalf("expected cheapest in-stock match at 0.4, got %+v", rec.Product)
	}
	if rec.Vendor == nil || rec.Vendor.ID != vendorB {
		t.Fatalf("vendor not resolved: %+v", rec.Vendor)
	}
}

func TestRecommendUnmatchedNeed(t *testing.T) {
	ctx := context.Background()
	store, svc := setup(t)
	facilityID := uuid.New()
	vendor := seedVendor(store, "BestMed")
	seedProduct(store, vendor, "Surgical Gloves - M", 0.5, 1000)

	if _, err := svc.UploadNeeds(ctx, facilityID, []NeedRequest{
		{Name: "gloves", Qty: 100},
		{Name: "ventilator", Qty: 2},
	}); err != nil {
		t.Fatalf("upload: %v", err)
	}

	recs, err := svc.Recommend(ctx, facilityID)
	if err != nil {
		t.Fatalf("recommend: %v", err)
	}
	if len(recs) != 2 {
		t.Fatalf("expected one entry per need, got %d", len(recs))
	}
	// Needs are listed in upload order.
	if recs[0].Product == nil {
		t.Fatalf("matched need lost its product: %+v", recs[0])
	}
	if recs[1].Vendor != nil || recs[1].Product != nil {
		t.Fatalf("unmatched need should have nil vendor/product: %+v", recs[1])
	}
}

func TestRecommendScopedToFacility(t *testing.T) {
	ctx := context.Background()
	store, svc := setup(t)
	vendor := seedVendor(store, "BestMed")
	seedProduct(store, vendor, "Surgical Gloves - M", 0.5, 1000)

	mine, other := uuid.New(), uuid.New()
	if _, err := svc.UploadNeeds(ctx, other, []NeedRequest{{Name: "gloves", Qty: 10}}); err != nil {
		t.Fatalf("upload: %v", err)
	}

	recs, err := svc.Recommend(ctx, mine)
	if err != nil {
		t.Fatalf("recommend: %v", err)
	}
	if len(recs) != 0 {
		t.Fatalf("saw another facility's needs: %+v", recs)
	}
}
