package payment

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/medsupply-ke/medsupply-backend/internal/apperror"
	"github.com/medsupply-ke/medsupply-backend/internal/memstore"
	"github.com/medsupply-ke/medsupply-backend/internal/modules/order"
	"github.com/medsupply-ke/medsupply-backend/internal/modules/user"
	"github.com/medsupply-ke/medsupply-backend/internal/notify"
)

func sandboxGateway() Gateway {
	return NewDarajaGateway("key", "secret", "174379", "passkey", "https://sandbox.safaricom.co.ke", "sandbox")
}

func placeTestOrder(t *testing.T) (order.Service, *order.Order) {
	t.Helper()
	store := memstore.New()

	vendorID, facilityID := uuid.New(), uuid.New()
	store.Accounts[vendorID] = &memstore.Account{ID: vendorID, Email: "vendor@example.com", Role: user.RoleVendor, Name: "BestMed"}
	store.Accounts[facilityID] = &memstore.Account{ID: facilityID, Email: "clinic@example.com", Role: user.RoleFacility, Name: "Clinic", Verified: true}
	productID := uuid.New()
	store.Products[productID] = &memstore.Product{ID: productID, VendorID: vendorID, Name: "IV Set - Std", Price: 5.0, Stock: 200}

	orders := order.NewService(order.NewMemoryRepository(store), notify.NewLogNotifier())
	o, err := orders.PlaceOrder(context.Background(), &user.User{ID: facilityID, Role: user.RoleFacility, Verified: true}, order.PlaceOrderRequest{
		Items: []order.ItemRequest{{ProductID: productID.String(), Qty: 10}},
	})
	if err != nil {
		t.Fatalf("place order: %v", err)
	}
	return orders, o
}

func TestPayOrder(t *testing.T) {
	ctx := context.Background()
	orders, o := placeTestOrder(t)
	svc := NewService(orders, sandboxGateway())

	resp, err := svc.PayOrder(ctx, o.ID.String(), "254712345678")
	if err != nil {
		t.Fatalf("pay order: %v", err)
	}
	if resp.ResponseCode != "0" {
		t.Fatalf("unexpected response code: %+v", resp)
	}
	if resp.MerchantRequestID == "" || resp.CheckoutRequestID == "" {
		t.Fatalf("request ids missing: %+v", resp)
	}
	if !strings.Contains(resp.CustomerMessage, "254712345678") {
		t.Fatalf("customer message should name the phone: %q", resp.CustomerMessage)
	}
}

func TestPayOrderValidation(t *testing.T) {
	ctx := context.Background()
	orders, o := placeTestOrder(t)
	svc := NewService(orders, sandboxGateway())

	if _, err := svc.PayOrder(ctx, o.ID.String(), ""); !apperror.IsKind(err, apperror.KindValidation) {
		t.Fatalf("missing phone: expected validation error, got %v", err)
	}
	if _, err := svc.PayOrder(ctx, uuid.New().String(), "254712345678"); !apperror.IsKind(err, apperror.KindNotFound) {
		t.Fatalf("unknown order: expected not found, got %v", err)
	}
}

func TestGatewayRejectsZeroAmount(t *testing.T) {
	ctx := context.Background()
	g := sandboxGateway()

	if _, err := g.InitiateSTKPush(ctx, "254712345678", 0, "memo"); !apperror.IsKind(err, apperror.KindValidation) {
		t.Fatalf("zero amount: expected validation error, got %v", err)
	}
	if _, err := g.InitiateSTKPush(ctx, "", 100, "memo"); !apperror.IsKind(err, apperror.KindValidation) {
		t.Fatalf("missing phone: expected validation error, got %v", err)
	}
}
