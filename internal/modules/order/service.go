package order

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"

	"github.com/medsupply-ke/medsupply-backend/internal/apperror"
	"github.com/medsupply-ke/medsupply-backend/internal/courier"
	"github.com/medsupply-ke/medsupply-backend/internal/modules/user"
	"github.com/medsupply-ke/medsupply-backend/internal/notify"
)

// Service defines the order engine's business logic.
type Service interface {
	// PlaceOrder validates and commits a multi-item order for a verified
	// facility, then fires a best-effort vendor notification.
	PlaceOrder(ctx context.Context, facility *user.User, req PlaceOrderRequest) (*Order, error)

	// ListOrders scopes results to the caller: facilities see their own
	// orders, vendors the orders placed with them, admins everything.
	ListOrders(ctx context.Context, caller *user.User) ([]*Order, error)

	GetOrder(ctx context.Context, id string) (*Order, error)

	// UpdateOrderStatus moves an order along its lifecycle. Vendors advance
	// their own orders; facilities may only cancel their own; admins may do
	// either. Transitions outside the state machine are rejected.
	UpdateOrderStatus(ctx context.Context, caller *user.User, orderID string, next Status) (*Order, error)

	// CourierLink builds courier deep links from the order's warehouse
	// pickup to the given dropoff.
	CourierLink(ctx context.Context, orderID string, dropoff courier.Point) (courier.Links, error)
}

type service struct {
	repo     Repository
	notifier notify.Notifier
}

// NewService creates a new order service.
func NewService(repo Repository, notifier notify.Notifier) Service {
	return &service{repo: repo, notifier: notifier}
}

func (s *service) PlaceOrder(ctx context.Context, facility *user.User, req PlaceOrderRequest) (*Order, error) {
	if !facility.Verified {
		return nil, apperror.BusinessRule("facility not verified")
	}
	if len(req.Items) == 0 {
		return nil, apperror.Validation("items required")
	}
	for _, it := range req.Items {
		if it.Qty < 1 {
			return nil, apperror.Validation("qty must be >= 1")
		}
	}

	o := &Order{
		ID:         uuid.New(),
		FacilityID: facility.ID,
		Status:     StatusPending,
		Emergency:  req.Emergency,
	}
	if err := s.repo.CreateOrder(ctx, o, req.Items); err != nil {
		return nil, err
	}

	// Best-effort: a notification failure must never fail the placed order.
	go s.notifyVendor(o)

	return o, nil
}

func (s *service) notifyVendor(o *Order) {
	ctx := context.Background()
	email, err := s.repo.VendorEmail(ctx, o.VendorID)
	if err != nil {
		log.Printf("order %s: resolve vendor for notification: %v", o.ID, err)
		return
	}
	if err := s.notifier.Notify(ctx, email, "New Order", fmt.Sprintf("Order %s", o.ID)); err != nil {
		log.Printf("order %s: notify vendor: %v", o.ID, err)
	}
}

func (s *service) ListOrders(ctx context.Context, caller *user.User) ([]*Order, error) {
	switch caller.Role {
	case user.RoleFacility:
		return s.repo.ListByFacility(ctx, caller.ID)
	case user.RoleVendor:
		return s.repo.ListByVendor(ctx, caller.ID)
	default:
		return s.repo.ListAll(ctx)
	}
}

func (s *service) GetOrder(ctx context.Context, id string) (*Order, error) {
	return s.repo.GetOrderByID(ctx, id)
}

func (s *service) UpdateOrderStatus(ctx context.Context, caller *user.User, orderID string, next Status) (*Order, error) {
	if next == "" {
		return nil, apperror.Validation("status required")
	}
	o, err := s.repo.GetOrderByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	switch caller.Role {
	case user.RoleVendor:
		if o.VendorID != caller.ID {
			return nil, apperror.Forbidden("not your order")
		}
	case user.RoleFacility:
		if o.FacilityID != caller.ID {
			return nil, apperror.Forbidden("not your order")
		}
		if next != StatusCancelled {
			return nil, apperror.Forbidden("facilities may only cancel")
		}
	case user.RoleAdmin:
	default:
		return nil, apperror.Forbidden("forbidden")
	}

	if !CanTransition(o.Status, next) {
		return nil, apperror.BusinessRule("cannot move order from %s to %s", o.Status, next)
	}
	if err := s.repo.UpdateStatus(ctx, o.ID, next); err != nil {
		return nil, err
	}
	o.Status = next
	return o, nil
}

func (s *service) CourierLink(ctx context.Context, orderID string, dropoff courier.Point) (courier.Links, error) {
	lat, lon, err := s.repo.PickupPoint(ctx, orderID)
	if err != nil {
		return courier.Links{}, err
	}
	return courier.GenerateDeeplink(courier.Point{Lat: lat, Lon: lon}, dropoff), nil
}
