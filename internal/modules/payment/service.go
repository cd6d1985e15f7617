package payment

import (
	"context"
	"fmt"

	"github.com/medsupply-ke/medsupply-backend/internal/apperror"
	"github.com/medsupply-ke/medsupply-backend/internal/modules/order"
)

// Service defines the payment initiation business logic.
type Service interface {
	// PayOrder initiates an STK push for the order's total amount. The
	// provider response is an acknowledgment; settlement is asynchronous.
	PayOrder(ctx context.Context, orderID, phone string) (*ProviderResponse, error)
}

type service struct {
	orders  order.Service
	gateway Gateway
}

// NewService creates a new payment service.
func NewService(orders order.Service, gateway Gateway) Service {
	return &service{orders: orders, gateway: gateway}
}

func (s *service) PayOrder(ctx context.Context, orderID, phone string) (*ProviderResponse, error) {
	if phone == "" {
		return nil, apperror.Validation("phone required")
	}
	o, err := s.orders.GetOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	memo := fmt.Sprintf("Payment for order %s", o.ID)
	return s.gateway.InitiateSTKPush(ctx, phone, int(o.TotalAmount), memo)
}
