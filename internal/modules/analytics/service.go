package analytics

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/medsupply-ke/medsupply-backend/internal/apperror"
)

// MonthlySpend is a facility's committed spend over one calendar month.
type MonthlySpend struct {
	Year        int     `json:"year"`
	Month       int     `json:"month"`
	TotalSpend  float64 `json:"total_spend"`
	OrdersCount int     `json:"orders_count"`
}

// Service defines spend analytics business logic.
type Service interface {
	// SpendForMonth aggregates the facility's committed orders over
	// [first-of-month, first-of-next-month). A month with no committed
	// orders yields 0.0 / 0.
	SpendForMonth(ctx context.Context, facilityID uuid.UUID, year, month int) (*MonthlySpend, error)
}

type service struct{ repo Repository }

// NewService creates a new analytics service.
func NewService(repo Repository) Service { return &service{repo: repo} }

func (s *service) SpendForMonth(ctx context.Context, facilityID uuid.UUID, year, month int) (*MonthlySpend, error) {
	if month < 1 || month > 12 {
		return nil, apperror.Validation("month must be between 1 and 12")
	}
	if year < 1 {
		return nil, apperror.Validation("invalid year")
	}

	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0)

	total, count, err := s.repo.SpendBetween(ctx, facilityID, start, end)
	if err != nil {
		return nil, err
	}
	return &MonthlySpend{Year: year, Month: month, TotalSpend: total, OrdersCount: count}, nil
}
