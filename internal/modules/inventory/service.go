package inventory

import (
	"context"

	"github.com/google/uuid"
)

// Service defines inventory reporting business logic.
type Service interface {
	// StockReport lists the vendor's products lowest stock first, flagging
	// those below their reorder threshold.
	StockReport(ctx context.Context, vendorID uuid.UUID) (*Report, error)
}

type service struct{ repo Repository }

// NewService creates a new inventory service.
func NewService(repo Repository) Service { return &service{repo: repo} }

func (s *service) StockReport(ctx context.Context, vendorID uuid.UUID) (*Report, error) {
	levels, err := s.repo.StockLevels(ctx, vendorID)
	if err != nil {
		return nil, err
	}
	report := &Report{Items: levels}
	for _, l := range levels {
		if l.Low {
			report.LowCount++
		}
	}
	return report, nil
}
