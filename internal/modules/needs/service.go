package needs

import (
	"context"

	"github.com/google/uuid"

	"github.com/medsupply-ke/medsupply-backend/internal/apperror"
)

// Service defines the needs and procurement-recommendation business logic.
type Service interface {
	// UploadNeeds stores one Need per entry, without deduplication.
	UploadNeeds(ctx context.Context, facilityID uuid.UUID, entries []NeedRequest) ([]*Need, error)

	// Recommend matches each of the facility's stored needs to the cheapest
	// in-stock product: substring match, stock threshold, price-ascending
	// tie-break, nothing fuzzier.
	Recommend(ctx context.Context, facilityID uuid.UUID) ([]*Recommendation, error)
}

type service struct{ repo Repository }

// NewService creates a new needs service.
func NewService(repo Repository) Service { return &service{repo: repo} }

func (s *service) UploadNeeds(ctx context.Context, facilityID uuid.UUID, entries []NeedRequest) ([]*Need, error) {
	created := make([]*Need, 0, len(entries))
	for _, e := range entries {
		if e.Name == "" {
			return nil, apperror.Validation("name required")
		}
		if e.Qty < 1 {
			return nil, apperror.Validation("qty must be >= 1")
		}
		cadence := e.Cadence
		if cadence == "" {
			cadence = "weekly"
		}
		created = append(created, &Need{
			ID:         uuid.New(),
			FacilityID: facilityID,
			Name:       e.Name,
			Qty:        e.Qty,
			Cadence:    cadence,
		})
	}
	if err := s.repo.CreateNeeds(ctx, created); err != nil {
		return nil, err
	}
	return created, nil
}

func (s *service) Recommend(ctx context.Context, facilityID uuid.UUID) ([]*Recommendation, error) {
	stored, err := s.repo.ListByFacility(ctx, facilityID)
	if err != nil {
		return nil, err
	}

	recs := make([]*Recommendation, 0, len(stored))
	for _, n := range stored {
		rec := &Recommendation{Need: n.Name}
		match, err := s.repo.BestMatch(ctx, n.Name, n.Qty)
		if err != nil {
			return nil, err
		}
		if match != nil {
			rec.Vendor = &match.Vendor
			rec.Product = &match.Product
		}
		recs = append(recs, rec)
	}
	return recs, nil
}
