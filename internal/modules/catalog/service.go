package catalog

import (
	"context"

	"github.com/google/uuid"

	"github.com/medsupply-ke/medsupply-backend/internal/apperror"
)

// Service defines catalog business logic.
type Service interface {
	// AddProduct creates a product owned by the calling vendor. Name and
	// SKU carry no uniqueness constraint.
	AddProduct(ctx context.Context, vendorID uuid.UUID, req CreateProductRequest) (*Product, error)

	ListProducts(ctx context.Context, f Filter) ([]*Listing, error)
}

type service struct{ repo Repository }

// NewService creates a new catalog service.
func NewService(repo Repository) Service { return &service{repo: repo} }

func (s *service) AddProduct(ctx context.Context, vendorID uuid.UUID, req CreateProductRequest) (*Product, error) {
	if req.Name == "" {
		return nil, apperror.Validation("name required")
	}
	if req.Price < 0 {
		return nil, apperror.Validation("price must be >= 0")
	}
	if req.Stock < 0 {
		return nil, apperror.Validation("stock must be >= 0")
	}

	category := req.Category
	if category == "" {
		category = "general"
	}
	unit := req.Unit
	if unit == "" {
		unit = "pcs"
	}
	minThreshold := 10
	if req.MinThreshold != nil {
		minThreshold = *req.MinThreshold
	}

	p := &Product{
		ID:           uuid.New(),
		VendorID:     vendorID,
		Name:         req.Name,
		Category:     category,
		SKU:          req.SKU,
		Price:        req.Price,
		Stock:        req.Stock,
		Unit:         unit,
		MinThreshold: minThreshold,
		WarehouseLat: req.WarehouseLat,
		WarehouseLon: req.WarehouseLon,
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *service) ListProducts(ctx context.Context, f Filter) ([]*Listing, error) {
	if f.VendorID != "" {
		if _, err := uuid.Parse(f.VendorID); err != nil {
			return nil, apperror.Validation("invalid vendor_id")
		}
	}
	if f.SortBy != "" && f.SortBy != SortByPrice && f.SortBy != SortByVendor {
		return nil, apperror.Validation("sort_by must be price or vendor")
	}
	return s.repo.List(ctx, f)
}
