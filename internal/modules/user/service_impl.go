package user

import (
	"context"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/medsupply-ke/medsupply-backend/internal/apperror"
)

type service struct {
	repo Repository
}

// NewService creates a new account service.
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) RegisterUser(ctx context.Context, email, password, role, name string) (*User, error) {
	if email == "" || password == "" {
		return nil, apperror.Validation("email,password,role required")
	}
	if !RegistrableRole(role) {
		return nil, apperror.Validation("role must be facility or vendor")
	}
	if existing, err := s.repo.GetUserByEmail(ctx, email); err == nil && existing != nil {
		return nil, apperror.Validation("email exists")
	} else if err != nil && !apperror.IsKind(err, apperror.KindNotFound) {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	u := &User{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: string(hashed),
		Role:         role,
		Name:         name,
	}
	if err := s.repo.CreateUser(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

func (s *service) GetUser(ctx context.Context, id uuid.UUID) (*User, error) {
	return s.repo.GetUserByID(ctx, id)
}

func (s *service) VerifyFacility(ctx context.Context, id uuid.UUID, licenseNumber string) error {
	if licenseNumber == "" {
		return apperror.Validation("license_number required")
	}
	return s.repo.SetVerified(ctx, id, true)
}
