package user

import (
	"context"

	"github.com/google/uuid"
)

// Service defines the interface for account-related business logic.
type Service interface {
	// RegisterUser creates a facility or vendor account with a hashed
	// credential. The role must be one of RoleFacility or RoleVendor.
	RegisterUser(ctx context.Context, email, password, role, name string) (*User, error)

	GetUser(ctx context.Context, id uuid.UUID) (*User, error)

	// VerifyFacility marks a facility account as verified. Any non-empty
	// license number is accepted; real license validation is an external
	// collaborator this service only stubs.
	VerifyFacility(ctx context.Context, id uuid.UUID, licenseNumber string) error
}
