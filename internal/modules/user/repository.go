package user

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines data access for accounts.
type Repository interface {
	CreateUser(ctx context.Context, u *User) error
	GetUserByEmail(ctx context.Context, email string) (*User, error)
	GetUserByID(ctx context.Context, id uuid.UUID) (*User, error)

	// SetVerified flips the verified flag for an account.
	SetVerified(ctx context.Context, id uuid.UUID, verified bool) error
}
