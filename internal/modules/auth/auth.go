package auth

import (
	"context"

	"github.com/google/uuid"

	"github.com/medsupply-ke/medsupply-backend/internal/modules/user"
)

// Service defines the interface for authentication business logic.
type Service interface {
	// Login verifies credentials and issues a signed session token.
	Login(ctx context.Context, email, password string) (*Session, error)

	// CreateToken issues a session token for an already-authenticated
	// account (used right after signup).
	CreateToken(id uuid.UUID, role string) (string, error)
}

// Session is the result of a successful login.
type Session struct {
	Token    string    `json:"token"`
	UserID   uuid.UUID `json:"user_id"`
	Role     string    `json:"role"`
	Verified bool      `json:"verified"`
}

// CanAct is the capability check used for role-gated operations: an empty
// requirement admits every authenticated caller, and admin satisfies any
// requirement.
func CanAct(required, actual string) bool {
	if required == "" {
		return true
	}
	return actual == required || actual == user.RoleAdmin
}
