package user

import (
	"time"

	"github.com/google/uuid"
)

// Roles an account can hold. The role is fixed at registration; admin is
// never self-assignable.
const (
	RoleFacility = "facility"
	RoleVendor   = "vendor"
	RoleAdmin    = "admin"
)

// RegistrableRole reports whether a role may be chosen at signup.
func RegistrableRole(role string) bool {
	return role == RoleFacility || role == RoleVendor
}

// User is an account in the marketplace: a healthcare facility, a supply
// vendor, or an admin.
type User struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	Verified     bool      `json:"verified"`
	Name         string    `json:"name,omitempty"`
	Lat          *float64  `json:"lat,omitempty"`
	Lon          *float64  `json:"lon,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}
