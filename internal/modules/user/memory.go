package user

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/medsupply-ke/medsupply-backend/internal/apperror"
	"github.com/medsupply-ke/medsupply-backend/internal/memstore"
)

type memoryRepository struct {
	store *memstore.Store
}

// NewMemoryRepository creates an account repository backed by the shared
// in-memory store. Used by tests.
func NewMemoryRepository(store *memstore.Store) Repository {
	return &memoryRepository{store: store}
}

func (r *memoryRepository) CreateUser(_ context.Context, u *User) error {
	r.store.Lock()
	defer r.store.Unlock()
	if u.CreatedAt.IsZero() {
		u.CreatedAt = time.Now().UTC()
	}
	r.store.Accounts[u.ID] = toRecord(u)
	return nil
}

func (r *memoryRepository) GetUserByEmail(_ context.Context, email string) (*User, error) {
	r.store.Lock()
	defer r.store.Unlock()
	if a := r.store.AccountByEmail(email); a != nil {
		return fromRecord(a), nil
	}
	return nil, apperror.NotFound("user not found")
}

func (r *memoryRepository) GetUserByID(_ context.Context, id uuid.UUID) (*User, error) {
	r.store.Lock()
	defer r.store.Unlock()
	if a, ok := r.store.Accounts[id]; ok {
		return fromRecord(a), nil
	}
	return nil, apperror.NotFound("user not found")
}

func (r *memoryRepository) SetVerified(_ context.Context, id uuid.UUID, verified bool) error {
	r.store.Lock()
	defer r.store.Unlock()
	a, ok := r.store.Accounts[id]
	if !ok {
		return apperror.NotFound("user not found")
	}
	a.Verified = verified
	return nil
}

func toRecord(u *User) *memstore.Account {
	return &memstore.Account{
		ID:           u.ID,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		Role:         u.Role,
		Verified:     u.Verified,
		Name:         u.Name,
		Lat:          u.Lat,
		Lon:          u.Lon,
		CreatedAt:    u.CreatedAt,
	}
}

func fromRecord(a *memstore.Account) *User {
	return &User{
		ID:           a.ID,
		Email:        a.Email,
		PasswordHash: a.PasswordHash,
		Role:         a.Role,
		Verified:     a.Verified,
		Name:         a.Name,
		Lat:          a.Lat,
		Lon:          a.Lon,
		CreatedAt:    a.CreatedAt,
	}
}
