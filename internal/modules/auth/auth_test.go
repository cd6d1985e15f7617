package auth

import (
	"context"
	"testing"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/google/uuid"

	"github.com/medsupply-ke/medsupply-backend/internal/apperror"
	"github.com/medsupply-ke/medsupply-backend/internal/memstore"
	"github.com/medsupply-ke/medsupply-backend/internal/modules/user"
)

var testSecret = []byte("test-secret")

func setup(t *testing.T) (user.Service, Service) {
	t.Helper()
	repo := user.NewMemoryRepository(memstore.New())
	return user.NewService(repo), NewService(repo, testSecret)
}

func TestCanAct(t *testing.T) {
	cases := []struct {
		required, actual string
		want             bool
	}{
		{"", user.RoleFacility, true},
		{"", user.RoleVendor, true},
		{user.RoleFacility, user.RoleFacility, true},
		{user.RoleVendor, user.RoleVendor, true},
		{user.RoleFacility, user.RoleVendor, false},
		{user.RoleVendor, user.RoleFacility, false},
		{user.RoleFacility, user.RoleAdmin, true},
		{user.RoleVendor, user.RoleAdmin, true},
		{user.RoleAdmin, user.RoleFacility, false},
	}
	for _, c := range cases {
		if got := CanAct(c.required, c.actual); got != c.want {
			t.Errorf("CanAct(%q, %q) = %v, want %v", c.required, c.actual, got, c.want)
		}
	}
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	users, svc := setup(t)

	u, err := users.RegisterUser(ctx, "clinic@example.com", "secret123", user.RoleFacility, "Clinic")
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	sess, err := svc.Login(ctx, "clinic@example.com", "secret123")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if sess.UserID != u.ID || sess.Role != user.RoleFacility {
		t.Fatalf("unexpected session: %+v", sess)
	}

	claims, err := ParseToken(testSecret, sess.Token)
	if err != nil {
		t.Fatalf("parse issued token: %v", err)
	}
	if claims.Subject != u.ID.String() || claims.Role != user.RoleFacility {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	ctx := context.Background()
	users, svc := setup(t)

	if _, err := users.RegisterUser(ctx, "clinic@example.com", "secret123", user.RoleFacility, "Clinic"); err != nil {
		t.Fatalf("register: %v", err)
	}

	if _, err := svc.Login(ctx, "clinic@example.com", "wrong"); !apperror.IsKind(err, apperror.KindAuth) {
		t.Fatalf("wrong password: expected auth error, got %v", err)
	}
	if _, err := svc.Login(ctx, "nobody@example.com", "secret123"); !apperror.IsKind(err, apperror.KindAuth) {
		t.Fatalf("unknown email: expected auth error, got %v", err)
	}
	if _, err := svc.Login(ctx, "", ""); !apperror.IsKind(err, apperror.KindValidation) {
		t.Fatalf("empty credentials: expected validation error, got %v", err)
	}
}

func TestParseTokenRejectsExpired(t *testing.T) {
	claims := &Claims{
		Role: user.RoleFacility,
		StandardClaims: jwt.StandardClaims{
			Subject:   uuid.New().String(),
			ExpiresAt: time.Now().Add(-time.Hour).Unix(),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(testSecret)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	if _, err := ParseToken(testSecret, token); !apperror.IsKind(err, apperror.KindAuth) {
		t.Fatalf("expected auth error for expired token, got %v", err)
	}
}

func TestParseTokenRejectsWrongSecret(t *testing.T) {
	_, svc := setup(t)
	token, err := svc.CreateToken(uuid.New(), user.RoleVendor)
	if err != nil {
		t.Fatalf("create token: %v", err)
	}
	if _, err := ParseToken([]byte("other-secret"), token); !apperror.IsKind(err, apperror.KindAuth) {
		t.Fatalf("expected auth error for wrong secret, got %v", err)
	}
	if _, err := ParseToken(testSecret, "not-a-token"); !apperror.IsKind(err, apperror.KindAuth) {
		t.Fatalf("expected auth error for garbage token, got %v", err)
	}
}
