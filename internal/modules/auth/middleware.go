package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/medsupply-ke/medsupply-backend/internal/apperror"
	"github.com/medsupply-ke/medsupply-backend/internal/modules/user"
)

type ctxKey struct{}

// CurrentUser returns the authenticated account stored in the request
// context by Authenticate, or nil on unauthenticated requests.
func CurrentUser(ctx context.Context) *user.User {
	u, _ := ctx.Value(ctxKey{}).(*user.User)
	return u
}

// Middleware authenticates requests and enforces role requirements.
type Middleware struct {
	users  user.Repository
	secret []byte
}

func NewMiddleware(users user.Repository, secret []byte) *Middleware {
	return &Middleware{users: users, secret: secret}
}

// Authenticate parses the bearer token, resolves the account it names, and
// stores the account in the request context. The role check always runs
// against the stored account, not the token, so a role change takes effect
// on the next request.
func (m *Middleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if header == "" {
			writeError(w, apperror.Auth("missing auth"))
			return
		}
		tokenString := strings.TrimPrefix(header, "Bearer ")
		if tokenString == header {
			writeError(w, apperror.Auth("invalid auth format"))
			return
		}

		claims, err := ParseToken(m.secret, tokenString)
		if err != nil {
			writeError(w, err)
			return
		}
		id, err := uuid.Parse(claims.Subject)
		if err != nil {
			writeError(w, apperror.Auth("invalid token"))
			return
		}

		u, err := m.users.GetUserByID(r.Context(), id)
		if err != nil {
			writeError(w, err)
			return
		}

		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), ctxKey{}, u)))
	})
}

// Require rejects requests whose authenticated account cannot act as the
// given role. Must run after Authenticate.
func (m *Middleware) Require(role string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			u := CurrentUser(r.Context())
			if u == nil {
				writeError(w, apperror.Auth("missing auth"))
				return
			}
			if !CanAct(role, u.Role) {
				writeError(w, apperror.Forbidden("forbidden"))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func writeError(w http.ResponseWriter, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(apperror.Status(err))
	json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
}
