package auth

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/medsupply-ke/medsupply-backend/internal/apperror"
	"github.com/medsupply-ke/medsupply-backend/internal/modules/user"
)

// Handler exposes the identity and access HTTP endpoints: signup, login,
// profile, and facility license verification.
type Handler struct {
	auth  Service
	users user.Service
	mw    *Middleware
}

func NewHandler(auth Service, users user.Service, mw *Middleware) *Handler {
	return &Handler{auth: auth, users: users, mw: mw}
}

func (h *Handler) RegisterRoutes(r *chi.Mux) {
	r.Post("/api/signup", h.signup)
	r.Post("/api/login", h.login)

	r.Group(func(r chi.Router) {
		r.Use(h.mw.Authenticate)
		r.Get("/api/me", h.me)
	})
	r.Group(func(r chi.Router) {
		r.Use(h.mw.Authenticate, h.mw.Require(user.RoleFacility))
		r.Post("/api/verify_license", h.verifyLicense)
	})
}

func (h *Handler) signup(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
		Role     string `json:"role"`
		Name     string `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, apperror.Validation("invalid request body"))
		return
	}

	u, err := h.users.RegisterUser(r.Context(), req.Email, req.Password, req.Role, req.Name)
	if err != nil {
		respondError(w, err)
		return
	}
	token, err := h.auth.CreateToken(u.ID, u.Role)
	if err != nil {
		respondError(w, err)
		return
	}
	respond(w, http.StatusOK, map[string]interface{}{"token": token, "user_id": u.ID})
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, apperror.Validation("invalid request body"))
		return
	}

	session, err := h.auth.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		respondError(w, err)
		return
	}
	respond(w, http.StatusOK, session)
}

func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	respond(w, http.StatusOK, CurrentUser(r.Context()))
}

func (h *Handler) verifyLicense(w http.ResponseWriter, r *http.Request) {
	var req struct {
		LicenseNumber string `json:"license_number"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, apperror.Validation("invalid request body"))
		return
	}

	u := CurrentUser(r.Context())
	if err := h.users.VerifyFacility(r.Context(), u.ID, req.LicenseNumber); err != nil {
		respondError(w, err)
		return
	}
	respond(w, http.StatusOK, map[string]bool{"ok": true})
}

func respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func respondError(w http.ResponseWriter, err error) {
	respond(w, apperror.Status(err), map[string]string{"error": err.Error()})
}
