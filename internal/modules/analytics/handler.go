package analytics

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/medsupply-ke/medsupply-backend/internal/apperror"
	"github.com/medsupply-ke/medsupply-backend/internal/modules/auth"
	"github.com/medsupply-ke/medsupply-backend/internal/modules/user"
)

// Handler exposes spend analytics HTTP endpoints.
type Handler struct {
	service Service
	mw      *auth.Middleware
}

func NewHandler(service Service, mw *auth.Middleware) *Handler {
	return &Handler{service: service, mw: mw}
}

func (h *Handler) RegisterRoutes(r *chi.Mux) {
	r.Group(func(r chi.Router) {
		r.Use(h.mw.Authenticate, h.mw.Require(user.RoleFacility))
		r.Get("/api/analytics/spend", h.monthlySpend)
	})
}

func (h *Handler) monthlySpend(w http.ResponseWriter, r *http.Request) {
	now := time.Now().UTC()
	year, month := now.Year(), int(now.Month())

	if v := r.URL.Query().Get("year"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			respondError(w, apperror.Validation("invalid year"))
			return
		}
		year = n
	}
	if v := r.URL.Query().Get("month"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			respondError(w, apperror.Validation("invalid month"))
			return
		}
		month = n
	}

	spend, err := h.service.SpendForMonth(r.Context(), auth.CurrentUser(r.Context()).ID, year, month)
	if err != nil {
		respondError(w, err)
		return
	}
	respond(w, http.StatusOK, spend)
}

func respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func respondError(w http.ResponseWriter, err error) {
	respond(w, apperror.Status(err), map[string]string{"error": err.Error()})
}
