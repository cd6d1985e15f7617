package inventory

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/medsupply-ke/medsupply-backend/internal/apperror"
	"github.com/medsupply-ke/medsupply-backend/internal/modules/auth"
	"github.com/medsupply-ke/medsupply-backend/internal/modules/user"
)

// Handler exposes inventory HTTP endpoints.
type Handler struct {
	service Service
	mw      *auth.Middleware
}

func NewHandler(service Service, mw *auth.Middleware) *Handler {
	return &Handler{service: service, mw: mw}
}

func (h *Handler) RegisterRoutes(r *chi.Mux) {
	r.Group(func(r chi.Router) {
		r.Use(h.mw.Authenticate, h.mw.Require(user.RoleVendor))
		r.Get("/api/vendor/inventory", h.stockReport)
	})
}

func (h *Handler) stockReport(w http.ResponseWriter, r *http.Request) {
	report, err := h.service.StockReport(r.Context(), auth.CurrentUser(r.Context()).ID)
	if err != nil {
		respondError(w, err)
		return
	}
	respond(w, http.StatusOK, report)
}

func respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func respondError(w http.ResponseWriter, err error) {
	respond(w, apperror.Status(err), map[string]string{"error": err.Error()})
}
