package catalog

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/medsupply-ke/medsupply-backend/internal/apperror"
	"github.com/medsupply-ke/medsupply-backend/internal/modules/auth"
	"github.com/medsupply-ke/medsupply-backend/internal/modules/user"
)

// Handler exposes catalog HTTP endpoints.
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
		r.Post("/api/vendor/products", h.addProduct)
	})
	r.Group(func(r chi.Router) {
		r.Use(h.mw.Authenticate)
		r.Get("/api/products", h.listProducts)
	})
}

func (h *Handler) addProduct(w http.ResponseWriter, r *http.Request) {
	var req CreateProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, apperror.Validation("invalid request body"))
		return
	}

	vendor := auth.CurrentUser(r.Context())
	p, err := h.service.AddProduct(r.Context(), vendor.ID, req)
	if err != nil {
		respondError(w, err)
		return
	}
	respond(w, http.StatusCreated, map[string]interface{}{"ok": true, "product_id": p.ID})
}

func (h *Handler) listProducts(w http.ResponseWriter, r *http.Request) {
	f := Filter{
		NameQuery: r.URL.Query().Get("q"),
		VendorID:  r.URL.Query().Get("vendor_id"),
		SortBy:    r.URL.Query().Get("sort_by"),
	}
	listings, err := h.service.ListProducts(r.Context(), f)
	if err != nil {
		respondError(w, err)
		return
	}
	respond(w, http.StatusOK, listings)
}

func respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func respondError(w http.ResponseWriter, err error) {
	respond(w, apperror.Status(err), map[string]string{"error": err.Error()})
}
