package order

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/medsupply-ke/medsupply-backend/internal/apperror"
	"github.com/medsupply-ke/medsupply-backend/internal/courier"
	"github.com/medsupply-ke/medsupply-backend/internal/modules/auth"
	"github.com/medsupply-ke/medsupply-backend/internal/modules/user"
)

// Handler exposes order HTTP endpoints.
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
		r.Post("/api/orders", h.placeOrder)
	})
	r.Group(func(r chi.Router) {
		r.Use(h.mw.Authenticate)
		r.Get("/api/orders", h.listOrders)
		r.Post("/api/orders/{id}/status", h.updateStatus)
		r.Get("/api/orders/{id}/courier_link", h.courierLink)
	})
}

func (h *Handler) placeOrder(w http.ResponseWriter, r *http.Request) {
	var req PlaceOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, apperror.Validation("invalid request body"))
		return
	}

	o, err := h.service.PlaceOrder(r.Context(), auth.CurrentUser(r.Context()), req)
	if err != nil {
		respondError(w, err)
		return
	}
	respond(w, http.StatusCreated, map[string]interface{}{"ok": true, "order_id": o.ID})
}

func (h *Handler) listOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.service.ListOrders(r.Context(), auth.CurrentUser(r.Context()))
	if err != nil {
		respondError(w, err)
		return
	}
	respond(w, http.StatusOK, orders)
}

func (h *Handler) updateStatus(w http.ResponseWriter, r *http.Request) {
	var req UpdateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, apperror.Validation("invalid request body"))
		return
	}

	o, err := h.service.UpdateOrderStatus(r.Context(), auth.CurrentUser(r.Context()), chi.URLParam(r, "id"), Status(req.Status))
	if err != nil {
		respondError(w, err)
		return
	}
	respond(w, http.StatusOK, map[string]interface{}{"ok": true, "status": o.Status})
}

func (h *Handler) courierLink(w http.ResponseWriter, r *http.Request) {
	var dropoff courier.Point
	if lat := r.URL.Query().Get("lat"); lat != "" {
		if lon := r.URL.Query().Get("lon"); lon != "" {
			var err error
			if dropoff.Lat, err = strconv.ParseFloat(lat, 64); err != nil {
				respondError(w, apperror.Validation("invalid lat"))
				return
			}
			if dropoff.Lon, err = strconv.ParseFloat(lon, 64); err != nil {
				respondError(w, apperror.Validation("invalid lon"))
				return
			}
		}
	}

	links, err := h.service.CourierLink(r.Context(), chi.URLParam(r, "id"), dropoff)
	if err != nil {
		respondError(w, err)
		return
	}
	respond(w, http.StatusOK, map[string]interface{}{"courier_link": links})
}

func respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func respondError(w http.ResponseWriter, err error) {
	respond(w, apperror.Status(err), map[string]string{"error": err.Error()})
}
