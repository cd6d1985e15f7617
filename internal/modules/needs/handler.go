package needs

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/medsupply-ke/medsupply-backend/internal/apperror"
	"github.com/medsupply-ke/medsupply-backend/internal/modules/auth"
	"github.com/medsupply-ke/medsupply-backend/internal/modules/user"
)

// Handler exposes needs and recommendation HTTP endpoints.
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
		r.Post("/api/needs", h.uploadNeeds)
		r.Get("/api/procure/recommend", h.recommend)
	})
}

func (h *Handler) uploadNeeds(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Needs []NeedRequest `json:"needs"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, apperror.Validation("invalid request body"))
		return
	}

	created, err := h.service.UploadNeeds(r.Context(), auth.CurrentUser(r.Context()).ID, req.Needs)
	if err != nil {
		respondError(w, err)
		return
	}
	ids := make([]uuid.UUID, 0, len(created))
	for _, n := range created {
		ids = append(ids, n.ID)
	}
	respond(w, http.StatusCreated, map[string]interface{}{"created": ids})
}

func (h *Handler) recommend(w http.ResponseWriter, r *http.Request) {
	recs, err := h.service.Recommend(r.Context(), auth.CurrentUser(r.Context()).ID)
	if err != nil {
		respondError(w, err)
		return
	}
	respond(w, http.StatusOK, recs)
}

func respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func respondError(w http.ResponseWriter, err error) {
	respond(w, apperror.Status(err), map[string]string{"error": err.Error()})
}
