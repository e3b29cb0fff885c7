// AngelaMos | 2026
// handler.go

package billing

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/carterperez-dev/saleboard/internal/core"
	"github.com/carterperez-dev/saleboard/internal/middleware"
)

type Handler struct {
	service   *Service
	validator *validator.Validate
}

func NewHandler(service *Service) *Handler {
	return &Handler{
		service:   service,
		validator: validator.New(validator.WithRequiredStructEnabled()),
	}
}

func (h *Handler) RegisterRoutes(
	r chi.Router,
	authenticator, storeOnly func(http.Handler) http.Handler,
) {
	r.Group(func(r chi.Router) {
		r.Use(authenticator)
		r.Use(storeOnly)

		r.Get("/stores/me/billing", h.GetBilling)
		r.Post("/stores/activate-plan", h.ActivatePlan)
	})
}

func (h *Handler) GetBilling(w http.ResponseWriter, r *http.Request) {
	storeID := middleware.GetStoreID(r.Context())
	if storeID == "" {
		core.Forbidden(w, "no store associated with this account")
		return
	}

	resp, err := h.service.GetBilling(r.Context(), storeID)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			core.NotFound(w, "store")
			return
		}
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, resp)
}

func (h *Handler) ActivatePlan(w http.ResponseWriter, r *http.Request) {
	storeID := middleware.GetStoreID(r.Context())
	if storeID == "" {
		core.Forbidden(w, "no store associated with this account")
		return
	}

	var req ActivatePlanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	resp, err := h.service.ActivatePlan(r.Context(), storeID, req.Plan)
	if err != nil {
		if errors.Is(err, core.ErrInvalidInput) {
			core.BadRequest(w, "plan must be one of: basic pro premium")
			return
		}
		if errors.Is(err, core.ErrNotFound) {
			core.NotFound(w, "store")
			return
		}
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, resp)
}
