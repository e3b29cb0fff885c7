// AngelaMos | 2026
// handler.go

package store

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

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

		r.Get("/stores/me", h.GetMe)
		r.Put("/stores/me", h.UpdateMe)
	})
}

// RegisterAdminRoutes registers admin-only store moderation endpoints.
func (h *Handler) RegisterAdminRoutes(
	r chi.Router,
	authenticator, adminOnly func(http.Handler) http.Handler,
) {
	r.Route("/admin/stores", func(r chi.Router) {
		r.Use(authenticator)
		r.Use(adminOnly)

		r.Get("/", h.ListStores)
		r.Get("/{storeID}", h.GetStore)
		r.Post("/{storeID}/ban", h.BanStore)
		r.Delete("/{storeID}", h.DeleteStore)
	})
}

func (h *Handler) GetMe(w http.ResponseWriter, r *http.Request) {
	storeID := middleware.GetStoreID(r.Context())

	store, err := h.service.GetMe(r.Context(), storeID)
	if err != nil {
		if errors.Is(err, core.ErrForbidden) {
			core.Forbidden(w, "no store associated with this account")
			return
		}
		if errors.Is(err, core.ErrNotFound) {
			core.NotFound(w, "store")
			return
		}
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, ToStoreResponse(store))
}

func (h *Handler) UpdateMe(w http.ResponseWriter, r *http.Request) {
	storeID := middleware.GetStoreID(r.Context())

	var req UpdateStoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	store, err := h.service.UpdateMe(r.Context(), storeID, req)
	if err != nil {
		if errors.Is(err, core.ErrForbidden) {
			core.Forbidden(w, "no store associated with this account")
			return
		}
		if errors.Is(err, core.ErrNotFound) {
			core.NotFound(w, "store")
			return
		}
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, ToStoreResponse(store))
}

// ListStores returns a paginated list of stores with optional filtering
// (admin only).
func (h *Handler) ListStores(w http.ResponseWriter, r *http.Request) {
	params := ListStoresParams{
		Page:     parseIntQuery(r, "page", 1),
		PageSize: parseIntQuery(r, "page_size", 20),
		Search:   r.URL.Query().Get("search"),
	}

	if banned := r.URL.Query().Get("banned"); banned != "" {
		parsed, err := strconv.ParseBool(banned)
		if err == nil {
			params.Banned = &parsed
		}
	}

	stores, total, err := h.service.ListStores(r.Context(), params)
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.Paginated(
		w,
		ToStoreResponseList(stores),
		params.Page,
		params.PageSize,
		total,
	)
}

func (h *Handler) GetStore(w http.ResponseWriter, r *http.Request) {
	storeID := chi.URLParam(r, "storeID")

	store, err := h.service.GetStore(r.Context(), storeID)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			core.NotFound(w, "store")
			return
		}
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, ToStoreResponse(store))
}

// BanStore sets or clears the ban flag on a store (admin only).
func (h *Handler) BanStore(w http.ResponseWriter, r *http.Request) {
	storeID := chi.URLParam(r, "storeID")

	var req BanStoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	store, err := h.service.SetBanned(r.Context(), storeID, *req.IsBanned)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			core.NotFound(w, "store")
			return
		}
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, ToStoreResponse(store))
}

// DeleteStore removes a store and all content belonging to it (admin only).
func (h *Handler) DeleteStore(w http.ResponseWriter, r *http.Request) {
	storeID := chi.URLParam(r, "storeID")

	if err := h.service.DeleteStore(r.Context(), storeID); err != nil {
		if errors.Is(err, core.ErrNotFound) {
			core.NotFound(w, "store")
			return
		}
		core.InternalServerError(w, err)
		return
	}

	core.NoContent(w)
}

func parseIntQuery(r *http.Request, key string, defaultVal int) int {
	val := r.URL.Query().Get(key)
	if val == "" {
		return defaultVal
	}

	parsed, err := strconv.Atoi(val)
	if err != nil {
		return defaultVal
	}

	return parsed
}
