// AngelaMos | 2026
// handler.go

package post

import (
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/carterperez-dev/saleboard/internal/billing"
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
	r.Get("/posts", h.ListPosts)
	r.Get("/posts/{postID}", h.GetPost)

	r.Group(func(r chi.Router) {
		r.Use(authenticator)
		r.Use(storeOnly)

		r.Post("/posts", h.CreatePost)
		r.Put("/posts/{postID}", h.UpdatePost)
		r.Delete("/posts/{postID}", h.DeletePost)
	})
}

// RegisterAdminRoutes registers admin-only post moderation endpoints.
func (h *Handler) RegisterAdminRoutes(
	r chi.Router,
	authenticator, adminOnly func(http.Handler) http.Handler,
) {
	r.Route("/admin/posts", func(r chi.Router) {
		r.Use(authenticator)
		r.Use(adminOnly)

		r.Delete("/{postID}", h.AdminDeletePost)
	})
}

// ListPosts is the public browse endpoint backed by the ranking pipeline.
func (h *Handler) ListPosts(w http.ResponseWriter, r *http.Request) {
	filter := ListFilter{
		Query:    r.URL.Query().Get("q"),
		Category: r.URL.Query().Get("category"),
	}

	listings, err := h.service.ListPublic(r.Context(), filter)
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, ToListingResponseList(listings))
}

func (h *Handler) GetPost(w http.ResponseWriter, r *http.Request) {
	postID := chi.URLParam(r, "postID")

	listing, err := h.service.GetPublic(
		r.Context(),
		postID,
		extractIPAddress(r),
	)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			core.NotFound(w, "post")
			return
		}
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, ToListingResponse(listing))
}

func (h *Handler) CreatePost(w http.ResponseWriter, r *http.Request) {
	storeID := middleware.GetStoreID(r.Context())
	if storeID == "" {
		core.Forbidden(w, "no store associated with this account")
		return
	}

	var req CreatePostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	created, err := h.service.Create(r.Context(), storeID, req)
	if err != nil {
		handleCreateDenial(w, err)
		return
	}

	core.Created(w, ToPostResponse(created))
}

func (h *Handler) UpdatePost(w http.ResponseWriter, r *http.Request) {
	storeID := middleware.GetStoreID(r.Context())
	postID := chi.URLParam(r, "postID")

	var req UpdatePostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	updated, err := h.service.Update(r.Context(), postID, storeID, req)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			core.NotFound(w, "post")
			return
		}
		if errors.Is(err, core.ErrForbidden) {
			core.Forbidden(w, "you do not own this post")
			return
		}
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, ToPostResponse(updated))
}

func (h *Handler) DeletePost(w http.ResponseWriter, r *http.Request) {
	storeID := middleware.GetStoreID(r.Context())
	postID := chi.URLParam(r, "postID")

	err := h.service.Delete(r.Context(), postID, storeID, false)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			core.NotFound(w, "post")
			return
		}
		if errors.Is(err, core.ErrForbidden) {
			core.Forbidden(w, "you do not own this post")
			return
		}
		core.InternalServerError(w, err)
		return
	}

	core.NoContent(w)
}

// AdminDeletePost removes any post regardless of ownership (admin only).
func (h *Handler) AdminDeletePost(w http.ResponseWriter, r *http.Request) {
	postID := chi.URLParam(r, "postID")

	if err := h.service.Delete(r.Context(), postID, "", true); err != nil {
		if errors.Is(err, core.ErrNotFound) {
			core.NotFound(w, "post")
			return
		}
		core.InternalServerError(w, err)
		return
	}

	core.NoContent(w)
}

// handleCreateDenial maps entitlement and quota denials to 403 with a
// reason code the client can branch on: banned stores get a contact-support
// message, expired trials an upgrade prompt, and quota hits the numeric
// limit.
func handleCreateDenial(w http.ResponseWriter, err error) {
	var quotaErr *billing.QuotaError
	switch {
	case errors.Is(err, billing.ErrStoreBanned):
		core.JSONError(w, core.NewAppError(
			core.ErrForbidden,
			"your store has been banned; contact support",
			http.StatusForbidden,
			"STORE_BANNED",
		))
	case errors.Is(err, billing.ErrTrialExpired):
		core.JSONError(w, core.NewAppError(
			core.ErrForbidden,
			"your trial has expired; activate a plan to keep posting",
			http.StatusForbidden,
			"TRIAL_EXPIRED",
		))
	case errors.As(err, &quotaErr):
		core.JSONError(w, core.NewAppError(
			core.ErrForbidden,
			quotaErr.Error(),
			http.StatusForbidden,
			"QUOTA_EXCEEDED",
		))
	case errors.Is(err, core.ErrNotFound):
		core.NotFound(w, "store")
	default:
		core.InternalServerError(w, err)
	}
}

func extractIPAddress(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		ips := strings.Split(xff, ",")
		return strings.TrimSpace(ips[len(ips)-1])
	}

	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return xri
	}

	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}

	return ip
}
