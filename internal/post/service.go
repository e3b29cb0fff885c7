// AngelaMos | 2026
// service.go

package post

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/carterperez-dev/saleboard/internal/billing"
	"github.com/carterperez-dev/saleboard/internal/core"
	"github.com/carterperez-dev/saleboard/internal/store"
)

// Guard is the entitlement gate run before any post is created. Implemented
// by the billing service.
type Guard interface {
	AuthorizeCreate(
		ctx context.Context,
		storeID string,
	) (*billing.StoreState, error)
}

type Service struct {
	db    *sqlx.DB
	repo  Repository
	guard Guard
	views ViewMarker
	now   func() time.Time
}

func NewService(db *sqlx.DB, guard Guard, views ViewMarker) *Service {
	return &Service{
		db:    db,
		repo:  NewRepository(db),
		guard: guard,
		views: views,
		now:   time.Now,
	}
}

// Create runs the full gate sequence: entitlement first (eligibility), then
// quota (volume) inside a transaction that locks the store row, so two
// concurrent creates against the same store cannot both slip under the
// limit.
func (s *Service) Create(
	ctx context.Context,
	storeID string,
	req CreatePostRequest,
) (*Post, error) {
	if _, err := s.guard.AuthorizeCreate(ctx, storeID); err != nil {
		return nil, err
	}

	newPost := &Post{
		ID:            uuid.New().String(),
		StoreID:       storeID,
		Title:         req.Title,
		Description:   req.Description,
		Category:      req.Category,
		Categories:    req.Categories,
		PriceOriginal: req.PriceOriginal,
		PriceSale:     req.PriceSale,
		Images:        req.Images,
		BuyURL:        req.BuyURL,
		StartsAt:      req.StartsAt,
		EndsAt:        req.EndsAt,
	}

	err := core.InTx(ctx, s.db, func(tx *sqlx.Tx) error {
		stores := store.NewRepository(tx)
		posts := NewRepository(tx)

		locked, err := stores.GetByIDForUpdate(ctx, storeID)
		if err != nil {
			return err
		}

		count, err := posts.CountActive(ctx, storeID, s.now())
		if err != nil {
			return err
		}

		if err := billing.CheckQuota(locked.Plan, count); err != nil {
			return err
		}

		return posts.Create(ctx, newPost)
	})
	if err != nil {
		return nil, err
	}

	return newPost, nil
}

// GetPublic returns a post for public display. Posts of banned stores read
// as not found so their existence is not leaked. A counted view is at most
// one per viewer per post within the dedup window.
func (s *Service) GetPublic(
	ctx context.Context,
	postID, viewerIP string,
) (*Listing, error) {
	listing, err := s.repo.GetListingByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	if listing.Store.IsBanned {
		return nil, fmt.Errorf("get post: %w", core.ErrNotFound)
	}

	if s.views.FirstView(ctx, ViewerKey(viewerIP, postID)) {
		if err := s.repo.IncrementViewCount(ctx, postID); err != nil {
			slog.Error("increment view count",
				"post_id", postID,
				"error", err,
			)
		} else {
			listing.ViewCount++
		}
	}

	return listing, nil
}

func (s *Service) ListPublic(
	ctx context.Context,
	filter ListFilter,
) ([]Listing, error) {
	items, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	return Rank(items, filter), nil
}

func (s *Service) Update(
	ctx context.Context,
	postID, storeID string,
	req UpdatePostRequest,
) (*Post, error) {
	existing, err := s.repo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	if existing.StoreID != storeID {
		return nil, fmt.Errorf("update post: %w", core.ErrForbidden)
	}

	if req.Title != nil {
		existing.Title = *req.Title
	}
	if req.Description != nil {
		existing.Description = *req.Description
	}
	if req.Category != nil {
		existing.Category = *req.Category
	}
	if req.Categories != nil {
		existing.Categories = *req.Categories
	}
	if req.PriceOriginal != nil {
		existing.PriceOriginal = *req.PriceOriginal
	}
	if req.PriceSale != nil {
		existing.PriceSale = *req.PriceSale
	}
	if req.Images != nil {
		existing.Images = *req.Images
	}
	if req.BuyURL != nil {
		existing.BuyURL = *req.BuyURL
	}
	if req.StartsAt != nil {
		existing.StartsAt = req.StartsAt
	}
	if req.EndsAt != nil {
		existing.EndsAt = req.EndsAt
	}

	if err := s.repo.Update(ctx, existing); err != nil {
		return nil, err
	}

	return existing, nil
}

// Delete removes a post. Admins bypass the ownership check.
func (s *Service) Delete(
	ctx context.Context,
	postID, storeID string,
	isAdmin bool,
) error {
	existing, err := s.repo.GetByID(ctx, postID)
	if err != nil {
		return err
	}

	if !isAdmin && existing.StoreID != storeID {
		return fmt.Errorf("delete post: %w", core.ErrForbidden)
	}

	return s.repo.Delete(ctx, postID)
}
