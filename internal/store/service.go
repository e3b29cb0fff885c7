// AngelaMos | 2026
// service.go

package store

import (
	"context"
	"fmt"

	"github.com/carterperez-dev/saleboard/internal/billing"
	"github.com/carterperez-dev/saleboard/internal/core"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) GetState(
	ctx context.Context,
	storeID string,
) (*billing.StoreState, error) {
	store, err := s.repo.GetByID(ctx, storeID)
	if err != nil {
		return nil, err
	}

	state := store.State()
	return &state, nil
}

func (s *Service) UpdateBilling(
	ctx context.Context,
	storeID string,
	patch billing.StorePatch,
) error {
	return s.repo.UpdateBilling(ctx, storeID, patch)
}

func (s *Service) GetStore(ctx context.Context, id string) (*Store, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) GetMe(ctx context.Context, storeID string) (*Store, error) {
	if storeID == "" {
		return nil, fmt.Errorf("get store: %w", core.ErrForbidden)
	}

	return s.repo.GetByID(ctx, storeID)
}

func (s *Service) UpdateMe(
	ctx context.Context,
	storeID string,
	req UpdateStoreRequest,
) (*Store, error) {
	if storeID == "" {
		return nil, fmt.Errorf("update store: %w", core.ErrForbidden)
	}

	store, err := s.repo.GetByID(ctx, storeID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		store.Name = *req.Name
	}
	if req.Address != nil {
		store.Address = *req.Address
	}
	if req.Phone != nil {
		store.Phone = *req.Phone
	}
	if req.Website != nil {
		store.Website = *req.Website
	}
	if req.Categories != nil {
		store.Categories = *req.Categories
	}

	if err := s.repo.Update(ctx, store); err != nil {
		return nil, err
	}

	return store, nil
}

// SetBanned toggles the admin ban flag. The effect is immediate: the access
// guard denies new posts and the ranking pipeline hides existing ones on the
// next request.
func (s *Service) SetBanned(
	ctx context.Context,
	storeID string,
	banned bool,
) (*Store, error) {
	if err := s.repo.SetBanned(ctx, storeID, banned); err != nil {
		return nil, err
	}

	return s.repo.GetByID(ctx, storeID)
}

// DeleteStore removes a store and, through schema cascades, all of its
// posts, users, and their sessions.
func (s *Service) DeleteStore(ctx context.Context, storeID string) error {
	return s.repo.Delete(ctx, storeID)
}

func (s *Service) ListStores(
	ctx context.Context,
	params ListStoresParams,
) ([]Store, int, error) {
	return s.repo.List(ctx, params)
}

func (s *Service) MarketplaceOverview(
	ctx context.Context,
) (*Overview, error) {
	return s.repo.Overview(ctx)
}

var _ billing.StoreProvider = (*Service)(nil)
