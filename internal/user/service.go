// AngelaMos | 2026
// service.go

package user

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/carterperez-dev/saleboard/internal/auth"
	"github.com/carterperez-dev/saleboard/internal/billing"
	"github.com/carterperez-dev/saleboard/internal/core"
	"github.com/carterperez-dev/saleboard/internal/store"
)

type Service struct {
	db   *sqlx.DB
	repo Repository
}

func NewService(db *sqlx.DB) *Service {
	return &Service{
		db:   db,
		repo: NewRepository(db),
	}
}

func (s *Service) GetByID(
	ctx context.Context,
	id string,
) (*auth.UserInfo, error) {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return toUserInfo(user), nil
}

func (s *Service) GetByEmail(
	ctx context.Context,
	email string,
) (*auth.UserInfo, error) {
	user, err := s.repo.GetByEmail(ctx, normalizeEmail(email))
	if err != nil {
		return nil, err
	}

	return toUserInfo(user), nil
}

// CreateStoreAccount registers a new store together with its owning user in
// one transaction. The store starts on the basic plan with a 7-day trial
// already running.
func (s *Service) CreateStoreAccount(
	ctx context.Context,
	email, passwordHash, name string,
	signup auth.StoreSignup,
) (*auth.UserInfo, error) {
	trialEnd := time.Now().Add(billing.TrialPeriod)

	newStore := &store.Store{
		ID:            uuid.New().String(),
		Name:          signup.Name,
		Address:       signup.Address,
		Phone:         signup.Phone,
		Website:       signup.Website,
		Plan:          billing.PlanBasic,
		TrialEndsAt:   &trialEnd,
		BillingStatus: billing.StatusTrial,
		Categories:    signup.Categories,
	}

	newUser := &User{
		ID:           uuid.New().String(),
		Email:        normalizeEmail(email),
		PasswordHash: passwordHash,
		Name:         name,
		Role:         RoleStore,
		StoreID:      &newStore.ID,
		Plan:         billing.PlanBasic,
	}

	err := core.InTx(ctx, s.db, func(tx *sqlx.Tx) error {
		if err := store.NewRepository(tx).Create(ctx, newStore); err != nil {
			return err
		}
		return NewRepository(tx).Create(ctx, newUser)
	})
	if err != nil {
		return nil, err
	}

	return toUserInfo(newUser), nil
}

func (s *Service) IncrementTokenVersion(
	ctx context.Context,
	userID string,
) error {
	return s.repo.IncrementTokenVersion(ctx, userID)
}

func (s *Service) UpdatePassword(
	ctx context.Context,
	userID, passwordHash string,
) error {
	return s.repo.UpdatePassword(ctx, userID, passwordHash)
}

func (s *Service) GetUser(ctx context.Context, id string) (*User, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) UpdateMe(
	ctx context.Context,
	userID string,
	req UpdateUserRequest,
) (*User, error) {
	if userID == "" {
		return nil, fmt.Errorf("update me: %w", core.ErrUnauthorized)
	}

	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		user.Name = *req.Name
	}

	if err := s.repo.Update(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

func (s *Service) EmailExists(
	ctx context.Context,
	email string,
) (bool, error) {
	return s.repo.ExistsByEmail(ctx, normalizeEmail(email))
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func toUserInfo(u *User) *auth.UserInfo {
	return &auth.UserInfo{
		ID:           u.ID,
		Email:        u.Email,
		Name:         u.Name,
		PasswordHash: u.PasswordHash,
		Role:         u.Role,
		StoreID:      u.StoreID,
		Plan:         u.Plan,
		TokenVersion: u.TokenVersion,
	}
}

var _ auth.UserProvider = (*Service)(nil)
