// AngelaMos | 2026
// service.go

package billing

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/carterperez-dev/saleboard/internal/core"
)

var (
	ErrStoreBanned  = errors.New("store is banned")
	ErrTrialExpired = errors.New("trial has expired")
)

// Activation actions, derived from the entitlement state *before* the
// activation mutates anything.
const (
	ActionTrialStarted = "trial_started"
	ActionPlanChanged  = "plan_changed"
	ActionReactivated  = "reactivated"
)

// StorePatch is an explicit partial update of a store's billing fields.
// Nil means "leave unchanged"; there is no field for which nil is a
// legitimate new value, so no Some/None wrapper is needed.
type StorePatch struct {
	Plan          *string
	TrialEndsAt   *time.Time
	BillingStatus *string
}

func (p StorePatch) IsZero() bool {
	return p.Plan == nil && p.TrialEndsAt == nil && p.BillingStatus == nil
}

// StoreProvider is the persistence contract the billing engine needs from
// the store domain.
type StoreProvider interface {
	GetState(ctx context.Context, storeID string) (*StoreState, error)
	UpdateBilling(ctx context.Context, storeID string, patch StorePatch) error
}

type Service struct {
	stores StoreProvider
	now    func() time.Time
}

func NewService(stores StoreProvider) *Service {
	return &Service{
		stores: stores,
		now:    time.Now,
	}
}

// WithNow overrides the clock. Used by tests.
func (s *Service) WithNow(now func() time.Time) *Service {
	s.now = now
	return s
}

// AuthorizeCreate decides whether a store may create a post. It must run
// before any quota check: entitlement gates eligibility, quota gates volume.
//
// Side effects: initializes trial_ends_at on first authenticated access, and
// ratchets billing_status to expired the first time an expired trial is
// observed. The ratchet is one-way; only ActivatePlan moves a store out of
// the expired state.
func (s *Service) AuthorizeCreate(
	ctx context.Context,
	storeID string,
) (*StoreState, error) {
	st, err := s.stores.GetState(ctx, storeID)
	if err != nil {
		return nil, fmt.Errorf("get store state: %w", err)
	}

	if st.IsBanned {
		return nil, ErrStoreBanned
	}

	st, err = s.ensureTrialStarted(ctx, st)
	if err != nil {
		return nil, err
	}

	ent := Evaluate(*st, s.now())
	if ent.IsExpired {
		if st.BillingStatus != StatusExpired {
			status := StatusExpired
			patch := StorePatch{BillingStatus: &status}
			if err := s.stores.UpdateBilling(ctx, storeID, patch); err != nil {
				slog.Error("persist expired billing status",
					"store_id", storeID,
					"error", err,
				)
			}
		}
		return nil, ErrTrialExpired
	}

	return st, nil
}

// GetBilling returns the entitlement view for a store, lazily starting the
// trial when it was never initialized.
func (s *Service) GetBilling(
	ctx context.Context,
	storeID string,
) (*BillingResponse, error) {
	st, err := s.stores.GetState(ctx, storeID)
	if err != nil {
		return nil, fmt.Errorf("get store state: %w", err)
	}

	st, err = s.ensureTrialStarted(ctx, st)
	if err != nil {
		return nil, err
	}

	ent := Evaluate(*st, s.now())

	return &BillingResponse{
		Plan:          st.Plan,
		BillingStatus: st.BillingStatus,
		TrialEndsAt:   ent.TrialEndsAt,
		TrialExpired:  ent.IsExpired,
		DaysLeft:      ent.DaysLeft,
		CreatedAt:     st.CreatedAt,
	}, nil
}

// ActivatePlan runs the plan activation workflow:
//
//   - first activation ever (trial never started) starts the trial;
//   - activating during a live trial changes the plan but never resets or
//     extends the trial window;
//   - activating after expiry reactivates the store by setting
//     billing_status to active. There is no payment gate in this system, so
//     this is a self-service toggle; the trust boundary is the caller being
//     authenticated as the store owner.
//
// The response's Action is derived from the pre-activation entitlement.
func (s *Service) ActivatePlan(
	ctx context.Context,
	storeID, plan string,
) (*ActivationResponse, error) {
	if !ValidPlan(plan) {
		return nil, fmt.Errorf(
			"activate plan: invalid plan %q: %w",
			plan,
			core.ErrInvalidInput,
		)
	}

	st, err := s.stores.GetState(ctx, storeID)
	if err != nil {
		return nil, fmt.Errorf("get store state: %w", err)
	}

	now := s.now()
	pre := Evaluate(*st, now)
	action := activationAction(pre)

	patch := StorePatch{Plan: &plan}

	switch {
	case st.TrialEndsAt == nil:
		trialEnd := now.Add(TrialPeriod)
		patch.TrialEndsAt = &trialEnd
	case pre.IsExpired:
		status := StatusActive
		patch.BillingStatus = &status
	}

	if err := s.stores.UpdateBilling(ctx, storeID, patch); err != nil {
		return nil, fmt.Errorf("persist plan activation: %w", err)
	}

	st.Plan = plan
	if patch.TrialEndsAt != nil {
		st.TrialEndsAt = patch.TrialEndsAt
	}
	if patch.BillingStatus != nil {
		st.BillingStatus = *patch.BillingStatus
	}

	ent := Evaluate(*st, now)

	return &ActivationResponse{
		Action:        action,
		Plan:          st.Plan,
		BillingStatus: st.BillingStatus,
		TrialEndsAt:   ent.TrialEndsAt,
		TrialExpired:  ent.IsExpired,
		DaysLeft:      ent.DaysLeft,
	}, nil
}

func activationAction(pre Entitlement) string {
	switch {
	case pre.TrialEndsAt == nil && !pre.IsExpired:
		return ActionTrialStarted
	case pre.IsExpired:
		return ActionReactivated
	default:
		return ActionPlanChanged
	}
}

// ensureTrialStarted initializes trial_ends_at exactly once, on first
// authenticated access after creation. Expired stores are excluded: they
// must go through ActivatePlan. Idempotent if two requests race; both write
// the same 7-day window within clock skew.
func (s *Service) ensureTrialStarted(
	ctx context.Context,
	st *StoreState,
) (*StoreState, error) {
	if st.TrialEndsAt != nil || st.BillingStatus == StatusExpired {
		return st, nil
	}

	trialEnd := s.now().Add(TrialPeriod)
	patch := StorePatch{TrialEndsAt: &trialEnd}

	if err := s.stores.UpdateBilling(ctx, st.ID, patch); err != nil {
		return nil, fmt.Errorf("initialize trial: %w", err)
	}

	st.TrialEndsAt = &trialEnd
	return st, nil
}
