// AngelaMos | 2026
// service_test.go

package billing

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carterperez-dev/saleboard/internal/core"
)

type fakeStoreProvider struct {
	state     StoreState
	patches   []StorePatch
	getErr    error
	updateErr error
}

func (f *fakeStoreProvider) GetState(
	_ context.Context,
	_ string,
) (*StoreState, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	st := f.state
	return &st, nil
}

func (f *fakeStoreProvider) UpdateBilling(
	_ context.Context,
	_ string,
	patch StorePatch,
) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	f.patches = append(f.patches, patch)
	if patch.Plan != nil {
		f.state.Plan = *patch.Plan
	}
	if patch.TrialEndsAt != nil {
		f.state.TrialEndsAt = patch.TrialEndsAt
	}
	if patch.BillingStatus != nil {
		f.state.BillingStatus = *patch.BillingStatus
	}
	return nil
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestAuthorizeCreateBanned(t *testing.T) {
	stores := &fakeStoreProvider{state: StoreState{
		ID:            "s1",
		Plan:          PlanBasic,
		BillingStatus: StatusTrial,
		IsBanned:      true,
	}}
	svc := NewService(stores)

	_, err := svc.AuthorizeCreate(context.Background(), "s1")

	require.ErrorIs(t, err, ErrStoreBanned)
	assert.Empty(t, stores.patches, "banned stores never mutate billing state")
}

func TestAuthorizeCreateStartsTrialLazily(t *testing.T) {
	now := time.Date(2026, 4, 1, 10, 0, 0, 0, time.UTC)
	stores := &fakeStoreProvider{state: StoreState{
		ID:            "s1",
		Plan:          PlanBasic,
		BillingStatus: StatusTrial,
	}}
	svc := NewService(stores).WithNow(fixedClock(now))

	st, err := svc.AuthorizeCreate(context.Background(), "s1")

	require.NoError(t, err)
	require.NotNil(t, st.TrialEndsAt)
	assert.Equal(t, now.Add(TrialPeriod), *st.TrialEndsAt)
	require.Len(t, stores.patches, 1)
	require.NotNil(t, stores.patches[0].TrialEndsAt)
}

func TestAuthorizeCreateExpiredTrialRatchets(t *testing.T) {
	start := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
	trialEnd := start.Add(TrialPeriod)
	eighthDay := start.Add(8 * 24 * time.Hour)

	stores := &fakeStoreProvider{state: StoreState{
		ID:            "s1",
		Plan:          PlanBasic,
		TrialEndsAt:   &trialEnd,
		BillingStatus: StatusTrial,
	}}
	svc := NewService(stores).WithNow(fixedClock(eighthDay))

	_, err := svc.AuthorizeCreate(context.Background(), "s1")

	require.ErrorIs(t, err, ErrTrialExpired)
	require.Len(t, stores.patches, 1)
	require.NotNil(t, stores.patches[0].BillingStatus)
	assert.Equal(t, StatusExpired, *stores.patches[0].BillingStatus)

	// second attempt observes the persisted status and does not re-patch
	_, err = svc.AuthorizeCreate(context.Background(), "s1")
	require.ErrorIs(t, err, ErrTrialExpired)
	assert.Len(t, stores.patches, 1)
}

func TestAuthorizeCreateActiveIgnoresPastTrial(t *testing.T) {
	now := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	trialEnd := now.Add(-30 * 24 * time.Hour)

	stores := &fakeStoreProvider{state: StoreState{
		ID:            "s1",
		Plan:          PlanPro,
		TrialEndsAt:   &trialEnd,
		BillingStatus: StatusActive,
	}}
	svc := NewService(stores).WithNow(fixedClock(now))

	st, err := svc.AuthorizeCreate(context.Background(), "s1")

	require.NoError(t, err)
	assert.Equal(t, StatusActive, st.BillingStatus)
	assert.Empty(t, stores.patches)
}

func TestGetBillingStartsTrialAndReportsDaysLeft(t *testing.T) {
	now := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
	stores := &fakeStoreProvider{state: StoreState{
		ID:            "s1",
		Plan:          PlanBasic,
		BillingStatus: StatusTrial,
	}}
	svc := NewService(stores).WithNow(fixedClock(now))

	resp, err := svc.GetBilling(context.Background(), "s1")

	require.NoError(t, err)
	assert.Equal(t, PlanBasic, resp.Plan)
	assert.False(t, resp.TrialExpired)
	require.NotNil(t, resp.TrialEndsAt)
	assert.Equal(t, now.Add(TrialPeriod), *resp.TrialEndsAt)
	require.NotNil(t, resp.DaysLeft)
	assert.Equal(t, 7, *resp.DaysLeft)
}

func TestGetBillingExpiredStoreDoesNotRestartTrial(t *testing.T) {
	stores := &fakeStoreProvider{state: StoreState{
		ID:            "s1",
		Plan:          PlanBasic,
		BillingStatus: StatusExpired,
	}}
	svc := NewService(stores)

	resp, err := svc.GetBilling(context.Background(), "s1")

	require.NoError(t, err)
	assert.True(t, resp.TrialExpired)
	assert.Empty(t, stores.patches)
}

func TestActivatePlanInvalidPlan(t *testing.T) {
	svc := NewService(&fakeStoreProvider{})

	_, err := svc.ActivatePlan(context.Background(), "s1", "enterprise")

	require.ErrorIs(t, err, core.ErrInvalidInput)
}

func TestActivatePlanFirstActivationStartsTrial(t *testing.T) {
	now := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
	stores := &fakeStoreProvider{state: StoreState{
		ID:            "s1",
		Plan:          PlanBasic,
		BillingStatus: StatusTrial,
	}}
	svc := NewService(stores).WithNow(fixedClock(now))

	resp, err := svc.ActivatePlan(context.Background(), "s1", PlanPro)

	require.NoError(t, err)
	assert.Equal(t, ActionTrialStarted, resp.Action)
	assert.Equal(t, PlanPro, resp.Plan)
	require.NotNil(t, resp.TrialEndsAt)
	assert.Equal(t, now.Add(TrialPeriod), *resp.TrialEndsAt)
	assert.False(t, resp.TrialExpired)
}

func TestActivatePlanDuringTrialKeepsWindow(t *testing.T) {
	now := time.Date(2026, 4, 3, 0, 0, 0, 0, time.UTC)
	trialEnd := now.Add(4 * 24 * time.Hour)
	stores := &fakeStoreProvider{state: StoreState{
		ID:            "s1",
		Plan:          PlanBasic,
		TrialEndsAt:   &trialEnd,
		BillingStatus: StatusTrial,
	}}
	svc := NewService(stores).WithNow(fixedClock(now))

	resp, err := svc.ActivatePlan(context.Background(), "s1", PlanPremium)

	require.NoError(t, err)
	assert.Equal(t, ActionPlanChanged, resp.Action)
	assert.Equal(t, PlanPremium, resp.Plan)
	require.NotNil(t, resp.TrialEndsAt)
	assert.Equal(t, trialEnd, *resp.TrialEndsAt,
		"changing plans never resets or extends the trial")
}

func TestActivatePlanAfterExpiryReactivates(t *testing.T) {
	now := time.Date(2026, 4, 20, 0, 0, 0, 0, time.UTC)
	trialEnd := now.Add(-5 * 24 * time.Hour)
	stores := &fakeStoreProvider{state: StoreState{
		ID:            "s1",
		Plan:          PlanBasic,
		TrialEndsAt:   &trialEnd,
		BillingStatus: StatusExpired,
	}}
	svc := NewService(stores).WithNow(fixedClock(now))

	resp, err := svc.ActivatePlan(context.Background(), "s1", PlanPro)

	require.NoError(t, err)
	assert.Equal(t, ActionReactivated, resp.Action)
	assert.Equal(t, StatusActive, resp.BillingStatus)
	assert.False(t, resp.TrialExpired)
}

func TestActivatePlanPersistFailure(t *testing.T) {
	boom := errors.New("connection reset")
	stores := &fakeStoreProvider{
		state: StoreState{
			ID:            "s1",
			Plan:          PlanBasic,
			BillingStatus: StatusTrial,
		},
		updateErr: boom,
	}
	svc := NewService(stores)

	_, err := svc.ActivatePlan(context.Background(), "s1", PlanPro)

	require.ErrorIs(t, err, boom)
}
