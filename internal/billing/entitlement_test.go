// AngelaMos | 2026
// entitlement_test.go

package billing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluateTrialRunning(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	trialEnd := now.Add(3 * 24 * time.Hour)

	ent := Evaluate(StoreState{
		Plan:          PlanBasic,
		TrialEndsAt:   &trialEnd,
		BillingStatus: StatusTrial,
	}, now)

	assert.Equal(t, StatusTrial, ent.Status)
	assert.False(t, ent.IsExpired)
	require.NotNil(t, ent.DaysLeft)
	assert.Equal(t, 3, *ent.DaysLeft)
}

func TestEvaluateTrialExpired(t *testing.T) {
	now := time.Date(2026, 3, 9, 0, 0, 1, 0, time.UTC)
	trialEnd := time.Date(2026, 3, 8, 0, 0, 0, 0, time.UTC)

	ent := Evaluate(StoreState{
		Plan:          PlanBasic,
		TrialEndsAt:   &trialEnd,
		BillingStatus: StatusTrial,
	}, now)

	assert.Equal(t, StatusExpired, ent.Status)
	assert.True(t, ent.IsExpired)
}

func TestEvaluateActiveOverridesExpiredTrial(t *testing.T) {
	now := time.Date(2026, 3, 20, 0, 0, 0, 0, time.UTC)
	trialEnd := now.Add(-10 * 24 * time.Hour)

	ent := Evaluate(StoreState{
		Plan:          PlanPro,
		TrialEndsAt:   &trialEnd,
		BillingStatus: StatusActive,
	}, now)

	assert.Equal(t, StatusActive, ent.Status)
	assert.False(t, ent.IsExpired)
}

func TestEvaluateNilTrialNotExpired(t *testing.T) {
	now := time.Now()

	ent := Evaluate(StoreState{
		Plan:          PlanBasic,
		BillingStatus: StatusTrial,
	}, now)

	assert.Equal(t, StatusTrial, ent.Status)
	assert.False(t, ent.IsExpired)
	assert.Nil(t, ent.DaysLeft)
}

func TestEvaluateNilTrialWithStoredExpiredStatus(t *testing.T) {
	ent := Evaluate(StoreState{
		Plan:          PlanBasic,
		BillingStatus: StatusExpired,
	}, time.Now())

	assert.Equal(t, StatusExpired, ent.Status)
	assert.True(t, ent.IsExpired)
}

func TestEvaluateDaysLeftRoundsUp(t *testing.T) {
	now := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	// 1.5 days remaining reads as 2 days for display
	trialEnd := now.Add(36 * time.Hour)

	ent := Evaluate(StoreState{
		Plan:          PlanBasic,
		TrialEndsAt:   &trialEnd,
		BillingStatus: StatusTrial,
	}, now)

	require.NotNil(t, ent.DaysLeft)
	assert.Equal(t, 2, *ent.DaysLeft)
}

func TestEvaluateIsDeterministic(t *testing.T) {
	now := time.Date(2026, 3, 5, 6, 7, 8, 0, time.UTC)
	trialEnd := now.Add(24 * time.Hour)
	st := StoreState{
		Plan:          PlanPremium,
		TrialEndsAt:   &trialEnd,
		BillingStatus: StatusTrial,
	}

	first := Evaluate(st, now)
	second := Evaluate(st, now)

	assert.Equal(t, first, second)
}
