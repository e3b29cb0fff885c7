// AngelaMos | 2026
// quota_test.go

package billing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostQuotaPerPlan(t *testing.T) {
	assert.Equal(t, 3, PostQuota(PlanBasic))
	assert.Equal(t, 10, PostQuota(PlanPro))
	assert.Equal(t, 20, PostQuota(PlanPremium))
	assert.Equal(t, 3, PostQuota("enterprise"))
	assert.Equal(t, 3, PostQuota(""))
}

func TestPlanRankOrdering(t *testing.T) {
	assert.Greater(t, PlanRank(PlanPremium), PlanRank(PlanPro))
	assert.Greater(t, PlanRank(PlanPro), PlanRank(PlanBasic))
	assert.Equal(t, PlanRank(PlanBasic), PlanRank("unknown"))
}

func TestCheckQuotaAtLimit(t *testing.T) {
	err := CheckQuota(PlanBasic, 3)

	require.Error(t, err)

	var quotaErr *QuotaError
	require.ErrorAs(t, err, &quotaErr)
	assert.Equal(t, PlanBasic, quotaErr.Plan)
	assert.Equal(t, 3, quotaErr.Limit)
	assert.Contains(t, quotaErr.Error(), "basic")
	assert.Contains(t, quotaErr.Error(), "3")
}

func TestCheckQuotaBelowLimit(t *testing.T) {
	assert.NoError(t, CheckQuota(PlanBasic, 2))
	assert.NoError(t, CheckQuota(PlanPro, 9))
	assert.NoError(t, CheckQuota(PlanPremium, 19))
}

func TestCountsTowardQuota(t *testing.T) {
	now := time.Now()
	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)

	assert.True(t, CountsTowardQuota(nil, now), "no end date never expires")
	assert.True(t, CountsTowardQuota(&future, now))
	assert.False(t, CountsTowardQuota(&past, now),
		"expired post frees its quota slot")
}

func TestValidPlan(t *testing.T) {
	assert.True(t, ValidPlan(PlanBasic))
	assert.True(t, ValidPlan(PlanPro))
	assert.True(t, ValidPlan(PlanPremium))
	assert.False(t, ValidPlan("free"))
	assert.False(t, ValidPlan(""))
}
