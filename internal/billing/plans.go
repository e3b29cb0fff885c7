// AngelaMos | 2026
// plans.go

package billing

import (
	"time"
)

const (
	PlanBasic   = "basic"
	PlanPro     = "pro"
	PlanPremium = "premium"
)

const (
	StatusTrial   = "trial"
	StatusActive  = "active"
	StatusExpired = "expired"
)

// TrialPeriod is the fixed trial window granted on store registration or on
// first authenticated access when the trial was never initialized.
const TrialPeriod = 7 * 24 * time.Hour

var planQuotas = map[string]int{
	PlanBasic:   3,
	PlanPro:     10,
	PlanPremium: 20,
}

var planRanks = map[string]int{
	PlanBasic:   1,
	PlanPro:     2,
	PlanPremium: 3,
}

// PostQuota returns the maximum number of active posts a plan allows.
// Unknown plans fall back to the basic limit.
func PostQuota(plan string) int {
	if quota, ok := planQuotas[plan]; ok {
		return quota
	}
	return planQuotas[PlanBasic]
}

// PlanRank orders plans for listing priority. Higher ranks list first.
func PlanRank(plan string) int {
	if rank, ok := planRanks[plan]; ok {
		return rank
	}
	return planRanks[PlanBasic]
}

func ValidPlan(plan string) bool {
	_, ok := planQuotas[plan]
	return ok
}
