// AngelaMos | 2026
// entitlement.go

package billing

import (
	"math"
	"time"
)

// StoreState is the billing-relevant projection of a store record. The store
// package converts its entity into this shape so the evaluator stays free of
// cross-package dependencies.
type StoreState struct {
	ID            string
	Plan          string
	TrialEndsAt   *time.Time
	BillingStatus string
	IsBanned      bool
	CreatedAt     time.Time
}

// Entitlement is the derived trial/billing state gating content creation.
type Entitlement struct {
	Status      string
	TrialEndsAt *time.Time
	DaysLeft    *int
	IsExpired   bool
}

// Evaluate computes the entitlement for a store at the given instant.
// Pure and deterministic: identical inputs always yield identical output.
//
// An active billing status overrides trial expiry entirely, even when
// trial_ends_at is in the past. A nil trial_ends_at means the trial has not
// started yet and is never treated as expired; callers that need to gate on
// it must lazily initialize the trial first.
func Evaluate(st StoreState, now time.Time) Entitlement {
	ent := Entitlement{
		Status:      StatusTrial,
		TrialEndsAt: st.TrialEndsAt,
		DaysLeft:    daysLeft(st.TrialEndsAt, now),
	}

	if st.BillingStatus == StatusActive {
		ent.Status = StatusActive
		return ent
	}

	if st.TrialEndsAt == nil {
		if st.BillingStatus == StatusExpired {
			ent.Status = StatusExpired
			ent.IsExpired = true
		}
		return ent
	}

	if now.After(*st.TrialEndsAt) {
		ent.Status = StatusExpired
		ent.IsExpired = true
	}

	return ent
}

func daysLeft(trialEndsAt *time.Time, now time.Time) *int {
	if trialEndsAt == nil {
		return nil
	}

	days := int(math.Ceil(trialEndsAt.Sub(now).Hours() / 24))
	return &days
}
