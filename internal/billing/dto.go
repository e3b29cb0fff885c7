// AngelaMos | 2026
// dto.go

package billing

import (
	"time"
)

type ActivatePlanRequest struct {
	Plan string `json:"plan" validate:"required,oneof=basic pro premium"`
}

type BillingResponse struct {
	Plan          string     `json:"plan"`
	BillingStatus string     `json:"billing_status"`
	TrialEndsAt   *time.Time `json:"trial_ends_at"`
	TrialExpired  bool       `json:"trial_expired"`
	DaysLeft      *int       `json:"days_left"`
	CreatedAt     time.Time  `json:"created_at"`
}

type ActivationResponse struct {
	Action        string     `json:"action"`
	Plan          string     `json:"plan"`
	BillingStatus string     `json:"billing_status"`
	TrialEndsAt   *time.Time `json:"trial_ends_at"`
	TrialExpired  bool       `json:"trial_expired"`
	DaysLeft      *int       `json:"days_left"`
}
