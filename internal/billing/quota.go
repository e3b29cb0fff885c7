// AngelaMos | 2026
// quota.go

package billing

import (
	"fmt"
	"time"
)

// QuotaError reports that a store has reached its plan's active-post limit.
// The message carries the plan name and numeric limit for user display.
type QuotaError struct {
	Plan  string
	Limit int
}

func (e *QuotaError) Error() string {
	return fmt.Sprintf(
		"the %s plan allows up to %d active posts; delete or wait for an existing post to expire, or upgrade your plan",
		e.Plan,
		e.Limit,
	)
}

// CheckQuota compares a store's current active-post count against its plan
// limit. Posts past their end date do not count; callers are expected to
// count with CountsTowardQuota semantics.
func CheckQuota(plan string, activeCount int) error {
	limit := PostQuota(plan)
	if activeCount >= limit {
		return &QuotaError{Plan: plan, Limit: limit}
	}
	return nil
}

// CountsTowardQuota reports whether a post with the given end date occupies
// a quota slot at the given instant. A missing end date means the post never
// expires.
func CountsTowardQuota(endsAt *time.Time, now time.Time) bool {
	return endsAt == nil || endsAt.After(now)
}
