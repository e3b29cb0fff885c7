// AngelaMos | 2026
// entity.go

package store

import (
	"time"

	"github.com/carterperez-dev/saleboard/internal/billing"
	"github.com/carterperez-dev/saleboard/internal/core"
)

type Store struct {
	ID            string          `db:"id"`
	Name          string          `db:"name"`
	Address       string          `db:"address"`
	Phone         string          `db:"phone"`
	Website       string          `db:"website"`
	Plan          string          `db:"plan"`
	TrialEndsAt   *time.Time      `db:"trial_ends_at"`
	BillingStatus string          `db:"billing_status"`
	IsBanned      bool            `db:"is_banned"`
	Categories    core.StringList `db:"categories"`
	CreatedAt     time.Time       `db:"created_at"`
	UpdatedAt     time.Time       `db:"updated_at"`
}

func (s *Store) State() billing.StoreState {
	return billing.StoreState{
		ID:            s.ID,
		Plan:          s.Plan,
		TrialEndsAt:   s.TrialEndsAt,
		BillingStatus: s.BillingStatus,
		IsBanned:      s.IsBanned,
		CreatedAt:     s.CreatedAt,
	}
}
