// AngelaMos | 2026
// ranking_test.go

package post

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carterperez-dev/saleboard/internal/billing"
)

func listing(id, title, plan string, createdAt time.Time) Listing {
	return Listing{
		Post: Post{
			ID:        id,
			Title:     title,
			CreatedAt: createdAt,
		},
		Store: StoreSummary{
			ID:   "store-" + id,
			Plan: plan,
		},
	}
}

func TestRankPlanBeatsRecency(t *testing.T) {
	now := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)

	items := []Listing{
		listing("basic-today", "Fresh basic deal", billing.PlanBasic, now),
		listing(
			"premium-yesterday",
			"Older premium deal",
			billing.PlanPremium,
			now.Add(-24*time.Hour),
		),
	}

	ranked := Rank(items, ListFilter{})

	require.Len(t, ranked, 2)
	assert.Equal(t, "premium-yesterday", ranked[0].ID,
		"premium lists above basic regardless of age")
	assert.Equal(t, "basic-today", ranked[1].ID)
}

func TestRankRecencyBreaksTies(t *testing.T) {
	now := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)

	items := []Listing{
		listing("older", "Deal A", billing.PlanPro, now.Add(-time.Hour)),
		listing("newer", "Deal B", billing.PlanPro, now),
	}

	ranked := Rank(items, ListFilter{})

	require.Len(t, ranked, 2)
	assert.Equal(t, "newer", ranked[0].ID)
	assert.Equal(t, "older", ranked[1].ID)
}

func TestRankRemovesBannedStores(t *testing.T) {
	now := time.Now()

	banned := listing("banned", "Great deal", billing.PlanPremium, now)
	banned.Store.IsBanned = true

	items := []Listing{
		banned,
		listing("visible", "Great deal", billing.PlanBasic, now),
	}

	ranked := Rank(items, ListFilter{})

	require.Len(t, ranked, 1)
	assert.Equal(t, "visible", ranked[0].ID,
		"banned stores are invisible even on the top plan")
}

func TestRankTitleFilter(t *testing.T) {
	now := time.Now()

	items := []Listing{
		listing("p1", "Half-price Espresso Machine", billing.PlanBasic, now),
		listing("p2", "Winter jackets sale", billing.PlanBasic, now),
	}

	ranked := Rank(items, ListFilter{Query: "espresso"})

	require.Len(t, ranked, 1)
	assert.Equal(t, "p1", ranked[0].ID)
}

func TestRankCategoryFilter(t *testing.T) {
	now := time.Now()

	primary := listing("p1", "Deal one", billing.PlanBasic, now)
	primary.Category = "Electronics"

	secondary := listing("p2", "Deal two", billing.PlanBasic, now)
	secondary.Category = "Home"
	secondary.Categories = []string{"electronics", "kitchen"}

	other := listing("p3", "Deal three", billing.PlanBasic, now)
	other.Category = "Fashion"

	ranked := Rank(
		[]Listing{primary, secondary, other},
		ListFilter{Category: "electronics"},
	)

	require.Len(t, ranked, 2)
	ids := []string{ranked[0].ID, ranked[1].ID}
	assert.Contains(t, ids, "p1")
	assert.Contains(t, ids, "p2")
}

func TestRankZeroCreatedAtSortsOldest(t *testing.T) {
	now := time.Now()

	items := []Listing{
		listing("no-timestamp", "Deal", billing.PlanBasic, time.Time{}),
		listing("timestamped", "Deal", billing.PlanBasic, now),
	}

	ranked := Rank(items, ListFilter{})

	require.Len(t, ranked, 2)
	assert.Equal(t, "timestamped", ranked[0].ID)
	assert.Equal(t, "no-timestamp", ranked[1].ID)
}

func TestRankEmptyInput(t *testing.T) {
	assert.Empty(t, Rank(nil, ListFilter{}))
	assert.Empty(t, Rank([]Listing{}, ListFilter{Query: "anything"}))
}
