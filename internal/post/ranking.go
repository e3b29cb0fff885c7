// AngelaMos | 2026
// ranking.go

package post

import (
	"sort"
	"strings"
	"time"

	"github.com/carterperez-dev/saleboard/internal/billing"
	"github.com/carterperez-dev/saleboard/internal/core"
)

// StoreSummary is the denormalized store projection joined onto public
// listings.
type StoreSummary struct {
	ID            string          `db:"id"`
	Name          string          `db:"name"`
	Address       string          `db:"address"`
	Phone         string          `db:"phone"`
	Website       string          `db:"website"`
	Plan          string          `db:"plan"`
	BillingStatus string          `db:"billing_status"`
	IsBanned      bool            `db:"is_banned"`
	Categories    core.StringList `db:"categories"`
	CreatedAt     time.Time       `db:"created_at"`
}

type Listing struct {
	Post
	Store StoreSummary `db:"store"`
}

type ListFilter struct {
	Query    string
	Category string
}

// Rank is the public visibility and ordering pipeline:
//
//  1. optional case-insensitive substring filter on the title;
//  2. optional category filter (primary category or category list);
//  3. posts from banned stores are removed;
//  4. ordering by plan rank descending (premium > pro > basic), ties broken
//     by creation time descending. A zero creation time sorts oldest.
//
// This is the only place plan tier affects visibility: paying stores list
// first.
func Rank(items []Listing, filter ListFilter) []Listing {
	query := strings.ToLower(strings.TrimSpace(filter.Query))

	visible := make([]Listing, 0, len(items))
	for _, item := range items {
		if item.Store.IsBanned {
			continue
		}
		if query != "" &&
			!strings.Contains(strings.ToLower(item.Title), query) {
			continue
		}
		if filter.Category != "" && !matchesCategory(item, filter.Category) {
			continue
		}
		visible = append(visible, item)
	}

	sort.SliceStable(visible, func(i, j int) bool {
		rankI := billing.PlanRank(visible[i].Store.Plan)
		rankJ := billing.PlanRank(visible[j].Store.Plan)
		if rankI != rankJ {
			return rankI > rankJ
		}
		return visible[i].CreatedAt.After(visible[j].CreatedAt)
	})

	return visible
}

func matchesCategory(item Listing, category string) bool {
	if strings.EqualFold(item.Category, category) {
		return true
	}
	for _, c := range item.Categories {
		if strings.EqualFold(c, category) {
			return true
		}
	}
	return false
}
