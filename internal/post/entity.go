// AngelaMos | 2026
// entity.go

package post

import (
	"math"
	"time"

	"github.com/carterperez-dev/saleboard/internal/core"
)

type Post struct {
	ID            string          `db:"id"`
	StoreID       string          `db:"store_id"`
	Title         string          `db:"title"`
	Description   string          `db:"description"`
	Category      string          `db:"category"`
	Categories    core.StringList `db:"categories"`
	PriceOriginal float64         `db:"price_original"`
	PriceSale     float64         `db:"price_sale"`
	Images        core.StringList `db:"images"`
	BuyURL        string          `db:"buy_url"`
	StartsAt      *time.Time      `db:"starts_at"`
	EndsAt        *time.Time      `db:"ends_at"`
	ViewCount     int64           `db:"view_count"`
	CreatedAt     time.Time       `db:"created_at"`
	UpdatedAt     time.Time       `db:"updated_at"`
}

// IsActiveAt reports whether the post's validity window covers the given
// instant. A post with no end date never expires, regardless of start date.
func (p *Post) IsActiveAt(now time.Time) bool {
	if p.EndsAt == nil {
		return true
	}
	if p.StartsAt != nil && now.Before(*p.StartsAt) {
		return false
	}
	return p.EndsAt.After(now)
}

func (p *Post) Discount() int {
	return CalculateDiscount(p.PriceOriginal, p.PriceSale)
}

// CalculateDiscount returns the percentage saved, clamped to [0, 100].
// A sale price above the original clamps to 0 rather than going negative.
func CalculateDiscount(original, sale float64) int {
	if original <= 0 {
		return 0
	}

	discount := int(math.Round((1 - sale/original) * 100))
	if discount < 0 {
		return 0
	}
	if discount > 100 {
		return 100
	}
	return discount
}
