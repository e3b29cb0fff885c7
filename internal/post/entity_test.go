// AngelaMos | 2026
// entity_test.go

package post

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCalculateDiscount(t *testing.T) {
	assert.Equal(t, 50, CalculateDiscount(100, 50))
	assert.Equal(t, 25, CalculateDiscount(200, 150))
	assert.Equal(t, 33, CalculateDiscount(150, 100))
	assert.Equal(t, 0, CalculateDiscount(100, 100))
}

func TestCalculateDiscountClampsNegative(t *testing.T) {
	// sale price above original clamps to 0
	assert.Equal(t, 0, CalculateDiscount(100, 150))
}

func TestCalculateDiscountClampsAbove100(t *testing.T) {
	assert.Equal(t, 100, CalculateDiscount(100, 0))
	assert.Equal(t, 100, CalculateDiscount(100, -20))
}

func TestCalculateDiscountZeroOriginal(t *testing.T) {
	assert.Equal(t, 0, CalculateDiscount(0, 50))
	assert.Equal(t, 0, CalculateDiscount(-10, 5))
}

func TestIsActiveAt(t *testing.T) {
	now := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)
	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)

	noWindow := Post{}
	assert.True(t, noWindow.IsActiveAt(now), "no end date never expires")

	running := Post{StartsAt: &past, EndsAt: &future}
	assert.True(t, running.IsActiveAt(now))

	ended := Post{EndsAt: &past}
	assert.False(t, ended.IsActiveAt(now))

	notStarted := Post{StartsAt: &future, EndsAt: &future}
	assert.False(t, notStarted.IsActiveAt(now))

	startedNoEnd := Post{StartsAt: &future}
	assert.True(t, startedNoEnd.IsActiveAt(now),
		"a missing end date wins over a future start date")
}
