// AngelaMos | 2026
// viewcache_test.go

package post

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestViewerKey(t *testing.T) {
	assert.Equal(t, "viewdedup:1.2.3.4:p1", ViewerKey("1.2.3.4", "p1"))
	assert.Equal(t, "viewdedup:unknown_ip:p1", ViewerKey("", "p1"))
}

func TestLocalViewMarkerDedupWindow(t *testing.T) {
	current := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	marker := newLocalViewMarker(ViewDedupWindow, func() time.Time {
		return current
	})

	key := ViewerKey("1.2.3.4", "p1")

	assert.True(t, marker.firstView(key))
	assert.False(t, marker.firstView(key), "immediate repeat is deduped")

	current = current.Add(4999 * time.Millisecond)
	assert.False(t, marker.firstView(key), "still inside the window")

	current = current.Add(2 * time.Millisecond)
	assert.True(t, marker.firstView(key), "window elapsed, counts again")
}

func TestLocalViewMarkerKeysAreIndependent(t *testing.T) {
	now := time.Now()
	marker := newLocalViewMarker(ViewDedupWindow, func() time.Time {
		return now
	})

	assert.True(t, marker.firstView(ViewerKey("1.2.3.4", "p1")))
	assert.True(t, marker.firstView(ViewerKey("1.2.3.4", "p2")),
		"same viewer, different post")
	assert.True(t, marker.firstView(ViewerKey("5.6.7.8", "p1")),
		"different viewer, same post")
}
