// AngelaMos | 2026
// viewcache.go

package post

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// ViewDedupWindow is how long repeat views from the same viewer of the same
// post are counted as one.
const ViewDedupWindow = 5 * time.Second

// ViewMarker dedupes view counting per viewer and post.
type ViewMarker interface {
	// FirstView atomically records the key and reports whether it had not
	// been seen within the dedup window.
	FirstView(ctx context.Context, key string) bool
}

// ViewerKey builds the dedup key from the client IP and post ID. An
// unresolvable IP collapses to a shared bucket rather than counting every
// anonymous view.
func ViewerKey(ip, postID string) string {
	if ip == "" {
		ip = "unknown_ip"
	}
	return "viewdedup:" + ip + ":" + postID
}

// ViewDeduper marks views in Redis with a TTL so the window is enforced
// atomically across instances and entries evict themselves. When Redis is
// unavailable it falls back to a local time-evicting marker and keeps
// counting.
type ViewDeduper struct {
	client   *redis.Client
	fallback *localViewMarker
	window   time.Duration
}

func NewViewDeduper(client *redis.Client) *ViewDeduper {
	return &ViewDeduper{
		client:   client,
		fallback: newLocalViewMarker(ViewDedupWindow, time.Now),
		window:   ViewDedupWindow,
	}
}

func (d *ViewDeduper) FirstView(ctx context.Context, key string) bool {
	first, err := d.client.SetNX(ctx, key, "1", d.window).Result()
	if err != nil {
		slog.Warn("view dedup redis error, using local fallback",
			"error", err,
			"key", key,
		)
		return d.fallback.firstView(key)
	}
	return first
}

type localViewMarker struct {
	mu     sync.Mutex
	seen   map[string]time.Time
	window time.Duration
	now    func() time.Time
}

const viewSweepInterval = time.Minute

func newLocalViewMarker(
	window time.Duration,
	now func() time.Time,
) *localViewMarker {
	m := &localViewMarker{
		seen:   make(map[string]time.Time),
		window: window,
		now:    now,
	}
	go m.sweep()
	return m
}

func (m *localViewMarker) firstView(key string) bool {
	now := m.now()

	m.mu.Lock()
	defer m.mu.Unlock()

	if last, ok := m.seen[key]; ok && now.Sub(last) <= m.window {
		return false
	}

	m.seen[key] = now
	return true
}

func (m *localViewMarker) sweep() {
	ticker := time.NewTicker(viewSweepInterval)
	defer ticker.Stop()

	for range ticker.C {
		cutoff := m.now().Add(-m.window)
		m.mu.Lock()
		for key, last := range m.seen {
			if last.Before(cutoff) {
				delete(m.seen, key)
			}
		}
		m.mu.Unlock()
	}
}
