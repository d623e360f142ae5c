// ABOUTME: Stats cache memoizes aggregate statistics with its own TTL
// ABOUTME: Supports explicit invalidation and a lazily established backing-source watch

package stats

import (
	"context"
	"sync"
	"time"

	"catalog-app-api/core/domain"
	"catalog-app-api/core/interfaces"
	"golang.org/x/sync/singleflight"
)

// DefaultStatsTTL is how long computed statistics are served before being
// recomputed. Independent of the snapshot cache TTL.
const DefaultStatsTTL = 60 * time.Second

// SnapshotSource yields the current catalog snapshot. Satisfied by
// catalog.SnapshotCache; stats are always computed over a snapshot obtained
// through it so a recompute never observes a half-installed collection.
type SnapshotSource interface {
	Get(ctx context.Context) (*domain.Snapshot, error)
}

type statsEntry struct {
	stats      domain.Stats
	computedAt time.Time
}

// StatsCache memoizes Compute over a freshly obtained snapshot. Concurrent
// callers that find the entry stale share a single recompute. A change
// watch on the backing source, established lazily after the first
// successful population, invalidates the cache ahead of TTL expiry.
type StatsCache struct {
	source SnapshotSource
	ttl    time.Duration
	logger interfaces.Logger
	clock  func() time.Time

	watcher   interfaces.Watcher
	watchPath string

	group singleflight.Group

	mu    sync.Mutex
	entry *statsEntry
	epoch uint64
	sub   interfaces.Subscription
}

// StatsCacheOption configures a StatsCache
type StatsCacheOption func(*StatsCache)

// WithClock injects the time source. Used by tests to control TTL expiry.
func WithClock(clock func() time.Time) StatsCacheOption {
	return func(c *StatsCache) {
		c.clock = clock
	}
}

// WithWatch wires a change watch over the backing source. The subscription
// is established after the first successful cache population and invalidates
// the cache on every change event.
func WithWatch(watcher interfaces.Watcher, path string) StatsCacheOption {
	return func(c *StatsCache) {
		c.watcher = watcher
		c.watchPath = path
	}
}

// NewStatsCache creates a stats cache over the given snapshot source.
// A non-positive ttl falls back to DefaultStatsTTL.
func NewStatsCache(source SnapshotSource, ttl time.Duration, logger interfaces.Logger, opts ...StatsCacheOption) *StatsCache {
	if ttl <= 0 {
		ttl = DefaultStatsTTL
	}

	c := &StatsCache{
		source: source,
		ttl:    ttl,
		logger: logger,
		clock:  time.Now,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Get returns current statistics, recomputing them over a fresh snapshot
// when the entry is empty, expired, or was invalidated. At most one
// recompute is in flight at a time; concurrent callers share its result.
func (c *StatsCache) Get(ctx context.Context) (domain.Stats, error) {
	if st, ok := c.current(); ok {
		return st, nil
	}

	v, err, _ := c.group.Do("stats", func() (interface{}, error) {
		if st, ok := c.current(); ok {
			return st, nil
		}

		c.mu.Lock()
		epoch := c.epoch
		c.mu.Unlock()

		snap, err := c.source.Get(ctx)
		if err != nil {
			return nil, err
		}

		st := Compute(snap.Items)

		// An invalidation that fired while this compute was in flight means
		// the stats may predate the change. Hand them to the waiting callers
		// but leave the slot empty so the next Get recomputes.
		c.mu.Lock()
		if c.epoch == epoch {
			c.entry = &statsEntry{stats: st, computedAt: c.clock()}
		}
		c.mu.Unlock()

		c.ensureWatch()

		return st, nil
	})
	if err != nil {
		return domain.Stats{}, err
	}

	return v.(domain.Stats), nil
}

// Invalidate unconditionally clears the cached value, forcing the next Get
// to recompute regardless of remaining TTL.
func (c *StatsCache) Invalidate() {
	c.mu.Lock()
	had := c.entry != nil
	c.entry = nil
	c.epoch++
	c.mu.Unlock()

	if had && c.logger != nil {
		c.logger.Debug("Stats cache invalidated", nil)
	}
}

// Close tears down the change-watch subscription, if any
func (c *StatsCache) Close() error {
	c.mu.Lock()
	sub := c.sub
	c.sub = nil
	c.mu.Unlock()

	if sub != nil {
		return sub.Close()
	}
	return nil
}

func (c *StatsCache) current() (domain.Stats, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.entry == nil {
		return domain.Stats{}, false
	}

	if c.clock().Sub(c.entry.computedAt) >= c.ttl {
		return domain.Stats{}, false
	}

	return c.entry.stats, true
}

// ensureWatch establishes the backing-source watch exactly once per cache
// so change events are never delivered twice.
func (c *StatsCache) ensureWatch() {
	if c.watcher == nil {
		return
	}

	c.mu.Lock()
	if c.sub != nil {
		c.mu.Unlock()
		return
	}
	c.mu.Unlock()

	sub, err := c.watcher.Watch(c.watchPath, c.Invalidate)
	if err != nil {
		if c.logger != nil {
			c.logger.Warn("Change watch unavailable, relying on TTL expiry", map[string]interface{}{
				"path":  c.watchPath,
				"error": err.Error(),
			})
		}
		return
	}

	c.mu.Lock()
	if c.sub != nil {
		// Lost the race against a concurrent establishment.
		c.mu.Unlock()
		_ = sub.Close()
		return
	}
	c.sub = sub
	c.mu.Unlock()

	if c.logger != nil {
		c.logger.Info("Change watch established", map[string]interface{}{
			"path": c.watchPath,
		})
	}
}
