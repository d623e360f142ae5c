// ABOUTME: Snapshot cache holds the current catalog snapshot and reloads it on TTL expiry
// ABOUTME: Concurrent reloads are coalesced so at most one load is in flight per cache

package catalog

import (
	"context"
	"sync"
	"time"

	"catalog-app-api/core/domain"
	"catalog-app-api/core/interfaces"
	"golang.org/x/sync/singleflight"
)

// DefaultSnapshotTTL is how long a loaded snapshot is served without
// re-reading the backing source.
const DefaultSnapshotTTL = 30 * time.Second

// snapshotEntry is the single cache slot. It is only ever replaced as a
// whole under the mutex, never mutated in place.
type snapshotEntry struct {
	snapshot *domain.Snapshot
	loadedAt time.Time
}

// SnapshotCache serves the current catalog snapshot, reloading it through
// the Loader when the entry is empty or older than the TTL. Callers that
// arrive while a reload is in flight share that reload's result instead of
// triggering their own.
type SnapshotCache struct {
	loader     Loader
	ttl        time.Duration
	logger     interfaces.Logger
	clock      func() time.Time
	serveStale bool

	group singleflight.Group

	mu         sync.Mutex
	entry      *snapshotEntry
	generation uint64
	epoch      uint64
}

// SnapshotCacheOption configures a SnapshotCache
type SnapshotCacheOption func(*SnapshotCache)

// WithClock injects the time source. Used by tests to control TTL expiry.
func WithClock(clock func() time.Time) SnapshotCacheOption {
	return func(c *SnapshotCache) {
		c.clock = clock
	}
}

// WithServeStale controls the refresh-failure policy. When enabled (the
// default), a failed reload of an already-populated cache serves the stale
// snapshot instead of failing the request; the failure is logged. When
// disabled, the reload error propagates to the caller.
func WithServeStale(enabled bool) SnapshotCacheOption {
	return func(c *SnapshotCache) {
		c.serveStale = enabled
	}
}

// NewSnapshotCache creates a snapshot cache with the given loader and TTL.
// A non-positive ttl falls back to DefaultSnapshotTTL.
func NewSnapshotCache(loader Loader, ttl time.Duration, logger interfaces.Logger, opts ...SnapshotCacheOption) *SnapshotCache {
	if ttl <= 0 {
		ttl = DefaultSnapshotTTL
	}

	c := &SnapshotCache{
		loader:     loader,
		ttl:        ttl,
		logger:     logger,
		clock:      time.Now,
		serveStale: true,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Get returns the current snapshot. A valid entry is returned without any
// I/O; an empty or expired entry triggers exactly one load shared by all
// concurrent callers. A first-load failure is returned as-is; a refresh
// failure follows the serve-stale policy.
func (c *SnapshotCache) Get(ctx context.Context) (*domain.Snapshot, error) {
	if snap, ok := c.current(); ok {
		return snap, nil
	}

	v, err, _ := c.group.Do("snapshot", func() (interface{}, error) {
		// Another caller may have installed a fresh snapshot while this
		// one waited on the flight group.
		if snap, ok := c.current(); ok {
			return snap, nil
		}

		c.mu.Lock()
		epoch := c.epoch
		c.mu.Unlock()

		items, err := c.loader.Load(ctx)
		if err != nil {
			return c.handleLoadFailure(err)
		}

		return c.install(items, epoch), nil
	})
	if err != nil {
		return nil, err
	}

	return v.(*domain.Snapshot), nil
}

// Invalidate clears the cached snapshot so the next Get reloads regardless
// of remaining TTL. A load already in flight will not reinstate its result.
func (c *SnapshotCache) Invalidate() {
	c.mu.Lock()
	c.entry = nil
	c.epoch++
	c.mu.Unlock()
}

// current returns the cached snapshot if it is still within its TTL.
func (c *SnapshotCache) current() (*domain.Snapshot, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.entry == nil {
		return nil, false
	}

	if c.clock().Sub(c.entry.loadedAt) >= c.ttl {
		return nil, false
	}

	return c.entry.snapshot, true
}

// install stamps a freshly loaded item collection as a new snapshot and
// stores it, unless an invalidation fired after the load started. The
// snapshot such a load produced may predate the change, so it is returned
// to the waiting callers but the slot stays empty and the next Get reloads.
func (c *SnapshotCache) install(items []domain.Item, epoch uint64) *domain.Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.generation++
	snap := &domain.Snapshot{
		Items:      items,
		LoadedAt:   c.clock(),
		Generation: c.generation,
	}
	if c.epoch == epoch {
		c.entry = &snapshotEntry{snapshot: snap, loadedAt: snap.LoadedAt}
	}

	if c.logger != nil {
		c.logger.Info("Snapshot installed", map[string]interface{}{
			"items":      len(items),
			"generation": snap.Generation,
		})
	}

	return snap
}

// handleLoadFailure applies the refresh-failure policy. The existing entry
// is never touched by a failed load.
func (c *SnapshotCache) handleLoadFailure(loadErr error) (interface{}, error) {
	c.mu.Lock()
	stale := c.entry
	c.mu.Unlock()

	if stale == nil || !c.serveStale {
		return nil, loadErr
	}

	// Availability over freshness: the previous snapshot is still
	// structurally sound, so serve it and surface the failure in logs only.
	if c.logger != nil {
		c.logger.Warn("Serving stale snapshot after refresh failure", map[string]interface{}{
			"error":      loadErr.Error(),
			"loaded_at":  stale.loadedAt,
			"generation": stale.snapshot.Generation,
		})
	}

	return stale.snapshot, nil
}
