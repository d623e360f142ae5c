// ABOUTME: Stats service exposes aggregate statistics and the external invalidation hook
// ABOUTME: Provides business logic for the stats endpoint independent of the HTTP layer

package stats

import (
	"context"

	"catalog-app-api/core/domain"
	"catalog-app-api/core/interfaces"
)

// StatsService serves aggregate statistics through the stats cache
type StatsService struct {
	deps  interfaces.Dependencies
	cache *StatsCache
}

// NewStatsService creates a new stats service instance
func NewStatsService(deps interfaces.Dependencies, cache *StatsCache) *StatsService {
	return &StatsService{
		deps:  deps,
		cache: cache,
	}
}

// GetStats returns current statistics, recomputing them if the cached value
// is stale or was invalidated
func (s *StatsService) GetStats(ctx context.Context) (domain.Stats, error) {
	return s.cache.Get(ctx)
}

// NotifyBackingChanged is the hook for external change-watch collaborators.
// It drops the memoized statistics so the next request recomputes them.
func (s *StatsService) NotifyBackingChanged() {
	if s.deps.Logger != nil {
		s.deps.Logger.Info("Backing source changed, invalidating stats", nil)
	}
	s.cache.Invalidate()
}
