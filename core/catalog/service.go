// ABOUTME: Catalog service composes the snapshot cache, filter and pagination
// ABOUTME: Provides business logic for catalog queries independent of the HTTP layer

package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"catalog-app-api/core/domain"
	coreerrors "catalog-app-api/core/errors"
	"catalog-app-api/core/interfaces"
)

const (
	// maxPageSize caps how many items a single page may request
	maxPageSize = 100

	// maxQueryLength caps the free-text query length
	maxQueryLength = 100
)

// FilterCacheTTL bounds how long a memoized filter result is kept.
// Keys include the snapshot generation, so a reload never serves a
// result computed from an older snapshot; the TTL only bounds memory.
const FilterCacheTTL = 5 * time.Minute

// CatalogService answers catalog queries over the current snapshot
type CatalogService struct {
	deps      interfaces.Dependencies
	snapshots *SnapshotCache
}

// NewCatalogService creates a new catalog service instance
func NewCatalogService(deps interfaces.Dependencies, snapshots *SnapshotCache) *CatalogService {
	return &CatalogService{
		deps:      deps,
		snapshots: snapshots,
	}
}

// GetSnapshot returns the current catalog snapshot, reloading it if stale
func (s *CatalogService) GetSnapshot(ctx context.Context) (*domain.Snapshot, error) {
	return s.snapshots.Get(ctx)
}

// ListItems returns one page of items matching the query, with pagination
// metadata. The query is matched case-insensitively against name,
// description and category.
func (s *CatalogService) ListItems(ctx context.Context, query string, page, pageSize int) ([]domain.Item, domain.Pagination, error) {
	if len(query) > maxQueryLength {
		return nil, domain.Pagination{}, &coreerrors.InvalidParameterError{
			Param:   "query",
			Message: fmt.Sprintf("cannot exceed %d characters", maxQueryLength),
		}
	}

	if pageSize > maxPageSize {
		return nil, domain.Pagination{}, &coreerrors.InvalidParameterError{
			Param:   "pageSize",
			Message: fmt.Sprintf("cannot exceed %d", maxPageSize),
		}
	}

	snap, err := s.snapshots.Get(ctx)
	if err != nil {
		return nil, domain.Pagination{}, err
	}

	matched := s.filteredItems(ctx, snap, query)
	items, meta := Paginate(matched, page, pageSize)
	return items, meta, nil
}

// GetItem looks up a single item by id in the current snapshot
func (s *CatalogService) GetItem(ctx context.Context, id int) (*domain.Item, error) {
	snap, err := s.snapshots.Get(ctx)
	if err != nil {
		return nil, err
	}

	for i := range snap.Items {
		if snap.Items[i].ID == id {
			item := snap.Items[i]
			return &item, nil
		}
	}

	return nil, &coreerrors.NotFoundError{Resource: "item", ID: strconv.Itoa(id)}
}

// filteredItems applies the free-text filter, memoizing the result per
// (snapshot generation, normalized query) so repeated identical searches
// against the same snapshot skip the scan.
func (s *CatalogService) filteredItems(ctx context.Context, snap *domain.Snapshot, query string) []domain.Item {
	q := NormalizeQuery(query)
	if q == "" {
		return snap.Items
	}

	cacheKey := fmt.Sprintf("catalog:filter:%d:%s", snap.Generation, q)
	if s.deps.Cache != nil {
		if data, err := s.deps.Cache.Get(ctx, cacheKey); err == nil && data != nil {
			var cached []domain.Item
			if err := json.Unmarshal(data, &cached); err == nil {
				return cached
			}
		}
	}

	matched := FilterItems(snap.Items, query)

	if s.deps.Cache != nil {
		if data, err := json.Marshal(matched); err == nil {
			_ = s.deps.Cache.Set(ctx, cacheKey, data, FilterCacheTTL)
		}
	}

	return matched
}
