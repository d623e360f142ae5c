// ABOUTME: Pagination over the filtered item collection
// ABOUTME: Slices a page and computes page metadata; out-of-range pages are not errors

package catalog

import "catalog-app-api/core/domain"

// DefaultPageSize is applied when the caller supplies a non-positive page size.
const DefaultPageSize = 10

// Paginate returns the requested page of items together with metadata
// describing the full set. Non-positive page defaults to 1 and non-positive
// pageSize defaults to DefaultPageSize rather than erroring, matching the
// lenient handling clients expect from list endpoints. A page beyond the
// last one yields an empty slice while the metadata still reports the real
// totals.
func Paginate(items []domain.Item, page, pageSize int) ([]domain.Item, domain.Pagination) {
	if page < 1 {
		page = 1
	}

	if pageSize < 1 {
		pageSize = DefaultPageSize
	}

	total := len(items)
	totalPages := 0
	if total > 0 {
		totalPages = (total + pageSize - 1) / pageSize
	}

	meta := domain.Pagination{
		CurrentPage:  page,
		TotalPages:   totalPages,
		TotalItems:   total,
		ItemsPerPage: pageSize,
	}

	start := (page - 1) * pageSize
	if start >= total {
		return []domain.Item{}, meta
	}

	end := start + pageSize
	if end > total {
		end = total
	}

	return items[start:end], meta
}
