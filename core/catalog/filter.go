// ABOUTME: Free-text filter over the item collection
// ABOUTME: Pure function: case-insensitive substring match preserving input order

package catalog

import (
	"strings"

	"catalog-app-api/core/domain"
)

// NormalizeQuery trims and lower-cases a search query. An all-whitespace
// query normalizes to the empty string.
func NormalizeQuery(query string) string {
	return strings.ToLower(strings.TrimSpace(query))
}

// FilterItems returns the items whose name, description, or category
// contain the query as a case-insensitive substring, in their original
// order. An empty or all-whitespace query returns the input unchanged.
// Missing description or category fields are treated as empty strings.
func FilterItems(items []domain.Item, query string) []domain.Item {
	q := NormalizeQuery(query)
	if q == "" {
		return items
	}

	matched := make([]domain.Item, 0)
	for _, item := range items {
		if strings.Contains(strings.ToLower(item.Name), q) ||
			strings.Contains(strings.ToLower(item.Description), q) ||
			strings.Contains(strings.ToLower(item.Category), q) {
			matched = append(matched, item)
		}
	}

	return matched
}
