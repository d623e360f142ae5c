// ABOUTME: Catalog domain models: Item, Snapshot, Stats and Pagination
// ABOUTME: Items are immutable once loaded; snapshots are replaced wholesale, never mutated

package domain

import (
	"strconv"
	"strings"
	"time"
)

// Item represents a single catalog entry. Identity is ID; items are never
// mutated after loading.
type Item struct {
	// ID is the unique identifier for the item
	ID int

	// Name is the item's display name
	Name string

	// Description contains the item's long-form text
	Description string

	// Category groups related items
	Category string

	// Price is kept as loaded from the backing source. It is usually a
	// decimal number, but the source may carry non-numeric values; those
	// are tolerated everywhere and excluded from price statistics.
	Price string
}

// PriceValue parses the item's price. The second return value reports
// whether the price was a parseable number.
func (i *Item) PriceValue() (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(i.Price), 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// IsValid checks if the item has the fields required by the backing source
// contract. Description and category are optional.
func (i *Item) IsValid() bool {
	if i.ID <= 0 {
		return false
	}

	if i.Name == "" {
		return false
	}

	return true
}

// Snapshot is an immutable point-in-time copy of the full item collection.
// The snapshot cache owns it exclusively: it is installed as a whole and
// replaced as a whole on reload. Consumers must not hold a snapshot across
// requests and assume it is still current.
type Snapshot struct {
	// Items is the ordered item collection
	Items []Item

	// LoadedAt is when this snapshot was installed by the cache
	LoadedAt time.Time

	// Generation increases by one on every successful reload. It is used
	// to key derived values (filter results, stats) so that nothing
	// computed from an older snapshot can be served against a newer one.
	Generation uint64
}

// Pagination describes the position of a page within the full result set.
type Pagination struct {
	// CurrentPage is the 1-based page number that was served
	CurrentPage int

	// TotalPages is ceil(TotalItems / ItemsPerPage), 0 when there are no items
	TotalPages int

	// TotalItems is the size of the full (filtered) result set
	TotalItems int

	// ItemsPerPage is the page size that was applied
	ItemsPerPage int
}

// Stats holds descriptive statistics over a snapshot. It is derived data:
// always recomputed wholesale, never updated in place.
type Stats struct {
	// TotalItems counts every item, including ones with unparseable prices
	TotalItems int

	// AveragePrice is the mean of all parseable prices, rounded to 2 places
	AveragePrice float64

	// MinPrice is the lowest parseable price, 0 if none parse
	MinPrice float64

	// MaxPrice is the highest parseable price, 0 if none parse
	MaxPrice float64

	// Categories maps category name to item count
	Categories map[string]int
}
