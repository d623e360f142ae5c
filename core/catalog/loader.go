// ABOUTME: Snapshot loader reads the backing source and parses it into the item collection
// ABOUTME: Any read or parse failure is a whole-file failure; no partial results are produced

package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"catalog-app-api/core/domain"
	coreerrors "catalog-app-api/core/errors"
	"catalog-app-api/core/interfaces"
)

// Loader produces the full item collection from the backing source.
type Loader interface {
	Load(ctx context.Context) ([]domain.Item, error)
}

// SnapshotLoader reads the catalog from a backing store and parses it.
// It holds no state of its own; a failed load leaves whatever the caller
// has cached untouched.
type SnapshotLoader struct {
	store  interfaces.BackingStore
	logger interfaces.Logger
}

// NewSnapshotLoader creates a new snapshot loader over the given store
func NewSnapshotLoader(store interfaces.BackingStore, logger interfaces.Logger) *SnapshotLoader {
	return &SnapshotLoader{
		store:  store,
		logger: logger,
	}
}

// itemRecord is the wire form of one catalog entry in the backing source.
type itemRecord struct {
	ID          int      `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	Price       rawPrice `json:"price"`
}

// rawPrice accepts a JSON number, string, or null for the price field.
// The raw text is preserved; interpretation happens in the stats aggregator.
type rawPrice string

func (p *rawPrice) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if string(data) == "null" {
		*p = ""
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*p = rawPrice(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*p = rawPrice(n.String())
	return nil
}

// Load reads and parses the entire backing source.
// A malformed record fails the whole load; serving a silently corrupt
// subset is worse than serving stale data.
func (l *SnapshotLoader) Load(ctx context.Context) ([]domain.Item, error) {
	data, err := l.store.Read(ctx)
	if err != nil {
		return nil, &coreerrors.LoadError{Source: l.store.Path(), Err: err}
	}

	var records []itemRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, &coreerrors.LoadError{
			Source: l.store.Path(),
			Err:    coreerrors.WrapError(err, "malformed catalog"),
		}
	}

	items := make([]domain.Item, 0, len(records))
	seen := make(map[int]struct{}, len(records))
	for i, r := range records {
		item := domain.Item{
			ID:          r.ID,
			Name:        r.Name,
			Description: r.Description,
			Category:    r.Category,
			Price:       string(r.Price),
		}

		if !item.IsValid() {
			return nil, &coreerrors.LoadError{
				Source: l.store.Path(),
				Err:    fmt.Errorf("record %d is missing id or name", i),
			}
		}

		if v, ok := item.PriceValue(); ok && v < 0 {
			return nil, &coreerrors.LoadError{
				Source: l.store.Path(),
				Err:    fmt.Errorf("record %d has negative price %s", i, item.Price),
			}
		}

		if _, dup := seen[item.ID]; dup {
			return nil, &coreerrors.LoadError{
				Source: l.store.Path(),
				Err:    fmt.Errorf("duplicate item id %d", item.ID),
			}
		}
		seen[item.ID] = struct{}{}

		items = append(items, item)
	}

	if l.logger != nil {
		l.logger.Debug("Catalog loaded", map[string]interface{}{
			"source": l.store.Path(),
			"items":  len(items),
		})
	}

	return items, nil
}
