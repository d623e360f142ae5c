// ABOUTME: Backing store contract for the catalog snapshot source
// ABOUTME: Defines whole-content reads so loads are atomic (all or nothing)

package interfaces

import "context"

// BackingStore is the source the snapshot loader reads the catalog from.
// Reads return the entire content in one call; there is no partial read,
// which keeps a load an all-or-nothing operation.
type BackingStore interface {
	// Read returns the full backing content.
	Read(ctx context.Context) ([]byte, error)

	// Path identifies the backing source (used for change watching and
	// error messages).
	Path() string
}
