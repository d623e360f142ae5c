// ABOUTME: File-backed implementation of the BackingStore interface
// ABOUTME: Reads the catalog file in one call so loads are all-or-nothing

package file

import (
	"context"
	"errors"
	"os"
)

// Store reads the catalog from a single file on disk
type Store struct {
	path string
}

// NewStore creates a new file store for the given path
func NewStore(path string) (*Store, error) {
	if path == "" {
		return nil, errors.New("backing file path cannot be empty")
	}
	return &Store{path: path}, nil
}

// Read returns the entire file content. The read runs on the calling
// goroutine only; other goroutines are never blocked by it.
func (s *Store) Read(ctx context.Context) ([]byte, error) {
	// Check if context is cancelled
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	return os.ReadFile(s.path)
}

// Path returns the backing file path
func (s *Store) Path() string {
	return s.path
}
