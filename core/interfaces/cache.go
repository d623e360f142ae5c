// Package interfaces defines the core interfaces used throughout the application.
// These interfaces allow for dependency injection and make the code testable.
package interfaces

import (
	"context"
	"time"
)

// Cache defines the interface for generic byte-value cache operations.
// The service layer uses it to memoize derived values (e.g. filter results);
// implementations can be in-memory or anything else that honors TTLs.
//
// Example usage:
//
//	err := cache.Set(ctx, "catalog:filter:3:mug", data, 5*time.Minute)
//	data, err := cache.Get(ctx, "catalog:filter:3:mug")
type Cache interface {
	// Get retrieves a value from the cache by key.
	// Returns the cached data as []byte or an error if the key doesn't exist.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores a value in the cache with the given key and TTL.
	// If ttl is 0, the value should be stored indefinitely.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete removes a value from the cache by key.
	// Returns nil if the key doesn't exist.
	Delete(ctx context.Context, key string) error
}
