// Package cache provides the render cache used by the documentation
// server. Rendered example SVGs are keyed by their full render inputs
// so a page reload with the same seed and size is served from disk
// instead of re-composing the chart.
package cache

import (
	"context"
	"errors"
	"time"
)

// ErrCacheMiss is returned by helpers that treat a miss as an error.
var ErrCacheMiss = errors.New("cache miss")

// Cache stores rendered artifacts with optional expiration.
type Cache interface {
	// Get retrieves a value. The second result reports whether the
	// key was present and unexpired.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value. A zero ttl means no expiration.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases any resources held by the cache.
	Close() error
}

// RenderKey builds the cache key for a rendered example chart. All
// inputs that affect the output participate in the hash.
func RenderKey(example string, width, height float64, seed int64) string {
	return hashKey("svg", example, width, height, seed)
}
