package interfaces

import (
	"context"
	"time"
)

// Cache defines the interface for the in-run classification cache.
// Entries never outlive the process; implementations are free to evict
// at any time, so callers must treat every lookup as best-effort.
type Cache interface {
	// Get retrieves a value from the cache.
	// Returns an error if the key is not present.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores a value in the cache with the given TTL.
	// A zero TTL means the implementation's default expiration.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete removes a key from the cache.
	Delete(ctx context.Context, key string) error
}
