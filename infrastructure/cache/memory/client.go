// ABOUTME: In-memory cache implementation backed by patrickmn/go-cache
// ABOUTME: Holds classification results for the duration of a discovery run

package memory

import (
	"context"
	"errors"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

const (
	defaultExpiration = 15 * time.Minute
	cleanupInterval   = 30 * time.Minute
)

// ErrKeyNotFound is returned when a key is not present in the cache
var ErrKeyNotFound = errors.New("key not found")

// MemoryCache implements the Cache interface using go-cache
type MemoryCache struct {
	cache *gocache.Cache
}

// NewMemoryCache creates a new in-memory cache instance
func NewMemoryCache() *MemoryCache {
	return &MemoryCache{
		cache: gocache.New(defaultExpiration, cleanupInterval),
	}
}

// Get retrieves a value from the cache
func (c *MemoryCache) Get(ctx context.Context, key string) ([]byte, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	value, ok := c.cache.Get(key)
	if !ok {
		return nil, ErrKeyNotFound
	}

	stored, ok := value.([]byte)
	if !ok {
		return nil, ErrKeyNotFound
	}

	// Return a copy so callers cannot mutate the cached bytes
	result := make([]byte, len(stored))
	copy(result, stored)
	return result, nil
}

// Set stores a value in the cache with the given TTL
func (c *MemoryCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	stored := make([]byte, len(value))
	copy(stored, value)

	if ttl <= 0 {
		ttl = gocache.DefaultExpiration
	}
	c.cache.Set(key, stored, ttl)
	return nil
}

// Delete removes a key from the cache
func (c *MemoryCache) Delete(ctx context.Context, key string) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	c.cache.Delete(key)
	return nil
}
