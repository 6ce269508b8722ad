package cache

import (
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// MemoryCache keeps extracted text in memory with per-entry expiration
type MemoryCache struct {
	cache *gocache.Cache
}

// NewMemoryCache creates a new memory cache
func NewMemoryCache(defaultTTL, cleanupInterval time.Duration) *MemoryCache {
	return &MemoryCache{
		cache: gocache.New(defaultTTL, cleanupInterval),
	}
}

// Get retrieves extracted text from the cache
func (c *MemoryCache) Get(key string) (string, bool) {
	if val, found := c.cache.Get(key); found {
		return val.(string), true
	}
	return "", false
}

// Set stores extracted text in the cache with the given TTL
func (c *MemoryCache) Set(key string, text string, ttl time.Duration) error {
	c.cache.Set(key, text, ttl)
	return nil
}

// Delete removes an entry from the cache
func (c *MemoryCache) Delete(key string) error {
	c.cache.Delete(key)
	return nil
}

// Clear removes all entries from the cache
func (c *MemoryCache) Clear() error {
	c.cache.Flush()
	return nil
}
