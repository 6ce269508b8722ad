package cache

import "time"

// LayeredCache combines the memory and disk layers: memory answers repeat
// lookups within a process, disk survives restarts
type LayeredCache struct {
	memory Cache
	disk   Cache
}

// NewLayeredCache creates a new layered cache
func NewLayeredCache(memoryTTL time.Duration, diskDir string, diskTTL time.Duration) *LayeredCache {
	return &LayeredCache{
		memory: NewMemoryCache(memoryTTL, 10*time.Minute),
		disk:   NewDiskCache(diskDir, diskTTL),
	}
}

// Get retrieves extracted text, checking memory first, then disk
func (c *LayeredCache) Get(key string) (string, bool) {
	if text, found := c.memory.Get(key); found {
		return text, true
	}

	if text, found := c.disk.Get(key); found {
		// Promote to memory cache
		_ = c.memory.Set(key, text, 0) // Use default TTL
		return text, true
	}

	return "", false
}

// Set stores extracted text in both layers
func (c *LayeredCache) Set(key string, text string, ttl time.Duration) error {
	if err := c.memory.Set(key, text, ttl); err != nil {
		return err
	}

	if err := c.disk.Set(key, text, ttl); err != nil {
		return err
	}

	return nil
}

// Delete removes an entry from both layers
func (c *LayeredCache) Delete(key string) error {
	_ = c.memory.Delete(key)
	_ = c.disk.Delete(key)
	return nil
}

// Clear removes all entries from both layers
func (c *LayeredCache) Clear() error {
	_ = c.memory.Clear()
	_ = c.disk.Clear()
	return nil
}
