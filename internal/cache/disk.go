package cache

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// DiskCache persists extracted label text across process restarts. OCR is by
// far the most expensive step per request, so surviving a restart is worth
// the disk round-trip. One JSON file per image digest.
type DiskCache struct {
	dir string
	ttl time.Duration
}

// NewDiskCache creates a new disk cache
func NewDiskCache(dir string, ttl time.Duration) *DiskCache {
	return &DiskCache{
		dir: dir,
		ttl: ttl,
	}
}

// textEntry is the on-disk record for one recognized label
type textEntry struct {
	Text        string    `json:"text"`
	ExtractedAt time.Time `json:"extracted_at"`
	ExpiresAt   time.Time `json:"expires_at"`
}

// Get retrieves extracted text from the disk cache
func (c *DiskCache) Get(key string) (string, bool) {
	path := c.path(key)

	data, err := os.ReadFile(path)
	if err != nil {
		return "", false
	}

	var entry textEntry
	if err := json.Unmarshal(data, &entry); err != nil {
		return "", false
	}

	// Check expiration
	if time.Now().After(entry.ExpiresAt) {
		_ = os.Remove(path)
		return "", false
	}

	return entry.Text, true
}

// Set stores extracted text in the disk cache
func (c *DiskCache) Set(key string, text string, ttl time.Duration) error {
	if ttl == 0 {
		ttl = c.ttl
	}

	now := time.Now()
	entry := textEntry{
		Text:        text,
		ExtractedAt: now,
		ExpiresAt:   now.Add(ttl),
	}

	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("marshal entry: %w", err)
	}

	// Ensure directory exists
	if err := os.MkdirAll(c.dir, 0o755); err != nil {
		return fmt.Errorf("create cache dir: %w", err)
	}

	if err := os.WriteFile(c.path(key), data, 0o644); err != nil {
		return fmt.Errorf("write cache file: %w", err)
	}

	return nil
}

// Delete removes an entry from the disk cache
func (c *DiskCache) Delete(key string) error {
	return os.Remove(c.path(key))
}

// Clear removes all cached files
func (c *DiskCache) Clear() error {
	return os.RemoveAll(c.dir)
}

// path generates the file path for a cache key. Key namespacing uses colons,
// which make poor file names, so they become dashes on disk.
func (c *DiskCache) path(key string) string {
	return filepath.Join(c.dir, strings.ReplaceAll(key, ":", "-")+".json")
}
