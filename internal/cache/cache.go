// Package cache provides the layered store that fronts the OCR engine:
// extracted label text is cached keyed by a digest of the image payload, so
// a re-submitted image skips recognition entirely.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Cache defines the interface for caching extracted label text
type Cache interface {
	Get(key string) (string, bool)
	Set(key string, text string, ttl time.Duration) error
	Delete(key string) error
	Clear() error
}

// ImageKey generates a cache key from an image payload
func ImageKey(image []byte) string {
	hash := sha256.Sum256(image)
	return "labelcheck:v1:" + hex.EncodeToString(hash[:])
}
