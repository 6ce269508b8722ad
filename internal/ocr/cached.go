package ocr

import (
	"context"
	"time"

	"github.com/ppiankov/labelcheck/internal/cache"
)

// CachedEngine fronts an Engine with a text cache keyed by the image digest.
// Identical uploads skip recognition entirely. The comparison engine never
// sees this layer.
type CachedEngine struct {
	engine Engine
	store  cache.Cache
	ttl    time.Duration
}

// NewCachedEngine wraps engine with the given cache store
func NewCachedEngine(engine Engine, store cache.Cache, ttl time.Duration) *CachedEngine {
	return &CachedEngine{
		engine: engine,
		store:  store,
		ttl:    ttl,
	}
}

// Name returns the wrapped engine name
func (e *CachedEngine) Name() string { return e.engine.Name() }

// ExtractText returns cached text when the image digest is known, otherwise
// delegates to the wrapped engine and caches its output. Extraction failures
// are never cached.
func (e *CachedEngine) ExtractText(ctx context.Context, image []byte) (string, error) {
	key := cache.ImageKey(image)
	if text, found := e.store.Get(key); found {
		return text, nil
	}

	text, err := e.engine.ExtractText(ctx, image)
	if err != nil {
		return "", err
	}

	_ = e.store.Set(key, text, e.ttl)
	return text, nil
}
