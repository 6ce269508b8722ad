package ocr

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ppiankov/labelcheck/internal/cache"
)

func TestCachedEngine_SecondCallSkipsEngine(t *testing.T) {
	calls := 0
	inner := EngineFunc(func(ctx context.Context, image []byte) (string, error) {
		calls++
		return "OLD TOM DISTILLERY 750 ML", nil
	})

	engine := NewCachedEngine(inner, cache.NewMemoryCache(time.Minute, time.Minute), time.Minute)

	image := []byte("fake-image-bytes")
	for i := 0; i < 3; i++ {
		text, err := engine.ExtractText(context.Background(), image)
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
		if text != "OLD TOM DISTILLERY 750 ML" {
			t.Errorf("Expected extracted text, got %q", text)
		}
	}

	if calls != 1 {
		t.Errorf("Expected 1 engine call, got %d", calls)
	}
}

func TestCachedEngine_FailuresNotCached(t *testing.T) {
	calls := 0
	inner := EngineFunc(func(ctx context.Context, image []byte) (string, error) {
		calls++
		if calls == 1 {
			return "", ErrExtraction
		}
		return "RECOVERED TEXT", nil
	})

	engine := NewCachedEngine(inner, cache.NewMemoryCache(time.Minute, time.Minute), time.Minute)

	_, err := engine.ExtractText(context.Background(), []byte("image"))
	if !errors.Is(err, ErrExtraction) {
		t.Fatalf("Expected extraction error, got %v", err)
	}

	text, err := engine.ExtractText(context.Background(), []byte("image"))
	if err != nil {
		t.Fatalf("Expected retry to succeed, got %v", err)
	}
	if text != "RECOVERED TEXT" {
		t.Errorf("Expected fresh extraction after failure, got %q", text)
	}
	if calls != 2 {
		t.Errorf("Expected 2 engine calls, got %d", calls)
	}
}

func TestCachedEngine_DifferentImagesDifferentEntries(t *testing.T) {
	inner := EngineFunc(func(ctx context.Context, image []byte) (string, error) {
		return string(image), nil
	})
	engine := NewCachedEngine(inner, cache.NewMemoryCache(time.Minute, time.Minute), time.Minute)

	a, _ := engine.ExtractText(context.Background(), []byte("label-a"))
	b, _ := engine.ExtractText(context.Background(), []byte("label-b"))

	if a == b {
		t.Errorf("Expected distinct cache entries, got %q for both", a)
	}
}
