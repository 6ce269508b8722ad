package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/ppiankov/labelcheck/internal/cache"
	"github.com/ppiankov/labelcheck/internal/model"
	"github.com/ppiankov/labelcheck/internal/ocr"
	"github.com/ppiankov/labelcheck/internal/verify"
)

// buildVerifier assembles the OCR engine, optional text cache, and verifier
// from the effective configuration
func buildVerifier(cfg *model.Config) *verify.Verifier {
	var engine ocr.Engine = ocr.NewTesseractEngine(cfg.OCR)

	if cfg.Cache.Enabled {
		var store cache.Cache
		if cfg.Cache.Dir != "" {
			store = cache.NewLayeredCache(cfg.Cache.MemoryTTL, cfg.Cache.Dir, cfg.Cache.DiskTTL)
		} else {
			store = cache.NewMemoryCache(cfg.Cache.MemoryTTL, 10*time.Minute)
		}
		engine = ocr.NewCachedEngine(engine, store, cfg.Cache.MemoryTTL)
	}

	return verify.NewVerifier(engine, cfg)
}

// configureLLM fills in the explainer settings when it is enabled. The API
// key comes from the environment only.
func configureLLM(cfg *model.Config, provider, llmModel string) error {
	cfg.LLM.Provider = provider
	cfg.LLM.Model = llmModel

	switch provider {
	case "openai":
		cfg.LLM.APIKey = os.Getenv("OPENAI_API_KEY")
		if cfg.LLM.APIKey == "" {
			return fmt.Errorf("OPENAI_API_KEY environment variable not set")
		}
	default:
		return fmt.Errorf("unknown LLM provider: %s", provider)
	}

	return nil
}
