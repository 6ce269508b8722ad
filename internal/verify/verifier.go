// Package verify orchestrates a complete label verification: one OCR pass,
// then every field comparison against the same normalized text.
package verify

import (
	"context"
	"fmt"
	"time"

	"github.com/ppiankov/labelcheck/internal/llm"
	"github.com/ppiankov/labelcheck/internal/match"
	"github.com/ppiankov/labelcheck/internal/model"
	"github.com/ppiankov/labelcheck/internal/ocr"
	"github.com/ppiankov/labelcheck/internal/textproc"
)

// Verifier orchestrates the complete verification process
type Verifier struct {
	engine   ocr.Engine
	provider llm.Provider // Optional LLM explainer (nil if disabled)
	config   *model.Config
}

// NewVerifier creates a verifier with the given configuration
func NewVerifier(engine ocr.Engine, cfg *model.Config) *Verifier {
	// Create LLM provider if configured
	var provider llm.Provider
	if cfg.LLM.Provider != "" {
		p, err := llm.NewProvider(cfg.LLM)
		if err != nil {
			fmt.Printf("Warning: Failed to initialize LLM provider: %v\n", err)
		} else {
			provider = p
		}
	}

	return &Verifier{
		engine:   engine,
		provider: provider,
		config:   cfg,
	}
}

// VerifyImage runs OCR on the label image and verifies the claims against the
// extracted text. An extraction failure is returned unwrapped enough for
// errors.Is(err, ocr.ErrExtraction) at the transport boundary.
func (v *Verifier) VerifyImage(ctx context.Context, image []byte, claims model.Claims) (*model.Verdict, error) {
	// 1. Extract text (the only collaborator with real latency)
	raw, err := v.engine.ExtractText(ctx, image)
	if err != nil {
		return nil, fmt.Errorf("extract text: %w", err)
	}

	// 2. Compare claims against the extracted text
	verdict := VerifyText(raw, claims)

	// 3. Generate LLM explanation if enabled (AFTER the verdict, never affects it)
	if v.provider != nil {
		verdict.LLM = llm.Explain(ctx, v.provider, v.config.LLM, *verdict)
	}

	return verdict, nil
}

// VerifyText verifies a claim set against raw label text. Pure: no I/O, no
// shared state, deterministic output for identical input.
func VerifyText(raw string, claims model.Claims) *model.Verdict {
	// 1. Normalize once; every matcher shares the same text
	text := textproc.Normalize(raw)

	// 2. Empty text short-circuits: nothing to compare, nothing to report
	// per field
	if text == "" {
		return &model.Verdict{
			OverallStatus: model.OverallUnreadable,
			Checks:        []model.FieldCheck{},
			Notes:         []string{"no usable text could be extracted from the label image"},
			VerifiedAt:    time.Now().UTC(),
		}
	}

	// 3. Run the four claim checks in field order, then the warning detector
	checks := make([]model.FieldCheck, 0, len(model.RequiredFields)+1)
	for _, field := range model.RequiredFields {
		checks = append(checks, runMatcher(field, claims.Get(field), text))
	}
	checks = append(checks, match.CheckGovernmentWarning(text))

	// 4. Aggregate: mismatch beats unreadable beats match; the warning
	// pseudo-check never participates
	overall := model.OverallMatch
	for _, check := range checks {
		if check.IsWarning() {
			continue
		}
		switch check.Status {
		case model.StatusMismatch:
			overall = model.OverallMismatch
		case model.StatusNotFound:
			if overall != model.OverallMismatch {
				overall = model.OverallUnreadable
			}
		}
	}

	return &model.Verdict{
		OverallStatus: overall,
		Checks:        checks,
		Notes:         buildNotes(overall, checks),
		VerifiedAt:    time.Now().UTC(),
	}
}

// runMatcher dispatches a single claim to its comparison strategy
func runMatcher(field model.Field, claim, text string) model.FieldCheck {
	switch field {
	case model.FieldAlcoholContent:
		return match.CompareAlcoholContent(claim, text)
	case model.FieldNetContents:
		return match.CompareNetContents(claim, text)
	default:
		return match.CompareFreeText(field, claim, text)
	}
}

// buildNotes renders one deterministic note per problem, in check order
func buildNotes(overall model.OverallStatus, checks []model.FieldCheck) []string {
	notes := []string{}
	for _, check := range checks {
		switch check.Status {
		case model.StatusMismatch:
			notes = append(notes, fmt.Sprintf("%s: detected %v differs from claimed %s",
				check.Field, check.DetectedValue, *check.FormValue))
		case model.StatusNotFound:
			notes = append(notes, fmt.Sprintf("%s: could not be located in the label text", check.Field))
		case model.StatusMissing:
			notes = append(notes, "governmentWarning: mandatory warning text not found on the label")
		}
	}

	if len(notes) == 0 && overall == model.OverallMatch {
		notes = append(notes, "all claims verified against the label text")
	}

	return notes
}
