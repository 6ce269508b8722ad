// Package match implements the stateless field comparison strategies. Every
// matcher is a pure function of (claim, normalized label text); none of them
// ever fails — unusable input degrades to a not_found check.
package match

import (
	"strings"

	"github.com/ppiankov/labelcheck/internal/model"
	"github.com/ppiankov/labelcheck/internal/textproc"
)

// Fuzzy matching thresholds for free-text claims. Short tokens carry less
// signal and are noisier, so they get a softer similarity bar.
const (
	strongTokenSimilarity = 0.9  // Early stop once a text token scores this high
	tokenSimilarityBar    = 0.75 // Claim token counts as covered at this similarity
	shortTokenBar         = 0.66 // Softer bar for claim tokens of length <= 3
	shortTokenLen         = 3
	coverageBar           = 0.66 // Fraction of claim tokens that must be covered
)

// CompareFreeText verifies a free-text claim (brand name, product class/type)
// against the label text. Literal containment wins outright; otherwise fuzzy
// token coverage decides. Free-text fields have no mismatch outcome: either
// the claim is recoverable from the text or it is not.
func CompareFreeText(field model.Field, claim, text string) model.FieldCheck {
	check := model.FieldCheck{
		Field:     field,
		Status:    model.StatusNotFound,
		FormValue: &claim,
	}

	if text == "" || claim == "" {
		return check
	}

	if strings.Contains(strings.ToUpper(text), strings.ToUpper(claim)) {
		check.Status = model.StatusMatched
		check.DetectedValue = claim
		return check
	}

	if fuzzyTokenCoverage(claim, text) >= coverageBar {
		check.Status = model.StatusMatched
		check.DetectedValue = claim
	}

	return check
}

// fuzzyTokenCoverage returns the fraction of claim tokens that found a
// sufficiently similar token anywhere in the label text.
func fuzzyTokenCoverage(claim, text string) float64 {
	claimTokens := textproc.Tokenize(claim)
	textTokens := textproc.Tokenize(text)
	if len(claimTokens) == 0 || len(textTokens) == 0 {
		return 0
	}

	covered := 0
	for _, ct := range claimTokens {
		best := 0.0
		for _, tt := range textTokens {
			if score := textproc.Similarity(ct, tt); score > best {
				best = score
			}
			if best >= strongTokenSimilarity {
				break
			}
		}

		bar := tokenSimilarityBar
		if len(ct) <= shortTokenLen {
			bar = shortTokenBar
		}
		if best >= bar {
			covered++
		}
	}

	return float64(covered) / float64(len(claimTokens))
}
