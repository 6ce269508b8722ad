package match

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/ppiankov/labelcheck/internal/model"
	"github.com/ppiankov/labelcheck/internal/textproc"
)

// Percentage candidates may carry digit-confusable glyphs; they are corrected
// before parsing. The bare-number fallback scans the same shape without the
// percent sign. The glyph class matches the correction table exactly,
// including which letter cases it covers; uppercase L is a letter, never a
// digit misread, and widening the class here would change match behavior.
var (
	abvPattern        = regexp.MustCompile(`[0-9OIlS]{1,3}(?:\.[0-9OIlS]+)?\s*%`)
	abvNumberFallback = regexp.MustCompile(`[0-9OIlS]{1,3}(?:\.[0-9OIlS]+)?`)
)

// ABV decision constants. A reading further than abvNoiseDiff from the claim,
// or outside the plausible bottle range, is reclassified as unreadable rather
// than reported as a mismatch; an implausible reading is worse than none.
const (
	abvTolerance    = 0.5
	abvNoiseDiff    = 5.0
	abvPlausibleMin = 10.0
	abvPlausibleMax = 80.0

	// Fallback scan range when no percent sign survived OCR
	abvFallbackMin = 1.0
	abvFallbackMax = 80.0
)

// CompareAlcoholContent verifies an "NN%" claim against the label text. All
// percentage-shaped candidates are extracted (glyph-corrected) and the one
// numerically closest to the claim wins; without any percent sign the matcher
// falls back to bare 1-3 digit numbers in the plausible ABV range.
func CompareAlcoholContent(claim, text string) model.FieldCheck {
	check := model.FieldCheck{
		Field:     model.FieldAlcoholContent,
		Status:    model.StatusNotFound,
		FormValue: &claim,
	}

	claimNum, err := strconv.ParseFloat(strings.TrimSuffix(strings.TrimSpace(claim), "%"), 64)
	if err != nil {
		// Malformed claim degrades to not_found, never an error
		return check
	}

	detected, detectedNum, found := closestPercentage(text, claimNum)
	if !found {
		detected, detectedNum, found = closestBareNumber(text, claimNum)
	}
	if !found {
		return check
	}

	check.DetectedValue = detected

	diff := math.Abs(claimNum - detectedNum)
	switch {
	case diff > abvNoiseDiff, detectedNum < abvPlausibleMin, detectedNum > abvPlausibleMax:
		check.Status = model.StatusNotFound
	case diff <= abvTolerance:
		check.Status = model.StatusMatched
	default:
		check.Status = model.StatusMismatch
	}

	return check
}

// closestPercentage scans for percent-sign candidates and picks the one
// nearest to the claim value. Ties keep the first occurrence.
func closestPercentage(text string, claimNum float64) (string, float64, bool) {
	bestDiff := math.Inf(1)
	var bestStr string
	var bestNum float64
	found := false

	for _, m := range abvPattern.FindAllString(text, -1) {
		digits := strings.TrimSpace(strings.TrimSuffix(m, "%"))
		num, err := strconv.ParseFloat(textproc.CorrectDigits(digits), 64)
		if err != nil {
			continue
		}
		if diff := math.Abs(claimNum - num); diff < bestDiff {
			bestDiff = diff
			bestNum = num
			bestStr = formatPercent(num)
			found = true
		}
	}

	return bestStr, bestNum, found
}

// closestBareNumber scans any 1-3 digit numbers restricted to the plausible
// ABV range and picks the one nearest to the claim value.
func closestBareNumber(text string, claimNum float64) (string, float64, bool) {
	bestDiff := math.Inf(1)
	var bestStr string
	var bestNum float64
	found := false

	for _, m := range abvNumberFallback.FindAllString(text, -1) {
		num, err := strconv.ParseFloat(textproc.CorrectDigits(m), 64)
		if err != nil || num < abvFallbackMin || num > abvFallbackMax {
			continue
		}
		if diff := math.Abs(claimNum - num); diff < bestDiff {
			bestDiff = diff
			bestNum = num
			bestStr = formatPercent(num)
			found = true
		}
	}

	return bestStr, bestNum, found
}

// formatPercent rounds to 2 decimals and renders without trailing zeros
func formatPercent(num float64) string {
	rounded := math.Round(num*100) / 100
	return strconv.FormatFloat(rounded, 'f', -1, 64) + "%"
}
