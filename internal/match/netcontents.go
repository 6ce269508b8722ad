package match

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/ppiankov/labelcheck/internal/model"
	"github.com/ppiankov/labelcheck/internal/textproc"
)

// Net-contents candidates are a 2-4 digit quantity (possibly glyph-confused)
// immediately followed by a unit token. The bare-number fallback drops the
// unit requirement and assumes milliliters. The quantity glyph class matches
// the correction table exactly, including which letter cases it covers;
// uppercase L stays a unit token, never a digit misread.
var (
	netContentsPattern  = regexp.MustCompile(`([0-9OIlS]{2,4})\s?(FL\.?\s?[O0]Z|ML|M1|MI|[O0]Z|O2|Z2|L)`)
	netContentsDigits   = regexp.MustCompile(`[0-9]{2,4}`)
	netContentsFallback = regexp.MustCompile(`[0-9OIlS]{2,4}`)
)

// A detected quantity outside this ratio window relative to the claim is
// treated as OCR noise rather than a genuine mismatch.
const (
	netRatioLow  = 0.8
	netRatioHigh = 1.25
)

// CompareNetContents verifies an "NNN UNIT" claim against the label text.
// Among all quantity+unit candidates the one numerically closest to the
// claimed quantity wins; unit text is carried in the detected value but the
// quantity alone gates the status.
func CompareNetContents(claim, text string) model.FieldCheck {
	check := model.FieldCheck{
		Field:     model.FieldNetContents,
		Status:    model.StatusNotFound,
		FormValue: &claim,
	}

	normalizedClaim := strings.ReplaceAll(strings.ToUpper(claim), ".", "")
	claimDigits := netContentsDigits.FindString(normalizedClaim)
	if claimDigits == "" {
		// Malformed claim degrades to not_found, never an error
		return check
	}
	claimQty, err := strconv.Atoi(claimDigits)
	if err != nil {
		return check
	}

	detected, detectedQty, found := closestQuantityWithUnit(text, claimQty)
	if !found {
		detected, detectedQty, found = closestBareQuantity(text, claimQty)
	}
	if !found {
		return check
	}

	check.DetectedValue = detected

	ratio := float64(detectedQty) / float64(claimQty)
	switch {
	case ratio <= netRatioLow || ratio >= netRatioHigh:
		check.Status = model.StatusNotFound
	case detectedQty == claimQty:
		check.Status = model.StatusMatched
	default:
		check.Status = model.StatusMismatch
	}

	return check
}

// closestQuantityWithUnit scans unit-bearing candidates and picks the one
// whose quantity is nearest to the claim. Ties keep the first occurrence.
func closestQuantityWithUnit(text string, claimQty int) (string, int, bool) {
	bestDiff := math.Inf(1)
	var bestStr string
	var bestQty int
	found := false

	for _, m := range netContentsPattern.FindAllStringSubmatch(strings.ToUpper(text), -1) {
		qty, err := strconv.Atoi(textproc.CorrectDigits(m[1]))
		if err != nil {
			continue
		}
		unit := foldUnit(m[2])
		if diff := math.Abs(float64(claimQty - qty)); diff < bestDiff {
			bestDiff = diff
			bestQty = qty
			bestStr = strings.TrimSpace(fmt.Sprintf("%d %s", qty, unit))
			found = true
		}
	}

	return bestStr, bestQty, found
}

// closestBareQuantity scans bare 2-4 digit numbers and assumes the unit is ML
func closestBareQuantity(text string, claimQty int) (string, int, bool) {
	bestDiff := math.Inf(1)
	bestQty := 0
	found := false

	for _, m := range netContentsFallback.FindAllString(text, -1) {
		qty, err := strconv.Atoi(textproc.CorrectDigits(m))
		if err != nil {
			continue
		}
		if diff := math.Abs(float64(claimQty - qty)); diff < bestDiff {
			bestDiff = diff
			bestQty = qty
			found = true
		}
	}

	if !found {
		return "", 0, false
	}
	return fmt.Sprintf("%d ML", bestQty), bestQty, true
}

// foldUnit canonicalizes a detected unit token, folding the usual OCR
// confusions for milliliter and ounce markings.
func foldUnit(unit string) string {
	u := strings.ReplaceAll(strings.ToUpper(unit), ".", "")
	u = strings.ReplaceAll(u, "M1", "ML")
	u = strings.ReplaceAll(u, "MI", "ML")
	u = strings.ReplaceAll(u, "0Z", "OZ")
	u = strings.ReplaceAll(u, "O2", "OZ")
	u = strings.ReplaceAll(u, "Z2", "OZ")
	if u == "1" {
		u = "L"
	}
	return u
}
