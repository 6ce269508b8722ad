package match

import (
	"strings"

	"github.com/ppiankov/labelcheck/internal/model"
	"github.com/ppiankov/labelcheck/internal/textproc"
)

// Government-warning fuzzy detection thresholds. The legal boilerplate is
// long, so OCR often splits or garbles it; a government-ish token and a
// warning-ish token within a few positions of each other is enough.
const (
	governmentSimilarityBar = 0.75
	warningSimilarityBar    = 0.8
	warningProximityWindow  = 6
)

// CheckGovernmentWarning detects the mandatory "GOVERNMENT WARNING" text.
// There is no user claim for this check: the boilerplate is either present
// or missing. Exact containment is tried first, then fuzzy token proximity.
func CheckGovernmentWarning(text string) model.FieldCheck {
	present := containsGovernmentWarning(text)

	status := model.StatusMissing
	if present {
		status = model.StatusPresent
	}

	return model.FieldCheck{
		Field:         model.FieldGovernmentWarning,
		Status:        status,
		FormValue:     nil,
		DetectedValue: present,
	}
}

func containsGovernmentWarning(text string) bool {
	upper := strings.ToUpper(text)

	if strings.Contains(upper, "GOVERNMENT WARNING") {
		return true
	}
	if strings.Contains(upper, "GOVERNMENT") && strings.Contains(upper, "WARNING") {
		return true
	}

	// Fuzzy fallback: collect token positions resembling either word and
	// accept any pair close enough together
	tokens := textproc.Tokenize(upper)
	var govIdx, warnIdx []int
	for i, t := range tokens {
		if textproc.Similarity(t, "GOVERNMENT") >= governmentSimilarityBar || strings.HasPrefix(t, "GOVERN") {
			govIdx = append(govIdx, i)
		}
		if textproc.Similarity(t, "WARNING") >= warningSimilarityBar || strings.HasPrefix(t, "WARN") {
			warnIdx = append(warnIdx, i)
		}
	}

	for _, g := range govIdx {
		for _, w := range warnIdx {
			if abs(g-w) <= warningProximityWindow {
				return true
			}
		}
	}

	return false
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
