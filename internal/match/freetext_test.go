package match

import (
	"testing"

	"github.com/ppiankov/labelcheck/internal/model"
)

func TestCompareFreeText_LiteralContainment(t *testing.T) {
	check := CompareFreeText(model.FieldBrandName,
		"Old Tom Distillery",
		"OLD TOM DISTILLERY KENTUCKY STRAIGHT BOURBON WHISKEY")

	if check.Status != model.StatusMatched {
		t.Errorf("Expected matched, got %s", check.Status)
	}
	if check.DetectedValue != "Old Tom Distillery" {
		t.Errorf("Expected detected value to echo the claim, got %v", check.DetectedValue)
	}
	if check.FormValue == nil || *check.FormValue != "Old Tom Distillery" {
		t.Errorf("Expected form value to carry the claim")
	}
}

func TestCompareFreeText_TokenTyposTolerated(t *testing.T) {
	check := CompareFreeText(model.FieldBrandName,
		"Old Tom Distillery",
		"OLA TOM DISTILERY KENTUCKY STRAIGHT BOURBON")

	if check.Status != model.StatusMatched {
		t.Errorf("Expected matched despite token typos, got %s", check.Status)
	}
}

func TestCompareFreeText_UnrelatedText(t *testing.T) {
	check := CompareFreeText(model.FieldBrandName,
		"Old Tom Distillery",
		"COMPLETELY DIFFERENT PRODUCT LABEL CONTENT HERE")

	if check.Status != model.StatusNotFound {
		t.Errorf("Expected not_found, got %s", check.Status)
	}
	if check.DetectedValue != nil {
		t.Errorf("Expected nil detected value, got %v", check.DetectedValue)
	}
}

func TestCompareFreeText_NeverMismatches(t *testing.T) {
	// Free-text fields have no mismatch outcome by design
	texts := []string{
		"",
		"OLD TOM DISTILLERY",
		"SOMETHING ELSE ENTIRELY",
		"OLD",
	}

	for _, text := range texts {
		check := CompareFreeText(model.FieldProductClassType, "Straight Bourbon Whiskey", text)
		if check.Status == model.StatusMismatch {
			t.Errorf("Free-text compare returned mismatch for text %q", text)
		}
	}
}

func TestCompareFreeText_EmptyText(t *testing.T) {
	check := CompareFreeText(model.FieldBrandName, "Old Tom Distillery", "")

	if check.Status != model.StatusNotFound {
		t.Errorf("Expected not_found on empty text, got %s", check.Status)
	}
	if check.DetectedValue != nil {
		t.Errorf("Expected nil detected value on empty text")
	}
}

func TestCompareFreeText_CaseInsensitiveContainment(t *testing.T) {
	check := CompareFreeText(model.FieldProductClassType,
		"kentucky straight bourbon whiskey",
		"OLD TOM DISTILLERY KENTUCKY STRAIGHT BOURBON WHISKEY 750 ML")

	if check.Status != model.StatusMatched {
		t.Errorf("Expected matched, got %s", check.Status)
	}
}

func TestCompareFreeText_PartialCoverageBelowBar(t *testing.T) {
	// Only one of three claim tokens present: coverage 1/3 < 0.66
	check := CompareFreeText(model.FieldBrandName,
		"Old Tom Distillery",
		"DISTILLERY OF SOMEPLACE UNRELATED GOODS")

	if check.Status != model.StatusNotFound {
		t.Errorf("Expected not_found for low coverage, got %s", check.Status)
	}
}
