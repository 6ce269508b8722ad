package match

import (
	"testing"

	"github.com/ppiankov/labelcheck/internal/model"
)

func TestCheckGovernmentWarning_LiteralPhrase(t *testing.T) {
	check := CheckGovernmentWarning("GOVERNMENT WARNING: ACCORDING TO THE SURGEON GENERAL")

	if check.Status != model.StatusPresent {
		t.Errorf("Expected present, got %s", check.Status)
	}
	if check.DetectedValue != true {
		t.Errorf("Expected detected true, got %v", check.DetectedValue)
	}
	if check.FormValue != nil {
		t.Errorf("Expected nil form value for pseudo-field, got %v", check.FormValue)
	}
}

func TestCheckGovernmentWarning_SeparatedWords(t *testing.T) {
	check := CheckGovernmentWarning("GOVERNMENT NOTICE TEXT AND LATER A WARNING ABOUT SOMETHING")

	if check.Status != model.StatusPresent {
		t.Errorf("Expected present for both words anywhere, got %s", check.Status)
	}
}

func TestCheckGovernmentWarning_GlyphTypo(t *testing.T) {
	check := CheckGovernmentWarning("GOVERNNENT WARNING: DO NOT DRINK DURING PREGNANCY")

	if check.Status != model.StatusPresent {
		t.Errorf("Expected present for garbled boilerplate, got %s", check.Status)
	}
}

func TestCheckGovernmentWarning_Missing(t *testing.T) {
	check := CheckGovernmentWarning("OLD TOM DISTILLERY KENTUCKY STRAIGHT BOURBON WHISKEY 750 ML")

	if check.Status != model.StatusMissing {
		t.Errorf("Expected missing, got %s", check.Status)
	}
	if check.DetectedValue != false {
		t.Errorf("Expected detected false, got %v", check.DetectedValue)
	}
}

func TestCheckGovernmentWarning_ProximityWindow(t *testing.T) {
	// Government-ish and warning-ish tokens more than 6 positions apart
	// do not count as the phrase
	check := CheckGovernmentWarning("GOVERNNENT AA BB CC DD EE FF GG HH WARNNING")

	if check.Status != model.StatusMissing {
		t.Errorf("Expected missing when tokens are too far apart, got %s", check.Status)
	}
}

func TestCheckGovernmentWarning_EmptyText(t *testing.T) {
	check := CheckGovernmentWarning("")

	if check.Status != model.StatusMissing {
		t.Errorf("Expected missing for empty text, got %s", check.Status)
	}
}
