package textproc

import "testing"

func TestNormalize_LineBreaksAndWhitespace(t *testing.T) {
	raw := "OLD TOM\r\nDISTILLERY\n  KENTUCKY\t STRAIGHT   BOURBON"

	got := Normalize(raw)
	want := "OLD TOM DISTILLERY KENTUCKY STRAIGHT BOURBON"

	if got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
}

func TestNormalize_UpperCasesAndTrims(t *testing.T) {
	got := Normalize("  old tom distillery  ")
	want := "OLD TOM DISTILLERY"

	if got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
}

func TestNormalize_EmptyInput(t *testing.T) {
	if got := Normalize(""); got != "" {
		t.Errorf("Expected empty string, got %q", got)
	}
	if got := Normalize("  \r\n \n "); got != "" {
		t.Errorf("Expected empty string for whitespace-only input, got %q", got)
	}
}

func TestCorrectDigits_CommonConfusions(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"4S", "45"},
		{"7SO", "750"},
		{"I2", "12"},
		{"l0", "10"},
		{"|5", "15"},
		{"B0", "80"},
		{"45", "45"},
	}

	for _, tt := range tests {
		if got := CorrectDigits(tt.in); got != tt.want {
			t.Errorf("CorrectDigits(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestCorrectDigits_LeavesOtherRunesAlone(t *testing.T) {
	// Upper-case L is not a confusable (only lowercase l is), M and digits pass through
	if got := CorrectDigits("ML750"); got != "ML750" {
		t.Errorf("Expected ML750 unchanged, got %q", got)
	}
}
