package textproc

import (
	"reflect"
	"testing"
)

func TestTokenize_BasicSplitting(t *testing.T) {
	got := Tokenize("Old Tom Distillery, 45% alc/vol")
	want := []string{"OLD", "TOM", "DISTILLERY", "45", "ALC", "VOL"}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("Expected %v, got %v", want, got)
	}
}

func TestTokenize_DropsShortTokens(t *testing.T) {
	got := Tokenize("A B CD e FG")
	want := []string{"CD", "FG"}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("Expected %v, got %v", want, got)
	}
}

func TestTokenize_PreservesOrder(t *testing.T) {
	got := Tokenize("750 ML GOVERNMENT WARNING")
	want := []string{"750", "ML", "GOVERNMENT", "WARNING"}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("Expected %v, got %v", want, got)
	}
}

func TestTokenize_EmptyInput(t *testing.T) {
	if got := Tokenize(""); len(got) != 0 {
		t.Errorf("Expected no tokens, got %v", got)
	}
	if got := Tokenize("...!!!"); len(got) != 0 {
		t.Errorf("Expected no tokens from punctuation, got %v", got)
	}
}

func TestLevenshtein_KnownDistances(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"ABC", "ABC", 0},
		{"ABC", "", 3},
		{"", "ABC", 3},
		{"KITTEN", "SITTING", 3},
		{"DISTILLERY", "DISTILERY", 1},
		{"GOVERNMENT", "GOVERNNENT", 1},
	}

	for _, tt := range tests {
		if got := Levenshtein(tt.a, tt.b); got != tt.want {
			t.Errorf("Levenshtein(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestSimilarity_Symmetric(t *testing.T) {
	pairs := [][2]string{
		{"GOVERNMENT", "GOVERNNENT"},
		{"DISTILLERY", "DISTILERY"},
		{"OLD", "OLA"},
		{"BOURBON", "WHISKEY"},
	}

	for _, p := range pairs {
		ab := Similarity(p[0], p[1])
		ba := Similarity(p[1], p[0])
		if ab != ba {
			t.Errorf("Similarity(%q, %q) = %f but reversed = %f", p[0], p[1], ab, ba)
		}
	}
}

func TestSimilarity_IdenticalIsOne(t *testing.T) {
	if got := Similarity("DISTILLERY", "DISTILLERY"); got != 1 {
		t.Errorf("Expected 1.0 for identical strings, got %f", got)
	}
}

func TestSimilarity_EmptyIsZero(t *testing.T) {
	if got := Similarity("", "ABC"); got != 0 {
		t.Errorf("Expected 0 when one side is empty, got %f", got)
	}
	if got := Similarity("ABC", ""); got != 0 {
		t.Errorf("Expected 0 when one side is empty, got %f", got)
	}
}

func TestSimilarity_Range(t *testing.T) {
	got := Similarity("GOVERNMENT", "GOVERNNENT")
	if got < 0 || got > 1 {
		t.Fatalf("Similarity outside [0,1]: %f", got)
	}
	if got < 0.89 {
		t.Errorf("Expected one-edit similarity near 0.9, got %f", got)
	}
}
