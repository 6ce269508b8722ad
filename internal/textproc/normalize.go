// Package textproc provides the text primitives shared by every matcher:
// OCR text normalization, digit glyph correction, tokenization, and
// edit-distance similarity scoring.
package textproc

import (
	"regexp"
	"strings"
)

var (
	lineBreaks = regexp.MustCompile(`\r?\n`)
	whitespace = regexp.MustCompile(`\s+`)
)

// Normalize canonicalizes raw OCR output into the single string consumed by
// all matchers: line breaks become spaces, whitespace runs collapse to one
// space, the result is upper-cased and trimmed. Total, never fails.
func Normalize(raw string) string {
	s := lineBreaks.ReplaceAllString(raw, " ")
	s = whitespace.ReplaceAllString(s, " ")
	return strings.TrimSpace(strings.ToUpper(s))
}
