package textproc

// digitConfusions maps glyphs that OCR commonly misreads for digits to their
// numeric intent. Kept as an explicit table so the set can be extended (or
// made locale-specific) without touching matcher logic.
var digitConfusions = map[rune]rune{
	'O': '0',
	'o': '0',
	'I': '1',
	'l': '1',
	'|': '1',
	'S': '5',
	's': '5',
	'B': '8',
	'b': '8',
}

// CorrectDigits rewrites digit-confusable glyphs in a token to the digits
// they were most likely meant to be. Only for use immediately before parsing
// a token as a number; applying it to free text would corrupt legitimate
// letters in brand-name comparisons.
func CorrectDigits(token string) string {
	out := make([]rune, 0, len(token))
	for _, r := range token {
		if digit, ok := digitConfusions[r]; ok {
			out = append(out, digit)
		} else {
			out = append(out, r)
		}
	}
	return string(out)
}
