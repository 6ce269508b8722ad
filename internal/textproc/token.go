package textproc

import "strings"

// Tokenize splits text into upper-cased alphanumeric tokens of length >= 2.
// Everything outside [A-Z0-9] and whitespace is treated as a separator.
// Token order follows the input.
func Tokenize(text string) []string {
	upper := strings.ToUpper(text)

	var b strings.Builder
	b.Grow(len(upper))
	for _, r := range upper {
		switch {
		case r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		default:
			b.WriteRune(' ')
		}
	}

	fields := strings.Fields(b.String())
	tokens := fields[:0]
	for _, f := range fields {
		if len(f) >= 2 {
			tokens = append(tokens, f)
		}
	}
	return tokens
}

// Levenshtein computes the classic edit distance between a and b with unit
// insertion, deletion, and substitution costs.
func Levenshtein(a, b string) int {
	if a == b {
		return 0
	}
	m, n := len(a), len(b)
	if m == 0 {
		return n
	}
	if n == 0 {
		return m
	}

	// Two-row DP table
	prev := make([]int, n+1)
	curr := make([]int, n+1)
	for j := 0; j <= n; j++ {
		prev[j] = j
	}

	for i := 1; i <= m; i++ {
		curr[0] = i
		for j := 1; j <= n; j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = min3(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}

	return prev[n]
}

// Similarity returns 1 - levenshtein(a,b)/max(len(a),len(b)), a ratio in
// [0,1] where 1 means identical. Returns 0 if either string is empty.
func Similarity(a, b string) float64 {
	if a == "" || b == "" {
		return 0
	}
	maxLen := len(a)
	if len(b) > maxLen {
		maxLen = len(b)
	}
	return 1 - float64(Levenshtein(a, b))/float64(maxLen)
}

func min3(a, b, c int) int {
	if b < a {
		a = b
	}
	if c < a {
		a = c
	}
	return a
}
