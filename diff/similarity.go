package diff

import "strings"

// areSimilar reports whether two lines are close enough that a removal and an
// addition should be shown as one modified line.
//
// Rules, in order: an empty line is never similar to anything; lines that are
// equal after trimming whitespace always are; lines shorter than
// MinLineLength must match exactly; everything else is judged by Levenshtein
// ratio against SimilarityThreshold.
func areSimilar(left, right string, config Config) bool {
	if left == "" || right == "" {
		return false
	}

	if strings.TrimSpace(left) == strings.TrimSpace(right) {
		return true
	}

	if len(left) < config.MinLineLength || len(right) < config.MinLineLength {
		return left == right
	}

	distance := levenshtein(left, right)
	maxLen := max(len(left), len(right))
	similarity := 1.0 - float64(distance)/float64(maxLen)
	return similarity >= config.SimilarityThreshold
}

// levenshtein computes the edit distance between two strings with unit
// insert/delete/substitute costs. It operates on raw bytes, not grapheme
// clusters, so multi-byte runes are over-counted; that skew is accepted.
func levenshtein(a, b string) int {
	if a == b {
		return 0
	}
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	d := make([][]int, len(a)+1)
	for i := range d {
		d[i] = make([]int, len(b)+1)
	}
	for i := 0; i <= len(a); i++ {
		d[i][0] = i
	}
	for j := 0; j <= len(b); j++ {
		d[0][j] = j
	}

	for i := 1; i <= len(a); i++ {
		for j := 1; j <= len(b); j++ {
			cost := 0
			if a[i-1] != b[j-1] {
				cost = 1
			}
			d[i][j] = min(d[i-1][j]+1, d[i][j-1]+1, d[i-1][j-1]+cost)
		}
	}

	return d[len(a)][len(b)]
}
