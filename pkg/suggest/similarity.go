// Package suggest scores words against a misspelled query and keeps the
// bounded candidate list used for correction suggestions.
package suggest

import "strings"

// Similarity counts every contiguous substring of the shorter word that also
// occurs in the longer one, normalized by the shorter length squared.
//
// On equal lengths the second argument is treated as the longer word. The
// counting only depends on lengths, so Similarity(a, b) == Similarity(b, a).
// An empty shorter word scores 0.
func Similarity(a, b string) float64 {
	bigger, smaller := b, a
	if len(a) > len(b) {
		bigger, smaller = a, b
	}
	n := len(smaller)
	if n == 0 {
		return 0
	}

	matches := 0
	for j := 0; j < n; j++ {
		for i := 1; i <= n-j; i++ {
			if strings.Contains(bigger, smaller[j:j+i]) {
				matches++
			}
		}
	}
	return float64(matches) / float64(n*n)
}
