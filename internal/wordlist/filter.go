// Package wordlist provides word list filtering helpers.
package wordlist

import "github.com/verte-zerg/typeline/internal/words"

// FilterFunc returns true when a word should be kept.
type FilterFunc func(string) bool

// LengthFilter keeps words whose code point length is in [minLen, maxLen).
func LengthFilter(minLen, maxLen int) FilterFunc {
	return func(word string) bool {
		return words.InRange(word, minLen, maxLen)
	}
}

// Filter returns the words accepted by keep, preserving order.
func Filter(list []string, keep FilterFunc) []string {
	out := make([]string, 0, len(list))
	for _, w := range list {
		if keep(w) {
			out = append(out, w)
		}
	}
	return out
}
