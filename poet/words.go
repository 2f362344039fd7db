// File: words.go
// Role: Splitting text into words on runs of separator runes.

package poet

import "strings"

// isSeparator reports the runes that delimit words: space, tab, newline,
// carriage return, vertical tab and form feed. Anything else, including
// punctuation and non-ASCII spaces, belongs to a word.
func isSeparator(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}

	return false
}

// splitWords splits s on runs of separators. Leading and trailing
// separators produce no empty words.
func splitWords(s string) []string {
	return strings.FieldsFunc(s, isSeparator)
}
