// Package textnorm folds free text into a canonical comparable form:
// accents stripped, lowercased, edge whitespace trimmed. Search keys and
// the catalog cleanup both compare through it, so the rule is deliberately
// narrow: internal whitespace and punctuation are left alone.
package textnorm

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var stripAccents = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Normalize returns the canonical form of s: NFD-decomposed with combining
// marks removed, lowercased, and trimmed at both ends. It is pure and
// idempotent: Normalize(Normalize(s)) == Normalize(s).
func Normalize(s string) string {
	folded, _, err := transform.String(stripAccents, strings.ToLower(s))
	if err != nil {
		// Invalid UTF-8 passes through un-stripped rather than erroring;
		// the lowercase+trim fold still applies.
		folded = strings.ToLower(s)
	}
	return strings.TrimSpace(folded)
}

// Equal reports whether a and b normalize to the same string.
func Equal(a, b string) bool {
	return Normalize(a) == Normalize(b)
}

// Contains reports whether the normalized form of s contains the
// normalized form of substr.
func Contains(s, substr string) bool {
	return strings.Contains(Normalize(s), Normalize(substr))
}
