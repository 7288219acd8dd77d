package search

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var nonAlphanumeric = regexp.MustCompile(`[^a-z0-9]+`)

// Normalize converts raw query or alias text into its canonical comparable form:
// lowercase, diacritics stripped ("Jóvenes" → "jovenes"), every non-alphanumeric run
// replaced with a single space, trimmed.
//
// Normalize is idempotent and pure. Whitespace-only input yields the empty string.
func Normalize(input string) string {
	s := strings.ToLower(input)
	s = stripDiacritics(s)
	s = nonAlphanumeric.ReplaceAllString(s, " ")
	return strings.Join(strings.Fields(s), " ")
}

// stripDiacritics removes combining marks after NFD decomposition, so accented
// letters fold to their ASCII base ("é" → "e").
//
// The transform chain carries internal state, so a fresh one is built per call
// to keep Normalize safe for concurrent use.
func stripDiacritics(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	stripped, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return stripped
}
