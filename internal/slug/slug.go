// Package slug turns catalog titles and URLs into URL-safe path segments and
// search keys that ignore case and diacritics ("Constanța" == "constanta").
package slug

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	whitespaceRegex = regexp.MustCompile(`\s+`)
	nonWordRegex    = regexp.MustCompile(`[^A-Za-z0-9_-]+`)
)

// stripMarks decomposes s and drops the combining marks, leaving base letters.
func stripMarks(s string) string {
	// transform.Chain keeps state, build a fresh one per call.
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

// Slugify converts input into a path segment: diacritics removed, whitespace
// runs turned into hyphens, anything outside [a-z0-9_-] dropped, lowercased.
//
// Slugify(Slugify(x)) == Slugify(x) for every x.
func Slugify(input string) string {
	s := stripMarks(strings.TrimSpace(input))
	s = whitespaceRegex.ReplaceAllString(s, "-")
	s = nonWordRegex.ReplaceAllString(s, "")
	return strings.ToLower(s)
}

// NormalizeSearch lowercases input, removes diacritics and collapses
// whitespace into single spaces.
func NormalizeSearch(input string) string {
	s := stripMarks(strings.ToLower(input))
	s = whitespaceRegex.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// Contains reports whether text contains query once both are normalized with
// NormalizeSearch. An empty query matches everything.
func Contains(text, query string) bool {
	q := NormalizeSearch(query)
	if q == "" {
		return true
	}
	return strings.Contains(NormalizeSearch(text), q)
}
