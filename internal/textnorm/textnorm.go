// Package textnorm cleans raw item text before classification and scoring.
package textnorm

import (
	"regexp"
	"strings"
	"unicode"
)

var (
	reTags = regexp.MustCompile(`<[^>]*>`)
	reURLs = regexp.MustCompile(`https?://\S+`)
)

// Normalize strips markup tags and URL-like substrings, drops characters that
// are not letters, digits or whitespace, collapses whitespace runs and trims.
// It is total and idempotent; empty input yields empty output.
func Normalize(raw string) string {
	if raw == "" {
		return ""
	}

	s := reTags.ReplaceAllString(raw, " ")
	s = reURLs.ReplaceAllString(s, " ")

	b := make([]rune, 0, len(s))
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsNumber(r) || unicode.IsSpace(r) {
			b = append(b, r)
		} else {
			b = append(b, ' ')
		}
	}

	return strings.Join(strings.Fields(string(b)), " ")
}
