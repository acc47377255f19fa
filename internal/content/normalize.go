// Package content provides pure text transforms applied to extracted content.
package content

import (
	"regexp"
	"strings"
)

var excessNewlines = regexp.MustCompile(`\n{3,}`)

// Normalize collapses runs of three or more newlines down to exactly two and
// trims surrounding whitespace. Empty input yields the empty string.
// Normalize is idempotent. HTML entity decoding is the extractor's job.
func Normalize(s string) string {
	if s == "" {
		return ""
	}
	s = excessNewlines.ReplaceAllString(s, "\n\n")
	return strings.TrimSpace(s)
}
