package domain

import (
	"strings"
	"unicode"
)

// HeadingAnchor converts a markdown heading into the anchor GitHub generates
// for it: lower case, spaces become hyphens, punctuation is dropped
func HeadingAnchor(heading string) string {
	var result strings.Builder

	for _, r := range strings.TrimSpace(heading) {
		switch {
		case unicode.IsLetter(r) || unicode.IsNumber(r):
			result.WriteRune(unicode.ToLower(r))
		case r == '-' || r == '_':
			result.WriteRune(r)
		case r == ' ':
			result.WriteRune('-')
		}
		// Everything else is removed
	}

	return result.String()
}
