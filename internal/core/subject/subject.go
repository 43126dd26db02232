// Package subject canonicalizes viewer names so dedup keys compare reliably
package subject

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Normalize canonicalizes a raw Name cell: NFC form, format runes stripped,
// runs of whitespace collapsed to single spaces, and outer whitespace trimmed.
// Returns "" for values with no visible content
func Normalize(raw string) string {
	s := norm.NFC.String(raw)

	var b strings.Builder
	b.Grow(len(s))
	space := false
	for _, r := range s {
		switch {
		case unicode.In(r, unicode.Cf):
			// zero width joiners and friends sneak in from copy-paste
		case unicode.IsSpace(r):
			space = true
		default:
			if space && b.Len() > 0 {
				b.WriteByte(' ')
			}
			space = false
			b.WriteRune(r)
		}
	}
	return b.String()
}
