package usecase

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Sanitize reduces arbitrary user text to a trimmed, single-spaced,
// printable-ASCII string. Unicode is canonically decomposed first so that
// accented letters keep their base character ("café" -> "cafe") instead of
// disappearing. Never fails; worst case is the empty string.
//
// Every user-supplied free-text field passes through here before it reaches
// the database, an email body, or a log line.
func Sanitize(s string) string {
	decomposed := norm.NFD.String(s)

	var b strings.Builder
	b.Grow(len(decomposed))
	for _, r := range decomposed {
		switch {
		case unicode.IsSpace(r):
			b.WriteByte(' ')
		case r >= 0x20 && r <= 0x7E:
			b.WriteRune(r)
		}
		// everything else (combining marks, curly quotes, em-dashes,
		// control chars) is dropped
	}

	return strings.Join(strings.Fields(b.String()), " ")
}
