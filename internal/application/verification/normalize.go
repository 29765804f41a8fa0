package verification

import (
	"strings"
	"unicode"
)

// Normalize reduces a raw token to its canonical form: surrounding
// whitespace and control characters (QR scanners love trailing newlines) are
// stripped. Normalize is idempotent.
func Normalize(raw string) string {
	return strings.TrimFunc(raw, func(r rune) bool {
		return unicode.IsSpace(r) || unicode.IsControl(r)
	})
}
