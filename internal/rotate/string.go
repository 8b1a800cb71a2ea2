package rotate

import (
	"strings"
	"unicode/utf8"

	"caesar/internal/rot"
)

func applyString(a rot.Alphabet, n int, s string) string {
	new := &strings.Builder{}
	new.Grow(len(s))

	for len(s) > 0 {
		r, size := utf8.DecodeRuneInString(s)
		if r == utf8.RuneError && size == 1 {
			// Keep invalid bytes as they are
			new.WriteByte(s[0])
		} else {
			new.WriteRune(a.Rot(r, n))
		}
		s = s[size:]
	}
	return new.String()
}
