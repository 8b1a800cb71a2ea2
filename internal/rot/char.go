package rot

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Char is a rune that unmarshals from either a single character or U+XXXX notation.
type Char rune

func (c *Char) UnmarshalText(text []byte) error {
	s := string(text)

	if hex, ok := strings.CutPrefix(s, "U+"); ok && len(hex) >= 4 {
		v, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return fmt.Errorf("rot: parse code point %q: %w", s, err)
		}
		if v > utf8.MaxRune {
			return fmt.Errorf("rot: code point %q is out of range", s)
		}
		*c = Char(v)
		return nil
	}

	r, size := utf8.DecodeRuneInString(s)
	if size == 0 || size != len(s) || (r == utf8.RuneError && size == 1) {
		return fmt.Errorf("rot: %q is not a single character", s)
	}
	*c = Char(r)
	return nil
}

func (c Char) MarshalText() ([]byte, error) {
	if !utf8.ValidRune(rune(c)) {
		return nil, fmt.Errorf("rot: %U is not a valid character", rune(c))
	}
	return []byte(string(rune(c))), nil
}
