// Package rot provides functions for rotating runes within a contiguous alphabet.
package rot

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

// ErrInvalidRange is returned when alphabet bounds do not describe
// a non-empty range of Unicode scalar values.
var ErrInvalidRange = errors.New("rot: invalid alphabet range")

const (
	surrogateMin = 0xD800
	surrogateMax = 0xDFFF
)

// Alphabet is the inclusive range of code points [Low, High].
type Alphabet struct {
	Low  rune
	High rune
}

var (
	Printable = Alphabet{Low: ' ', High: '~'}
	Upper     = Alphabet{Low: 'A', High: 'Z'}
	Lower     = Alphabet{Low: 'a', High: 'z'}
	Digits    = Alphabet{Low: '0', High: '9'}
)

func NewAlphabet(low, high rune) (Alphabet, error) {
	a := Alphabet{Low: low, High: high}
	return a, a.Validate()
}

func (a Alphabet) Validate() error {
	switch {
	case a.High < a.Low:
		return fmt.Errorf("%w: high %q is below low %q", ErrInvalidRange, a.High, a.Low)
	case a.Low < 0 || a.High > utf8.MaxRune:
		return fmt.Errorf("%w: [%U, %U] is outside the unicode range", ErrInvalidRange, a.Low, a.High)
	case a.Low <= surrogateMax && a.High >= surrogateMin:
		return fmt.Errorf("%w: [%U, %U] contains surrogates", ErrInvalidRange, a.Low, a.High)
	}
	return nil
}

func (a Alphabet) Size() int {
	return int(a.High) - int(a.Low) + 1
}

func (a Alphabet) Contains(r rune) bool {
	return a.Low <= r && r <= a.High
}

// Norm reduces n into [0, a.Size()).
func (a Alphabet) Norm(n int) int {
	size := a.Size()
	n %= size
	if n < 0 {
		n += size
	}
	return n
}

// Rot rotates r forward by n positions, wrapping at the alphabet bounds.
// Runes outside the alphabet are returned as is.
func (a Alphabet) Rot(r rune, n int) rune {
	if !a.Contains(r) {
		return r
	}
	return a.Low + rune((int(r-a.Low)+a.Norm(n))%a.Size())
}

func (a Alphabet) String() string {
	return fmt.Sprintf("[%q, %q]", a.Low, a.High)
}
