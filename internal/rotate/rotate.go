// Package rotate implements a shift cipher over a contiguous alphabet of runes.
package rotate

import (
	"caesar/internal/rot"
)

// Cipher is an immutable alphabet and shift pair. The zero value is not usable.
type Cipher struct {
	alphabet rot.Alphabet
	shift    int
}

// New returns a cipher that rotates runes in [low, high] forward by shift.
// The shift may be any integer; it is reduced modulo the alphabet size.
func New(low, high rune, shift int) (Cipher, error) {
	a, err := rot.NewAlphabet(low, high)
	if err != nil {
		return Cipher{}, err
	}
	return Cipher{alphabet: a, shift: a.Norm(shift)}, nil
}

// ForAlphabet is New for an existing alphabet.
func ForAlphabet(a rot.Alphabet, shift int) (Cipher, error) {
	return New(a.Low, a.High, shift)
}

func (c Cipher) Alphabet() rot.Alphabet {
	return c.alphabet
}

// Shift returns the normalized shift, in [0, alphabet size).
func (c Cipher) Shift() int {
	return c.shift
}

// Inverse returns the cipher whose Encode is c's Decode.
func (c Cipher) Inverse() Cipher {
	return Cipher{alphabet: c.alphabet, shift: c.alphabet.Norm(-c.shift)}
}

func (c Cipher) Encode(text []rune) []rune {
	return apply(c.alphabet, c.shift, text)
}

func (c Cipher) Decode(text []rune) []rune {
	return c.Inverse().Encode(text)
}

func (c Cipher) EncodeString(s string) string {
	return applyString(c.alphabet, c.shift, s)
}

func (c Cipher) DecodeString(s string) string {
	return c.Inverse().EncodeString(s)
}

func apply(a rot.Alphabet, n int, text []rune) []rune {
	out := make([]rune, len(text))
	for i, r := range text {
		out[i] = a.Rot(r, n)
	}
	return out
}
