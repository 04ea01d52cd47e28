// SPDX-License-Identifier: MIT
// Package: tenjinx/randgen
//
// impl_string.go — string generation.
//
// Contract:
//   • Palette: the runes of AllowedCharacters; must be non-empty valid UTF-8.
//   • Length: fixed (WithLength) XOR inclusive range (WithLengthRange).
//   • With a range the length is drawn first, then each rune, all from the
//     same resolved Source, in order.
//   • Length counts runes, not bytes.
//
// Complexity: O(length) time and space.

package randgen

import "strings"

// String returns one random string built from the palette.
// Errors (in check order): ErrNoAllowedCharacters, ErrInvalidAllowedCharacters,
// ErrNoLength, ErrPartialLengthRange, ErrConflictingLength,
// ErrLengthRangeInverted. Without a Source or a seed, a failed entropy read is
// returned wrapped; it is not ErrRandomGeneration.
func String(p Parameters) (string, error) {
	src, err := prepare(MethodString, p, validateString)
	if err != nil {
		return "", err
	}
	return drawString(src, p, []rune(p.allowed)), nil
}

// Strings returns n random strings drawn from a single resolved stream.
func Strings(p Parameters, n int) ([]string, error) {
	if err := checkCount(MethodStrings, n); err != nil {
		return nil, err
	}
	src, err := prepare(MethodStrings, p, validateString)
	if err != nil {
		return nil, err
	}
	palette := []rune(p.allowed)
	out := make([]string, n)
	for i := range out {
		out[i] = drawString(src, p, palette)
	}
	return out, nil
}

// drawLength resolves the effective length; validateString guarantees that
// either the fixed length or both bounds are present.
func drawLength(src Source, p Parameters) uint32 {
	if n, ok := p.length.get(); ok {
		return n
	}
	min, _ := p.minLength.get()
	max, _ := p.maxLength.get()
	return uint32(drawInclusive(src, int64(min), int64(max)))
}

func drawString(src Source, p Parameters, palette []rune) string {
	n := drawLength(src, p)
	size := int64(len(palette))

	var b strings.Builder
	b.Grow(int(n))
	for i := uint32(0); i < n; i++ {
		b.WriteRune(palette[src.Int63n(size)])
	}
	return b.String()
}
