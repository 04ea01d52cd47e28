// SPDX-License-Identifier: MIT
// Package: tenjinx/randgen
//
// impl_int32.go — int32 generation.
//
// Contract:
//   • Bounds default to [MinimumInt32, MaximumInt32]; both inclusive.
//   • min < max when both bounds are set (a single-value range is rejected).
//   • A single bound may reach past the other's default; an inverted resolved
//     range then collapses to min.
//   • The draw runs in int64 space, so even the full int32 span cannot overflow.

package randgen

// Int32 returns one random int32 in [min, max].
// Errors: ErrInt32RangeInverted, ErrInt32RangeEmpty. Without a Source or a
// seed, a failed entropy read is returned wrapped; it is not ErrRandomGeneration.
// Complexity: O(1).
func Int32(p Parameters) (int32, error) {
	src, err := prepare(MethodInt32, p, validateInt32)
	if err != nil {
		return 0, err
	}
	min, max := p.int32Range()
	return drawInt32(src, min, max), nil
}

// Int32s returns n random int32 values drawn from a single resolved stream.
func Int32s(p Parameters, n int) ([]int32, error) {
	if err := checkCount(MethodInt32s, n); err != nil {
		return nil, err
	}
	src, err := prepare(MethodInt32s, p, validateInt32)
	if err != nil {
		return nil, err
	}
	min, max := p.int32Range()
	out := make([]int32, n)
	for i := range out {
		out[i] = drawInt32(src, min, max)
	}
	return out, nil
}

// drawInt32 returns min without drawing when the resolved range is inverted,
// which only a one-sided bound can produce.
func drawInt32(src Source, min, max int32) int32 {
	if min > max {
		return min
	}
	return int32(drawInclusive(src, int64(min), int64(max)))
}
