// SPDX-License-Identifier: MIT
// Package: tenjinx/randgen
//
// impl_double.go — float64 generation.
//
// Contract:
//   • Bounds default to [MinimumDouble, MaximumDouble].
//   • min, max and max-min finite.
//   • min < max, not equal within mathx.DoubleTolerance, when both are set.
//     A single bound may reach past the other's default.
//   • result = draw*(max-min) + min with draw ∈ [0,1).
//
// Upper bound: max is not attainable in exact arithmetic, but float64
// rounding of the scaled draw may land on it, so the observable contract is
// min <= result <= max.

package randgen

// Double returns one random float64 within the configured bounds.
// Errors: ErrDoubleNotFinite, ErrDoubleRangeInverted, ErrDoubleRangeEmpty.
// Without a Source or a seed, a failed entropy read is returned wrapped; it is
// not ErrRandomGeneration.
// Complexity: O(1).
func Double(p Parameters) (float64, error) {
	src, err := prepare(MethodDouble, p, validateDouble)
	if err != nil {
		return 0, err
	}
	min, max := p.doubleRange()
	return scaleDouble(src, min, max), nil
}

// Doubles returns n random float64 values drawn from a single resolved
// stream. With WithSeed the sequence is reproducible; n == 0 yields an
// empty slice.
func Doubles(p Parameters, n int) ([]float64, error) {
	if err := checkCount(MethodDoubles, n); err != nil {
		return nil, err
	}
	src, err := prepare(MethodDoubles, p, validateDouble)
	if err != nil {
		return nil, err
	}
	min, max := p.doubleRange()
	out := make([]float64, n)
	for i := range out {
		out[i] = scaleDouble(src, min, max)
	}
	return out, nil
}

func scaleDouble(src Source, min, max float64) float64 {
	return src.Float64()*(max-min) + min
}
