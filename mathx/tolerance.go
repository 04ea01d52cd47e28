// SPDX-License-Identifier: MIT
// Package: tenjinx/mathx
//
// tolerance.go — approximate equality for floating point values.
//
// Contract:
//   • Equality is strict: |a-b| < tol. A difference equal to tol is NOT equal.
//   • NaN never equals anything (the subtraction yields NaN, and NaN < tol is false).
//   • Pure functions; no allocation, no panics.

package mathx

import "math"

// Float is the set of floating point types the tolerance helpers accept.
type Float interface {
	~float32 | ~float64
}

const (
	// SingleTolerance is the default tolerance for float32 comparisons.
	SingleTolerance float32 = 0.0000001

	// DoubleTolerance is the default tolerance for float64 comparisons.
	DoubleTolerance float64 = 0.000000001
)

// EqualsWithin reports whether a and b differ by strictly less than tol.
// Complexity: O(1).
func EqualsWithin[T Float](a, b, tol T) bool {
	return math.Abs(float64(a)-float64(b)) < float64(tol)
}

// EqualsWithinTolerance compares two float64 values using DoubleTolerance.
func EqualsWithinTolerance(a, b float64) bool {
	return EqualsWithin(a, b, DoubleTolerance)
}

// NotEqualsWithinTolerance is the negation of EqualsWithinTolerance.
func NotEqualsWithinTolerance(a, b float64) bool {
	return !EqualsWithinTolerance(a, b)
}

// SingleEqualsWithinTolerance compares two float32 values using SingleTolerance.
func SingleEqualsWithinTolerance(a, b float32) bool {
	return EqualsWithin(a, b, SingleTolerance)
}

// SingleNotEqualsWithinTolerance is the negation of SingleEqualsWithinTolerance.
func SingleNotEqualsWithinTolerance(a, b float32) bool {
	return !SingleEqualsWithinTolerance(a, b)
}
