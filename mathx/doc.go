// Package mathx provides tolerance-based comparisons for floating point values.
//
// Exact equality on float64 is rarely what callers mean once a value has been
// through arithmetic; EqualsWithinTolerance treats values closer than
// DoubleTolerance as equal. The randgen package uses it to reject zero-width
// double ranges.
package mathx
