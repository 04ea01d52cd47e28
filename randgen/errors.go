// SPDX-License-Identifier: MIT
// Package: tenjinx/randgen
//
// errors.go — the generation error kind and its sentinels.
//
// Error policy:
//   • ErrRandomGeneration is the single error kind; every validation
//     sentinel below unwraps to it.
//   • Callers branch with errors.Is, never on strings.
//   • Entry points attach method context with generationErrorf, keeping %w.
//   • All sentinels are raised before the first draw.

package randgen

import (
	"errors"
	"fmt"
)

// ErrRandomGeneration is the kind shared by every invalid-configuration error.
// Usage: if errors.Is(err, ErrRandomGeneration) { /* fix parameters */ }.
var ErrRandomGeneration = errors.New("randgen: random generation failed")

// generationError is a sentinel of kind ErrRandomGeneration.
type generationError struct {
	msg string
}

// Error implements error.
func (e *generationError) Error() string { return "randgen: " + e.msg }

// Unwrap ties every sentinel to ErrRandomGeneration for errors.Is.
func (e *generationError) Unwrap() error { return ErrRandomGeneration }

func newGenerationError(msg string) error { return &generationError{msg: msg} }

// Double domain.
var (
	// ErrDoubleRangeInverted: minimum double is greater than maximum double.
	ErrDoubleRangeInverted = newGenerationError("minimum double cannot be greater than maximum double")
	// ErrDoubleRangeEmpty: minimum and maximum double are equal within mathx.DoubleTolerance.
	ErrDoubleRangeEmpty = newGenerationError("minimum and maximum double cannot be of the same value")
	// ErrDoubleNotFinite: a double bound is NaN or ±Inf.
	ErrDoubleNotFinite = newGenerationError("double bounds must be finite")
)

// Int32 domain.
var (
	// ErrInt32RangeInverted: minimum int32 is greater than maximum int32.
	ErrInt32RangeInverted = newGenerationError("minimum int32 cannot be greater than maximum int32")
	// ErrInt32RangeEmpty: minimum and maximum int32 are equal.
	ErrInt32RangeEmpty = newGenerationError("minimum and maximum int32 cannot be of the same value")
)

// String domain, listed in validation order.
var (
	// ErrNoAllowedCharacters: the palette is empty.
	ErrNoAllowedCharacters = newGenerationError("allowed characters must not be empty")
	// ErrInvalidAllowedCharacters: the palette is not valid UTF-8.
	ErrInvalidAllowedCharacters = newGenerationError("allowed characters must be valid UTF-8")
	// ErrNoLength: neither a fixed length nor a length range was set.
	ErrNoLength = newGenerationError("minimum/maximum or fixed length must be specified")
	// ErrPartialLengthRange: only one of minimum/maximum length was set.
	ErrPartialLengthRange = newGenerationError("minimum and maximum length must both be set")
	// ErrConflictingLength: a fixed length was set together with a length bound.
	ErrConflictingLength = newGenerationError("fixed length cannot be combined with minimum/maximum length")
	// ErrLengthRangeInverted: minimum length is greater than maximum length.
	ErrLengthRangeInverted = newGenerationError("minimum length cannot be greater than maximum length")
)

// ErrInvalidCount: a batch helper received a negative count.
var ErrInvalidCount = newGenerationError("count must be non-negative")

// generationErrorf prefixes err with the method tag and formatted detail,
// preserving the %w chain: "<Method>: <detail>: <err>".
func generationErrorf(method string, err error, format string, args ...interface{}) error {
	if format == "" {
		return fmt.Errorf("%s: %w", method, err)
	}
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), err)
}
