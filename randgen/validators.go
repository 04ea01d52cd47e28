// SPDX-License-Identifier: MIT
// Package: tenjinx/randgen
//
// validators.go — per-domain parameter checks.
//
// Each validator is pure and allocation-free on success; it returns a bare
// sentinel-wrapped error with detail, and the entry point adds the method tag.
// Checks run in a fixed order so the same Parameters always report the same
// first violation.

package randgen

import (
	"fmt"
	"math"
	"unicode/utf8"

	"github.com/katalvlaran/tenjinx/mathx"
	"github.com/katalvlaran/tenjinx/stringx"
)

// validateDouble checks the double range. The resolved bounds and their
// span must be finite; ordering and width are only checked when both bounds
// are set, so a single bound may sit on either side of the other's default.
func validateDouble(p Parameters) error {
	min, max := p.doubleRange()
	if math.IsNaN(min) || math.IsNaN(max) || math.IsInf(min, 0) || math.IsInf(max, 0) {
		return fmt.Errorf("min=%g max=%g: %w", min, max, ErrDoubleNotFinite)
	}
	if math.IsInf(max-min, 0) {
		return fmt.Errorf("span of min=%g max=%g overflows: %w", min, max, ErrDoubleNotFinite)
	}
	if !p.minDouble.ok || !p.maxDouble.ok {
		return nil
	}
	if min > max {
		return fmt.Errorf("min=%g > max=%g: %w", min, max, ErrDoubleRangeInverted)
	}
	if mathx.EqualsWithinTolerance(min, max) {
		return fmt.Errorf("min=%g ~ max=%g: %w", min, max, ErrDoubleRangeEmpty)
	}
	return nil
}

// validateInt32 checks min < max when both int32 bounds are set.
func validateInt32(p Parameters) error {
	if !p.minInt32.ok || !p.maxInt32.ok {
		return nil
	}
	min, max := p.int32Range()
	if min > max {
		return fmt.Errorf("min=%d > max=%d: %w", min, max, ErrInt32RangeInverted)
	}
	if min == max {
		return fmt.Errorf("min=max=%d: %w", min, ErrInt32RangeEmpty)
	}
	return nil
}

// validateString checks palette and length policy in this order:
// palette, encoding, presence, pair completeness, exclusivity, ordering.
func validateString(p Parameters) error {
	if stringx.IsEmpty(p.allowed) {
		return ErrNoAllowedCharacters
	}
	if !utf8.ValidString(p.allowed) {
		return fmt.Errorf("palette %q: %w", p.allowed, ErrInvalidAllowedCharacters)
	}

	_, hasLen := p.length.get()
	minLen, hasMin := p.minLength.get()
	maxLen, hasMax := p.maxLength.get()

	if !hasLen && !hasMin && !hasMax {
		return ErrNoLength
	}
	if !hasLen && hasMin != hasMax {
		return fmt.Errorf("min set=%t max set=%t: %w", hasMin, hasMax, ErrPartialLengthRange)
	}
	if hasLen && (hasMin || hasMax) {
		return ErrConflictingLength
	}
	if hasMin && minLen > maxLen {
		return fmt.Errorf("min=%d > max=%d: %w", minLen, maxLen, ErrLengthRangeInverted)
	}
	return nil
}
