// SPDX-License-Identifier: MIT
// Package: tenjinx/randgen
//
// options.go — functional options for Parameters.
//
// Contract:
//   • Options are functional (type Option func(*Parameters)).
//   • Option constructors PANIC only on programmer errors (nil Source).
//     Value combinations are checked by the entry points and surface as
//     ErrRandomGeneration sentinels, never as panics.
//   • Determinism is explicit: WithSeed or WithSource.

package randgen

import "github.com/rs/zerolog"

// Option customizes Parameters during New or With.
type Option func(*Parameters)

// WithSeed sets a deterministic seed. Every call with these Parameters
// builds a fresh generator from seed, so each call returns the same value.
// Ignored when a Source is also set.
func WithSeed(seed int64) Option {
	return func(p *Parameters) {
		p.seed = some(seed)
	}
}

// WithSource attaches a caller-owned Source. It takes precedence over
// WithSeed and advances across calls. Panics on nil.
func WithSource(src Source) Option {
	if src == nil {
		panic("randgen: WithSource(nil)")
	}
	return func(p *Parameters) {
		p.source = src
	}
}

// WithMinimumDouble sets the lower double bound.
func WithMinimumDouble(min float64) Option {
	return func(p *Parameters) {
		p.minDouble = some(min)
	}
}

// WithMaximumDouble sets the upper double bound.
func WithMaximumDouble(max float64) Option {
	return func(p *Parameters) {
		p.maxDouble = some(max)
	}
}

// WithDoubleRange sets both double bounds.
func WithDoubleRange(min, max float64) Option {
	return func(p *Parameters) {
		p.minDouble, p.maxDouble = some(min), some(max)
	}
}

// WithMinimumInt32 sets the lower int32 bound (inclusive).
func WithMinimumInt32(min int32) Option {
	return func(p *Parameters) {
		p.minInt32 = some(min)
	}
}

// WithMaximumInt32 sets the upper int32 bound (inclusive).
func WithMaximumInt32(max int32) Option {
	return func(p *Parameters) {
		p.maxInt32 = some(max)
	}
}

// WithInt32Range sets both int32 bounds (inclusive).
func WithInt32Range(min, max int32) Option {
	return func(p *Parameters) {
		p.minInt32, p.maxInt32 = some(min), some(max)
	}
}

// WithMinimumLength sets the minimum string length (inclusive).
func WithMinimumLength(n uint32) Option {
	return func(p *Parameters) {
		p.minLength = some(n)
	}
}

// WithMaximumLength sets the maximum string length (inclusive).
func WithMaximumLength(n uint32) Option {
	return func(p *Parameters) {
		p.maxLength = some(n)
	}
}

// WithLengthRange sets both string length bounds (inclusive).
func WithLengthRange(min, max uint32) Option {
	return func(p *Parameters) {
		p.minLength, p.maxLength = some(min), some(max)
	}
}

// WithLength sets a fixed string length. It cannot be combined with
// WithMinimumLength/WithMaximumLength/WithLengthRange.
func WithLength(n uint32) Option {
	return func(p *Parameters) {
		p.length = some(n)
	}
}

// WithAllowedCharacters sets the palette strings are drawn from. Each rune
// of chars is one candidate; repeated runes weight the draw.
func WithAllowedCharacters(chars string) Option {
	return func(p *Parameters) {
		p.allowed = chars
	}
}

// WithLogger attaches a logger for debug events (source resolution,
// rejected parameters). The default is zerolog.Nop().
func WithLogger(logger zerolog.Logger) Option {
	return func(p *Parameters) {
		p.logger = &logger
	}
}
