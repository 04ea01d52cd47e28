// SPDX-License-Identifier: MIT
// Package: tenjinx/randgen
//
// parameters.go — the immutable generation parameter bundle.
//
// Design:
//   • Parameters holds every knob for the three domains; unset fields are
//     explicit (optional[T].ok == false), never encoded as zero values.
//   • Fields are unexported and Parameters is passed by value, so a built
//     bundle cannot be changed; With derives a modified copy.
//   • The only shared mutable state is an injected Source, owned by the caller.

package randgen

import "github.com/rs/zerolog"

// optional is a value that may be absent.
type optional[T any] struct {
	v  T
	ok bool
}

func some[T any](v T) optional[T] { return optional[T]{v: v, ok: true} }

func (o optional[T]) get() (T, bool) { return o.v, o.ok }

func (o optional[T]) or(def T) T {
	if o.ok {
		return o.v
	}
	return def
}

// Parameters describes one kind of generation: bounds, length policy,
// palette and randomness origin. Build it with New.
type Parameters struct {
	seed   optional[int64]
	source Source

	minDouble optional[float64]
	maxDouble optional[float64]

	minInt32 optional[int32]
	maxInt32 optional[int32]

	minLength optional[uint32]
	maxLength optional[uint32]
	length    optional[uint32]

	allowed string

	logger *zerolog.Logger
}

// New builds Parameters from opts, applied in order (last wins).
// The zero configuration is valid for Double and Int32 and draws from an
// entropy-seeded generator; String additionally needs a palette and a length.
// Complexity: O(len(opts)).
func New(opts ...Option) Parameters {
	return Parameters{}.With(opts...)
}

// With returns a copy of p with opts applied on top. p itself is unchanged.
func (p Parameters) With(opts ...Option) Parameters {
	for _, opt := range opts {
		opt(&p)
	}
	return p
}

// Seed returns the explicit seed, if any.
func (p Parameters) Seed() (int64, bool) { return p.seed.get() }

// Source returns the caller-supplied Source, or nil.
func (p Parameters) Source() Source { return p.source }

// MinimumDouble returns the explicit lower double bound, if any.
func (p Parameters) MinimumDouble() (float64, bool) { return p.minDouble.get() }

// MaximumDouble returns the explicit upper double bound, if any.
func (p Parameters) MaximumDouble() (float64, bool) { return p.maxDouble.get() }

// MinimumInt32 returns the explicit lower int32 bound, if any.
func (p Parameters) MinimumInt32() (int32, bool) { return p.minInt32.get() }

// MaximumInt32 returns the explicit upper int32 bound, if any.
func (p Parameters) MaximumInt32() (int32, bool) { return p.maxInt32.get() }

// MinimumLength returns the explicit minimum string length, if any.
func (p Parameters) MinimumLength() (uint32, bool) { return p.minLength.get() }

// MaximumLength returns the explicit maximum string length, if any.
func (p Parameters) MaximumLength() (uint32, bool) { return p.maxLength.get() }

// Length returns the fixed string length, if any.
func (p Parameters) Length() (uint32, bool) { return p.length.get() }

// AllowedCharacters returns the string palette ("" when unset).
func (p Parameters) AllowedCharacters() string { return p.allowed }

// nopLogger backs Parameters without WithLogger, including the zero value.
var nopLogger = zerolog.Nop()

// log returns the attached logger or a no-op one.
func (p Parameters) log() *zerolog.Logger {
	if p.logger == nil {
		return &nopLogger
	}
	return p.logger
}

// doubleRange resolves the effective double bounds.
func (p Parameters) doubleRange() (min, max float64) {
	return p.minDouble.or(MinimumDouble), p.maxDouble.or(MaximumDouble)
}

// int32Range resolves the effective int32 bounds.
func (p Parameters) int32Range() (min, max int32) {
	return p.minInt32.or(MinimumInt32), p.maxInt32.or(MaximumInt32)
}
