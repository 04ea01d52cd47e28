// Package randgen generates random float64, int32 and string values under
// caller-supplied constraints, with reproducible output when a seed or an
// explicit Source is supplied.
//
// The package offers the following key components:
//
//   - Parameters: an immutable bundle built with functional options
//     (WithSeed, WithSource, WithDoubleRange, WithInt32Range, WithLength,
//     WithLengthRange, WithAllowedCharacters, WithLogger, ...).
//   - Entry points: Double, Int32 and String validate the Parameters for
//     their domain, resolve a Source and draw one value.
//   - Batch helpers: Doubles, Int32s and Strings resolve the Source once and
//     draw n values from a single stream.
//   - Palettes: CharsetAlphanumeric, CharsetHex, ... and CharsetByName.
//
// Source resolution (per call):
//
//  1. an explicit Source (WithSource) is used as-is; its stream advances
//     across calls and belongs to the caller;
//  2. otherwise a seed (WithSeed) builds a fresh deterministic generator, so
//     the same Parameters yield the same value on every call;
//  3. otherwise a fresh generator is seeded from crypto/rand.
//
// Defaults when a bound is omitted:
//
//	double: [MinimumDouble, MaximumDouble] = [0.0, 1.0]
//	int32:  [MinimumInt32, MaximumInt32]   = [math.MinInt32, math.MaxInt32-1]
//
// Errors:
//
// Every validation failure is a sentinel wrapping ErrRandomGeneration, so
// callers may branch on the precise cause (errors.Is(err, ErrNoLength)) or on
// the kind (errors.Is(err, ErrRandomGeneration)). Validation runs before any
// draw: a rejected call never advances a caller-owned Source.
//
// Concurrency:
//
// Parameters are safe to share. A Source is not: math/rand.Rand is not
// goroutine-safe, and this package adds no locking around it.
package randgen
