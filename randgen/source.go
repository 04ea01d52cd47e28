// SPDX-License-Identifier: MIT
// Package: tenjinx/randgen
//
// source.go — pseudo-random stream abstraction and per-call resolution.
//
// Resolution is a three-way choice made once per call:
//   • sourceExternal: caller-supplied Source, returned as-is;
//   • sourceSeeded:   fresh math/rand generator from the explicit seed;
//   • sourceEntropy:  fresh math/rand generator seeded from crypto/rand.
//
// Concurrency:
//   • math/rand.Rand is NOT goroutine-safe. A shared Source must be
//     serialized by its owner; fresh generators are local to one call.

package randgen

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"io"
	"math/rand"
)

// Source is a pseudo-random stream. *math/rand.Rand and
// *golang.org/x/exp/rand.Rand both satisfy it.
type Source interface {
	// Float64 returns a value in [0.0, 1.0).
	Float64() float64
	// Int63n returns a value in [0, n); n > 0.
	Int63n(n int64) int64
}

// NewSource returns a deterministic Source seeded with seed. Two Sources
// built from the same seed produce the same stream.
func NewSource(seed int64) Source {
	return rand.New(rand.NewSource(seed))
}

// sourceKind tags where a resolved Source came from.
type sourceKind uint8

const (
	sourceEntropy sourceKind = iota
	sourceSeeded
	sourceExternal
)

// String implements fmt.Stringer (used in log events).
func (k sourceKind) String() string {
	switch k {
	case sourceSeeded:
		return "seeded"
	case sourceExternal:
		return "external"
	default:
		return "entropy"
	}
}

// entropyReader feeds entropy seeds; replaced in tests.
var entropyReader io.Reader = crand.Reader

// resolveSource picks the stream backing one generation call.
// Complexity: O(1).
func resolveSource(p Parameters) (Source, sourceKind, error) {
	if p.source != nil {
		return p.source, sourceExternal, nil
	}
	if seed, ok := p.seed.get(); ok {
		return NewSource(seed), sourceSeeded, nil
	}
	seed, err := entropySeed(entropyReader)
	if err != nil {
		return nil, sourceEntropy, err
	}
	return NewSource(seed), sourceEntropy, nil
}

// entropySeed reads 8 bytes from r as a little-endian seed.
func entropySeed(r io.Reader) (int64, error) {
	var buf [8]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return 0, fmt.Errorf("randgen: read entropy seed: %w", err)
	}
	return int64(binary.LittleEndian.Uint64(buf[:])), nil
}

// drawInclusive returns a uniform value in [min, max]; requires min <= max
// and max-min < math.MaxInt64. The exclusive Int63n primitive is asked for
// max-min+1 outcomes so max itself is reachable.
func drawInclusive(src Source, min, max int64) int64 {
	return min + src.Int63n(max-min+1)
}
