// Package tenjinx is a small toolkit for constrained, reproducible random
// value generation.
//
// What is inside:
//
//	randgen/    — Double, Int32 and String generators driven by an immutable
//	              Parameters bundle (bounds, length policy, palette, seed or
//	              caller-owned Source)
//	randconfig/ — Parameters from config files, TENJIN_* env and flags (viper)
//	mathx/      — tolerance-based float comparison
//	stringx/    — empty/blank string predicates
//	cmd/tenjinrand — command line front-end
//
// Reproducibility in one line: the same seed gives the same value; the same
// Source gives the next value.
//
//	p := randgen.New(randgen.WithSeed(42), randgen.WithLength(12), randgen.WithAllowedCharacters(randgen.CharsetHex))
//	token, err := randgen.String(p)
//
//	go get github.com/katalvlaran/tenjinx
package tenjinx
