package randgen

import "io"

// SetEntropyReader swaps the entropy source for the duration of a test and
// returns a restore func. Tests using it must not run in parallel.
func SetEntropyReader(r io.Reader) (restore func()) {
	prev := entropyReader
	entropyReader = r
	return func() { entropyReader = prev }
}

// ResolvedSourceKind exposes the resolution tag for p.
func ResolvedSourceKind(p Parameters) (string, error) {
	_, kind, err := resolveSource(p)
	return kind.String(), err
}
