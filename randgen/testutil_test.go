package randgen_test

import (
	"github.com/katalvlaran/tenjinx/randgen"
)

const (
	testIterations    = 10000
	distinctThreshold = testIterations / 10
	testSeed          = int64(20240611)
)

// countingSource records how many draws were taken from the wrapped Source.
type countingSource struct {
	inner randgen.Source
	draws int
}

func newCountingSource(seed int64) *countingSource {
	return &countingSource{inner: randgen.NewSource(seed)}
}

func (c *countingSource) Float64() float64 {
	c.draws++
	return c.inner.Float64()
}

func (c *countingSource) Int63n(n int64) int64 {
	c.draws++
	return c.inner.Int63n(n)
}

// distinct counts unique values in vs.
func distinct[T comparable](vs []T) int {
	seen := make(map[T]struct{}, len(vs))
	for _, v := range vs {
		seen[v] = struct{}{}
	}
	return len(seen)
}
