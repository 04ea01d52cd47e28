package randgen_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tenjinx/randgen"
)

// runDoubles draws testIterations values with p and checks the bounds.
func runDoubles(t *testing.T, p randgen.Parameters, min, max float64) []float64 {
	t.Helper()
	out := make([]float64, 0, testIterations)
	for i := 0; i < testIterations; i++ {
		v, err := randgen.Double(p)
		require.NoError(t, err)
		require.GreaterOrEqual(t, v, min)
		require.LessOrEqual(t, v, max)
		out = append(out, v)
	}
	return out
}

// TestDouble_InvalidParameters covers every rejected double configuration.
func TestDouble_InvalidParameters(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		opts []randgen.Option
		want error
	}{
		{"inverted", []randgen.Option{randgen.WithDoubleRange(10.0, 3.0)}, randgen.ErrDoubleRangeInverted},
		{"equal", []randgen.Option{randgen.WithDoubleRange(10.0, 10.0)}, randgen.ErrDoubleRangeEmpty},
		{"equal within tolerance", []randgen.Option{randgen.WithDoubleRange(10.0, 10.0+1e-10)}, randgen.ErrDoubleRangeEmpty},
		{"NaN", []randgen.Option{randgen.WithMinimumDouble(math.NaN())}, randgen.ErrDoubleNotFinite},
		{"Inf", []randgen.Option{randgen.WithMaximumDouble(math.Inf(1))}, randgen.ErrDoubleNotFinite},
		{"span overflows", []randgen.Option{randgen.WithDoubleRange(-math.MaxFloat64, math.MaxFloat64)}, randgen.ErrDoubleNotFinite},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			src := newCountingSource(testSeed)
			opts := append([]randgen.Option{randgen.WithSource(src)}, tc.opts...)

			_, err := randgen.Double(randgen.New(opts...))
			require.Error(t, err)
			assert.True(t, errors.Is(err, tc.want), "got %v", err)
			assert.True(t, errors.Is(err, randgen.ErrRandomGeneration))
			assert.Zero(t, src.draws, "validation must precede any draw")
		})
	}
}

// TestDouble_OneSidedBounds: a single bound is never checked against the
// other bound's default.
func TestDouble_OneSidedBounds(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		opts     []randgen.Option
		min, max float64
	}{
		{"min above default max", []randgen.Option{randgen.WithMinimumDouble(2.0)}, randgen.MaximumDouble, 2.0},
		{"max equals default min", []randgen.Option{randgen.WithMaximumDouble(0.0)}, 0.0, 0.0},
		{"max below default min", []randgen.Option{randgen.WithMaximumDouble(-3.0)}, -3.0, randgen.MinimumDouble},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			src := newCountingSource(testSeed)
			p := randgen.New(append([]randgen.Option{randgen.WithSource(src)}, tc.opts...)...)
			for i := 0; i < 100; i++ {
				v, err := randgen.Double(p)
				require.NoError(t, err)
				require.GreaterOrEqual(t, v, tc.min)
				require.LessOrEqual(t, v, tc.max)
			}
			assert.Equal(t, 100, src.draws)
		})
	}
}

// TestDouble_ValidParameters draws within explicit and defaulted bounds.
func TestDouble_ValidParameters(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		opts     []randgen.Option
		min, max float64
	}{
		{"defaults", nil, randgen.MinimumDouble, randgen.MaximumDouble},
		{"min only", []randgen.Option{randgen.WithMinimumDouble(0.0)}, 0.0, randgen.MaximumDouble},
		{"max only", []randgen.Option{randgen.WithMaximumDouble(1.0)}, randgen.MinimumDouble, 1.0},
		{"inner range", []randgen.Option{randgen.WithDoubleRange(0.2, 0.8)}, 0.2, 0.8},
		{"negative range", []randgen.Option{randgen.WithDoubleRange(-500, -100)}, -500, -100},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			values := runDoubles(t, randgen.New(tc.opts...), tc.min, tc.max)
			assert.Greater(t, distinct(values), distinctThreshold)
		})
	}
}

// TestDouble_SameSeed_SameValue: a seeded Parameters rebuilds its generator
// per call, so every call yields the same value.
func TestDouble_SameSeed_SameValue(t *testing.T) {
	t.Parallel()

	p := randgen.New(randgen.WithSeed(testSeed))
	first := runDoubles(t, p, randgen.MinimumDouble, randgen.MaximumDouble)
	second := runDoubles(t, p, randgen.MinimumDouble, randgen.MaximumDouble)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, distinct(first))
}

// TestDouble_SameSource_SameSequence replays two identically seeded Sources.
func TestDouble_SameSource_SameSequence(t *testing.T) {
	t.Parallel()

	p1 := randgen.New(randgen.WithSource(randgen.NewSource(testSeed)))
	p2 := randgen.New(randgen.WithSource(randgen.NewSource(testSeed)))

	first := runDoubles(t, p1, randgen.MinimumDouble, randgen.MaximumDouble)
	second := runDoubles(t, p2, randgen.MinimumDouble, randgen.MaximumDouble)

	assert.Equal(t, first, second)
	assert.Greater(t, distinct(first), distinctThreshold)
}

// TestDoubles_Batch checks the batch helper against a shared Source replay.
func TestDoubles_Batch(t *testing.T) {
	t.Parallel()

	batch, err := randgen.Doubles(randgen.New(randgen.WithSeed(testSeed), randgen.WithDoubleRange(-1, 1)), 64)
	require.NoError(t, err)
	require.Len(t, batch, 64)

	shared := randgen.New(randgen.WithSource(randgen.NewSource(testSeed)), randgen.WithDoubleRange(-1, 1))
	for i, want := range batch {
		got, err := randgen.Double(shared)
		require.NoError(t, err)
		require.Equal(t, want, got, "index %d", i)
	}

	empty, err := randgen.Doubles(randgen.New(), 0)
	require.NoError(t, err)
	assert.Empty(t, empty)

	_, err = randgen.Doubles(randgen.New(), -1)
	assert.ErrorIs(t, err, randgen.ErrInvalidCount)

	_, err = randgen.Doubles(randgen.New(randgen.WithDoubleRange(1, 1)), 3)
	assert.ErrorIs(t, err, randgen.ErrDoubleRangeEmpty)
}

// TestDouble_ErrorMessage pins the method prefix.
func TestDouble_ErrorMessage(t *testing.T) {
	t.Parallel()

	_, err := randgen.Double(randgen.New(randgen.WithDoubleRange(10, 3)))
	require.Error(t, err)
	assert.Equal(t,
		"Double: min=10 > max=3: randgen: minimum double cannot be greater than maximum double",
		err.Error())
}

// TestDouble_ZeroParameters: the zero value behaves like New().
func TestDouble_ZeroParameters(t *testing.T) {
	t.Parallel()

	v, err := randgen.Double(randgen.Parameters{})
	require.NoError(t, err)
	assert.GreaterOrEqual(t, v, randgen.MinimumDouble)
	assert.LessOrEqual(t, v, randgen.MaximumDouble)
}
