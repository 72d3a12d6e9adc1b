package signal_test

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/numlab/signal"
	"github.com/katalvlaran/numlab/vector"
)

var approx = cmpopts.EquateApprox(0, 1e-12)

func assertSamples(t *testing.T, want []float64, got *vector.Vector) {
	t.Helper()
	if diff := cmp.Diff(want, got.ToSlice(), approx); diff != "" {
		t.Errorf("samples mismatch (-want +got):\n%s", diff)
	}
}

// TestSine_DefaultIsOnePeriod: without WithFrequency the output spans one cycle.
func TestSine_DefaultIsOnePeriod(t *testing.T) {
	v, err := signal.Sine(4)
	require.NoError(t, err)
	assertSamples(t, []float64{0, 1, 0, -1}, v)
}

func TestCosine_AmplitudeAndFrequency(t *testing.T) {
	v, err := signal.Cosine(8, signal.WithAmplitude(2), signal.WithFrequency(0.25))
	require.NoError(t, err)
	assertSamples(t, []float64{2, 0, -2, 0, 2, 0, -2, 0}, v)
}

func TestSine_PhaseShiftMatchesCosine(t *testing.T) {
	s, err := signal.Sine(32, signal.WithPhase(math.Pi/2), signal.WithFrequency(0.1))
	require.NoError(t, err)
	c, err := signal.Cosine(32, signal.WithFrequency(0.1))
	require.NoError(t, err)
	assertSamples(t, c.ToSlice(), s)
}

func TestPulse_Rectangular(t *testing.T) {
	v, err := signal.Pulse(8)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 1, 1, 1, 0, 0, 0, 0}, v.ToSlice())

	v, err = signal.Pulse(8, signal.WithFrequency(0.25), signal.WithDuty(0.25), signal.WithAmplitude(3))
	require.NoError(t, err)
	assert.Equal(t, []float64{3, 0, 0, 0, 3, 0, 0, 0}, v.ToSlice())
}

func TestPulse_Triangular(t *testing.T) {
	v, err := signal.Pulse(4, signal.WithTriangular(), signal.WithFrequency(0.25))
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0.5, 1, 0.5}, v.ToSlice())
}

func TestTrend(t *testing.T) {
	v, err := signal.Pulse(5, signal.WithDuty(0), signal.WithTrend(0.5))
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0.5, 1, 1.5, 2}, v.ToSlice())
}

// TestTrend_IndexOrder: every sample sees its own index, also with a
// stateful wave.
func TestTrend_IndexOrder(t *testing.T) {
	const n = 64
	flat, err := signal.Chirp(n)
	require.NoError(t, err)
	sloped, err := signal.Chirp(n, signal.WithTrend(1))
	require.NoError(t, err)
	for i, y := range sloped.All() {
		base, _ := flat.At(i)
		assert.InDelta(t, base+float64(i), y, 1e-12, "sample %d", i)
	}

	_, err = signal.Sine(vector.MaxLen + 1)
	assert.ErrorIs(t, err, vector.ErrAllocation)
}

func TestChirp(t *testing.T) {
	const n = 256
	v, err := signal.Chirp(n, signal.WithAmplitude(2))
	require.NoError(t, err)
	require.Equal(t, n, v.Len())

	first, _ := v.At(0)
	assert.InDelta(t, 2*math.Sin(2*math.Pi*0.02), first, 1e-12)
	for i, y := range v.All() {
		assert.LessOrEqual(t, math.Abs(y), 2.0, "sample %d", i)
	}

	one, err := signal.Chirp(1, signal.WithSweep(0.25, 0.5))
	require.NoError(t, err)
	assertSamples(t, []float64{1}, one) // sin(π/2)

	_, err = signal.Chirp(8, signal.WithSweep(0, 0.5))
	assert.ErrorIs(t, err, signal.ErrBadParameter)
}

// TestNoise_Deterministic: equal seeds give equal output, and the noise has
// roughly the requested spread.
func TestNoise_Deterministic(t *testing.T) {
	const n = 20_000
	quiet := []signal.Option{signal.WithDuty(0), signal.WithNoise(1)}

	a, err := signal.Pulse(n, append(quiet, signal.WithSeed(7))...)
	require.NoError(t, err)
	b, err := signal.Pulse(n, append(quiet, signal.WithSeed(7))...)
	require.NoError(t, err)
	assert.Equal(t, a.ToSlice(), b.ToSlice())

	c, err := signal.Pulse(n, append(quiet, signal.WithSeed(8))...)
	require.NoError(t, err)
	assert.NotEqual(t, a.ToSlice(), c.ToSlice())

	d1, _ := signal.Pulse(16, quiet...)
	d2, _ := signal.Pulse(16, append(quiet, signal.WithSeed(0))...)
	assert.Equal(t, d1.ToSlice(), d2.ToSlice(), "seed 0 is the default seed")

	mean, std := stat.MeanStdDev(a.ToSlice(), nil)
	assert.InDelta(t, 0, mean, 0.05)
	assert.InDelta(t, 1, std, 0.05)
}

func TestInvalid(t *testing.T) {
	cases := []struct {
		name string
		gen  func() (*vector.Vector, error)
		want error
	}{
		{"ZeroSamples", func() (*vector.Vector, error) { return signal.Sine(0) }, signal.ErrBadSize},
		{"ZeroAmplitude", func() (*vector.Vector, error) { return signal.Sine(4, signal.WithAmplitude(0)) }, signal.ErrBadParameter},
		{"ZeroFrequency", func() (*vector.Vector, error) { return signal.Cosine(4, signal.WithFrequency(0)) }, signal.ErrBadParameter},
		{"NaNPhase", func() (*vector.Vector, error) { return signal.Sine(4, signal.WithPhase(math.NaN())) }, signal.ErrBadParameter},
		{"NegativeNoise", func() (*vector.Vector, error) { return signal.Chirp(4, signal.WithNoise(-1)) }, signal.ErrBadParameter},
		{"InfTrend", func() (*vector.Vector, error) { return signal.Pulse(4, signal.WithTrend(math.Inf(1))) }, signal.ErrBadParameter},
		{"DutyAboveOne", func() (*vector.Vector, error) { return signal.Pulse(4, signal.WithDuty(1.5)) }, signal.ErrBadParameter},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			v, err := tc.gen()
			assert.ErrorIs(t, err, tc.want)
			assert.Nil(t, v)
		})
	}
}
