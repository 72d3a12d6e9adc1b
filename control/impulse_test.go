package control_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/numlab/control"
	"github.com/katalvlaran/numlab/vector"
)

func TestImpulse_Undamped(t *testing.T) {
	s := mustSystem(t, 0, 2, 1.5)
	tv := vector.FromSlice([]float64{0, math.Pi / 4, math.Pi / 2})

	y, err := s.Impulse(tv, 2)
	require.NoError(t, err)
	got := y.ToSlice()
	assert.InDelta(t, 0, got[0], 1e-12)
	assert.InDelta(t, 6, got[1], 1e-12)
	assert.InDelta(t, 0, got[2], 1e-12)
}

// TestImpulse_AreaIsStaticGain: for a stable system ∫₀^∞ h(t) dt = G(0)·A = k·A.
func TestImpulse_AreaIsStaticGain(t *testing.T) {
	tv, err := vector.Linspace(0, 30, 30_001)
	require.NoError(t, err)

	for _, zeta := range []float64{0.5, 1, 1.25} {
		s := mustSystem(t, zeta, 4, 2)
		y, err := s.Impulse(tv, 1.5)
		require.NoError(t, err, "zeta=%v", zeta)

		first, _ := y.At(0)
		assert.InDelta(t, 0, first, 1e-12, "h(0) is zero, zeta=%v", zeta)

		area, err := vector.Trapezoid(y, tv)
		require.NoError(t, err)
		assert.InDelta(t, 3.0, area, 1e-3, "zeta=%v", zeta)
	}
}

func TestImpulse_CriticalPeak(t *testing.T) {
	// t·e^(−ωn·t) peaks at t = 1/ωn with value 1/(e·ωn).
	s := mustSystem(t, 1, 2, 1)
	y, err := s.Impulse(vector.FromSlice([]float64{0.5}), 1)
	require.NoError(t, err)
	got, _ := y.At(0)
	assert.InDelta(t, 4*0.5*math.Exp(-1), got, 1e-12)
}

func TestImpulse_Invalid(t *testing.T) {
	tv := vector.FromSlice([]float64{0, 1})

	_, err := mustSystem(t, -0.2, 1, 1).Impulse(tv, 1)
	assert.ErrorIs(t, err, control.ErrUnstable)

	_, err = mustSystem(t, 0.5, 1, 1).Impulse(tv, math.NaN())
	assert.ErrorIs(t, err, control.ErrBadParameter)

	_, err = mustSystem(t, 0.5, 1, 1).Impulse(nil, 1)
	assert.ErrorIs(t, err, vector.ErrNilVector)
}
