// SPDX-License-Identifier: MIT
// Package: numlab/control
//
// impulse.go - closed-form impulse response.

package control

import (
	"math"

	"github.com/katalvlaran/numlab/vector"
)

// Impulse evaluates the impulse response of s, scaled by amplitude, at every
// time in t. The formula is chosen by Regime; t is not modified.
//
// Errors: ErrUnstable for ζ < 0, ErrBadParameter for a non-finite
// amplitude, and vector.ErrNilVector for a nil t.
// Complexity: O(len(t)).
func (s *System) Impulse(t *vector.Vector, amplitude float64) (*vector.Vector, error) {
	if !finite(amplitude) {
		return nil, controlErrorf(opImpulse, ErrBadParameter)
	}

	var f vector.UnaryFunc
	switch s.Regime() {
	case Unstable:
		return nil, controlErrorf(opImpulse, ErrUnstable)
	case Undamped:
		a := amplitude * s.k * s.omegaN
		f = func(t float64) float64 { return a * math.Sin(s.omegaN*t) }
	case Underdamped:
		wd, alpha := s.OmegaD(), s.Alpha()
		a := amplitude * s.k * s.omegaN * s.omegaN / wd
		f = func(t float64) float64 { return a * math.Exp(-alpha*t) * math.Sin(wd*t) }
	case CriticallyDamped:
		a := amplitude * s.k * s.omegaN * s.omegaN
		f = func(t float64) float64 { return a * t * math.Exp(-s.omegaN*t) }
	default:
		wd, alpha := s.OmegaD(), s.Alpha()
		a := 0.5 * amplitude * s.k * s.omegaN * s.omegaN / wd
		f = func(t float64) float64 {
			return a * (math.Exp(-(alpha-wd)*t) - math.Exp(-(alpha+wd)*t))
		}
	}

	y, err := t.Map(f)
	if err != nil {
		return nil, controlErrorf(opImpulse, err)
	}

	return y, nil
}
