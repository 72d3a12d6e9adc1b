// SPDX-License-Identifier: MIT
// Package: numlab/control
//
// system.go - the second-order system and its derived quantities.

package control

import (
	"fmt"
	"math"
	"math/cmplx"
)

// Regime classifies the damping of a system.
type Regime int

const (
	// Unstable is ζ < 0: the response grows without bound.
	Unstable Regime = iota
	// Undamped is ζ = 0: a pure oscillation at ωn.
	Undamped
	// Underdamped is 0 < ζ < 1: a decaying oscillation at ωd.
	Underdamped
	// CriticallyDamped is ζ = 1: the fastest response without overshoot.
	CriticallyDamped
	// Overdamped is ζ > 1: a sum of two decaying exponentials.
	Overdamped
)

var regimeNames = [...]string{
	Unstable:         "unstable",
	Undamped:         "undamped",
	Underdamped:      "underdamped",
	CriticallyDamped: "critically damped",
	Overdamped:       "overdamped",
}

func (r Regime) String() string {
	if r < 0 || int(r) >= len(regimeNames) {
		return fmt.Sprintf("Regime(%d)", int(r))
	}

	return regimeNames[r]
}

// System is an immutable second-order system.
type System struct {
	zeta   float64
	omegaN float64
	k      float64
}

// New returns the system with damping ratio zeta, natural frequency omegaN
// and gain k.
//
// Errors: ErrBadFrequency unless omegaN is positive and finite;
// ErrBadParameter for a non-finite zeta or k.
func New(zeta, omegaN, k float64) (*System, error) {
	if !(omegaN > 0) || math.IsInf(omegaN, 1) {
		return nil, controlErrorf(opNew, ErrBadFrequency)
	}
	if !finite(zeta) || !finite(k) {
		return nil, controlErrorf(opNew, ErrBadParameter)
	}

	return &System{zeta: zeta, omegaN: omegaN, k: k}, nil
}

// Zeta returns the damping ratio.
func (s *System) Zeta() float64 { return s.zeta }

// OmegaN returns the natural frequency.
func (s *System) OmegaN() float64 { return s.omegaN }

// Gain returns k.
func (s *System) Gain() float64 { return s.k }

// Stable reports ζ > 0.
func (s *System) Stable() bool { return s.zeta > 0 }

// Alpha returns the damping factor ζ·ωn.
func (s *System) Alpha() float64 { return s.zeta * s.omegaN }

// OmegaD returns the damped frequency ωn·√|ζ²−1|.
func (s *System) OmegaD() float64 {
	return s.omegaN * math.Sqrt(math.Abs(s.zeta*s.zeta-1))
}

// Poles returns −ζωn ± ωn·√(ζ²−1), the square root taken over ℂ.
// For 0 ≤ ζ < 1 the poles are a conjugate pair, first with positive imaginary part.
func (s *System) Poles() (complex128, complex128) {
	d := cmplx.Sqrt(complex(s.zeta*s.zeta-1, 0)) * complex(s.omegaN, 0)
	re := complex(-s.Alpha(), 0)

	return re + d, re - d
}

// Regime classifies the system by ζ.
func (s *System) Regime() Regime {
	switch {
	case s.zeta < 0:
		return Unstable
	case s.zeta == 0:
		return Undamped
	case s.zeta < 1:
		return Underdamped
	case s.zeta == 1:
		return CriticallyDamped
	default:
		return Overdamped
	}
}

// String renders the transfer function, e.g. "4 / (s**2 + 2s + 4)".
func (s *System) String() string {
	wn2 := s.omegaN * s.omegaN

	return fmt.Sprintf("%g / (s**2 + %gs + %g)", s.k*wn2, 2*s.zeta*s.omegaN, wn2)
}

func finite(x float64) bool { return !math.IsNaN(x) && !math.IsInf(x, 0) }
