// SPDX-License-Identifier: MIT

// Package control models a standard second-order system
//
//	G(s) = k·ωn² / (s² + 2ζωn·s + ωn²)
//
// given its damping ratio ζ, natural frequency ωn and gain k. It reports the
// poles, the damping factor α = ζωn, the damped frequency ωd = ωn·√|ζ²−1| and
// evaluates the closed-form impulse response on a time vector.
//
// Regimes:
//
//	ζ = 0      undamped            A·k·ωn·sin(ωn·t)
//	0 < ζ < 1  underdamped         A·k·ωn²/ωd · e^(−αt)·sin(ωd·t)
//	ζ = 1      critically damped   A·k·ωn² · t·e^(−ωn·t)
//	ζ > 1      overdamped          A·k·ωn²/(2ωd) · (e^(−(α−ωd)t) − e^(−(α+ωd)t))
//	ζ < 0      unstable            ErrUnstable
package control
