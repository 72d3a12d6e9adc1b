// SPDX-License-Identifier: MIT

// Package signal generates deterministic sampled waveforms as vectors.
//
// 🚀 What & Why
//
//	Sine, Cosine, Chirp and Pulse produce the test signals that the vector
//	calculus routines and the plot renderers consume. Every generator shares
//	one sample model:
//
//	    y_i = A·wave(θ_i) + trend·i + σ·N(0,1)
//
//	Noise is drawn from a seeded source, so equal options give equal output.
//
// ⚙️ Waves
//
//   - Sine / Cosine: θ_i = 2π·f·i + φ.
//   - Chirp: the instantaneous frequency moves linearly from f0 to f1 and
//     the phase is accumulated sample by sample.
//   - Pulse: rectangular (on while the period fraction is below the duty)
//     or triangular; no trigonometry involved.
//
// 🔧 Options
//
//	WithAmplitude, WithFrequency, WithPhase, WithSweep, WithDuty,
//	WithTriangular, WithTrend, WithNoise, WithSeed.
//
//	Frequencies are in cycles per sample. When WithFrequency is absent the
//	frequency is 1/n: exactly one period across the output.
//
// ❗ Errors
//
//	ErrBadSize for n < 1, ErrBadParameter for option values out of domain.
//	Generators never panic.
package signal
