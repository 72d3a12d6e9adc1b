// SPDX-License-Identifier: MIT
// Package: numlab/signal
//
// config.go - generator configuration, defaults and validation.
//
// Design:
//   • config is the single source of truth for all generator knobs.
//   • Options record values as given; validate reports the first bad one,
//     so constructors never panic.
//   • Frequency 0 means "one period across n samples".

package signal

import (
	"fmt"
	"math"
	"math/rand"
)

// tau is one full turn in radians.
const tau = 2 * math.Pi

// Deterministic defaults.
const (
	defaultAmplitude = 1.0
	defaultPhase     = 0.0
	defaultChirpF0   = 0.02 // cycles/sample
	defaultChirpF1   = 0.25 // cycles/sample
	defaultDuty      = 0.5
	defaultTrend     = 0.0
	defaultSigma     = 0.0
	defaultSeed      = int64(1) // replaces seed 0
)

// config aggregates every knob used by the generators. It is built once per
// call by newConfig and passed by value.
type config struct {
	amplitude  float64
	frequency  float64 // 0 = auto (1/n)
	freqSet    bool
	phase      float64 // radians
	f0, f1     float64 // chirp sweep
	duty       float64 // [0,1]
	triangular bool
	trend      float64 // added per sample index
	sigma      float64 // Gaussian noise stdev
	seed       int64
}

// Option customises a generator.
type Option func(*config)

// newConfig applies opts over the defaults in order; later options win.
func newConfig(opts ...Option) config {
	c := config{
		amplitude: defaultAmplitude,
		phase:     defaultPhase,
		f0:        defaultChirpF0,
		f1:        defaultChirpF1,
		duty:      defaultDuty,
		trend:     defaultTrend,
		sigma:     defaultSigma,
	}
	for _, opt := range opts {
		opt(&c)
	}

	return c
}

// validate checks the knobs shared by every generator.
func (c config) validate() error {
	switch {
	case !positiveFinite(c.amplitude):
		return fmt.Errorf("amplitude %v: %w", c.amplitude, ErrBadParameter)
	case c.freqSet && !positiveFinite(c.frequency):
		return fmt.Errorf("frequency %v: %w", c.frequency, ErrBadParameter)
	case !finite(c.phase):
		return fmt.Errorf("phase %v: %w", c.phase, ErrBadParameter)
	case !finite(c.trend):
		return fmt.Errorf("trend %v: %w", c.trend, ErrBadParameter)
	case !(c.sigma >= 0) || math.IsInf(c.sigma, 0):
		return fmt.Errorf("noise sigma %v: %w", c.sigma, ErrBadParameter)
	}

	return nil
}

// freq resolves the effective frequency for n samples.
func (c config) freq(n int) float64 {
	if c.freqSet {
		return c.frequency
	}

	return 1 / float64(n)
}

// rng returns the noise source; seed 0 maps to defaultSeed.
func (c config) rng() *rand.Rand {
	seed := c.seed
	if seed == 0 {
		seed = defaultSeed
	}

	return rand.New(rand.NewSource(seed))
}

func finite(x float64) bool { return !math.IsNaN(x) && !math.IsInf(x, 0) }

func positiveFinite(x float64) bool { return x > 0 && !math.IsInf(x, 0) }

// WithAmplitude sets A (>0).
func WithAmplitude(a float64) Option {
	return func(c *config) { c.amplitude = a }
}

// WithFrequency sets the frequency in cycles per sample (>0).
// Sine, Cosine and Pulse use it; Chirp uses WithSweep instead.
func WithFrequency(f float64) Option {
	return func(c *config) {
		c.frequency = f
		c.freqSet = true
	}
}

// WithPhase sets the initial phase φ in radians.
func WithPhase(phi float64) Option {
	return func(c *config) { c.phase = phi }
}

// WithSweep sets the chirp start and end frequencies (both >0).
func WithSweep(f0, f1 float64) Option {
	return func(c *config) { c.f0, c.f1 = f0, f1 }
}

// WithDuty sets the rectangular pulse duty cycle in [0,1].
func WithDuty(d float64) Option {
	return func(c *config) { c.duty = d }
}

// WithTriangular switches Pulse to the triangular shape.
func WithTriangular() Option {
	return func(c *config) { c.triangular = true }
}

// WithTrend adds k·i to sample i.
func WithTrend(k float64) Option {
	return func(c *config) { c.trend = k }
}

// WithNoise adds Gaussian noise with standard deviation sigma (≥0).
func WithNoise(sigma float64) Option {
	return func(c *config) { c.sigma = sigma }
}

// WithSeed fixes the noise source. Seed 0 selects a fixed default.
func WithSeed(seed int64) Option {
	return func(c *config) { c.seed = seed }
}
