// SPDX-License-Identifier: MIT
// Package: numlab/signal
//
// sequence.go - shared sample loop for all generators.

package signal

import (
	"github.com/katalvlaran/numlab/vector"
)

// waveFunc returns the noiseless, trend-free sample i scaled to amplitude 1.
// generate calls it once per index, in order, so it may carry state.
type waveFunc func(i int) float64

// generate allocates n samples and fills them as A·wave(i) + trend·i + noise.
// The caller has already validated c and n.
func generate(n int, c config, wave waveFunc) (*vector.Vector, error) {
	v, err := vector.Zeros(n)
	if err != nil {
		return nil, err
	}

	var (
		rng = c.rng()
		i   int
	)
	// Apply visits elements in index order.
	err = v.Apply(func(float64) float64 {
		y := c.amplitude*wave(i) + c.trend*float64(i)
		if c.sigma > 0 {
			y += c.sigma * rng.NormFloat64()
		}
		i++

		return y
	})
	if err != nil {
		return nil, err
	}

	return v, nil
}

// prepare resolves options and runs the shared checks.
func prepare(op string, n int, opts []Option) (config, error) {
	if n < 1 {
		return config{}, signalErrorf(op, ErrBadSize)
	}
	c := newConfig(opts...)
	if err := c.validate(); err != nil {
		return config{}, signalErrorf(op, err)
	}

	return c, nil
}
