// SPDX-License-Identifier: MIT
// Package: numlab/signal
//
// periodic.go - sine and cosine generators.

package signal

import (
	"math"

	"github.com/katalvlaran/numlab/vector"
)

// Sine returns n samples of A·sin(2π·f·i + φ) plus trend and noise.
//
// Errors: ErrBadSize, ErrBadParameter.
// Complexity: O(n).
func Sine(n int, opts ...Option) (*vector.Vector, error) {
	c, err := prepare(opSine, n, opts)
	if err != nil {
		return nil, err
	}
	f := c.freq(n)

	return generate(n, c, func(i int) float64 {
		return math.Sin(tau*f*float64(i) + c.phase)
	})
}

// Cosine is Sine with cos in place of sin.
func Cosine(n int, opts ...Option) (*vector.Vector, error) {
	c, err := prepare(opCosine, n, opts)
	if err != nil {
		return nil, err
	}
	f := c.freq(n)

	return generate(n, c, func(i int) float64 {
		return math.Cos(tau*f*float64(i) + c.phase)
	})
}
