// SPDX-License-Identifier: MIT
// Package: numlab/regression
//
// rng.go - deterministic initial weights.

package regression

import "math/rand"

// defaultSeed replaces seed 0 so that the zero value stays reproducible.
const defaultSeed int64 = 1

// rngFromSeed returns a private *rand.Rand; seed 0 maps to defaultSeed.
func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultSeed
	}

	return rand.New(rand.NewSource(seed))
}

// InitWeights returns nFeatures+1 weights drawn from U[0,1), bias first.
// The same seed always yields the same weights.
//
// Errors: ErrBadParameter for negative nFeatures.
func InitWeights(nFeatures int, seed int64) ([]float64, error) {
	if nFeatures < 0 {
		return nil, regressionDetailf(opInitWeights, ErrBadParameter,
			"negative feature count %d", nFeatures)
	}

	rng := rngFromSeed(seed)
	w := make([]float64, nFeatures+1)
	for i := range w {
		w[i] = rng.Float64()
	}

	return w, nil
}
