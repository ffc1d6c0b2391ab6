// SPDX-License-Identifier: MIT
package estimator_test

import (
	"math/rand"
	"testing"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// normal returns an r×c standard normal matrix drawn from rng.
func normal(rng *rand.Rand, r, c int) *mat.Dense {
	data := make([]float64, r*c)
	for i := range data {
		data[i] = rng.NormFloat64()
	}
	return mat.NewDense(r, c, data)
}

func normalVec(rng *rand.Rand, n int) []float64 {
	v := make([]float64, n)
	for i := range v {
		v[i] = rng.NormFloat64()
	}
	return v
}

func uniform(n int) []float64 {
	w := make([]float64, n)
	for i := range w {
		w[i] = 1 / float64(n)
	}
	return w
}

// absCos returns |cos| of the angle between column j of w and v.
func absCos(t *testing.T, w mat.Matrix, j int, v []float64) float64 {
	t.Helper()
	col := mat.Col(nil, j, w)
	c := floats.Dot(col, v) / (floats.Norm(col, 2) * floats.Norm(v, 2))
	if c < 0 {
		c = -c
	}
	return c
}
