// SPDX-License-Identifier: MIT
package subspaces_test

import (
	"math"
	"math/rand"

	"gonum.org/v1/gonum/mat"

	"github.com/lepy/active-subspaces/sample"
)

func normal(rng *rand.Rand, r, c int) *mat.Dense {
	data := make([]float64, r*c)
	for i := range data {
		data[i] = rng.NormFloat64()
	}
	return mat.NewDense(r, c, data)
}

// fixture is a 10×3 seed-42 sample with every array present.
func fixture() sample.Set {
	rng := rand.New(rand.NewSource(42))
	x := normal(rng, 10, 3)
	df := normal(rng, 10, 3)
	f := make([]float64, 10)
	for i := range f {
		f[i] = rng.NormFloat64()
	}
	return sample.Set{X: x, F: f, DF: df, Weights: sample.Uniform(10)}
}

// ridge samples f(x) = sin(a·x) and its gradient cos(a·x)·a on [-1, 1]^m.
func ridge(rng *rand.Rand, n int, a []float64) sample.Set {
	m := len(a)
	x := mat.NewDense(n, m, nil)
	df := mat.NewDense(n, m, nil)
	f := make([]float64, n)
	for i := 0; i < n; i++ {
		var t float64
		for j := 0; j < m; j++ {
			v := 2*rng.Float64() - 1
			x.Set(i, j, v)
			t += a[j] * v
		}
		f[i] = math.Sin(t)
		for j := 0; j < m; j++ {
			df.Set(i, j, math.Cos(t)*a[j])
		}
	}
	return sample.Set{X: x, F: f, DF: df}
}
