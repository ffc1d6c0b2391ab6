// SPDX-License-Identifier: MIT
// Package estimator: second-moment kernels.
//
// Kernels assume a validated sample.Set (row-aligned, weights present).
// Accumulation order is fixed (i ascending, then j ascending) so results are
// reproducible bit for bit.

package estimator

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// sqrtEps scales the spread of X into the distance below which two points
// count as coincident.
var sqrtEps = math.Sqrt(0x1p-52)

// weightedGram returns Σᵢ wᵢ aᵢ aᵢᵀ for the rows aᵢ of a (n×m).
func weightedGram(a mat.Matrix, w []float64) *mat.SymDense {
	n, m := a.Dims()
	c := mat.NewSymDense(m, nil)
	row := make([]float64, m)
	v := mat.NewVecDense(m, row) // shares row
	for i := 0; i < n; i++ {
		if w[i] == 0 {
			continue
		}
		mat.Row(row, i, a)
		c.SymRankOne(c, w[i], v)
	}
	return c
}

// weightedCross returns the symmetric part of Σᵢ wᵢ aᵢ bᵢᵀ.
func weightedCross(a, b mat.Matrix, w []float64) *mat.SymDense {
	n, m := a.Dims()
	cross := mat.NewDense(m, m, nil)
	ar, br := make([]float64, m), make([]float64, m)
	av, bv := mat.NewVecDense(m, ar), mat.NewVecDense(m, br)
	for i := 0; i < n; i++ {
		if w[i] == 0 {
			continue
		}
		mat.Row(ar, i, a)
		mat.Row(br, i, b)
		cross.RankOne(cross, w[i], av, bv)
	}

	c := mat.NewSymDense(m, nil)
	for i := 0; i < m; i++ {
		for j := i; j < m; j++ {
			c.SetSym(i, j, 0.5*(cross.At(i, j)+cross.At(j, i)))
		}
	}
	return c
}

// normalizeRows returns a copy of a with every row scaled to unit L2 norm.
// Zero rows stay zero. The result does not depend on the scale of a.
func normalizeRows(a mat.Matrix) *mat.Dense {
	n, m := a.Dims()
	out := mat.NewDense(n, m, nil)
	row := make([]float64, m)
	for i := 0; i < n; i++ {
		mat.Row(row, i, a)
		nrm := floats.Norm(row, 2)
		if nrm == 0 {
			continue
		}
		floats.Scale(1/nrm, row)
		out.SetRow(i, row)
	}
	return out
}

// pairwiseSecants accumulates Σ_{i<j} wᵢwⱼ sᵢⱼ² uᵢⱼuᵢⱼᵀ over all pairs with a
// resolvable distance; see SwarmSubspace. A pair is resolvable when its
// distance is at least sqrtEps times the spread of X, so the cutoff moves with
// the scale of the inputs.
func pairwiseSecants(x mat.Matrix, f, w []float64) *mat.SymDense {
	n, m := x.Dims()
	rows := make([][]float64, n)
	for i := range rows {
		rows[i] = mat.Row(nil, i, x)
	}

	c := mat.NewSymDense(m, nil)
	cutoff := sqrtEps * spread(x)
	if cutoff == 0 {
		return c // every point coincides
	}
	u := make([]float64, m)
	uv := mat.NewVecDense(m, u)
	var d, sec, wij float64
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			wij = w[i] * w[j]
			if wij == 0 {
				continue
			}
			floats.SubTo(u, rows[i], rows[j])
			d = floats.Norm(u, 2)
			if d < cutoff {
				continue // coincident points carry no directional information
			}
			floats.Scale(1/d, u)
			sec = (f[i] - f[j]) / d
			c.SymRankOne(c, wij*sec*sec, uv)
		}
	}
	return c
}

// spread returns the largest per-column range max − min of x.
func spread(x mat.Matrix) float64 {
	n, m := x.Dims()
	col := make([]float64, n)
	var out float64
	for j := 0; j < m; j++ {
		mat.Col(col, j, x)
		out = math.Max(out, floats.Max(col)-floats.Min(col))
	}
	return out
}
