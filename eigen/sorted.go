// SPDX-License-Identifier: MIT

package eigen

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/mat"
)

// SymmetryTol is the relative tolerance SortedDense accepts for
// |C[i,j] − C[j,i]|, scaled by max(1, max|C|).
const SymmetryTol = 1e-10

// Decomposition is a ranked eigenbasis.
//
// Values are nonnegative and descending; column i of Vectors is the unit
// eigenvector for Values[i], with its first nonzero entry positive.
type Decomposition struct {
	Values  []float64
	Vectors *mat.Dense
}

// Dim returns m, the number of eigenpairs.
func (d Decomposition) Dim() int { return len(d.Values) }

// Split returns W1 = W[:, :n] and W2 = W[:, n:] as views into Vectors.
//
// Errors:
//   - ErrDimensionMismatch unless 1 ≤ n ≤ m−1.
func (d Decomposition) Split(n int) (w1, w2 mat.Matrix, err error) {
	m := d.Dim()
	if n < 1 || n > m-1 {
		return nil, nil, eigenErrorf(opSplit, ErrDimensionMismatch)
	}
	return d.Vectors.Slice(0, m, 0, n), d.Vectors.Slice(0, m, n, m), nil
}

// Sorted factorizes c with solver and returns the canonical Decomposition.
//
// Implementation:
//   - Stage 1: delegate to solver (any order, any sign).
//   - Stage 2: replace eigenvalues by their magnitudes. Round-off can push a
//     PSD spectrum slightly negative, and the cross-moment estimators are
//     indefinite by construction; ranking is by magnitude in both cases.
//   - Stage 3: stable sort descending and permute the vector columns.
//   - Stage 4: flip each column so its first nonzero entry is positive.
//
// Errors:
//   - ErrNilMatrix, or whatever the solver reports (wrapped).
//
// Determinism:
//   - Pure function of (solver, c); repeated calls are bit-identical.
//
// Complexity:
//   - Solver cost plus O(m²) for the permutation and sign pass.
func Sorted(solver Solver, c mat.Symmetric) (Decomposition, error) {
	if c == nil {
		return Decomposition{}, eigenErrorf(opSorted, ErrNilMatrix)
	}
	if solver == nil {
		solver = DefaultSolver()
	}

	raw, vecs, err := solver.Factorize(c)
	if err != nil {
		return Decomposition{}, eigenErrorf(opSorted, err)
	}
	m := len(raw)

	order := make([]int, m)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return math.Abs(raw[order[a]]) > math.Abs(raw[order[b]])
	})

	values := make([]float64, m)
	w := mat.NewDense(m, m, nil)
	col := make([]float64, m)
	for j, src := range order {
		values[j] = math.Abs(raw[src])
		mat.Col(col, src, vecs)
		canonicalSign(col)
		w.SetCol(j, col)
	}

	return Decomposition{Values: values, Vectors: w}, nil
}

// SortedDense is Sorted for a general square matrix that is expected to be
// symmetric. The input is checked and then symmetrized as ½(C + Cᵀ).
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (non-square), ErrAsymmetric.
func SortedDense(solver Solver, c mat.Matrix) (Decomposition, error) {
	if c == nil {
		return Decomposition{}, eigenErrorf(opDense, ErrNilMatrix)
	}
	r, k := c.Dims()
	if r != k {
		return Decomposition{}, eigenErrorf(opDense, ErrDimensionMismatch)
	}

	scale := 1.0
	for i := 0; i < r; i++ {
		for j := 0; j < r; j++ {
			scale = math.Max(scale, math.Abs(c.At(i, j)))
		}
	}
	sym := mat.NewSymDense(r, nil)
	for i := 0; i < r; i++ {
		for j := i; j < r; j++ {
			aij, aji := c.At(i, j), c.At(j, i)
			if math.Abs(aij-aji) > SymmetryTol*scale {
				return Decomposition{}, eigenErrorf(opDense, ErrAsymmetric)
			}
			sym.SetSym(i, j, 0.5*(aij+aji))
		}
	}

	return Sorted(solver, sym)
}

// canonicalSign negates v in place when its first nonzero entry is negative.
func canonicalSign(v []float64) {
	for _, x := range v {
		if x == 0 {
			continue
		}
		if x < 0 {
			for i := range v {
				v[i] = -v[i]
			}
		}
		return
	}
}
