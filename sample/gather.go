// SPDX-License-Identifier: MIT

package sample

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Gather returns a new Set whose row r is row idx[r] of s, for every present
// array. Absent arrays stay absent; indices may repeat.
//
// The result owns fresh storage; s is not modified.
//
// Errors:
//   - ErrInvalidInput when idx is empty or an index falls outside [0, n).
//
// Complexity: O(len(idx)·m).
func (s Set) Gather(idx []int) (Set, error) {
	n := s.Rows()
	if len(idx) == 0 {
		return Set{}, sampleErrorf("Gather: empty index set", ErrInvalidInput)
	}
	for r, i := range idx {
		if i < 0 || i >= n {
			return Set{}, sampleErrorf(fmt.Sprintf("Gather: idx[%d]=%d outside [0,%d)", r, i, n), ErrInvalidInput)
		}
	}

	var out Set
	out.X = gatherRows(s.X, idx)
	out.DF = gatherRows(s.DF, idx)
	out.F = gatherVec(s.F, idx)
	out.Weights = gatherVec(s.Weights, idx)

	return out, nil
}

// gatherRows copies rows idx of a into a new Dense; nil in, nil out.
func gatherRows(a mat.Matrix, idx []int) mat.Matrix {
	if a == nil {
		return nil
	}
	_, c := a.Dims()
	out := mat.NewDense(len(idx), c, nil)
	row := make([]float64, c)
	for r, i := range idx {
		mat.Row(row, i, a)
		out.SetRow(r, row)
	}
	return out
}

func gatherVec(v []float64, idx []int) []float64 {
	if v == nil {
		return nil
	}
	out := make([]float64, len(idx))
	for r, i := range idx {
		out[r] = v[i]
	}
	return out
}
