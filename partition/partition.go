// SPDX-License-Identifier: MIT

package partition

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// logFloor returns the value eigenvalues are clamped to before taking logs:
// e[0]·ε for a nonzero spectrum, the smallest normal float64 otherwise.
func logFloor(e []float64) float64 {
	if floor := e[0] * 0x1p-52; floor > 0x1p-1022 {
		return floor
	}
	return 0x1p-1022
}

// EigPartition picks the k with the largest log-gap log e[k−1] − log e[k].
//
// Eigenvalues are clamped at logFloor so exact zeros give a large finite gap
// and an all-zero spectrum gives zero gaps everywhere (hence n = 1).
//
// Returns:
//   - n: the chosen dimension in [1, m−1].
//   - gaps: length m−1, gaps[k−1] is the log-gap at k.
//
// Errors:
//   - ErrDimensionMismatch when m < 2.
//
// Complexity: O(m).
func EigPartition(e []float64) (int, []float64, error) {
	m := len(e)
	if m < 2 {
		return 0, nil, partitionErrorf(opEig, ErrDimensionMismatch)
	}
	floor := logFloor(e)
	gaps := make([]float64, m-1)
	for k := 1; k < m; k++ {
		gaps[k-1] = math.Log(math.Max(e[k-1], floor)) - math.Log(math.Max(e[k], floor))
	}
	return floats.MaxIdx(gaps) + 1, gaps, nil
}

// ErrBoundPartition picks the k minimizing
//
//	bound(k) = √(Σ_{i<k} e_i)·subErr[k−1] + √(Σ_{i≥k} e_i)
//
// the first term being the error from rotating the estimated active
// directions, the second the variation left in the inactive directions.
//
// Inputs:
//   - e: descending eigenvalues (length m ≥ 2).
//   - subErr: per-k subspace error, length m−1 (bootstrap mean distance).
//
// Errors:
//   - ErrMissingStatistics for empty subErr.
//   - ErrDimensionMismatch for m < 2 or len(subErr) != m−1.
func ErrBoundPartition(e, subErr []float64) (int, []float64, error) {
	m := len(e)
	if len(subErr) == 0 {
		return 0, nil, partitionErrorf(opErrBound, ErrMissingStatistics)
	}
	if m < 2 || len(subErr) != m-1 {
		return 0, nil, partitionErrorf(opErrBound, ErrDimensionMismatch)
	}
	bound := make([]float64, m-1)
	for k := 1; k < m; k++ {
		head := math.Max(0, floats.Sum(e[:k]))
		tail := math.Max(0, floats.Sum(e[k:]))
		bound[k-1] = math.Sqrt(head)*subErr[k-1] + math.Sqrt(tail)
	}
	return floats.MinIdx(bound) + 1, bound, nil
}

// LadlePartition picks the k minimizing the ladle criterion
//
//	g(k) = f(k)/(1 + Σ_j f(j)) + e[k]/(1 + Σ_j e[j]),   k = 0..m−1
//
// restricted to k ∈ [1, m−1], where f(0) = 0 and f(k) is the mean over
// replicates of row k−1 of liF.
//
// Inputs:
//   - e: descending eigenvalues (length m ≥ 2).
//   - liF: (m−1)×nboot per-replicate diagnostics, see bootstrap.Stats.LiF.
//
// Returns:
//   - n in [1, m−1] and g(1..m−1).
//
// Errors:
//   - ErrMissingStatistics for nil liF.
//   - ErrDimensionMismatch for m < 2 or a row count other than m−1.
func LadlePartition(e []float64, liF mat.Matrix) (int, []float64, error) {
	m := len(e)
	if liF == nil {
		return 0, nil, partitionErrorf(opLadle, ErrMissingStatistics)
	}
	if r, _ := liF.Dims(); m < 2 || r != m-1 {
		return 0, nil, partitionErrorf(opLadle, ErrDimensionMismatch)
	}

	f := make([]float64, m) // f[0] = 0
	for k := 1; k < m; k++ {
		f[k] = stat.Mean(mat.Row(nil, k-1, liF), nil)
	}
	fNorm := 1 + floats.Sum(f)
	eNorm := 1 + floats.Sum(e)

	g := make([]float64, m-1)
	for k := 1; k < m; k++ {
		g[k-1] = f[k]/fNorm + e[k]/eNorm
	}
	return floats.MinIdx(g) + 1, g, nil
}
