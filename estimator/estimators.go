// SPDX-License-Identifier: MIT

package estimator

import (
	"gonum.org/v1/gonum/mat"

	"github.com/lepy/active-subspaces/eigen"
	"github.com/lepy/active-subspaces/sample"
)

// ActiveSubspace estimates from gradients df (n×m) and weights (n):
// C = Σᵢ wᵢ dfᵢ dfᵢᵀ.
//
// Errors:
//   - sample.ErrInvalidInput for nil df, misaligned weights or negative weights.
func ActiveSubspace(df mat.Matrix, weights []float64) (eigen.Decomposition, error) {
	return run(Active, sample.Set{DF: df, Weights: weights})
}

// NormalizedActiveSubspace is ActiveSubspace on unit-length gradient rows.
// Zero rows contribute nothing; scaling df leaves the result unchanged.
func NormalizedActiveSubspace(df mat.Matrix, weights []float64) (eigen.Decomposition, error) {
	return run(NormalizedActive, sample.Set{DF: df, Weights: weights})
}

// ActiveSubspaceX estimates from inputs X and gradients df using the
// weighted cross moment A = Σᵢ wᵢ dfᵢ xᵢᵀ and its symmetric part
// C = ½(A + Aᵀ). C is indefinite in general; eigenvalues are ranked by magnitude.
func ActiveSubspaceX(x, df mat.Matrix, weights []float64) (eigen.Decomposition, error) {
	return run(ActiveX, sample.Set{X: x, DF: df, Weights: weights})
}

// NormalizedActiveSubspaceX is ActiveSubspaceX on unit-length rows of both df and X.
func NormalizedActiveSubspaceX(x, df mat.Matrix, weights []float64) (eigen.Decomposition, error) {
	return run(NormalizedActiveX, sample.Set{X: x, DF: df, Weights: weights})
}

// SwarmSubspace is the gradient-free estimator. For every pair of samples
// i<j at distance d = ‖xᵢ − xⱼ‖ ≥ √ε·spread(X), where spread is the largest
// per-column range of X, it forms the unit direction
// u = (xᵢ − xⱼ)/d and the secant s = (fᵢ − fⱼ)/d, a local finite-difference
// estimate of the directional derivative along u, and accumulates
// C = Σ wᵢwⱼ s² uuᵀ.
//
// Errors:
//   - sample.ErrInvalidInput for nil X or f, or misaligned arrays.
//   - sample.ErrInsufficientSamples when n < m+1.
//
// Complexity:
//   - Time O(n²·m²), Space O(n·m).
func SwarmSubspace(x mat.Matrix, f []float64, weights []float64) (eigen.Decomposition, error) {
	return run(Swarm, sample.Set{X: x, F: f, Weights: weights})
}

func activeSubspace(solver eigen.Solver, s sample.Set) (eigen.Decomposition, error) {
	return eigen.Sorted(solver, weightedGram(s.DF, s.Weights))
}

func normalizedActiveSubspace(solver eigen.Solver, s sample.Set) (eigen.Decomposition, error) {
	return eigen.Sorted(solver, weightedGram(normalizeRows(s.DF), s.Weights))
}

func activeSubspaceX(solver eigen.Solver, s sample.Set) (eigen.Decomposition, error) {
	return eigen.Sorted(solver, weightedCross(s.DF, s.X, s.Weights))
}

func normalizedActiveSubspaceX(solver eigen.Solver, s sample.Set) (eigen.Decomposition, error) {
	return eigen.Sorted(solver, weightedCross(normalizeRows(s.DF), normalizeRows(s.X), s.Weights))
}

func swarmSubspace(solver eigen.Solver, s sample.Set) (eigen.Decomposition, error) {
	_, m := s.X.Dims()
	if err := s.RequireRows(m + 1); err != nil {
		return eigen.Decomposition{}, err
	}
	return eigen.Sorted(solver, pairwiseSecants(s.X, s.F, s.Weights))
}
