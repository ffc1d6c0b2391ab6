// SPDX-License-Identifier: MIT
// Package subspaces: the immutable outcome of one Compute.

package subspaces

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/lepy/active-subspaces/bootstrap"
	"github.com/lepy/active-subspaces/eigen"
	"github.com/lepy/active-subspaces/estimator"
	"github.com/lepy/active-subspaces/partition"
)

// Result is the outcome of Compute. Treat its matrices as read-only;
// W1 and W2 are views into Eigen.Vectors.
type Result struct {
	// Estimator and Partition record the rules that produced the result.
	Estimator estimator.Kind
	Partition partition.Kind

	// Eigen holds eigenvalues (m, descending magnitudes) and the canonically
	// signed eigenvectors (m×m, columns).
	Eigen eigen.Decomposition

	// Stats is nil when no bootstrap was requested.
	Stats *bootstrap.Stats

	// NActive is the chosen active dimension, 1 ≤ NActive ≤ m−1.
	NActive int
}

// Dim returns the input dimension m.
func (r Result) Dim() int { return r.Eigen.Dim() }

// W1 returns the active basis, the first NActive eigenvectors.
func (r Result) W1() mat.Matrix {
	w1, _, _ := r.Eigen.Split(r.NActive)
	return w1
}

// W2 returns the inactive basis, the remaining m−NActive eigenvectors.
func (r Result) W2() mat.Matrix {
	_, w2, _ := r.Eigen.Split(r.NActive)
	return w2
}

// Split re-partitions the basis at a caller-chosen n without recomputing.
// It fails with ErrInvalidInput unless 1 ≤ n ≤ m−1.
func (r Result) Split(n int) (w1, w2 mat.Matrix, err error) {
	if m := r.Dim(); n < 1 || n > m-1 {
		return nil, nil, subspacesErrorf(opSplit, fmt.Errorf("n=%d outside [1, %d]: %w", n, m-1, ErrInvalidInput))
	}
	return r.Eigen.Split(n)
}

// WithActive returns a copy of r whose active dimension is n.
func (r Result) WithActive(n int) (Result, error) {
	if _, _, err := r.Split(n); err != nil {
		return Result{}, err
	}
	r.NActive = n
	return r, nil
}

// EigRange returns the bootstrap eigenvalue bounds (m×2), or nil without bootstrap.
func (r Result) EigRange() *mat.Dense {
	if r.Stats == nil {
		return nil
	}
	return r.Stats.EigRange
}

// SubRange returns the bootstrap subspace distances (m−1 × 3), or nil without bootstrap.
func (r Result) SubRange() *mat.Dense {
	if r.Stats == nil {
		return nil
	}
	return r.Stats.SubRange
}
