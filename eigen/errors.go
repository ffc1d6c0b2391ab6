// SPDX-License-Identifier: MIT
// Package eigen: sentinel errors.
// Return sites wrap these with an op tag via eigenErrorf; match with errors.Is.

package eigen

import (
	"errors"
	"fmt"
)

var (
	// ErrDimensionMismatch indicates a non-square matrix or an out-of-range split.
	ErrDimensionMismatch = errors.New("eigen: dimension mismatch")

	// ErrAsymmetric indicates the input is not symmetric within SymmetryTol.
	ErrAsymmetric = errors.New("eigen: matrix is not symmetric within tolerance")

	// ErrNotConverged indicates the solver did not reach its tolerance.
	ErrNotConverged = errors.New("eigen: decomposition did not converge")

	// ErrNilMatrix indicates a nil matrix argument.
	ErrNilMatrix = errors.New("eigen: nil matrix")
)

const (
	opSorted = "Sorted"
	opDense  = "SortedDense"
	opGonum  = "Gonum"
	opJacobi = "Jacobi"
	opSplit  = "Split"
)

// eigenErrorf wraps err with an operation tag. err must be non-nil.
func eigenErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
