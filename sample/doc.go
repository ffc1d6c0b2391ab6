// SPDX-License-Identifier: MIT

// Package sample holds the row-aligned data an active-subspace estimate is built from.
//
// A Set carries up to four parallel arrays sharing the same row count n:
//
//	X        n×m  input points
//	F        n    scalar outputs
//	DF       n×m  gradients
//	Weights  n    quadrature / probability weights (nonnegative)
//
// Which of X, F and DF must be present depends on the estimator; callers
// describe that with Requirements and check it once via Set.Validate before
// any numeric work starts.
//
// The package also owns the row gather used by bootstrap resampling and the
// uniform default weights (1/n).
package sample
