// SPDX-License-Identifier: MIT

// Package activesubspaces discovers the low-dimensional directions along which
// a scalar function of many inputs varies most.
//
// Given samples of inputs X (n×m), values f and/or gradients ∇f, the library
// builds a weighted second-moment matrix, eigendecomposes it, and splits the
// eigenbasis into an active part W1 and an inactive part W2.
//
// Packages:
//
//	sample/     the sample set (X, f, ∇f, weights), validation and row gathering
//	eigen/      symmetric eigensolvers (gonum, Jacobi) and canonical ordering/sign
//	estimator/  five moment-matrix estimators selected by estimator.Kind (0..4)
//	bootstrap/  resampled eigenvalue ranges, subspace distances, ladle statistics
//	partition/  active-dimension rules: eigenvalue gap, error bound, ladle
//	subspaces/  Compute: the estimate → bootstrap → partition pipeline
//
// Quick start:
//
//	res, err := subspaces.Compute(ctx, sample.Set{DF: grads})
//	if err != nil { ... }
//	w1 := res.W1() // m×NActive active basis
//
// Errors are sentinels matched with errors.Is: ErrInvalidInput,
// ErrInsufficientSamples and ErrMissingStatistics (re-exported by subspaces).
// Randomness is explicit: bootstrap runs are reproducible under WithSeed
// regardless of worker count.
//
// See examples/ridge_sensitivity for a runnable program.
package activesubspaces
