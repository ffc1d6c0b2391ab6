// SPDX-License-Identifier: MIT

// Package eigen turns a symmetric second-moment matrix into a ranked,
// sign-canonical eigenbasis.
//
// Every estimator in this module funnels through Sorted, which is the single
// source of truth for ordering and orientation:
//
//   - eigenvalues are reported as magnitudes, sorted descending (stable on ties);
//   - eigenvector columns are permuted to match;
//   - each column is flipped so that its first nonzero entry is positive.
//
// Bootstrap comparisons rely on that convention, because raw eigenvectors
// are only defined up to sign.
//
// The numerical work is delegated to a Solver. Gonum (backed by
// gonum.org/v1/gonum/mat.EigenSym) is the default; Jacobi is a dependency-free
// cyclic rotation solver that is useful for cross-checking small problems.
//
// Degenerate input: the zero matrix yields m zero eigenvalues together with
// an orthonormal basis chosen by the solver (the identity for both solvers).
// This is reported as a result, not an error.
package eigen
