// SPDX-License-Identifier: MIT

// Package bootstrap quantifies how stable an estimated eigenbasis is under
// resampling of the data.
//
// Replicate draws n rows with replacement; Ranges reruns an estimator on
// nboot replicates and reports, for the eigenvalues and for every candidate
// dimension k = 1..m−1, how far the replicate results wander from the
// original estimate.
//
// Subspace distance: for the original basis W and a replicate basis Wᵢ,
//
//	dist(k) = ‖W[:, :k]ᵀ Wᵢ[:, k:]‖₂
//
// which is the sine of the largest principal angle between the two
// k-dimensional leading subspaces. The ladle diagnostic keeps, per replicate,
//
//	1 − |det(W[:, :k]ᵀ Wᵢ[:, :k])|
//
// Randomness is explicit: pass WithRand or WithSeed, otherwise a fixed
// default seed is used. Replicates are evaluated by a bounded worker pool
// (WithWorkers); every replicate gets its own RNG stream derived up front
// from the base stream, so the output does not depend on the worker count.
package bootstrap
