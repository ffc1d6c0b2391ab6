// SPDX-License-Identifier: MIT

// Package subspaces is the entry point of the active-subspaces core.
//
// Compute takes a sample.Set and options selecting the estimator
// (estimator.Kind, codes 0..4), the partition rule (partition.Kind, codes
// 0..2) and the bootstrap replicate count, and returns an immutable Result:
// the ranked eigenbasis, the chosen active dimension and, when bootstrapping
// was requested, the bootstrap statistics.
//
//	res, err := subspaces.Compute(ctx, sample.Set{DF: df},
//		subspaces.WithEstimator(estimator.NormalizedActive),
//		subspaces.WithPartition(partition.Ladle),
//		subspaces.WithBootstrap(200),
//		subspaces.WithSeed(42),
//	)
//
// Missing weights default to 1/n. Partition rules that need bootstrap
// statistics fail with ErrMissingStatistics when WithBootstrap was not given;
// no bootstrap is run implicitly.
//
// Subspaces is an optional holder for callers that want to keep the most
// recent successful Result around; a failed Compute leaves it untouched.
package subspaces
