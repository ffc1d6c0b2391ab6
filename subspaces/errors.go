// SPDX-License-Identifier: MIT
// Package subspaces: error taxonomy.
//
// The sentinels live in the packages that detect them; they are re-exported
// here so callers of Compute can match everything against one package.

package subspaces

import (
	"fmt"

	"github.com/lepy/active-subspaces/partition"
	"github.com/lepy/active-subspaces/sample"
)

var (
	// ErrInvalidInput: missing required array, misaligned rows, bad weights,
	// unknown estimator or partition code, or a dimension below 2.
	ErrInvalidInput = sample.ErrInvalidInput

	// ErrInsufficientSamples: fewer rows than the estimator needs.
	ErrInsufficientSamples = sample.ErrInsufficientSamples

	// ErrMissingStatistics: a bootstrap-based partition rule without bootstrap.
	ErrMissingStatistics = partition.ErrMissingStatistics
)

func subspacesErrorf(tag string, err error) error {
	return fmt.Errorf("subspaces: %s: %w", tag, err)
}
