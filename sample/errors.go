// SPDX-License-Identifier: MIT
// Package sample: sentinel errors shared by every stage of the pipeline.
//
// Callers MUST match with errors.Is; every return site wraps the sentinel
// with a short tag ("Validate: DF missing: sample: invalid input").

package sample

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput is returned when a required array is missing, arrays are
	// not row-aligned, column counts disagree, weights are negative or non-finite,
	// or the sample count is zero.
	ErrInvalidInput = errors.New("sample: invalid input")

	// ErrInsufficientSamples is returned when a computation needs more rows than
	// were supplied (e.g. a gradient-free estimate needs at least m+1 points).
	ErrInsufficientSamples = errors.New("sample: insufficient samples")
)

// sampleErrorf tags err with the failing check. err must be non-nil.
func sampleErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
