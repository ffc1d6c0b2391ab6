// SPDX-License-Identifier: MIT
// Package: sample
//
// Purpose:
//  - Single place where the shape contract of a Set is enforced.
//  - Estimators call Validate with their Requirements and then assume
//    well-formed data (no scattered nil checks inside numeric kernels).
//
// Check order (fixed, covered by tests):
//  required arrays -> row count > 0 -> row alignment -> column agreement ->
//  finite required arrays -> weights.

package sample

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Validate checks s against req and the common shape contract.
//
// Errors:
//   - ErrInvalidInput for a missing required array, n == 0, misaligned rows,
//     X/DF column disagreement, a NaN/Inf entry in a required array, missing
//     weights, or a negative/NaN/Inf weight.
//
// Complexity: O(n·m) for the finiteness scan.
func (s Set) Validate(req Requirements) error {
	if req.X && s.X == nil {
		return sampleErrorf("Validate: X missing", ErrInvalidInput)
	}
	if req.F && s.F == nil {
		return sampleErrorf("Validate: F missing", ErrInvalidInput)
	}
	if req.DF && s.DF == nil {
		return sampleErrorf("Validate: DF missing", ErrInvalidInput)
	}

	n := s.Rows()
	if n <= 0 {
		return sampleErrorf("Validate: no samples", ErrInvalidInput)
	}

	if s.X != nil {
		if r, c := s.X.Dims(); r != n || c == 0 {
			return sampleErrorf(fmt.Sprintf("Validate: X is %dx%d, want %d rows", r, c, n), ErrInvalidInput)
		}
	}
	if s.DF != nil {
		if r, c := s.DF.Dims(); r != n || c == 0 {
			return sampleErrorf(fmt.Sprintf("Validate: DF is %dx%d, want %d rows", r, c, n), ErrInvalidInput)
		}
	}
	if s.F != nil && len(s.F) != n {
		return sampleErrorf(fmt.Sprintf("Validate: F has %d rows, want %d", len(s.F), n), ErrInvalidInput)
	}
	if s.X != nil && s.DF != nil {
		_, cx := s.X.Dims()
		_, cd := s.DF.Dims()
		if cx != cd {
			return sampleErrorf(fmt.Sprintf("Validate: X has %d columns, DF has %d", cx, cd), ErrInvalidInput)
		}
	}

	if req.X {
		if err := finiteRows("X", s.X); err != nil {
			return err
		}
	}
	if req.DF {
		if err := finiteRows("DF", s.DF); err != nil {
			return err
		}
	}
	if req.F {
		for i, v := range s.F {
			if !finite(v) {
				return sampleErrorf(fmt.Sprintf("Validate: F[%d]=%g", i, v), ErrInvalidInput)
			}
		}
	}

	if s.Weights == nil {
		return sampleErrorf("Validate: weights missing", ErrInvalidInput)
	}
	if len(s.Weights) != n {
		return sampleErrorf(fmt.Sprintf("Validate: weights have %d rows, want %d", len(s.Weights), n), ErrInvalidInput)
	}
	for i, w := range s.Weights {
		if !finite(w) || w < 0 {
			return sampleErrorf(fmt.Sprintf("Validate: weight[%d]=%g", i, w), ErrInvalidInput)
		}
	}

	return nil
}

// RequireRows fails with ErrInsufficientSamples when s has fewer than need rows.
func (s Set) RequireRows(need int) error {
	if n := s.Rows(); n < need {
		return sampleErrorf(fmt.Sprintf("RequireRows: have %d, need %d", n, need), ErrInsufficientSamples)
	}
	return nil
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }

// finiteRows reports the first NaN or Inf entry of a.
func finiteRows(name string, a mat.Matrix) error {
	r, c := a.Dims()
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if v := a.At(i, j); !finite(v) {
				return sampleErrorf(fmt.Sprintf("Validate: %s[%d,%d]=%g", name, i, j, v), ErrInvalidInput)
			}
		}
	}
	return nil
}
