// SPDX-License-Identifier: MIT

package sample

import "gonum.org/v1/gonum/mat"

// Set is a row-aligned sample set. Any of X, F and DF may be nil.
// A Set is treated as read-only by every consumer in this module.
type Set struct {
	X       mat.Matrix // n×m input points
	F       []float64  // n function values
	DF      mat.Matrix // n×m gradients
	Weights []float64  // n nonnegative weights
}

// Requirements lists the arrays a computation needs to be present.
// Weights are always required and are not listed here.
type Requirements struct {
	X  bool
	F  bool
	DF bool
}

// Rows returns the common row count n, taken from the first present of
// X, DF, F and Weights. It returns 0 for an empty Set.
func (s Set) Rows() int {
	switch {
	case s.X != nil:
		r, _ := s.X.Dims()
		return r
	case s.DF != nil:
		r, _ := s.DF.Dims()
		return r
	case s.F != nil:
		return len(s.F)
	default:
		return len(s.Weights)
	}
}

// Dim returns the input dimension m taken from X or DF, or 0 when neither is present.
func (s Set) Dim() int {
	if s.X != nil {
		_, c := s.X.Dims()
		return c
	}
	if s.DF != nil {
		_, c := s.DF.Dims()
		return c
	}
	return 0
}

// Uniform returns n weights equal to 1/n. It returns nil for n <= 0.
func Uniform(n int) []float64 {
	if n <= 0 {
		return nil
	}
	w := make([]float64, n)
	v := 1.0 / float64(n)
	for i := range w {
		w[i] = v
	}
	return w
}

// WithDefaultWeights returns a copy of s whose Weights default to Uniform(s.Rows())
// when s.Weights is nil. Supplied weights are kept as they are.
func (s Set) WithDefaultWeights() Set {
	if s.Weights == nil {
		s.Weights = Uniform(s.Rows())
	}
	return s
}
