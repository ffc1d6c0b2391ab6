// SPDX-License-Identifier: MIT

package eigen

import "gonum.org/v1/gonum/mat"

// Solver computes the eigenpairs of a real symmetric matrix.
// Values and the columns of vectors may come back in any order and with any sign;
// Sorted is responsible for the canonical form.
type Solver interface {
	Factorize(c mat.Symmetric) (values []float64, vectors *mat.Dense, err error)
}

// Gonum is the default Solver, backed by mat.EigenSym (LAPACK dsyev port).
type Gonum struct{}

// Factorize implements Solver.
func (Gonum) Factorize(c mat.Symmetric) ([]float64, *mat.Dense, error) {
	if c == nil {
		return nil, nil, eigenErrorf(opGonum, ErrNilMatrix)
	}
	var es mat.EigenSym
	if ok := es.Factorize(c, true); !ok {
		return nil, nil, eigenErrorf(opGonum, ErrNotConverged)
	}
	values := es.Values(nil)
	var vectors mat.Dense
	es.VectorsTo(&vectors)

	return values, &vectors, nil
}

// DefaultSolver returns the solver used when callers do not pick one.
func DefaultSolver() Solver { return Gonum{} }
