// SPDX-License-Identifier: MIT

package eigen

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// Jacobi defaults.
const (
	// DefaultJacobiTol is the off-diagonal threshold relative to ‖C‖_F.
	DefaultJacobiTol = 1e-12

	// DefaultJacobiMaxIter caps the number of single rotations.
	DefaultJacobiMaxIter = 10000
)

// Jacobi is a classical Jacobi eigenvalue Solver: it repeatedly annihilates the
// largest off-diagonal entry with a plane rotation until every off-diagonal
// entry is at most Tol·‖C‖_F.
//
// Zero fields fall back to DefaultJacobiTol and DefaultJacobiMaxIter.
//
// Determinism:
//   - Fixed i→j pivot scan (first maximum wins) and fixed update order.
//
// Complexity:
//   - Time O(iter·m²) for the pivot scan plus O(iter·m) per rotation, Space O(m²).
type Jacobi struct {
	Tol     float64
	MaxIter int
}

// Factorize implements Solver.
//
// Errors:
//   - ErrNilMatrix for nil input.
//   - ErrNotConverged when the off-diagonal maximum still exceeds the threshold after MaxIter rotations.
func (j Jacobi) Factorize(c mat.Symmetric) ([]float64, *mat.Dense, error) {
	if c == nil {
		return nil, nil, eigenErrorf(opJacobi, ErrNilMatrix)
	}
	tol, maxIter := j.Tol, j.MaxIter
	if tol <= 0 {
		tol = DefaultJacobiTol
	}
	if maxIter <= 0 {
		maxIter = DefaultJacobiMaxIter
	}

	n, _ := c.Dims()
	a := mat.NewSymDense(n, nil) // working copy, upper triangle is authoritative
	a.CopySym(c)
	q := mat.NewDense(n, n, nil) // accumulated rotations
	for i := 0; i < n; i++ {
		q.Set(i, i, 1)
	}

	thresh := tol * mat.Norm(a, 2) // Frobenius for matrices
	var (
		i, iter            int
		p, r               int     // pivot (p<r)
		maxOff             float64 // largest |A[p,r]|
		app, arr, apr      float64
		theta, t, cs, sn   float64
		aip, air, qip, qir float64
	)
	for iter = 0; ; iter++ {
		// J.1: pivot search over the strict upper triangle.
		maxOff, p, r = offDiagMax(a, n)

		// J.2: convergence.
		if maxOff <= thresh {
			break
		}
		if iter >= maxIter {
			return nil, nil, eigenErrorf(opJacobi, ErrNotConverged)
		}

		// J.3: rotation parameters; t is the smaller root of t² + 2θt − 1 = 0.
		app, arr, apr = a.At(p, p), a.At(r, r), a.At(p, r)
		theta = (arr - app) / (2 * apr)
		t = math.Copysign(1.0/(math.Abs(theta)+math.Hypot(theta, 1)), theta)
		cs = 1.0 / math.Sqrt(t*t+1)
		sn = t * cs

		// J.4: rotate rows/columns p and r of A.
		for i = 0; i < n; i++ {
			if i == p || i == r {
				continue
			}
			aip, air = a.At(i, p), a.At(i, r)
			a.SetSym(i, p, cs*aip-sn*air)
			a.SetSym(i, r, sn*aip+cs*air)
		}
		a.SetSym(p, p, cs*cs*app-2*cs*sn*apr+sn*sn*arr)
		a.SetSym(r, r, sn*sn*app+2*cs*sn*apr+cs*cs*arr)
		a.SetSym(p, r, 0)

		// J.5: accumulate into Q.
		for i = 0; i < n; i++ {
			qip, qir = q.At(i, p), q.At(i, r)
			q.Set(i, p, cs*qip-sn*qir)
			q.Set(i, r, sn*qip+cs*qir)
		}
	}

	values := make([]float64, n)
	for i = 0; i < n; i++ {
		values[i] = a.At(i, i)
	}

	return values, q, nil
}

// offDiagMax returns max |A[i,j]| over i<j and its position.
func offDiagMax(a *mat.SymDense, n int) (float64, int, int) {
	var best float64
	var p, r int
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if v := math.Abs(a.At(i, j)); v > best {
				best, p, r = v, i, j
			}
		}
	}
	return best, p, r
}
