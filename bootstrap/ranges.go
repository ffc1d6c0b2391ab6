// SPDX-License-Identifier: MIT

package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"math"
	"math/rand"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/lepy/active-subspaces/eigen"
	"github.com/lepy/active-subspaces/estimator"
	"github.com/lepy/active-subspaces/sample"
)

// ErrSVDFailed indicates the singular value decomposition behind a subspace
// distance did not converge.
var ErrSVDFailed = errors.New("bootstrap: subspace distance SVD failed")

// Stats holds bootstrap statistics for an m-dimensional eigenbasis.
// Rows of the per-k matrices correspond to k = 1..m−1; k = m is excluded
// because the full space has zero distance to itself.
type Stats struct {
	// EigRange is m×2: per-eigenvalue min and max across replicates.
	EigRange *mat.Dense
	// SubRange is (m−1)×3: per-k min, mean and max subspace distance.
	SubRange *mat.Dense
	// LiF is (m−1)×nboot: per-k, per-replicate 1 − |det(W1ᵀ W1ᵢ)|.
	LiF *mat.Dense

	// EigSamples is m×nboot: the replicate eigenvalues.
	EigSamples *mat.Dense
	// Distances is (m−1)×nboot: the replicate subspace distances.
	Distances *mat.Dense
}

// NBoot returns the number of replicates behind s.
func (s Stats) NBoot() int {
	if s.LiF == nil {
		return 0
	}
	_, c := s.LiF.Dims()
	return c
}

// SubspaceMean returns the mean-distance column of SubRange (length m−1),
// the per-k error estimate consumed by the error-bound partition.
func (s Stats) SubspaceMean() []float64 {
	if s.SubRange == nil {
		return nil
	}
	return mat.Col(nil, 1, s.SubRange)
}

// Ranges reruns fn on nboot bootstrap replicates of s and compares each
// replicate basis with orig.
//
// Implementation:
//   - Stage 1: validate (m ≥ 2, nboot ≥ 1, fn non-nil) and resolve options.
//   - Stage 2: draw one RNG seed per replicate from the base stream.
//   - Stage 3: evaluate replicates on a bounded errgroup; replicate b writes
//     only column b of the per-replicate buffers.
//   - Stage 4: reduce to min/max (eigenvalues) and min/mean/max (distances).
//
// Inputs:
//   - orig: the eigenbasis estimated from s itself by the same fn.
//   - s: the sample set; arrays fn does not need may be present or nil.
//   - fn: estimator, typically from estimator.Kind.Func.
//
// Errors:
//   - sample.ErrInvalidInput for nboot < 1, nil fn, m < 2 or a replicate of the wrong dimension.
//   - Errors from fn on any replicate (first one wins), ErrSVDFailed, ctx.Err().
//
// Determinism:
//   - Output depends only on (orig, s, fn, nboot, base stream).
//
// Complexity:
//   - nboot estimator calls plus O(nboot·m⁴) for the per-k comparisons.
func Ranges(ctx context.Context, orig eigen.Decomposition, s sample.Set, fn estimator.Func, nboot int, opts ...Option) (Stats, error) {
	m := orig.Dim()
	switch {
	case nboot < 1:
		return Stats{}, fmt.Errorf("bootstrap: Ranges: nboot=%d: %w", nboot, sample.ErrInvalidInput)
	case fn == nil:
		return Stats{}, fmt.Errorf("bootstrap: Ranges: nil estimator: %w", sample.ErrInvalidInput)
	case m < 2 || orig.Vectors == nil:
		return Stats{}, fmt.Errorf("bootstrap: Ranges: dimension %d < 2: %w", m, sample.ErrInvalidInput)
	}
	cfg := gatherOptions(opts...)
	seeds := replicateSeeds(cfg.rng, nboot)

	eBoot := mat.NewDense(m, nboot, nil)
	dist := mat.NewDense(m-1, nboot, nil)
	liF := mat.NewDense(m-1, nboot, nil)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.workers)
	for b := 0; b < nboot; b++ {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			rep, err := Replicate(rand.New(rand.NewSource(seeds[b])), s)
			if err != nil {
				return err
			}
			d, err := fn(rep)
			if err != nil {
				return fmt.Errorf("bootstrap: replicate %d: %w", b, err)
			}
			if d.Dim() != m {
				return fmt.Errorf("bootstrap: replicate %d has dimension %d, want %d: %w", b, d.Dim(), m, sample.ErrInvalidInput)
			}
			for i, v := range d.Values {
				eBoot.Set(i, b, v)
			}
			return compare(orig.Vectors, d.Vectors, m, b, dist, liF)
		})
	}
	if err := g.Wait(); err != nil {
		return Stats{}, err
	}
	if err := ctx.Err(); err != nil {
		return Stats{}, err
	}

	out := Stats{
		EigRange:   mat.NewDense(m, 2, nil),
		SubRange:   mat.NewDense(m-1, 3, nil),
		LiF:        liF,
		EigSamples: eBoot,
		Distances:  dist,
	}
	row := make([]float64, nboot)
	for i := 0; i < m; i++ {
		mat.Row(row, i, eBoot)
		out.EigRange.SetRow(i, []float64{floats.Min(row), floats.Max(row)})
	}
	for k := 0; k < m-1; k++ {
		mat.Row(row, k, dist)
		out.SubRange.SetRow(k, []float64{floats.Min(row), stat.Mean(row, nil), floats.Max(row)})
	}

	cfg.log.Debug().
		Int("nboot", nboot).
		Int("workers", cfg.workers).
		Int("dim", m).
		Float64("dist_k1_mean", out.SubRange.At(0, 1)).
		Msg("bootstrap ranges computed")

	return out, nil
}

// compare fills column b of dist and liF for k = 1..m−1.
func compare(w, wb *mat.Dense, m, b int, dist, liF *mat.Dense) error {
	for k := 1; k < m; k++ {
		w1 := w.Slice(0, m, 0, k) // original leading k columns

		var cross mat.Dense
		cross.Mul(w1.T(), wb.Slice(0, m, k, m))
		d, err := spectralNorm(&cross)
		if err != nil {
			return err
		}
		dist.Set(k-1, b, d)

		var overlap mat.Dense
		overlap.Mul(w1.T(), wb.Slice(0, m, 0, k))
		liF.Set(k-1, b, 1-math.Abs(mat.Det(&overlap)))
	}
	return nil
}

// spectralNorm returns the largest singular value of a.
func spectralNorm(a mat.Matrix) (float64, error) {
	var svd mat.SVD
	if ok := svd.Factorize(a, mat.SVDNone); !ok {
		return 0, ErrSVDFailed
	}
	return svd.Values(nil)[0], nil
}
