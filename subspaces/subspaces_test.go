// SPDX-License-Identifier: MIT
// Package subspaces_test exercises Compute end to end.
package subspaces_test

import (
	"bytes"
	"context"
	"math"
	"math/rand"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/lepy/active-subspaces/eigen"
	"github.com/lepy/active-subspaces/estimator"
	"github.com/lepy/active-subspaces/partition"
	"github.com/lepy/active-subspaces/sample"
	"github.com/lepy/active-subspaces/subspaces"
)

var estimators = []estimator.Kind{
	estimator.Active,
	estimator.NormalizedActive,
	estimator.ActiveX,
	estimator.NormalizedActiveX,
	estimator.Swarm,
}

func TestCompute_AllEstimators(t *testing.T) {
	s := fixture()
	for _, k := range estimators {
		for _, nboot := range []int{0, 100} {
			t.Run(k.String(), func(t *testing.T) {
				res, err := subspaces.Compute(context.Background(), s,
					subspaces.WithEstimator(k),
					subspaces.WithBootstrap(nboot),
					subspaces.WithSeed(42),
				)
				require.NoError(t, err)
				require.Equal(t, k, res.Estimator)
				require.Equal(t, 3, res.Dim())
				require.GreaterOrEqual(t, res.NActive, 1)
				require.LessOrEqual(t, res.NActive, 2)
				for i := 1; i < 3; i++ {
					require.GreaterOrEqual(t, res.Eigen.Values[i-1], res.Eigen.Values[i])
				}

				r, c := res.W1().Dims()
				require.Equal(t, 3, r)
				require.Equal(t, res.NActive, c)
				_, c = res.W2().Dims()
				require.Equal(t, 3-res.NActive, c)

				if nboot == 0 {
					require.Nil(t, res.Stats)
					require.Nil(t, res.EigRange())
					require.Nil(t, res.SubRange())
					return
				}
				require.NotNil(t, res.Stats)
				r, c = res.EigRange().Dims()
				require.Equal(t, [2]int{3, 2}, [2]int{r, c})
				r, c = res.SubRange().Dims()
				require.Equal(t, [2]int{2, 3}, [2]int{r, c})
				require.Equal(t, nboot, res.Stats.NBoot())
			})
		}
	}
}

func TestCompute_AllPartitions(t *testing.T) {
	s := fixture()
	for _, p := range []partition.Kind{partition.Eig, partition.ErrBound, partition.Ladle} {
		t.Run(p.String(), func(t *testing.T) {
			res, err := subspaces.Compute(context.Background(), s,
				subspaces.WithPartition(p),
				subspaces.WithBootstrap(100),
				subspaces.WithSeed(42),
			)
			require.NoError(t, err)
			require.Equal(t, p, res.Partition)
			require.GreaterOrEqual(t, res.NActive, 1)
			require.LessOrEqual(t, res.NActive, 2)
		})
	}
}

func TestCompute_GradientOnlyMatchesActiveSubspace(t *testing.T) {
	s := fixture()
	res, err := subspaces.Compute(context.Background(), sample.Set{DF: s.DF, Weights: s.Weights})
	require.NoError(t, err)

	d, err := estimator.ActiveSubspace(s.DF, s.Weights)
	require.NoError(t, err)
	require.InDeltaSlice(t, d.Values, res.Eigen.Values, 1e-12)
	require.True(t, mat.EqualApprox(d.Vectors, res.Eigen.Vectors, 1e-12))
}

func TestCompute_DefaultWeightsAreUniform(t *testing.T) {
	s := fixture()
	withW, err := subspaces.Compute(context.Background(), s)
	require.NoError(t, err)

	s.Weights = nil
	noW, err := subspaces.Compute(context.Background(), s)
	require.NoError(t, err)
	require.InDeltaSlice(t, withW.Eigen.Values, noW.Eigen.Values, 1e-14)
	require.Equal(t, withW.NActive, noW.NActive)
}

func TestCompute_SwarmWithoutGradients(t *testing.T) {
	s := fixture()
	res, err := subspaces.Compute(context.Background(), sample.Set{X: s.X, F: s.F},
		subspaces.WithEstimator(estimator.Swarm),
		subspaces.WithBootstrap(10),
	)
	require.NoError(t, err)
	require.Equal(t, 3, res.Dim())
}

func TestCompute_Errors(t *testing.T) {
	s := fixture()
	ctx := context.Background()
	cases := []struct {
		name string
		set  sample.Set
		opts []subspaces.Option
		want error
	}{
		{"swarm given gradients instead of values", sample.Set{X: s.X, DF: s.DF},
			[]subspaces.Option{subspaces.WithEstimator(estimator.Swarm)}, subspaces.ErrInvalidInput},
		{"gradient estimator without gradients", sample.Set{X: s.X, F: s.F},
			nil, subspaces.ErrInvalidInput},
		{"x estimator without inputs", sample.Set{DF: s.DF},
			[]subspaces.Option{subspaces.WithEstimator(estimator.ActiveX)}, subspaces.ErrInvalidInput},
		{"unknown estimator code", s,
			[]subspaces.Option{subspaces.WithEstimator(estimator.Kind(5))}, subspaces.ErrInvalidInput},
		{"unknown partition code", s,
			[]subspaces.Option{subspaces.WithPartition(partition.Kind(-1))}, subspaces.ErrInvalidInput},
		{"error bound without bootstrap", s,
			[]subspaces.Option{subspaces.WithPartition(partition.ErrBound)}, subspaces.ErrMissingStatistics},
		{"ladle without bootstrap", s,
			[]subspaces.Option{subspaces.WithPartition(partition.Ladle)}, subspaces.ErrMissingStatistics},
		{"one dimension", sample.Set{DF: mat.NewDense(4, 1, []float64{1, 2, 3, 4})},
			nil, subspaces.ErrInvalidInput},
		{"misaligned weights", sample.Set{DF: s.DF, Weights: sample.Uniform(9)},
			nil, subspaces.ErrInvalidInput},
		{"negative weight", sample.Set{DF: mat.NewDense(2, 2, []float64{1, 0, 0, 1}), Weights: []float64{1, -1}},
			nil, subspaces.ErrInvalidInput},
		{"swarm with too few rows", sample.Set{X: mat.NewDense(3, 3, []float64{1, 0, 0, 0, 1, 0, 0, 0, 1}), F: []float64{1, 2, 3}},
			[]subspaces.Option{subspaces.WithEstimator(estimator.Swarm)}, subspaces.ErrInsufficientSamples},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := subspaces.Compute(ctx, tc.set, tc.opts...)
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestCompute_Reproducible(t *testing.T) {
	s := fixture()
	run := func(workers int) subspaces.Result {
		res, err := subspaces.Compute(context.Background(), s,
			subspaces.WithPartition(partition.Ladle),
			subspaces.WithBootstrap(30),
			subspaces.WithSeed(7),
			subspaces.WithWorkers(workers),
		)
		require.NoError(t, err)
		return res
	}
	a, b, c := run(1), run(1), run(4)
	require.True(t, mat.Equal(a.SubRange(), b.SubRange()))
	require.True(t, mat.Equal(a.SubRange(), c.SubRange()))
	require.True(t, mat.Equal(a.Stats.LiF, c.Stats.LiF))
	require.Equal(t, a.NActive, c.NActive)
}

func TestCompute_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := subspaces.Compute(ctx, fixture(), subspaces.WithBootstrap(50))
	require.ErrorIs(t, err, context.Canceled)
}

func TestCompute_JacobiSolverAgrees(t *testing.T) {
	s := fixture()
	g, err := subspaces.Compute(context.Background(), s)
	require.NoError(t, err)
	j, err := subspaces.Compute(context.Background(), s, subspaces.WithSolver(eigen.Jacobi{}))
	require.NoError(t, err)
	require.InDeltaSlice(t, g.Eigen.Values, j.Eigen.Values, 1e-9)
	require.True(t, mat.EqualApprox(g.Eigen.Vectors, j.Eigen.Vectors, 1e-6))
}

func TestCompute_RidgeFunction(t *testing.T) {
	a := []float64{0.6, -0.8, 0, 0}
	s := ridge(rand.New(rand.NewSource(3)), 50, a)
	for _, k := range []estimator.Kind{estimator.Active, estimator.NormalizedActive} {
		t.Run(k.String(), func(t *testing.T) {
			res, err := subspaces.Compute(context.Background(), s, subspaces.WithEstimator(k))
			require.NoError(t, err)
			require.Equal(t, 1, res.NActive)
			w1 := mat.Col(nil, 0, res.W1())
			require.InDelta(t, 1, math.Abs(floats.Dot(w1, a)), 1e-10)
		})
	}
}

func TestCompute_Logs(t *testing.T) {
	var buf bytes.Buffer
	log := zerolog.New(&buf).Level(zerolog.DebugLevel)
	_, err := subspaces.Compute(context.Background(), fixture(),
		subspaces.WithBootstrap(5),
		subspaces.WithLogger(log),
	)
	require.NoError(t, err)
	out := buf.String()
	require.Contains(t, out, "eigenbasis estimated")
	require.Contains(t, out, "bootstrap ranges computed")
	require.Contains(t, out, "subspace computed")
	require.Contains(t, out, `"estimator":"active_subspace"`)
}

func TestResult_Split(t *testing.T) {
	res, err := subspaces.Compute(context.Background(), fixture())
	require.NoError(t, err)

	for n := 1; n <= 2; n++ {
		w1, w2, err := res.Split(n)
		require.NoError(t, err)
		_, c1 := w1.Dims()
		_, c2 := w2.Dims()
		require.Equal(t, n, c1)
		require.Equal(t, 3-n, c2)
	}
	for _, n := range []int{0, 3, -1} {
		_, _, err := res.Split(n)
		require.ErrorIs(t, err, subspaces.ErrInvalidInput)
	}

	moved, err := res.WithActive(2)
	require.NoError(t, err)
	require.Equal(t, 2, moved.NActive)
}

func TestSubspaces_Holder(t *testing.T) {
	ctx := context.Background()
	var zero subspaces.Subspaces
	_, ok := zero.Result()
	require.False(t, ok)
	_, err := zero.Partition(1)
	require.ErrorIs(t, err, subspaces.ErrInvalidInput)

	h := subspaces.New(subspaces.WithBootstrap(20), subspaces.WithSeed(42))
	first, err := h.Compute(ctx, fixture(), subspaces.WithPartition(partition.Ladle))
	require.NoError(t, err)
	got, ok := h.Result()
	require.True(t, ok)
	require.Equal(t, first.NActive, got.NActive)
	require.NotNil(t, got.Stats)

	// A failed compute must leave the cached result in place.
	_, err = h.Compute(ctx, sample.Set{X: fixture().X}, subspaces.WithEstimator(estimator.Swarm))
	require.ErrorIs(t, err, subspaces.ErrInvalidInput)
	got, ok = h.Result()
	require.True(t, ok)
	require.Same(t, first.Eigen.Vectors, got.Eigen.Vectors)

	_, err = h.Partition(3)
	require.ErrorIs(t, err, subspaces.ErrInvalidInput)
	got, _ = h.Result()
	require.Equal(t, first.NActive, got.NActive)

	moved, err := h.Partition(2)
	require.NoError(t, err)
	require.Equal(t, 2, moved.NActive)
	got, _ = h.Result()
	require.Equal(t, 2, got.NActive)
}

func TestSubspaces_ConcurrentSharedRand(t *testing.T) {
	h := subspaces.New(
		subspaces.WithBootstrap(20),
		subspaces.WithRand(rand.New(rand.NewSource(1))),
		subspaces.WithPartition(partition.Ladle),
	)
	s := fixture()

	const calls = 4
	errs := make([]error, calls)
	var wg sync.WaitGroup
	for i := 0; i < calls; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, errs[i] = h.Compute(context.Background(), s)
		}()
	}
	wg.Wait()
	for _, err := range errs {
		require.NoError(t, err)
	}
	res, ok := h.Result()
	require.True(t, ok)
	require.NotNil(t, res.Stats)
}

func TestSubspaces_SharedRandReproducible(t *testing.T) {
	run := func() []float64 {
		h := subspaces.New(subspaces.WithBootstrap(10), subspaces.WithRand(rand.New(rand.NewSource(9))))
		var out []float64
		for i := 0; i < 2; i++ {
			res, err := h.Compute(context.Background(), fixture())
			require.NoError(t, err)
			out = append(out, mat.Col(nil, 1, res.SubRange())...)
		}
		return out
	}
	a, b := run(), run()
	require.Equal(t, a, b)
	require.NotEqual(t, a[:2], a[2:])
}

func TestOptions_Panics(t *testing.T) {
	require.Panics(t, func() { subspaces.WithBootstrap(-1) })
	require.Panics(t, func() { subspaces.WithWorkers(0) })
	require.Panics(t, func() { subspaces.WithSolver(nil) })
	require.Panics(t, func() { subspaces.WithRand(nil) })
	require.NotPanics(t, func() { subspaces.WithEstimator(estimator.Kind(99)) })
}
