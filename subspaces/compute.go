// SPDX-License-Identifier: MIT
// Package subspaces: the estimate → bootstrap → partition pipeline.

package subspaces

import (
	"context"
	"fmt"

	"github.com/lepy/active-subspaces/bootstrap"
	"github.com/lepy/active-subspaces/sample"
)

const (
	opCompute = "Compute"
	opSplit   = "Split"
)

// Compute estimates the active subspace of s.
//
// Stages:
//   - check the estimator and partition codes, and that a bootstrap-based
//     partition rule has WithBootstrap;
//   - fill missing weights with 1/n and validate s against the estimator;
//   - estimate, bootstrap when requested, then pick the active dimension.
//
// Errors:
//   - ErrInvalidInput: unknown codes, missing or misaligned arrays, bad
//     weights, m < 2.
//   - ErrInsufficientSamples: too few rows for the estimator.
//   - ErrMissingStatistics: ladle or error-bound rule without bootstrap.
//   - ctx.Err() when the bootstrap is cancelled.
//
// Compute never mutates s. Concurrent calls are safe unless they share a
// WithRand stream; a Subspaces holder serializes draws from its own.
func Compute(ctx context.Context, s sample.Set, opts ...Option) (Result, error) {
	return compute(ctx, s, gatherOptions(opts...))
}

func compute(ctx context.Context, s sample.Set, cfg config) (Result, error) {
	log := cfg.log.With().Stringer("estimator", cfg.estimator).Stringer("partition", cfg.partition).Logger()

	if !cfg.estimator.Valid() {
		return Result{}, subspacesErrorf(opCompute, fmt.Errorf("estimator code %d: %w", int(cfg.estimator), ErrInvalidInput))
	}
	if !cfg.partition.Valid() {
		return Result{}, subspacesErrorf(opCompute, fmt.Errorf("partition code %d: %w", int(cfg.partition), ErrInvalidInput))
	}
	if cfg.partition.NeedsBootstrap() && cfg.nboot == 0 {
		return Result{}, subspacesErrorf(opCompute, fmt.Errorf("%s needs WithBootstrap: %w", cfg.partition, ErrMissingStatistics))
	}

	s = s.WithDefaultWeights()
	if err := s.Validate(cfg.estimator.Requires()); err != nil {
		return Result{}, subspacesErrorf(opCompute, err)
	}
	if m := s.Dim(); m < 2 {
		return Result{}, subspacesErrorf(opCompute, fmt.Errorf("dimension %d < 2: %w", m, ErrInvalidInput))
	}

	fn, err := cfg.estimator.Func(cfg.solver)
	if err != nil {
		return Result{}, subspacesErrorf(opCompute, err)
	}
	d, err := fn(s)
	if err != nil {
		return Result{}, subspacesErrorf(opCompute, err)
	}
	log.Debug().Int("rows", s.Rows()).Int("dim", d.Dim()).Float64("lambda1", d.Values[0]).Msg("eigenbasis estimated")

	var st *bootstrap.Stats
	if cfg.nboot > 0 {
		stats, err := bootstrap.Ranges(ctx, d, s, fn, cfg.nboot,
			bootstrap.WithRand(cfg.rng),
			bootstrap.WithWorkers(cfg.workers),
			bootstrap.WithLogger(log),
		)
		if err != nil {
			return Result{}, subspacesErrorf(opCompute, err)
		}
		st = &stats
	}

	n, err := cfg.partition.Select(d.Values, st)
	if err != nil {
		return Result{}, subspacesErrorf(opCompute, err)
	}
	log.Debug().Int("nboot", cfg.nboot).Int("n_active", n).Msg("subspace computed")

	return Result{
		Estimator: cfg.estimator,
		Partition: cfg.partition,
		Eigen:     d,
		Stats:     st,
		NActive:   n,
	}, nil
}
