// SPDX-License-Identifier: MIT
// Package subspaces: functional options for Compute.
//
// Constructors panic only on nonsensical values (programmer error). Estimator
// and partition codes are NOT checked here: they often come straight from
// user input, so Compute reports unknown codes as ErrInvalidInput instead.

package subspaces

import (
	"math/rand"

	"github.com/rs/zerolog"

	"github.com/lepy/active-subspaces/bootstrap"
	"github.com/lepy/active-subspaces/eigen"
	"github.com/lepy/active-subspaces/estimator"
	"github.com/lepy/active-subspaces/partition"
)

// Defaults.
const (
	DefaultEstimator = estimator.Active
	DefaultPartition = partition.Eig
	DefaultBootstrap = 0
	DefaultSeed      = bootstrap.DefaultSeed
)

// Option configures Compute.
type Option func(*config)

type config struct {
	estimator estimator.Kind
	partition partition.Kind
	nboot     int
	solver    eigen.Solver
	seed      int64
	rng       *rand.Rand
	shared    bool // rng came from WithRand
	workers   int
	log       zerolog.Logger
}

// WithEstimator selects the estimator (codes 0..4).
func WithEstimator(k estimator.Kind) Option {
	return func(c *config) { c.estimator = k }
}

// WithPartition selects the partition rule (codes 0..2).
func WithPartition(k partition.Kind) Option {
	return func(c *config) { c.partition = k }
}

// WithBootstrap sets the number of bootstrap replicates; 0 disables the bootstrap.
func WithBootstrap(nboot int) Option {
	if nboot < 0 {
		panic("subspaces: WithBootstrap: nboot must be >= 0")
	}
	return func(c *config) { c.nboot = nboot }
}

// WithSolver sets the symmetric eigensolver (default eigen.Gonum).
func WithSolver(s eigen.Solver) Option {
	if s == nil {
		panic("subspaces: WithSolver(nil)")
	}
	return func(c *config) { c.solver = s }
}

// WithRand sets the resampling stream. It is advanced by every bootstrapped
// Compute. *rand.Rand is not goroutine-safe: do not share r between
// concurrent Compute calls. A Subspaces holder draws from r under its lock,
// so its own concurrent calls may share it.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("subspaces: WithRand(nil)")
	}
	return func(c *config) { c.rng, c.seed, c.shared = r, 0, true }
}

// WithSeed resamples from a fresh stream seeded with seed on every Compute.
func WithSeed(seed int64) Option {
	return func(c *config) { c.rng, c.seed, c.shared = nil, seed, false }
}

// WithWorkers bounds bootstrap concurrency (default GOMAXPROCS).
func WithWorkers(n int) Option {
	if n < 1 {
		panic("subspaces: WithWorkers: n must be >= 1")
	}
	return func(c *config) { c.workers = n }
}

// WithLogger sets the structured logger (default zerolog.Nop()).
func WithLogger(l zerolog.Logger) Option {
	return func(c *config) { c.log = l }
}

func seedOrDefault(seed int64) int64 {
	if seed == 0 {
		return DefaultSeed
	}
	return seed
}

// gatherOptions applies opts over the defaults; later options win.
func gatherOptions(opts ...Option) config {
	c := config{
		estimator: DefaultEstimator,
		partition: DefaultPartition,
		nboot:     DefaultBootstrap,
		solver:    eigen.DefaultSolver(),
		workers:   bootstrap.DefaultWorkers(),
		log:       zerolog.Nop(),
	}
	for _, set := range opts {
		set(&c)
	}
	if c.rng == nil {
		c.rng = rand.New(rand.NewSource(seedOrDefault(c.seed)))
	}
	return c
}
