// SPDX-License-Identifier: MIT
// Package bootstrap: functional options.
//
// Constructors validate and PANIC on meaningless values (programmer error);
// Ranges itself never panics on user data.

package bootstrap

import (
	"math/rand"
	"runtime"

	"github.com/rs/zerolog"
)

// Option configures Ranges.
type Option func(*config)

type config struct {
	rng     *rand.Rand
	workers int
	log     zerolog.Logger
}

// DefaultWorkers is the worker count used when WithWorkers is not given.
func DefaultWorkers() int { return runtime.GOMAXPROCS(0) }

// WithRand sets the base RNG stream. The stream is advanced by nboot draws on
// the calling goroutine; it must not be shared with concurrent Ranges calls.
// Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("bootstrap: WithRand(nil)")
	}
	return func(c *config) { c.rng = r }
}

// WithSeed uses a fresh deterministic stream seeded with seed (0 ⇒ DefaultSeed).
func WithSeed(seed int64) Option {
	return func(c *config) { c.rng = rngFromSeed(seed) }
}

// WithWorkers bounds the number of replicates evaluated concurrently.
// Panics when n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic("bootstrap: WithWorkers: n must be >= 1")
	}
	return func(c *config) { c.workers = n }
}

// WithLogger routes the run summary to l (Debug level).
func WithLogger(l zerolog.Logger) Option {
	return func(c *config) { c.log = l }
}

func gatherOptions(opts ...Option) config {
	c := config{workers: DefaultWorkers(), log: zerolog.Nop()}
	for _, set := range opts {
		set(&c)
	}
	if c.rng == nil {
		c.rng = rngFromSeed(DefaultSeed)
	}
	return c
}
