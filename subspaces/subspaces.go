// SPDX-License-Identifier: MIT
// Package subspaces: a holder that keeps the last successful Result.

package subspaces

import (
	"context"
	"math/rand"
	"sync"

	"github.com/lepy/active-subspaces/sample"
)

// Subspaces caches the most recent successful Compute. Base options given to
// New apply to every call and are overridden by per-call options.
// The zero value is ready to use.
type Subspaces struct {
	mu   sync.RWMutex
	base []Option
	last Result
	ok   bool
}

// New returns a holder with base options.
func New(opts ...Option) *Subspaces {
	return &Subspaces{base: append([]Option(nil), opts...)}
}

// Compute runs Compute with the base options followed by opts and, on
// success only, replaces the cached Result.
//
// A WithRand stream is never handed to the bootstrap directly: one seed is
// drawn from it under the holder's lock and the call resamples from a private
// stream built from that seed, so concurrent calls may share the stream.
func (h *Subspaces) Compute(ctx context.Context, s sample.Set, opts ...Option) (Result, error) {
	all := make([]Option, 0, len(h.base)+len(opts))
	all = append(all, h.base...)
	all = append(all, opts...)

	cfg := gatherOptions(all...)
	if cfg.shared {
		h.mu.Lock()
		seed := cfg.rng.Int63()
		h.mu.Unlock()
		cfg.rng, cfg.shared = rand.New(rand.NewSource(seedOrDefault(seed))), false
	}

	res, err := compute(ctx, s, cfg)
	if err != nil {
		return Result{}, err
	}
	h.mu.Lock()
	h.last, h.ok = res, true
	h.mu.Unlock()
	return res, nil
}

// Result returns the cached Result and whether one exists.
func (h *Subspaces) Result() (Result, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.last, h.ok
}

// Partition re-splits the cached Result at n.
// It fails with ErrInvalidInput when nothing is cached or n is out of range;
// the cache is untouched on failure.
func (h *Subspaces) Partition(n int) (Result, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if !h.ok {
		return Result{}, subspacesErrorf(opSplit, ErrInvalidInput)
	}
	res, err := h.last.WithActive(n)
	if err != nil {
		return Result{}, err
	}
	h.last = res
	return res, nil
}
