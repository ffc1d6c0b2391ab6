// SPDX-License-Identifier: MIT
// Package bootstrap - RNG streams for replicate draws.
//
// Goals:
//   - Determinism: same base stream ⇒ identical replicates for any worker count.
//   - No hidden globals: no time-based or process-wide sources.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. The base stream is consumed on the
//     calling goroutine only; workers get private streams built from replicateSeeds.

package bootstrap

import "math/rand"

// DefaultSeed is used when no RNG or seed is configured, and for seed==0.
const DefaultSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand; seed==0 ⇒ DefaultSeed.
func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = DefaultSeed
	}
	return rand.New(rand.NewSource(seed))
}

// deriveSeed mixes a parent value and a stream id with the SplitMix64
// finalizer so neighbouring streams are decorrelated.
func deriveSeed(parent int64, stream uint64) int64 {
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return int64(x)
}

// replicateSeeds draws one seed per replicate from base, in replicate order.
// Complexity: O(nboot).
func replicateSeeds(base *rand.Rand, nboot int) []int64 {
	seeds := make([]int64, nboot)
	for b := range seeds {
		seeds[b] = deriveSeed(base.Int63(), uint64(b))
	}
	return seeds
}
