// SPDX-License-Identifier: MIT

package bootstrap

import (
	"fmt"
	"math/rand"

	"github.com/lepy/active-subspaces/sample"
)

// Replicate draws n = s.Rows() row indices uniformly with replacement and
// returns s gathered by them. Absent arrays stay absent and weights are
// gathered like every other array, without renormalization.
//
// A nil rng uses a DefaultSeed stream.
//
// Errors:
//   - sample.ErrInvalidInput for an empty Set.
//
// Complexity: O(n·m).
func Replicate(rng *rand.Rand, s sample.Set) (sample.Set, error) {
	n := s.Rows()
	if n <= 0 {
		return sample.Set{}, fmt.Errorf("bootstrap: Replicate: %w", sample.ErrInvalidInput)
	}
	if rng == nil {
		rng = rngFromSeed(DefaultSeed)
	}
	idx := make([]int, n)
	for i := range idx {
		idx[i] = rng.Intn(n)
	}
	return s.Gather(idx)
}
