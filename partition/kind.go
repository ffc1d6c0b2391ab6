// SPDX-License-Identifier: MIT

package partition

import (
	"fmt"

	"github.com/lepy/active-subspaces/bootstrap"
)

// Kind selects one of the three partition rules. The integer codes are stable.
type Kind int

const (
	// Eig is the log-eigenvalue gap rule (code 0).
	Eig Kind = iota
	// ErrBound is the bootstrap error-bound rule (code 1).
	ErrBound
	// Ladle is the ladle rule (code 2).
	Ladle
)

type selector func(e []float64, st *bootstrap.Stats) (int, error)

var registry = [...]struct {
	name      string
	bootstrap bool
	sel       selector
}{
	Eig:      {"eig", false, selectEig},
	ErrBound: {"errbnd", true, selectErrBound},
	Ladle:    {"ladle", true, selectLadle},
}

// Valid reports whether k is a known code.
func (k Kind) Valid() bool { return k >= 0 && int(k) < len(registry) }

// String implements fmt.Stringer.
func (k Kind) String() string {
	if !k.Valid() {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return registry[k].name
}

// NeedsBootstrap reports whether k consumes bootstrap statistics.
func (k Kind) NeedsBootstrap() bool { return k.Valid() && registry[k].bootstrap }

// Select runs rule k on e. st may be nil for rules that do not need it.
//
// Errors:
//   - ErrUnknownKind, ErrMissingStatistics, ErrDimensionMismatch.
func (k Kind) Select(e []float64, st *bootstrap.Stats) (int, error) {
	if !k.Valid() {
		return 0, fmt.Errorf("partition: Select %d: %w", int(k), ErrUnknownKind)
	}
	if registry[k].bootstrap && st == nil {
		return 0, fmt.Errorf("partition: %s: %w", k, ErrMissingStatistics)
	}
	return registry[k].sel(e, st)
}

func selectEig(e []float64, _ *bootstrap.Stats) (int, error) {
	n, _, err := EigPartition(e)
	return n, err
}

func selectErrBound(e []float64, st *bootstrap.Stats) (int, error) {
	n, _, err := ErrBoundPartition(e, st.SubspaceMean())
	return n, err
}

func selectLadle(e []float64, st *bootstrap.Stats) (int, error) {
	if st.LiF == nil {
		return 0, partitionErrorf(opLadle, ErrMissingStatistics)
	}
	n, _, err := LadlePartition(e, st.LiF)
	return n, err
}
