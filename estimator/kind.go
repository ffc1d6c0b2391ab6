// SPDX-License-Identifier: MIT

package estimator

import (
	"fmt"

	"github.com/lepy/active-subspaces/eigen"
	"github.com/lepy/active-subspaces/sample"
)

// Kind selects one of the five estimators. The integer codes are stable.
type Kind int

const (
	// Active is the classical gradient outer-product estimator (code 0).
	Active Kind = iota
	// NormalizedActive uses unit-length gradients (code 1).
	NormalizedActive
	// ActiveX uses the symmetric gradient/input cross moment (code 2).
	ActiveX
	// NormalizedActiveX uses unit-length gradients and inputs (code 3).
	NormalizedActiveX
	// Swarm estimates from function values and inputs only (code 4).
	Swarm
)

// Func is an estimator bound to a solver. It validates s and returns the ranked eigenbasis.
type Func func(s sample.Set) (eigen.Decomposition, error)

type kernel func(solver eigen.Solver, s sample.Set) (eigen.Decomposition, error)

type entry struct {
	name string
	req  sample.Requirements
	run  kernel
}

// registry maps each Kind code to its name, required arrays and kernel.
var registry = [...]entry{
	Active:            {"active_subspace", sample.Requirements{DF: true}, activeSubspace},
	NormalizedActive:  {"normalized_active_subspace", sample.Requirements{DF: true}, normalizedActiveSubspace},
	ActiveX:           {"active_subspace_x", sample.Requirements{X: true, DF: true}, activeSubspaceX},
	NormalizedActiveX: {"normalized_active_subspace_x", sample.Requirements{X: true, DF: true}, normalizedActiveSubspaceX},
	Swarm:             {"swarm_subspace", sample.Requirements{X: true, F: true}, swarmSubspace},
}

// Valid reports whether k is one of the five known codes.
func (k Kind) Valid() bool { return k >= 0 && int(k) < len(registry) }

// String implements fmt.Stringer.
func (k Kind) String() string {
	if !k.Valid() {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return registry[k].name
}

// Requires returns the arrays estimator k needs. Unknown kinds require nothing.
func (k Kind) Requires() sample.Requirements {
	if !k.Valid() {
		return sample.Requirements{}
	}
	return registry[k].req
}

// Func binds k to solver (nil selects eigen.DefaultSolver).
//
// Errors:
//   - sample.ErrInvalidInput for an unknown kind.
func (k Kind) Func(solver eigen.Solver) (Func, error) {
	if !k.Valid() {
		return nil, fmt.Errorf("estimator: unknown kind %d: %w", int(k), sample.ErrInvalidInput)
	}
	if solver == nil {
		solver = eigen.DefaultSolver()
	}
	e := registry[k]

	return func(s sample.Set) (eigen.Decomposition, error) {
		if err := s.Validate(e.req); err != nil {
			return eigen.Decomposition{}, fmt.Errorf("%s: %w", e.name, err)
		}
		d, err := e.run(solver, s)
		if err != nil {
			return eigen.Decomposition{}, fmt.Errorf("%s: %w", e.name, err)
		}
		return d, nil
	}, nil
}

// run is the shared path of the package-level estimator functions.
func run(k Kind, s sample.Set) (eigen.Decomposition, error) {
	fn, err := k.Func(nil)
	if err != nil {
		return eigen.Decomposition{}, err
	}
	return fn(s)
}
