package tsp

import (
	"fmt"

	"github.com/katalvlaran/tspbench/citymap"
)

// Solver is the boundary to an opaque exact or heuristic TSP solver living
// outside this module. It receives a private n×n distance matrix indexed by
// canonical city index and returns a visiting order of those indices.
type Solver interface {
	Solve(dist [][]float64) ([]int, error)
}

// SolverFunc adapts a plain function to Solver.
type SolverFunc func(dist [][]float64) ([]int, error)

// Solve implements Solver.
func (f SolverFunc) Solve(dist [][]float64) ([]int, error) { return f(dist) }

// External wraps a Solver as a Builder. The solver's answer is checked
// before use: anything that is not a permutation of 0..n−1 is rejected with
// ErrContractViolation, and solver errors are wrapped in ErrSolverFailed.
type External struct {
	// Label names the solver in benchmark tables; empty means "external".
	Label  string
	Solver Solver
}

// Name implements Builder.
func (b External) Name() string {
	if b.Label == "" {
		return "external"
	}

	return b.Label
}

// Build implements Builder.
func (b External) Build(m *citymap.Map) (Tour, error) {
	if b.Solver == nil {
		return nil, fmt.Errorf("%s: %w: nil solver", b.Name(), ErrInvalidOptions)
	}

	// The solver gets a copy so it cannot corrupt the shared matrix.
	perm, err := b.Solver.Solve(m.Distances().Dense())
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %w", b.Name(), ErrSolverFailed, err)
	}
	if err = validatePermutation(perm, m.Len()); err != nil {
		return nil, fmt.Errorf("%s: %w", b.Name(), err)
	}

	t := fromIndices(m, perm)
	if err = checkContract(b.Name(), m, t); err != nil {
		return nil, err
	}

	return t, nil
}
