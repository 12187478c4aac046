package tsp

import (
	"fmt"
	"math"

	"github.com/katalvlaran/tspbench/citymap"
)

// HeldKarp solves the map exactly with the Held–Karp dynamic program.
//
// dp[mask][j] is the shortest path that starts at index 0, visits exactly
// the cities in mask (bit 0 always set) and ends at j. The tour is closed by
// returning from the best j to 0 and reconstructed from the parent table.
// Ties keep the lowest predecessor / endpoint index.
//
// Complexity: O(n²·2ⁿ) time, O(n·2ⁿ) memory. Maps larger than MaxCities are refused.
type HeldKarp struct {
	// MaxCities is the size ceiling; 0 selects DefaultHeldKarpMaxCities.
	MaxCities int
}

// Name implements Builder.
func (HeldKarp) Name() string { return "held-karp" }

// MaxSize implements SizeLimited.
func (b HeldKarp) MaxSize() int {
	if b.MaxCities == 0 {
		return DefaultHeldKarpMaxCities
	}

	return b.MaxCities
}

// Build implements Builder.
func (b HeldKarp) Build(m *citymap.Map) (Tour, error) {
	res, err := b.Solve(m)
	if err != nil {
		return nil, err
	}

	return res.Tour, nil
}

// Solve returns an optimal tour and its length.
//
// Errors: ErrTooManyCities, ErrInvalidOptions, ErrContractViolation when
// no finite tour exists.
func (b HeldKarp) Solve(m *citymap.Map) (Result, error) {
	limit := b.MaxSize()
	if limit < 0 {
		return Result{}, fmt.Errorf("%s: %w: max cities %d", b.Name(), ErrInvalidOptions, limit)
	}
	n := m.Len()
	if n > limit {
		return Result{}, fmt.Errorf("%s: %w: %d > %d", b.Name(), ErrTooManyCities, n, limit)
	}

	var (
		d    = m.Distances()
		tour []int
		err  error
	)
	if n <= 3 {
		tour = make([]int, n)
		for i := range tour {
			tour[i] = i
		}
	} else if tour, err = heldKarpTour(d); err != nil {
		return Result{}, fmt.Errorf("%s: %w", b.Name(), err)
	}

	t := fromIndices(m, tour)
	if err = checkContract(b.Name(), m, t); err != nil {
		return Result{}, err
	}

	return Result{Tour: t, Length: cycleLength(d, tour)}, nil
}

// metric is the read-only view of distances the DP needs.
type metric interface {
	N() int
	At(i, j int) float64
}

// heldKarpTour runs the DP on n ≥ 2 cities and returns the optimal order.
// It fails with ErrContractViolation when every closed tour has infinite length.
func heldKarpTour(d metric) ([]int, error) {
	var (
		n       = d.N()
		full    = 1<<n - 1
		dp      = make([]float64, (full+1)*n) // dp[mask*n + j]
		parent  = make([]int, (full+1)*n)
		mask    int
		j, k    int
		prev    int
		cand    float64
		bestLen = math.Inf(1)
		last    = -1
	)
	for mask = 0; mask <= full; mask++ {
		for j = 0; j < n; j++ {
			dp[mask*n+j] = math.Inf(1)
			parent[mask*n+j] = -1
		}
	}
	dp[1*n+0] = 0

	// Masks grow numerically, so every subset is finished before its supersets.
	for mask = 1; mask <= full; mask += 2 {
		for j = 1; j < n; j++ {
			if mask&(1<<j) == 0 {
				continue
			}
			prev = mask ^ (1 << j)
			for k = 0; k < n; k++ {
				if prev&(1<<k) == 0 || math.IsInf(dp[prev*n+k], 1) {
					continue
				}
				cand = dp[prev*n+k] + d.At(k, j)
				if cand < dp[mask*n+j] {
					dp[mask*n+j] = cand
					parent[mask*n+j] = k
				}
			}
		}
	}

	for j = 1; j < n; j++ {
		cand = dp[full*n+j] + d.At(j, 0)
		if cand < bestLen {
			bestLen = cand
			last = j
		}
	}

	if last < 0 {
		return nil, fmt.Errorf("%w: no tour of finite length", ErrContractViolation)
	}

	// Walk parents back from the best endpoint.
	tour := make([]int, n)
	mask = full
	j = last
	for k = n - 1; k >= 1; k-- {
		tour[k] = j
		prev = parent[mask*n+j]
		mask ^= 1 << j
		j = prev
	}
	tour[0] = 0

	return tour, nil
}
