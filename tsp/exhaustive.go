package tsp

import (
	"fmt"
	"math"

	"github.com/katalvlaran/tspbench/citymap"
)

// Exhaustive evaluates every distinct tour and returns the shortest.
//
// Enumeration order:
//   - index 0 is fixed in first position (removes rotations);
//   - the remaining indices run through lexicographic permutations;
//   - a permutation is evaluated only when its first element is smaller than
//     its last (removes reflections).
//
// The first minimal tour in that order wins (strict <).
//
// Complexity: O(n!) time, O(n) space. Maps larger than MaxCities are refused.
type Exhaustive struct {
	// MaxCities is the size ceiling; 0 selects DefaultExhaustiveMaxCities.
	MaxCities int
}

// Name implements Builder.
func (Exhaustive) Name() string { return "exhaustive" }

// MaxSize implements SizeLimited.
func (b Exhaustive) MaxSize() int {
	if b.MaxCities == 0 {
		return DefaultExhaustiveMaxCities
	}

	return b.MaxCities
}

// Build implements Builder.
func (b Exhaustive) Build(m *citymap.Map) (Tour, error) {
	res, err := b.Solve(m)
	if err != nil {
		return nil, err
	}

	return res.Tour, nil
}

// Solve returns the optimal tour together with its length.
//
// Errors: ErrTooManyCities, ErrInvalidOptions.
func (b Exhaustive) Solve(m *citymap.Map) (Result, error) {
	limit := b.MaxSize()
	if limit < 0 {
		return Result{}, fmt.Errorf("%s: %w: max cities %d", b.Name(), ErrInvalidOptions, limit)
	}
	n := m.Len()
	if n > limit {
		return Result{}, fmt.Errorf("%s: %w: %d > %d", b.Name(), ErrTooManyCities, n, limit)
	}

	var (
		d       = m.Distances()
		cur     = make([]int, n)
		best    = make([]int, n)
		bestLen = math.Inf(1)
		l       float64
		i       int
	)
	for i = 0; i < n; i++ {
		cur[i] = i
	}
	copy(best, cur)

	if n <= 3 {
		// One distinct cycle exists.
		bestLen = cycleLength(d, cur)
	} else {
		for {
			if cur[1] < cur[n-1] {
				l = cycleLength(d, cur)
				if l < bestLen {
					bestLen = l
					copy(best, cur)
				}
			}
			if !nextPermutation(cur[1:]) {
				break
			}
		}
	}

	t := fromIndices(m, best)
	if err := checkContract(b.Name(), m, t); err != nil {
		return Result{}, err
	}

	return Result{Tour: t, Length: bestLen}, nil
}

// nextPermutation rearranges a into its lexicographic successor and
// reports false when a was the last permutation.
//
// Complexity: O(len(a)) worst case, O(1) amortized.
func nextPermutation(a []int) bool {
	var i = len(a) - 2
	for i >= 0 && a[i] >= a[i+1] {
		i--
	}
	if i < 0 {
		return false
	}
	var j = len(a) - 1
	for a[j] <= a[i] {
		j--
	}
	a[i], a[j] = a[j], a[i]
	reverseSegment(a, i+1, len(a)-1)

	return true
}
