// Package tsp: segment reversal (2-opt) local search.
//
// A pass scans every segment [i..j], 0 ≤ i < j ≤ n−1, in increasing i then
// j. Segments of length n and n−1 are skipped: reversing them yields the same
// cycle. With a = T[i−1], b = T[i], c = T[j], d = T[j+1]
// (indices mod n), reversing the segment swaps edges (a,b),(c,d) for
// (a,c),(b,d):
//
//	Δ = w(a,c) + w(b,d) − w(a,b) − w(c,d)
//
// The reversal is committed when Δ < −Eps and scanning continues on the
// updated tour. Passes repeat until one commits nothing (a 2-opt local
// optimum) or MaxPasses is reached.
//
// Contracts:
//   - the input tour is validated and never mutated;
//   - the result is a permutation of the map and never longer than the input.
//
// Complexity: O(n²) checks per pass, O(n) per committed reversal.
package tsp

import (
	"fmt"
	"math"

	"github.com/katalvlaran/tspbench/citymap"
)

// ReversalOptions tunes the segment reversal optimizer.
type ReversalOptions struct {
	// MaxPasses caps full sweeps; 0 means until a local optimum.
	MaxPasses int
	// Eps is the strict improvement threshold (Δ < −Eps); 0 selects DefaultEps.
	Eps float64
}

// DefaultReversalOptions returns MaxPasses=DefaultMaxPasses, Eps=DefaultEps.
func DefaultReversalOptions() ReversalOptions {
	return ReversalOptions{MaxPasses: DefaultMaxPasses, Eps: DefaultEps}
}

func (o ReversalOptions) validate() error {
	if o.MaxPasses < 0 {
		return fmt.Errorf("%w: max passes %d", ErrInvalidOptions, o.MaxPasses)
	}
	if !(o.Eps >= 0) {
		return fmt.Errorf("%w: eps %v", ErrInvalidOptions, o.Eps)
	}

	return nil
}

// Improvement reports what ImproveTour did.
type Improvement struct {
	Tour      Tour
	Before    float64 // input length
	After     float64 // output length, ≤ Before
	Passes    int     // sweeps performed
	Reversals int     // committed reversals
}

// ImproveTour returns a tour no longer than t obtained by improving segment
// reversals.
//
// Errors: ErrTourMismatch, ErrInvalidOptions.
func ImproveTour(m *citymap.Map, t Tour, opts ReversalOptions) (Tour, error) {
	res, err := Improve(m, t, opts)
	if err != nil {
		return nil, err
	}

	return res.Tour, nil
}

// Improve is ImproveTour with statistics.
func Improve(m *citymap.Map, t Tour, opts ReversalOptions) (Improvement, error) {
	if err := opts.validate(); err != nil {
		return Improvement{}, err
	}
	if opts.Eps == 0 {
		opts.Eps = DefaultEps
	}
	idx, err := toIndices(m, t)
	if err != nil {
		return Improvement{}, err
	}

	var (
		d         = m.Distances()
		n         = len(idx)
		before    = cycleLength(d, idx)
		passes    int
		reversals int
	)
	// Below four cities every cyclic order has the same length.
	if n >= 4 {
		for opts.MaxPasses == 0 || passes < opts.MaxPasses {
			passes++
			committed := reversalPass(d, idx, opts.Eps)
			reversals += committed
			if committed == 0 {
				break
			}
		}
	}

	after := cycleLength(d, idx)
	out := fromIndices(m, idx)
	if after > before {
		// Rounding can only disagree by far less than Eps; keep the input then.
		out, after = t.Clone(), before
	}
	if err = checkContract("segment-reversal", m, out); err != nil {
		return Improvement{}, err
	}

	return Improvement{Tour: out, Before: before, After: after, Passes: passes, Reversals: reversals}, nil
}

// reversalPass performs one sweep over all segments of cur, reversing in
// place, and returns the number of committed reversals.
func reversalPass(d *citymap.DistanceMatrix, cur []int, eps float64) int {
	var (
		n          = len(cur)
		i, j       int
		a, b, c, e int
		delta      float64
		committed  int
	)
	for i = 0; i < n-1; i++ {
		for j = i + 1; j < n; j++ {
			if j-i >= n-2 {
				continue // n or n−1 cities reversed: same cycle
			}
			a = cur[(i-1+n)%n]
			b = cur[i]
			c = cur[j]
			e = cur[(j+1)%n]
			delta = d.At(a, c) + d.At(b, e) - d.At(a, b) - d.At(c, e)
			if delta < -eps {
				reverseSegment(cur, i, j)
				committed++
			}
		}
	}

	return committed
}

// Refined decorates a Builder with the segment reversal optimizer,
// e.g. greedy-edge followed by 2-opt.
type Refined struct {
	Base    Builder
	Options ReversalOptions
}

// Name implements Builder: "<base>+2opt".
func (b Refined) Name() string {
	if b.Base == nil {
		return "+2opt"
	}

	return b.Base.Name() + "+2opt"
}

// MaxSize implements SizeLimited with the base builder's ceiling.
func (b Refined) MaxSize() int {
	if l, ok := b.Base.(SizeLimited); ok {
		return l.MaxSize()
	}

	return math.MaxInt
}

// Build implements Builder.
func (b Refined) Build(m *citymap.Map) (Tour, error) {
	if b.Base == nil {
		return nil, fmt.Errorf("%s: %w: nil base builder", b.Name(), ErrInvalidOptions)
	}
	t, err := b.Base.Build(m)
	if err != nil {
		return nil, err
	}
	improved, err := ImproveTour(m, t, b.Options)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", b.Name(), err)
	}

	return improved, nil
}
