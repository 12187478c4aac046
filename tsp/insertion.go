package tsp

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/tspbench/citymap"
)

// InsertionPolicy selects which unvisited city the Insertion builder adds next.
type InsertionPolicy int

const (
	// RandomInsertion picks a uniformly random unvisited city (seeded).
	RandomInsertion InsertionPolicy = iota
	// NearestInsertion picks the unvisited city closest to the partial tour.
	NearestInsertion
	// FarthestInsertion picks the unvisited city farthest from the partial tour.
	FarthestInsertion
	// CheapestInsertion picks the city whose best insertion adds least length.
	CheapestInsertion
)

// String returns the policy label used in builder names.
func (p InsertionPolicy) String() string {
	switch p {
	case RandomInsertion:
		return "random"
	case NearestInsertion:
		return "nearest"
	case FarthestInsertion:
		return "farthest"
	case CheapestInsertion:
		return "cheapest"
	default:
		return fmt.Sprintf("policy(%d)", int(p))
	}
}

// Insertion grows a partial tour from the single city Start. At every step
// the policy selects a city, which is inserted between the consecutive pair
// (a, b) minimizing d(a,c)+d(c,b)−d(a,b); ties go to the earliest position.
//
// Distance-to-tour (nearest / farthest) is the minimum distance to any tour
// city, maintained incrementally; ties go to the lowest index. Cheapest ties
// go to the lowest cost, then the lowest city index, then the earliest
// position.
//
// Complexity: O(n²) for random/nearest/farthest, O(n³) for cheapest.
type Insertion struct {
	Policy InsertionPolicy
	// Start is the canonical index of the seed city (default 0).
	Start int
	// Seed feeds RandomInsertion; 0 selects a fixed default stream.
	Seed int64
}

// Name implements Builder.
func (b Insertion) Name() string { return b.Policy.String() + "-insertion" }

// Build implements Builder.
func (b Insertion) Build(m *citymap.Map) (Tour, error) {
	if b.Start < 0 || b.Start >= m.Len() {
		return nil, fmt.Errorf("%s: %w: start %d outside [0,%d)", b.Name(), ErrInvalidOptions, b.Start, m.Len())
	}

	var path []int
	switch b.Policy {
	case RandomInsertion:
		path = b.randomOrder(m.Distances())
	case NearestInsertion, FarthestInsertion:
		path = b.byTourDistance(m.Distances())
	case CheapestInsertion:
		path = b.cheapest(m.Distances())
	default:
		return nil, fmt.Errorf("%w: insertion policy %d", ErrUnknownAlgorithm, int(b.Policy))
	}

	t := fromIndices(m, path)
	if err := checkContract(b.Name(), m, t); err != nil {
		return nil, err
	}

	return t, nil
}

// randomOrder inserts the remaining cities in a seeded shuffled order.
func (b Insertion) randomOrder(d *citymap.DistanceMatrix) []int {
	var (
		n    = d.N()
		rest = make([]int, 0, n-1)
		path = make([]int, 1, n)
		v    int
	)
	path[0] = b.Start
	for v = 0; v < n; v++ {
		if v != b.Start {
			rest = append(rest, v)
		}
	}
	shuffleIntsInPlace(rest, rngFromSeed(b.Seed))
	for _, c := range rest {
		pos, _ := bestPosition(d, path, c)
		path = slices.Insert(path, pos, c)
	}

	return path
}

// byTourDistance implements nearest and farthest insertion.
func (b Insertion) byTourDistance(d *citymap.DistanceMatrix) []int {
	var (
		n       = d.N()
		inTour  = make([]bool, n)
		toTour  = make([]float64, n) // min distance to any tour city
		path    = make([]int, 1, n)
		farther = b.Policy == FarthestInsertion
		v, c    int
		row     []float64
	)
	path[0] = b.Start
	inTour[b.Start] = true
	copy(toTour, d.Row(b.Start))

	for len(path) < n {
		c = -1
		for v = 0; v < n; v++ {
			if inTour[v] {
				continue
			}
			if c == -1 || (farther && toTour[v] > toTour[c]) || (!farther && toTour[v] < toTour[c]) {
				c = v
			}
		}
		pos, _ := bestPosition(d, path, c)
		path = slices.Insert(path, pos, c)
		inTour[c] = true

		row = d.Row(c)
		for v = 0; v < n; v++ {
			if !inTour[v] && row[v] < toTour[v] {
				toTour[v] = row[v]
			}
		}
	}

	return path
}

// cheapest evaluates every (city, position) pair at each step.
func (b Insertion) cheapest(d *citymap.DistanceMatrix) []int {
	var (
		n       = d.N()
		inTour  = make([]bool, n)
		path    = make([]int, 1, n)
		v       int
		bestC   int
		bestPos int
		bestInc float64
	)
	path[0] = b.Start
	inTour[b.Start] = true

	for len(path) < n {
		bestC = -1
		for v = 0; v < n; v++ {
			if inTour[v] {
				continue
			}
			pos, inc := bestPosition(d, path, v)
			if bestC == -1 || inc < bestInc {
				bestC, bestPos, bestInc = v, pos, inc
			}
		}
		path = slices.Insert(path, bestPos, bestC)
		inTour[bestC] = true
	}

	return path
}

// bestPosition returns the slice index at which inserting c into the closed
// cycle path adds the least length, and that added length. Position p means
// "between path[p-1] and path[p]"; position len(path) is the closing edge.
// Ties keep the earliest position.
//
// Complexity: O(len(path)).
func bestPosition(d *citymap.DistanceMatrix, path []int, c int) (int, float64) {
	var k = len(path)
	if k == 1 {
		return 1, 2 * d.At(path[0], c)
	}

	var (
		bestPos = -1
		bestInc float64
		inc     float64
		a, b    int
		p       int
	)
	for p = 1; p <= k; p++ {
		a = path[p-1]
		b = path[p%k]
		inc = d.At(a, c) + d.At(c, b) - d.At(a, b)
		if bestPos == -1 || inc < bestInc {
			bestPos, bestInc = p, inc
		}
	}

	return bestPos, bestInc
}
