package tsp

import (
	"fmt"

	"github.com/katalvlaran/tspbench/citymap"
)

// NearestNeighbor starts at canonical index Start and repeatedly moves to
// the closest unvisited city. Ties go to the lowest index.
//
// Complexity: O(n²) time, O(n) space.
type NearestNeighbor struct {
	// Start is the canonical index of the first city (default 0).
	Start int
}

// Name implements Builder.
func (NearestNeighbor) Name() string { return "nearest-neighbor" }

// Build implements Builder.
func (b NearestNeighbor) Build(m *citymap.Map) (Tour, error) {
	if b.Start < 0 || b.Start >= m.Len() {
		return nil, fmt.Errorf("%s: %w: start %d outside [0,%d)", b.Name(), ErrInvalidOptions, b.Start, m.Len())
	}
	t := fromIndices(m, nearestNeighborPath(m.Distances(), b.Start))
	if err := checkContract(b.Name(), m, t); err != nil {
		return nil, err
	}

	return t, nil
}

// nearestNeighborPath returns the NN visiting order from start in indices.
func nearestNeighborPath(d *citymap.DistanceMatrix, start int) []int {
	var (
		n       = d.N()
		visited = make([]bool, n)
		path    = make([]int, 0, n)
		cur     = start
		next    int
		best    float64
		row     []float64
		j       int
	)
	visited[cur] = true
	path = append(path, cur)
	for len(path) < n {
		row = d.Row(cur)
		next = -1
		for j = 0; j < n; j++ {
			if visited[j] {
				continue
			}
			// strict < keeps the lowest index on ties
			if next == -1 || row[j] < best {
				next, best = j, row[j]
			}
		}
		visited[next] = true
		path = append(path, next)
		cur = next
	}

	return path
}

// RepeatedNearestNeighbor runs NearestNeighbor from several start cities
// and keeps the shortest tour. Starts are spread evenly over the canonical
// order; Starts == 0 (or ≥ n) tries every city. Ties keep the earliest start.
//
// Complexity: O(k·n²) time for k starts.
type RepeatedNearestNeighbor struct {
	Starts int
}

// Name implements Builder.
func (RepeatedNearestNeighbor) Name() string { return "repeated-nearest-neighbor" }

// Build implements Builder.
func (b RepeatedNearestNeighbor) Build(m *citymap.Map) (Tour, error) {
	if b.Starts < 0 {
		return nil, fmt.Errorf("%s: %w: starts %d", b.Name(), ErrInvalidOptions, b.Starts)
	}
	var (
		d        = m.Distances()
		n        = m.Len()
		k        = b.Starts
		bestPath []int
		bestLen  float64
		s        int
	)
	if k == 0 || k > n {
		k = n
	}
	for s = 0; s < k; s++ {
		path := nearestNeighborPath(d, s*n/k)
		l := cycleLength(d, path)
		if bestPath == nil || l < bestLen {
			bestPath, bestLen = path, l
		}
	}

	t := fromIndices(m, bestPath)
	if err := checkContract(b.Name(), m, t); err != nil {
		return nil, err
	}

	return t, nil
}
