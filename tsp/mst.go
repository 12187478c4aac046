package tsp

import (
	"math"
	"slices"

	"github.com/katalvlaran/tspbench/citymap"
)

// MSTWalk visits cities in preorder of a minimum spanning tree rooted at
// index 0, children in ascending index order. On Euclidean maps the tour is
// at most twice the optimum.
//
// Complexity: O(n²) time (dense Prim), O(n) space.
type MSTWalk struct{}

// Name implements Builder.
func (MSTWalk) Name() string { return "mst-walk" }

// Build implements Builder.
func (b MSTWalk) Build(m *citymap.Map) (Tour, error) {
	_, children := minimumSpanningTree(m.Distances())
	t := fromIndices(m, preorder(children, 0))
	if err := checkContract(b.Name(), m, t); err != nil {
		return nil, err
	}

	return t, nil
}

// minimumSpanningTree runs Prim's algorithm from index 0 on the complete
// graph. It returns parents (−1 for the root) and, for every vertex, its
// children sorted ascending. Ties on the attachment weight keep the lowest index.
func minimumSpanningTree(d *citymap.DistanceMatrix) ([]int, [][]int) {
	var (
		n        = d.N()
		inTree   = make([]bool, n)
		bestCost = make([]float64, n)
		parents  = make([]int, n)
		children = make([][]int, n)
		it, u, v int
		minW     float64
		row      []float64
	)
	for v = 0; v < n; v++ {
		bestCost[v] = math.Inf(1)
		parents[v] = -1
	}
	bestCost[0] = 0

	for it = 0; it < n; it++ {
		// (a) closest vertex outside the tree
		u, minW = -1, math.Inf(1)
		for v = 0; v < n; v++ {
			if !inTree[v] && bestCost[v] < minW {
				minW, u = bestCost[v], v
			}
		}
		// (b) attach it
		inTree[u] = true
		if p := parents[u]; p >= 0 {
			children[p] = append(children[p], u)
		}
		// (c) relax the rest
		row = d.Row(u)
		for v = 0; v < n; v++ {
			if !inTree[v] && row[v] < bestCost[v] {
				bestCost[v] = row[v]
				parents[v] = u
			}
		}
	}
	for v = 0; v < n; v++ {
		slices.Sort(children[v])
	}

	return parents, children
}

// preorder returns the depth-first preorder of the tree from root,
// iteratively to avoid deep recursion on path-like trees.
func preorder(children [][]int, root int) []int {
	var (
		order = make([]int, 0, len(children))
		stack = []int{root}
		v     int
		k     int
	)
	for len(stack) > 0 {
		v = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		order = append(order, v)
		// push in reverse so the smallest child is visited first
		for k = len(children[v]) - 1; k >= 0; k-- {
			stack = append(stack, children[v][k])
		}
	}

	return order
}
