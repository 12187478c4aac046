package tsp

import (
	"cmp"
	"slices"

	"github.com/katalvlaran/tspbench/citymap"
)

// GreedyEdge assembles a tour from the globally shortest edges.
//
// Steps:
//  1. Enumerate all n(n−1)/2 edges; sort by (length, i, j) for a total order.
//  2. Accept an edge when both endpoints still have degree < 2 and the
//     union-find roots differ (otherwise it would close a premature cycle).
//  3. After n−1 accepted edges the fragments form one Hamiltonian path;
//     join its two endpoints.
//  4. Walk the cycle from index 0 towards its first accepted neighbour.
//
// Complexity: O(n² log n) time, O(n²) space for the edge list.
type GreedyEdge struct{}

// Name implements Builder.
func (GreedyEdge) Name() string { return "greedy-edge" }

// Build implements Builder.
func (b GreedyEdge) Build(m *citymap.Map) (Tour, error) {
	t, _, err := b.BuildWithEdges(m)

	return t, err
}

// BuildWithEdges also returns the accepted edges in acceptance order,
// including the closing edge, for callers that visualize how fragments grow.
func (b GreedyEdge) BuildWithEdges(m *citymap.Map) (Tour, []Edge, error) {
	var (
		d        = m.Distances()
		n        = m.Len()
		accepted = make([]Edge, 0, n)
	)
	if n == 1 {
		t := fromIndices(m, []int{0})

		return t, accepted, checkContract(b.Name(), m, t)
	}

	edges := sortedEdges(d)
	deg := make([]int, n)
	adj := make([][2]int, n)
	uf := newUnionFind(n)

	for _, e := range edges {
		if deg[e.I] >= 2 || deg[e.J] >= 2 {
			continue
		}
		if !uf.union(e.I, e.J) {
			continue // same fragment: would close a sub-cycle
		}
		adj[e.I][deg[e.I]] = e.J
		adj[e.J][deg[e.J]] = e.I
		deg[e.I]++
		deg[e.J]++
		accepted = append(accepted, e)
		if len(accepted) == n-1 {
			break
		}
	}

	// Close the Hamiltonian path: its two endpoints are the cities with degree < 2.
	var ends []int
	for v := 0; v < n; v++ {
		if deg[v] < 2 {
			ends = append(ends, v)
		}
	}
	if len(ends) == 2 && n > 2 {
		u, v := ends[0], ends[1]
		adj[u][deg[u]] = v
		adj[v][deg[v]] = u
		deg[u]++
		deg[v]++
		accepted = append(accepted, Edge{I: u, J: v, Length: d.At(u, v)})
	}

	path := walkCycle(adj, deg, n)
	t := fromIndices(m, path)
	if err := checkContract(b.Name(), m, t); err != nil {
		return nil, nil, err
	}

	return t, accepted, nil
}

// sortedEdges lists every undirected edge i<j ordered by (length, i, j).
func sortedEdges(d *citymap.DistanceMatrix) []Edge {
	var (
		n     = d.N()
		edges = make([]Edge, 0, n*(n-1)/2)
		i, j  int
	)
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			edges = append(edges, Edge{I: i, J: j, Length: d.At(i, j)})
		}
	}
	slices.SortFunc(edges, func(a, b Edge) int {
		if c := cmp.Compare(a.Length, b.Length); c != 0 {
			return c
		}
		if c := cmp.Compare(a.I, b.I); c != 0 {
			return c
		}

		return cmp.Compare(a.J, b.J)
	})

	return edges
}

// walkCycle follows a degree-bounded adjacency from index 0. For n == 2 the
// single edge is the whole cycle.
func walkCycle(adj [][2]int, deg []int, n int) []int {
	path := make([]int, 0, n)
	prev, cur := -1, 0
	for len(path) < n {
		path = append(path, cur)
		next := -1
		for k := 0; k < deg[cur]; k++ {
			if w := adj[cur][k]; w != prev {
				next = w
				break
			}
		}
		if next == -1 {
			break
		}
		prev, cur = cur, next
	}

	return path
}

// unionFind is a disjoint-set forest with path compression and union by rank.
type unionFind struct {
	parent []int
	rank   []int
}

func newUnionFind(n int) *unionFind {
	uf := &unionFind{parent: make([]int, n), rank: make([]int, n)}
	for v := range uf.parent {
		uf.parent[v] = v
	}

	return uf
}

// find returns the root of v, compressing the path on the way up.
func (uf *unionFind) find(v int) int {
	for uf.parent[v] != v {
		uf.parent[v] = uf.parent[uf.parent[v]]
		v = uf.parent[v]
	}

	return v
}

// union merges the sets of u and v; false when they were already joined.
func (uf *unionFind) union(u, v int) bool {
	ru, rv := uf.find(u), uf.find(v)
	if ru == rv {
		return false
	}
	if uf.rank[ru] < uf.rank[rv] {
		ru, rv = rv, ru
	}
	uf.parent[rv] = ru
	if uf.rank[ru] == uf.rank[rv] {
		uf.rank[ru]++
	}

	return true
}
