// Package tsp builds and improves Travelling Salesman tours over a
// citymap.Map.
//
// It provides a closed family of construction algorithms behind a single
// Builder interface:
//
//   - Exhaustive: every tour up to rotation and reflection; O(n!), n ≲ 10.
//   - HeldKarp: exact dynamic programming; O(n²·2ⁿ) time, O(n·2ⁿ) memory, n ≲ 16.
//   - NearestNeighbor / RepeatedNearestNeighbor: O(n²) / O(k·n²).
//   - GreedyEdge: sorted edges, degree bound and union-find; O(n² log n).
//   - Insertion (random, nearest, farthest, cheapest): O(n²) to O(n³).
//   - MSTWalk: preorder walk of Prim's minimum spanning tree; O(n²).
//   - External: delegates to an opaque Solver and validates its output.
//
// and a segment reversal (2-opt) local search, ImproveTour, that never
// returns a tour longer than its input.
//
// Tours are open cyclic permutations of city IDs: the edge from the last
// city back to the first is implied. Length evaluates the closed cycle.
//
// All algorithms are deterministic for a given map and configuration, hold
// no mutable state between calls, and never log. Failures are reported with
// the sentinels in types.go, wrapped with context.
package tsp
