// Package citymap provides immutable sets of cities on a Euclidean plane
// together with their precomputed pairwise distance matrix.
//
// A Map is the input of every tour construction algorithm in package tsp:
//
//	m, err := citymap.New(40, citymap.WithSeed(42))
//	if err != nil {
//	    // handle ErrInvalidSize
//	}
//	d := m.Dist(0, 1) // Euclidean distance between the first two cities
//
// Contracts:
//   - A Map holds at least one city; identifiers are unique.
//   - A Map is never mutated after construction, so it may be shared by any
//     number of goroutines and reused across repeated timed runs.
//   - Randomness is explicit: the same seed and size always yield the same
//     coordinates. Without WithSeed/WithRand a fixed default seed is used.
//
// Complexity:
//   - Construction: O(n²) time and memory (distance matrix).
//   - Dist / City / IndexOf: O(1).
package citymap
