// Package tsp_test holds shared helpers for the tsp tests: small fixed maps,
// seeded random maps and permutation assertions.
package tsp_test

import (
	"math"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tspbench/citymap"
	"github.com/katalvlaran/tspbench/tsp"
)

const (
	// epsTiny absorbs the 1e-9 length rounding.
	epsTiny = 1e-9

	// seedDet is the default seed for generated maps.
	seedDet int64 = 42
)

// squareMap is the unit square in perimeter order: optimal length 4.
func squareMap(t testing.TB) *citymap.Map {
	t.Helper()
	m, err := citymap.FromCoordinates([][2]float64{{0, 0}, {0, 1}, {1, 1}, {1, 0}})
	require.NoError(t, err)

	return m
}

// randomMap returns a seeded map of n cities.
func randomMap(t testing.TB, n int, seed int64) *citymap.Map {
	t.Helper()
	m, err := citymap.New(n, citymap.WithSeed(seed))
	require.NoError(t, err)

	return m
}

// circleMap places n cities on a slightly rippled circle (no exact ties).
func circleMap(t testing.TB, n int) *citymap.Map {
	t.Helper()
	pts := make([][2]float64, n)
	var (
		i     int
		th, r float64
	)
	for i = 0; i < n; i++ {
		th = 2 * math.Pi * float64(i) / float64(n)
		r = 100 + 2*float64((i*5)%7)
		pts[i] = [2]float64{r * math.Cos(th), r * math.Sin(th)}
	}
	m, err := citymap.FromCoordinates(pts)
	require.NoError(t, err)

	return m
}

// heuristics lists every non-exact builder with default knobs.
func heuristics() []tsp.Builder {
	return []tsp.Builder{
		tsp.NearestNeighbor{},
		tsp.RepeatedNearestNeighbor{},
		tsp.GreedyEdge{},
		tsp.Insertion{Policy: tsp.RandomInsertion, Seed: 7},
		tsp.Insertion{Policy: tsp.NearestInsertion},
		tsp.Insertion{Policy: tsp.FarthestInsertion},
		tsp.Insertion{Policy: tsp.CheapestInsertion},
		tsp.MSTWalk{},
		tsp.Refined{Base: tsp.GreedyEdge{}, Options: tsp.DefaultReversalOptions()},
	}
}

// requirePermutation asserts that tour contains each ID of m exactly once.
func requirePermutation(t testing.TB, m *citymap.Map, tour tsp.Tour) {
	t.Helper()
	got := slices.Clone([]int(tour))
	want := m.IDs()
	slices.Sort(got)
	slices.Sort(want)
	require.Equal(t, want, got, "tour %v is not a permutation", tour)
}

// mustLength evaluates tour on m.
func mustLength(t testing.TB, m *citymap.Map, tour tsp.Tour) float64 {
	t.Helper()
	l, err := tsp.Length(m, tour)
	require.NoError(t, err)

	return l
}
