// Package tsp: tour length evaluation.
//
// Lengths are rounded to 1e-9 so that equal tours report bit-identical
// lengths regardless of summation start.
package tsp

import (
	"math"

	"github.com/katalvlaran/tspbench/citymap"
)

// roundScale controls final length stabilization precision (1e-9).
const roundScale = 1e9

// Length returns the total Euclidean length of the closed tour, including
// the edge from the last city back to the first. A single-city tour has
// length 0.
//
// Errors: ErrTourMismatch when t is not a permutation of m's cities.
//
// Complexity: O(n).
func Length(m *citymap.Map, t Tour) (float64, error) {
	idx, err := toIndices(m, t)
	if err != nil {
		return 0, err
	}

	return cycleLength(m.Distances(), idx), nil
}

// cycleLength sums d over the closed cycle given by canonical indices.
// Inputs are trusted.
func cycleLength(d *citymap.DistanceMatrix, idx []int) float64 {
	var (
		n   = len(idx)
		sum float64
		p   int
	)
	if n < 2 {
		return 0
	}
	for p = 0; p < n-1; p++ {
		sum += d.At(idx[p], idx[p+1])
	}
	sum += d.At(idx[n-1], idx[0])

	return round1e9(sum)
}

// round1e9 returns x rounded to 1e-9 absolute precision.
func round1e9(x float64) float64 {
	return math.Round(x*roundScale) / roundScale
}
