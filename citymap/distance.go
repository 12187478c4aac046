package citymap

import (
	"fmt"
	"math"
)

// DistanceMatrix stores symmetric Euclidean distances in a flat row-major
// slice, so At(i, j) is a single indexed load.
type DistanceMatrix struct {
	n    int
	data []float64 // len == n*n
}

// newDistanceMatrix fills the upper triangle and mirrors it; the diagonal
// stays exactly zero. Finite coordinates far apart can still overflow, so
// every distance must be finite as well.
//
// Errors: ErrInvalidCoordinate.
//
// Complexity: O(n²) time and memory.
func newDistanceMatrix(cities []City) (*DistanceMatrix, error) {
	var (
		n    = len(cities)
		data = make([]float64, n*n)
		i, j int
		d    float64
	)
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			d = math.Hypot(cities[i].X-cities[j].X, cities[i].Y-cities[j].Y)
			if math.IsInf(d, 0) || math.IsNaN(d) {
				return nil, fmt.Errorf("%w: distance between cities %d and %d overflows",
					ErrInvalidCoordinate, cities[i].ID, cities[j].ID)
			}
			data[i*n+j] = d
			data[j*n+i] = d
		}
	}

	return &DistanceMatrix{n: n, data: data}, nil
}

// N returns the matrix order.
func (d *DistanceMatrix) N() int { return d.n }

// At returns the distance between canonical indices i and j.
// Indices are not range-checked beyond the slice bound.
func (d *DistanceMatrix) At(i, j int) float64 {
	return d.data[i*d.n+j]
}

// Row returns a read-only view of row i. Callers must not modify it.
func (d *DistanceMatrix) Row(i int) []float64 {
	return d.data[i*d.n : (i+1)*d.n]
}

// Dense returns a freshly allocated [][]float64 copy, suitable for handing
// to code outside this module.
func (d *DistanceMatrix) Dense() [][]float64 {
	out := make([][]float64, d.n)
	var i int
	for i = 0; i < d.n; i++ {
		out[i] = append([]float64(nil), d.Row(i)...)
	}

	return out
}
