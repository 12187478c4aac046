package citymap

import (
	"fmt"
	"iter"
	"math"
)

// Map is an immutable, ordered set of cities. The position of a city in the
// map is its canonical index, used by all algorithms and by DistanceMatrix.
type Map struct {
	cities []City
	index  map[int]int // city ID -> canonical index
	dist   *DistanceMatrix
}

// New returns a map of n cities placed uniformly at random in the plane.
// City IDs are 0..n-1 in generation order.
//
// Errors: ErrInvalidSize when n < 1, ErrInvalidCoordinate when the bounds
// are so large that distances overflow.
//
// Complexity: O(n²).
func New(n int, opts ...Option) (*Map, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidSize, n)
	}
	cfg := defaultGenConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rng == nil {
		WithSeed(DefaultSeed)(&cfg)
	}

	cities := make([]City, n)
	var i int
	for i = 0; i < n; i++ {
		// X is drawn before Y for every city; changing this order changes every seeded map.
		cities[i] = City{ID: i, X: cfg.rng.Float64() * cfg.width, Y: cfg.rng.Float64() * cfg.height}
	}

	return newMap(cities)
}

// FromCoordinates builds a map from explicit points; IDs are 0..len(pts)-1.
func FromCoordinates(pts [][2]float64) (*Map, error) {
	cities := make([]City, len(pts))
	for i, p := range pts {
		cities[i] = City{ID: i, X: p[0], Y: p[1]}
	}

	return FromCities(cities)
}

// FromCities builds a map from cities with caller-chosen IDs.
// The slice is copied.
//
// Errors: ErrInvalidSize, ErrDuplicateCity, ErrInvalidCoordinate.
func FromCities(cities []City) (*Map, error) {
	if len(cities) < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidSize, len(cities))
	}

	return newMap(append([]City(nil), cities...))
}

// newMap takes ownership of cities, validates them and precomputes distances.
func newMap(cities []City) (*Map, error) {
	index := make(map[int]int, len(cities))
	for i, c := range cities {
		if !finite(c.X) || !finite(c.Y) {
			return nil, fmt.Errorf("%w: city %d at (%v, %v)", ErrInvalidCoordinate, c.ID, c.X, c.Y)
		}
		if _, dup := index[c.ID]; dup {
			return nil, fmt.Errorf("%w: %d", ErrDuplicateCity, c.ID)
		}
		index[c.ID] = i
	}
	dist, err := newDistanceMatrix(cities)
	if err != nil {
		return nil, err
	}

	return &Map{
		cities: cities,
		index:  index,
		dist:   dist,
	}, nil
}

func finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

// Len returns the number of cities.
func (m *Map) Len() int { return len(m.cities) }

// City returns the city at canonical index i.
func (m *Map) City(i int) City { return m.cities[i] }

// ID returns the identifier of the city at canonical index i.
func (m *Map) ID(i int) int { return m.cities[i].ID }

// Cities returns a copy of the cities in canonical order.
func (m *Map) Cities() []City {
	return append([]City(nil), m.cities...)
}

// IDs returns city identifiers in canonical order.
func (m *Map) IDs() []int {
	ids := make([]int, len(m.cities))
	for i, c := range m.cities {
		ids[i] = c.ID
	}

	return ids
}

// IndexOf returns the canonical index of the city with the given ID.
func (m *Map) IndexOf(id int) (int, bool) {
	i, ok := m.index[id]

	return i, ok
}

// Dist returns the Euclidean distance between canonical indices i and j.
func (m *Map) Dist(i, j int) float64 { return m.dist.At(i, j) }

// Distances exposes the shared, read-only distance matrix.
func (m *Map) Distances() *DistanceMatrix { return m.dist }

// Coordinates returns the points in canonical order, for plotting.
func (m *Map) Coordinates() [][2]float64 {
	out := make([][2]float64, len(m.cities))
	for i, c := range m.cities {
		out[i] = [2]float64{c.X, c.Y}
	}

	return out
}

// All iterates over (canonical index, city) pairs.
func (m *Map) All() iter.Seq2[int, City] {
	return func(yield func(int, City) bool) {
		for i, c := range m.cities {
			if !yield(i, c) {
				return
			}
		}
	}
}
