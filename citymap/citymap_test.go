package citymap_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tspbench/citymap"
)

func TestNew_SeedReproducible(t *testing.T) {
	a, err := citymap.New(10, citymap.WithSeed(42))
	require.NoError(t, err)
	b, err := citymap.New(10, citymap.WithSeed(42))
	require.NoError(t, err)

	require.Equal(t, a.Coordinates(), b.Coordinates())
	require.Equal(t, a.IDs(), b.IDs())
}

func TestNew_DifferentSeedsDiffer(t *testing.T) {
	a, err := citymap.New(10, citymap.WithSeed(1))
	require.NoError(t, err)
	b, err := citymap.New(10, citymap.WithSeed(2))
	require.NoError(t, err)

	require.NotEqual(t, a.Coordinates(), b.Coordinates())
}

func TestNew_DefaultSeedIsDeterministic(t *testing.T) {
	a, err := citymap.New(7)
	require.NoError(t, err)
	b, err := citymap.New(7, citymap.WithSeed(citymap.DefaultSeed))
	require.NoError(t, err)

	require.Equal(t, a.Coordinates(), b.Coordinates())
}

func TestNew_InvalidSize(t *testing.T) {
	for _, n := range []int{0, -1, -100} {
		m, err := citymap.New(n)
		require.ErrorIs(t, err, citymap.ErrInvalidSize)
		require.Nil(t, m)
	}
}

func TestNew_RespectsBounds(t *testing.T) {
	m, err := citymap.New(200, citymap.WithSeed(7), citymap.WithBounds(10, 5))
	require.NoError(t, err)
	for _, c := range m.All() {
		require.GreaterOrEqual(t, c.X, 0.0)
		require.Less(t, c.X, 10.0)
		require.GreaterOrEqual(t, c.Y, 0.0)
		require.Less(t, c.Y, 5.0)
	}
}

func TestWithRand_AdvancesSharedGenerator(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	a, err := citymap.New(5, citymap.WithRand(r))
	require.NoError(t, err)
	b, err := citymap.New(5, citymap.WithRand(r))
	require.NoError(t, err)

	require.NotEqual(t, a.Coordinates(), b.Coordinates())
}

func TestOptions_PanicOnNonsense(t *testing.T) {
	require.Panics(t, func() { citymap.WithRand(nil) })
	require.Panics(t, func() { citymap.WithBounds(0, 1) })
	require.Panics(t, func() { citymap.WithBounds(1, math.NaN()) })
}

func TestFromCoordinates_Distances(t *testing.T) {
	m, err := citymap.FromCoordinates([][2]float64{{0, 0}, {3, 4}, {3, 0}})
	require.NoError(t, err)
	require.Equal(t, 3, m.Len())

	require.Equal(t, 5.0, m.Dist(0, 1))
	require.Equal(t, 5.0, m.Dist(1, 0))
	require.Equal(t, 4.0, m.Dist(1, 2))
	require.Equal(t, 0.0, m.Dist(2, 2))

	d := m.Distances()
	require.Equal(t, 3, d.N())
	require.Equal(t, []float64{0, 5, 3}, d.Row(0))
}

func TestFromCoordinates_Empty(t *testing.T) {
	_, err := citymap.FromCoordinates(nil)
	require.ErrorIs(t, err, citymap.ErrInvalidSize)
}

func TestFromCities_KeepsIDs(t *testing.T) {
	m, err := citymap.FromCities([]citymap.City{{ID: 10, X: 0, Y: 0}, {ID: 20, X: 1, Y: 0}})
	require.NoError(t, err)

	require.Equal(t, []int{10, 20}, m.IDs())
	i, ok := m.IndexOf(20)
	require.True(t, ok)
	require.Equal(t, 1, i)
	_, ok = m.IndexOf(30)
	require.False(t, ok)
	require.Equal(t, 10, m.ID(0))
}

func TestFromCities_Rejects(t *testing.T) {
	_, err := citymap.FromCities([]citymap.City{{ID: 1}, {ID: 1, X: 2}})
	require.ErrorIs(t, err, citymap.ErrDuplicateCity)

	_, err = citymap.FromCities([]citymap.City{{ID: 1, X: math.Inf(1)}})
	require.ErrorIs(t, err, citymap.ErrInvalidCoordinate)
}

func TestFromCoordinates_RejectsOverflowingDistances(t *testing.T) {
	// Every coordinate is finite, but opposite points are 2e308 apart.
	_, err := citymap.FromCoordinates([][2]float64{{-1e308, 0}, {1e308, 0}, {0, 1e308}, {0, -1e308}})
	require.ErrorIs(t, err, citymap.ErrInvalidCoordinate)
	require.Contains(t, err.Error(), "overflows")

	// Large but representable distances are fine.
	m, err := citymap.FromCoordinates([][2]float64{{-1e300, 0}, {1e300, 0}})
	require.NoError(t, err)
	require.Equal(t, 2e300, m.Dist(0, 1))
}

func TestMap_DoesNotAliasInput(t *testing.T) {
	in := []citymap.City{{ID: 0, X: 1, Y: 1}, {ID: 1, X: 2, Y: 2}}
	m, err := citymap.FromCities(in)
	require.NoError(t, err)

	in[0].X = 100
	require.Equal(t, 1.0, m.City(0).X)

	out := m.Cities()
	out[1].Y = -5
	require.Equal(t, 2.0, m.City(1).Y)

	dense := m.Distances().Dense()
	dense[0][1] = 99
	require.NotEqual(t, 99.0, m.Dist(0, 1))
}

func TestNewSet_ReplicatesAreIndependentAndReproducible(t *testing.T) {
	a, err := citymap.NewSet(3, 10, 99)
	require.NoError(t, err)
	require.Len(t, a, 3)
	b, err := citymap.NewSet(3, 10, 99)
	require.NoError(t, err)

	for k := range a {
		require.Equal(t, 10, a[k].Len())
		require.Equal(t, a[k].Coordinates(), b[k].Coordinates())
	}
	require.NotEqual(t, a[0].Coordinates(), a[1].Coordinates())
	require.NotEqual(t, a[1].Coordinates(), a[2].Coordinates())
}

func TestNewSet_InvalidCount(t *testing.T) {
	_, err := citymap.NewSet(0, 10, 1)
	require.ErrorIs(t, err, citymap.ErrInvalidSize)

	_, err = citymap.NewSet(2, 0, 1)
	require.ErrorIs(t, err, citymap.ErrInvalidSize)
}
