package tsp

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRNGFromSeed_ZeroUsesDefault(t *testing.T) {
	a := rngFromSeed(0)
	b := rngFromSeed(defaultRNGSeed)
	require.Equal(t, a.Int63(), b.Int63())
}

func TestShuffleIntsInPlace_DeterministicPermutation(t *testing.T) {
	base := []int{0, 1, 2, 3, 4, 5, 6, 7}

	x := slices.Clone(base)
	shuffleIntsInPlace(x, rngFromSeed(5))
	y := slices.Clone(base)
	shuffleIntsInPlace(y, rngFromSeed(5))
	require.Equal(t, x, y)

	sorted := slices.Clone(x)
	slices.Sort(sorted)
	require.Equal(t, base, sorted)
}

func TestShuffleIntsInPlace_ShortSlices(t *testing.T) {
	var empty []int
	shuffleIntsInPlace(empty, rngFromSeed(1))
	one := []int{9}
	shuffleIntsInPlace(one, rngFromSeed(1))
	require.Equal(t, []int{9}, one)
}
