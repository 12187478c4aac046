package citymap

import (
	"fmt"
	"math/rand"
)

// NewSet returns count independent maps of n cities each (benchmark
// replicates). Replicate k is generated from a seed derived from (seed, k),
// so the set is reproducible and the members are decorrelated.
//
// Errors: ErrInvalidSize when count < 1 or n < 1.
//
// Complexity: O(count·n²).
func NewSet(count, n int, seed int64, opts ...Option) ([]*Map, error) {
	if count < 1 {
		return nil, fmt.Errorf("%w: replicate count %d", ErrInvalidSize, count)
	}
	maps := make([]*Map, count)

	var (
		k   int
		m   *Map
		err error
	)
	for k = 0; k < count; k++ {
		r := rand.New(rand.NewSource(deriveSeed(seed, uint64(k))))
		// The derived generator goes last so it wins over any RNG option in opts.
		m, err = New(n, append(append([]Option(nil), opts...), WithRand(r))...)
		if err != nil {
			return nil, err
		}
		maps[k] = m
	}

	return maps, nil
}

// deriveSeed mixes a parent seed and a stream identifier with the SplitMix64
// finalizer.
func deriveSeed(parent int64, stream uint64) int64 {
	var x uint64
	x = uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return int64(x)
}
