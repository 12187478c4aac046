package tsp

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tspbench/citymap"
)

func TestReversalPass_ZeroEpsTerminates(t *testing.T) {
	maps, err := citymap.NewSet(3, 10, 42)
	require.NoError(t, err)
	for k, m := range maps {
		base, err := MSTWalk{}.Build(m)
		require.NoError(t, err)
		idx, err := toIndices(m, base)
		require.NoError(t, err)

		d := m.Distances()
		passes := 0
		for reversalPass(d, idx, 0) > 0 {
			passes++
			require.Less(t, passes, 20, "replicate %d keeps reversing", k)
		}
	}
}
