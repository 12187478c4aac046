package bench_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tspbench/bench"
)

func TestTable_AppendRowsCopy(t *testing.T) {
	tb := bench.NewTable()
	tb.Append(bench.Row{Algorithm: "a", NCity: 5}, bench.Row{Algorithm: "b", NCity: 5})
	require.Equal(t, 2, tb.Len())

	rows := tb.Rows()
	rows[0].Algorithm = "mutated"
	require.Equal(t, "a", tb.Rows()[0].Algorithm)
}

func TestTable_ConcatKeepsOrderAndID(t *testing.T) {
	a := bench.NewTable()
	a.Append(bench.Row{Algorithm: "x", NCity: 5})
	b := bench.NewTable()
	b.Append(bench.Row{Algorithm: "y", NCity: 8}, bench.Row{Algorithm: "x", NCity: 8})

	id := a.RunID()
	out := a.Concat(b, nil)
	require.Same(t, a, out)
	require.Equal(t, id, out.RunID())
	require.Equal(t, 3, out.Len())
	require.Equal(t, 2, b.Len())

	xs := out.Filter("x")
	require.Len(t, xs, 2)
	require.Equal(t, 5, xs[0].NCity)
	require.Equal(t, 8, xs[1].NCity)
	require.Empty(t, out.Filter("missing"))
}
