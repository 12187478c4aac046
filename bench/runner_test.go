package bench_test

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/tspbench/bench"
	"github.com/katalvlaran/tspbench/citymap"
	"github.com/katalvlaran/tspbench/tsp"
)

// tickClock advances one millisecond per call; safe for concurrent use.
func tickClock() func() time.Time {
	var ticks atomic.Int64
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	return func() time.Time {
		return base.Add(time.Duration(ticks.Add(1)) * time.Millisecond)
	}
}

// withoutTimes drops timings so that runs can be compared.
func withoutTimes(rows []bench.Row) []bench.Row {
	out := make([]bench.Row, len(rows))
	for i, r := range rows {
		r.Time = 0
		out[i] = r
	}

	return out
}

// RunnerSuite groups tests for Runner.Run and Runner.Sweep.
type RunnerSuite struct {
	suite.Suite
	ctx      context.Context
	builders []tsp.Builder
	maps     []*citymap.Map
}

func (s *RunnerSuite) SetupTest() {
	s.ctx = context.Background()
	s.builders = []tsp.Builder{tsp.NearestNeighbor{}, tsp.GreedyEdge{}}
	maps, err := citymap.NewSet(3, 10, 42)
	require.NoError(s.T(), err)
	s.maps = maps
}

// TestRowsInBuilderMajorOrder: 2 algorithms × 3 maps => 6 consistent rows.
func (s *RunnerSuite) TestRowsInBuilderMajorOrder() {
	table, err := bench.NewRunner(bench.WithClock(tickClock())).Run(s.ctx, s.builders, s.maps)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 6, table.Len())

	rows := table.Rows()
	for i, row := range rows {
		b, k := s.builders[i/3], i%3
		require.Equal(s.T(), b.Name(), row.Algorithm)
		require.Equal(s.T(), 10, row.NCity)
		require.Equal(s.T(), k, row.Replicate)
		require.Equal(s.T(), time.Millisecond, row.Time)
		require.Equal(s.T(), 0.001, row.Seconds())

		want, err := tsp.Length(s.maps[k], row.Tour)
		require.NoError(s.T(), err)
		require.Equal(s.T(), want, row.Length)
	}
	require.NotEqual(s.T(), "00000000-0000-0000-0000-000000000000", table.RunID().String())
}

// TestReplicateCountsPerSize: replicate index counts earlier maps of equal size.
func (s *RunnerSuite) TestReplicateCountsPerSize() {
	small, err := citymap.New(5, citymap.WithSeed(1))
	require.NoError(s.T(), err)
	big, err := citymap.New(7, citymap.WithSeed(2))
	require.NoError(s.T(), err)
	small2, err := citymap.New(5, citymap.WithSeed(3))
	require.NoError(s.T(), err)

	table, err := bench.NewRunner().Run(s.ctx, []tsp.Builder{tsp.MSTWalk{}}, []*citymap.Map{small, big, small2})
	require.NoError(s.T(), err)
	rows := table.Rows()
	require.Equal(s.T(), []int{0, 0, 1}, []int{rows[0].Replicate, rows[1].Replicate, rows[2].Replicate})
	require.Equal(s.T(), []int{5, 7, 5}, []int{rows[0].NCity, rows[1].NCity, rows[2].NCity})
}

// TestParallelMatchesSequential: the worker pool preserves order and content.
func (s *RunnerSuite) TestParallelMatchesSequential() {
	builders := append(s.builders, tsp.Insertion{Policy: tsp.FarthestInsertion}, tsp.Refined{Base: tsp.MSTWalk{}})
	seq, err := bench.NewRunner().Run(s.ctx, builders, s.maps)
	require.NoError(s.T(), err)

	for _, k := range []int{2, 3, 5, 64} {
		par, err := bench.NewRunner(bench.WithWorkers(k), bench.WithClock(tickClock())).Run(s.ctx, builders, s.maps)
		require.NoError(s.T(), err)
		require.Equal(s.T(), withoutTimes(seq.Rows()), withoutTimes(par.Rows()), "workers=%d", k)
	}
}

// TestFailurePropagates: the first error aborts and carries context.
func (s *RunnerSuite) TestFailurePropagates() {
	metrics := bench.NewMetrics()
	builders := []tsp.Builder{tsp.NearestNeighbor{}, tsp.Exhaustive{MaxCities: 5}}

	for _, workers := range []int{1, 4} {
		_, err := bench.NewRunner(bench.WithMetrics(metrics), bench.WithWorkers(workers)).Run(s.ctx, builders, s.maps)
		require.ErrorIs(s.T(), err, tsp.ErrTooManyCities)
		require.Contains(s.T(), err.Error(), "exhaustive on 10 cities")
	}
	require.GreaterOrEqual(s.T(), testutil.ToFloat64(metrics.Failures.WithLabelValues("exhaustive", "10")), 2.0)
}

// TestCancelledContext: ctx is checked before every pair.
func (s *RunnerSuite) TestCancelledContext() {
	ctx, cancel := context.WithCancel(s.ctx)
	cancel()

	_, err := bench.NewRunner().Run(ctx, s.builders, s.maps)
	require.ErrorIs(s.T(), err, context.Canceled)

	_, err = bench.NewRunner(bench.WithWorkers(3)).Run(ctx, s.builders, s.maps)
	require.ErrorIs(s.T(), err, context.Canceled)
}

// TestEmptyInputs yields the sentinels.
func (s *RunnerSuite) TestEmptyInputs() {
	r := bench.NewRunner()
	_, err := r.Run(s.ctx, nil, s.maps)
	require.ErrorIs(s.T(), err, bench.ErrNoBuilders)
	_, err = r.Run(s.ctx, s.builders, nil)
	require.ErrorIs(s.T(), err, bench.ErrNoMaps)

	_, err = r.Sweep(s.ctx, nil, []int{5}, 1, 1)
	require.ErrorIs(s.T(), err, bench.ErrNoBuilders)
	_, err = r.Sweep(s.ctx, s.builders, nil, 1, 1)
	require.ErrorIs(s.T(), err, bench.ErrNoMaps)
	_, err = r.Sweep(s.ctx, s.builders, []int{5}, 0, 1)
	require.ErrorIs(s.T(), err, bench.ErrNoMaps)
	_, err = r.Sweep(s.ctx, s.builders, []int{0}, 1, 1)
	require.ErrorIs(s.T(), err, citymap.ErrInvalidSize)
}

// TestSweepIsReproducible: sizes run in order, seeds fix the maps.
func (s *RunnerSuite) TestSweepIsReproducible() {
	r := bench.NewRunner()
	a, err := r.Sweep(s.ctx, s.builders, []int{5, 8}, 2, 7)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 8, a.Len())

	rows := a.Rows()
	for i, row := range rows {
		if i < 4 {
			require.Equal(s.T(), 5, row.NCity)
		} else {
			require.Equal(s.T(), 8, row.NCity)
		}
	}

	b, err := r.Sweep(s.ctx, s.builders, []int{5, 8}, 2, 7)
	require.NoError(s.T(), err)
	require.Equal(s.T(), withoutTimes(a.Rows()), withoutTimes(b.Rows()))
	require.NotEqual(s.T(), a.RunID(), b.RunID())
}

// TestSweepDropsExactSolversPerSize: a solver runs only on sizes below its
// ceiling and the skip is logged.
func (s *RunnerSuite) TestSweepDropsExactSolversPerSize() {
	core, logs := observer.New(zapcore.WarnLevel)
	r := bench.NewRunner(bench.WithLogger(zap.New(core)))
	builders := []tsp.Builder{tsp.NearestNeighbor{}, tsp.Exhaustive{}, tsp.Refined{Base: tsp.HeldKarp{MaxCities: 6}}}

	table, err := r.Sweep(s.ctx, builders, []int{5, 8, 12}, 2, 3)
	require.NoError(s.T(), err)
	require.Len(s.T(), table.Filter("nearest-neighbor"), 6)
	require.Len(s.T(), table.Filter("held-karp+2opt"), 2)
	exact := table.Filter("exhaustive")
	require.Len(s.T(), exact, 4)
	for _, row := range exact {
		require.LessOrEqual(s.T(), row.NCity, tsp.DefaultExhaustiveMaxCities)
	}
	// held-karp+2opt at 8 and 12, exhaustive at 12
	require.Equal(s.T(), 3, logs.FilterMessage("builder skipped for size").Len())

	_, err = r.Sweep(s.ctx, []tsp.Builder{tsp.Exhaustive{MaxCities: 4}}, []int{5, 6}, 1, 3)
	require.ErrorIs(s.T(), err, bench.ErrNoBuilders)
	require.Equal(s.T(), 2, logs.FilterMessage("size skipped: no builder accepts it").Len())
}

// TestLoggingAndMetrics: successful runs are logged and counted.
func (s *RunnerSuite) TestLoggingAndMetrics() {
	core, logs := observer.New(zapcore.DebugLevel)
	metrics := bench.NewMetrics()
	r := bench.NewRunner(bench.WithLogger(zap.New(core)), bench.WithMetrics(metrics))

	_, err := r.Run(s.ctx, s.builders, s.maps)
	require.NoError(s.T(), err)

	require.Equal(s.T(), 1, logs.FilterMessage("benchmark finished").Len())
	require.Equal(s.T(), 6, logs.FilterMessage("tour built").Len())
	require.Equal(s.T(), 3.0, testutil.ToFloat64(metrics.Runs.WithLabelValues("greedy-edge", "10")))
	require.Equal(s.T(), 2, testutil.CollectAndCount(metrics.Runs))

	path := filepath.Join(s.T().TempDir(), "tspbench.prom")
	require.NoError(s.T(), metrics.WriteTextfile(path))
	data, err := os.ReadFile(path)
	require.NoError(s.T(), err)
	require.Contains(s.T(), string(data), "tspbench_build_seconds")
	require.Contains(s.T(), string(data), `algorithm="nearest-neighbor"`)
}

func TestRunnerSuite(t *testing.T) {
	suite.Run(t, new(RunnerSuite))
}

func TestOptions_PanicOnInvalid(t *testing.T) {
	require.Panics(t, func() { bench.WithWorkers(0) })
	require.Panics(t, func() { bench.WithLogger(nil) })
	require.Panics(t, func() { bench.WithMetrics(nil) })
	require.Panics(t, func() { bench.WithClock(nil) })
}

func TestSweep_MapOptionsApply(t *testing.T) {
	r := bench.NewRunner(bench.WithMapOptions(citymap.WithBounds(1, 1)))
	table, err := r.Sweep(context.Background(), []tsp.Builder{tsp.NearestNeighbor{}}, []int{30}, 2, 5)
	require.NoError(t, err)
	for _, row := range table.Rows() {
		// 30 cities in the unit square: a NN tour cannot be longer than 30·√2.
		require.Less(t, row.Length, 30*1.4143)
	}
}
