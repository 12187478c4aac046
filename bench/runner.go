package bench

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/tspbench/citymap"
	"github.com/katalvlaran/tspbench/tsp"
)

// Runner executes benchmarks. It holds only configuration and may be reused.
type Runner struct {
	log     *zap.Logger
	metrics *Metrics
	workers int
	now     func() time.Time
	mapOpts []citymap.Option
}

// NewRunner returns a sequential runner with a no-op logger and no metrics.
func NewRunner(opts ...Option) *Runner {
	r := &Runner{
		log:     zap.NewNop(),
		workers: 1,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}

	return r
}

// pair is one unit of work: builder index and map index.
type pair struct {
	b, m int
}

// Run evaluates every builder on every map and returns the rows in
// builder-major order.
//
// Errors: ErrNoBuilders, ErrNoMaps, the context error when ctx is done
// between pairs, or the first builder / evaluation failure wrapped with the
// algorithm name, size and replicate.
func (r *Runner) Run(ctx context.Context, builders []tsp.Builder, maps []*citymap.Map) (*Table, error) {
	if len(builders) == 0 {
		return nil, ErrNoBuilders
	}
	if len(maps) == 0 {
		return nil, ErrNoMaps
	}

	var (
		reps  = replicateIndices(maps)
		pairs = make([]pair, 0, len(builders)*len(maps))
		bi    int
		mi    int
	)
	for bi = range builders {
		for mi = range maps {
			pairs = append(pairs, pair{b: bi, m: mi})
		}
	}

	r.log.Info("benchmark started",
		zap.Int("builders", len(builders)),
		zap.Int("maps", len(maps)),
		zap.Int("workers", r.workers))

	var (
		rows []Row
		err  error
	)
	if r.workers == 1 || len(pairs) == 1 {
		rows, err = r.runSequential(ctx, builders, maps, reps, pairs)
	} else {
		rows, err = r.runParallel(ctx, builders, maps, reps, pairs)
	}
	if err != nil {
		r.log.Error("benchmark failed", zap.Error(err))
		return nil, err
	}

	t := NewTable()
	t.Append(rows...)
	r.log.Info("benchmark finished",
		zap.String("run_id", t.RunID().String()),
		zap.Int("rows", t.Len()))

	return t, nil
}

func (r *Runner) runSequential(ctx context.Context, builders []tsp.Builder, maps []*citymap.Map, reps []int, pairs []pair) ([]Row, error) {
	rows := make([]Row, 0, len(pairs))
	for _, p := range pairs {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		row, err := r.measure(builders[p.b], maps[p.m], reps[p.m])
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}

	return rows, nil
}

// runParallel deals pair q to worker q mod k. Each worker appends to its own
// buffer, so buffer w holds pairs w, w+k, w+2k… in order and the merge is a
// plain interleave.
func (r *Runner) runParallel(ctx context.Context, builders []tsp.Builder, maps []*citymap.Map, reps []int, pairs []pair) ([]Row, error) {
	var (
		k       = min(r.workers, len(pairs))
		buffers = make([][]Row, k)
	)
	g, gctx := errgroup.WithContext(ctx)
	for w := 0; w < k; w++ {
		g.Go(func() error {
			buf := make([]Row, 0, len(pairs)/k+1)
			for q := w; q < len(pairs); q += k {
				if err := gctx.Err(); err != nil {
					return err
				}
				p := pairs[q]
				row, err := r.measure(builders[p.b], maps[p.m], reps[p.m])
				if err != nil {
					return err
				}
				buf = append(buf, row)
			}
			buffers[w] = buf

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	rows := make([]Row, len(pairs))
	for q := range rows {
		rows[q] = buffers[q%k][q/k]
	}

	return rows, nil
}

// measure times one Build call and evaluates the tour.
func (r *Runner) measure(b tsp.Builder, m *citymap.Map, rep int) (Row, error) {
	var (
		name = b.Name()
		n    = m.Len()
	)
	start := r.now()
	tour, err := b.Build(m)
	elapsed := r.now().Sub(start)
	if err != nil {
		r.metrics.fail(name, n)
		return Row{}, fmt.Errorf("bench: %s on %d cities (replicate %d): %w", name, n, rep, err)
	}
	length, err := tsp.Length(m, tour)
	if err != nil {
		r.metrics.fail(name, n)
		return Row{}, fmt.Errorf("bench: %s on %d cities (replicate %d): %w", name, n, rep, err)
	}

	row := Row{Algorithm: name, NCity: n, Replicate: rep, Time: elapsed, Length: length, Tour: tour}
	r.metrics.observe(row)
	r.log.Debug("tour built",
		zap.String("algorithm", name),
		zap.Int("n_city", n),
		zap.Int("replicate", rep),
		zap.Duration("time", elapsed),
		zap.Float64("length", length))

	return row, nil
}

// replicateIndices returns, for each map, the number of earlier maps with
// the same number of cities.
func replicateIndices(maps []*citymap.Map) []int {
	var (
		out  = make([]int, len(maps))
		seen = make(map[int]int)
	)
	for i, m := range maps {
		out[i] = seen[m.Len()]
		seen[m.Len()]++
	}

	return out
}

// Sweep generates replicates maps for every size in sizes (seeded, via
// citymap.NewSet) and runs all builders on them, one size after another.
// The per-size tables are concatenated into one table.
//
// Builders whose size ceiling is below n (tsp.Fits) are dropped for that size
// only; a size no builder accepts is skipped.
//
// Errors: ErrNoBuilders (also when no builder accepts any size), ErrNoMaps
// (no sizes or replicates < 1), map generation errors, and any Run error.
func (r *Runner) Sweep(ctx context.Context, builders []tsp.Builder, sizes []int, replicates int, seed int64) (*Table, error) {
	if len(builders) == 0 {
		return nil, ErrNoBuilders
	}
	if len(sizes) == 0 || replicates < 1 {
		return nil, fmt.Errorf("%w: %d sizes, %d replicates", ErrNoMaps, len(sizes), replicates)
	}

	out := NewTable()
	for _, n := range sizes {
		fit := r.fitting(builders, n)
		if len(fit) == 0 {
			r.log.Warn("size skipped: no builder accepts it", zap.Int("n_city", n))
			continue
		}
		maps, err := citymap.NewSet(replicates, n, sizeSeed(seed, n), r.mapOpts...)
		if err != nil {
			return nil, fmt.Errorf("bench: generate %d maps of %d cities: %w", replicates, n, err)
		}
		t, err := r.Run(ctx, fit, maps)
		if err != nil {
			return nil, err
		}
		out.Concat(t)
		r.log.Info("size done", zap.Int("n_city", n), zap.Int("rows", t.Len()))
	}

	if out.Len() == 0 {
		return nil, fmt.Errorf("%w: none accepts sizes %v", ErrNoBuilders, sizes)
	}

	return out, nil
}

// fitting returns the builders that accept n cities, logging the others.
func (r *Runner) fitting(builders []tsp.Builder, n int) []tsp.Builder {
	fit := make([]tsp.Builder, 0, len(builders))
	for _, b := range builders {
		if !tsp.Fits(b, n) {
			r.log.Warn("builder skipped for size",
				zap.String("algorithm", b.Name()),
				zap.Int("n_city", n))
			continue
		}
		fit = append(fit, b)
	}

	return fit
}

// sizeSeed gives every size its own replicate stream.
func sizeSeed(seed int64, n int) int64 {
	return seed ^ int64(n)<<32
}
