package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/katalvlaran/tspbench/bench"
	"github.com/katalvlaran/tspbench/citymap"
	"github.com/katalvlaran/tspbench/config"
	"github.com/katalvlaran/tspbench/logging"
	"github.com/katalvlaran/tspbench/report"
	"github.com/katalvlaran/tspbench/tsp"
)

var errUnknownMode = errors.New("unknown mode")

// app bundles what every mode needs.
type app struct {
	cfg  *config.Config
	log  *zap.Logger
	out  io.Writer
	seed int64
}

// run parses args, loads configuration and dispatches to a mode.
func run(ctx context.Context, args []string, out io.Writer) (err error) {
	fs := flag.NewFlagSet("tspbench", flag.ContinueOnError)
	fs.SetOutput(out)
	var (
		cfgPath = fs.String("config", "", "path to a YAML config file")
		mode    = fs.String("mode", "bench", "bench, demo or reverse")
		cities  = fs.Int("cities", 40, "map size for demo and reverse modes")
	)
	if err = fs.Parse(args); err != nil {
		return err
	}

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		return err
	}
	log, err := logging.New("tspbench", cfg.Log)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	seed := cfg.Bench.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	a := &app{cfg: cfg, log: log, out: out, seed: seed}
	log.Info("starting", zap.String("mode", *mode), zap.Int64("seed", seed))

	switch *mode {
	case "bench":
		return a.bench(ctx)
	case "demo":
		return a.demo(*cities)
	case "reverse":
		return a.reverse(*cities)
	default:
		return fmt.Errorf("%w %q", errUnknownMode, *mode)
	}
}

// bench runs the size sweep and writes every configured export. Exact
// solvers only run on the sizes within their ceiling.
func (a *app) bench(ctx context.Context) error {
	builders, err := tsp.BuildersByName(a.cfg.Bench.Algorithms, a.cfg.BuilderOptions(a.seed))
	if err != nil {
		return err
	}

	var metrics *bench.Metrics
	opts := []bench.Option{
		bench.WithLogger(a.log),
		bench.WithWorkers(a.cfg.Bench.Workers),
		bench.WithMapOptions(citymap.WithBounds(a.cfg.Bench.Width, a.cfg.Bench.Height)),
	}
	if a.cfg.Output.MetricsTextfile != "" {
		metrics = bench.NewMetrics()
		opts = append(opts, bench.WithMetrics(metrics))
	}

	table, err := bench.NewRunner(opts...).Sweep(ctx, builders, a.cfg.Bench.Sizes, a.cfg.Bench.Replicates, a.seed)
	if err != nil {
		return err
	}
	summaries := report.Summarize(table)

	fmt.Fprintf(a.out, "run %s: %d rows, seed %d\n\n", table.RunID(), table.Len(), a.seed)
	if err = report.WriteText(a.out, summaries); err != nil {
		return err
	}

	if p := a.cfg.Output.CSV; p != "" {
		if err = writeFile(p, func(w io.Writer) error { return report.WriteCSV(w, table) }); err != nil {
			return err
		}
		a.log.Info("csv written", zap.String("path", p))
	}
	if p := a.cfg.Output.XLSX; p != "" {
		if err = report.WriteXLSX(p, table, summaries); err != nil {
			return err
		}
		a.log.Info("xlsx written", zap.String("path", p))
	}
	if p := a.cfg.Output.MetricsTextfile; p != "" {
		if err = metrics.WriteTextfile(p); err != nil {
			return fmt.Errorf("write metrics: %w", err)
		}
		a.log.Info("metrics written", zap.String("path", p))
	}

	return nil
}

// demo runs each configured algorithm on one map and prints the tours.
// Exact solvers whose ceiling is below the map size are skipped.
func (a *app) demo(n int) error {
	m, err := a.newMap(n)
	if err != nil {
		return err
	}
	builders, err := tsp.BuildersByName(a.cfg.Bench.Algorithms, a.cfg.BuilderOptions(a.seed))
	if err != nil {
		return err
	}

	var tours []namedTour
	for _, b := range builders {
		if !tsp.Fits(b, m.Len()) {
			a.log.Warn("skipped", zap.String("algorithm", b.Name()), zap.Int("cities", m.Len()))
			continue
		}
		start := time.Now()
		t, err := b.Build(m)
		if err != nil {
			return err
		}
		elapsed := time.Since(start)
		length, err := tsp.Length(m, t)
		if err != nil {
			return err
		}
		fmt.Fprintf(a.out, "%-28s n=%d length=%8.1f time=%v\n  %v\n", b.Name(), m.Len(), length, elapsed, t)
		tours = append(tours, namedTour{name: b.Name(), tour: t})
	}

	return a.writeTours(m, tours)
}

// reverse shows the effect of the segment reversal optimizer on greedy-edge.
func (a *app) reverse(n int) error {
	m, err := a.newMap(n)
	if err != nil {
		return err
	}
	initial, err := tsp.GreedyEdge{}.Build(m)
	if err != nil {
		return err
	}
	res, err := tsp.Improve(m, initial, a.cfg.BuilderOptions(a.seed).Reversal)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Before %6.0f\nAfter  %6.0f\n(%d reversals in %d passes)\n",
		res.Before, res.After, res.Reversals, res.Passes)

	return a.writeTours(m, []namedTour{
		{name: "greedy-edge", tour: initial},
		{name: "greedy-edge+2opt", tour: res.Tour},
	})
}

func (a *app) newMap(n int) (*citymap.Map, error) {
	return citymap.New(n,
		citymap.WithSeed(a.seed),
		citymap.WithBounds(a.cfg.Bench.Width, a.cfg.Bench.Height))
}

type namedTour struct {
	name string
	tour tsp.Tour
}

// writeTours appends one JSON document per tour to output.tour_json.
func (a *app) writeTours(m *citymap.Map, tours []namedTour) error {
	p := a.cfg.Output.TourJSON
	if p == "" {
		return nil
	}
	err := writeFile(p, func(w io.Writer) error {
		for _, nt := range tours {
			if err := report.WriteTourJSON(w, m, nt.tour, nt.name); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return err
	}
	a.log.Info("tours written", zap.String("path", p), zap.Int("tours", len(tours)))

	return nil
}

// writeFile creates path and hands it to write.
func writeFile(path string, write func(io.Writer) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	return write(f)
}
