package bench

import (
	"time"

	"go.uber.org/zap"

	"github.com/katalvlaran/tspbench/citymap"
)

// Option configures a Runner.
type Option func(*Runner)

// WithLogger sets the structured logger. Panics on nil.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("bench: WithLogger(nil)")
	}

	return func(r *Runner) { r.log = l }
}

// WithMetrics records every measurement into m. Panics on nil.
func WithMetrics(m *Metrics) Option {
	if m == nil {
		panic("bench: WithMetrics(nil)")
	}

	return func(r *Runner) { r.metrics = m }
}

// WithWorkers sets the number of concurrent workers (default 1). Panics when n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic("bench: WithWorkers requires n >= 1")
	}

	return func(r *Runner) { r.workers = n }
}

// WithClock replaces time.Now, e.g. with a fake clock in tests. Panics on nil.
func WithClock(now func() time.Time) Option {
	if now == nil {
		panic("bench: WithClock(nil)")
	}

	return func(r *Runner) { r.now = now }
}

// WithMapOptions forwards generation options (e.g. citymap.WithBounds) to
// the maps Sweep creates. Seeding is always controlled by Sweep.
func WithMapOptions(opts ...citymap.Option) Option {
	return func(r *Runner) { r.mapOpts = append(r.mapOpts, opts...) }
}
