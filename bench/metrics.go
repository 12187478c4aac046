package bench

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus collectors of a benchmark on a dedicated
// registry. A nil *Metrics is valid and records nothing.
type Metrics struct {
	Registry *prometheus.Registry

	// BuildSeconds records construction time by algorithm and city count.
	BuildSeconds *prometheus.HistogramVec
	// TourLength is the length of the most recent tour per algorithm and city count.
	TourLength *prometheus.GaugeVec
	// Failures counts builder or evaluation errors.
	Failures *prometheus.CounterVec
	// Runs counts successful measurements.
	Runs *prometheus.CounterVec
}

// NewMetrics creates and registers the collectors on a fresh registry.
func NewMetrics() *Metrics {
	labels := []string{"algorithm", "n_city"}
	m := &Metrics{
		Registry: prometheus.NewRegistry(),
		BuildSeconds: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "tspbench_build_seconds",
				Help:    "Tour construction time in seconds.",
				Buckets: prometheus.ExponentialBuckets(1e-6, 4, 14),
			},
			labels,
		),
		TourLength: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{Name: "tspbench_tour_length", Help: "Length of the last tour built."},
			labels,
		),
		Failures: prometheus.NewCounterVec(
			prometheus.CounterOpts{Name: "tspbench_failures_total", Help: "Failed tour constructions."},
			labels,
		),
		Runs: prometheus.NewCounterVec(
			prometheus.CounterOpts{Name: "tspbench_runs_total", Help: "Successful tour constructions."},
			labels,
		),
	}
	m.Registry.MustRegister(m.BuildSeconds, m.TourLength, m.Failures, m.Runs)

	return m
}

func (m *Metrics) observe(r Row) {
	if m == nil {
		return
	}
	n := strconv.Itoa(r.NCity)
	m.BuildSeconds.WithLabelValues(r.Algorithm, n).Observe(r.Seconds())
	m.TourLength.WithLabelValues(r.Algorithm, n).Set(r.Length)
	m.Runs.WithLabelValues(r.Algorithm, n).Inc()
}

func (m *Metrics) fail(algorithm string, nCity int) {
	if m == nil {
		return
	}
	m.Failures.WithLabelValues(algorithm, strconv.Itoa(nCity)).Inc()
}

// WriteTextfile writes the registry in the text exposition format to path,
// for the node_exporter textfile collector.
func (m *Metrics) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, m.Registry)
}
