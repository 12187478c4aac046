package report

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/tspbench/bench"
)

type groupKey struct {
	algorithm string
	nCity     int
}

// Summarize groups the rows of t by (algorithm, n_city). Groups appear in
// the order of their first row, so a builder-major table yields summaries
// grouped by algorithm.
//
// Complexity: O(r) for r rows.
func Summarize(t *bench.Table) []Summary {
	var (
		order   []groupKey
		times   = make(map[groupKey][]float64)
		lengths = make(map[groupKey][]float64)
	)
	for _, r := range t.Rows() {
		k := groupKey{algorithm: r.Algorithm, nCity: r.NCity}
		if _, ok := times[k]; !ok {
			order = append(order, k)
		}
		times[k] = append(times[k], r.Seconds())
		lengths[k] = append(lengths[k], r.Length)
	}

	out := make([]Summary, 0, len(order))
	for _, k := range order {
		ts, ls := times[k], lengths[k]
		mt, st := meanStd(ts)
		ml, sl := meanStd(ls)
		out = append(out, Summary{
			Algorithm:  k.algorithm,
			NCity:      k.nCity,
			Count:      len(ts),
			MeanTime:   mt,
			StdTime:    st,
			MeanLength: ml,
			StdLength:  sl,
			MinLength:  floats.Min(ls),
		})
	}

	return out
}

// meanStd returns the mean and sample standard deviation; the deviation of
// a single value is 0.
func meanStd(x []float64) (float64, float64) {
	if len(x) == 1 {
		return x[0], 0
	}
	m, s := stat.MeanStdDev(x, nil)
	if math.IsNaN(s) {
		s = 0
	}

	return m, s
}
