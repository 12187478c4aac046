package report

import "errors"

// ErrEmptyTable is returned by writers that need at least one row.
var ErrEmptyTable = errors.New("report: empty table")

// Sheet names used by WriteXLSX.
const (
	RunsSheet    = "runs"
	SummarySheet = "summary"
)

// runColumns is the header of the raw row exports.
var runColumns = []string{"algorithm", "n_city", "replicate", "time", "length"}

// summaryColumns is the header of the summary exports.
var summaryColumns = []string{
	"algorithm", "n_city", "count",
	"mean_time", "std_time", "mean_length", "std_length", "min_length",
}

// Summary aggregates the replicates of one algorithm at one city count.
// Times are in seconds. Standard deviations are sample deviations and are
// zero for a single replicate.
type Summary struct {
	Algorithm  string
	NCity      int
	Count      int
	MeanTime   float64
	StdTime    float64
	MeanLength float64
	StdLength  float64
	MinLength  float64
}
