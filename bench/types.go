package bench

import (
	"errors"
	"time"

	"github.com/katalvlaran/tspbench/tsp"
)

// Sentinel errors.
var (
	// ErrNoBuilders: Run or Sweep received an empty builder list.
	ErrNoBuilders = errors.New("bench: no builders")

	// ErrNoMaps: Run received no maps, or Sweep no sizes / replicates.
	ErrNoMaps = errors.New("bench: no maps")
)

// Row is one benchmark measurement.
type Row struct {
	Algorithm string
	NCity     int
	Replicate int
	Time      time.Duration
	Length    float64
	Tour      tsp.Tour
}

// Seconds returns the build time in seconds, the unit of the time column.
func (r Row) Seconds() float64 { return r.Time.Seconds() }
