package tsp

import (
	"errors"

	"github.com/katalvlaran/tspbench/citymap"
)

// Sentinel errors. Match with errors.Is; returned errors carry context.
var (
	// ErrTourMismatch: a tour's city set differs from its map's
	// (missing, duplicate or foreign identifier, or wrong length).
	ErrTourMismatch = errors.New("tsp: tour does not match city map")

	// ErrContractViolation: a construction algorithm (including an external
	// solver) produced something that is not a permutation of the map.
	ErrContractViolation = errors.New("tsp: algorithm returned an invalid tour")

	// ErrTooManyCities: an exact algorithm was asked to solve a map larger
	// than its configured ceiling.
	ErrTooManyCities = errors.New("tsp: too many cities for exact search")

	// ErrSolverFailed: an external solver returned an error.
	ErrSolverFailed = errors.New("tsp: external solver failed")

	// ErrInvalidOptions: negative caps or tolerances, nil solvers or bases.
	ErrInvalidOptions = errors.New("tsp: invalid options")

	// ErrUnknownAlgorithm: NewBuilder received an unknown Algorithm.
	ErrUnknownAlgorithm = errors.New("tsp: unknown algorithm")
)

// Tour is an open cyclic sequence of city IDs. The closing edge from the
// last city to the first is implied.
type Tour []int

// Builder constructs an initial tour for a map. Implementations keep only
// configuration, so one Builder may be reused across maps and goroutines.
type Builder interface {
	// Name is a stable label used in benchmark tables.
	Name() string
	// Build returns a permutation of m's city IDs.
	Build(m *citymap.Map) (Tour, error)
}

// SizeLimited is implemented by builders that refuse maps above a ceiling
// with ErrTooManyCities.
type SizeLimited interface {
	Builder
	// MaxSize is the largest number of cities Build accepts.
	MaxSize() int
}

// Fits reports whether b accepts maps of n cities. A negative ceiling counts
// as fitting so that Build reports ErrInvalidOptions.
func Fits(b Builder, n int) bool {
	l, ok := b.(SizeLimited)
	if !ok {
		return true
	}
	limit := l.MaxSize()

	return limit < 0 || n <= limit
}

// Result is the outcome of an exact solver.
type Result struct {
	Tour   Tour
	Length float64
}

// Edge is an undirected connection between two canonical city indices.
type Edge struct {
	I, J   int
	Length float64
}

const (
	// DefaultEps is the strict improvement threshold of the optimizer.
	DefaultEps = 1e-12

	// DefaultMaxPasses caps optimizer sweeps over all segments.
	DefaultMaxPasses = 1000

	// DefaultExhaustiveMaxCities bounds Exhaustive (10 cities ≈ 181k tours).
	DefaultExhaustiveMaxCities = 10

	// DefaultHeldKarpMaxCities bounds HeldKarp memory (n·2ⁿ floats).
	DefaultHeldKarpMaxCities = 16
)
