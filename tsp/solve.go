// Package tsp: algorithm registry.
//
// NewBuilder maps a closed set of Algorithm values to configured Builders so
// that callers (the benchmark CLI, tests) never dispatch on names or
// reflection. Names round-trip through ParseAlgorithm; a "+2opt" suffix
// wraps the builder in Refined.
package tsp

import (
	"fmt"
	"strings"
)

// Algorithm enumerates the construction algorithms known to NewBuilder.
type Algorithm int

const (
	AlgoExhaustive Algorithm = iota
	AlgoHeldKarp
	AlgoNearestNeighbor
	AlgoRepeatedNearestNeighbor
	AlgoGreedyEdge
	AlgoRandomInsertion
	AlgoNearestInsertion
	AlgoFarthestInsertion
	AlgoCheapestInsertion
	AlgoMSTWalk
)

var algorithmNames = [...]string{
	AlgoExhaustive:              "exhaustive",
	AlgoHeldKarp:                "held-karp",
	AlgoNearestNeighbor:         "nearest-neighbor",
	AlgoRepeatedNearestNeighbor: "repeated-nearest-neighbor",
	AlgoGreedyEdge:              "greedy-edge",
	AlgoRandomInsertion:         "random-insertion",
	AlgoNearestInsertion:        "nearest-insertion",
	AlgoFarthestInsertion:       "farthest-insertion",
	AlgoCheapestInsertion:       "cheapest-insertion",
	AlgoMSTWalk:                 "mst-walk",
}

// refinedSuffix marks a name whose builder is followed by ImproveTour.
const refinedSuffix = "+2opt"

// String returns the builder name of a.
func (a Algorithm) String() string {
	if a < 0 || int(a) >= len(algorithmNames) {
		return fmt.Sprintf("algorithm(%d)", int(a))
	}

	return algorithmNames[a]
}

// Algorithms lists every known algorithm in declaration order.
func Algorithms() []Algorithm {
	out := make([]Algorithm, len(algorithmNames))
	for i := range out {
		out[i] = Algorithm(i)
	}

	return out
}

// ParseAlgorithm resolves a builder name; refined reports a "+2opt" suffix.
//
// Errors: ErrUnknownAlgorithm.
func ParseAlgorithm(name string) (a Algorithm, refined bool, err error) {
	base, refined := strings.CutSuffix(strings.ToLower(strings.TrimSpace(name)), refinedSuffix)
	for i, s := range algorithmNames {
		if s == base {
			return Algorithm(i), refined, nil
		}
	}

	return 0, false, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
}

// BuilderOptions carries the knobs NewBuilder forwards to individual builders.
// Zero values select each builder's defaults.
type BuilderOptions struct {
	Start               int   // NearestNeighbor, Insertion
	Seed                int64 // RandomInsertion
	RepeatedStarts      int   // RepeatedNearestNeighbor
	ExhaustiveMaxCities int
	HeldKarpMaxCities   int
	Reversal            ReversalOptions // used by refined builders
}

// DefaultBuilderOptions returns zero knobs plus DefaultReversalOptions.
func DefaultBuilderOptions() BuilderOptions {
	return BuilderOptions{Reversal: DefaultReversalOptions()}
}

// NewBuilder returns the configured Builder for a.
//
// Errors: ErrUnknownAlgorithm.
func NewBuilder(a Algorithm, opts BuilderOptions) (Builder, error) {
	switch a {
	case AlgoExhaustive:
		return Exhaustive{MaxCities: opts.ExhaustiveMaxCities}, nil
	case AlgoHeldKarp:
		return HeldKarp{MaxCities: opts.HeldKarpMaxCities}, nil
	case AlgoNearestNeighbor:
		return NearestNeighbor{Start: opts.Start}, nil
	case AlgoRepeatedNearestNeighbor:
		return RepeatedNearestNeighbor{Starts: opts.RepeatedStarts}, nil
	case AlgoGreedyEdge:
		return GreedyEdge{}, nil
	case AlgoRandomInsertion:
		return Insertion{Policy: RandomInsertion, Start: opts.Start, Seed: opts.Seed}, nil
	case AlgoNearestInsertion:
		return Insertion{Policy: NearestInsertion, Start: opts.Start}, nil
	case AlgoFarthestInsertion:
		return Insertion{Policy: FarthestInsertion, Start: opts.Start}, nil
	case AlgoCheapestInsertion:
		return Insertion{Policy: CheapestInsertion, Start: opts.Start}, nil
	case AlgoMSTWalk:
		return MSTWalk{}, nil
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownAlgorithm, a)
	}
}

// BuildersByName resolves names such as "greedy-edge" or "greedy-edge+2opt"
// into Builders, preserving order.
//
// Errors: ErrUnknownAlgorithm on the first unknown name.
func BuildersByName(names []string, opts BuilderOptions) ([]Builder, error) {
	out := make([]Builder, 0, len(names))
	for _, name := range names {
		a, refined, err := ParseAlgorithm(name)
		if err != nil {
			return nil, err
		}
		b, err := NewBuilder(a, opts)
		if err != nil {
			return nil, err
		}
		if refined {
			b = Refined{Base: b, Options: opts.Reversal}
		}
		out = append(out, b)
	}

	return out, nil
}
