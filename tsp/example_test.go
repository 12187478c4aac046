package tsp_test

import (
	"fmt"

	"github.com/katalvlaran/tspbench/citymap"
	"github.com/katalvlaran/tspbench/tsp"
)

// ExampleNearestNeighbor builds a tour of the unit square.
func ExampleNearestNeighbor() {
	m, _ := citymap.FromCoordinates([][2]float64{{0, 0}, {0, 1}, {1, 1}, {1, 0}})
	tour, _ := tsp.NearestNeighbor{}.Build(m)
	length, _ := tsp.Length(m, tour)
	fmt.Println(tour, length)
	// Output: [0 1 2 3 | 0] 4
}

// ExampleImprove removes the crossing of a bow-tie tour.
func ExampleImprove() {
	m, _ := citymap.FromCoordinates([][2]float64{{0, 0}, {0, 1}, {1, 1}, {1, 0}})
	res, _ := tsp.Improve(m, tsp.Tour{0, 2, 1, 3}, tsp.DefaultReversalOptions())
	fmt.Printf("%v %.3f -> %.3f (%d reversal)\n", res.Tour, res.Before, res.After, res.Reversals)
	// Output: [0 1 2 3 | 0] 4.828 -> 4.000 (1 reversal)
}

// ExampleBuildersByName resolves benchmark labels into builders.
func ExampleBuildersByName() {
	bs, _ := tsp.BuildersByName([]string{"greedy-edge", "greedy-edge+2opt", "held-karp"}, tsp.DefaultBuilderOptions())
	for _, b := range bs {
		fmt.Println(b.Name())
	}
	// Output:
	// greedy-edge
	// greedy-edge+2opt
	// held-karp
}
