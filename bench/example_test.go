package bench_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/tspbench/bench"
	"github.com/katalvlaran/tspbench/citymap"
	"github.com/katalvlaran/tspbench/tsp"
)

// ExampleRunner_Run benchmarks two builders on two replicate maps.
func ExampleRunner_Run() {
	maps, _ := citymap.NewSet(2, 12, 1)
	builders := []tsp.Builder{tsp.NearestNeighbor{}, tsp.Refined{Base: tsp.NearestNeighbor{}}}

	table, err := bench.NewRunner().Run(context.Background(), builders, maps)
	if err != nil {
		fmt.Println(err)
		return
	}
	for _, row := range table.Rows() {
		fmt.Println(row.Algorithm, row.NCity, row.Replicate)
	}
	// Output:
	// nearest-neighbor 12 0
	// nearest-neighbor 12 1
	// nearest-neighbor+2opt 12 0
	// nearest-neighbor+2opt 12 1
}
