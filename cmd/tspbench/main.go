// Command tspbench builds, improves and benchmarks TSP tours on random
// Euclidean city maps.
//
// Modes:
//
//	bench    sweep the configured sizes and replicates, print a summary
//	         table and write the configured exports (default)
//	demo     run every configured algorithm once on a single map
//	reverse  show what segment reversal does to a greedy-edge tour
//
// Usage:
//
//	tspbench [-config tspbench.yaml] [-mode bench|demo|reverse] [-cities 40]
//
// Configuration comes from defaults, the YAML file and TSPBENCH_* variables;
// see package config. A zero bench.seed seeds the run from the clock.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "tspbench:", err)
		os.Exit(1)
	}
}
