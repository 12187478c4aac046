// Package tspbench builds, improves and benchmarks approximate Travelling
// Salesman tours over random Euclidean city maps.
//
// The module is organized as flat packages:
//
//	citymap/   cities, seeded map generation and the distance matrix
//	tsp/       tours, length evaluation, construction algorithms
//	           (nearest neighbor, greedy edge, insertion family, MST walk,
//	           exhaustive search, Held–Karp), segment reversal (2-opt)
//	           and the external solver boundary
//	bench/     benchmark runner, result table and Prometheus metrics
//	report/    summaries and CSV / XLSX / text / tour JSON exports
//	config/    viper configuration for the CLI
//	logging/   zap logger with an optional rotated JSON file
//	cmd/       the tspbench command
//
// Quick start:
//
//	m, _ := citymap.New(100, citymap.WithSeed(42))
//	tour, _ := tsp.Refined{Base: tsp.GreedyEdge{}}.Build(m)
//	length, _ := tsp.Length(m, tour)
//
// The library packages (citymap, tsp) are deterministic for a given seed,
// do not log and never share mutable state, so a single Map may be solved
// by many builders concurrently.
package tspbench
