// Package bench times tour construction algorithms over many city maps and
// collects the outcome in an append-only result Table.
//
// A Runner evaluates every (builder, map) pair in builder-major order: all
// maps for the first builder, then all maps for the second, and so on. For
// each pair it records the algorithm name, the number of cities, the
// replicate index (how many earlier maps in the input share that size), the
// wall-clock build time and the tour length. The produced tour is kept on
// the row for visualization consumers.
//
// Failures are never skipped: the first builder error aborts the run and is
// returned wrapped with the algorithm, size and replicate that caused it.
//
// By default the runner is sequential. WithWorkers(k) spreads the pairs over
// k goroutines on an errgroup; each worker fills its own buffer and the rows
// are merged back into the sequential order once all workers are done, so
// the table is identical to a sequential run apart from timings.
//
// Sweep is the size-sweep driver: for every requested size it generates a
// reproducible replicate set with citymap.NewSet and concatenates the
// per-size tables.
//
// Metrics (optional) exposes Prometheus collectors for build time, tour
// length and failures on a dedicated registry, and can be dumped to a
// node_exporter textfile.
package bench
