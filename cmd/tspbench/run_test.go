package main

import (
	"bytes"
	"context"
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// writeConfig stores a small, fast configuration in dir.
func writeConfig(t *testing.T, dir string) string {
	return writeSizedConfig(t, dir, "[5, 7]")
}

func writeSizedConfig(t *testing.T, dir, sizes string) string {
	t.Helper()
	body := `
bench:
  algorithms: [nearest-neighbor, greedy-edge+2opt, held-karp]
  sizes: ` + sizes + `
  replicates: 2
  seed: 3
  workers: 2
log:
  level: error
output:
  csv: ` + filepath.Join(dir, "runs.csv") + `
  xlsx: ` + filepath.Join(dir, "runs.xlsx") + `
  tour_json: ` + filepath.Join(dir, "tours.json") + `
  metrics_textfile: ` + filepath.Join(dir, "tspbench.prom") + `
`
	path := filepath.Join(dir, "tspbench.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestRun_BenchWritesExports(t *testing.T) {
	dir := t.TempDir()
	cfg := writeConfig(t, dir)

	var out bytes.Buffer
	require.NoError(t, run(context.Background(), []string{"-config", cfg}, &out))
	require.Contains(t, out.String(), "12 rows")
	require.Contains(t, out.String(), "greedy-edge+2opt")

	f, err := os.Open(filepath.Join(dir, "runs.csv"))
	require.NoError(t, err)
	defer f.Close()
	records, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 13)

	for _, name := range []string{"runs.xlsx", "tspbench.prom"} {
		info, err := os.Stat(filepath.Join(dir, name))
		require.NoError(t, err)
		require.Positive(t, info.Size())
	}
}

func TestRun_DemoAndReverse(t *testing.T) {
	dir := t.TempDir()
	cfg := writeConfig(t, dir)

	var out bytes.Buffer
	require.NoError(t, run(context.Background(), []string{"-config", cfg, "-mode", "demo", "-cities", "8"}, &out))
	require.Contains(t, out.String(), "held-karp")
	data, err := os.ReadFile(filepath.Join(dir, "tours.json"))
	require.NoError(t, err)
	require.Equal(t, 3, strings.Count(string(data), `"algorithm"`))

	out.Reset()
	require.NoError(t, run(context.Background(), []string{"-config", cfg, "-mode", "reverse", "-cities", "30"}, &out))
	require.Contains(t, out.String(), "Before")
	require.Contains(t, out.String(), "After")
}

func TestRun_DemoSkipsOversizedExactSolvers(t *testing.T) {
	dir := t.TempDir()
	cfg := writeConfig(t, dir)

	var out bytes.Buffer
	require.NoError(t, run(context.Background(), []string{"-config", cfg, "-mode", "demo", "-cities", "20"}, &out))
	require.NotContains(t, out.String(), "held-karp")
	require.Contains(t, out.String(), "nearest-neighbor")
}

func TestRun_BenchSkipsExactSolverAboveCeiling(t *testing.T) {
	dir := t.TempDir()
	cfg := writeSizedConfig(t, dir, "[5, 20]")

	var out bytes.Buffer
	require.NoError(t, run(context.Background(), []string{"-config", cfg}, &out))
	// 2 heuristics × 2 sizes × 2 replicates, held-karp only at 5 cities
	require.Contains(t, out.String(), "10 rows")

	data, err := os.ReadFile(filepath.Join(dir, "runs.csv"))
	require.NoError(t, err)
	require.Equal(t, 2, strings.Count(string(data), "held-karp"))
}

func TestRun_UnknownMode(t *testing.T) {
	cfg := writeConfig(t, t.TempDir())
	err := run(context.Background(), []string{"-config", cfg, "-mode", "plot"}, &bytes.Buffer{})
	require.ErrorIs(t, err, errUnknownMode)
}
