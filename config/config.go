// Package config loads the tspbench CLI configuration with viper: built-in
// defaults, an optional YAML file and TSPBENCH_* environment overrides
// (TSPBENCH_BENCH_REPLICATES → bench.replicates), followed by Validate.
package config

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/tspbench/tsp"
)

// ErrInvalidConfig is wrapped by every Validate failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// EnvPrefix is the environment variable prefix.
const EnvPrefix = "TSPBENCH"

// Config holds the whole CLI configuration.
type Config struct {
	Bench  BenchConfig  `mapstructure:"bench"`
	Solver SolverConfig `mapstructure:"solver"`
	Log    LogConfig    `mapstructure:"log"`
	Output OutputConfig `mapstructure:"output"`
}

// BenchConfig selects algorithms and the size sweep.
type BenchConfig struct {
	Algorithms []string `mapstructure:"algorithms"`
	Sizes      []int    `mapstructure:"sizes"`
	Replicates int      `mapstructure:"replicates"`
	// Seed 0 asks the CLI to seed from the clock.
	Seed    int64   `mapstructure:"seed"`
	Workers int     `mapstructure:"workers"`
	Width   float64 `mapstructure:"width"`
	Height  float64 `mapstructure:"height"`
}

// SolverConfig carries per-algorithm knobs.
type SolverConfig struct {
	Start               int     `mapstructure:"start"`
	RepeatedStarts      int     `mapstructure:"repeated_starts"`
	ExhaustiveMaxCities int     `mapstructure:"exhaustive_max_cities"`
	HeldKarpMaxCities   int     `mapstructure:"held_karp_max_cities"`
	MaxPasses           int     `mapstructure:"max_passes"`
	Eps                 float64 `mapstructure:"eps"`
}

// LogConfig configures logging.New. An empty File disables the file core.
type LogConfig struct {
	Level      string `mapstructure:"level"`
	File       string `mapstructure:"file"`
	MaxSize    int    `mapstructure:"max_size"` // MB
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAge     int    `mapstructure:"max_age"` // days
	Compress   bool   `mapstructure:"compress"`
	Dev        bool   `mapstructure:"dev"`
}

// OutputConfig lists optional export targets; empty paths are skipped.
type OutputConfig struct {
	CSV             string `mapstructure:"csv"`
	XLSX            string `mapstructure:"xlsx"`
	TourJSON        string `mapstructure:"tour_json"`
	MetricsTextfile string `mapstructure:"metrics_textfile"`
}

// DefaultAlgorithms is the benchmark line-up when none is configured.
// Exact solvers are left out: they do not scale to the default sizes.
var DefaultAlgorithms = []string{
	"nearest-neighbor",
	"repeated-nearest-neighbor",
	"greedy-edge",
	"random-insertion",
	"nearest-insertion",
	"farthest-insertion",
	"cheapest-insertion",
	"mst-walk",
	"greedy-edge+2opt",
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("bench.algorithms", DefaultAlgorithms)
	v.SetDefault("bench.sizes", []int{10, 50, 100, 200})
	v.SetDefault("bench.replicates", 5)
	v.SetDefault("bench.seed", 0)
	v.SetDefault("bench.workers", 1)
	v.SetDefault("bench.width", 900.0)
	v.SetDefault("bench.height", 600.0)

	v.SetDefault("solver.start", 0)
	v.SetDefault("solver.repeated_starts", 0)
	v.SetDefault("solver.exhaustive_max_cities", tsp.DefaultExhaustiveMaxCities)
	v.SetDefault("solver.held_karp_max_cities", tsp.DefaultHeldKarpMaxCities)
	v.SetDefault("solver.max_passes", tsp.DefaultMaxPasses)
	v.SetDefault("solver.eps", tsp.DefaultEps)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", "")
	v.SetDefault("log.max_size", 10)
	v.SetDefault("log.max_backups", 3)
	v.SetDefault("log.max_age", 7)
	v.SetDefault("log.compress", false)
	v.SetDefault("log.dev", false)

	v.SetDefault("output.csv", "")
	v.SetDefault("output.xlsx", "")
	v.SetDefault("output.tour_json", "")
	v.SetDefault("output.metrics_textfile", "")
}

// Load reads the configuration. A non-empty path must point at a readable
// config file; with an empty path "tspbench.yaml" is looked up in "." and
// "./configs" and may be absent.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	} else {
		v.SetConfigName("tspbench")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./configs")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("config: read: %w", err)
			}
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks ranges and names and reports every problem at once.
func (c *Config) Validate() error {
	var errs []string

	if len(c.Bench.Algorithms) == 0 {
		errs = append(errs, "bench.algorithms must not be empty")
	}
	for _, name := range c.Bench.Algorithms {
		if _, _, err := tsp.ParseAlgorithm(name); err != nil {
			errs = append(errs, fmt.Sprintf("bench.algorithms: unknown algorithm %q", name))
		}
	}
	if len(c.Bench.Sizes) == 0 {
		errs = append(errs, "bench.sizes must not be empty")
	}
	for _, n := range c.Bench.Sizes {
		if n < 1 {
			errs = append(errs, fmt.Sprintf("bench.sizes must be positive, got %d", n))
		}
	}
	if c.Bench.Replicates < 1 {
		errs = append(errs, fmt.Sprintf("bench.replicates must be positive, got %d", c.Bench.Replicates))
	}
	if c.Bench.Workers < 1 {
		errs = append(errs, fmt.Sprintf("bench.workers must be positive, got %d", c.Bench.Workers))
	}
	if !(c.Bench.Width > 0) || !(c.Bench.Height > 0) {
		errs = append(errs, fmt.Sprintf("bench.width and bench.height must be positive, got %vx%v", c.Bench.Width, c.Bench.Height))
	}

	if c.Solver.Start < 0 {
		errs = append(errs, "solver.start must not be negative")
	}
	if c.Solver.RepeatedStarts < 0 {
		errs = append(errs, "solver.repeated_starts must not be negative")
	}
	if c.Solver.ExhaustiveMaxCities < 0 || c.Solver.HeldKarpMaxCities < 0 {
		errs = append(errs, "solver max cities must not be negative")
	}
	if c.Solver.MaxPasses < 0 {
		errs = append(errs, "solver.max_passes must not be negative")
	}
	if !(c.Solver.Eps >= 0) {
		errs = append(errs, "solver.eps must not be negative")
	}
	if len(c.Bench.Sizes) > 0 {
		if c.Solver.Start >= slices.Min(c.Bench.Sizes) {
			errs = append(errs, fmt.Sprintf("solver.start %d must be below the smallest size", c.Solver.Start))
		}
	}

	if _, err := zapcore.ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, fmt.Sprintf("log.level: %v", err))
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w:\n  - %s", ErrInvalidConfig, strings.Join(errs, "\n  - "))
	}

	return nil
}

// BuilderOptions converts the solver section for tsp.NewBuilder.
// seed is the effective run seed used by randomized builders.
func (c *Config) BuilderOptions(seed int64) tsp.BuilderOptions {
	return tsp.BuilderOptions{
		Start:               c.Solver.Start,
		Seed:                seed,
		RepeatedStarts:      c.Solver.RepeatedStarts,
		ExhaustiveMaxCities: c.Solver.ExhaustiveMaxCities,
		HeldKarpMaxCities:   c.Solver.HeldKarpMaxCities,
		Reversal: tsp.ReversalOptions{
			MaxPasses: c.Solver.MaxPasses,
			Eps:       c.Solver.Eps,
		},
	}
}
