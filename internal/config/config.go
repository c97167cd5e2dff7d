// Package config holds the validated parameters of a search run.
//
// Values come from three layers, lowest precedence first: Default, an
// optional YAML file read by Load, and command-line flags applied by the CLI.
// The search core performs no validation of its own, so every value that
// reaches it must have passed Validate.
package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/pdrpinto/scalarstar"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Config is the full set of run parameters.
type Config struct {
	// Start is the coordinate the search begins from.
	Start float64 `yaml:"start"`

	// Target is the goal coordinate. It has no default; the CLI takes it as
	// a positional argument, a file may provide it.
	Target *float64 `yaml:"target,omitempty"`

	// Precision is the goal tolerance. Must be > 0.
	Precision float64 `yaml:"precision"`

	// Constant is the step used by the constant moves. Must be non-zero.
	Constant float64 `yaml:"constant"`

	// MaxExpansions caps the search. Zero means unlimited.
	MaxExpansions int `yaml:"max_expansions"`

	// Timeout bounds the wall-clock time of a run. Zero means none.
	Timeout time.Duration `yaml:"timeout"`

	// ProgressInterval is the minimum time between progress log records.
	ProgressInterval time.Duration `yaml:"progress_interval"`
}

// DefaultMaxExpansions keeps a run from growing without bound.
const DefaultMaxExpansions = 5_000_000

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Start:            scalarstar.DefaultStart,
		Precision:        scalarstar.DefaultPrecision,
		Constant:         scalarstar.DefaultStep,
		MaxExpansions:    DefaultMaxExpansions,
		ProgressInterval: scalarstar.DefaultProgressInterval,
	}
}

// Load reads a YAML file over base. Keys missing from the file keep the
// value they have in base.
func Load(path string, base Config) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return base, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg := base
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return base, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate reports every problem at once. Each error wraps ErrInvalidConfig.
func (c Config) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalidConfig}, args...)...))
		}
	}

	check(isFinite(c.Start), "start must be a finite number, got %v", c.Start)
	if c.Target == nil {
		errs = append(errs, fmt.Errorf("%w: target is required", ErrInvalidConfig))
	} else {
		check(isFinite(*c.Target), "target must be a finite number, got %v", *c.Target)
	}
	check(isFinite(c.Precision) && c.Precision > 0, "precision must be a finite number > 0, got %v", c.Precision)
	check(isFinite(c.Constant) && c.Constant != 0, "constant must be a finite non-zero number, got %v", c.Constant)
	check(c.MaxExpansions >= 0, "max_expansions must be >= 0, got %d", c.MaxExpansions)
	check(c.Timeout >= 0, "timeout must be >= 0, got %s", c.Timeout)
	check(c.ProgressInterval >= 0, "progress_interval must be >= 0, got %s", c.ProgressInterval)

	return errors.Join(errs...)
}

// SearchOptions converts the configuration into search options.
func (c Config) SearchOptions() []scalarstar.Option {
	return []scalarstar.Option{
		scalarstar.WithPrecision(c.Precision),
		scalarstar.WithStep(c.Constant),
		scalarstar.WithMaxExpansions(c.MaxExpansions),
		scalarstar.WithProgressInterval(c.ProgressInterval),
	}
}

func isFinite(value float64) bool {
	return !math.IsNaN(value) && !math.IsInf(value, 0)
}
