package config

import (
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withTarget(cfg Config, target float64) Config {
	cfg.Target = &target
	return cfg
}

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, 0.5, cfg.Start)
	assert.Equal(t, 1e-6, cfg.Precision)
	assert.Equal(t, 0.00589375, cfg.Constant)
	assert.Equal(t, DefaultMaxExpansions, cfg.MaxExpansions)
	assert.Equal(t, 50*time.Millisecond, cfg.ProgressInterval)
	assert.Nil(t, cfg.Target)
}

func TestValidate_Valid(t *testing.T) {
	assert.NoError(t, withTarget(Default(), 0.75).Validate())
}

func TestValidate_Errors(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		message string
	}{
		{"missing target", func(c *Config) { c.Target = nil }, "target is required"},
		{"nan target", func(c *Config) { nan := math.NaN(); c.Target = &nan }, "target must be a finite number"},
		{"infinite start", func(c *Config) { c.Start = math.Inf(1) }, "start must be a finite number"},
		{"zero precision", func(c *Config) { c.Precision = 0 }, "precision must be a finite number > 0"},
		{"negative precision", func(c *Config) { c.Precision = -1e-3 }, "precision must be a finite number > 0"},
		{"zero constant", func(c *Config) { c.Constant = 0 }, "constant must be a finite non-zero number"},
		{"nan constant", func(c *Config) { c.Constant = math.NaN() }, "constant must be a finite non-zero number"},
		{"negative budget", func(c *Config) { c.MaxExpansions = -1 }, "max_expansions must be >= 0"},
		{"negative timeout", func(c *Config) { c.Timeout = -time.Second }, "timeout must be >= 0"},
		{"negative interval", func(c *Config) { c.ProgressInterval = -time.Second }, "progress_interval must be >= 0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := withTarget(Default(), 0.75)
			tt.mutate(&cfg)

			err := cfg.Validate()

			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidConfig)
			assert.Contains(t, err.Error(), tt.message)
		})
	}
}

func TestValidate_ReportsAllProblems(t *testing.T) {
	cfg := Default()
	cfg.Precision = 0
	cfg.Constant = 0

	err := cfg.Validate()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "target is required")
	assert.Contains(t, err.Error(), "precision")
	assert.Contains(t, err.Error(), "constant")
}

func TestLoad_OverridesOnlyPresentKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.yaml")
	content := `
target: 0.9
precision: 1e-7
max_expansions: 1000
timeout: 2s
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := Load(path, Default())

	require.NoError(t, err)
	require.NotNil(t, cfg.Target)
	assert.Equal(t, 0.9, *cfg.Target)
	assert.Equal(t, 1e-7, cfg.Precision)
	assert.Equal(t, 1000, cfg.MaxExpansions)
	assert.Equal(t, 2*time.Second, cfg.Timeout)
	assert.Equal(t, 0.5, cfg.Start)
	assert.Equal(t, 0.00589375, cfg.Constant)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_MissingFile(t *testing.T) {
	base := Default()

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"), base)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "read config")
	assert.Equal(t, base, cfg)
}

func TestLoad_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("precision: [1, 2"), 0644))

	_, err := Load(path, Default())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse config")
}

func TestSearchOptions(t *testing.T) {
	cfg := withTarget(Default(), 0.75)

	assert.Len(t, cfg.SearchOptions(), 4)
}
