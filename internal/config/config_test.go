package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "analyzer.hcl")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.hcl"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
	assert.NoError(t, cfg.Validate())
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
simulation {
  trials     = 20000
  samples    = 4000
  workers    = 4
  chunk_size = 500
  seed       = 42
}

output {
  log_level = "debug"
  no_color  = true
}
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, 20000, cfg.Simulation.Trials)
	assert.Equal(t, 4000, cfg.Simulation.Samples)
	assert.Equal(t, 4, cfg.Simulation.Workers)
	assert.Equal(t, 500, cfg.Simulation.ChunkSize)
	assert.Equal(t, int64(42), cfg.Simulation.Seed)
	assert.Equal(t, "debug", cfg.Output.LogLevel)
	assert.True(t, cfg.Output.NoColor)
}

func TestLoadPartialAppliesDefaults(t *testing.T) {
	path := writeConfig(t, `
simulation {
  trials = 100
}
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	defaults := DefaultConfig()
	assert.Equal(t, 100, cfg.Simulation.Trials)
	assert.Equal(t, defaults.Simulation.Samples, cfg.Simulation.Samples)
	assert.Equal(t, defaults.Simulation.ChunkSize, cfg.Simulation.ChunkSize)
	assert.Equal(t, defaults.Output, cfg.Output)
}

func TestLoadInvalidHCL(t *testing.T) {
	_, err := Load(writeConfig(t, `simulation {`))
	assert.ErrorContains(t, err, "failed to parse HCL file")

	_, err = Load(writeConfig(t, `simulation { trials = "many" }`))
	assert.ErrorContains(t, err, "failed to decode HCL")

	_, err = Load(writeConfig(t, `unknown { }`))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		errMsg string
	}{
		{"zero trials", func(c *Config) { c.Simulation.Trials = 0 }, "trials must be positive"},
		{"negative samples", func(c *Config) { c.Simulation.Samples = -1 }, "samples must be positive"},
		{"negative workers", func(c *Config) { c.Simulation.Workers = -2 }, "workers cannot be negative"},
		{"zero chunk", func(c *Config) { c.Simulation.ChunkSize = 0 }, "chunk size must be positive"},
		{"bad log level", func(c *Config) { c.Output.LogLevel = "loud" }, "invalid log level"},
		{"missing block", func(c *Config) { c.Output = nil }, "required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			assert.ErrorContains(t, cfg.Validate(), tt.errMsg)
		})
	}
}
