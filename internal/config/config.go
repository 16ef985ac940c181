// Package config loads the analyzer's HCL configuration file.
package config

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// DefaultPath is the config file read when none is given.
const DefaultPath = "holdem-analyzer.hcl"

// Config represents the complete analyzer configuration
type Config struct {
	Simulation *SimulationSettings `hcl:"simulation,block"`
	Output     *OutputSettings     `hcl:"output,block"`
}

// SimulationSettings controls the Monte Carlo runs
type SimulationSettings struct {
	Trials    int   `hcl:"trials,optional"`
	Samples   int   `hcl:"samples,optional"`
	Workers   int   `hcl:"workers,optional"`    // 0 = one per CPU
	ChunkSize int   `hcl:"chunk_size,optional"` // trials between cancellation checks
	Seed      int64 `hcl:"seed,optional"`       // 0 = seed from the clock
}

// OutputSettings controls logging and report rendering
type OutputSettings struct {
	LogLevel string `hcl:"log_level,optional"`
	NoColor  bool   `hcl:"no_color,optional"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Simulation: &SimulationSettings{
			Trials:    5000,
			Samples:   1000,
			Workers:   0,
			ChunkSize: 1000,
			Seed:      0,
		},
		Output: &OutputSettings{
			LogLevel: "warn",
			NoColor:  false,
		},
	}
}

// Load reads configuration from an HCL file. A missing file yields the defaults.
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var config Config
	diags = gohcl.DecodeBody(file.Body, nil, &config)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	config.applyDefaults()
	return &config, nil
}

// applyDefaults fills blocks and values left out of the file.
func (c *Config) applyDefaults() {
	defaults := DefaultConfig()

	if c.Simulation == nil {
		c.Simulation = defaults.Simulation
	}
	if c.Simulation.Trials == 0 {
		c.Simulation.Trials = defaults.Simulation.Trials
	}
	if c.Simulation.Samples == 0 {
		c.Simulation.Samples = defaults.Simulation.Samples
	}
	if c.Simulation.ChunkSize == 0 {
		c.Simulation.ChunkSize = defaults.Simulation.ChunkSize
	}

	if c.Output == nil {
		c.Output = defaults.Output
	}
	if c.Output.LogLevel == "" {
		c.Output.LogLevel = defaults.Output.LogLevel
	}
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Simulation == nil || c.Output == nil {
		return fmt.Errorf("simulation and output settings are required")
	}

	if c.Simulation.Trials <= 0 {
		return fmt.Errorf("trials must be positive")
	}

	if c.Simulation.Samples <= 0 {
		return fmt.Errorf("samples must be positive")
	}

	if c.Simulation.Workers < 0 {
		return fmt.Errorf("workers cannot be negative")
	}

	if c.Simulation.ChunkSize <= 0 {
		return fmt.Errorf("chunk size must be positive")
	}

	switch c.Output.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level %q: must be debug, info, warn or error", c.Output.LogLevel)
	}

	return nil
}
