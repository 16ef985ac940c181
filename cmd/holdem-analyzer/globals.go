package main

import (
	"fmt"
	"io"
	rand "math/rand/v2"

	"github.com/charmbracelet/log"

	"github.com/lox/holdem-analyzer/analysis"
	"github.com/lox/holdem-analyzer/internal/config"
	"github.com/lox/holdem-analyzer/internal/logging"
	"github.com/lox/holdem-analyzer/internal/randutil"
	"github.com/lox/holdem-analyzer/internal/render"
)

// Globals are the flags shared by every command. Unset flags fall back to
// the config file.
type Globals struct {
	Config   string `help:"Path to HCL config file" default:"holdem-analyzer.hcl" type:"path"`
	LogLevel string `help:"Log level (debug, info, warn, error)"`
	Seed     *int64 `help:"Random seed for reproducible results"`
	Trials   int    `short:"t" help:"Equity trials per hand"`
	Samples  int    `short:"s" help:"Percentile samples per hand"`
	Workers  *int   `short:"w" help:"Simulation workers (0 = one per CPU)"`
	NoColor  bool   `help:"Disable colored output"`
}

// app is everything a command needs to run.
type app struct {
	cfg      *config.Config
	logger   *log.Logger
	rng      *rand.Rand
	seed     int64
	analyzer *analysis.Analyzer
	out      *render.Renderer
}

// settings loads the config file and applies flag overrides.
func (g *Globals) settings() (*config.Config, error) {
	cfg, err := config.Load(g.Config)
	if err != nil {
		return nil, fmt.Errorf("loading config %s: %w", g.Config, err)
	}

	if g.LogLevel != "" {
		cfg.Output.LogLevel = g.LogLevel
	}
	if g.NoColor {
		cfg.Output.NoColor = true
	}
	if g.Seed != nil {
		cfg.Simulation.Seed = *g.Seed
	}
	if g.Trials != 0 {
		cfg.Simulation.Trials = g.Trials
	}
	if g.Samples != 0 {
		cfg.Simulation.Samples = g.Samples
	}
	if g.Workers != nil {
		cfg.Simulation.Workers = *g.Workers
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// newApp wires the analyzer, logger and renderer. Reports go to stdout,
// logs to stderr.
func (g *Globals) newApp(stdout, stderr io.Writer) (*app, error) {
	cfg, err := g.settings()
	if err != nil {
		return nil, err
	}

	logger, err := logging.New(stderr, cfg.Output.LogLevel)
	if err != nil {
		return nil, err
	}

	seed := randutil.Seed(cfg.Simulation.Seed)
	logger.Debug("configured",
		"trials", cfg.Simulation.Trials,
		"samples", cfg.Simulation.Samples,
		"workers", cfg.Simulation.Workers,
		"seed", seed)

	return &app{
		cfg:    cfg,
		logger: logger,
		rng:    randutil.New(seed),
		seed:   seed,
		analyzer: analysis.NewAnalyzer(
			analysis.WithTrials(cfg.Simulation.Trials),
			analysis.WithSamples(cfg.Simulation.Samples),
			analysis.WithWorkers(cfg.Simulation.Workers),
			analysis.WithChunkSize(cfg.Simulation.ChunkSize),
			analysis.WithLogger(logger),
		),
		out: render.New(stdout, !cfg.Output.NoColor),
	}, nil
}
