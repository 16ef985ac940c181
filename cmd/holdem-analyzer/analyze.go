package main

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"time"

	"github.com/lox/holdem-analyzer/internal/fileutil"
	"github.com/lox/holdem-analyzer/internal/handfile"
	"github.com/lox/holdem-analyzer/internal/render"
	"github.com/lox/holdem-analyzer/internal/statistics"
)

// AnalyzeCmd reports on every hand in a record file.
type AnalyzeCmd struct {
	File   string `arg:"" optional:"" default:"cards.txt" help:"Hand record file, one hand per line" type:"path"`
	Strict bool   `help:"Stop at the first malformed record instead of skipping it"`
	Output string `short:"o" help:"Write the reports to this file instead of stdout" type:"path"`
}

func (cmd *AnalyzeCmd) Run(globals *Globals) error {
	a, err := globals.newApp(os.Stdout, os.Stderr)
	if err != nil {
		return err
	}

	ctx, cancel := setupSignalHandler(a.logger)
	defer cancel()

	return cmd.run(ctx, a)
}

func (cmd *AnalyzeCmd) run(ctx context.Context, a *app) error {
	outcomes, err := handfile.ReadFile(cmd.File)
	if err != nil {
		return fmt.Errorf("reading %s: %w", cmd.File, err)
	}
	a.logger.Info("Loaded hand records", "file", cmd.File, "records", len(outcomes), "seed", a.seed)

	out := a.out
	var buf bytes.Buffer
	if cmd.Output != "" {
		out = render.New(&buf, false)
	}

	start := time.Now()
	stats := &statistics.Statistics{}
	skipped := 0
	for _, o := range outcomes {
		if !o.OK() {
			if cmd.Strict {
				return o.Err
			}
			a.logger.Warn("Skipping malformed record", "line", o.Line, "error", o.Err)
			out.Skipped(o.Raw, o.Err)
			skipped++
			continue
		}

		report, err := a.analyzer.Analyze(ctx, a.rng, o.Record.Hole, o.Record.Board)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			if cmd.Strict {
				return fmt.Errorf("line %d: %w", o.Line, err)
			}
			a.logger.Warn("Skipping hand", "line", o.Line, "error", err)
			out.Skipped(o.Raw, err)
			skipped++
			continue
		}

		stats.Add(report)
		out.Report(stats.Hands, o.Raw, report)
	}

	out.Summary(stats, skipped, time.Since(start))

	if cmd.Output != "" {
		if err := fileutil.WriteFileAtomic(cmd.Output, buf.Bytes(), 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", cmd.Output, err)
		}
		a.logger.Info("Wrote reports", "file", cmd.Output, "hands", stats.Hands)
	}
	return nil
}
