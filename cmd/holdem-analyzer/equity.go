package main

import (
	"context"
	"os"
	"strings"

	"github.com/lox/holdem-analyzer/internal/handfile"
)

// EquityCmd analyzes one hand given as flags.
type EquityCmd struct {
	Hole  string `arg:"" help:"Two hole cards, e.g. 'As Kd'"`
	Board string `short:"b" help:"Board cards (0, 3, 4 or 5), e.g. 'Qh Jc 2d'"`
}

func (cmd *EquityCmd) Run(globals *Globals) error {
	a, err := globals.newApp(os.Stdout, os.Stderr)
	if err != nil {
		return err
	}

	ctx, cancel := setupSignalHandler(a.logger)
	defer cancel()

	return cmd.run(ctx, a)
}

func (cmd *EquityCmd) run(ctx context.Context, a *app) error {
	raw := strings.TrimSpace(cmd.Hole + " " + cmd.Board)
	record, err := handfile.ParseRecord(raw)
	if err != nil {
		return err
	}

	report, err := a.analyzer.Analyze(ctx, a.rng, record.Hole, record.Board)
	if err != nil {
		return err
	}
	a.out.Report(1, raw, report)
	return nil
}
