package main

import (
	"github.com/alecthomas/kong"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Globals

	Version kong.VersionFlag `short:"v" help:"Show version"`
	Analyze AnalyzeCmd       `cmd:"" default:"withargs" help:"Analyze every hand in a record file"`
	Eval    EvalCmd          `cmd:"" help:"Show the strength of a 5-7 card hand"`
	Equity  EquityCmd        `cmd:"" help:"Analyze a single hand given on the command line"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("holdem-analyzer"),
		kong.Description("Texas Hold'em hand strength, equity and board threat analysis"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	err := ctx.Run(&cli.Globals)
	ctx.FatalIfErrorf(err)
}
