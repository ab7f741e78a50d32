package main

import (
	"github.com/alecthomas/kong"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Version  kong.VersionFlag `short:"v" help:"Show version"`
	Play     PlayCmd          `cmd:"" default:"1" help:"Play an interactive game against the computer"`
	Table    TableCmd         `cmd:"" help:"Print the evaluation reference table"`
	Analyze  AnalyzeCmd       `cmd:"" help:"Evaluate a single position"`
	Simulate SimulateCmd      `cmd:"" help:"Run bulk games between strategies"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("matchsticks"),
		kong.Description("Nim-style matchstick game with a minimax opponent: whoever takes the last stick loses"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}
