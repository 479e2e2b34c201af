package main

import (
	"github.com/alecthomas/kong"
	"github.com/lox/roshambo/internal/config"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Version  kong.VersionFlag `short:"v" help:"Show version"`
	Play     PlayCmd          `cmd:"" default:"withargs" help:"Play an interactive match"`
	Simulate SimulateCmd      `cmd:"" help:"Run many computer-vs-computer matches and report statistics"`
	History  HistoryCmd       `cmd:"" help:"Work with saved match transcripts"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("roshambo"),
		kong.Description("Rock, paper, scissors in the terminal"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version":     version,
			"config_path": config.DefaultPath,
		},
	)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}
