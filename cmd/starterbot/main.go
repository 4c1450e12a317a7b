package main

import (
	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Version    kong.VersionFlag `short:"v" help:"Show version"`
	Run        RunCmd           `cmd:"" default:"withargs" help:"Play a match, reading directives on stdin and writing moves on stdout"`
	Replay     ReplayCmd        `cmd:"" help:"Step through a recorded transcript"`
	Strategies StrategiesCmd    `cmd:"" help:"List the available strategies"`
}

func main() {
	// STARTERBOT_* variables may come from a local .env file
	_ = godotenv.Load()

	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("starterbot"),
		kong.Description("Starter poker bot speaking the engine's line protocol"),
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
