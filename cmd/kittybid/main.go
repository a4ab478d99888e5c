package main

import (
	"os"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"

	"github.com/lox/kittybid/internal/display"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Globals

	Version  kong.VersionFlag `short:"V" help:"Show version"`
	Play     PlayCmd          `cmd:"" default:"withargs" help:"Play a tournament (default command)"`
	Simulate SimulateCmd      `cmd:"" help:"Play many seeded tournaments and compare strategies"`
	Validate ValidateCmd      `cmd:"" help:"Check a tournament config without playing it"`
}

func newParser(cli *CLI, options ...kong.Option) (*kong.Kong, error) {
	options = append([]kong.Option{
		kong.Name("kittybid"),
		kong.Description("Card-bidding tournament simulator"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	}, options...)
	return kong.New(cli, options...)
}

func main() {
	// A local .env may set KITTYBID_* defaults; its absence is fine.
	_ = godotenv.Load()

	var cli CLI
	parser, err := newParser(&cli)
	if err != nil {
		panic(err)
	}
	ctx, err := parser.Parse(os.Args[1:])
	parser.FatalIfErrorf(err)

	if cli.NoColor {
		display.DisableColor()
	}

	err = ctx.Run(&cli.Globals)
	ctx.FatalIfErrorf(err)
}
