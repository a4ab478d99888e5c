package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/lox/kittybid/internal/config"
	"github.com/lox/kittybid/internal/display"
	"github.com/lox/kittybid/internal/fileutil"
	"github.com/lox/kittybid/internal/game"
	"github.com/lox/kittybid/internal/randutil"
	"github.com/lox/kittybid/internal/simulator"
)

// SimulateCmd plays many seeded tournaments and compares strategies
type SimulateCmd struct {
	Config string `arg:"" help:"Tournament config (.json, .hcl, .yaml)"`
	Runs   int    `short:"n" default:"100" help:"Number of tournaments to play"`
	Seed   int64  `help:"Seed of the first run, overrides the config (0 for config or random)" env:"KITTYBID_SEED"`
	Games  int    `help:"Games per tournament, overrides the config" env:"KITTYBID_GAMES"`
	Report string `type:"path" help:"Also write the results as YAML to this file"`

	out io.Writer
}

func (c *SimulateCmd) Run(g *Globals) error {
	logger := g.Logger()
	out := c.out
	if out == nil {
		out = os.Stdout
	}

	f, err := config.Load(c.Config)
	if err != nil {
		return err
	}
	if f.HasInteractive() {
		return fmt.Errorf("%s: %w", c.Config, simulator.ErrInteractive)
	}
	if c.Games > 0 {
		f.NumGames = c.Games
	}

	seed := c.Seed
	if seed == 0 {
		seed = f.Seed
	}
	seed = randutil.ResolveSeed(seed, time.Now())

	cfg := f.GameConfig()
	logger.Info("Starting simulation", "runs", c.Runs, "seed", seed, "players", cfg.NumPlayers, "games", cfg.NumGames)

	sim := simulator.New(simulator.Config{
		Runs:   c.Runs,
		Seed:   seed,
		Logger: logger,
	})
	report, err := sim.Run(cfg, f.Table)
	if err != nil {
		return fmt.Errorf("simulation: %w", err)
	}

	printer := display.NewPrinter(out, game.FormattingOptions{})
	printer.PrintSimulation(report)

	if c.Report != "" {
		if err := fileutil.WriteYAML(c.Report, report, 0o644); err != nil {
			return err
		}
		logger.Info("Wrote report", "path", c.Report)
	}
	return nil
}
