package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/lox/kittybid/internal/config"
	"github.com/lox/kittybid/internal/display"
	"github.com/lox/kittybid/internal/game"
	"github.com/lox/kittybid/internal/randutil"
	"github.com/lox/kittybid/internal/statistics"
)

// PlayCmd runs a tournament described by a config file
type PlayCmd struct {
	Config string `arg:"" help:"Tournament config (.json, .hcl, .yaml)"`
	Seed   int64  `help:"RNG seed, overrides the config (0 for config or random)" env:"KITTYBID_SEED"`
	Games  int    `help:"Number of games, overrides the config" env:"KITTYBID_GAMES"`
	Deal   bool   `help:"Show the kitty and hands dealt each game"`
	Stats  bool   `help:"Print per-player statistics after the tournament"`

	in  io.Reader
	out io.Writer
}

func (c *PlayCmd) Run(g *Globals) error {
	logger := g.Logger()
	in, out := c.streams()

	f, err := config.Load(c.Config)
	if err != nil {
		return err
	}
	if names := f.UnknownStrategies(); len(names) > 0 {
		logger.Debug("Unknown strategy, bidding with next_card", "players", names)
	}
	if c.Games > 0 {
		f.NumGames = c.Games
	}

	seed := c.Seed
	if seed == 0 {
		seed = f.Seed
	}
	seed = randutil.ResolveSeed(seed, time.Now())
	logger.Info("Using seed", "seed", seed)

	var opts []game.EngineOption
	if f.HasInteractive() {
		opts = append(opts, game.WithConsole(game.NewConsole(in, out)))
	}
	engine := game.NewEngine(logger, randutil.New(seed), opts...)

	printer := display.NewPrinter(out, game.FormattingOptions{
		ShowDeal:      c.Deal,
		ShowStandings: true,
	})
	collector := statistics.NewCollector()
	engine.EventBus().Subscribe(printer)
	engine.EventBus().Subscribe(collector)

	cfg := f.GameConfig()
	printer.PrintTitle(fmt.Sprintf(" kittybid • %d players • %d cards • %d games ", cfg.NumPlayers, cfg.NumCards, cfg.NumGames))

	result, err := engine.PlayTourney(cfg, f.Table())
	if err != nil {
		return fmt.Errorf("tournament: %w", err)
	}

	if c.Stats {
		if err := collector.Validate(); err != nil {
			return fmt.Errorf("statistics: %w", err)
		}
		printer.PrintSummary(collector.Summary(), result.Duration)
	}
	return nil
}

func (c *PlayCmd) streams() (io.Reader, io.Writer) {
	in, out := c.in, c.out
	if in == nil {
		in = os.Stdin
	}
	if out == nil {
		out = os.Stdout
	}
	return in, out
}
