package main

import (
	"fmt"
	"io"
	"os"

	"github.com/lox/kittybid/internal/config"
)

// ValidateCmd loads a config and reports what would be played
type ValidateCmd struct {
	Config string `arg:"" help:"Tournament config (.json, .hcl, .yaml)"`

	out io.Writer
}

func (c *ValidateCmd) Run(g *Globals) error {
	logger := g.Logger()
	out := c.out
	if out == nil {
		out = os.Stdout
	}

	f, err := config.Load(c.Config)
	if err != nil {
		return err
	}
	for _, name := range f.UnknownStrategies() {
		logger.Warn("Unknown strategy, player will bid with next_card", "player", name)
	}

	cfg := f.GameConfig()
	dropped := cfg.NumCards - cfg.NumCardsPerHand*(cfg.NumPlayers+1)
	fmt.Fprintf(out, "%s: ok\n", c.Config)
	fmt.Fprintf(out, "  players:  %d\n", cfg.NumPlayers)
	fmt.Fprintf(out, "  games:    %d\n", cfg.NumGames)
	fmt.Fprintf(out, "  cards:    %d (%d per hand, %d undealt)\n", cfg.NumCards, cfg.NumCardsPerHand, dropped)
	return nil
}
