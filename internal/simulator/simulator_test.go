package simulator

import (
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/kittybid/internal/game"
)

func newQuietSimulator(runs int, seed int64) *Simulator {
	return New(Config{
		Runs:   runs,
		Seed:   seed,
		Logger: log.NewWithOptions(io.Discard, log.Options{Level: log.ErrorLevel}),
	})
}

func composers() *game.Table {
	return game.NewTable(
		game.NewPlayer("mozart", game.MaxCard),
		game.NewPlayer("beethoven", game.HybridCard),
		game.NewPlayer("chopin", game.MinCard),
	)
}

func TestSimulatorRun(t *testing.T) {
	cfg := game.NewConfig(3, 3, 20)

	report, err := newQuietSimulator(25, 100).Run(cfg, composers)
	require.NoError(t, err)

	assert.Equal(t, 25, report.Runs)
	assert.Equal(t, 3, report.GamesPerRun)
	require.Len(t, report.Players, 3)
	assert.Equal(t, "mozart", report.Players[0].Name)
	assert.Equal(t, "max_card", report.Players[0].Strategy)

	tourneys, games, rounds := 0, 0, 0
	rate := 0.0
	for _, p := range report.Players {
		tourneys += p.TourneysWon
		games += p.GamesWon
		rounds += p.RoundsWon
		rate += p.WinRate
		assert.GreaterOrEqual(t, p.MeanPoints, 0.0)
	}
	assert.Equal(t, 25, tourneys)
	assert.Equal(t, 25*3, games)
	assert.Equal(t, 25*3*cfg.NumCardsPerHand, rounds)
	assert.InDelta(t, 1.0, rate, 1e-9)
}

func TestSimulatorSoloPlayer(t *testing.T) {
	table := func() *game.Table {
		return game.NewTable(game.NewPlayer("solo", game.NearestCard))
	}
	cfg := game.NewConfig(1, 2, 10)

	report, err := newQuietSimulator(4, 9).Run(cfg, table)
	require.NoError(t, err)

	require.Len(t, report.Players, 1)
	solo := report.Players[0]
	assert.Equal(t, 4, solo.TourneysWon)
	assert.Equal(t, 8, solo.GamesWon)
	assert.Equal(t, 4*2*cfg.NumCardsPerHand, solo.RoundsWon)
	assert.InDelta(t, 1.0, solo.WinRate, 1e-9)
}

func TestSimulatorIsDeterministic(t *testing.T) {
	cfg := game.NewConfig(3, 2, 15)
	a, err := newQuietSimulator(8, 5).Run(cfg, composers)
	require.NoError(t, err)
	b, err := newQuietSimulator(8, 5).Run(cfg, composers)
	require.NoError(t, err)

	assert.Equal(t, a, b)
}

func TestSimulatorErrors(t *testing.T) {
	t.Run("no runs", func(t *testing.T) {
		_, err := newQuietSimulator(0, 1).Run(game.NewConfig(3, 1, 12), composers)
		assert.Error(t, err)
	})

	t.Run("interactive player", func(t *testing.T) {
		table := func() *game.Table {
			return game.NewTable(game.NewPlayer("you", game.ConsoleCard), game.NewPlayer("bot", game.MaxCard))
		}
		_, err := newQuietSimulator(1, 1).Run(game.NewConfig(2, 1, 12), table)
		assert.ErrorIs(t, err, ErrInteractive)
	})

	t.Run("engine error", func(t *testing.T) {
		_, err := newQuietSimulator(1, 1).Run(game.NewConfig(3, 1, 2), composers)
		assert.ErrorIs(t, err, game.ErrNoCardsPerHand)
	})
}
