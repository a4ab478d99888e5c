package display

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/lox/kittybid/internal/game"
	"github.com/lox/kittybid/internal/simulator"
	"github.com/lox/kittybid/internal/statistics"
)

func TestMain(m *testing.M) {
	DisableColor()
	m.Run()
}

func TestPrinterOnEvent(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, game.FormattingOptions{})

	p.OnEvent(game.NewRoundEndEvent(1, 1, 9, []game.Bid{{Bidder: "mozart", Offer: 4, PrizeCard: 9}}, "mozart", time.Now()))
	p.OnEvent(game.NewGameEndEvent(1, "mozart", nil, time.Now()))

	out := buf.String()
	assert.Contains(t, out, "prize 9")
	assert.Contains(t, out, "mozart bids 4")
	assert.Contains(t, out, "Game 1 winner: mozart")
	assert.True(t, strings.HasSuffix(out, "\n"))
}

func TestPrinterSkipsUnknownEvents(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf, game.FormattingOptions{}).OnEvent(nil)
	assert.Empty(t, buf.String())
}

func TestPrintTitle(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf, game.FormattingOptions{}).PrintTitle("kittybid")
	assert.Contains(t, buf.String(), "kittybid")
}

func TestPrintSummary(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, game.FormattingOptions{})

	p.PrintSummary([]statistics.PlayerTally{
		{Name: "mozart", Strategy: game.MaxCard, Games: 2, GamesWon: 2, RoundsWon: 5, SumPoints: 30, SumSq: 458, BestGame: 17},
		{Name: "chopin", Strategy: game.NearestCard, Games: 2, RoundsWon: 3, SumPoints: 12, SumSq: 80, BestGame: 8},
	}, 1500*time.Millisecond)

	out := buf.String()
	for _, want := range []string{"Player", "Strategy", "mozart", "max_card", "15.00", "chopin", "nearest_card", "Completed in 1.5s"} {
		assert.Contains(t, out, want)
	}
}

func TestPrintSimulation(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, game.FormattingOptions{})

	p.PrintSimulation(&simulator.Report{
		Runs:        10,
		Seed:        5,
		GamesPerRun: 3,
		Players: []simulator.PlayerResult{
			{Name: "mozart", Strategy: "max_card", TourneysWon: 7, WinRate: 0.7, GamesWon: 20, RoundsWon: 60, MeanPoints: 21.5},
			{Name: "chopin", Strategy: "min_card", TourneysWon: 3, WinRate: 0.3, GamesWon: 10, RoundsWon: 30, MeanPoints: 9},
		},
	})

	out := buf.String()
	for _, want := range []string{"Tourneys", "Win %", "mozart", "70.0", "21.50", "chopin", "30.0", "10 tournaments of 3 games, seeds 5..14"} {
		assert.Contains(t, out, want)
	}
}
