package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/kittybid/internal/randutil"
)

func newComposers(names ...string) *Table {
	players := make([]*Player, len(names))
	for i, name := range names {
		players[i] = NewPlayer(name, NextCard)
	}
	return NewTable(players...)
}

func TestNewConfig(t *testing.T) {
	cfg := NewConfig(2, 1, 12)
	assert.Equal(t, Config{NumPlayers: 2, NumGames: 1, NumCards: 12, NumCardsPerHand: 4}, cfg)

	cfg = NewConfig(3, 1, 14)
	assert.Equal(t, 3, cfg.NumCardsPerHand, "remainder cards are not dealt")

	cfg = NewConfig(3, 1, 3)
	assert.Equal(t, 0, cfg.NumCardsPerHand)
}

func TestDealToTable(t *testing.T) {
	table := newComposers("mozart", "beethoven")
	cfg := NewConfig(len(table.Players), 1, 12)

	require.NoError(t, DealToTable(cfg, table, randutil.New(1)))

	assert.Equal(t, cfg.NumCardsPerHand, table.Kitty.Len())
	for _, p := range table.Players {
		assert.Equal(t, cfg.NumCardsPerHand, p.Hand.Len(), p.Name)
	}
	assert.ElementsMatch(t, []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12}, dealtCards(table))
}

func TestDealToTableDropsRemainder(t *testing.T) {
	table := newComposers("mozart", "beethoven", "chopin")
	cfg := NewConfig(len(table.Players), 1, 14)

	require.NoError(t, DealToTable(cfg, table, randutil.New(3)))

	cards := dealtCards(table)
	assert.Len(t, cards, 12)

	seen := make(map[int]bool)
	for _, c := range cards {
		assert.False(t, seen[c], "card %d dealt twice", c)
		seen[c] = true
		assert.GreaterOrEqual(t, c, 1)
		assert.LessOrEqual(t, c, 14)
	}
}

func TestDealToTableErrors(t *testing.T) {
	t.Run("too few cards", func(t *testing.T) {
		table := newComposers("mozart", "beethoven")
		err := DealToTable(NewConfig(2, 1, 2), table, randutil.New(1))
		assert.ErrorIs(t, err, ErrNoCardsPerHand)
	})

	t.Run("no players", func(t *testing.T) {
		err := DealToTable(NewConfig(0, 1, 12), NewTable(), randutil.New(1))
		assert.ErrorIs(t, err, ErrNoPlayers)
	})
}

func TestDetermineRoundWinner(t *testing.T) {
	bids := []Bid{
		{Bidder: "mozart", Offer: 10, PrizeCard: 18},
		{Bidder: "beethoven", Offer: 14, PrizeCard: 18},
		{Bidder: "liszt", Offer: 7, PrizeCard: 18},
	}

	winner, err := DetermineRoundWinner(bids)
	require.NoError(t, err)
	assert.Equal(t, "beethoven", winner.Bidder)
	assert.Equal(t, 14, winner.Offer)

	tied := []Bid{{Bidder: "a", Offer: 5}, {Bidder: "b", Offer: 9}, {Bidder: "c", Offer: 9}}
	winner, err = DetermineRoundWinner(tied)
	require.NoError(t, err)
	assert.Equal(t, "b", winner.Bidder)

	_, err = DetermineRoundWinner(nil)
	assert.ErrorIs(t, err, ErrNoBids)
}

func TestDetermineGameWinner(t *testing.T) {
	table := newComposers("mozart", "beethoven", "liszt")
	table.Players[1].Stats.TotalForGame = 10

	winner, err := DetermineGameWinner(table.Players)
	require.NoError(t, err)
	assert.Equal(t, "beethoven", winner.Name)

	table.Players[2].Stats.TotalForGame = 10
	winner, err = DetermineGameWinner(table.Players)
	require.NoError(t, err)
	assert.Equal(t, "beethoven", winner.Name, "earliest seat wins a tie")

	_, err = DetermineGameWinner(nil)
	assert.ErrorIs(t, err, ErrNoPlayers)
}

func TestDetermineTourneyWinner(t *testing.T) {
	table := newComposers("mozart", "beethoven", "liszt")
	table.Players[1].Stats.NumGamesWon = 1
	table.Players[2].Stats.NumGamesWon = 2

	winner, err := DetermineTourneyWinner(table.Players)
	require.NoError(t, err)
	assert.Equal(t, "liszt", winner.Name)
}

func TestUpdateRoundWinner(t *testing.T) {
	table := newComposers("mozart", "beethoven", "chopin")

	require.NoError(t, UpdateRoundWinner(table, 12, "chopin"))

	winner := table.Players[2]
	assert.Equal(t, 0, winner.Stats.NumGamesWon)
	assert.Equal(t, 1, winner.Stats.NumRoundsWon)
	assert.Equal(t, 12, winner.Stats.TotalForGame)
	for _, p := range table.Players[:2] {
		assert.Equal(t, PlayerStats{}, p.Stats, "losers are untouched")
	}

	err := UpdateRoundWinner(table, 12, "salieri")
	assert.ErrorIs(t, err, ErrUnknownPlayer)
}

func TestUpdateGameWinner(t *testing.T) {
	table := newComposers("mozart", "beethoven")
	table.Players[0].Stats = PlayerStats{TotalForGame: 7, NumRoundsWon: 2, NumGamesWon: 1}
	table.Players[1].Stats = PlayerStats{TotalForGame: 11, NumRoundsWon: 2}

	require.NoError(t, UpdateGameWinner(table, "beethoven"))

	assert.Equal(t, PlayerStats{NumGamesWon: 1}, table.Players[0].Stats)
	assert.Equal(t, PlayerStats{NumGamesWon: 1}, table.Players[1].Stats)

	err := UpdateGameWinner(table, "salieri")
	assert.ErrorIs(t, err, ErrUnknownPlayer)
}

func TestTableStandings(t *testing.T) {
	table := NewTable(NewPlayer("mozart", MaxCard), NewPlayer("chopin", HybridCard))
	table.Players[1].Stats.NumGamesWon = 3

	standings := table.Standings()
	require.Len(t, standings, 2)
	assert.Equal(t, "chopin", standings[1].Name)
	assert.Equal(t, HybridCard, standings[1].Strategy)
	assert.Equal(t, 3, standings[1].NumGamesWon)

	table.Players[1].Stats.NumGamesWon = 4
	assert.Equal(t, 3, standings[1].NumGamesWon, "standings are a snapshot")
}

func dealtCards(table *Table) []int {
	cards := append([]int(nil), table.Kitty.Cards...)
	for _, p := range table.Players {
		cards = append(cards, p.Hand.Cards...)
	}
	return cards
}
