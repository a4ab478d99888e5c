package game

import (
	"fmt"
	rand "math/rand/v2"

	"github.com/lox/kittybid/internal/deck"
)

// Config holds the numbers a tournament is played with
type Config struct {
	NumPlayers      int
	NumGames        int
	NumCards        int
	NumCardsPerHand int
}

// NewConfig derives the hand size from the card and player counts. The kitty
// counts as one more hand; cards that do not divide evenly are never dealt.
func NewConfig(numPlayers, numGames, numCards int) Config {
	cfg := Config{
		NumPlayers: numPlayers,
		NumGames:   numGames,
		NumCards:   numCards,
	}
	if numPlayers >= 0 {
		cfg.NumCardsPerHand = numCards / (numPlayers + 1)
	}
	return cfg
}

// Table is the root aggregate for one tournament. Player order is bidding
// order and never changes.
type Table struct {
	Kitty   Hand
	Players []*Player
}

// NewTable seats players in the given order
func NewTable(players ...*Player) *Table {
	return &Table{Players: players}
}

// Player returns the seated player with the given name, or nil
func (t *Table) Player(name string) *Player {
	for _, p := range t.Players {
		if p.Name == name {
			return p
		}
	}
	return nil
}

// Standing is a point-in-time copy of one player's stats
type Standing struct {
	Name     string
	Strategy Strategy
	PlayerStats
}

// Standings snapshots every player's stats in table order
func (t *Table) Standings() []Standing {
	standings := make([]Standing, len(t.Players))
	for i, p := range t.Players {
		standings[i] = Standing{Name: p.Name, Strategy: p.Strategy, PlayerStats: p.Stats}
	}
	return standings
}

// DealToTable shuffles a fresh deck and deals it in chunks of
// cfg.NumCardsPerHand: the first chunk to the kitty, the rest to players in
// table order. Leftover cards are discarded.
func DealToTable(cfg Config, table *Table, rng *rand.Rand) error {
	if len(table.Players) == 0 {
		return ErrNoPlayers
	}
	if cfg.NumCardsPerHand <= 0 {
		return fmt.Errorf("%w: %d cards for %d players", ErrNoCardsPerHand, cfg.NumCards, len(table.Players))
	}

	cards := deck.Build(cfg.NumCards, rng)
	hands, err := deck.Chunk(cards, cfg.NumCardsPerHand, len(table.Players)+1)
	if err != nil {
		return fmt.Errorf("dealing: %w", err)
	}

	table.Kitty = Hand{Cards: hands[0]}
	for i, p := range table.Players {
		p.Hand = Hand{Cards: hands[i+1]}
	}
	return nil
}

// DetermineRoundWinner returns the highest offer. On a tie the earliest bid
// in table order wins.
func DetermineRoundWinner(bids []Bid) (Bid, error) {
	if len(bids) == 0 {
		return Bid{}, ErrNoBids
	}
	best := bids[0]
	for _, bid := range bids[1:] {
		if bid.Offer > best.Offer {
			best = bid
		}
	}
	return best, nil
}

// DetermineGameWinner returns the player with the highest TotalForGame,
// earliest seat winning ties.
func DetermineGameWinner(players []*Player) (*Player, error) {
	return maxPlayer(players, func(p *Player) int { return p.Stats.TotalForGame })
}

// DetermineTourneyWinner returns the player with the most games won,
// earliest seat winning ties.
func DetermineTourneyWinner(players []*Player) (*Player, error) {
	return maxPlayer(players, func(p *Player) int { return p.Stats.NumGamesWon })
}

func maxPlayer(players []*Player, score func(*Player) int) (*Player, error) {
	if len(players) == 0 {
		return nil, ErrNoPlayers
	}
	best := players[0]
	for _, p := range players[1:] {
		if score(p) > score(best) {
			best = p
		}
	}
	return best, nil
}

// UpdateRoundWinner credits prizeCard to the named player. Other players are
// untouched.
func UpdateRoundWinner(table *Table, prizeCard int, winner string) error {
	p := table.Player(winner)
	if p == nil {
		return fmt.Errorf("%w: %q", ErrUnknownPlayer, winner)
	}
	p.WinsRound(prizeCard)
	return nil
}

// UpdateGameWinner records a win for the named player and a loss for everyone
// else.
func UpdateGameWinner(table *Table, winner string) error {
	if table.Player(winner) == nil {
		return fmt.Errorf("%w: %q", ErrUnknownPlayer, winner)
	}
	for _, p := range table.Players {
		if p.Name == winner {
			p.WinsGame()
		} else {
			p.LosesGame()
		}
	}
	return nil
}
