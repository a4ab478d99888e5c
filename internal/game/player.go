package game

import "fmt"

// PlayerStats holds a player's running counters. TotalForGame and
// NumRoundsWon are per game; NumGamesWon spans the tournament.
type PlayerStats struct {
	TotalForGame int
	NumRoundsWon int
	NumGamesWon  int
}

// Player represents a seat at the table
type Player struct {
	Name     string
	Hand     Hand
	Strategy Strategy
	Stats    PlayerStats
}

// NewPlayer creates a player with an empty hand
func NewPlayer(name string, strategy Strategy) *Player {
	return &Player{
		Name:     name,
		Strategy: strategy,
	}
}

// WinsRound credits the prize card to the current game
func (p *Player) WinsRound(prizeCard int) {
	p.Stats.TotalForGame += prizeCard
	p.Stats.NumRoundsWon++
}

// WinsGame records a game win and clears per-game state
func (p *Player) WinsGame() {
	p.Stats.NumGamesWon++
	p.resetGame()
}

// LosesGame clears per-game state
func (p *Player) LosesGame() {
	p.resetGame()
}

func (p *Player) resetGame() {
	p.Stats.TotalForGame = 0
	p.Stats.NumRoundsWon = 0
}

func (p *Player) String() string {
	return fmt.Sprintf("%s (%s) hand=%s total=%d rounds=%d games=%d",
		p.Name, p.Strategy, p.Hand, p.Stats.TotalForGame, p.Stats.NumRoundsWon, p.Stats.NumGamesWon)
}

// Bid is one player's offer for a prize card. It names the bidder rather than
// pointing at it, so a bid can outlive changes to the Player.
type Bid struct {
	Offer     int
	PrizeCard int
	Bidder    string
}

func (b Bid) String() string {
	return fmt.Sprintf("%s offers %d for %d", b.Bidder, b.Offer, b.PrizeCard)
}
