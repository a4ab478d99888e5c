package statistics

import (
	"fmt"
	"math"
	"time"

	"github.com/lox/kittybid/internal/game"
)

// PlayerTally accumulates one player's results across a tournament
type PlayerTally struct {
	Name      string
	Strategy  game.Strategy
	Games     int
	GamesWon  int
	RoundsWon int
	SumPoints float64
	SumSq     float64 // Sum of squared game totals for variance
	BestGame  int
}

// Mean returns the average points scored per game
func (p PlayerTally) Mean() float64 {
	if p.Games == 0 {
		return 0
	}
	return p.SumPoints / float64(p.Games)
}

// Variance returns the sample variance of per-game points
func (p PlayerTally) Variance() float64 {
	if p.Games < 2 {
		return 0
	}
	mean := p.Mean()
	return (p.SumSq - float64(p.Games)*mean*mean) / float64(p.Games-1)
}

// StdDev returns the sample standard deviation of per-game points
func (p PlayerTally) StdDev() float64 {
	return math.Sqrt(math.Max(p.Variance(), 0))
}

// WinRate returns the fraction of games won
func (p PlayerTally) WinRate() float64 {
	if p.Games == 0 {
		return 0
	}
	return float64(p.GamesWon) / float64(p.Games)
}

// Collector is a game.EventSubscriber that tallies results per player. It
// relies on GameEndEvent standings being captured before per-game counters
// are reset.
type Collector struct {
	order   []string
	tallies map[string]*PlayerTally

	games    int
	rounds   int
	points   int
	winner   string
	runID    string
	duration time.Duration
}

// NewCollector creates an empty collector
func NewCollector() *Collector {
	return &Collector{tallies: make(map[string]*PlayerTally)}
}

// OnEvent implements game.EventSubscriber
func (c *Collector) OnEvent(event game.Event) {
	switch e := event.(type) {
	case game.RoundEndEvent:
		c.rounds++
		c.points += e.PrizeCard
	case game.GameEndEvent:
		c.addGame(e)
	case game.TourneyEndEvent:
		c.winner = e.Result.Winner
		c.runID = e.Result.RunID
		c.duration = e.Result.Duration
	}
}

func (c *Collector) addGame(e game.GameEndEvent) {
	c.games++
	for _, s := range e.Standings {
		t, ok := c.tallies[s.Name]
		if !ok {
			t = &PlayerTally{Name: s.Name, Strategy: s.Strategy}
			c.tallies[s.Name] = t
			c.order = append(c.order, s.Name)
		}
		t.Games++
		t.RoundsWon += s.NumRoundsWon
		t.SumPoints += float64(s.TotalForGame)
		t.SumSq += float64(s.TotalForGame) * float64(s.TotalForGame)
		t.BestGame = max(t.BestGame, s.TotalForGame)
		if s.Name == e.Winner {
			t.GamesWon++
		}
	}
}

// Summary returns one tally per player in first-seen (table) order
func (c *Collector) Summary() []PlayerTally {
	out := make([]PlayerTally, 0, len(c.order))
	for _, name := range c.order {
		out = append(out, *c.tallies[name])
	}
	return out
}

// Games returns the number of completed games seen
func (c *Collector) Games() int { return c.games }

// Rounds returns the number of completed rounds seen
func (c *Collector) Rounds() int { return c.rounds }

// Winner returns the tournament winner, or "" before the tournament ends
func (c *Collector) Winner() string { return c.winner }

// RunID returns the tournament run identifier
func (c *Collector) RunID() string { return c.runID }

// Duration returns how long the tournament took
func (c *Collector) Duration() time.Duration { return c.duration }

// Validate checks that the tallies are internally consistent
func (c *Collector) Validate() error {
	if c.games <= 0 {
		return fmt.Errorf("invalid games count: %d", c.games)
	}

	gamesWon, rounds, points := 0, 0, 0.0
	for _, name := range c.order {
		t := c.tallies[name]
		if t.Games != c.games {
			return fmt.Errorf("player %s played %d games, expected %d", name, t.Games, c.games)
		}
		gamesWon += t.GamesWon
		rounds += t.RoundsWon
		points += t.SumPoints
	}

	if gamesWon != c.games {
		return fmt.Errorf("games won (%d) does not match games played (%d)", gamesWon, c.games)
	}
	if rounds != c.rounds {
		return fmt.Errorf("rounds won (%d) does not match rounds played (%d)", rounds, c.rounds)
	}
	if int(points) != c.points {
		return fmt.Errorf("points scored (%.0f) does not match prizes revealed (%d)", points, c.points)
	}
	return nil
}
