package game

import (
	"fmt"
	rand "math/rand/v2"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/google/uuid"
)

// Selector picks one card from a hand without removing it
type Selector interface {
	SelectCard(prizeCard int, hand Hand, maxCard int) (int, error)
}

// TourneyResult summarises a completed tournament
type TourneyResult struct {
	RunID       string
	Winner      string
	GameWinners []string
	Standings   []Standing
	Duration    time.Duration
}

// Engine plays rounds, games and tournaments against a Table. It is not safe
// for concurrent use.
type Engine struct {
	logger   *log.Logger
	rng      *rand.Rand
	clock    quartz.Clock
	console  Selector
	eventBus EventBus

	gameNumber  int
	roundNumber int
}

// EngineOption configures an Engine
type EngineOption func(*Engine)

// WithClock sets the clock used for event timestamps and run duration
func WithClock(clock quartz.Clock) EngineOption {
	return func(e *Engine) {
		e.clock = clock
	}
}

// WithConsole serves ConsoleCard players from the given selector
func WithConsole(console Selector) EngineOption {
	return func(e *Engine) {
		e.console = console
	}
}

// WithEventBus publishes to an existing bus instead of a private one
func WithEventBus(bus EventBus) EngineOption {
	return func(e *Engine) {
		e.eventBus = bus
	}
}

// NewEngine creates an engine that shuffles with rng. The rng is required so
// that randomness is explicit and tests can be deterministic.
func NewEngine(logger *log.Logger, rng *rand.Rand, opts ...EngineOption) *Engine {
	if rng == nil {
		panic("rng is required for engine creation")
	}
	e := &Engine{
		logger: logger,
		rng:    rng,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.logger == nil {
		e.logger = log.Default()
	}
	if e.clock == nil {
		e.clock = quartz.NewReal()
	}
	if e.eventBus == nil {
		e.eventBus = NewEventBus()
	}
	return e
}

// EventBus returns the bus the engine publishes to
func (e *Engine) EventBus() EventBus {
	return e.eventBus
}

func (e *Engine) selectorFor(p *Player) Selector {
	if p.Strategy.IsInteractive() && e.console != nil {
		return e.console
	}
	return p.Strategy
}

// GetBids asks every player, in table order, for an offer and removes the
// offered card from their hand.
func (e *Engine) GetBids(prizeCard, maxCard int, players []*Player) ([]Bid, error) {
	bids := make([]Bid, 0, len(players))
	for _, p := range players {
		offer, err := e.selectorFor(p).SelectCard(prizeCard, p.Hand, maxCard)
		if err != nil {
			return nil, fmt.Errorf("player %s (%s): %w", p.Name, p.Strategy, err)
		}
		if !p.Hand.Remove(offer) {
			return nil, fmt.Errorf("player %s offered %d: %w", p.Name, offer, ErrCardNotInHand)
		}
		bids = append(bids, Bid{Offer: offer, PrizeCard: prizeCard, Bidder: p.Name})
	}
	return bids, nil
}

// PlayRound reveals the next prize from the kitty, collects bids and returns
// the prize and the winning player's name. Scores are not applied; see
// UpdateRoundWinner.
func (e *Engine) PlayRound(table *Table, maxCard int) (int, string, error) {
	prizeCard, ok := table.Kitty.Pop()
	if !ok {
		return 0, "", ErrEmptyKitty
	}
	e.roundNumber++

	bids, err := e.GetBids(prizeCard, maxCard, table.Players)
	if err != nil {
		return 0, "", err
	}
	winning, err := DetermineRoundWinner(bids)
	if err != nil {
		return 0, "", err
	}

	e.logger.Debug("Round complete",
		"game", e.gameNumber,
		"round", e.roundNumber,
		"prize", prizeCard,
		"winner", winning.Bidder,
		"offer", winning.Offer)
	e.eventBus.Publish(NewRoundEndEvent(e.gameNumber, e.roundNumber, prizeCard, bids, winning.Bidder, e.clock.Now()))

	return prizeCard, winning.Bidder, nil
}

// PlayGame deals a fresh deck, plays one round per card in a hand and returns
// the name of the player with the highest total. Game wins and losses are
// not applied; see UpdateGameWinner.
func (e *Engine) PlayGame(cfg Config, table *Table) (string, error) {
	e.gameNumber++
	e.roundNumber = 0

	if err := DealToTable(cfg, table, e.rng); err != nil {
		return "", fmt.Errorf("game %d: %w", e.gameNumber, err)
	}
	e.logger.Debug("Dealt", "game", e.gameNumber, "kitty", table.Kitty, "per_hand", cfg.NumCardsPerHand)
	e.eventBus.Publish(NewGameStartEvent(e.gameNumber, table, e.clock.Now()))

	for range cfg.NumCardsPerHand {
		prizeCard, winner, err := e.PlayRound(table, cfg.NumCards)
		if err != nil {
			return "", fmt.Errorf("game %d round %d: %w", e.gameNumber, e.roundNumber, err)
		}
		if err := UpdateRoundWinner(table, prizeCard, winner); err != nil {
			return "", err
		}
	}

	winner, err := DetermineGameWinner(table.Players)
	if err != nil {
		return "", err
	}

	e.logger.Debug("Game complete", "game", e.gameNumber, "winner", winner.Name, "total", winner.Stats.TotalForGame)
	e.eventBus.Publish(NewGameEndEvent(e.gameNumber, winner.Name, table.Standings(), e.clock.Now()))

	return winner.Name, nil
}

// PlayTourney plays cfg.NumGames games on the same table, applying each
// game's result, and returns the overall winner.
func (e *Engine) PlayTourney(cfg Config, table *Table) (*TourneyResult, error) {
	if cfg.NumGames < 1 {
		return nil, ErrNoGames
	}
	if len(table.Players) == 0 {
		return nil, ErrNoPlayers
	}

	start := e.clock.Now()
	e.gameNumber = 0
	result := &TourneyResult{
		RunID:       uuid.NewString(),
		GameWinners: make([]string, 0, cfg.NumGames),
	}
	e.logger.Info("Starting tournament",
		"run", result.RunID,
		"players", len(table.Players),
		"games", cfg.NumGames,
		"cards", cfg.NumCards,
		"per_hand", cfg.NumCardsPerHand)

	for range cfg.NumGames {
		winner, err := e.PlayGame(cfg, table)
		if err != nil {
			return nil, err
		}
		if err := UpdateGameWinner(table, winner); err != nil {
			return nil, err
		}
		result.GameWinners = append(result.GameWinners, winner)
	}

	winner, err := DetermineTourneyWinner(table.Players)
	if err != nil {
		return nil, err
	}
	result.Winner = winner.Name
	result.Standings = table.Standings()
	result.Duration = e.clock.Since(start)

	e.logger.Info("Tournament complete",
		"run", result.RunID,
		"winner", result.Winner,
		"games_won", winner.Stats.NumGamesWon,
		"duration", result.Duration)
	e.eventBus.Publish(NewTourneyEndEvent(*result, e.clock.Now()))

	return result, nil
}
