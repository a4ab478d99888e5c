// Package game implements the card-bidding tournament engine.
//
// A Table seats Players, each holding a Hand and a Strategy. The Engine deals
// a shuffled deck into one hand per player plus the kitty, then plays rounds:
// each round pops a prize card from the kitty, collects one Bid per player and
// awards the prize to the highest offer. A game ends when the hands are
// exhausted; a tournament is a fixed number of games.
//
// # Basic Usage
//
//	table := game.NewTable(
//	    game.NewPlayer("mozart", game.MaxCard),
//	    game.NewPlayer("chopin", game.NearestCard),
//	)
//	cfg := game.NewConfig(len(table.Players), 3, 12)
//	engine := game.NewEngine(logger, randutil.New(42))
//	result, err := engine.PlayTourney(cfg, table)
//
// # Deterministic Testing
//
// The Engine draws every shuffle from the injected *rand.Rand, so a fixed seed
// replays a tournament exactly. Timestamps and durations come from an
// injectable quartz.Clock:
//
//	engine := game.NewEngine(logger, randutil.New(42), game.WithClock(quartz.NewMock(t)))
//
// # Output
//
// The Engine never prints. Progress is published on an EventBus; see
// EventFormatter for rendering and the display package for a terminal printer.
package game
