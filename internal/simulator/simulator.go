package simulator

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/lox/kittybid/internal/game"
	"github.com/lox/kittybid/internal/randutil"
	"github.com/lox/kittybid/internal/statistics"
)

// ErrInteractive is returned when a table seats a console player
var ErrInteractive = errors.New("cannot simulate interactive players")

// Config holds configuration for running simulations
type Config struct {
	Runs   int
	Seed   int64
	Logger *log.Logger
}

// PlayerResult aggregates one seat across every simulated tournament
type PlayerResult struct {
	Name        string  `yaml:"name"`
	Strategy    string  `yaml:"strategy"`
	TourneysWon int     `yaml:"tourneys_won"`
	GamesWon    int     `yaml:"games_won"`
	RoundsWon   int     `yaml:"rounds_won"`
	MeanPoints  float64 `yaml:"mean_points_per_game"`
	WinRate     float64 `yaml:"tourney_win_rate"`

	points float64
}

// Report is the outcome of a simulation
type Report struct {
	Runs        int            `yaml:"runs"`
	Seed        int64          `yaml:"seed"`
	GamesPerRun int            `yaml:"games_per_run"`
	Players     []PlayerResult `yaml:"players"`
}

// Simulator plays many tournaments between the same seats, one after another
type Simulator struct {
	config Config
}

// New creates a new simulator with the given configuration
func New(config Config) *Simulator {
	if config.Logger == nil {
		config.Logger = log.Default()
	}
	return &Simulator{config: config}
}

// Run plays s.config.Runs tournaments. Run i is seeded with Seed+i, so any
// single tournament can be replayed with `kittybid play --seed`. newTable
// must return a freshly seated table on every call.
func (s *Simulator) Run(cfg game.Config, newTable func() *game.Table) (*Report, error) {
	if s.config.Runs < 1 {
		return nil, fmt.Errorf("runs must be at least 1, got %d", s.config.Runs)
	}

	report := &Report{
		Runs:        s.config.Runs,
		Seed:        s.config.Seed,
		GamesPerRun: cfg.NumGames,
	}
	index := make(map[string]int)

	for run := range s.config.Runs {
		table := newTable()
		for _, p := range table.Players {
			if p.Strategy.IsInteractive() {
				return nil, fmt.Errorf("%w: %s", ErrInteractive, p.Name)
			}
		}

		runSeed := s.config.Seed + int64(run)
		engine := game.NewEngine(s.config.Logger, randutil.New(runSeed))
		collector := statistics.NewCollector()
		engine.EventBus().Subscribe(collector)

		result, err := engine.PlayTourney(cfg, table)
		if err != nil {
			return nil, fmt.Errorf("run %d (seed %d): %w", run+1, runSeed, err)
		}
		if err := collector.Validate(); err != nil {
			return nil, fmt.Errorf("run %d (seed %d): statistics validation failed: %w", run+1, runSeed, err)
		}

		for _, tally := range collector.Summary() {
			i, ok := index[tally.Name]
			if !ok {
				i = len(report.Players)
				index[tally.Name] = i
				report.Players = append(report.Players, PlayerResult{Name: tally.Name, Strategy: tally.Strategy.String()})
			}
			pr := &report.Players[i]
			pr.GamesWon += tally.GamesWon
			pr.RoundsWon += tally.RoundsWon
			pr.points += tally.SumPoints
			if tally.Name == result.Winner {
				pr.TourneysWon++
			}
		}

		s.config.Logger.Debug("Simulated tournament", "run", run+1, "seed", runSeed, "winner", result.Winner)
	}

	games := float64(s.config.Runs * cfg.NumGames)
	for i := range report.Players {
		pr := &report.Players[i]
		pr.MeanPoints = pr.points / games
		pr.WinRate = float64(pr.TourneysWon) / float64(s.config.Runs)
	}
	return report, nil
}
