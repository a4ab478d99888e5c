package game

import "strings"

// Strategy names the policy a player uses to pick a bid
type Strategy int

const (
	NextCard Strategy = iota
	MaxCard
	MinCard
	NearestCard
	HybridCard
	ConsoleCard
)

// String returns the configuration name of the strategy
func (s Strategy) String() string {
	switch s {
	case NextCard:
		return "next_card"
	case MaxCard:
		return "max_card"
	case MinCard:
		return "min_card"
	case NearestCard:
		return "nearest_card"
	case HybridCard:
		return "hybrid_card"
	case ConsoleCard:
		return "console_card"
	default:
		return "unknown"
	}
}

// IsInteractive reports whether the strategy needs a human at a console
func (s Strategy) IsInteractive() bool {
	return s == ConsoleCard
}

var strategyNames = map[string]Strategy{
	"next_card":    NextCard,
	"max_card":     MaxCard,
	"min_card":     MinCard,
	"nearest_card": NearestCard,
	"hybrid_card":  HybridCard,
	"hybrid":       HybridCard,
	"console_card": ConsoleCard,
	"console":      ConsoleCard,
}

// LookupStrategy maps a configuration name to a Strategy. Matching ignores
// case and surrounding space.
func LookupStrategy(name string) (Strategy, bool) {
	s, ok := strategyNames[strings.ToLower(strings.TrimSpace(name))]
	return s, ok
}

// ParseStrategy is LookupStrategy with unknown names falling back to NextCard
func ParseStrategy(name string) Strategy {
	s, _ := LookupStrategy(name)
	return s
}

// SelectCard picks a card from hand without removing it. maxCard is the
// highest value in the deck. ConsoleCard cannot be served here and returns
// ErrInteractiveStrategy; the Engine routes it to a Console.
func (s Strategy) SelectCard(prizeCard int, hand Hand, maxCard int) (int, error) {
	if hand.IsEmpty() {
		return 0, ErrEmptyHand
	}

	switch s {
	case MaxCard:
		return selectMax(hand), nil
	case MinCard:
		return selectMin(hand), nil
	case NearestCard:
		return selectNearest(prizeCard, hand), nil
	case HybridCard:
		return selectHybrid(prizeCard, hand, maxCard), nil
	case ConsoleCard:
		return 0, ErrInteractiveStrategy
	default:
		return selectNext(hand), nil
	}
}

func selectNext(hand Hand) int {
	return hand.Cards[0]
}

func selectMax(hand Hand) int {
	best := hand.Cards[0]
	for _, c := range hand.Cards[1:] {
		if c > best {
			best = c
		}
	}
	return best
}

func selectMin(hand Hand) int {
	best := hand.Cards[0]
	for _, c := range hand.Cards[1:] {
		if c < best {
			best = c
		}
	}
	return best
}

// selectNearest keeps the first card at the smallest distance
func selectNearest(prizeCard int, hand Hand) int {
	best := hand.Cards[0]
	bestDistance := distance(best, prizeCard)
	for _, c := range hand.Cards[1:] {
		if d := distance(c, prizeCard); d < bestDistance {
			best, bestDistance = c, d
		}
	}
	return best
}

// selectHybrid bids high for prizes in the top half of the deck and low
// otherwise.
func selectHybrid(prizeCard int, hand Hand, maxCard int) int {
	if prizeCard > maxCard/2 {
		return selectMax(hand)
	}
	return selectMin(hand)
}

func distance(a, b int) int {
	if a > b {
		return a - b
	}
	return b - a
}
