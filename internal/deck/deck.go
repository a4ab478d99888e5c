package deck

import (
	"errors"
	"fmt"
	rand "math/rand/v2"
)

// ErrShortDeck is returned when a deck cannot fill the requested hands.
var ErrShortDeck = errors.New("deck too short")

// Build returns the cards 1..numCards in a random order drawn from rng.
// A nil rng falls back to the package-level source.
func Build(numCards int, rng *rand.Rand) []int {
	if numCards <= 0 {
		return nil
	}

	cards := make([]int, numCards)
	for i := range cards {
		cards[i] = i + 1
	}
	Shuffle(cards, rng)
	return cards
}

// Shuffle permutes cards in place using Fisher-Yates
func Shuffle(cards []int, rng *rand.Rand) {
	for i := len(cards) - 1; i > 0; i-- {
		var j int
		if rng != nil {
			j = rng.IntN(i + 1)
		} else {
			j = rand.IntN(i + 1)
		}
		cards[i], cards[j] = cards[j], cards[i]
	}
}

// Chunk splits cards into n consecutive hands of size cards each. Cards
// beyond n*size are left undealt. Each hand is a copy, so later mutation of
// one hand never shows through another.
func Chunk(cards []int, size, n int) ([][]int, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: hand size %d", ErrShortDeck, size)
	}
	if size*n > len(cards) {
		return nil, fmt.Errorf("%w: need %d cards for %d hands of %d, have %d",
			ErrShortDeck, size*n, n, size, len(cards))
	}

	hands := make([][]int, n)
	for i := range n {
		hands[i] = append([]int(nil), cards[i*size:(i+1)*size]...)
	}
	return hands, nil
}
