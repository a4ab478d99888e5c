package game

import (
	"fmt"
	"slices"
	"strings"
)

// Hand is an ordered collection of card values. Order matters: NextCard
// plays the first card and the kitty reveals from the end.
type Hand struct {
	Cards []int
}

// NewHand returns a hand holding a copy of cards
func NewHand(cards ...int) Hand {
	return Hand{Cards: append([]int(nil), cards...)}
}

// Len returns the number of cards in the hand
func (h Hand) Len() int {
	return len(h.Cards)
}

// IsEmpty reports whether the hand has no cards
func (h Hand) IsEmpty() bool {
	return len(h.Cards) == 0
}

// Contains reports whether card is in the hand
func (h Hand) Contains(card int) bool {
	return slices.Contains(h.Cards, card)
}

// Remove deletes the first occurrence of card and reports whether it was found
func (h *Hand) Remove(card int) bool {
	i := slices.Index(h.Cards, card)
	if i < 0 {
		return false
	}
	h.Cards = slices.Delete(h.Cards, i, i+1)
	return true
}

// Pop removes and returns the last card
func (h *Hand) Pop() (int, bool) {
	if len(h.Cards) == 0 {
		return 0, false
	}
	last := len(h.Cards) - 1
	card := h.Cards[last]
	h.Cards = h.Cards[:last]
	return card, true
}

// Clone returns a copy that shares no storage with h
func (h Hand) Clone() Hand {
	return NewHand(h.Cards...)
}

func (h Hand) String() string {
	parts := make([]string, len(h.Cards))
	for i, c := range h.Cards {
		parts[i] = fmt.Sprint(c)
	}
	return "[" + strings.Join(parts, " ") + "]"
}
