package game

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Console asks a human for a bid over line-oriented text I/O
type Console struct {
	in  *bufio.Scanner
	out io.Writer
}

// NewConsole reads picks from in and writes prompts to out
func NewConsole(in io.Reader, out io.Writer) *Console {
	return &Console{
		in:  bufio.NewScanner(in),
		out: out,
	}
}

// SelectCard shows the prize and hand, then prompts until the human names a
// card they hold. Input that is not a number is an error and is not retried.
func (c *Console) SelectCard(prizeCard int, hand Hand, _ int) (int, error) {
	if hand.IsEmpty() {
		return 0, ErrEmptyHand
	}

	fmt.Fprintf(c.out, "\nprize card: %d\n", prizeCard)
	fmt.Fprintf(c.out, "your hand: %s\n", hand)

	for {
		fmt.Fprintln(c.out, "enter your pick:")
		if !c.in.Scan() {
			if err := c.in.Err(); err != nil {
				return 0, fmt.Errorf("reading pick: %w", err)
			}
			return 0, ErrNoInput
		}

		card, err := ValidatePick(c.in.Text(), hand)
		if err == nil {
			return card, nil
		}
		if !errors.Is(err, ErrCardNotInHand) {
			return 0, err
		}
		fmt.Fprintf(c.out, "%s\n", err)
	}
}

// ValidatePick parses a typed pick. It returns ErrInvalidPick for
// non-numeric input and ErrCardNotInHand for a number the hand lacks.
func ValidatePick(pick string, hand Hand) (int, error) {
	pick = strings.TrimSpace(pick)
	card, err := strconv.Atoi(pick)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidPick, pick)
	}
	if !hand.Contains(card) {
		return 0, fmt.Errorf("%w: %d", ErrCardNotInHand, card)
	}
	return card, nil
}
