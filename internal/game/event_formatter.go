package game

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// FormattingOptions controls how events are formatted for different contexts
type FormattingOptions struct {
	ShowDeal      bool // Include the kitty and dealt hands at game start
	ShowStandings bool // Include per-player standings after each game
}

// DisplayStyles contains styling for event output
type DisplayStyles struct {
	Header    lipgloss.Style
	Prize     lipgloss.Style
	Bid       lipgloss.Style
	Winner    lipgloss.Style
	Separator lipgloss.Style
	Muted     lipgloss.Style
}

// NewDisplayStyles creates the default set of display styles
func NewDisplayStyles() *DisplayStyles {
	return &DisplayStyles{
		Header: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1).
			Bold(true),
		Prize: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFD700")).
			Bold(true),
		Bid: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#74B9FF")),
		Winner: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#04B575")).
			Bold(true),
		Separator: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262")),
		Muted: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262")),
	}
}

// EventFormatter provides centralized formatting for all engine events
type EventFormatter struct {
	opts   FormattingOptions
	styles *DisplayStyles
}

// NewEventFormatter creates a new event formatter with the given options
func NewEventFormatter(opts FormattingOptions) *EventFormatter {
	return &EventFormatter{opts: opts, styles: NewDisplayStyles()}
}

// Format renders any known event. Unknown events render as "".
func (ef *EventFormatter) Format(event Event) string {
	switch e := event.(type) {
	case GameStartEvent:
		return ef.FormatGameStart(e)
	case RoundEndEvent:
		return ef.FormatRoundEnd(e)
	case GameEndEvent:
		return ef.FormatGameEnd(e)
	case TourneyEndEvent:
		return ef.FormatTourneyEnd(e)
	default:
		return ""
	}
}

// FormatGameStart formats the game header and, optionally, the deal
func (ef *EventFormatter) FormatGameStart(event GameStartEvent) string {
	var b strings.Builder
	b.WriteString(ef.styles.Header.Render(fmt.Sprintf("*** GAME %d ***", event.Game)))
	if ef.opts.ShowDeal {
		fmt.Fprintf(&b, "\n%s %s", ef.styles.Muted.Render("kitty:"), formatCards(event.Kitty))
		for _, h := range event.Hands {
			fmt.Fprintf(&b, "\n%s %s", ef.styles.Muted.Render(h.Name+":"), formatCards(h.Cards))
		}
	}
	return b.String()
}

// FormatRoundEnd formats the prize, every bid and the round winner
func (ef *EventFormatter) FormatRoundEnd(event RoundEndEvent) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Round %d: prize %s\n", event.Round, ef.styles.Prize.Render(fmt.Sprint(event.PrizeCard)))
	for _, bid := range event.Bids {
		fmt.Fprintf(&b, "  %s bids %s\n", bid.Bidder, ef.styles.Bid.Render(fmt.Sprint(bid.Offer)))
	}
	fmt.Fprintf(&b, "  %s", ef.styles.Winner.Render(event.Winner+" wins the round"))
	return b.String()
}

// FormatGameEnd formats the game winner and, optionally, the standings
func (ef *EventFormatter) FormatGameEnd(event GameEndEvent) string {
	var b strings.Builder
	b.WriteString(ef.styles.Winner.Render(fmt.Sprintf("Game %d winner: %s", event.Game, event.Winner)))
	if ef.opts.ShowStandings {
		for _, s := range event.Standings {
			fmt.Fprintf(&b, "\n  %-12s total=%d rounds=%d", s.Name, s.TotalForGame, s.NumRoundsWon)
		}
	}
	return b.String()
}

// FormatTourneyEnd formats the tournament winner and the final table
func (ef *EventFormatter) FormatTourneyEnd(event TourneyEndEvent) string {
	r := event.Result
	var b strings.Builder
	b.WriteString(ef.styles.Separator.Render(strings.Repeat("-", 34)))
	b.WriteString("\n")
	b.WriteString(ef.styles.Header.Render(fmt.Sprintf("Tournament winner: %s", r.Winner)))
	for _, s := range r.Standings {
		fmt.Fprintf(&b, "\n  %-12s %-13s games=%d", s.Name, s.Strategy, s.NumGamesWon)
	}
	return b.String()
}

func formatCards(cards []int) string {
	return NewHand(cards...).String()
}
