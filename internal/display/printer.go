package display

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/muesli/termenv"

	"github.com/lox/kittybid/internal/game"
	"github.com/lox/kittybid/internal/simulator"
	"github.com/lox/kittybid/internal/statistics"
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1).
			Bold(true)

	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
)

// DisableColor forces plain text output for every lipgloss style
func DisableColor() {
	lipgloss.SetColorProfile(termenv.Ascii)
}

// Printer writes engine events to an io.Writer as they are published
type Printer struct {
	out       io.Writer
	formatter *game.EventFormatter
}

// NewPrinter creates a printer that formats events with opts
func NewPrinter(out io.Writer, opts game.FormattingOptions) *Printer {
	return &Printer{
		out:       out,
		formatter: game.NewEventFormatter(opts),
	}
}

// OnEvent implements game.EventSubscriber
func (p *Printer) OnEvent(event game.Event) {
	if s := p.formatter.Format(event); s != "" {
		fmt.Fprintln(p.out, s)
	}
}

// PrintTitle prints the banner shown before a tournament starts
func (p *Printer) PrintTitle(title string) {
	fmt.Fprintln(p.out, titleStyle.Render(title))
	fmt.Fprintln(p.out)
}

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.NormalBorder()).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		Headers(headers...)
}

// PrintSummary renders per-player statistics as a table
func (p *Printer) PrintSummary(tallies []statistics.PlayerTally, duration time.Duration) {
	t := newTable("Player", "Strategy", "Games", "Won", "Rounds", "Pts/Game", "StdDev", "Best")

	for _, tally := range tallies {
		t.Row(
			tally.Name,
			tally.Strategy.String(),
			fmt.Sprint(tally.Games),
			fmt.Sprint(tally.GamesWon),
			fmt.Sprint(tally.RoundsWon),
			fmt.Sprintf("%.2f", tally.Mean()),
			fmt.Sprintf("%.2f", tally.StdDev()),
			fmt.Sprint(tally.BestGame),
		)
	}

	fmt.Fprintln(p.out)
	fmt.Fprintln(p.out, t.Render())
	fmt.Fprintf(p.out, "Completed in %s\n", duration.Round(time.Millisecond))
}

// PrintSimulation renders the aggregate of a batch of tournaments
func (p *Printer) PrintSimulation(report *simulator.Report) {
	t := newTable("Player", "Strategy", "Tourneys", "Win %", "Games", "Rounds", "Pts/Game")
	for _, pr := range report.Players {
		t.Row(
			pr.Name,
			pr.Strategy,
			fmt.Sprint(pr.TourneysWon),
			fmt.Sprintf("%.1f", pr.WinRate*100),
			fmt.Sprint(pr.GamesWon),
			fmt.Sprint(pr.RoundsWon),
			fmt.Sprintf("%.2f", pr.MeanPoints),
		)
	}

	fmt.Fprintln(p.out, t.Render())
	fmt.Fprintf(p.out, "%d tournaments of %d games, seeds %d..%d\n",
		report.Runs, report.GamesPerRun, report.Seed, report.Seed+int64(report.Runs)-1)
}
