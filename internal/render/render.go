// Package render prints analysis reports for the terminal.
package render

import (
	"fmt"
	"io"
	"slices"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/lox/holdem-analyzer/analysis"
	"github.com/lox/holdem-analyzer/internal/statistics"
	"github.com/lox/holdem-analyzer/poker"
)

// Renderer writes styled reports to one output.
type Renderer struct {
	w io.Writer

	headerStyle lipgloss.Style
	labelStyle  lipgloss.Style
	cardStyle   lipgloss.Style
	goodStyle   lipgloss.Style
	warnStyle   lipgloss.Style
	badStyle    lipgloss.Style
	dimStyle    lipgloss.Style
}

// New returns a Renderer for w. With color false all styling is plain text.
func New(w io.Writer, color bool) *Renderer {
	lr := lipgloss.NewRenderer(w)
	if !color {
		lr.SetColorProfile(termenv.Ascii)
	}

	return &Renderer{
		w: w,
		headerStyle: lr.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15")),
		labelStyle: lr.NewStyle().
			Foreground(lipgloss.Color("12")),
		cardStyle: lr.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("14")),
		goodStyle: lr.NewStyle().Foreground(lipgloss.Color("10")),
		warnStyle: lr.NewStyle().Foreground(lipgloss.Color("11")),
		badStyle:  lr.NewStyle().Foreground(lipgloss.Color("9")),
		dimStyle:  lr.NewStyle().Faint(true),
	}
}

// Cards renders a set of cards with suit symbols, highest rank first.
func Cards(h poker.Hand) string {
	cards := h.Cards()
	slices.SortStableFunc(cards, func(a, b poker.Card) int {
		return int(b.Rank()) - int(a.Rank())
	})

	parts := make([]string, len(cards))
	for i, c := range cards {
		parts[i] = c.Symbol()
	}
	return strings.Join(parts, " ")
}

// Report prints one analyzed hand. n is the hand's position in the input.
func (r *Renderer) Report(n int, raw string, rep analysis.Report) {
	fmt.Fprintf(r.w, "%s %s\n", r.headerStyle.Render(fmt.Sprintf("Hand %d:", n)), r.dimStyle.Render(raw))

	tw := tabwriter.NewWriter(r.w, 0, 0, 2, ' ', 0)
	r.row(tw, "hole", r.cardStyle.Render(Cards(rep.Hole)))
	if rep.Street == analysis.PreFlop {
		r.row(tw, "board", fmt.Sprintf("(%s)", rep.Street))
		r.row(tw, "starting hand", string(rep.HoleCategory))
	} else {
		r.row(tw, "board", fmt.Sprintf("%s  (%s, %s)", r.cardStyle.Render(Cards(rep.Board)), rep.Street, rep.Texture))
		r.row(tw, "current hand", rep.Strength.String())
	}

	lower, upper := rep.Equity.ConfidenceInterval()
	r.row(tw, "equity", fmt.Sprintf("%s  (win %s, tie %s, 95%% %s-%s)",
		r.shade(rep.Equity.Equity()),
		pct(rep.Equity.WinRate()), pct(rep.Equity.TieRate()),
		pct(lower), pct(upper)))
	if rep.HasPercentile() {
		r.row(tw, "percentile", r.shade(rep.Percentile.Percentile()))
	}
	r.row(tw, "reading", analysis.Interpret(rep.Equity.Equity()))
	tw.Flush()

	if len(rep.Threats) > 0 {
		fmt.Fprintln(r.w, r.labelStyle.Render("threats"))
		for _, t := range rep.Threats {
			fmt.Fprintf(r.w, "  %s %s\n", r.warnStyle.Render("!"), t)
		}
	}

	fmt.Fprintf(r.w, "%s %s\n", r.labelStyle.Render("recommendation"), rep.Recommendation)
	fmt.Fprintln(r.w, r.dimStyle.Render(fmt.Sprintf("%d trials, %d samples in %v",
		rep.Equity.Trials, rep.Percentile.Samples, rep.Elapsed.Truncate(time.Millisecond))))
	fmt.Fprintln(r.w)
}

// Strength prints the evaluation of a 5-7 card hand.
func (r *Renderer) Strength(hand poker.Hand, s poker.HandStrength) {
	tw := tabwriter.NewWriter(r.w, 0, 0, 2, ' ', 0)
	r.row(tw, "cards", r.cardStyle.Render(Cards(hand)))
	r.row(tw, "hand", r.headerStyle.Render(s.String()))
	r.row(tw, "category", fmt.Sprintf("%d", s.Category))
	tw.Flush()
}

// Skipped reports a record that could not be analyzed.
func (r *Renderer) Skipped(raw string, err error) {
	fmt.Fprintf(r.w, "%s %q: %v\n\n", r.badStyle.Render("Skipping"), raw, err)
}

// Summary prints the totals for a run.
func (r *Renderer) Summary(stats *statistics.Statistics, skipped int, elapsed time.Duration) {
	line := fmt.Sprintf("%d hands analyzed", stats.Hands)
	if skipped > 0 {
		line += fmt.Sprintf(", %d skipped", skipped)
	}
	line += fmt.Sprintf(" in %v", elapsed.Truncate(time.Millisecond))
	fmt.Fprintln(r.w, r.headerStyle.Render(line))

	if stats.Hands == 0 {
		return
	}
	lower, upper := stats.ConfidenceInterval95()
	tw := tabwriter.NewWriter(r.w, 0, 0, 2, ' ', 0)
	r.row(tw, "mean equity", fmt.Sprintf("%s  (median %s, 95%% %s-%s)",
		r.shade(stats.Mean()), pct(stats.Median()), pct(max(lower, 0)), pct(min(upper, 1))))
	for st, ss := range stats.Streets {
		if ss.Hands > 0 {
			r.row(tw, analysis.Street(st).String(), fmt.Sprintf("%d hands, mean equity %s", ss.Hands, pct(ss.Mean())))
		}
	}
	tw.Flush()
}

func (r *Renderer) row(w io.Writer, label, value string) {
	fmt.Fprintf(w, "%s\t%s\n", r.labelStyle.Render(label), value)
}

// shade colours a probability by how favourable it is.
func (r *Renderer) shade(p float64) string {
	switch {
	case p > 0.65:
		return r.goodStyle.Render(pct(p))
	case p > 0.35:
		return r.warnStyle.Render(pct(p))
	default:
		return r.badStyle.Render(pct(p))
	}
}

func pct(p float64) string {
	return fmt.Sprintf("%.1f%%", p*100)
}
