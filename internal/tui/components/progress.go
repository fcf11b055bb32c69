package components

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/finpulse/internal/tui/theme"
)

func clampUnit(pct float64) float64 {
	switch {
	case pct < 0 || math.IsNaN(pct):
		return 0
	case pct > 1:
		return 1
	default:
		return pct
	}
}

// ProgressBar renders a block progress bar with a trailing percentage.
// pct is a 0-1 fraction.
func ProgressBar(pct float64, width int) string {
	t := theme.Active
	pct = clampUnit(pct)
	filled := min(int(pct*float64(width)), width)

	barColor := t.Cyan
	switch {
	case pct >= 0.8:
		barColor = t.AccentBright
	case pct >= 0.5:
		barColor = t.Accent
	}

	filledStyle := lipgloss.NewStyle().Foreground(barColor).Background(t.Surface)
	emptyStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)
	pctStyle := lipgloss.NewStyle().Foreground(barColor).Background(t.Surface).Bold(true)
	spaceStyle := lipgloss.NewStyle().Background(t.Surface)

	var b strings.Builder
	b.WriteString(filledStyle.Render(strings.Repeat("█", filled)))
	b.WriteString(emptyStyle.Render(strings.Repeat("░", width-filled)))
	return b.String() + spaceStyle.Render(" ") + pctStyle.Render(fmt.Sprintf("%.0f%%", pct*100))
}

// ScoreGauge renders a 0-100 score as a solid bar colored by band, followed
// by the score and its label.
func ScoreGauge(score int, label string, width int) string {
	t := theme.Active
	score = min(max(score, 0), 100)
	color := t.ScoreColor(score)

	bar := progress.New(
		progress.WithSolidFill(string(color)),
		progress.WithWidth(max(width, 4)),
		progress.WithoutPercentage(),
	)
	bar.EmptyColor = string(t.TextDim)

	scoreStyle := lipgloss.NewStyle().Foreground(color).Background(t.Surface).Bold(true)
	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	spaceStyle := lipgloss.NewStyle().Background(t.Surface)

	return bar.ViewAs(float64(score)/100) +
		spaceStyle.Render(" ") +
		scoreStyle.Render(fmt.Sprintf("%3d", score)) +
		spaceStyle.Render(" ") +
		labelStyle.Render(label)
}

// FactorBar renders one score factor as a labeled bar. Factors without data
// are drawn dim with a "no data" note in place of the value.
func FactorBar(label string, pct float64, hasData bool, labelW, barW int) string {
	t := theme.Active
	pct = clampUnit(pct / 100)

	color := t.ScoreColor(int(pct * 100))
	if !hasData {
		color = t.TextDim
	}

	bar := progress.New(
		progress.WithSolidFill(string(color)),
		progress.WithWidth(max(barW, 4)),
		progress.WithoutPercentage(),
	)
	bar.EmptyColor = string(t.SurfaceBright)

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	valueStyle := lipgloss.NewStyle().Foreground(color).Background(t.Surface).Bold(hasData)
	spaceStyle := lipgloss.NewStyle().Background(t.Surface)

	value := fmt.Sprintf("%3.0f%%", pct*100)
	if !hasData {
		value = "no data"
	}

	return labelStyle.Render(fmt.Sprintf("%-*s", labelW, label)) +
		spaceStyle.Render(" ") +
		bar.ViewAs(pct) +
		spaceStyle.Render(" ") +
		valueStyle.Render(value)
}
