package components

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/finpulse/internal/tui/theme"
)

// StatusInfo is what the status bar reports on its right side.
type StatusInfo struct {
	Formula     string
	Months      int
	LoadTime    string
	Refreshing  bool
	AutoRefresh bool
}

// RenderStatusBar renders the bottom status bar.
func RenderStatusBar(width int, info StatusInfo) string {
	t := theme.Active

	bg := lipgloss.NewStyle().Background(t.Surface)
	keyStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface)
	textStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)

	left := bg.Render(" ") +
		keyStyle.Render("[?]") + textStyle.Render("help ") +
		keyStyle.Render("[f]") + textStyle.Render("ormula ") +
		keyStyle.Render("[r]") + textStyle.Render("efresh ") +
		keyStyle.Render("[q]") + textStyle.Render("uit")

	right := dimStyle.Render(fmt.Sprintf("%s · %dm", info.Formula, info.Months))
	switch {
	case info.Refreshing:
		right += keyStyle.Render(" · refreshing…")
	case info.LoadTime != "":
		right += dimStyle.Render(" · " + info.LoadTime)
	}
	if info.AutoRefresh {
		right += keyStyle.Render(" · auto")
	}
	right += bg.Render(" ")

	gap := max(width-lipgloss.Width(left)-lipgloss.Width(right), 0)
	return left + bg.Render(fmt.Sprintf("%*s", gap, "")) + right
}
