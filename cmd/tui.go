package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/theirongolddev/finpulse/internal/score"
	"github.com/theirongolddev/finpulse/internal/tui"
	"github.com/theirongolddev/finpulse/internal/tui/theme"
)

var tuiCmd = &cobra.Command{
	Use:     "tui",
	Aliases: []string{"dash", "dashboard"},
	Short:   "Launch interactive TUI dashboard",
	RunE:    runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(_ *cobra.Command, _ []string) error {
	if _, err := formula(); err != nil {
		return err
	}
	theme.SetActive(appCfg.Appearance.Theme)

	// Background fills only render with a color profile; lipgloss falls back
	// to Ascii when it cannot detect one.
	lipgloss.SetColorProfile(termenv.TrueColor)

	app := tui.NewApp(tuiOptions())
	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}

func tuiOptions() tui.Options {
	f, err := formula()
	if err != nil {
		f = score.FormulaWellness
	}
	return tui.Options{
		DBPath:  dbPath(),
		Months:  months(),
		Limit:   limit(),
		Formula: f,
		Rules:   appCfg.FeedbackRules(),
	}
}
