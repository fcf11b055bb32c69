package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/finpulse/internal/config"
	"github.com/theirongolddev/finpulse/internal/tui"
	"github.com/theirongolddev/finpulse/internal/tui/theme"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "First-time setup wizard",
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(_ *cobra.Command, _ []string) error {
	records := 0
	if st, err := openStore(); err == nil {
		if c, err := st.Counts(context.Background()); err == nil {
			records = c.Total()
		}
		_ = st.Close()
	}

	theme.SetActive(appCfg.Appearance.Theme)
	opts := tuiOptions()
	// Empty keeps the default location.
	opts.DBPath = appCfg.General.DBPath
	if err := tui.RunSetup(opts, records); err != nil {
		return fmt.Errorf("setup: %w", err)
	}

	fmt.Println()
	fmt.Printf("  Saved to %s\n", config.ConfigPath())
	fmt.Println("  Run `finpulse setup` anytime to reconfigure.")
	fmt.Println()
	return nil
}

func configPathForDisplay() string {
	if config.Exists() {
		return config.ConfigPath()
	}
	return config.ConfigPath() + " (not created, using defaults)"
}
