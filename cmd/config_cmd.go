package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg := appCfg

	fmt.Printf("  Config file: %s\n", configPathForDisplay())
	fmt.Println()

	fmt.Println("  [General]")
	fmt.Printf("    Months:            %d\n", cfg.General.Months)
	fmt.Printf("    Score formula:     %s\n", cfg.General.Formula)
	if cfg.General.TransactionLimit > 0 {
		fmt.Printf("    Transaction limit: %d\n", cfg.General.TransactionLimit)
	} else {
		fmt.Println("    Transaction limit: none")
	}
	fmt.Printf("    Database:          %s\n", dbPath())
	fmt.Println()

	fmt.Println("  [Feedback]")
	fmt.Printf("    Tip threshold:        %.0f%% of factor max\n", cfg.Feedback.TipThreshold)
	fmt.Printf("    Big saver badge:      %s deposited\n", cfg.Feedback.DepositBadgeTotal)
	fmt.Printf("    Consistent saver:     %d deposit days\n", cfg.Feedback.DepositBadgeDays)
	fmt.Printf("    Multi-currency badge: %d currencies\n", cfg.Feedback.CurrencyBadgeCount)
	fmt.Println()

	fmt.Println("  [Daemon]")
	fmt.Printf("    Address:       %s\n", cfg.Daemon.Addr)
	fmt.Printf("    Interval:      %ds\n", cfg.Daemon.IntervalSec)
	fmt.Printf("    Events buffer: %d\n", cfg.Daemon.EventsBuffer)
	fmt.Println()

	fmt.Println("  [TUI]")
	fmt.Printf("    Auto refresh: %v every %ds\n", cfg.TUI.AutoRefresh, cfg.TUI.RefreshIntervalSec)
	fmt.Println()

	fmt.Println("  [Appearance]")
	fmt.Printf("    Theme: %s\n", cfg.Appearance.Theme)
	fmt.Println()

	fmt.Println("  Run `finpulse setup` to reconfigure.")
	return nil
}
