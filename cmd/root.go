// Package cmd implements the finpulse CLI commands.
package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/theirongolddev/finpulse/internal/config"
	"github.com/theirongolddev/finpulse/internal/logger"
	"github.com/theirongolddev/finpulse/internal/model"
	"github.com/theirongolddev/finpulse/internal/pipeline"
	"github.com/theirongolddev/finpulse/internal/score"
	"github.com/theirongolddev/finpulse/internal/store"
)

var (
	flagDB      string
	flagMonths  int
	flagLimit   int
	flagFormula string
	flagQuiet   bool
	flagVerbose bool
)

// Populated by the root pre-run hook before any command body executes.
var (
	appCfg config.Config
	log    = zerolog.Nop()
)

var rootCmd = &cobra.Command{
	Use:               "finpulse",
	Short:             "Personal finance metrics and health scores",
	Long:              "Track transactions, assets, debts and goals, and score your financial health.",
	SilenceUsage:      true,
	PersistentPreRunE: prepare,
	RunE:              runSummary,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flagDB, "db", "", "SQLite database path (default from config)")
	pf.IntVarP(&flagMonths, "months", "m", 0, "Months of history to chart (default from config)")
	pf.IntVarP(&flagLimit, "limit", "l", 0, "Only load the N most recent transactions")
	pf.StringVar(&flagFormula, "formula", "", "Score formula: wellness or portfolio")
	pf.BoolVarP(&flagQuiet, "quiet", "q", false, "Suppress progress output")
	pf.BoolVarP(&flagVerbose, "verbose", "v", false, "Debug logging")
}

// prepare loads config and the logger for every command.
func prepare(_ *cobra.Command, _ []string) error {
	log = logger.New(flagVerbose, flagQuiet)
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	appCfg = cfg
	log.Debug().Str("config", config.ConfigPath()).Str("db", dbPath()).Msg("config loaded")
	return nil
}

func dbPath() string {
	if flagDB != "" {
		return flagDB
	}
	if appCfg.General.DBPath != "" {
		return appCfg.General.DBPath
	}
	return store.DefaultPath()
}

func months() int {
	if flagMonths > 0 {
		return flagMonths
	}
	if appCfg.General.Months > 0 {
		return appCfg.General.Months
	}
	return pipeline.DefaultMonths
}

func limit() int {
	if flagLimit > 0 {
		return flagLimit
	}
	return appCfg.General.TransactionLimit
}

func formula() (score.Formula, error) {
	if flagFormula != "" {
		return score.ByName(flagFormula)
	}
	return appCfg.ScoreFormula()
}

func openStore() (*store.Store, error) {
	st, err := store.Open(dbPath())
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	return st, nil
}

// loadReport is the shared read path: load a snapshot from the store and
// run the engine over it.
func loadReport(ctx context.Context, st *store.Store) (model.Report, error) {
	f, err := formula()
	if err != nil {
		return model.Report{}, err
	}
	start := time.Now()
	snap, err := pipeline.Load(ctx, st, limit())
	if err != nil {
		return model.Report{}, err
	}
	rules := appCfg.FeedbackRules()
	report := pipeline.Build(snap, pipeline.Options{
		Months:  months(),
		Formula: f,
		Rules:   &rules,
	})
	log.Debug().
		Int("transactions", len(snap.Transactions)).
		Int("assets", len(snap.Assets)).
		Dur("elapsed", time.Since(start)).
		Msg("report built")
	return report, nil
}

// withReport opens the store, builds a report and hands both to fn.
func withReport(fn func(ctx context.Context, st *store.Store, r model.Report) error) error {
	ctx := logger.WithContext(context.Background(), log)
	st, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = st.Close() }()

	report, err := loadReport(ctx, st)
	if err != nil {
		return err
	}
	return fn(ctx, st, report)
}

func isEmpty(r model.Report) bool {
	return r.Totals.Transactions == 0 &&
		r.NetWorth.TotalAssets.IsZero() &&
		r.NetWorth.TotalLiabilities.IsZero() &&
		r.Counts.GoalCount == 0
}

func printEmpty() {
	fmt.Println()
	fmt.Println("  No financial records found.")
	fmt.Println("  Add some with `finpulse add` or `finpulse import <dir>`.")
	fmt.Println()
}
