package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/finpulse/internal/cli"
	"github.com/theirongolddev/finpulse/internal/model"
	"github.com/theirongolddev/finpulse/internal/store"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Totals, rates and both health scores",
	RunE:  runSummary,
}

func init() {
	rootCmd.AddCommand(summaryCmd)
}

func runSummary(_ *cobra.Command, _ []string) error {
	return withReport(func(_ context.Context, _ *store.Store, r model.Report) error {
		if isEmpty(r) {
			printEmpty()
			return nil
		}

		var current, previous model.MonthlyBucket
		if n := len(r.Buckets); n > 0 {
			current = r.Buckets[n-1]
			if n > 1 {
				previous = r.Buckets[n-2]
			}
		}

		fmt.Println()
		fmt.Println(cli.RenderTitle(fmt.Sprintf("FINANCIAL SUMMARY  Last %d months", r.Months)))
		fmt.Println()

		rows := [][]string{
			{"Income", cli.FormatMoney(r.Totals.Income)},
			{"Expenses", cli.FormatMoney(r.Totals.Expense)},
			{"Investments", cli.FormatMoney(r.Totals.Investment)},
			{"Balance", cli.RenderSigned(r.Totals.RunningBalance)},
			{"Transactions", cli.FormatNumber(int64(r.Totals.Transactions))},
			cli.SeparatorRow,
			{"Income this month", fmt.Sprintf("%s  (%s)", cli.FormatMoney(current.Income), cli.FormatDelta(current.Income, previous.Income))},
			{"Spent this month", fmt.Sprintf("%s  (%s)", cli.FormatMoney(current.Expense), cli.FormatDelta(current.Expense, previous.Expense))},
			cli.SeparatorRow,
			{"Savings rate", cli.FormatPercent(r.Rates.SavingsRate)},
			{"Expense rate", cli.FormatPercent(r.Rates.ExpenseRate)},
			{"Investment rate", cli.FormatPercent(r.Rates.InvestmentRate)},
			{"Budget adherence", cli.FormatPercent(r.Rates.BudgetAdherence)},
			{"Income trend", cli.FormatTrend(r.Rates.IncomeTrend)},
			{"Expense trend", cli.FormatTrend(r.Rates.ExpenseTrend)},
			cli.SeparatorRow,
			{"Net worth", cli.RenderSigned(r.NetWorth.NetWorth)},
			{"Wellness score", scoreLine(r.Wellness)},
			{"Portfolio score", scoreLine(r.Portfolio)},
		}

		fmt.Print(cli.RenderTable(cli.Table{
			Headers: []string{"Metric", "Value"},
			Rows:    rows,
		}))

		if !r.Rates.HasIncome {
			fmt.Println()
			fmt.Println(cli.RenderWarning("No income recorded yet; rates are relative to zero."))
		}
		return nil
	})
}

func scoreLine(hs model.HealthScore) string {
	return fmt.Sprintf("%s  %s", cli.RenderScoreBar(hs.Score, 20), hs.Label)
}
