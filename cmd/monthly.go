package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/finpulse/internal/cli"
	"github.com/theirongolddev/finpulse/internal/model"
	"github.com/theirongolddev/finpulse/internal/store"
)

var monthlyCmd = &cobra.Command{
	Use:     "monthly",
	Aliases: []string{"months"},
	Short:   "Month-by-month cash flow",
	RunE:    runMonthly,
}

func init() {
	rootCmd.AddCommand(monthlyCmd)
}

func runMonthly(_ *cobra.Command, _ []string) error {
	return withReport(func(_ context.Context, _ *store.Store, r model.Report) error {
		if r.Totals.Transactions == 0 {
			printEmpty()
			return nil
		}

		fmt.Println()
		fmt.Println(cli.RenderTitle(fmt.Sprintf("MONTHLY CASH FLOW  Last %d months", r.Months)))
		fmt.Println()

		rows := make([][]string, 0, len(r.Buckets)+2)
		balances := make([]float64, 0, len(r.Buckets))
		for _, b := range r.Buckets {
			net := b.Income.Sub(b.Expense).Sub(b.Investment)
			rows = append(rows, []string{
				cli.FormatMonth(b.Month),
				cli.FormatMoney(b.Income),
				cli.FormatMoney(b.Expense),
				cli.FormatMoney(b.Investment),
				cli.RenderSigned(net),
				cli.FormatMoney(b.EndingBalance),
				cli.FormatNumber(int64(b.Transactions)),
			})
			balances = append(balances, b.EndingBalance.InexactFloat64())
		}

		rows = append(rows, cli.SeparatorRow, []string{
			"All time",
			cli.FormatMoney(r.Totals.Income),
			cli.FormatMoney(r.Totals.Expense),
			cli.FormatMoney(r.Totals.Investment),
			"",
			cli.FormatMoney(r.Totals.RunningBalance),
			cli.FormatNumber(int64(r.Totals.Transactions)),
		})

		fmt.Print(cli.RenderTable(cli.Table{
			Headers: []string{"Month", "Income", "Expense", "Invested", "Net", "Balance", "Txns"},
			Rows:    rows,
		}))

		fmt.Println()
		fmt.Printf("  Balance  %s\n", cli.RenderSparkline(shiftToZero(balances)))
		fmt.Printf("  Income %s   Expenses %s\n",
			cli.FormatTrend(r.Rates.IncomeTrend), cli.FormatTrend(r.Rates.ExpenseTrend))
		fmt.Println()
		return nil
	})
}

// shiftToZero offsets a series so its minimum is zero, keeping negative
// balances visible in a sparkline.
func shiftToZero(vals []float64) []float64 {
	if len(vals) == 0 {
		return vals
	}
	lo := vals[0]
	for _, v := range vals[1:] {
		lo = min(lo, v)
	}
	if lo >= 0 {
		return vals
	}
	out := make([]float64, len(vals))
	for i, v := range vals {
		out[i] = v - lo
	}
	return out
}
