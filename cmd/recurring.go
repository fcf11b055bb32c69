package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/finpulse/internal/cli"
	"github.com/theirongolddev/finpulse/internal/model"
	"github.com/theirongolddev/finpulse/internal/pipeline"
	"github.com/theirongolddev/finpulse/internal/store"
)

var recurringCmd = &cobra.Command{
	Use:     "recurring",
	Aliases: []string{"bills"},
	Short:   "Recurring expenses normalized to monthly cost",
	RunE:    runRecurring,
}

func init() {
	rootCmd.AddCommand(recurringCmd)
}

func runRecurring(_ *cobra.Command, _ []string) error {
	return withReport(func(ctx context.Context, st *store.Store, r model.Report) error {
		items, err := st.ListRecurring(ctx)
		if err != nil {
			return err
		}
		if len(items) == 0 {
			fmt.Println()
			fmt.Println("  No recurring expenses recorded.")
			fmt.Println("  Add one with `finpulse add recurring`.")
			fmt.Println()
			return nil
		}

		fmt.Println()
		fmt.Println(cli.RenderTitle("RECURRING EXPENSES"))
		fmt.Println()

		rows := make([][]string, 0, len(items))
		for _, it := range items {
			status := "active"
			if !it.IsActive {
				status = "paused"
			}
			rows = append(rows, []string{
				it.Name,
				cli.FormatMoney(it.Amount),
				string(it.Frequency),
				cli.FormatMoney(pipeline.MonthlyEquivalent(it.Amount, it.Frequency)),
				status,
			})
		}
		fmt.Print(cli.RenderTable(cli.Table{
			Headers: []string{"Name", "Amount", "Every", "Per month", "Status"},
			Rows:    rows,
		}))

		rs := r.Recurring
		fmt.Println()
		fmt.Printf("  %d active  %s/month  %s/year\n",
			rs.ActiveCount, cli.FormatMoney(rs.MonthlyTotal), cli.FormatMoney(rs.YearlyTotal))
		if r.Rates.MonthlyIncome.IsPositive() {
			fmt.Printf("  %s of this month's income\n", cli.FormatPercent(rs.IncomeSharePercent))
		}
		fmt.Println()
		return nil
	})
}
