package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/finpulse/internal/cli"
	"github.com/theirongolddev/finpulse/internal/model"
	"github.com/theirongolddev/finpulse/internal/store"
)

var networthCmd = &cobra.Command{
	Use:     "networth",
	Aliases: []string{"balance-sheet"},
	Short:   "Assets, liabilities and net worth",
	RunE:    runNetWorth,
}

func init() {
	rootCmd.AddCommand(networthCmd)
}

func runNetWorth(_ *cobra.Command, _ []string) error {
	return withReport(func(_ context.Context, _ *store.Store, r model.Report) error {
		nw := r.NetWorth
		if nw.TotalAssets.IsZero() && nw.TotalLiabilities.IsZero() {
			fmt.Println()
			fmt.Println("  No assets or liabilities recorded.")
			fmt.Println("  Add some with `finpulse add asset` or `finpulse add liability`.")
			fmt.Println()
			return nil
		}

		fmt.Println()
		fmt.Println(cli.RenderTitle("NET WORTH"))
		fmt.Println()

		rows := [][]string{
			{"Assets", cli.FormatMoney(nw.TotalAssets)},
			{"Liabilities", cli.FormatMoney(nw.TotalLiabilities)},
			{"Net worth", cli.RenderSigned(nw.NetWorth)},
			cli.SeparatorRow,
			{"Debt to assets", cli.FormatRatio(nw.DebtToAssetRatio)},
			{"Monthly debt payments", cli.FormatMoney(nw.MonthlyDebtPayment)},
		}
		if len(nw.Currencies) > 1 {
			rows = append(rows, []string{"Currencies", strings.Join(nw.Currencies, ", ")})
		}
		fmt.Print(cli.RenderTable(cli.Table{
			Headers: []string{"Metric", "Value"},
			Rows:    rows,
		}))

		printAllocation("ASSET ALLOCATION", nw.AssetAllocation)
		printAllocation("LIABILITIES BY TYPE", nw.LiabilityBreakdown)

		if len(nw.Currencies) > 1 {
			fmt.Println(cli.RenderWarning("Amounts in different currencies are summed without conversion."))
			fmt.Println()
		}
		return nil
	})
}

func printAllocation(title string, slices []model.AllocationSlice) {
	if len(slices) == 0 {
		return
	}
	rows := make([][]string, 0, len(slices))
	for _, s := range slices {
		rows = append(rows, []string{
			s.Category,
			cli.FormatMoney(s.Amount),
			cli.FormatNumber(int64(s.Count)),
			fmt.Sprintf("%.1f%%", s.SharePercent),
		})
	}
	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   title,
		Headers: []string{"Category", "Amount", "Items", "Share"},
		Rows:    rows,
	}))
	fmt.Println()
}
