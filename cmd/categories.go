package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/finpulse/internal/cli"
	"github.com/theirongolddev/finpulse/internal/model"
	"github.com/theirongolddev/finpulse/internal/store"
)

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "Spending by category over the window",
	RunE:  runCategories,
}

func init() {
	rootCmd.AddCommand(categoriesCmd)
}

func runCategories(_ *cobra.Command, _ []string) error {
	return withReport(func(_ context.Context, _ *store.Store, r model.Report) error {
		if len(r.Categories) == 0 {
			fmt.Println()
			fmt.Println("  No expenses in the selected window.")
			fmt.Println()
			return nil
		}

		fmt.Println()
		fmt.Println(cli.RenderTitle(fmt.Sprintf("SPENDING BY CATEGORY  Last %d months", r.Months)))
		fmt.Println()

		rows := make([][]string, 0, len(r.Categories))
		for _, c := range r.Categories {
			rows = append(rows, []string{
				c.Category,
				cli.FormatMoney(c.Amount),
				cli.FormatNumber(int64(c.Transactions)),
				fmt.Sprintf("%.1f%%", c.SharePercent),
			})
		}
		fmt.Print(cli.RenderTable(cli.Table{
			Headers: []string{"Category", "Spent", "Txns", "Share"},
			Rows:    rows,
		}))

		fmt.Println()
		top := r.Categories[0].SharePercent
		for _, c := range r.Categories[:min(len(r.Categories), 8)] {
			fmt.Println(cli.RenderHorizontalBar(fmt.Sprintf("%-16s", truncate(c.Category, 16)), c.SharePercent, top, 40))
		}
		fmt.Println()
		return nil
	})
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	if n <= 1 {
		return string(r[:n])
	}
	return string(r[:n-1]) + "…"
}
