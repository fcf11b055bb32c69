package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/finpulse/internal/cli"
	"github.com/theirongolddev/finpulse/internal/logger"
	"github.com/theirongolddev/finpulse/internal/model"
	"github.com/theirongolddev/finpulse/internal/store"
)

var listCmd = &cobra.Command{
	Use:       "list <kind>",
	Aliases:   []string{"ls"},
	Short:     "List stored records of one kind",
	Long:      "List stored records. kind is one of: " + joinKinds(model.RecordKinds),
	Args:      cobra.ExactArgs(1),
	ValidArgs: kindNames(),
	RunE:      runList,
}

var deleteCmd = &cobra.Command{
	Use:     "delete <kind> <id>",
	Aliases: []string{"rm"},
	Short:   "Delete one record by id",
	Args:    cobra.ExactArgs(2),
	RunE:    runDelete,
}

func init() {
	rootCmd.AddCommand(listCmd, deleteCmd)
}

func kindNames() []string {
	out := make([]string, len(model.RecordKinds))
	for i, k := range model.RecordKinds {
		out[i] = string(k)
	}
	return out
}

func runList(_ *cobra.Command, args []string) error {
	kind, err := model.ParseRecordKind(args[0])
	if err != nil {
		return err
	}

	ctx := logger.WithContext(context.Background(), log)
	st, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = st.Close() }()

	table, err := recordTable(ctx, st, kind)
	if err != nil {
		return err
	}
	if len(table.Rows) == 0 {
		fmt.Printf("\n  No %s records.\n\n", kind)
		return nil
	}
	fmt.Println()
	fmt.Print(cli.RenderTable(table))
	fmt.Println()
	return nil
}

func recordTable(ctx context.Context, st *store.Store, kind model.RecordKind) (cli.Table, error) {
	var t cli.Table
	switch kind {
	case model.KindTransaction:
		txs, err := st.ListTransactions(ctx, limit())
		if err != nil {
			return t, err
		}
		t.Headers = []string{"Date", "Amount", "Type", "Category", "Description", "ID"}
		for _, tx := range txs {
			t.Rows = append(t.Rows, []string{
				tx.Timestamp.Local().Format("2006-01-02"),
				cli.RenderSigned(tx.Amount),
				string(tx.Type),
				tx.Category,
				truncate(tx.Description, 32),
				tx.ID,
			})
		}
	case model.KindAsset:
		assets, err := st.ListAssets(ctx)
		if err != nil {
			return t, err
		}
		t.Headers = []string{"Name", "Category", "Value", "Currency", "ID"}
		for _, a := range assets {
			t.Rows = append(t.Rows, []string{a.Name, string(a.Category), cli.FormatMoney(a.CurrentValue), a.Currency, a.ID})
		}
	case model.KindLiability:
		ls, err := st.ListLiabilities(ctx)
		if err != nil {
			return t, err
		}
		t.Headers = []string{"Name", "Category", "Remaining", "Payment", "ID"}
		for _, l := range ls {
			payment := "-"
			if l.MonthlyPayment != nil {
				payment = cli.FormatMoney(*l.MonthlyPayment)
			}
			t.Rows = append(t.Rows, []string{l.Name, string(l.Category), cli.FormatMoney(l.RemainingAmount), payment, l.ID})
		}
	case model.KindGoal:
		goals, err := st.ListGoals(ctx)
		if err != nil {
			return t, err
		}
		t.Headers = []string{"Name", "Saved", "Target", "Status", "ID"}
		for _, g := range goals {
			t.Rows = append(t.Rows, []string{g.Name, cli.FormatMoney(g.CurrentAmount), cli.FormatMoney(g.TargetAmount), string(g.Status), g.ID})
		}
	case model.KindRecurring:
		items, err := st.ListRecurring(ctx)
		if err != nil {
			return t, err
		}
		t.Headers = []string{"Name", "Amount", "Every", "Active", "ID"}
		for _, r := range items {
			t.Rows = append(t.Rows, []string{r.Name, cli.FormatMoney(r.Amount), string(r.Frequency), fmt.Sprint(r.IsActive), r.ID})
		}
	}
	return t, nil
}

func runDelete(_ *cobra.Command, args []string) error {
	kind, err := model.ParseRecordKind(args[0])
	if err != nil {
		return err
	}

	ctx := logger.WithContext(context.Background(), log)
	st, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = st.Close() }()

	if err := st.DeleteRecord(ctx, kind, args[1]); err != nil {
		return fmt.Errorf("deleting %s %s: %w", kind, args[1], err)
	}
	if !flagQuiet {
		fmt.Printf("  Deleted %s %s\n", kind, args[1])
	}
	return nil
}
