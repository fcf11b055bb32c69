package cmd

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/theirongolddev/finpulse/internal/logger"
	"github.com/theirongolddev/finpulse/internal/model"
	"github.com/theirongolddev/finpulse/internal/store"
)

var (
	flagTxDate       string
	flagTxType       string
	flagTxCategory   string
	flagTxDesc       string
	flagTxInvestment bool

	flagCurrency          string
	flagAssetCategory     string
	flagLiabilityCategory string

	flagRate    string
	flagPayment string

	flagGoalCurrent string
	flagGoalDone    bool

	flagRecFrequency string
	flagRecPaused    bool
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Record a transaction, asset, liability, goal or recurring expense",
}

var addTxCmd = &cobra.Command{
	Use:     "tx <amount>",
	Aliases: []string{"transaction"},
	Short:   "Record a transaction",
	Long: "Record a transaction. Positive amounts are inflows. Expenses, withdrawals\n" +
		"and investments are always stored as outflows. Put -- before a negative amount.",
	Args: cobra.ExactArgs(1),
	RunE: runAddTx,
}

var addAssetCmd = &cobra.Command{
	Use:   "asset <name> <value>",
	Short: "Record an asset",
	Args:  cobra.ExactArgs(2),
	RunE:  runAddAsset,
}

var addLiabilityCmd = &cobra.Command{
	Use:     "liability <name> <remaining>",
	Aliases: []string{"debt"},
	Short:   "Record a liability",
	Args:    cobra.ExactArgs(2),
	RunE:    runAddLiability,
}

var addGoalCmd = &cobra.Command{
	Use:   "goal <name> <target>",
	Short: "Record a savings goal",
	Args:  cobra.ExactArgs(2),
	RunE:  runAddGoal,
}

var addRecurringCmd = &cobra.Command{
	Use:     "recurring <name> <amount>",
	Aliases: []string{"bill"},
	Short:   "Record a recurring expense",
	Args:    cobra.ExactArgs(2),
	RunE:    runAddRecurring,
}

func init() {
	addCmd.PersistentFlags().StringVar(&flagCurrency, "currency", "USD", "ISO currency code")

	addTxCmd.Flags().StringVar(&flagTxDate, "date", "", "Date as YYYY-MM-DD or RFC3339 (default now)")
	addTxCmd.Flags().StringVarP(&flagTxType, "type", "t", "", "deposit, withdrawal, expense or transfer")
	addTxCmd.Flags().StringVarP(&flagTxCategory, "category", "c", "", "Category, e.g. groceries")
	addTxCmd.Flags().StringVarP(&flagTxDesc, "desc", "d", "", "Description")
	addTxCmd.Flags().BoolVar(&flagTxInvestment, "investment", false, "Mark the outflow as an investment")

	addAssetCmd.Flags().StringVarP(&flagAssetCategory, "category", "c", string(model.AssetCash), "Asset category: "+joinKinds(model.AssetCategories))

	addLiabilityCmd.Flags().StringVarP(&flagLiabilityCategory, "category", "c", string(model.LiabilityOther), "Liability category: "+joinKinds(model.LiabilityCategories))
	addLiabilityCmd.Flags().StringVar(&flagRate, "rate", "", "Annual interest rate in percent")
	addLiabilityCmd.Flags().StringVar(&flagPayment, "payment", "", "Monthly payment")

	addGoalCmd.Flags().StringVar(&flagGoalCurrent, "current", "0", "Amount saved so far")
	addGoalCmd.Flags().BoolVar(&flagGoalDone, "completed", false, "Mark the goal completed")

	addRecurringCmd.Flags().StringVarP(&flagRecFrequency, "every", "e", string(model.FrequencyMonthly), "Frequency: "+joinKinds(model.Frequencies))
	addRecurringCmd.Flags().BoolVar(&flagRecPaused, "paused", false, "Record as inactive")

	addCmd.AddCommand(addTxCmd, addAssetCmd, addLiabilityCmd, addGoalCmd, addRecurringCmd)
	rootCmd.AddCommand(addCmd)
}

func runAddTx(_ *cobra.Command, args []string) error {
	amount, err := parseAmount("amount", args[0])
	if err != nil {
		return err
	}
	ts, err := parseDate(flagTxDate, time.Now())
	if err != nil {
		return err
	}
	typ, err := model.ParseTransactionType(flagTxType)
	if err != nil {
		return err
	}

	desc := flagTxDesc
	if flagTxInvestment {
		desc = model.TagInvestment(desc)
	}
	if flagTxInvestment || typ == model.TypeExpense || typ == model.TypeWithdrawal {
		amount = amount.Abs().Neg()
	}

	tx := model.Transaction{
		Timestamp:   ts,
		Amount:      amount,
		Type:        typ,
		Category:    strings.TrimSpace(flagTxCategory),
		Description: desc,
		Currency:    strings.ToUpper(flagCurrency),
	}
	return addRecord(model.KindTransaction, func(ctx context.Context, st *store.Store) (string, error) {
		return st.AddTransaction(ctx, tx)
	})
}

func runAddAsset(_ *cobra.Command, args []string) error {
	value, err := parseAmount("value", args[1])
	if err != nil {
		return err
	}
	cat, err := model.ParseAssetCategory(flagAssetCategory)
	if err != nil {
		return err
	}
	a := model.Asset{
		Name:         args[0],
		Category:     cat,
		CurrentValue: value,
		Currency:     strings.ToUpper(flagCurrency),
	}
	return addRecord(model.KindAsset, func(ctx context.Context, st *store.Store) (string, error) {
		return st.AddAsset(ctx, a)
	})
}

func runAddLiability(_ *cobra.Command, args []string) error {
	remaining, err := parseAmount("remaining", args[1])
	if err != nil {
		return err
	}
	cat, err := model.ParseLiabilityCategory(flagLiabilityCategory)
	if err != nil {
		return err
	}
	l := model.Liability{
		Name:            args[0],
		Category:        cat,
		RemainingAmount: remaining,
		Currency:        strings.ToUpper(flagCurrency),
	}
	if l.InterestRate, err = optionalAmount("rate", flagRate); err != nil {
		return err
	}
	if l.MonthlyPayment, err = optionalAmount("payment", flagPayment); err != nil {
		return err
	}
	return addRecord(model.KindLiability, func(ctx context.Context, st *store.Store) (string, error) {
		return st.AddLiability(ctx, l)
	})
}

func runAddGoal(_ *cobra.Command, args []string) error {
	target, err := parseAmount("target", args[1])
	if err != nil {
		return err
	}
	current, err := parseAmount("current", flagGoalCurrent)
	if err != nil {
		return err
	}
	g := model.SavingsGoal{
		Name:          args[0],
		TargetAmount:  target,
		CurrentAmount: current,
		Status:        model.GoalActive,
	}
	if flagGoalDone {
		g.Status = model.GoalCompleted
	}
	return addRecord(model.KindGoal, func(ctx context.Context, st *store.Store) (string, error) {
		return st.AddGoal(ctx, g)
	})
}

func runAddRecurring(_ *cobra.Command, args []string) error {
	amount, err := parseAmount("amount", args[1])
	if err != nil {
		return err
	}
	freq, err := model.ParseFrequency(flagRecFrequency)
	if err != nil {
		return err
	}
	r := model.RecurringExpense{
		Name:      args[0],
		Amount:    amount,
		Frequency: freq,
		IsActive:  !flagRecPaused,
	}
	return addRecord(model.KindRecurring, func(ctx context.Context, st *store.Store) (string, error) {
		return st.AddRecurring(ctx, r)
	})
}

// addRecord opens the store, runs insert and reports the new id.
func addRecord(kind model.RecordKind, insert func(ctx context.Context, st *store.Store) (string, error)) error {
	ctx := logger.WithContext(context.Background(), log)
	st, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = st.Close() }()

	id, err := insert(ctx, st)
	if err != nil {
		return fmt.Errorf("adding %s: %w", kind, err)
	}
	log.Debug().Str("kind", string(kind)).Str("id", id).Msg("record added")
	if !flagQuiet {
		fmt.Printf("  Added %s %s\n", kind, id)
	}
	return nil
}

func parseAmount(what, s string) (decimal.Decimal, error) {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	s = strings.TrimPrefix(s, "$")
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid %s %q: %w", what, s, err)
	}
	return d, nil
}

func optionalAmount(what, s string) (*decimal.Decimal, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	d, err := parseAmount(what, s)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func parseDate(s string, fallback time.Time) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return fallback, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	t, err := time.ParseInLocation("2006-01-02", s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: want YYYY-MM-DD or RFC3339", s)
	}
	return t, nil
}

func joinKinds[T ~string](kinds []T) string {
	parts := make([]string, len(kinds))
	for i, k := range kinds {
		parts[i] = string(k)
	}
	return strings.Join(parts, ", ")
}
