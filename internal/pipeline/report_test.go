package pipeline

import (
	"reflect"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/theirongolddev/finpulse/internal/feedback"
	"github.com/theirongolddev/finpulse/internal/model"
	"github.com/theirongolddev/finpulse/internal/score"
)

func TestBuild_EmptySnapshot(t *testing.T) {
	rep := Build(model.Snapshot{}, Options{Now: testNow, Formula: score.FormulaPortfolio})

	r := rep.Rates
	if r.SavingsRate != 0 || r.ExpenseRate != 0 || r.InvestmentRate != 0 || r.BudgetAdherence != 0 {
		t.Fatalf("rates = %+v, want all 0", r)
	}
	if rep.Portfolio.Score != 0 {
		t.Fatalf("portfolio score = %d, want 0", rep.Portfolio.Score)
	}
	if len(rep.Feedback.Badges) != 0 {
		t.Fatalf("badges = %v, want none", rep.Feedback.Badges)
	}
	if len(rep.Feedback.Tips) != 1 || rep.Feedback.Tips[0] != feedback.PositiveMessage {
		t.Fatalf("tips = %q, want exactly the positive message", rep.Feedback.Tips)
	}
	if len(rep.Buckets) != DefaultMonths {
		t.Fatalf("buckets = %d, want %d", len(rep.Buckets), DefaultMonths)
	}
}

func TestBuild_SingleIncome(t *testing.T) {
	snap := model.Snapshot{Transactions: []model.Transaction{tx("1000", "salary", testNow)}}
	rep := Build(snap, Options{Now: testNow, Formula: score.FormulaPortfolio})

	assertDecimal(t, "MonthlyIncome", rep.Rates.MonthlyIncome, "1000")
	if rep.Rates.SavingsRate != 100 {
		t.Fatalf("SavingsRate = %v, want 100", rep.Rates.SavingsRate)
	}
	if rep.Portfolio.Score != 70 {
		t.Fatalf("portfolio score = %d, want 70", rep.Portfolio.Score)
	}
	if f, _ := rep.Portfolio.Factor(model.FactorSavings); f.Score != 40 {
		t.Fatalf("savings score = %v, want 40", f.Score)
	}
	if f, _ := rep.Portfolio.Factor(model.FactorExpense); f.Score != 30 {
		t.Fatalf("expense score = %v, want 30", f.Score)
	}
	if f, _ := rep.Portfolio.Factor(model.FactorInvestment); f.Score != 0 {
		t.Fatalf("invest score = %v, want 0", f.Score)
	}
	if !rep.Feedback.HasBadge(feedback.BadgeFirstDeposit) || !rep.Feedback.HasBadge(feedback.BadgeBigSaver) {
		t.Fatalf("badges = %v, want first_deposit and big_saver", rep.Feedback.Badges)
	}
}

func TestBuild_ExpenseAndInvestmentWithoutIncome(t *testing.T) {
	snap := model.Snapshot{Transactions: []model.Transaction{
		tx("-200", "Groceries", testNow),
		tx("-300", "[INVESTMENT] Index Fund", testNow),
	}}
	rep := Build(snap, Options{Now: testNow})

	assertDecimal(t, "MonthlyExpense", rep.Rates.MonthlyExpense, "200")
	assertDecimal(t, "MonthlyInvestment", rep.Rates.MonthlyInvestment, "300")
	if rep.Rates.SavingsRate != 0 {
		t.Fatalf("SavingsRate = %v, want 0", rep.Rates.SavingsRate)
	}
	assertDecimal(t, "RunningBalance", rep.Totals.RunningBalance, "-500")
}

func TestBuild_GoalFactor(t *testing.T) {
	goals := []model.SavingsGoal{
		{TargetAmount: decimal.NewFromInt(100), CurrentAmount: decimal.NewFromInt(100)},
		{TargetAmount: decimal.NewFromInt(100), CurrentAmount: decimal.NewFromInt(50)},
		{TargetAmount: decimal.NewFromInt(100), CurrentAmount: decimal.Zero},
	}
	rep := Build(model.Snapshot{Goals: goals}, Options{Now: testNow})
	f, ok := rep.Wellness.Factor(model.FactorGoals)
	if !ok || f.Score != 50 {
		t.Fatalf("goal factor = %+v, want 50", f)
	}
	if !rep.Feedback.HasBadge(feedback.BadgeGoalSetter) || !rep.Feedback.HasBadge(feedback.BadgeGoalAchiever) {
		t.Fatalf("badges = %v, want goal_setter and goal_achiever", rep.Feedback.Badges)
	}
}

func TestBuild_FlatExpenseHistory(t *testing.T) {
	var txs []model.Transaction
	for i := 0; i < 3; i++ {
		txs = append(txs, tx("-100", "rent", testNow.AddDate(0, -i, 0)))
	}
	rep := Build(model.Snapshot{Transactions: txs}, Options{Now: testNow})
	if rep.Rates.BudgetAdherence != 100 {
		t.Fatalf("BudgetAdherence = %v, want 100", rep.Rates.BudgetAdherence)
	}
}

func TestBuild_IsIdempotent(t *testing.T) {
	snap := sampleSnapshot()
	a := Build(snap, Options{Now: testNow})
	b := Build(snap, Options{Now: testNow})
	if !reflect.DeepEqual(a, b) {
		t.Fatal("Build returned different reports for the same input")
	}
}

func TestBuild_DoesNotReorderInput(t *testing.T) {
	snap := sampleSnapshot()
	first := snap.Transactions[0].Description
	_ = Build(snap, Options{Now: testNow})
	if snap.Transactions[0].Description != first {
		t.Fatal("Build mutated the input transaction order")
	}
}

func TestBuild_RatesAndScoresInRange(t *testing.T) {
	rep := Build(sampleSnapshot(), Options{Now: testNow, Months: 12})
	for name, v := range map[string]float64{
		"savings":    rep.Rates.SavingsRate,
		"expense":    rep.Rates.ExpenseRate,
		"investment": rep.Rates.InvestmentRate,
		"budget":     rep.Rates.BudgetAdherence,
	} {
		if v < 0 || v > 100 {
			t.Errorf("%s rate %v out of range", name, v)
		}
	}
	for _, hs := range []model.HealthScore{rep.Wellness, rep.Portfolio} {
		if hs.Score < 0 || hs.Score > 100 {
			t.Errorf("%s score %d out of range", hs.Formula, hs.Score)
		}
	}
	for _, b := range rep.Buckets {
		if b.Income.IsNegative() || b.Expense.IsNegative() || b.Investment.IsNegative() {
			t.Errorf("bucket %s has negative sums", b.Key)
		}
	}
}

func TestBuild_FeedbackFollowsChosenFormula(t *testing.T) {
	snap := model.Snapshot{Transactions: []model.Transaction{
		tx("1000", "salary", testNow),
		tx("-950", "rent", testNow),
	}}
	rules := feedback.DefaultRules()
	rep := Build(snap, Options{Now: testNow, Formula: score.FormulaPortfolio, Rules: &rules})
	expenseTip, _ := feedback.Tip(model.FactorExpense)
	found := false
	for _, tip := range rep.Feedback.Tips {
		if tip == expenseTip {
			found = true
		}
	}
	if !found {
		t.Fatalf("tips = %q, want the expense tip", rep.Feedback.Tips)
	}
	if rep.Formula != string(score.FormulaPortfolio) {
		t.Fatalf("formula = %q", rep.Formula)
	}
}

func sampleSnapshot() model.Snapshot {
	payment := decimal.NewFromInt(250)
	return model.Snapshot{
		Transactions: []model.Transaction{
			tx("-42.10", "Groceries", testNow.Add(-time.Hour)),
			tx("3200", "Salary", testNow.AddDate(0, -1, 0)),
			tx("-1200", "Rent", testNow.AddDate(0, -1, 2)),
			tx("-400", "[INVESTMENT] ETF", testNow.AddDate(0, -2, 0)),
			tx("3100", "Salary", testNow.AddDate(0, -2, 0)),
			tx("-89.99", "Investment Banking Course", testNow.AddDate(0, -3, 0)),
			tx("3000", "Salary", testNow),
		},
		Assets: []model.Asset{
			{Name: "Checking", Category: model.AssetCash, CurrentValue: decimal.NewFromInt(5000), Currency: "USD"},
			{Name: "Brokerage", Category: model.AssetInvestments, CurrentValue: decimal.NewFromInt(12000), Currency: "USD"},
		},
		Liabilities: []model.Liability{
			{Name: "Car", Category: model.LiabilityCarLoan, RemainingAmount: decimal.NewFromInt(8000), MonthlyPayment: &payment, Currency: "USD"},
		},
		Goals: []model.SavingsGoal{
			{Name: "Trip", TargetAmount: decimal.NewFromInt(2000), CurrentAmount: decimal.NewFromInt(500)},
		},
		Recurring: []model.RecurringExpense{
			{Name: "Gym", Amount: decimal.NewFromInt(40), Frequency: model.FrequencyMonthly, IsActive: true},
		},
	}
}
