package score

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/theirongolddev/finpulse/internal/model"
)

func goal(target, current int64) model.SavingsGoal {
	return model.SavingsGoal{
		TargetAmount:  decimal.NewFromInt(target),
		CurrentAmount: decimal.NewFromInt(current),
		Status:        model.GoalActive,
	}
}

func TestGoalProgress_MixedGoals(t *testing.T) {
	got, ok := GoalProgress([]model.SavingsGoal{goal(100, 100), goal(100, 50), goal(100, 0)})
	if !ok {
		t.Fatal("GoalProgress reported no goals")
	}
	if got != 50 {
		t.Fatalf("GoalProgress = %v, want 50", got)
	}
}

func TestGoalProgress_NoGoalsIsNeutral(t *testing.T) {
	got, ok := GoalProgress(nil)
	if ok {
		t.Fatal("GoalProgress reported goals for nil input")
	}
	if got != 50 {
		t.Fatalf("GoalProgress = %v, want 50", got)
	}
}

func TestGoalProgress_ClampsOverfundedAndZeroTarget(t *testing.T) {
	got, _ := GoalProgress([]model.SavingsGoal{goal(100, 250), goal(0, 10)})
	if got != 50 {
		t.Fatalf("GoalProgress = %v, want 50 (100 + 0) / 2", got)
	}
}

func TestPortfolio_IncomeOnlyMonth(t *testing.T) {
	rates := model.RateSnapshot{
		SavingsRate:   100,
		MonthlyIncome: decimal.NewFromInt(1000),
		HasIncome:     true,
	}
	hs := Portfolio(rates)

	want := map[string]float64{
		model.FactorSavings:    40,
		model.FactorExpense:    30,
		model.FactorInvestment: 0,
	}
	for name, w := range want {
		f, ok := hs.Factor(name)
		if !ok {
			t.Fatalf("factor %q missing", name)
		}
		if f.Score != w {
			t.Errorf("%s score = %v, want %v", name, f.Score, w)
		}
	}
	if hs.Score != 70 {
		t.Fatalf("Portfolio score = %d, want 70", hs.Score)
	}
	if hs.Label != "Good" {
		t.Fatalf("label = %q, want Good", hs.Label)
	}
}

func TestPortfolio_EmptyIsZero(t *testing.T) {
	hs := Portfolio(model.RateSnapshot{})
	if hs.Score != 0 {
		t.Fatalf("Portfolio score = %d, want 0", hs.Score)
	}
	for _, f := range hs.Factors {
		if f.HasData {
			t.Errorf("factor %s has data on empty input", f.Name)
		}
	}
}

func TestPortfolio_ExpenseScoreFloorsAtZero(t *testing.T) {
	hs := Portfolio(model.RateSnapshot{
		ExpenseRate:    100,
		InvestmentRate: 100,
		MonthlyIncome:  decimal.NewFromInt(1),
		HasIncome:      true,
	})
	f, _ := hs.Factor(model.FactorExpense)
	if f.Score != 0 {
		t.Fatalf("expense score = %v, want 0", f.Score)
	}
	if hs.Score != 30 {
		t.Fatalf("Portfolio score = %d, want 30 (investment capped)", hs.Score)
	}
}

func TestWellness_WeightedSum(t *testing.T) {
	hs := Wellness(WellnessInput{
		Rates: model.RateSnapshot{SavingsRate: 100, BudgetAdherence: 100, HasIncome: true},
		Goals: []model.SavingsGoal{goal(100, 100)},
		Counts: model.ActivityCounts{
			DistinctCurrencies: 2,
			AssetCategories:    2,
			IncomeDays:         12,
		},
		ExpenseMonths: 3,
		Transactions:  20,
	})
	// 30 + 25 + 20 + 0.15*40 + 10 = 91
	if hs.Score != 91 {
		t.Fatalf("Wellness score = %d, want 91", hs.Score)
	}
	if hs.Label != "Excellent" {
		t.Fatalf("label = %q, want Excellent", hs.Label)
	}
	if hs.Formula != string(FormulaWellness) {
		t.Fatalf("formula = %q", hs.Formula)
	}
}

func TestWellness_EmptyUsesNeutralGoalDefault(t *testing.T) {
	hs := Wellness(WellnessInput{})
	if hs.Score != 10 {
		t.Fatalf("Wellness score = %d, want 10 (goal default 50 * 0.20)", hs.Score)
	}
	if hs.Label != "Needs Work" {
		t.Fatalf("label = %q, want Needs Work", hs.Label)
	}
}

func TestDiversificationClamps(t *testing.T) {
	if got := Diversification(10, 10); got != 100 {
		t.Fatalf("Diversification = %v, want 100", got)
	}
	if got := Diversification(1, 2); got != 25 {
		t.Fatalf("Diversification = %v, want 25", got)
	}
}

func TestLabelBands(t *testing.T) {
	cases := map[int]string{100: "Excellent", 80: "Excellent", 79: "Good", 60: "Good", 59: "Fair", 40: "Fair", 39: "Needs Work", 0: "Needs Work"}
	for s, want := range cases {
		if got := Label(s); got != want {
			t.Errorf("Label(%d) = %q, want %q", s, got, want)
		}
	}
}

func TestByName(t *testing.T) {
	f, err := ByName(" Portfolio ")
	if err != nil {
		t.Fatalf("ByName: %v", err)
	}
	if f != FormulaPortfolio {
		t.Fatalf("formula = %q, want portfolio", f)
	}
	if _, err := ByName("health"); !errors.Is(err, ErrUnknownFormula) {
		t.Fatalf("err = %v, want ErrUnknownFormula", err)
	}
}

func TestScoresStayInRange(t *testing.T) {
	extremes := []model.RateSnapshot{
		{SavingsRate: 100, ExpenseRate: 0, InvestmentRate: 100, BudgetAdherence: 100, MonthlyIncome: decimal.NewFromInt(1), HasIncome: true},
		{SavingsRate: 0, ExpenseRate: 100, InvestmentRate: 0, BudgetAdherence: 0},
	}
	for _, r := range extremes {
		for _, f := range Formulas {
			hs := Compute(f, WellnessInput{Rates: r, Counts: model.ActivityCounts{IncomeDays: 99, DistinctCurrencies: 9, AssetCategories: 9}})
			if hs.Score < 0 || hs.Score > 100 {
				t.Errorf("%s score %d out of range", f, hs.Score)
			}
		}
	}
}
