package pipeline

import (
	"math"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/theirongolddev/finpulse/internal/model"
)

func bucket(income, expense, investment int64) model.MonthlyBucket {
	return model.MonthlyBucket{
		Income:     decimal.NewFromInt(income),
		Expense:    decimal.NewFromInt(expense),
		Investment: decimal.NewFromInt(investment),
	}
}

func TestComputeRates_Empty(t *testing.T) {
	r := ComputeRates(model.Totals{}, model.MonthlyBucket{}, model.MonthlyBucket{}, nil)
	for name, v := range map[string]float64{
		"savings":    r.SavingsRate,
		"expense":    r.ExpenseRate,
		"investment": r.InvestmentRate,
		"budget":     r.BudgetAdherence,
		"incomeTr":   r.IncomeTrend,
		"expenseTr":  r.ExpenseTrend,
	} {
		if v != 0 {
			t.Errorf("%s = %v, want 0", name, v)
		}
	}
	if r.HasIncome {
		t.Fatal("HasIncome on empty totals")
	}
}

func TestComputeRates_SavingsFloorsAtZero(t *testing.T) {
	totals := model.Totals{Income: decimal.NewFromInt(100), Expense: decimal.NewFromInt(250)}
	r := ComputeRates(totals, model.MonthlyBucket{}, model.MonthlyBucket{}, nil)
	if r.SavingsRate != 0 {
		t.Fatalf("SavingsRate = %v, want 0", r.SavingsRate)
	}
}

func TestComputeRates_SavingsRateIsUnrounded(t *testing.T) {
	totals := model.Totals{Income: decimal.NewFromInt(3), Expense: decimal.NewFromInt(1)}
	r := ComputeRates(totals, model.MonthlyBucket{}, model.MonthlyBucket{}, nil)
	if math.Abs(r.SavingsRate-200.0/3) > 1e-9 {
		t.Fatalf("SavingsRate = %v, want 66.67", r.SavingsRate)
	}
}

func TestComputeRates_MonthlyRatesRoundAndClamp(t *testing.T) {
	cur := bucket(200, 101, 500)
	r := ComputeRates(model.Totals{Income: decimal.NewFromInt(200)}, cur, model.MonthlyBucket{}, nil)
	if r.ExpenseRate != 51 {
		t.Fatalf("ExpenseRate = %v, want 51 (50.5 rounds up)", r.ExpenseRate)
	}
	if r.InvestmentRate != 100 {
		t.Fatalf("InvestmentRate = %v, want 100 (clamped)", r.InvestmentRate)
	}
	assertDecimal(t, "MonthlyIncome", r.MonthlyIncome, "200")
}

func TestComputeRates_TrendsAreSigned(t *testing.T) {
	cur := bucket(50, 300, 0)
	prev := bucket(100, 200, 0)
	r := ComputeRates(model.Totals{}, cur, prev, nil)
	if r.IncomeTrend != -50 {
		t.Fatalf("IncomeTrend = %v, want -50", r.IncomeTrend)
	}
	if r.ExpenseTrend != 50 {
		t.Fatalf("ExpenseTrend = %v, want 50", r.ExpenseTrend)
	}
}

func TestTrend_ZeroPreviousIsZero(t *testing.T) {
	if got := Trend(decimal.NewFromInt(500), decimal.Zero); got != 0 {
		t.Fatalf("Trend = %v, want 0", got)
	}
}

func TestBudgetAdherence_FlatSpendingIsPerfect(t *testing.T) {
	if got := BudgetAdherence([]float64{100, 100, 100}); got != 100 {
		t.Fatalf("BudgetAdherence = %v, want 100", got)
	}
}

func TestBudgetAdherence_Volatile(t *testing.T) {
	// mean 100, population std dev 100 -> cv 100% -> 0
	if got := BudgetAdherence([]float64{0.0001, 199.9999}); math.Abs(got) > 1e-3 {
		t.Fatalf("BudgetAdherence = %v, want ~0", got)
	}
	// mean 100, std dev 50 -> 50
	if got := BudgetAdherence([]float64{50, 150}); got != 50 {
		t.Fatalf("BudgetAdherence = %v, want 50", got)
	}
}

func TestComputeRates_BudgetSkipsEmptyMonths(t *testing.T) {
	buckets := []model.MonthlyBucket{bucket(0, 100, 0), bucket(0, 0, 0), bucket(0, 100, 0)}
	r := ComputeRates(model.Totals{}, model.MonthlyBucket{}, model.MonthlyBucket{}, buckets)
	if r.BudgetAdherence != 100 {
		t.Fatalf("BudgetAdherence = %v, want 100", r.BudgetAdherence)
	}
}
