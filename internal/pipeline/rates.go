package pipeline

import (
	"github.com/shopspring/decimal"

	"github.com/theirongolddev/finpulse/internal/model"
	"github.com/theirongolddev/finpulse/internal/stats"
)

// ComputeRates derives percentage rates from all-time totals, the current and
// previous month buckets, and the monthly series.
//
// SavingsRate uses all-time totals and floors at 0: spending more than was
// earned reads as "no savings", never as a negative rate. Expense and
// investment rates use the current month only. Trends are signed.
func ComputeRates(totals model.Totals, current, previous model.MonthlyBucket, buckets []model.MonthlyBucket) model.RateSnapshot {
	income := totals.Income.InexactFloat64()
	expense := totals.Expense.InexactFloat64()

	r := model.RateSnapshot{HasIncome: income > 0}
	if r.HasIncome {
		r.SavingsRate = stats.Clamp((income-expense)/income*100, 0, 100)
	}

	monthlyIncome := current.Income.InexactFloat64()
	r.ExpenseRate = stats.Clamp(stats.Round(stats.Percent(current.Expense.InexactFloat64(), monthlyIncome)), 0, 100)
	r.InvestmentRate = stats.Clamp(stats.Round(stats.Percent(current.Investment.InexactFloat64(), monthlyIncome)), 0, 100)

	r.IncomeTrend = Trend(current.Income, previous.Income)
	r.ExpenseTrend = Trend(current.Expense, previous.Expense)

	expenses := make([]float64, 0, len(buckets))
	for _, b := range buckets {
		if b.Expense.IsPositive() {
			expenses = append(expenses, b.Expense.InexactFloat64())
		}
	}
	r.BudgetAdherence = BudgetAdherence(expenses)

	r.MonthlyIncome = current.Income
	r.MonthlyExpense = current.Expense
	r.MonthlyInvestment = current.Investment
	return r
}

// Trend returns the rounded month-over-month change in percent, or 0 when the
// previous value is not positive.
func Trend(this, last decimal.Decimal) float64 {
	if !last.IsPositive() {
		return 0
	}
	l := last.InexactFloat64()
	return stats.Round((this.InexactFloat64() - l) / l * 100)
}

// BudgetAdherence scores month-to-month expense stability on 0-100.
// Pass only non-empty months. The coefficient of variation (population) is
// clamped to [0,100] and inverted, so flat spending scores 100. With no
// expense history at all there is nothing to adhere to and the result is 0.
func BudgetAdherence(expenses []float64) float64 {
	if len(expenses) == 0 {
		return 0
	}
	mean := stats.Mean(expenses)
	if mean == 0 {
		return 100
	}
	cv := stats.PopulationStdDev(expenses) / mean * 100
	return 100 - stats.Clamp(cv, 0, 100)
}
