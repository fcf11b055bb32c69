package pipeline

import (
	"github.com/shopspring/decimal"

	"github.com/theirongolddev/finpulse/internal/model"
	"github.com/theirongolddev/finpulse/internal/stats"
)

var (
	twelve     = decimal.NewFromInt(12)
	daysPerYr  = decimal.NewFromInt(365)
	weeksPerYr = decimal.NewFromInt(52)
)

// MonthlyEquivalent normalizes a recurring amount to one month.
// Unknown frequencies contribute nothing.
func MonthlyEquivalent(amount decimal.Decimal, freq model.Frequency) decimal.Decimal {
	switch freq {
	case model.FrequencyDaily:
		return amount.Mul(daysPerYr).Div(twelve)
	case model.FrequencyWeekly:
		return amount.Mul(weeksPerYr).Div(twelve)
	case model.FrequencyMonthly:
		return amount
	case model.FrequencyYearly:
		return amount.Div(twelve)
	default:
		return decimal.Zero
	}
}

// RecurringCommitments totals active recurring expenses as a monthly cost.
// monthlyIncome is the current month's income; when positive, the share of it
// committed to recurring bills is reported.
func RecurringCommitments(items []model.RecurringExpense, monthlyIncome decimal.Decimal) model.RecurringStats {
	rs := model.RecurringStats{ByFrequency: make(map[model.Frequency]decimal.Decimal)}

	for _, item := range items {
		if !item.IsActive {
			continue
		}
		monthly := MonthlyEquivalent(item.Amount.Abs(), item.Frequency)
		rs.ActiveCount++
		rs.MonthlyTotal = rs.MonthlyTotal.Add(monthly)
		rs.ByFrequency[item.Frequency] = rs.ByFrequency[item.Frequency].Add(monthly)
	}

	rs.YearlyTotal = rs.MonthlyTotal.Mul(twelve)
	rs.IncomeSharePercent = stats.Clamp(
		stats.Percent(rs.MonthlyTotal.InexactFloat64(), monthlyIncome.InexactFloat64()), 0, 100)
	return rs
}
