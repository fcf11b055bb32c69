package model

import "github.com/shopspring/decimal"

// RecurringStats holds active recurring expenses normalized to a monthly cost.
type RecurringStats struct {
	ActiveCount  int
	MonthlyTotal decimal.Decimal
	YearlyTotal  decimal.Decimal
	ByFrequency  map[Frequency]decimal.Decimal
	// Share of the current month's income committed to recurring bills, 0-100.
	IncomeSharePercent float64
}
