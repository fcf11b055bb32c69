package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Class is the engine's classification of a transaction.
type Class string

const (
	ClassIncome     Class = "income"
	ClassExpense    Class = "expense"
	ClassInvestment Class = "investment"
)

// Classified pairs a transaction with its classification.
type Classified struct {
	Transaction
	Class Class
}

// MonthlyBucket holds one calendar month's aggregated sums.
// Income, Expense and Investment are sums of absolute amounts; EndingBalance
// is the signed running balance at the end of the month.
type MonthlyBucket struct {
	Month         time.Time
	Key           string
	Income        decimal.Decimal
	Expense       decimal.Decimal
	Investment    decimal.Decimal
	EndingBalance decimal.Decimal
	Transactions  int
}

// Totals holds all-time sums across every transaction in the input.
type Totals struct {
	Income         decimal.Decimal
	Expense        decimal.Decimal
	Investment     decimal.Decimal
	RunningBalance decimal.Decimal
	Transactions   int
}

// RateSnapshot holds percentage rates derived from totals and buckets.
// Every rate is within [0,100] except the two trends, which are signed.
type RateSnapshot struct {
	SavingsRate     float64
	ExpenseRate     float64
	InvestmentRate  float64
	BudgetAdherence float64
	IncomeTrend     float64
	ExpenseTrend    float64

	MonthlyIncome     decimal.Decimal
	MonthlyExpense    decimal.Decimal
	MonthlyInvestment decimal.Decimal

	// HasIncome is true when any income was recorded, all-time.
	HasIncome bool
}

// Score factor names shared by the score and feedback packages.
const (
	FactorSavings         = "savings"
	FactorBudget          = "budget"
	FactorGoals           = "goals"
	FactorDiversification = "diversification"
	FactorConsistency     = "consistency"
	FactorExpense         = "expense"
	FactorInvestment      = "investment"
)

// ScoreFactor is one normalized input of a composite score.
type ScoreFactor struct {
	Name    string
	Score   float64 // 0..Max
	Max     float64
	Weight  float64 // 0 for capped-sum formulas
	HasData bool    // false when Score is a neutral fallback
}

// Percent returns Score as a percentage of Max.
func (f ScoreFactor) Percent() float64 {
	if f.Max <= 0 {
		return 0
	}
	return f.Score / f.Max * 100
}

// HealthScore is a named composite 0-100 score.
type HealthScore struct {
	Formula string
	Score   int
	Label   string
	Factors []ScoreFactor
}

// Factor returns the named factor and whether it exists.
func (h HealthScore) Factor(name string) (ScoreFactor, bool) {
	for _, f := range h.Factors {
		if f.Name == name {
			return f, true
		}
	}
	return ScoreFactor{}, false
}

// ActivityCounts holds raw counts the feedback rules look at.
type ActivityCounts struct {
	DepositCount       int
	DepositTotal       decimal.Decimal
	DepositDays        int
	IncomeDays         int
	DistinctCurrencies int
	AssetCategories    int
	GoalCount          int
	CompletedGoals     int
}

// Badge is an achievement flag unlocked by the current data.
type Badge struct {
	ID          string
	Title       string
	Description string
}

// Feedback is the qualitative output for one score.
type Feedback struct {
	Tips   []string
	Badges []Badge
}

// HasBadge reports whether the badge id is unlocked.
func (f Feedback) HasBadge(id string) bool {
	for _, b := range f.Badges {
		if b.ID == id {
			return true
		}
	}
	return false
}

// CategorySpend holds expense totals for one transaction category.
type CategorySpend struct {
	Category     string
	Amount       decimal.Decimal
	Transactions int
	SharePercent float64
}

// AllocationSlice is one category's share of assets or liabilities.
type AllocationSlice struct {
	Category     string
	Amount       decimal.Decimal
	Count        int
	SharePercent float64
}

// NetWorthStats holds the balance sheet view of assets and liabilities.
type NetWorthStats struct {
	TotalAssets        decimal.Decimal
	TotalLiabilities   decimal.Decimal
	NetWorth           decimal.Decimal
	DebtToAssetRatio   float64
	MonthlyDebtPayment decimal.Decimal
	AssetAllocation    []AllocationSlice
	LiabilityBreakdown []AllocationSlice
	Currencies         []string
}

// Report is the full engine output for one snapshot.
type Report struct {
	GeneratedAt time.Time
	Months      int
	Formula     string

	Buckets  []MonthlyBucket
	Totals   Totals
	Rates    RateSnapshot
	Counts   ActivityCounts
	NetWorth NetWorthStats

	Wellness  HealthScore
	Portfolio HealthScore
	Feedback  Feedback

	Categories []CategorySpend
	Recurring  RecurringStats
}

// Score returns the report's score for the named formula.
func (r Report) Score(formula string) HealthScore {
	if formula == r.Portfolio.Formula {
		return r.Portfolio
	}
	return r.Wellness
}
