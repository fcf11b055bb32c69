// Package model defines domain types for finpulse records and derived metrics.
package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType is the informative tag recorded with a transaction.
// Classification never relies on it.
type TransactionType string

const (
	TypeDeposit    TransactionType = "deposit"
	TypeWithdrawal TransactionType = "withdrawal"
	TypeExpense    TransactionType = "expense"
	TypeTransfer   TransactionType = "transfer"
)

// Transaction is one recorded money movement.
// Amount is signed: positive is an inflow, negative an outflow.
type Transaction struct {
	ID          string
	Timestamp   time.Time
	Amount      decimal.Decimal
	Type        TransactionType
	Category    string
	Description string
	Currency    string
}

// AssetCategory enumerates what kind of thing an asset is.
type AssetCategory string

const (
	AssetCash        AssetCategory = "cash"
	AssetInvestments AssetCategory = "investments"
	AssetRetirement  AssetCategory = "retirement"
	AssetRealEstate  AssetCategory = "real_estate"
	AssetVehicles    AssetCategory = "vehicles"
	AssetValuables   AssetCategory = "valuables"
	AssetBusiness    AssetCategory = "business"
	AssetOther       AssetCategory = "other"
)

// AssetCategories lists every asset category in display order.
var AssetCategories = []AssetCategory{
	AssetCash, AssetInvestments, AssetRetirement, AssetRealEstate,
	AssetVehicles, AssetValuables, AssetBusiness, AssetOther,
}

// Asset is something the user owns.
type Asset struct {
	ID           string
	Name         string
	Category     AssetCategory
	CurrentValue decimal.Decimal
	Currency     string
}

// LiabilityCategory enumerates kinds of debt.
type LiabilityCategory string

const (
	LiabilityMortgage     LiabilityCategory = "mortgage"
	LiabilityCarLoan      LiabilityCategory = "car_loan"
	LiabilityStudentLoan  LiabilityCategory = "student_loan"
	LiabilityPersonalLoan LiabilityCategory = "personal_loan"
	LiabilityCreditCard   LiabilityCategory = "credit_card"
	LiabilityTaxes        LiabilityCategory = "taxes"
	LiabilityMedical      LiabilityCategory = "medical"
	LiabilityOther        LiabilityCategory = "other"
)

// LiabilityCategories lists every liability category in display order.
var LiabilityCategories = []LiabilityCategory{
	LiabilityMortgage, LiabilityCarLoan, LiabilityStudentLoan, LiabilityPersonalLoan,
	LiabilityCreditCard, LiabilityTaxes, LiabilityMedical, LiabilityOther,
}

// Liability is money the user owes.
type Liability struct {
	ID              string
	Name            string
	Category        LiabilityCategory
	RemainingAmount decimal.Decimal
	InterestRate    *decimal.Decimal
	MonthlyPayment  *decimal.Decimal
	Currency        string
}

// GoalStatus is the lifecycle state of a savings goal.
type GoalStatus string

const (
	GoalActive    GoalStatus = "active"
	GoalCompleted GoalStatus = "completed"
)

// SavingsGoal tracks progress toward a target amount.
// CurrentAmount may exceed TargetAmount.
type SavingsGoal struct {
	ID            string
	Name          string
	TargetAmount  decimal.Decimal
	CurrentAmount decimal.Decimal
	Status        GoalStatus
}

// Reached reports whether the goal is completed or funded to its target.
func (g SavingsGoal) Reached() bool {
	return g.Status == GoalCompleted || g.CurrentAmount.GreaterThanOrEqual(g.TargetAmount)
}

// Frequency is how often a recurring expense is charged.
type Frequency string

const (
	FrequencyDaily   Frequency = "daily"
	FrequencyWeekly  Frequency = "weekly"
	FrequencyMonthly Frequency = "monthly"
	FrequencyYearly  Frequency = "yearly"
)

// Frequencies lists every frequency from most to least frequent.
var Frequencies = []Frequency{FrequencyDaily, FrequencyWeekly, FrequencyMonthly, FrequencyYearly}

// RecurringExpense is a bill that repeats on a fixed schedule.
type RecurringExpense struct {
	ID        string
	Name      string
	Amount    decimal.Decimal
	Frequency Frequency
	IsActive  bool
}

// Snapshot is the complete record set one engine invocation works on.
type Snapshot struct {
	Transactions []Transaction
	Assets       []Asset
	Liabilities  []Liability
	Goals        []SavingsGoal
	Recurring    []RecurringExpense
}

// RecordKind names one of the five record tables.
type RecordKind string

const (
	KindTransaction RecordKind = "transaction"
	KindAsset       RecordKind = "asset"
	KindLiability   RecordKind = "liability"
	KindGoal        RecordKind = "goal"
	KindRecurring   RecordKind = "recurring"
)

// RecordKinds lists every kind in display order.
var RecordKinds = []RecordKind{KindTransaction, KindAsset, KindLiability, KindGoal, KindRecurring}
