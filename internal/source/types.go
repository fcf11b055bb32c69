package source

import "github.com/shopspring/decimal"

// Each JSONL line is one record. The top-level "kind" field picks the shape:
//
//	{"kind":"transaction","timestamp":"2026-03-01T09:00:00Z","amount":"-42.10","description":"Groceries"}
//	{"kind":"asset","name":"Checking","category":"cash","current_value":"1500","currency":"USD"}
//	{"kind":"liability","name":"Car","category":"car_loan","remaining_amount":"8000","monthly_payment":"250"}
//	{"kind":"goal","name":"Trip","target_amount":"2000","current_amount":"500"}
//	{"kind":"recurring","name":"Gym","amount":"40","frequency":"monthly"}
//
// Amounts may be JSON strings or numbers. Strings keep full precision.

// RawTransaction is a transaction line.
type RawTransaction struct {
	ID          string          `json:"id,omitempty"`
	Timestamp   string          `json:"timestamp"`
	Amount      decimal.Decimal `json:"amount"`
	Type        string          `json:"type,omitempty"`
	Category    string          `json:"category,omitempty"`
	Description string          `json:"description,omitempty"`
	Currency    string          `json:"currency,omitempty"`
	// Investment tags the description with [INVESTMENT].
	Investment bool `json:"investment,omitempty"`
}

// RawAsset is an asset line.
type RawAsset struct {
	ID           string          `json:"id,omitempty"`
	Name         string          `json:"name"`
	Category     string          `json:"category"`
	CurrentValue decimal.Decimal `json:"current_value"`
	Currency     string          `json:"currency,omitempty"`
}

// RawLiability is a liability line.
type RawLiability struct {
	ID              string              `json:"id,omitempty"`
	Name            string              `json:"name"`
	Category        string              `json:"category"`
	RemainingAmount decimal.Decimal     `json:"remaining_amount"`
	InterestRate    decimal.NullDecimal `json:"interest_rate"`
	MonthlyPayment  decimal.NullDecimal `json:"monthly_payment"`
	Currency        string              `json:"currency,omitempty"`
}

// RawGoal is a savings goal line.
type RawGoal struct {
	ID            string          `json:"id,omitempty"`
	Name          string          `json:"name"`
	TargetAmount  decimal.Decimal `json:"target_amount"`
	CurrentAmount decimal.Decimal `json:"current_amount"`
	Status        string          `json:"status,omitempty"`
}

// RawRecurring is a recurring expense line.
type RawRecurring struct {
	ID        string          `json:"id,omitempty"`
	Name      string          `json:"name"`
	Amount    decimal.Decimal `json:"amount"`
	Frequency string          `json:"frequency"`
	// Active defaults to true when omitted.
	Active *bool `json:"active,omitempty"`
}

// DiscoveredFile represents a JSONL file found during scanning.
type DiscoveredFile struct {
	Path      string
	MtimeNs   int64
	SizeBytes int64
}
