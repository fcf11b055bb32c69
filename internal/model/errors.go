package model

import (
	"errors"
	"fmt"
	"strings"
)

// Record validation errors. The engine never returns these; the store and
// importer use them to keep invariant violations out of a Snapshot.
var (
	ErrZeroAmount       = errors.New("transaction amount must not be zero")
	ErrNegativeValue    = errors.New("value must not be negative")
	ErrInvalidTarget    = errors.New("goal target must be positive")
	ErrUnknownCategory  = errors.New("unknown category")
	ErrUnknownFrequency = errors.New("unknown frequency")
	ErrUnknownStatus    = errors.New("unknown goal status")
	ErrUnknownType      = errors.New("unknown transaction type")
	ErrUnknownKind      = errors.New("unknown record kind")
	ErrNotFound         = errors.New("record not found")
)

// ParseTransactionType maps a raw string onto a TransactionType.
// An empty string is accepted and left empty.
func ParseTransactionType(s string) (TransactionType, error) {
	switch t := TransactionType(strings.ToLower(strings.TrimSpace(s))); t {
	case "", TypeDeposit, TypeWithdrawal, TypeExpense, TypeTransfer:
		return t, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownType, s)
}

// ParseAssetCategory maps a raw string onto an AssetCategory.
func ParseAssetCategory(s string) (AssetCategory, error) {
	c := AssetCategory(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range AssetCategories {
		if c == known {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w: asset %q", ErrUnknownCategory, s)
}

// ParseLiabilityCategory maps a raw string onto a LiabilityCategory.
func ParseLiabilityCategory(s string) (LiabilityCategory, error) {
	c := LiabilityCategory(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range LiabilityCategories {
		if c == known {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w: liability %q", ErrUnknownCategory, s)
}

// ParseGoalStatus maps a raw string onto a GoalStatus, defaulting to active.
func ParseGoalStatus(s string) (GoalStatus, error) {
	switch st := GoalStatus(strings.ToLower(strings.TrimSpace(s))); st {
	case "":
		return GoalActive, nil
	case GoalActive, GoalCompleted:
		return st, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownStatus, s)
}

// ParseFrequency maps a raw string onto a Frequency.
func ParseFrequency(s string) (Frequency, error) {
	switch f := Frequency(strings.ToLower(strings.TrimSpace(s))); f {
	case FrequencyDaily, FrequencyWeekly, FrequencyMonthly, FrequencyYearly:
		return f, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFrequency, s)
}

// ParseRecordKind maps a raw string onto a RecordKind. Plurals are accepted.
func ParseRecordKind(s string) (RecordKind, error) {
	k := strings.ToLower(strings.TrimSpace(s))
	k = strings.TrimSuffix(k, "s")
	switch k {
	case "tx", "transaction":
		return KindTransaction, nil
	case "liabilitie", "liability":
		return KindLiability, nil
	}
	for _, known := range RecordKinds {
		if RecordKind(k) == known {
			return known, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownKind, s)
}
