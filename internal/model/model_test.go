package model

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func TestParseAssetCategory(t *testing.T) {
	c, err := ParseAssetCategory(" Real_Estate ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c != AssetRealEstate {
		t.Errorf("category = %q, want %q", c, AssetRealEstate)
	}

	if _, err := ParseAssetCategory("crypto"); !errors.Is(err, ErrUnknownCategory) {
		t.Errorf("err = %v, want ErrUnknownCategory", err)
	}
}

func TestParseLiabilityCategory(t *testing.T) {
	if _, err := ParseLiabilityCategory("credit_card"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := ParseLiabilityCategory("gambling"); !errors.Is(err, ErrUnknownCategory) {
		t.Errorf("err = %v, want ErrUnknownCategory", err)
	}
}

func TestParseGoalStatusDefaultsToActive(t *testing.T) {
	st, err := ParseGoalStatus("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if st != GoalActive {
		t.Errorf("status = %q, want active", st)
	}
	if _, err := ParseGoalStatus("paused"); !errors.Is(err, ErrUnknownStatus) {
		t.Errorf("err = %v, want ErrUnknownStatus", err)
	}
}

func TestParseFrequency(t *testing.T) {
	for _, s := range []string{"daily", "WEEKLY", "monthly", "yearly"} {
		if _, err := ParseFrequency(s); err != nil {
			t.Errorf("ParseFrequency(%q) error: %v", s, err)
		}
	}
	if _, err := ParseFrequency("hourly"); !errors.Is(err, ErrUnknownFrequency) {
		t.Errorf("err = %v, want ErrUnknownFrequency", err)
	}
}

func TestSavingsGoalReached(t *testing.T) {
	over := SavingsGoal{TargetAmount: decimal.NewFromInt(100), CurrentAmount: decimal.NewFromInt(150), Status: GoalActive}
	if !over.Reached() {
		t.Error("overfunded goal should count as reached")
	}
	done := SavingsGoal{TargetAmount: decimal.NewFromInt(100), Status: GoalCompleted}
	if !done.Reached() {
		t.Error("completed goal should count as reached")
	}
	open := SavingsGoal{TargetAmount: decimal.NewFromInt(100), CurrentAmount: decimal.NewFromInt(10), Status: GoalActive}
	if open.Reached() {
		t.Error("underfunded active goal should not count as reached")
	}
}

func TestScoreFactorPercentGuardsZeroMax(t *testing.T) {
	if p := (ScoreFactor{Score: 10}).Percent(); p != 0 {
		t.Errorf("Percent with zero max = %v, want 0", p)
	}
	if p := (ScoreFactor{Score: 20, Max: 40}).Percent(); p != 50 {
		t.Errorf("Percent = %v, want 50", p)
	}
}

func TestParseRecordKind(t *testing.T) {
	cases := map[string]RecordKind{
		"tx":           KindTransaction,
		"Transactions": KindTransaction,
		"assets":       KindAsset,
		"liabilities":  KindLiability,
		"goal":         KindGoal,
		"recurring":    KindRecurring,
	}
	for in, want := range cases {
		got, err := ParseRecordKind(in)
		if err != nil {
			t.Errorf("ParseRecordKind(%q): %v", in, err)
			continue
		}
		if got != want {
			t.Errorf("ParseRecordKind(%q) = %q, want %q", in, got, want)
		}
	}
	if _, err := ParseRecordKind("budget"); !errors.Is(err, ErrUnknownKind) {
		t.Errorf("err = %v, want ErrUnknownKind", err)
	}
}

func TestValidate(t *testing.T) {
	if err := (Transaction{}).Validate(); !errors.Is(err, ErrZeroAmount) {
		t.Errorf("zero transaction err = %v, want ErrZeroAmount", err)
	}
	if err := (Transaction{Amount: decimal.NewFromInt(-1), Type: TypeExpense}).Validate(); err != nil {
		t.Errorf("valid transaction err = %v", err)
	}
	if err := (Asset{Category: AssetCash, CurrentValue: decimal.NewFromInt(-5)}).Validate(); !errors.Is(err, ErrNegativeValue) {
		t.Errorf("negative asset err = %v, want ErrNegativeValue", err)
	}
	if err := (SavingsGoal{TargetAmount: decimal.Zero}).Validate(); !errors.Is(err, ErrInvalidTarget) {
		t.Errorf("zero target err = %v, want ErrInvalidTarget", err)
	}
	if err := (RecurringExpense{Amount: decimal.NewFromInt(9), Frequency: "fortnightly"}).Validate(); !errors.Is(err, ErrUnknownFrequency) {
		t.Errorf("bad frequency err = %v, want ErrUnknownFrequency", err)
	}
	pay := decimal.NewFromInt(-1)
	if err := (Liability{Category: LiabilityOther, MonthlyPayment: &pay}).Validate(); !errors.Is(err, ErrNegativeValue) {
		t.Errorf("negative payment err = %v, want ErrNegativeValue", err)
	}
}
