package model

import "fmt"

// Validate checks the transaction invariants.
func (t Transaction) Validate() error {
	if t.Amount.IsZero() {
		return ErrZeroAmount
	}
	if _, err := ParseTransactionType(string(t.Type)); err != nil {
		return err
	}
	return nil
}

// Validate checks the asset invariants.
func (a Asset) Validate() error {
	if a.CurrentValue.IsNegative() {
		return fmt.Errorf("asset %q current value: %w", a.Name, ErrNegativeValue)
	}
	if _, err := ParseAssetCategory(string(a.Category)); err != nil {
		return err
	}
	return nil
}

// Validate checks the liability invariants.
func (l Liability) Validate() error {
	if l.RemainingAmount.IsNegative() {
		return fmt.Errorf("liability %q remaining amount: %w", l.Name, ErrNegativeValue)
	}
	if l.MonthlyPayment != nil && l.MonthlyPayment.IsNegative() {
		return fmt.Errorf("liability %q monthly payment: %w", l.Name, ErrNegativeValue)
	}
	if _, err := ParseLiabilityCategory(string(l.Category)); err != nil {
		return err
	}
	return nil
}

// Validate checks the goal invariants.
func (g SavingsGoal) Validate() error {
	if !g.TargetAmount.IsPositive() {
		return fmt.Errorf("goal %q: %w", g.Name, ErrInvalidTarget)
	}
	if g.CurrentAmount.IsNegative() {
		return fmt.Errorf("goal %q current amount: %w", g.Name, ErrNegativeValue)
	}
	if _, err := ParseGoalStatus(string(g.Status)); err != nil {
		return err
	}
	return nil
}

// Validate checks the recurring expense invariants.
func (r RecurringExpense) Validate() error {
	if !r.Amount.IsPositive() {
		return fmt.Errorf("recurring %q amount must be positive: %w", r.Name, ErrNegativeValue)
	}
	if _, err := ParseFrequency(string(r.Frequency)); err != nil {
		return err
	}
	return nil
}
