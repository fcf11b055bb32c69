// Package score computes the named composite health scores.
//
// Two formulas exist and they can disagree for the same data, so every
// caller picks one by name. There is no unnamed "health score".
package score

import (
	"errors"
	"fmt"
	"strings"

	"github.com/theirongolddev/finpulse/internal/model"
	"github.com/theirongolddev/finpulse/internal/stats"
)

// Formula names a scoring formula.
type Formula string

const (
	// FormulaWellness is the 5-factor weighted average.
	FormulaWellness Formula = "wellness"
	// FormulaPortfolio is the 3-factor capped sum.
	FormulaPortfolio Formula = "portfolio"
)

// Formulas lists every formula in display order.
var Formulas = []Formula{FormulaWellness, FormulaPortfolio}

// ErrUnknownFormula is returned by ByName for unrecognized names.
var ErrUnknownFormula = errors.New("unknown score formula")

// ByName parses a formula name, case-insensitively.
func ByName(name string) (Formula, error) {
	f := Formula(strings.ToLower(strings.TrimSpace(name)))
	for _, known := range Formulas {
		if f == known {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormula, name)
}

// Neutral default for the goals factor when no goals exist.
const neutralGoalScore = 50

// Wellness factor weights.
const (
	weightSavings         = 0.30
	weightBudget          = 0.25
	weightGoals           = 0.20
	weightDiversification = 0.15
	weightConsistency     = 0.10
)

// Portfolio factor caps.
const (
	capSavings    = 40
	capExpense    = 30
	capInvestment = 30
)

// WellnessInput carries everything the wellness formula reads.
type WellnessInput struct {
	Rates  model.RateSnapshot
	Goals  []model.SavingsGoal
	Counts model.ActivityCounts

	// ExpenseMonths is the number of window months with any expense.
	ExpenseMonths int
	// Transactions is the total number of transactions seen.
	Transactions int
}

// Compute evaluates the named formula.
func Compute(f Formula, in WellnessInput) model.HealthScore {
	if f == FormulaPortfolio {
		return Portfolio(in.Rates)
	}
	return Wellness(in)
}

// Wellness is the 5-factor weighted average: savings, budget adherence, goal
// progress, diversification and income consistency.
func Wellness(in WellnessInput) model.HealthScore {
	goalScore, hasGoals := GoalProgress(in.Goals)

	factors := []model.ScoreFactor{
		{
			Name:    model.FactorSavings,
			Score:   stats.Clamp(in.Rates.SavingsRate, 0, 100),
			Max:     100,
			Weight:  weightSavings,
			HasData: in.Rates.HasIncome,
		},
		{
			Name:    model.FactorBudget,
			Score:   stats.Clamp(in.Rates.BudgetAdherence, 0, 100),
			Max:     100,
			Weight:  weightBudget,
			HasData: in.ExpenseMonths > 0,
		},
		{
			Name:    model.FactorGoals,
			Score:   goalScore,
			Max:     100,
			Weight:  weightGoals,
			HasData: hasGoals,
		},
		{
			Name:    model.FactorDiversification,
			Score:   Diversification(in.Counts.DistinctCurrencies, in.Counts.AssetCategories),
			Max:     100,
			Weight:  weightDiversification,
			HasData: in.Counts.AssetCategories > 0,
		},
		{
			Name:    model.FactorConsistency,
			Score:   stats.Clamp(float64(in.Counts.IncomeDays)*10, 0, 100),
			Max:     100,
			Weight:  weightConsistency,
			HasData: in.Transactions > 0,
		},
	}

	var sum float64
	for _, f := range factors {
		sum += f.Score * f.Weight
	}
	total := int(stats.Clamp(stats.Round(sum), 0, 100))

	return model.HealthScore{
		Formula: string(FormulaWellness),
		Score:   total,
		Label:   Label(total),
		Factors: factors,
	}
}

// Portfolio is the 3-factor capped sum over savings, expense and investment
// rates.
//
// Without income this month the expense rate is undefined, so the expense
// factor contributes nothing instead of its full 30 points.
func Portfolio(rates model.RateSnapshot) model.HealthScore {
	hasMonthlyIncome := rates.MonthlyIncome.IsPositive()

	var savings float64
	if rates.SavingsRate > 0 {
		savings = stats.Clamp(rates.SavingsRate*2, 0, capSavings)
	}
	var expense float64
	if hasMonthlyIncome {
		expense = stats.Clamp(capExpense-rates.ExpenseRate*0.5, 0, capExpense)
	}
	invest := stats.Clamp(rates.InvestmentRate*1.5, 0, capInvestment)

	factors := []model.ScoreFactor{
		{Name: model.FactorSavings, Score: savings, Max: capSavings, HasData: rates.HasIncome},
		{Name: model.FactorExpense, Score: expense, Max: capExpense, HasData: hasMonthlyIncome},
		{Name: model.FactorInvestment, Score: invest, Max: capInvestment, HasData: hasMonthlyIncome},
	}

	total := int(stats.Clamp(stats.Round(savings+expense+invest), 0, 100))
	return model.HealthScore{
		Formula: string(FormulaPortfolio),
		Score:   total,
		Label:   Label(total),
		Factors: factors,
	}
}

// GoalProgress returns the mean clamped progress across goals, 0-100, and
// whether any goals exist. With no goals the neutral default of 50 is used.
// A goal with a non-positive target counts as 0 progress.
func GoalProgress(goals []model.SavingsGoal) (float64, bool) {
	if len(goals) == 0 {
		return neutralGoalScore, false
	}
	var sum float64
	for _, g := range goals {
		if !g.TargetAmount.IsPositive() {
			continue
		}
		pct := g.CurrentAmount.InexactFloat64() / g.TargetAmount.InexactFloat64() * 100
		sum += stats.Clamp(pct, 0, 100)
	}
	return sum / float64(len(goals)), true
}

// Diversification scores currency and asset-category spread, 0-100.
func Diversification(currencies, categories int) float64 {
	return stats.Clamp(float64(currencies*15+categories*5), 0, 100)
}

// Label maps a 0-100 score to its qualitative band.
func Label(score int) string {
	switch {
	case score >= 80:
		return "Excellent"
	case score >= 60:
		return "Good"
	case score >= 40:
		return "Fair"
	default:
		return "Needs Work"
	}
}
