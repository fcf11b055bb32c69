package pipeline

import (
	"time"

	"github.com/theirongolddev/finpulse/internal/feedback"
	"github.com/theirongolddev/finpulse/internal/model"
	"github.com/theirongolddev/finpulse/internal/score"
)

// Options controls one Build run.
type Options struct {
	Now     time.Time       // zero means time.Now()
	Months  int             // window width; < 1 means DefaultMonths
	Formula score.Formula   // formula feedback is generated for; empty means wellness
	Rules   *feedback.Rules // nil means feedback.DefaultRules()
}

// Build runs the whole engine over a snapshot: classify, aggregate, rates,
// both scores, feedback for the chosen formula, and the balance sheet views.
// It does not touch the snapshot and has no side effects.
func Build(snap model.Snapshot, opts Options) model.Report {
	now := opts.Now
	if now.IsZero() {
		now = time.Now()
	}
	months := opts.Months
	if months < 1 {
		months = DefaultMonths
	}
	formula := opts.Formula
	if formula == "" {
		formula = score.FormulaWellness
	}
	rules := feedback.DefaultRules()
	if opts.Rules != nil {
		rules = *opts.Rules
	}

	classified := ClassifyAll(snap.Transactions)
	monthly := AggregateMonths(classified, now, months)
	current, previous := CurrentAndPrevious(monthly, now)
	rates := ComputeRates(monthly.Totals, current, previous, monthly.Buckets)
	counts := CountActivity(classified, snap, now.Location())

	expenseMonths := 0
	for _, b := range monthly.Buckets {
		if b.Expense.IsPositive() {
			expenseMonths++
		}
	}

	in := score.WellnessInput{
		Rates:         rates,
		Goals:         snap.Goals,
		Counts:        counts,
		ExpenseMonths: expenseMonths,
		Transactions:  monthly.Totals.Transactions,
	}
	wellness := score.Wellness(in)
	portfolio := score.Portfolio(rates)

	chosen := wellness
	if formula == score.FormulaPortfolio {
		chosen = portfolio
	}

	var since time.Time
	if len(monthly.Buckets) > 0 {
		since = monthly.Buckets[0].Month
	}

	return model.Report{
		GeneratedAt: now,
		Months:      months,
		Formula:     string(formula),
		Buckets:     monthly.Buckets,
		Totals:      monthly.Totals,
		Rates:       rates,
		Counts:      counts,
		NetWorth:    NetWorth(snap.Assets, snap.Liabilities),
		Wellness:    wellness,
		Portfolio:   portfolio,
		Feedback:    feedback.Generate(chosen, counts, rules),
		Categories:  CategorySpend(classified, since, time.Time{}),
		Recurring:   RecurringCommitments(snap.Recurring, rates.MonthlyIncome),
	}
}
