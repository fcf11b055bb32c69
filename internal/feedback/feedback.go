// Package feedback turns a health score and activity counts into tips and
// badges.
//
// Evaluation is pure and keeps no memory: every badge whose predicate holds is
// returned on every call. Callers that award badges once persist the unlocks
// themselves (see store.RecordBadges).
package feedback

import (
	"github.com/shopspring/decimal"

	"github.com/theirongolddev/finpulse/internal/model"
)

// Badge identifiers, in evaluation order.
const (
	BadgeFirstDeposit    = "first_deposit"
	BadgeGoalSetter      = "goal_setter"
	BadgeGoalAchiever    = "goal_achiever"
	BadgeMultiCurrency   = "multi_currency"
	BadgeBigSaver        = "big_saver"
	BadgeConsistentSaver = "consistent_saver"
)

// PositiveMessage is emitted when no tip rule fires.
const PositiveMessage = "Great work: every part of your score is in good shape. Keep it up."

// Rules holds the thresholds that drive tips and badges.
type Rules struct {
	TipThreshold       float64         // factor percent below which a tip fires
	DepositBadgeTotal  decimal.Decimal // all-time deposits for big_saver
	DepositBadgeDays   int             // distinct deposit days for consistent_saver
	CurrencyBadgeCount int             // distinct currencies for multi_currency
}

// DefaultRules returns the stock thresholds.
func DefaultRules() Rules {
	return Rules{
		TipThreshold:       50,
		DepositBadgeTotal:  decimal.NewFromInt(1000),
		DepositBadgeDays:   4,
		CurrencyBadgeCount: 3,
	}
}

var tips = map[string]string{
	model.FactorSavings:         "Increase your savings: aim to keep at least a fifth of what you earn.",
	model.FactorBudget:          "Your monthly spending swings a lot. A fixed budget will smooth it out.",
	model.FactorGoals:           "Your savings goals are behind. Set up a regular transfer toward them.",
	model.FactorDiversification: "Spread your holdings across more asset categories.",
	model.FactorConsistency:     "Record income more regularly to build a steady saving habit.",
	model.FactorExpense:         "Expenses take a large share of this month's income. Look for costs to cut.",
	model.FactorInvestment:      "Put part of this month's income to work. Tag investments with [INVESTMENT].",
}

// Tip returns the tip text for a factor name.
func Tip(factor string) (string, bool) {
	t, ok := tips[factor]
	return t, ok
}

type badgeRule struct {
	badge model.Badge
	ok    func(model.ActivityCounts, Rules) bool
}

var badgeRules = []badgeRule{
	{
		badge: model.Badge{ID: BadgeFirstDeposit, Title: "First Deposit", Description: "Recorded your first deposit"},
		ok:    func(c model.ActivityCounts, _ Rules) bool { return c.DepositCount >= 1 },
	},
	{
		badge: model.Badge{ID: BadgeGoalSetter, Title: "Goal Setter", Description: "Created a savings goal"},
		ok:    func(c model.ActivityCounts, _ Rules) bool { return c.GoalCount >= 1 },
	},
	{
		badge: model.Badge{ID: BadgeGoalAchiever, Title: "Goal Achiever", Description: "Completed a savings goal"},
		ok:    func(c model.ActivityCounts, _ Rules) bool { return c.CompletedGoals >= 1 },
	},
	{
		badge: model.Badge{ID: BadgeMultiCurrency, Title: "Globetrotter", Description: "Hold assets in several currencies"},
		ok:    func(c model.ActivityCounts, r Rules) bool { return c.DistinctCurrencies >= r.CurrencyBadgeCount },
	},
	{
		badge: model.Badge{ID: BadgeBigSaver, Title: "Big Saver", Description: "Deposited a large amount in total"},
		ok: func(c model.ActivityCounts, r Rules) bool {
			return c.DepositCount > 0 && c.DepositTotal.GreaterThanOrEqual(r.DepositBadgeTotal)
		},
	},
	{
		badge: model.Badge{ID: BadgeConsistentSaver, Title: "Consistent Saver", Description: "Deposited on several different days"},
		ok:    func(c model.ActivityCounts, r Rules) bool { return c.DepositDays >= r.DepositBadgeDays },
	},
}

// AllBadges returns every badge definition in evaluation order.
func AllBadges() []model.Badge {
	out := make([]model.Badge, len(badgeRules))
	for i, r := range badgeRules {
		out[i] = r.badge
	}
	return out
}

// Generate produces tips for the score's weak factors and the badges the
// counts currently satisfy.
//
// A tip fires for a factor with data whose percent is below
// rules.TipThreshold. Factors without data never trigger tips. When nothing
// fires, exactly one positive message is returned.
func Generate(hs model.HealthScore, counts model.ActivityCounts, rules Rules) model.Feedback {
	var fb model.Feedback

	for _, f := range hs.Factors {
		if !f.HasData || f.Percent() >= rules.TipThreshold {
			continue
		}
		if t, ok := tips[f.Name]; ok {
			fb.Tips = append(fb.Tips, t)
		}
	}
	if len(fb.Tips) == 0 {
		fb.Tips = []string{PositiveMessage}
	}

	fb.Badges = Badges(counts, rules)
	return fb
}

// Badges evaluates every badge predicate against counts.
func Badges(counts model.ActivityCounts, rules Rules) []model.Badge {
	var out []model.Badge
	for _, r := range badgeRules {
		if r.ok(counts, rules) {
			out = append(out, r.badge)
		}
	}
	return out
}
