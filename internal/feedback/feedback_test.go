package feedback

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/theirongolddev/finpulse/internal/model"
)

func TestGenerate_NoDataGivesOnePositiveTip(t *testing.T) {
	hs := model.HealthScore{Factors: []model.ScoreFactor{
		{Name: model.FactorSavings, Score: 0, Max: 40},
		{Name: model.FactorExpense, Score: 0, Max: 30},
	}}
	fb := Generate(hs, model.ActivityCounts{}, DefaultRules())

	if len(fb.Tips) != 1 || fb.Tips[0] != PositiveMessage {
		t.Fatalf("tips = %q, want only the positive message", fb.Tips)
	}
	if len(fb.Badges) != 0 {
		t.Fatalf("badges = %v, want none", fb.Badges)
	}
}

func TestGenerate_TipsFollowFactorOrder(t *testing.T) {
	hs := model.HealthScore{Factors: []model.ScoreFactor{
		{Name: model.FactorSavings, Score: 10, Max: 100, HasData: true},
		{Name: model.FactorBudget, Score: 90, Max: 100, HasData: true},
		{Name: model.FactorGoals, Score: 49, Max: 100, HasData: true},
		{Name: model.FactorConsistency, Score: 50, Max: 100, HasData: true},
	}}
	fb := Generate(hs, model.ActivityCounts{}, DefaultRules())

	savings, _ := Tip(model.FactorSavings)
	goals, _ := Tip(model.FactorGoals)
	if len(fb.Tips) != 2 {
		t.Fatalf("tips len = %d, want 2: %q", len(fb.Tips), fb.Tips)
	}
	if fb.Tips[0] != savings || fb.Tips[1] != goals {
		t.Fatalf("tips = %q, want savings then goals", fb.Tips)
	}
}

func TestGenerate_ThresholdUsesPercentOfMax(t *testing.T) {
	// 19/40 = 47.5% fires; 15/30 = 50% does not.
	hs := model.HealthScore{Factors: []model.ScoreFactor{
		{Name: model.FactorSavings, Score: 19, Max: 40, HasData: true},
		{Name: model.FactorExpense, Score: 15, Max: 30, HasData: true},
	}}
	fb := Generate(hs, model.ActivityCounts{}, DefaultRules())
	if len(fb.Tips) != 1 {
		t.Fatalf("tips = %q, want one", fb.Tips)
	}
	if want, _ := Tip(model.FactorSavings); fb.Tips[0] != want {
		t.Fatalf("tip = %q, want savings tip", fb.Tips[0])
	}
}

func TestBadges_AllUnlockedInOrder(t *testing.T) {
	counts := model.ActivityCounts{
		DepositCount:       5,
		DepositTotal:       decimal.NewFromInt(1000),
		DepositDays:        4,
		DistinctCurrencies: 3,
		GoalCount:          2,
		CompletedGoals:     1,
	}
	got := Badges(counts, DefaultRules())
	want := []string{BadgeFirstDeposit, BadgeGoalSetter, BadgeGoalAchiever, BadgeMultiCurrency, BadgeBigSaver, BadgeConsistentSaver}
	if len(got) != len(want) {
		t.Fatalf("badges = %v, want %v", got, want)
	}
	for i := range want {
		if got[i].ID != want[i] {
			t.Fatalf("badge[%d] = %s, want %s", i, got[i].ID, want[i])
		}
	}
}

func TestBadges_JustBelowThresholds(t *testing.T) {
	counts := model.ActivityCounts{
		DepositCount:       3,
		DepositTotal:       decimal.RequireFromString("999.99"),
		DepositDays:        3,
		DistinctCurrencies: 2,
		GoalCount:          1,
	}
	fb := model.Feedback{Badges: Badges(counts, DefaultRules())}

	if !fb.HasBadge(BadgeFirstDeposit) || !fb.HasBadge(BadgeGoalSetter) {
		t.Fatalf("badges = %v, want first_deposit and goal_setter", fb.Badges)
	}
	for _, id := range []string{BadgeGoalAchiever, BadgeMultiCurrency, BadgeBigSaver, BadgeConsistentSaver} {
		if fb.HasBadge(id) {
			t.Errorf("badge %s unexpectedly unlocked", id)
		}
	}
}

func TestBadges_CustomRules(t *testing.T) {
	rules := DefaultRules()
	rules.DepositBadgeTotal = decimal.NewFromInt(50)
	rules.DepositBadgeDays = 1

	got := Badges(model.ActivityCounts{DepositCount: 1, DepositTotal: decimal.NewFromInt(50), DepositDays: 1}, rules)
	fb := model.Feedback{Badges: got}
	if !fb.HasBadge(BadgeBigSaver) || !fb.HasBadge(BadgeConsistentSaver) {
		t.Fatalf("badges = %v, want big_saver and consistent_saver", got)
	}
}

func TestGenerate_IsRepeatable(t *testing.T) {
	counts := model.ActivityCounts{DepositCount: 1, DepositTotal: decimal.NewFromInt(10), DepositDays: 1}
	a := Generate(model.HealthScore{}, counts, DefaultRules())
	b := Generate(model.HealthScore{}, counts, DefaultRules())
	if len(a.Badges) != 1 || len(b.Badges) != 1 || a.Badges[0] != b.Badges[0] {
		t.Fatalf("badges differ between runs: %v vs %v", a.Badges, b.Badges)
	}
}
