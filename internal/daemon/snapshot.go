package daemon

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/theirongolddev/finpulse/internal/model"
)

// Snapshot is a compact view of one report for status and event payloads.
type Snapshot struct {
	At             time.Time       `json:"at"`
	WellnessScore  int             `json:"wellness_score"`
	WellnessLabel  string          `json:"wellness_label"`
	PortfolioScore int             `json:"portfolio_score"`
	PortfolioLabel string          `json:"portfolio_label"`
	NetWorth       decimal.Decimal `json:"net_worth"`
	SavingsRate    float64         `json:"savings_rate"`
	Transactions   int             `json:"transactions"`
	Badges         []string        `json:"badges"`
}

// Delta captures the change between two polls.
type Delta struct {
	WellnessScore  int             `json:"wellness_score"`
	PortfolioScore int             `json:"portfolio_score"`
	NetWorth       decimal.Decimal `json:"net_worth"`
	Transactions   int             `json:"transactions"`
	NewBadges      []string        `json:"new_badges,omitempty"`
}

func (d Delta) isZero() bool {
	return d.WellnessScore == 0 &&
		d.PortfolioScore == 0 &&
		d.NetWorth.IsZero() &&
		d.Transactions == 0 &&
		len(d.NewBadges) == 0
}

// Event is emitted whenever a poll changes the snapshot.
type Event struct {
	ID        int64     `json:"id"`
	Type      string    `json:"type"`
	Timestamp time.Time `json:"timestamp"`
	Snapshot  Snapshot  `json:"snapshot"`
	Delta     Delta     `json:"delta"`
}

// Event types.
const (
	EventSnapshot = "snapshot"
	EventUpdate   = "update"
)

func snapshotFromReport(r model.Report) Snapshot {
	badges := make([]string, 0, len(r.Feedback.Badges))
	for _, b := range r.Feedback.Badges {
		badges = append(badges, b.ID)
	}
	return Snapshot{
		At:             r.GeneratedAt,
		WellnessScore:  r.Wellness.Score,
		WellnessLabel:  r.Wellness.Label,
		PortfolioScore: r.Portfolio.Score,
		PortfolioLabel: r.Portfolio.Label,
		NetWorth:       r.NetWorth.NetWorth,
		SavingsRate:    r.Rates.SavingsRate,
		Transactions:   r.Totals.Transactions,
		Badges:         badges,
	}
}

// diffSnapshots compares two polls. A badge counts as new when curr has it
// and prev did not.
func diffSnapshots(prev, curr Snapshot) Delta {
	seen := make(map[string]struct{}, len(prev.Badges))
	for _, id := range prev.Badges {
		seen[id] = struct{}{}
	}
	var fresh []string
	for _, id := range curr.Badges {
		if _, ok := seen[id]; !ok {
			fresh = append(fresh, id)
		}
	}
	return Delta{
		WellnessScore:  curr.WellnessScore - prev.WellnessScore,
		PortfolioScore: curr.PortfolioScore - prev.PortfolioScore,
		NetWorth:       curr.NetWorth.Sub(prev.NetWorth),
		Transactions:   curr.Transactions - prev.Transactions,
		NewBadges:      fresh,
	}
}
