package pipeline

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/theirongolddev/finpulse/internal/model"
)

// DefaultMonths is the window width used when a caller passes months < 1.
const DefaultMonths = 6

const monthKeyLayout = "2006-01"

// MonthlyResult holds the monthly window plus all-time totals from one pass.
type MonthlyResult struct {
	Buckets []model.MonthlyBucket // oldest first
	Totals  model.Totals
}

// MonthStart returns midnight on the first day of t's month in loc.
func MonthStart(t time.Time, loc *time.Location) time.Time {
	t = t.In(loc)
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, loc)
}

// MonthKey formats the calendar month of t in loc as "2006-01".
func MonthKey(t time.Time, loc *time.Location) string {
	return t.In(loc).Format(monthKeyLayout)
}

// AggregateMonths buckets classified transactions into the most recent
// months calendar months ending with now's month, in now's location.
//
// Every month in the window gets a bucket even when it has no transactions,
// so charts keep a fixed-width axis. Transactions outside the window still
// count toward the all-time totals and the running balance.
func AggregateMonths(txs []model.Classified, now time.Time, months int) MonthlyResult {
	if months < 1 {
		months = DefaultMonths
	}
	loc := now.Location()
	current := MonthStart(now, loc)

	buckets := make([]model.MonthlyBucket, months)
	index := make(map[string]int, months)
	for i := range buckets {
		m := current.AddDate(0, -(months - 1 - i), 0)
		key := m.Format(monthKeyLayout)
		buckets[i] = model.MonthlyBucket{Month: m, Key: key}
		index[key] = i
	}

	var totals model.Totals
	for _, tx := range txs {
		abs := tx.Amount.Abs()
		switch tx.Class {
		case model.ClassIncome:
			totals.Income = totals.Income.Add(abs)
		case model.ClassInvestment:
			totals.Investment = totals.Investment.Add(abs)
		default:
			totals.Expense = totals.Expense.Add(abs)
		}
		totals.Transactions++

		idx, ok := index[MonthKey(tx.Timestamp, loc)]
		if !ok {
			continue
		}
		b := &buckets[idx]
		switch tx.Class {
		case model.ClassIncome:
			b.Income = b.Income.Add(abs)
		case model.ClassInvestment:
			b.Investment = b.Investment.Add(abs)
		default:
			b.Expense = b.Expense.Add(abs)
		}
		b.Transactions++
	}

	totals.RunningBalance = fillRunningBalance(txs, buckets)

	return MonthlyResult{Buckets: buckets, Totals: totals}
}

// fillRunningBalance replays transactions in chronological order, records the
// cumulative signed balance at the end of each bucket's month and returns the
// final balance.
func fillRunningBalance(txs []model.Classified, buckets []model.MonthlyBucket) decimal.Decimal {
	ordered := make([]model.Classified, len(txs))
	copy(ordered, txs)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Timestamp.Before(ordered[j].Timestamp)
	})

	var balance decimal.Decimal
	next := 0
	for i := range buckets {
		end := buckets[i].Month.AddDate(0, 1, 0)
		for next < len(ordered) && ordered[next].Timestamp.Before(end) {
			balance = balance.Add(ordered[next].Amount)
			next++
		}
		buckets[i].EndingBalance = balance
	}
	for ; next < len(ordered); next++ {
		balance = balance.Add(ordered[next].Amount)
	}
	return balance
}

// MonthBucket returns the bucket for month's calendar month, or a zero bucket
// for that month when it lies outside the window.
func MonthBucket(result MonthlyResult, month time.Time) model.MonthlyBucket {
	loc := month.Location()
	key := MonthKey(month, loc)
	for _, b := range result.Buckets {
		if b.Key == key {
			return b
		}
	}
	return model.MonthlyBucket{Month: MonthStart(month, loc), Key: key}
}

// CurrentAndPrevious returns the buckets for now's month and the month before.
func CurrentAndPrevious(result MonthlyResult, now time.Time) (model.MonthlyBucket, model.MonthlyBucket) {
	start := MonthStart(now, now.Location())
	return MonthBucket(result, start), MonthBucket(result, start.AddDate(0, -1, 0))
}

// SumMonth aggregates one calendar month directly, without a window.
func SumMonth(txs []model.Classified, month time.Time) model.MonthlyBucket {
	r := AggregateMonths(txs, month, 1)
	return r.Buckets[0]
}

// FilterByTime returns transactions whose timestamp falls within [since, until).
// A zero bound is open.
func FilterByTime(txs []model.Classified, since, until time.Time) []model.Classified {
	if since.IsZero() && until.IsZero() {
		return txs
	}

	var result []model.Classified
	for _, tx := range txs {
		if !since.IsZero() && tx.Timestamp.Before(since) {
			continue
		}
		if !until.IsZero() && !tx.Timestamp.Before(until) {
			continue
		}
		result = append(result, tx)
	}
	return result
}

// CountActivity derives the raw counts used by scoring and feedback.
// A deposit is any income-classified transaction.
func CountActivity(txs []model.Classified, snap model.Snapshot, loc *time.Location) model.ActivityCounts {
	var c model.ActivityCounts
	depositDays := make(map[string]struct{})

	for _, tx := range txs {
		if tx.Class != model.ClassIncome {
			continue
		}
		c.DepositCount++
		c.DepositTotal = c.DepositTotal.Add(tx.Amount)
		depositDays[tx.Timestamp.In(loc).Format("2006-01-02")] = struct{}{}
	}
	c.DepositDays = len(depositDays)
	c.IncomeDays = c.DepositDays

	currencies := make(map[string]struct{})
	categories := make(map[model.AssetCategory]struct{})
	for _, a := range snap.Assets {
		if a.Currency != "" {
			currencies[a.Currency] = struct{}{}
		}
		categories[a.Category] = struct{}{}
	}
	c.DistinctCurrencies = len(currencies)
	c.AssetCategories = len(categories)

	c.GoalCount = len(snap.Goals)
	for _, g := range snap.Goals {
		if g.Reached() {
			c.CompletedGoals++
		}
	}
	return c
}
