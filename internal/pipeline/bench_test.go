package pipeline

import (
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/theirongolddev/finpulse/internal/model"
)

// syntheticSnapshot builds n transactions spread over the last two years.
func syntheticSnapshot(n int) model.Snapshot {
	snap := sampleSnapshot()
	snap.Transactions = make([]model.Transaction, 0, n)
	for i := 0; i < n; i++ {
		at := testNow.Add(-time.Duration(i) * 7 * time.Hour)
		amount := decimal.NewFromInt(int64(-(i%97 + 1))).Shift(-1)
		desc := fmt.Sprintf("purchase %d", i)
		switch i % 10 {
		case 0:
			amount = decimal.NewFromInt(2500)
			desc = "salary"
		case 3:
			desc = model.TagInvestment("index fund")
		}
		snap.Transactions = append(snap.Transactions, model.Transaction{
			Timestamp:   at,
			Amount:      amount,
			Description: desc,
			Category:    fmt.Sprintf("cat%d", i%8),
			Currency:    "USD",
		})
	}
	return snap
}

func BenchmarkBuild(b *testing.B) {
	for _, n := range []int{100, 2500} {
		snap := syntheticSnapshot(n)
		b.Run(fmt.Sprintf("tx=%d", n), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				_ = Build(snap, Options{Now: testNow, Months: 12})
			}
		})
	}
}

func BenchmarkAggregateMonths(b *testing.B) {
	classified := ClassifyAll(syntheticSnapshot(2500).Transactions)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = AggregateMonths(classified, testNow, 12)
	}
}
