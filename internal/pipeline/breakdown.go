package pipeline

import (
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/theirongolddev/finpulse/internal/model"
	"github.com/theirongolddev/finpulse/internal/stats"
)

// UncategorizedLabel is the bucket for expenses without a category.
const UncategorizedLabel = "uncategorized"

// CategorySpend totals expense-classified outflows per category within
// [since, until). Rows are sorted by amount, largest first; ties sort by name.
func CategorySpend(txs []model.Classified, since, until time.Time) []model.CategorySpend {
	filtered := FilterByTime(txs, since, until)

	var total decimal.Decimal
	byCategory := make(map[string]*model.CategorySpend)

	for _, tx := range filtered {
		if tx.Class != model.ClassExpense {
			continue
		}
		name := strings.ToLower(strings.TrimSpace(tx.Category))
		if name == "" {
			name = UncategorizedLabel
		}

		row, exists := byCategory[name]
		if !exists {
			row = &model.CategorySpend{Category: name}
			byCategory[name] = row
		}
		abs := tx.Amount.Abs()
		row.Amount = row.Amount.Add(abs)
		row.Transactions++
		total = total.Add(abs)
	}

	rows := make([]model.CategorySpend, 0, len(byCategory))
	totalF := total.InexactFloat64()
	for _, row := range byCategory {
		row.SharePercent = stats.Percent(row.Amount.InexactFloat64(), totalF)
		rows = append(rows, *row)
	}

	sort.Slice(rows, func(i, j int) bool {
		if c := rows[i].Amount.Cmp(rows[j].Amount); c != 0 {
			return c > 0
		}
		return rows[i].Category < rows[j].Category
	})

	return rows
}
