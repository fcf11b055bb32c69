package pipeline

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/theirongolddev/finpulse/internal/model"
	"github.com/theirongolddev/finpulse/internal/stats"
)

// NetWorth sums assets against liabilities.
//
// Amounts in different currencies are added as-is; callers that hold several
// currencies must convert before calling.
func NetWorth(assets []model.Asset, liabilities []model.Liability) model.NetWorthStats {
	var ns model.NetWorthStats

	assetRows := make(map[string]*model.AllocationSlice)
	currencies := make(map[string]struct{})
	for _, a := range assets {
		ns.TotalAssets = ns.TotalAssets.Add(a.CurrentValue)
		addSlice(assetRows, string(a.Category), a.CurrentValue)
		if a.Currency != "" {
			currencies[a.Currency] = struct{}{}
		}
	}

	debtRows := make(map[string]*model.AllocationSlice)
	for _, l := range liabilities {
		ns.TotalLiabilities = ns.TotalLiabilities.Add(l.RemainingAmount)
		addSlice(debtRows, string(l.Category), l.RemainingAmount)
		if l.MonthlyPayment != nil {
			ns.MonthlyDebtPayment = ns.MonthlyDebtPayment.Add(*l.MonthlyPayment)
		}
		if l.Currency != "" {
			currencies[l.Currency] = struct{}{}
		}
	}

	ns.NetWorth = ns.TotalAssets.Sub(ns.TotalLiabilities)
	if ns.TotalAssets.IsPositive() {
		ns.DebtToAssetRatio = ns.TotalLiabilities.InexactFloat64() / ns.TotalAssets.InexactFloat64()
	}
	ns.AssetAllocation = sortedSlices(assetRows, ns.TotalAssets)
	ns.LiabilityBreakdown = sortedSlices(debtRows, ns.TotalLiabilities)

	ns.Currencies = make([]string, 0, len(currencies))
	for c := range currencies {
		ns.Currencies = append(ns.Currencies, c)
	}
	sort.Strings(ns.Currencies)

	return ns
}

func addSlice(rows map[string]*model.AllocationSlice, category string, amount decimal.Decimal) {
	row, ok := rows[category]
	if !ok {
		row = &model.AllocationSlice{Category: category}
		rows[category] = row
	}
	row.Amount = row.Amount.Add(amount)
	row.Count++
}

func sortedSlices(rows map[string]*model.AllocationSlice, total decimal.Decimal) []model.AllocationSlice {
	out := make([]model.AllocationSlice, 0, len(rows))
	totalF := total.InexactFloat64()
	for _, row := range rows {
		row.SharePercent = stats.Percent(row.Amount.InexactFloat64(), totalF)
		out = append(out, *row)
	}
	sort.Slice(out, func(i, j int) bool {
		if c := out[i].Amount.Cmp(out[j].Amount); c != 0 {
			return c > 0
		}
		return out[i].Category < out[j].Category
	})
	return out
}
