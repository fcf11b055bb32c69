package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/finpulse/internal/cli"
	"github.com/theirongolddev/finpulse/internal/tui/components"
	"github.com/theirongolddev/finpulse/internal/tui/theme"
)

func (a App) renderTrendsTab(cw int) string {
	t := theme.Active
	r := a.report

	headStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface).Bold(true)
	cellStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)
	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)

	const colW = 14
	var table strings.Builder
	table.WriteString(headStyle.Render(fmt.Sprintf("%-10s%*s%*s%*s%*s%*s",
		"Month", colW, "Income", colW, "Expenses", colW, "Invested", colW, "Net", colW, "Balance")))
	for _, bk := range r.Buckets {
		net := bk.Income.Sub(bk.Expense).Sub(bk.Investment)
		style := cellStyle
		if bk.Transactions == 0 {
			style = dimStyle
		}
		table.WriteString("\n")
		table.WriteString(style.Render(fmt.Sprintf("%-10s", bk.Month.Format("Jan 2006"))))
		table.WriteString(style.Render(fmt.Sprintf("%*s%*s%*s",
			colW, cli.FormatMoney(bk.Income),
			colW, cli.FormatMoney(bk.Expense),
			colW, cli.FormatMoney(bk.Investment))))
		netColor := t.Green
		if net.IsNegative() {
			netColor = t.Red
		}
		table.WriteString(lipgloss.NewStyle().Foreground(netColor).Background(t.Surface).
			Render(fmt.Sprintf("%*s", colW, cli.FormatMoney(net))))
		table.WriteString(style.Render(fmt.Sprintf("%*s", colW, cli.FormatMoney(bk.EndingBalance))))
	}

	var b strings.Builder
	b.WriteString(components.ContentCard("Monthly Cash Flow", table.String(), cw))
	b.WriteString("\n")

	rates := r.Rates
	trend := func(v float64, inverted bool) string {
		return lipgloss.NewStyle().Foreground(t.TrendColor(v, inverted)).Background(t.Surface).Render(cli.FormatTrend(v))
	}
	row := func(label, value string) string {
		return labelStyle.Render(fmt.Sprintf("%-20s", label)) + cellStyle.Render(value)
	}

	var rateBody strings.Builder
	rateBody.WriteString(row("Income this month", cli.FormatMoney(rates.MonthlyIncome)) + " " + trend(rates.IncomeTrend, false) + "\n")
	rateBody.WriteString(row("Spent this month", cli.FormatMoney(rates.MonthlyExpense)) + " " + trend(rates.ExpenseTrend, true) + "\n")
	rateBody.WriteString(row("Expense rate", cli.FormatPercent(rates.ExpenseRate)) + "\n")
	rateBody.WriteString(row("Investment rate", cli.FormatPercent(rates.InvestmentRate)) + "\n")
	rateBody.WriteString(row("Budget adherence", cli.FormatPercent(rates.BudgetAdherence)))

	balances := make([]float64, len(r.Buckets))
	for i, bk := range r.Buckets {
		balances[i] = bk.EndingBalance.InexactFloat64()
	}
	var balBody strings.Builder
	balBody.WriteString(components.Sparkline(balances, t.Blue))
	balBody.WriteString("\n\n")
	balBody.WriteString(row("Running balance", cli.FormatMoney(r.Totals.RunningBalance)) + "\n")
	balBody.WriteString(row("All-time income", cli.FormatMoney(r.Totals.Income)) + "\n")
	balBody.WriteString(row("All-time spending", cli.FormatMoney(r.Totals.Expense)) + "\n")
	balBody.WriteString(row("All-time invested", cli.FormatMoney(r.Totals.Investment)))

	if a.isCompactLayout() {
		b.WriteString(components.ContentCard("Rates & Trends", rateBody.String(), cw))
		b.WriteString("\n")
		b.WriteString(components.ContentCard("Balance", balBody.String(), cw))
		return b.String()
	}
	halves := components.LayoutRow(cw, 2)
	b.WriteString(components.CardRow([]string{
		components.ContentCard("Rates & Trends", rateBody.String(), halves[0]),
		components.ContentCard("Balance", balBody.String(), halves[1]),
	}))
	return b.String()
}
