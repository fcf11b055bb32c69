package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/finpulse/internal/cli"
	"github.com/theirongolddev/finpulse/internal/model"
	"github.com/theirongolddev/finpulse/internal/tui/components"
	"github.com/theirongolddev/finpulse/internal/tui/theme"
)

func (a App) renderOverviewTab(cw int) string {
	t := theme.Active
	r := a.report
	var b strings.Builder

	savings := "n/a"
	if r.Rates.HasIncome {
		savings = cli.FormatPercent(r.Rates.SavingsRate)
	}
	metrics := []components.Metric{
		{
			Label: "Net Worth",
			Value: cli.FormatMoney(r.NetWorth.NetWorth),
			Delta: fmt.Sprintf("%s assets · %s debt",
				cli.FormatMoneyShort(r.NetWorth.TotalAssets), cli.FormatMoneyShort(r.NetWorth.TotalLiabilities)),
		},
		{
			Label: "Savings Rate",
			Value: savings,
			Delta: "balance " + cli.FormatMoneyShort(r.Totals.RunningBalance),
		},
		{
			Label: "Wellness",
			Value: fmt.Sprintf("%d", r.Wellness.Score),
			Delta: r.Wellness.Label,
			Color: t.ScoreColor(r.Wellness.Score),
		},
		{
			Label: "Portfolio",
			Value: fmt.Sprintf("%d", r.Portfolio.Score),
			Delta: r.Portfolio.Label,
			Color: t.ScoreColor(r.Portfolio.Score),
		},
	}
	b.WriteString(components.MetricCardRow(metrics, cw))
	b.WriteString("\n")

	if len(r.Buckets) > 0 {
		income := make([]float64, len(r.Buckets))
		expense := make([]float64, len(r.Buckets))
		labels := make([]string, len(r.Buckets))
		for i, bk := range r.Buckets {
			income[i] = bk.Income.InexactFloat64()
			expense[i] = bk.Expense.InexactFloat64()
			labels[i] = bk.Month.Format("Jan")
		}

		chartH := 8
		if a.isCompactLayout() {
			chartH = 6
		}
		widths := components.LayoutRow(cw, 2)
		if a.isCompactLayout() {
			widths = []int{cw, cw}
		}
		incomeCard := components.ContentCard(
			fmt.Sprintf("Income (%dm)", len(r.Buckets)),
			components.BarChart(income, labels, t.Green, components.CardInnerWidth(widths[0]), chartH),
			widths[0],
		)
		expenseCard := components.ContentCard(
			fmt.Sprintf("Expenses (%dm)", len(r.Buckets)),
			components.BarChart(expense, labels, t.Orange, components.CardInnerWidth(widths[1]), chartH),
			widths[1],
		)
		if a.isCompactLayout() {
			b.WriteString(incomeCard + "\n" + expenseCard)
		} else {
			b.WriteString(components.CardRow([]string{incomeCard, expenseCard}))
		}
		b.WriteString("\n")
	}

	b.WriteString(components.ContentCard("Top Spending Categories", renderCategories(r.Categories, components.CardInnerWidth(cw), 6), cw))
	return b.String()
}

// renderCategories draws up to limit categories as proportional bars.
func renderCategories(cats []model.CategorySpend, innerW, limit int) string {
	t := theme.Active
	mutedStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	if len(cats) == 0 {
		return mutedStyle.Render("No expenses in this window.")
	}

	nameStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	barStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	blank := lipgloss.NewStyle().Background(t.Surface)

	cats = cats[:min(limit, len(cats))]
	nameW := max(innerW/4, 10)
	valueW := 20
	barMax := max(innerW-nameW-valueW-2, 1)
	top := cats[0].SharePercent

	var b strings.Builder
	for i, c := range cats {
		barLen := 0
		if top > 0 {
			barLen = int(c.SharePercent / top * float64(barMax))
		}
		b.WriteString(nameStyle.Render(fmt.Sprintf("%-*s", nameW, truncStr(c.Category, nameW))))
		b.WriteString(blank.Render(" "))
		b.WriteString(barStyle.Render(strings.Repeat("█", barLen)))
		b.WriteString(blank.Render(strings.Repeat(" ", barMax-barLen+1)))
		b.WriteString(valueStyle.Render(fmt.Sprintf("%*s", valueW,
			fmt.Sprintf("%s %s", cli.FormatMoneyShort(c.Amount), cli.FormatPercent(c.SharePercent)))))
		if i < len(cats)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}
