package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/finpulse/internal/cli"
	"github.com/theirongolddev/finpulse/internal/feedback"
	"github.com/theirongolddev/finpulse/internal/model"
	"github.com/theirongolddev/finpulse/internal/tui/components"
	"github.com/theirongolddev/finpulse/internal/tui/theme"
)

func (a App) renderInsightsTab(cw int) string {
	t := theme.Active
	r := a.report

	textStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	bulletStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface)

	var tips strings.Builder
	for i, tip := range r.Feedback.Tips {
		tips.WriteString(bulletStyle.Render("› ") + textStyle.Render(tip))
		if i < len(r.Feedback.Tips)-1 {
			tips.WriteString("\n")
		}
	}

	var b strings.Builder
	b.WriteString(components.ContentCard(fmt.Sprintf("Tips (%s)", r.Formula), tips.String(), cw))
	b.WriteString("\n")

	widths := components.LayoutRow(cw, 3)
	if a.isCompactLayout() {
		widths = []int{cw, cw, cw}
	}
	cards := []string{
		components.ContentCard("Badges", a.renderBadges(), widths[0]),
		components.ContentCard("Recurring Bills", renderRecurring(r.Recurring), widths[1]),
		components.ContentCard("Balance Sheet", renderBalanceSheet(r.NetWorth, components.CardInnerWidth(widths[2])), widths[2]),
	}
	if a.isCompactLayout() {
		b.WriteString(strings.Join(cards, "\n"))
	} else {
		b.WriteString(components.CardRow(cards))
	}
	return b.String()
}

func (a App) renderBadges() string {
	t := theme.Active
	onStyle := lipgloss.NewStyle().Foreground(t.GreenBright).Background(t.Surface).Bold(true)
	offStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)
	dateStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)

	all := feedback.AllBadges()
	var b strings.Builder
	for i, badge := range all {
		if a.report.Feedback.HasBadge(badge.ID) {
			b.WriteString(onStyle.Render("★ " + badge.Title))
			if at, ok := a.unlocks[badge.ID]; ok {
				b.WriteString(dateStyle.Render("  " + at.Local().Format("Jan 2, 2006")))
			}
		} else {
			b.WriteString(offStyle.Render("☆ " + badge.Title))
		}
		if i < len(all)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

func renderRecurring(rs model.RecurringStats) string {
	t := theme.Active
	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)

	if rs.ActiveCount == 0 {
		return labelStyle.Render("No active recurring expenses.")
	}

	row := func(label, value string) string {
		return labelStyle.Render(fmt.Sprintf("%-14s", label)) + valueStyle.Render(value)
	}
	lines := []string{
		row("Active", cli.FormatNumber(int64(rs.ActiveCount))),
		row("Per month", cli.FormatMoney(rs.MonthlyTotal)),
		row("Per year", cli.FormatMoney(rs.YearlyTotal)),
		row("Of income", cli.FormatPercent(rs.IncomeSharePercent)),
	}
	for _, freq := range model.Frequencies {
		if amt, ok := rs.ByFrequency[freq]; ok {
			lines = append(lines, row("  "+string(freq), cli.FormatMoney(amt)+"/mo"))
		}
	}
	return strings.Join(lines, "\n")
}

func renderBalanceSheet(nw model.NetWorthStats, innerW int) string {
	t := theme.Active
	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)

	row := func(label, value string) string {
		return labelStyle.Render(fmt.Sprintf("%-14s", label)) + valueStyle.Render(value)
	}
	lines := []string{
		row("Assets", cli.FormatMoney(nw.TotalAssets)),
		row("Liabilities", cli.FormatMoney(nw.TotalLiabilities)),
		row("Debt ratio", cli.FormatRatio(nw.DebtToAssetRatio)),
		row("Debt / month", cli.FormatMoney(nw.MonthlyDebtPayment)),
	}
	for _, s := range nw.AssetAllocation {
		lines = append(lines, row("  "+truncStr(s.Category, 12), cli.FormatPercent(s.SharePercent)))
	}
	if len(nw.Currencies) > 0 {
		lines = append(lines, labelStyle.Render(truncStr("Currencies: "+strings.Join(nw.Currencies, ", "), innerW)))
	}
	return strings.Join(lines, "\n")
}
