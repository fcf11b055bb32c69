package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/finpulse/internal/model"
	"github.com/theirongolddev/finpulse/internal/tui/components"
	"github.com/theirongolddev/finpulse/internal/tui/theme"
)

var factorTitles = map[string]string{
	model.FactorSavings:         "Savings rate",
	model.FactorBudget:          "Budget",
	model.FactorGoals:           "Goals",
	model.FactorDiversification: "Diversification",
	model.FactorConsistency:     "Consistency",
	model.FactorExpense:         "Expense control",
	model.FactorInvestment:      "Investing",
}

func factorTitle(name string) string {
	if title, ok := factorTitles[name]; ok {
		return title
	}
	return name
}

func (a App) renderScoreTab(cw int) string {
	widths := components.LayoutRow(cw, 2)
	if a.isCompactLayout() {
		widths = []int{cw, cw}
	}

	wellness := a.renderScoreCard(a.report.Wellness, widths[0])
	portfolio := a.renderScoreCard(a.report.Portfolio, widths[1])
	if a.isCompactLayout() {
		return wellness + "\n" + portfolio
	}
	return components.CardRow([]string{wellness, portfolio})
}

func (a App) renderScoreCard(hs model.HealthScore, outerW int) string {
	t := theme.Active
	innerW := components.CardInnerWidth(outerW)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)

	var b strings.Builder
	b.WriteString(components.ScoreGauge(hs.Score, hs.Label, max(innerW-16, 10)))
	b.WriteString("\n\n")

	labelW := 16
	barW := max(innerW-labelW-10, 4)
	for i, f := range hs.Factors {
		b.WriteString(components.FactorBar(factorTitle(f.Name), f.Percent(), f.HasData, labelW, barW))
		if i < len(hs.Factors)-1 {
			b.WriteString("\n")
		}
	}

	title := titleCase(hs.Formula)
	if hs.Formula == string(a.opts.Formula) {
		title += " ●"
		b.WriteString("\n\n")
		b.WriteString(dimStyle.Render("Tips and badges follow this score. Press f to switch."))
	}
	return components.ContentCard(title, b.String(), outerW)
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
