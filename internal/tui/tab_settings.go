package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/finpulse/internal/cli"
	"github.com/theirongolddev/finpulse/internal/config"
	"github.com/theirongolddev/finpulse/internal/score"
	"github.com/theirongolddev/finpulse/internal/tui/components"
	"github.com/theirongolddev/finpulse/internal/tui/theme"
)

const (
	settingsFieldMonths = iota
	settingsFieldFormula
	settingsFieldTipThreshold
	settingsFieldTheme
	settingsFieldAutoRefresh
	settingsFieldRefreshInterval
	settingsFieldCount
)

type settingsState struct {
	cursor  int
	editing bool
	input   textinput.Model
	saved   bool
	saveErr error
}

func (a App) settingsStartEdit() (tea.Model, tea.Cmd) {
	cfg := loadConfigOrDefault()
	a.settings.editing = true
	a.settings.saved = false

	ti := textinput.New()
	ti.CharLimit = 64
	ti.Width = 40

	switch a.settings.cursor {
	case settingsFieldMonths:
		ti.Placeholder = "6 (1-36)"
		ti.SetValue(strconv.Itoa(a.opts.Months))
	case settingsFieldFormula:
		ti.Placeholder = "wellness or portfolio"
		ti.SetValue(string(a.opts.Formula))
	case settingsFieldTipThreshold:
		ti.Placeholder = "50 (factor percent)"
		ti.SetValue(strconv.FormatFloat(a.opts.Rules.TipThreshold, 'f', -1, 64))
	case settingsFieldTheme:
		ti.Placeholder = strings.Join(theme.Names(), ", ")
		ti.SetValue(cfg.Appearance.Theme)
	case settingsFieldAutoRefresh:
		ti.Placeholder = "true or false"
		ti.SetValue(strconv.FormatBool(a.autoRefresh))
	case settingsFieldRefreshInterval:
		ti.Placeholder = "60 (seconds, minimum 10)"
		ti.SetValue(strconv.Itoa(int(a.refreshInterval.Seconds())))
	}

	ti.Focus()
	a.settings.input = ti
	return a, ti.Cursor.BlinkCmd()
}

func (a App) updateSettingsInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		reload := a.settingsSave()
		a.settings.editing = false
		a.settings.saved = a.settings.saveErr == nil
		if reload && !a.refreshing {
			a.refreshing = true
			return a, loadDataCmd(a.opts, true)
		}
		return a, nil
	case "esc":
		a.settings.editing = false
		return a, nil
	}

	var cmd tea.Cmd
	a.settings.input, cmd = a.settings.input.Update(msg)
	return a, cmd
}

// settingsSave applies and persists the edited field. It reports whether the
// report needs rebuilding.
func (a *App) settingsSave() bool {
	cfg := loadConfigOrDefault()
	val := strings.TrimSpace(a.settings.input.Value())
	reload := false
	a.settings.saveErr = nil

	switch a.settings.cursor {
	case settingsFieldMonths:
		m, err := strconv.Atoi(val)
		if err != nil || m < 1 || m > 36 {
			a.settings.saveErr = fmt.Errorf("months must be 1-36, got %q", val)
			return false
		}
		cfg.General.Months = m
		a.opts.Months = m
		reload = true
	case settingsFieldFormula:
		f, err := score.ByName(val)
		if err != nil {
			a.settings.saveErr = err
			return false
		}
		cfg.General.Formula = string(f)
		a.opts.Formula = f
		reload = true
	case settingsFieldTipThreshold:
		v, err := strconv.ParseFloat(val, 64)
		if err != nil || v < 0 || v > 100 {
			a.settings.saveErr = fmt.Errorf("tip threshold must be 0-100, got %q", val)
			return false
		}
		cfg.Feedback.TipThreshold = v
		a.opts.Rules.TipThreshold = v
		reload = true
	case settingsFieldTheme:
		if theme.ByName(val).Name != val {
			a.settings.saveErr = fmt.Errorf("unknown theme %q", val)
			return false
		}
		cfg.Appearance.Theme = val
		theme.SetActive(val)
	case settingsFieldAutoRefresh:
		on, err := strconv.ParseBool(val)
		if err != nil {
			a.settings.saveErr = fmt.Errorf("auto refresh must be true or false, got %q", val)
			return false
		}
		cfg.TUI.AutoRefresh = on
		a.autoRefresh = on
	case settingsFieldRefreshInterval:
		sec, err := strconv.Atoi(val)
		if err != nil || sec < 10 {
			a.settings.saveErr = fmt.Errorf("refresh interval must be at least 10 seconds, got %q", val)
			return false
		}
		cfg.TUI.RefreshIntervalSec = sec
		a.refreshInterval = time.Duration(sec) * time.Second
	}

	a.settings.saveErr = config.Save(cfg)
	return reload
}

func (a App) renderSettingsTab(cw int) string {
	t := theme.Active
	cfg := loadConfigOrDefault()

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	selectedStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.SurfaceBright).Bold(true)
	selectedLabelStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.SurfaceBright).Bold(true)
	markerStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.SurfaceBright)
	accentStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.Surface)

	fields := []struct{ label, value string }{
		{"Months", strconv.Itoa(a.opts.Months)},
		{"Formula", string(a.opts.Formula)},
		{"Tip Threshold", cli.FormatPercent(a.opts.Rules.TipThreshold)},
		{"Theme", cfg.Appearance.Theme},
		{"Auto Refresh", strconv.FormatBool(a.autoRefresh)},
		{"Refresh Interval", fmt.Sprintf("%ds", int(a.refreshInterval.Seconds()))},
	}

	innerW := components.CardInnerWidth(cw)
	var form strings.Builder
	for i, f := range fields {
		switch {
		case a.settings.editing && i == a.settings.cursor:
			form.WriteString(markerStyle.Render("▸ "))
			form.WriteString(accentStyle.Render(fmt.Sprintf("%-18s ", f.label)))
			form.WriteString(a.settings.input.View())
		case i == a.settings.cursor:
			line := markerStyle.Render("▸ ") +
				selectedLabelStyle.Render(fmt.Sprintf("%-18s ", f.label+":")) +
				selectedStyle.Render(f.value)
			form.WriteString(line)
			if pad := innerW - lipgloss.Width(line); pad > 0 {
				form.WriteString(lipgloss.NewStyle().Background(t.SurfaceBright).Render(strings.Repeat(" ", pad)))
			}
		default:
			form.WriteString(labelStyle.Render("  " + fmt.Sprintf("%-18s ", f.label+":")))
			form.WriteString(valueStyle.Render(f.value))
		}
		form.WriteString("\n")
	}

	if a.settings.saveErr != nil {
		form.WriteString("\n")
		form.WriteString(lipgloss.NewStyle().Foreground(t.Orange).Background(t.Surface).
			Render("Not saved: " + a.settings.saveErr.Error()))
	} else if a.settings.saved {
		form.WriteString("\n")
		form.WriteString(lipgloss.NewStyle().Foreground(t.GreenBright).Background(t.Surface).Render("Saved!"))
	}
	form.WriteString("\n")
	form.WriteString(labelStyle.Render("[j/k] navigate  [Enter] edit  [Esc] cancel"))

	c := a.counts
	var info strings.Builder
	info.WriteString(labelStyle.Render("Database:      ") + valueStyle.Render(a.opts.DBPath) + "\n")
	info.WriteString(labelStyle.Render("Config file:   ") + valueStyle.Render(config.ConfigPath()) + "\n")
	info.WriteString(labelStyle.Render("Records:       ") + valueStyle.Render(fmt.Sprintf(
		"%s tx · %d assets · %d liabilities · %d goals · %d recurring",
		cli.FormatNumber(int64(c.Transactions)), c.Assets, c.Liabilities, c.Goals, c.Recurring)) + "\n")
	info.WriteString(labelStyle.Render("Imported files:") + valueStyle.Render(" "+strconv.Itoa(c.Files)) + "\n")
	info.WriteString(labelStyle.Render("Load time:     ") + valueStyle.Render(fmt.Sprintf("%.2fs", a.loadTime.Seconds())))

	return components.ContentCard("Settings", form.String(), cw) + "\n" +
		components.ContentCard("Data", info.String(), cw)
}
