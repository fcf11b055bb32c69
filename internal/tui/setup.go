package tui

import (
	"fmt"

	"github.com/charmbracelet/huh"

	"github.com/theirongolddev/finpulse/internal/config"
	"github.com/theirongolddev/finpulse/internal/score"
	"github.com/theirongolddev/finpulse/internal/tui/theme"
)

// setupValues holds what the first-run form collects.
type setupValues struct {
	months  int
	formula string
	theme   string
	dbPath  string
}

func newSetupValues(opts Options) setupValues {
	return setupValues{
		months:  opts.Months,
		formula: string(opts.Formula),
		theme:   theme.Active.Name,
		dbPath:  opts.DBPath,
	}
}

// RunSetup runs the configuration form outside the dashboard and saves the
// answers.
func RunSetup(opts Options, records int) error {
	vals := newSetupValues(opts)
	if err := newSetupForm(records, &vals).Run(); err != nil {
		return err
	}
	return saveSetup(vals)
}

func newSetupForm(records int, vals *setupValues) *huh.Form {
	welcome := fmt.Sprintf("Welcome to finpulse! %d records in the database.", records)

	monthOpts := []huh.Option[int]{
		huh.NewOption("3 months", 3),
		huh.NewOption("6 months", 6),
		huh.NewOption("12 months", 12),
		huh.NewOption("24 months", 24),
	}
	formulaOpts := make([]huh.Option[string], 0, len(score.Formulas))
	for _, f := range score.Formulas {
		formulaOpts = append(formulaOpts, huh.NewOption(string(f), string(f)))
	}
	themeOpts := make([]huh.Option[string], 0, len(theme.All))
	for _, t := range theme.All {
		themeOpts = append(themeOpts, huh.NewOption(t.Name, t.Name))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewNote().
				Title(welcome).
				Description("A few defaults, then the dashboard."),
			huh.NewSelect[int]().
				Title("History window").
				Description("How many months the charts and rates cover.").
				Options(monthOpts...).
				Value(&vals.months),
			huh.NewSelect[string]().
				Title("Headline score").
				Description("Tips and badges follow this formula.").
				Options(formulaOpts...).
				Value(&vals.formula),
			huh.NewSelect[string]().
				Title("Color theme").
				Options(themeOpts...).
				Value(&vals.theme),
			huh.NewInput().
				Title("Database path").
				Description("Leave as is to use the default location.").
				Value(&vals.dbPath),
		),
	).WithShowHelp(false)
}

// saveSetup writes the collected values to the config file.
func saveSetup(vals setupValues) error {
	cfg := loadConfigOrDefault()
	cfg.General.Months = vals.months
	cfg.General.Formula = vals.formula
	cfg.General.DBPath = vals.dbPath
	cfg.Appearance.Theme = vals.theme
	return config.Save(cfg)
}

// applySetup saves the form and points the running dashboard at the result.
func (a *App) applySetup() {
	v := a.setupVals
	if f, err := score.ByName(v.formula); err == nil {
		a.opts.Formula = f
	}
	if v.months > 0 {
		a.opts.Months = v.months
	}
	if v.dbPath != "" {
		a.opts.DBPath = v.dbPath
	}
	theme.SetActive(v.theme)
	a.settings.saveErr = saveSetup(v)
}
