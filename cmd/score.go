package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/finpulse/internal/cli"
	"github.com/theirongolddev/finpulse/internal/model"
	"github.com/theirongolddev/finpulse/internal/score"
	"github.com/theirongolddev/finpulse/internal/store"
)

var flagScoreShow string

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Health score with per-factor breakdown",
	RunE:  runScore,
}

func init() {
	scoreCmd.Flags().StringVar(&flagScoreShow, "show", "", "Which score to show: wellness, portfolio or both (default: the active formula)")
	rootCmd.AddCommand(scoreCmd)
}

func runScore(_ *cobra.Command, _ []string) error {
	show, err := scoresToShow(flagScoreShow)
	if err != nil {
		return err
	}

	return withReport(func(_ context.Context, _ *store.Store, r model.Report) error {
		fmt.Println()
		for _, f := range show {
			printScore(r.Score(string(f)), f == score.Formula(r.Formula))
		}
		return nil
	})
}

func scoresToShow(show string) ([]score.Formula, error) {
	switch strings.ToLower(show) {
	case "":
		f, err := formula()
		if err != nil {
			return nil, err
		}
		return []score.Formula{f}, nil
	case "both", "all":
		return score.Formulas, nil
	default:
		f, err := score.ByName(show)
		if err != nil {
			return nil, err
		}
		return []score.Formula{f}, nil
	}
}

func printScore(hs model.HealthScore, active bool) {
	title := strings.ToUpper(hs.Formula) + " SCORE"
	if active {
		title += "  (active)"
	}
	fmt.Println(cli.RenderTitle(title))
	fmt.Println()
	fmt.Printf("  %s  %s\n\n", cli.RenderScoreBar(hs.Score, 30), hs.Label)

	rows := make([][]string, 0, len(hs.Factors))
	for _, f := range hs.Factors {
		weight := "-"
		if f.Weight > 0 {
			weight = cli.FormatPercent(f.Weight * 100)
		}
		data := "yes"
		if !f.HasData {
			data = "default"
		}
		rows = append(rows, []string{
			f.Name,
			fmt.Sprintf("%.1f / %.0f", f.Score, f.Max),
			cli.FormatPercent(f.Percent()),
			weight,
			data,
		})
	}
	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Factor", "Points", "Of max", "Weight", "Data"},
		Rows:    rows,
	}))
	fmt.Println()
}
