package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/theirongolddev/finpulse/internal/cli"
	"github.com/theirongolddev/finpulse/internal/feedback"
	"github.com/theirongolddev/finpulse/internal/model"
	"github.com/theirongolddev/finpulse/internal/store"
)

var insightsCmd = &cobra.Command{
	Use:     "insights",
	Aliases: []string{"tips", "badges"},
	Short:   "Tips and achievement badges for the active score",
	RunE:    runInsights,
}

func init() {
	rootCmd.AddCommand(insightsCmd)
}

func runInsights(_ *cobra.Command, _ []string) error {
	return withReport(func(ctx context.Context, st *store.Store, r model.Report) error {
		ids := make([]string, 0, len(r.Feedback.Badges))
		for _, b := range r.Feedback.Badges {
			ids = append(ids, b.ID)
		}
		fresh, err := st.RecordBadges(ctx, ids, time.Now())
		if err != nil {
			return fmt.Errorf("recording badges: %w", err)
		}
		unlocks, err := st.ListBadges(ctx)
		if err != nil {
			return fmt.Errorf("listing badges: %w", err)
		}
		unlockedAt := make(map[string]time.Time, len(unlocks))
		for _, u := range unlocks {
			unlockedAt[u.BadgeID] = u.UnlockedAt
		}

		hs := r.Score(r.Formula)

		fmt.Println()
		fmt.Println(cli.RenderTitle(fmt.Sprintf("INSIGHTS  %s %d (%s)", hs.Formula, hs.Score, hs.Label)))
		fmt.Println()

		fmt.Println("  Tips")
		for _, tip := range r.Feedback.Tips {
			fmt.Printf("    - %s\n", tip)
		}
		fmt.Println()

		gold := lipgloss.NewStyle().Foreground(cli.ColorYellow)
		dim := lipgloss.NewStyle().Foreground(cli.ColorTextDim)

		fmt.Println("  Badges")
		for _, b := range feedback.AllBadges() {
			if !r.Feedback.HasBadge(b.ID) {
				fmt.Printf("    %s %s\n", dim.Render("☆"), dim.Render(b.Title+"  "+b.Description))
				continue
			}
			line := fmt.Sprintf("    %s %s  %s", gold.Render("★"), b.Title, b.Description)
			if at, ok := unlockedAt[b.ID]; ok {
				line += dim.Render("  since " + at.Local().Format("2006-01-02"))
			}
			fmt.Println(line)
		}

		if len(fresh) > 0 {
			fmt.Println()
			for _, id := range fresh {
				fmt.Printf("  New badge unlocked: %s\n", badgeTitle(id))
			}
		}
		fmt.Println()
		return nil
	})
}

func badgeTitle(id string) string {
	for _, b := range feedback.AllBadges() {
		if b.ID == id {
			return b.Title
		}
	}
	return id
}
