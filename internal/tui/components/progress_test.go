package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestProgressBarClamps(t *testing.T) {
	got := ProgressBar(1.7, 10)
	if !strings.Contains(got, "100%") {
		t.Errorf("ProgressBar(1.7) = %q, want clamped to 100%%", got)
	}
	if !strings.Contains(ProgressBar(-1, 10), "0%") {
		t.Error("negative progress should clamp to 0%")
	}
}

func TestScoreGaugeShowsScoreAndLabel(t *testing.T) {
	got := ScoreGauge(72, "Good", 20)
	if !strings.Contains(got, " 72") || !strings.Contains(got, "Good") {
		t.Errorf("ScoreGauge = %q, want score and label", got)
	}
	if w := lipgloss.Width(got); w != 20+1+3+1+len("Good") {
		t.Errorf("gauge width = %d", w)
	}
}

func TestFactorBarNoData(t *testing.T) {
	got := FactorBar("Goals", 50, false, 10, 12)
	if !strings.Contains(got, "no data") {
		t.Errorf("FactorBar without data = %q, want a no data note", got)
	}
	if !strings.Contains(FactorBar("Savings", 64, true, 10, 12), "64%") {
		t.Error("FactorBar should show the percent")
	}
}
