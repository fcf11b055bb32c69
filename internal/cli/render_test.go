package cli

import (
	"strings"
	"testing"
)

func TestRenderTableAlignsColumns(t *testing.T) {
	out := RenderTable(Table{
		Headers: []string{"Month", "Income"},
		Rows: [][]string{
			{"Jan 2026", "1,000.00"},
			SeparatorRow,
			{"Total", "12.00"},
		},
	})
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 7 {
		t.Fatalf("got %d lines, want 7:\n%s", len(lines), out)
	}
	if !strings.Contains(out, "    12.00") {
		t.Errorf("numeric column not right-aligned:\n%s", out)
	}
}

func TestRenderTableEmpty(t *testing.T) {
	if got := RenderTable(Table{}); got != "" {
		t.Errorf("RenderTable(empty) = %q, want empty", got)
	}
}

func TestRenderSparkline(t *testing.T) {
	got := RenderSparkline([]float64{0, 50, 100})
	if got != "▁▄█" {
		t.Errorf("RenderSparkline = %q, want ▁▄█", got)
	}
	if RenderSparkline(nil) != "" {
		t.Error("RenderSparkline(nil) should be empty")
	}
}

func TestRenderScoreBarClamps(t *testing.T) {
	if got := RenderScoreBar(150, 10); !strings.HasSuffix(got, "100") {
		t.Errorf("RenderScoreBar(150) = %q, want clamped to 100", got)
	}
}

func TestScoreColorBands(t *testing.T) {
	if ScoreColor(85) != ColorGreen || ScoreColor(10) != ColorRed {
		t.Error("ScoreColor bands wrong")
	}
}
