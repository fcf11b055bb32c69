package theme

import "testing"

func TestByNameFallsBack(t *testing.T) {
	if got := ByName("nope").Name; got != FlexokiDark.Name {
		t.Errorf("ByName(unknown) = %q, want %q", got, FlexokiDark.Name)
	}
	if got := ByName("tokyo-night").Name; got != "tokyo-night" {
		t.Errorf("ByName(tokyo-night) = %q", got)
	}
}

func TestScoreColorBands(t *testing.T) {
	th := FlexokiDark
	if th.ScoreColor(95) != th.GreenBright {
		t.Error("95 should be green-bright")
	}
	if th.ScoreColor(45) != th.Yellow {
		t.Error("45 should be yellow")
	}
	if th.ScoreColor(0) != th.Red {
		t.Error("0 should be red")
	}
}

func TestTrendColorInverted(t *testing.T) {
	th := FlexokiDark
	if th.TrendColor(10, false) != th.Green {
		t.Error("rising income should be green")
	}
	if th.TrendColor(10, true) != th.Red {
		t.Error("rising expenses should be red")
	}
	if th.TrendColor(0, true) != th.TextMuted {
		t.Error("flat should be muted")
	}
}
