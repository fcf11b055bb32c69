package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestTabVisualWidthMatchesRender(t *testing.T) {
	for active := range Tabs {
		bar := RenderTabBar(active, 0)
		want := 0
		for i, tab := range Tabs {
			want += TabVisualWidth(tab, i == active)
		}
		want += len(Tabs) - 1 // separators
		if got := lipgloss.Width(bar); got != want {
			t.Errorf("active=%d: rendered width %d, want %d", active, got, want)
		}
	}
}

func TestTabIdxByKey(t *testing.T) {
	if TabIdxByKey('s') != 2 {
		t.Error("s should select Score")
	}
	if TabIdxByKey('z') != -1 {
		t.Error("unbound key should return -1")
	}
}

func TestStatusBarFillsWidth(t *testing.T) {
	bar := RenderStatusBar(100, StatusInfo{Formula: "wellness", Months: 6, LoadTime: "0.2s"})
	if w := lipgloss.Width(bar); w != 100 {
		t.Errorf("status bar width = %d, want 100", w)
	}
	if !strings.Contains(bar, "wellness") {
		t.Error("status bar should name the formula")
	}
}
