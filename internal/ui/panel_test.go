package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
)

func TestProgressBar(t *testing.T) {
	SetTheme("classic")
	tests := []struct {
		done, total, width int
		want               string
	}{
		{0, 0, 10, "░░░░░░░░░░   0%"},
		{1, 2, 10, "█████░░░░░  50%"},
		{3, 3, 5, "█████ 100%"},
		{1, 4, 2, "█░░░░  25%"},
	}
	for _, tt := range tests {
		if got := ProgressBar(tt.done, tt.total, tt.width); got != tt.want {
			t.Errorf("ProgressBar(%d, %d, %d) = %q, want %q", tt.done, tt.total, tt.width, got, tt.want)
		}
	}
}

func TestPanelAlignsStyledLines(t *testing.T) {
	SetTheme("mono")
	defer SetTheme("classic")

	styled := "\x1b[1mbold\x1b[0m text"
	out := PanelString([]string{styled, "a much longer line"})
	lines := strings.Split(out, "\n")
	if len(lines) != 4 {
		t.Fatalf("expected 4 lines, got %d: %q", len(lines), out)
	}
	w := ansi.StringWidth(lines[0])
	for i, ln := range lines {
		if got := ansi.StringWidth(ln); got != w {
			t.Errorf("line %d width %d, want %d: %q", i, got, w, ln)
		}
	}
	if !strings.HasPrefix(lines[0], "+") || !strings.HasPrefix(lines[1], "| ") {
		t.Errorf("mono theme should use ascii borders: %q", out)
	}
}

func TestThemeFallsBackToClassic(t *testing.T) {
	SetTheme("does-not-exist")
	if Current().Name != "classic" {
		t.Fatalf("got %q", Current().Name)
	}
}
