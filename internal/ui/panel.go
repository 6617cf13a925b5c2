package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// ProgressBar renders a Unicode progress bar with percentage.
func ProgressBar(done, total, width int) string {
	if total <= 0 {
		total = 1
	}
	if width < 5 {
		width = 5
	}
	filled := int(float64(done) / float64(total) * float64(width))
	if filled > width {
		filled = width
	}
	full, empty := "█", "░"
	if current.Name == "mono" {
		full, empty = "#", "."
	}
	bar := strings.Repeat(full, filled) + strings.Repeat(empty, width-filled)
	pct := int(float64(done) / float64(total) * 100)
	return fmt.Sprintf("%s %3d%%", bar, pct)
}

// PanelString frames lines with the current theme's border.
func PanelString(lines []string) string {
	b := current.Border
	maxw := 0
	for _, ln := range lines {
		if w := ansi.StringWidth(ln); w > maxw {
			maxw = w
		}
	}
	var sb strings.Builder
	sb.WriteString(b.TopLeft + strings.Repeat(b.Top, maxw+2) + b.TopRight + "\n")
	for _, ln := range lines {
		pad := maxw - ansi.StringWidth(ln)
		sb.WriteString(b.Left + " " + ln + strings.Repeat(" ", pad) + " " + b.Right + "\n")
	}
	sb.WriteString(b.BottomLeft + strings.Repeat(b.Bottom, maxw+2) + b.BottomRight)
	return sb.String()
}

// Panel prints PanelString to the printer output.
func Panel(lines []string) { fmt.Fprintln(stdout, PanelString(lines)) }
