package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme bundles palette + symbols + box borders.
// All UI helpers pull from `current`.
type Theme struct {
	Name string

	Title, Muted, Accent, Success, Error, Pending lipgloss.Style
	Selected, Done, Help, Banner                  lipgloss.Style

	BoxUnchecked, BoxChecked string
	SymOK, SymFail, SymWarn  string
	SymDone, SymPending      string
	Border                   lipgloss.Border
}

var current = classic()

func SetTheme(name string) {
	switch strings.ToLower(name) {
	case "neon":
		current = Theme{
			Name:    "neon",
			Title:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("13")),
			Muted:   lipgloss.NewStyle().Faint(true),
			Accent:  lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
			Success: lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
			Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
			Pending: lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
			Selected: lipgloss.NewStyle().Bold(true).
				Foreground(lipgloss.Color("13")),
			Done:   lipgloss.NewStyle().Faint(true).Strikethrough(true),
			Help:   lipgloss.NewStyle().Faint(true),
			Banner: lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("11")).Padding(0, 1),

			BoxUnchecked: "◻", BoxChecked: "◼",
			SymOK: "✔", SymFail: "✖", SymWarn: "!",
			SymDone: "✔", SymPending: "•",
			Border: lipgloss.RoundedBorder(),
		}
	case "mono":
		plain := lipgloss.NewStyle()
		current = Theme{
			Name:  "mono",
			Title: plain, Muted: plain, Accent: plain,
			Success: plain, Error: plain, Pending: plain,
			Selected: plain, Done: plain, Help: plain,
			Banner: plain.Border(lipgloss.NormalBorder()).Padding(0, 1),

			BoxUnchecked: "[ ]", BoxChecked: "[x]",
			SymOK: "ok", SymFail: "error:", SymWarn: "warning:",
			SymDone: "x", SymPending: "-",
			Border: asciiBorder,
		}
	default:
		current = classic()
	}
}

func classic() Theme {
	return Theme{
		Name:     "classic",
		Title:    lipgloss.NewStyle().Bold(true),
		Muted:    lipgloss.NewStyle().Faint(true),
		Accent:   lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
		Success:  lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		Error:    lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		Pending:  lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		Selected: lipgloss.NewStyle().Bold(true).Reverse(true),
		Done:     lipgloss.NewStyle().Faint(true).Strikethrough(true),
		Help:     lipgloss.NewStyle().Faint(true),
		Banner:   lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("214")).Padding(0, 1),

		BoxUnchecked: "☐", BoxChecked: "☑",
		SymOK: "✔", SymFail: "✖", SymWarn: "⚠",
		SymDone: "✔", SymPending: "•",
		Border: lipgloss.NormalBorder(),
	}
}

var asciiBorder = lipgloss.Border{
	Top: "-", Bottom: "-", Left: "|", Right: "|",
	TopLeft: "+", TopRight: "+", BottomLeft: "+", BottomRight: "+",
}

// Expose what renderers need
func Current() Theme { return current }
