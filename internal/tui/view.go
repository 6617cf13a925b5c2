package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Makepad-fr/tada/internal/state"
	"github.com/Makepad-fr/tada/internal/ui"
)

const (
	loadingText = "Loading todos..."
	emptyText   = "No todos yet. Add one above!"
)

// chrome is the number of lines around the list: title, form, counts,
// help, spacing and the frame.
const chrome = 10

func (m *Model) resize(w, h int) {
	m.width, m.height = w, h
	listHeight := h - chrome
	if m.st.Warning != "" {
		listHeight -= 3
	}
	if listHeight < 3 {
		listHeight = 3
	}
	m.list.SetSize(max(w-4, 10), listHeight)
	m.input.Width = max(w-8, 10)
	m.help.Width = max(w-4, 10)
}

func (m Model) View() string {
	t := ui.Current()
	var b strings.Builder

	b.WriteString(t.Title.Render("Todo App"))
	b.WriteString("\n")
	if m.st.Warning != "" {
		b.WriteString(t.Banner.Render(m.st.Warning))
		b.WriteString("\n")
	}
	b.WriteString(m.input.View())
	b.WriteString("\n\n")
	b.WriteString(countsLine(m.st.Counts()))
	b.WriteString("\n\n")

	switch m.st.Phase() {
	case state.PhaseLoading:
		b.WriteString(m.spin.View() + " " + t.Muted.Render(loadingText))
	case state.PhaseEmpty:
		b.WriteString(t.Muted.Render(emptyText))
	default:
		b.WriteString(m.list.View())
	}
	b.WriteString("\n\n")

	if m.focus == focusForm {
		b.WriteString(t.Help.Render(m.help.View(formKeys{m.keys})))
	} else {
		b.WriteString(t.Help.Render(m.help.View(listKeys{m.keys})))
	}

	frame := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("8")).
		Padding(0, 1)
	return frame.Render(b.String())
}

func countsLine(c state.Counts) string {
	t := ui.Current()
	return fmt.Sprintf("%s %d   %s %d   %s %d",
		t.Accent.Render("Total"), c.Total,
		t.Success.Render("Completed"), c.Completed,
		t.Pending.Render("Remaining"), c.Remaining,
	)
}
