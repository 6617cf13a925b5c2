package tui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Makepad-fr/tada/internal/model"
	"github.com/Makepad-fr/tada/internal/ui"
)

// row adapts model.Item to bubbles/list.Item
type row struct {
	item model.Item
}

func (r row) Title() string       { return r.item.Title }
func (r row) Description() string { return "" }
func (r row) FilterValue() string { return r.item.Title }

func rowsFor(items []model.Item) []list.Item {
	out := make([]list.Item, 0, len(items))
	for _, it := range items {
		out = append(out, row{item: it})
	}
	return out
}

// rowDelegate renders one item per line: cursor, check box, title, and a
// badge for items only held locally.
type rowDelegate struct{}

func (d rowDelegate) Height() int                               { return 1 }
func (d rowDelegate) Spacing() int                              { return 0 }
func (d rowDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d rowDelegate) Render(w io.Writer, m list.Model, index int, li list.Item) {
	r, ok := li.(row)
	if !ok {
		return
	}
	t := ui.Current()

	box := t.Muted.Render(t.BoxUnchecked)
	text := r.item.Title
	if r.item.IsCompleted {
		box = t.Success.Render(t.BoxChecked)
		text = t.Done.Render(text)
	}
	line := fmt.Sprintf("%s %s", box, text)
	if r.item.ID.IsLocal() {
		line += " " + t.Muted.Render("(local)")
	}

	prefix := "  "
	if index == m.Index() {
		prefix = t.Selected.Render(">") + " "
	}
	fmt.Fprint(w, prefix+line)
}
