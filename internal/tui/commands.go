package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Makepad-fr/tada/internal/model"
	"github.com/Makepad-fr/tada/internal/state"
)

// Messages carrying settled remote calls back into Update.
type (
	loadedMsg struct {
		items []model.Item
		err   error
	}
	addedMsg   struct{ out state.Outcome }
	toggledMsg struct {
		id  model.ID
		out state.Outcome
	}
	deletedMsg struct {
		id  model.ID
		out state.Outcome
	}
)

func (m Model) loadCmd() tea.Cmd {
	svc, ctx := m.svc, m.ctx
	return func() tea.Msg {
		items, err := svc.Load(ctx)
		return loadedMsg{items: items, err: err}
	}
}

// addCmd returns nil for blank titles.
func (m Model) addCmd(title string) tea.Cmd {
	svc, ctx := m.svc, m.ctx
	return func() tea.Msg {
		out, ok := svc.Add(ctx, title)
		if !ok {
			return nil
		}
		return addedMsg{out: out}
	}
}

func (m Model) toggleCmd(current model.Item) tea.Cmd {
	svc, ctx := m.svc, m.ctx
	return func() tea.Msg {
		return toggledMsg{id: current.ID, out: svc.Toggle(ctx, current)}
	}
}

func (m Model) deleteCmd(id model.ID) tea.Cmd {
	svc, ctx := m.svc, m.ctx
	return func() tea.Msg {
		return deletedMsg{id: id, out: svc.Delete(ctx, id)}
	}
}
