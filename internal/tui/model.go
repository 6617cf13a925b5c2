// Package tui is the interactive to-do view: a draft form, the item list with
// toggle and delete, and the counts header.
package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Makepad-fr/tada/internal/model"
	"github.com/Makepad-fr/tada/internal/service"
	"github.com/Makepad-fr/tada/internal/state"
)

type focus int

const (
	focusForm focus = iota
	focusList
)

// Model is the Bubble Tea model. All state transitions happen in Update.
type Model struct {
	ctx context.Context
	svc *service.Service
	st  state.State

	list  list.Model
	input textinput.Model
	spin  spinner.Model
	help  help.Model
	keys  keyMap
	focus focus

	width, height int
}

// New returns a model that starts loading as soon as the program runs.
func New(ctx context.Context, svc *service.Service) Model {
	if ctx == nil {
		ctx = context.Background()
	}

	l := list.New(nil, rowDelegate{}, 0, 0)
	l.SetShowTitle(false)
	l.SetShowStatusBar(false)
	l.SetShowHelp(false)
	l.SetFilteringEnabled(false)
	l.SetShowPagination(true)
	l.KeyMap.Quit.SetEnabled(false)
	l.KeyMap.ForceQuit.SetEnabled(false)

	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "Add a new todo..."
	ti.CharLimit = 200
	ti.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	m := Model{
		ctx:   ctx,
		svc:   svc,
		st:    state.State{}.LoadStarted(),
		list:  l,
		input: ti,
		spin:  sp,
		help:  help.New(),
		keys:  defaultKeys(),
		focus: focusForm,
	}
	m.resize(80, 24)
	return m
}

// State returns the current view state.
func (m Model) State() state.State { return m.st }

// Init issues the one startup load.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.loadCmd(), m.spin.Tick, textinput.Blink)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case loadedMsg:
		if msg.err != nil {
			m.st = m.st.LoadFailed(state.LoadWarning)
		} else {
			m.st = m.st.LoadSucceeded(msg.items)
		}
		m.resize(m.width, m.height)
		return m, m.syncRows()

	case addedMsg:
		m.st = m.st.Added(msg.out)
		m.input.SetValue("")
		cmd := m.syncRows()
		m.list.Select(len(m.list.Items()) - 1)
		return m, cmd

	case toggledMsg:
		m.st = m.st.Toggled(msg.id)
		return m, m.syncRows()

	case deletedMsg:
		m.st = m.st.Deleted(msg.id)
		return m, m.syncRows()

	case spinner.TickMsg:
		if !m.st.Loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if key.Matches(msg, m.keys.Focus) {
			return m, m.toggleFocus()
		}
		if m.focus == focusForm {
			return m.updateForm(msg)
		}
		return m.updateList(msg)
	}

	if m.focus == focusForm {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Add):
		title := m.input.Value()
		if strings.TrimSpace(title) == "" {
			return m, nil
		}
		return m, m.addCmd(title)
	case key.Matches(msg, m.keys.Cancel):
		return m, m.toggleFocus()
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.st = m.st.WithDraft(m.input.Value())
	return m, cmd
}

func (m Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Cancel):
		return m, m.toggleFocus()
	case key.Matches(msg, m.keys.Toggle):
		it, ok := m.selected()
		if !ok {
			return m, nil
		}
		return m, m.toggleCmd(it)
	case key.Matches(msg, m.keys.Delete):
		it, ok := m.selected()
		if !ok {
			return m, nil
		}
		return m, m.deleteCmd(it.ID)
	case key.Matches(msg, m.keys.Reload):
		if m.st.Loading {
			return m, m.loadCmd()
		}
		m.st = m.st.LoadStarted()
		return m, tea.Batch(m.loadCmd(), m.spin.Tick)
	}
	if m.st.Phase() != state.PhaseList {
		return m, nil
	}
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// selected returns the held item under the cursor. Rows and state can
// briefly disagree only if an id vanished, which makes this a no-op.
func (m Model) selected() (model.Item, bool) {
	if m.st.Phase() != state.PhaseList {
		return model.Item{}, false
	}
	r, ok := m.list.SelectedItem().(row)
	if !ok {
		return model.Item{}, false
	}
	return m.st.Find(r.item.ID)
}

func (m *Model) toggleFocus() tea.Cmd {
	if m.focus == focusForm {
		m.focus = focusList
		m.input.Blur()
		return nil
	}
	m.focus = focusForm
	return m.input.Focus()
}

// syncRows keeps the cursor on a real row after the tail item goes away.
func (m *Model) syncRows() tea.Cmd {
	cmd := m.list.SetItems(rowsFor(m.st.Items))
	if n := len(m.st.Items); n > 0 && m.list.Index() >= n {
		m.list.Select(n - 1)
	}
	return cmd
}
