package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Add    key.Binding
	Toggle key.Binding
	Delete key.Binding
	Reload key.Binding
	Focus  key.Binding
	Up     key.Binding
	Down   key.Binding
	Cancel key.Binding
	Quit   key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Add:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "add")),
		Toggle: key.NewBinding(key.WithKeys(" ", "x"), key.WithHelp("space", "toggle")),
		Delete: key.NewBinding(key.WithKeys("d", "delete"), key.WithHelp("d", "delete")),
		Reload: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload")),
		Focus:  key.NewBinding(key.WithKeys("tab", "shift+tab"), key.WithHelp("tab", "form/list")),
		Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Cancel: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "form/list")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// formKeys is the help shown while the draft input has focus.
type formKeys struct{ k keyMap }

func (f formKeys) ShortHelp() []key.Binding {
	return []key.Binding{f.k.Add, f.k.Focus, f.k.Cancel}
}
func (f formKeys) FullHelp() [][]key.Binding { return [][]key.Binding{f.ShortHelp()} }

type listKeys struct{ k keyMap }

func (l listKeys) ShortHelp() []key.Binding {
	return []key.Binding{l.k.Up, l.k.Down, l.k.Toggle, l.k.Delete, l.k.Reload, l.k.Cancel, l.k.Quit}
}
func (l listKeys) FullHelp() [][]key.Binding { return [][]key.Binding{l.ShortHelp()} }
