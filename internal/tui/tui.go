package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Makepad-fr/tada/internal/service"
	"github.com/Makepad-fr/tada/internal/state"
)

// Run starts the program on the alternate screen and returns the final state
// when the user quits.
func Run(ctx context.Context, svc *service.Service) (state.State, error) {
	p := tea.NewProgram(New(ctx, svc), tea.WithAltScreen(), tea.WithContext(ctx))
	final, err := p.Run()
	if err != nil {
		return state.State{}, fmt.Errorf("tui: %w", err)
	}
	fm, ok := final.(Model)
	if !ok {
		return state.State{}, nil
	}
	return fm.State(), nil
}
