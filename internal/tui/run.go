package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/kvernberg/nixwright/internal/selection"
)

// Run drives the wizard in the alternate screen until the user finishes or
// aborts. It reports whether the run completed; only a completed run should
// proceed to synthesis.
func Run(st *selection.State) (bool, error) {
	engine := NewEngine(st, NewMenuPage())
	program := tea.NewProgram(engine, tea.WithAltScreen())

	model, err := program.Run()
	if err != nil {
		return false, fmt.Errorf("wizard failed: %w", err)
	}
	return model.(*Engine).Completed(), nil
}
