package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/idilsaglam/wordlink/internal/game"
	"github.com/idilsaglam/wordlink/internal/model"
)

// Run starts the interactive game on the terminal and returns the log when the player quits.
func Run(ctrl *game.Controller, opts ...tea.ProgramOption) ([]model.LogEntry, error) {
	if len(opts) == 0 {
		opts = []tea.ProgramOption{tea.WithAltScreen()}
	}
	p := tea.NewProgram(New(ctrl), opts...)
	final, err := p.Run()
	if err != nil {
		return ctrl.Entries(), fmt.Errorf("run tui: %w", err)
	}
	fm, ok := final.(Model)
	if !ok {
		return ctrl.Entries(), nil
	}
	return fm.Entries(), nil
}
