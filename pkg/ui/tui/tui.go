package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"igunfollow/pkg/compare"
)

// TUI represents the terminal user interface
type TUI struct {
	program *tea.Program
}

// NewTUI creates a result browser. Extra program options are passed to
// Bubble Tea, which lets callers swap the terminal for other streams.
func NewTUI(res compare.Result, output string, opts ...tea.ProgramOption) *TUI {
	model := NewModel(res, output)
	opts = append([]tea.ProgramOption{tea.WithAltScreen()}, opts...)

	return &TUI{
		program: tea.NewProgram(model, opts...),
	}
}

// Start runs the browser until the user quits
func (t *TUI) Start() error {
	_, err := t.program.Run()
	return err
}

// Run opens a browser over res and blocks until it closes
func Run(res compare.Result, output string) error {
	return NewTUI(res, output).Start()
}
