package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"igunfollow/pkg/compare"
)

// Model is the Bubble Tea model for browsing a comparison result
type Model struct {
	result compare.Result
	output string

	viewport viewport.Model
	filter   textinput.Model
	help     help.Model
	keys     keyMap

	filtering bool
	ready     bool
	width     int
	height    int
}

// NewModel creates a browser for res. output names the CSV file the result
// was saved to and may be empty.
func NewModel(res compare.Result, output string) Model {
	ti := textinput.New()
	ti.Prompt = "/ "
	ti.Placeholder = "filter usernames"
	ti.CharLimit = 64

	return Model{
		result: res,
		output: output,
		filter: ti,
		help:   help.New(),
		keys:   defaultKeyMap,
	}
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return nil
}

// Visible returns the non-followers that pass the current filter
func (m Model) Visible() []string {
	query := strings.ToLower(strings.TrimSpace(m.filter.Value()))
	if query == "" {
		return m.result.NonFollowers
	}

	var out []string
	for _, u := range m.result.NonFollowers {
		if strings.Contains(strings.ToLower(u), query) {
			out = append(out, u)
		}
	}
	return out
}

// Filtering reports whether the filter input has focus
func (m Model) Filtering() bool {
	return m.filtering
}
