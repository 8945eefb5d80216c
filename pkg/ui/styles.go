package ui

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

var (
	cyan    = lipgloss.Color("#00FFFF")
	magenta = lipgloss.Color("#FF00FF")
	green   = lipgloss.Color("#39FF14")
	yellow  = lipgloss.Color("#FFFF00")
	red     = lipgloss.Color("#FF0000")
	dim     = lipgloss.Color("#B0B0B0")
)

// Theme holds the styles used for console output
type Theme struct {
	Title     lipgloss.Style
	Rule      lipgloss.Style
	Label     lipgloss.Style
	Value     lipgloss.Style
	Success   lipgloss.Style
	Error     lipgloss.Style
	Warning   lipgloss.Style
	Highlight lipgloss.Style
	Dim       lipgloss.Style
}

// NewRenderer returns a lipgloss renderer for w. With color false every
// style renders as plain text.
func NewRenderer(w io.Writer, color bool) *lipgloss.Renderer {
	r := lipgloss.NewRenderer(w)
	if !color {
		r.SetColorProfile(termenv.Ascii)
	}
	return r
}

// NewTheme builds the styles on renderer r
func NewTheme(r *lipgloss.Renderer) Theme {
	return Theme{
		Title:     r.NewStyle().Foreground(cyan).Bold(true),
		Rule:      r.NewStyle().Foreground(magenta),
		Label:     r.NewStyle().Foreground(cyan),
		Value:     r.NewStyle().Foreground(yellow).Bold(true),
		Success:   r.NewStyle().Foreground(green),
		Error:     r.NewStyle().Foreground(red).Bold(true),
		Warning:   r.NewStyle().Foreground(yellow),
		Highlight: r.NewStyle().Foreground(magenta).Bold(true),
		Dim:       r.NewStyle().Foreground(dim).Faint(true),
	}
}
