package ui

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// Printer writes styled messages to a terminal or any other writer
type Printer struct {
	out   io.Writer
	theme Theme
	quiet bool
}

// NewPrinter creates a Printer writing to w
func NewPrinter(w io.Writer, color bool) *Printer {
	return &Printer{
		out:   w,
		theme: NewTheme(NewRenderer(w, color)),
	}
}

// ColorSupported reports whether f is a terminal that can show colors
func ColorSupported(f *os.File) bool {
	return term.IsTerminal(int(f.Fd())) && os.Getenv("TERM") != "dumb"
}

// Theme returns the printer's styles
func (p *Printer) Theme() Theme {
	return p.theme
}

// SetQuiet suppresses everything but errors
func (p *Printer) SetQuiet(quiet bool) {
	p.quiet = quiet
}

// Error prints an error message. Errors are shown even in quiet mode.
func (p *Printer) Error(msg string, args ...interface{}) {
	if len(args) > 0 {
		msg = msg + ": " + fmt.Sprintf("%v", args[0])
	}
	fmt.Fprintln(p.out, p.theme.Error.Render(msg))
}

// Warning prints a warning message
func (p *Printer) Warning(msg string, args ...interface{}) {
	if p.quiet {
		return
	}
	if len(args) > 0 {
		msg = msg + ": " + fmt.Sprintf("%v", args[0])
	}
	fmt.Fprintln(p.out, p.theme.Warning.Render(msg))
}

// Success prints a success message
func (p *Printer) Success(msg string) {
	if p.quiet {
		return
	}
	fmt.Fprintln(p.out, p.theme.Success.Render(msg))
}

// Info prints a label and its value
func (p *Printer) Info(label, value string) {
	if p.quiet {
		return
	}
	fmt.Fprintf(p.out, "%s: %s\n", p.theme.Label.Render(label), p.theme.Value.Render(value))
}

// Highlight prints a highlighted message
func (p *Printer) Highlight(msg string) {
	if p.quiet {
		return
	}
	fmt.Fprintln(p.out, p.theme.Highlight.Render(msg))
}

// Print writes already rendered text unchanged
func (p *Printer) Print(text string) {
	if p.quiet {
		return
	}
	fmt.Fprint(p.out, text)
}

var std = NewPrinter(os.Stdout, ColorSupported(os.Stdout))

// Configure replaces the default printer used by the package functions
func Configure(w io.Writer, color bool) *Printer {
	quiet := std.quiet
	std = NewPrinter(w, color)
	std.quiet = quiet
	return std
}

// SetQuietMode suppresses everything but errors on the default printer
func SetQuietMode(quiet bool) {
	std.SetQuiet(quiet)
}

// PrintError prints an error message in red
func PrintError(msg string, args ...interface{}) {
	std.Error(msg, args...)
}

// PrintWarning prints a warning message in yellow
func PrintWarning(msg string, args ...interface{}) {
	std.Warning(msg, args...)
}

// PrintSuccess prints a success message in green
func PrintSuccess(msg string) {
	std.Success(msg)
}

// PrintInfo prints an info message in cyan
func PrintInfo(label string, value string) {
	std.Info(label, value)
}

// PrintHighlight prints a highlighted message in magenta
func PrintHighlight(msg string) {
	std.Highlight(msg)
}

// Print writes already rendered text with the default printer
func Print(text string) {
	std.Print(text)
}
