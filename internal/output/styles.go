package output

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// Styles holds the lipgloss styles for output formatting.
type Styles struct {
	Filename lipgloss.Style
	LineNum  lipgloss.Style
	Match    lipgloss.Style
}

// NewStyles creates the default color styles.
func NewStyles() Styles {
	return Styles{
		Filename: lipgloss.NewStyle().Foreground(lipgloss.Color("5")),            // magenta
		LineNum:  lipgloss.NewStyle().Foreground(lipgloss.Color("2")),            // green
		Match:    lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true), // bold red
	}
}

// NoStyles returns styles with no coloring. Rendering with these styles
// leaves the text unchanged, which is how highlighting degrades when
// stdout is not a terminal.
func NoStyles() Styles {
	return Styles{
		Filename: lipgloss.NewStyle(),
		LineNum:  lipgloss.NewStyle(),
		Match:    lipgloss.NewStyle(),
	}
}

// StdoutIsTerminal returns true if stdout is a terminal.
func StdoutIsTerminal() bool {
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
