// Package ui provides terminal output components for the generation run:
// headless-mode detection, a stage progress display, and the styles used
// by the success summary.
package ui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
)

// Theme holds the color palette and styling switches for all UI output.
type Theme struct {
	NoColor   bool
	Primary   string
	Secondary string

	Success lipgloss.Style
	Err     lipgloss.Style
	Faint   lipgloss.Style
}

// NewTheme builds the default theme. Color is disabled when noColor is
// set or the NO_COLOR convention is present in the environment.
func NewTheme(noColor bool) *Theme {
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		noColor = true
	}

	t := &Theme{
		NoColor:   noColor,
		Primary:   "#2f9e44",
		Secondary: "#1971c2",
	}

	if noColor {
		plain := lipgloss.NewStyle()
		t.Success, t.Err, t.Faint = plain, plain, plain
		return t
	}

	t.Success = lipgloss.NewStyle().Foreground(lipgloss.Color(t.Primary)).Bold(true)
	t.Err = lipgloss.NewStyle().Foreground(lipgloss.Color("#e03131")).Bold(true)
	t.Faint = lipgloss.NewStyle().Faint(true)
	return t
}
