// Package style holds the colors and icons shared by the logger and the CLI.
package style

import "github.com/charmbracelet/lipgloss"

// Colors.
var (
	Iris   = lipgloss.Color("#8B5CF6")
	Slate  = lipgloss.Color("#667085")
	Green  = lipgloss.Color("#22A06B")
	Red    = lipgloss.Color("#D93025")
	Yellow = lipgloss.Color("#F59E0B")
)

// Icons.
const (
	Check   = "✓"
	Cross   = "✗"
	Warning = "!"
	Arrow   = "→"
)

// Header renders table headers.
var Header = lipgloss.NewStyle().Bold(true).Foreground(Iris).Padding(0, 1)

// Cell renders table cells.
var Cell = lipgloss.NewStyle().Padding(0, 1)

// Muted renders secondary cells.
var Muted = Cell.Foreground(Slate)
