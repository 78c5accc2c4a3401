// Package style provides shared UI styling primitives including colors and
// icons for consistent visual presentation across the CLI.
package style

import "github.com/charmbracelet/lipgloss"

// Colors.
var (
	Slate  = lipgloss.Color("#667085")
	Green  = lipgloss.Color("#22A06B")
	Red    = lipgloss.Color("#D93025")
	Yellow = lipgloss.Color("#F59E0B")
	Blue   = lipgloss.Color("#2563EB")
)

// Icons.
const (
	Check   = "✓"
	Cross   = "✗"
	Warning = "!"
	Arrow   = "→"
)

// Command is the style used when echoing a command line before running it.
var Command = lipgloss.NewStyle().Foreground(Blue)
