package ui

import "github.com/charmbracelet/lipgloss"

// Theme colors used throughout the UI
const (
	ColorAccent    = "86"  // Cyan/green - for titles, correct letters
	ColorHighlight = "205" // Magenta - for the focused button
	ColorDanger    = "196" // Red - for errors, incorrect letters
	ColorMuted     = "241" // Gray - for disabled buttons, hints
	ColorText      = "252" // Light gray - for normal text
	ColorWarning   = "208" // Orange - for backend error messages
)

// Styles contains shared style definitions.
var Styles = struct {
	Title lipgloss.Style

	Button         lipgloss.Style
	ButtonFocused  lipgloss.Style
	ButtonDisabled lipgloss.Style

	Label    lipgloss.Style
	Spelling lipgloss.Style
	Box      lipgloss.Style
	Warning  lipgloss.Style
	Empty    lipgloss.Style
	Hint     lipgloss.Style

	Correct   lipgloss.Style
	Incorrect lipgloss.Style
}{
	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccent)),
	Button: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorText)).
		Foreground(lipgloss.Color(ColorText)).
		Padding(0, 2).
		MarginRight(1),
	ButtonFocused: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorHighlight)).
		Foreground(lipgloss.Color(ColorHighlight)).
		Bold(true).
		Padding(0, 2).
		MarginRight(1),
	ButtonDisabled: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorMuted)).
		Foreground(lipgloss.Color(ColorMuted)).
		Padding(0, 2).
		MarginRight(1),
	Label: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorText)),
	Spelling: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccent)),
	Box: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorHighlight)).
		Padding(0, 1),
	Warning: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorWarning)),
	Empty: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)).
		Italic(true),
	Hint: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Correct: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccent)),
	Incorrect: lipgloss.NewStyle().
		Bold(true).
		Underline(true).
		Foreground(lipgloss.Color(ColorDanger)),
}
