package ui

import "github.com/charmbracelet/lipgloss"

// Theme colors used throughout the UI
const (
	ColorAccent    = "86"  // Cyan/green - for titles, highlights
	ColorHighlight = "205" // Magenta - for the cursor row and focused panels
	ColorDanger    = "196" // Red - balances the user owes
	ColorSuccess   = "42"  // Green - balances owed to the user
	ColorMuted     = "241" // Gray - for dimmed text, hints
	ColorText      = "252" // Light gray - for normal text
)

// Styles contains shared style definitions used across views.
var Styles = struct {
	Title lipgloss.Style

	// Panel boxes; focused panels get the highlight border.
	Box        lipgloss.Style
	BoxFocused lipgloss.Style

	Cursor   lipgloss.Style // Row under the cursor
	Selected lipgloss.Style // Friend with an open split form
	Normal   lipgloss.Style
	Muted    lipgloss.Style
	Hint     lipgloss.Style
	Empty    lipgloss.Style

	Owe     lipgloss.Style // Balance < 0
	Owed    lipgloss.Style // Balance > 0
	Settled lipgloss.Style // Balance == 0

	Label    lipgloss.Style // Form field labels
	Button   lipgloss.Style
	Disabled lipgloss.Style // Read-only form fields
}{
	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccent)),
	Box: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorMuted)).
		Padding(0, 1),
	BoxFocused: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorHighlight)).
		Padding(0, 1),
	Cursor: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight)).
		Bold(true),
	Selected: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccent)).
		Bold(true),
	Normal: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorText)),
	Muted: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Hint: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Empty: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)).
		Italic(true),
	Owe: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorDanger)),
	Owed: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorSuccess)),
	Settled: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorText)),
	Label: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccent)),
	Button: lipgloss.NewStyle().
		Foreground(lipgloss.Color("0")).
		Background(lipgloss.Color(ColorAccent)).
		Padding(0, 1),
	Disabled: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)).
		Italic(true),
}

// panelBox returns the box style for a panel given its focus state.
func panelBox(focused bool) lipgloss.Style {
	if focused {
		return Styles.BoxFocused
	}
	return Styles.Box
}
