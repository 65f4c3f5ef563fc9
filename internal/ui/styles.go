package ui

import "github.com/charmbracelet/lipgloss"

// Theme colors used throughout the UI
const (
	ColorAccent    = "86"  // Cyan/green - for titles, highlights
	ColorHighlight = "205" // Magenta - for selected items, focused borders
	ColorDanger    = "196" // Red - for errors
	ColorMuted     = "241" // Gray - for dimmed text, hints
	ColorText      = "252" // Light gray - for normal text
	ColorBorder    = "238" // Dark gray - for unfocused borders
	ColorPositive  = "36"  // Emerald - attended counts
	ColorNegative  = "204" // Rose - missed counts
)

// Styles contains shared style definitions used across views.
var Styles = struct {
	// Title styles
	Title    lipgloss.Style // Bold accent color - for section titles
	Subtitle lipgloss.Style // Muted - for explanatory lines under titles

	// Box styles
	Box        lipgloss.Style // Focused section box (highlight border)
	BoxBlurred lipgloss.Style // Unfocused section box

	// Text styles
	Selected lipgloss.Style // Highlighted/selected items (bold highlight color)
	Muted    lipgloss.Style // Dimmed text (muted color)
	Normal   lipgloss.Style // Normal text (text color)
	Hint     lipgloss.Style // Help/hint text (muted color)
	Label    lipgloss.Style // Field labels
	Value    lipgloss.Style // Field values
	Error    lipgloss.Style // Fetch failure messages
	Empty    lipgloss.Style // Empty state text (muted, italic)

	// Table styles
	TableHeader lipgloss.Style
	Positive    lipgloss.Style // Attended counts
	Negative    lipgloss.Style // Missed counts

	// Roster grid cells
	Cell       lipgloss.Style
	CellCursor lipgloss.Style
	CellChosen lipgloss.Style
}{
	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccent)),
	Subtitle: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Box: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorHighlight)).
		Padding(0, 2).
		MarginTop(1),
	BoxBlurred: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorBorder)).
		Padding(0, 2).
		MarginTop(1),
	Selected: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight)).
		Bold(true),
	Muted: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Normal: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorText)),
	Hint: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Label: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Value: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorText)).
		Bold(true),
	Error: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorDanger)),
	Empty: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)).
		Italic(true),
	TableHeader: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)).
		Bold(true),
	Positive: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorPositive)),
	Negative: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorNegative)),
	Cell: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorText)),
	CellCursor: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight)).
		Reverse(true),
	CellChosen: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccent)).
		Bold(true),
}

// boxFor returns the section box for the given focus state.
func boxFor(focused bool) lipgloss.Style {
	if focused {
		return Styles.Box
	}
	return Styles.BoxBlurred
}
