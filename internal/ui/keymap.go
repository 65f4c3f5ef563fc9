package ui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

// KeyMap holds every binding the views react to.
// Character keys (h/j/k/l, q) are never consulted while the year input has focus.
type KeyMap struct {
	ForceQuit key.Binding
	Quit      key.Binding
	Confirm   key.Binding

	// Selector
	NextField  key.Binding
	PrevField  key.Binding
	BranchPrev key.Binding
	BranchNext key.Binding

	// Roster grid and ledger scrolling
	Up     key.Binding
	Down   key.Binding
	Left   key.Binding
	Right  key.Binding
	Top    key.Binding
	Bottom key.Binding

	// Panel focus once a student is shown
	FocusNext key.Binding
	FocusPrev key.Binding
}

// DefaultKeyMap is the binding set used by NewAppModel.
var DefaultKeyMap = KeyMap{
	ForceQuit: key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	Confirm:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select")),

	NextField:  key.NewBinding(key.WithKeys("tab", "down"), key.WithHelp("tab", "next field")),
	PrevField:  key.NewBinding(key.WithKeys("shift+tab", "up"), key.WithHelp("shift+tab", "prev field")),
	BranchPrev: key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←", "prev branch")),
	BranchNext: key.NewBinding(key.WithKeys("right", "l", " "), key.WithHelp("→", "next branch")),

	Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	Left:   key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "left")),
	Right:  key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "right")),
	Top:    key.NewBinding(key.WithKeys("home", "g"), key.WithHelp("g", "first")),
	Bottom: key.NewBinding(key.WithKeys("end", "G"), key.WithHelp("G", "last")),

	FocusNext: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "switch panel")),
	FocusPrev: key.NewBinding(key.WithKeys("shift+tab")),
}

// stageKeyMap implements help.KeyMap, showing only the bindings that do
// something in the current stage.
type stageKeyMap struct {
	keys  KeyMap
	stage Stage
}

var _ help.KeyMap = stageKeyMap{}

// ShortHelp implements help.KeyMap.
func (m stageKeyMap) ShortHelp() []key.Binding {
	k := m.keys
	switch m.stage {
	case StageSelect:
		return []key.Binding{k.NextField, k.BranchPrev, k.BranchNext, k.Confirm, k.ForceQuit}
	case StageBrowse:
		return []key.Binding{k.Up, k.Down, k.Left, k.Right, k.Confirm, k.Quit}
	default:
		return []key.Binding{k.Up, k.Down, k.Left, k.Right, k.Confirm, k.FocusNext, k.Quit}
	}
}

// FullHelp implements help.KeyMap with a single column.
func (m stageKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{m.ShortHelp()}
}

// newHelpModel returns a help model styled like the rest of the UI.
func newHelpModel() help.Model {
	h := help.New()
	h.Styles.ShortKey = lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight)).
		Bold(true)
	h.Styles.ShortDesc = lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted))
	h.Styles.ShortSeparator = lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted))
	return h
}
