package ui

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"eventperf/internal/fetch"
	"eventperf/internal/ui/textutil"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	rosterLoadError = "Failed to load roll numbers"
	rosterEmpty     = "No students found. Add students in the backend to see them here."

	rollCellWidth = 12 // minimum; cells grow to fit the widest roll number
	defaultWidth  = 80
)

// RosterView lists the roll numbers for one Selection as a navigable grid.
type RosterView struct {
	backend   Backend
	keys      KeyMap
	tracker   fetch.Tracker
	selection Selection

	rolls   []string
	cursor  int
	chosen  string
	loading bool
	err     string

	spinner spinner.Model
	focused bool
	width   int
}

// Ensure RosterView implements View.
var _ View = (*RosterView)(nil)

// NewRosterView creates a roster for sel. Nothing is fetched until Init.
func NewRosterView(b Backend, keys KeyMap, sel Selection) *RosterView {
	return &RosterView{
		backend:   b,
		keys:      keys,
		selection: sel,
		spinner:   newSpinner(),
		focused:   true,
	}
}

func newSpinner() spinner.Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccent))
	return s
}

// Selection returns the year and branch the roster is showing.
func (r *RosterView) Selection() Selection { return r.selection }

// Rolls returns the displayed roll numbers.
func (r *RosterView) Rolls() []string { return r.rolls }

// Loading reports whether a fetch is outstanding.
func (r *RosterView) Loading() bool { return r.loading }

// Err returns the user-visible error, or "".
func (r *RosterView) Err() string { return r.err }

// SetFocused controls whether navigation keys apply and how the box is drawn.
func (r *RosterView) SetFocused(focused bool) { r.focused = focused }

// SetWidth sets the available terminal width.
func (r *RosterView) SetWidth(w int) { r.width = w }

// Init implements View. It issues the first roster fetch.
func (r *RosterView) Init() tea.Cmd {
	return r.fetch()
}

// SetSelection switches to sel and refetches when either field changed.
func (r *RosterView) SetSelection(sel Selection) tea.Cmd {
	if sel == r.selection {
		return nil
	}
	r.selection = sel
	return r.fetch()
}

// fetch supersedes any outstanding request and starts a new one.
func (r *RosterView) fetch() tea.Cmd {
	ctx, token := r.tracker.Begin(context.Background())
	r.loading = true
	r.err = ""
	slog.Debug("roster fetch", "year", r.selection.AcademicYear, "branch", r.selection.Branch)
	return tea.Batch(
		loadRollNumbersCmd(ctx, r.backend, token, r.selection),
		r.spinner.Tick,
	)
}

// Update implements View.
func (r *RosterView) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case rollNumbersLoadedMsg:
		if !r.tracker.Current(msg.Token) {
			return r, nil
		}
		r.tracker.Done(msg.Token)
		r.loading = false
		if msg.Err != nil {
			slog.Warn("roster fetch failed", "year", msg.Selection.AcademicYear, "branch", msg.Selection.Branch, "err", msg.Err)
			r.rolls = nil
			r.err = rosterLoadError
		} else {
			r.rolls = msg.Rolls
		}
		if r.cursor >= len(r.rolls) {
			r.cursor = 0
		}
		return r, nil
	case spinner.TickMsg:
		if !r.loading {
			return r, nil
		}
		var cmd tea.Cmd
		r.spinner, cmd = r.spinner.Update(msg)
		return r, cmd
	case tea.WindowSizeMsg:
		r.width = msg.Width
		return r, nil
	case tea.KeyMsg:
		if r.focused {
			return r, r.handleKey(msg)
		}
	}
	return r, nil
}

func (r *RosterView) handleKey(msg tea.KeyMsg) tea.Cmd {
	n := len(r.rolls)
	if n == 0 {
		return nil
	}
	cols := r.columns()
	switch {
	case key.Matches(msg, r.keys.Confirm):
		roll := r.rolls[r.cursor]
		r.chosen = roll
		return func() tea.Msg { return RollSelectedMsg{Roll: roll} }
	case key.Matches(msg, r.keys.Left):
		r.moveCursor(-1)
	case key.Matches(msg, r.keys.Right):
		r.moveCursor(1)
	case key.Matches(msg, r.keys.Up):
		r.moveCursor(-cols)
	case key.Matches(msg, r.keys.Down):
		r.moveCursor(cols)
	case key.Matches(msg, r.keys.Top):
		r.cursor = 0
	case key.Matches(msg, r.keys.Bottom):
		r.cursor = n - 1
	}
	return nil
}

// moveCursor moves by delta cells, staying put when the target is off the grid.
func (r *RosterView) moveCursor(delta int) {
	next := r.cursor + delta
	if next < 0 || next >= len(r.rolls) {
		return
	}
	r.cursor = next
}

// Cursor returns the index of the highlighted roll number.
func (r *RosterView) Cursor() int { return r.cursor }

// innerWidth is the space inside the box at the current terminal width.
func (r *RosterView) innerWidth() int {
	w := r.width
	if w <= 0 {
		w = defaultWidth
	}
	// Box border and padding take 6 columns.
	return max(w-6, 1)
}

// cellWidth fits the widest roll number, capped at the box's inner width.
func (r *RosterView) cellWidth() int {
	w := rollCellWidth
	for _, roll := range r.rolls {
		w = max(w, textutil.Width(roll))
	}
	return min(w, r.innerWidth())
}

// columns is the number of roll cells per grid row at the current width.
// Cells are separated by one space.
func (r *RosterView) columns() int {
	return max((r.innerWidth()+1)/(r.cellWidth()+1), 1)
}

// View implements View.
func (r *RosterView) View() string {
	var b strings.Builder
	title := Styles.Title.Render(fmt.Sprintf("Roll Numbers - %s (%s)", r.selection.Branch, r.selection.AcademicYear))
	if r.loading {
		title += "  " + r.spinner.View() + Styles.Muted.Render(" Loading...")
	}
	b.WriteString(title + "\n")

	if r.err != "" {
		b.WriteString(Styles.Error.Render(r.err) + "\n")
	}

	if len(r.rolls) > 0 {
		b.WriteString("\n")
		cols, cw := r.columns(), r.cellWidth()
		for start := 0; start < len(r.rolls); start += cols {
			end := min(start+cols, len(r.rolls))
			cells := make([]string, 0, end-start)
			for i := start; i < end; i++ {
				cells = append(cells, r.renderCell(i, cw))
			}
			b.WriteString(strings.Join(cells, " ") + "\n")
		}
	} else if !r.loading {
		b.WriteString("\n" + Styles.Empty.Render(rosterEmpty) + "\n")
	}

	return boxFor(r.focused).Render(strings.TrimSuffix(b.String(), "\n"))
}

func (r *RosterView) renderCell(i, width int) string {
	roll := r.rolls[i]
	cell := textutil.PadRight(roll, width)
	switch {
	case i == r.cursor && r.focused:
		return Styles.CellCursor.Render(cell)
	case roll == r.chosen:
		return Styles.CellChosen.Render(cell)
	default:
		return Styles.Cell.Render(cell)
	}
}
