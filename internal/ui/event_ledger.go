package ui

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"eventperf/internal/api"
	"eventperf/internal/fetch"
	"eventperf/internal/ui/textutil"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	ledgerTitle     = "Event Details of the Student"
	ledgerLoadError = "Failed to load event stats"
	ledgerEmpty     = "No participation records available."

	defaultLedgerRows = 10
	minLedgerRows     = 3
)

type ledgerColumn struct {
	title string
	width int
}

var ledgerColumns = []ledgerColumn{
	{"Event Name", 28},
	{"Held Events", 12},
	{"Attended Events", 16},
	{"Missed", 8},
}

// EventLedgerView shows one student's per-event attendance.
// With an empty roll number it renders only its frame and fetches nothing.
type EventLedgerView struct {
	backend Backend
	keys    KeyMap
	tracker fetch.Tracker

	roll string
	year string

	rows    []api.EventStatRow
	loading bool
	err     string
	offset  int
	visible int

	spinner spinner.Model
	focused bool
}

// Ensure EventLedgerView implements View.
var _ View = (*EventLedgerView)(nil)

// NewEventLedgerView creates a ledger for roll, qualified by year when non-empty.
func NewEventLedgerView(b Backend, keys KeyMap, roll, year string) *EventLedgerView {
	return &EventLedgerView{
		backend: b,
		keys:    keys,
		roll:    roll,
		year:    year,
		visible: defaultLedgerRows,
		spinner: newSpinner(),
	}
}

// Rows returns the displayed rows.
func (e *EventLedgerView) Rows() []api.EventStatRow { return e.rows }

// Loading reports whether a fetch is outstanding.
func (e *EventLedgerView) Loading() bool { return e.loading }

// Err returns the user-visible error, or "".
func (e *EventLedgerView) Err() string { return e.err }

// SetFocused controls whether scroll keys apply and how the box is drawn.
func (e *EventLedgerView) SetFocused(focused bool) { e.focused = focused }

// Init implements View.
func (e *EventLedgerView) Init() tea.Cmd {
	return e.fetch()
}

// SetInputs refetches when the roll number or year changed.
func (e *EventLedgerView) SetInputs(roll, year string) tea.Cmd {
	if roll == e.roll && year == e.year {
		return nil
	}
	e.roll, e.year = roll, year
	return e.fetch()
}

func (e *EventLedgerView) fetch() tea.Cmd {
	if e.roll == "" {
		e.tracker.Cancel()
		e.loading = false
		e.err = ""
		e.rows = nil
		return nil
	}
	ctx, token := e.tracker.Begin(context.Background())
	e.loading = true
	e.err = ""
	e.offset = 0
	slog.Debug("event stats fetch", "roll", e.roll, "year", e.year)
	return tea.Batch(
		loadEventStatsCmd(ctx, e.backend, token, e.roll, e.year),
		e.spinner.Tick,
	)
}

// Update implements View.
func (e *EventLedgerView) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case eventStatsLoadedMsg:
		if !e.tracker.Current(msg.Token) {
			return e, nil
		}
		e.tracker.Done(msg.Token)
		e.loading = false
		if msg.Err != nil {
			slog.Warn("event stats fetch failed", "roll", msg.Roll, "err", msg.Err)
			e.rows = nil
			e.err = ledgerLoadError
		} else {
			e.rows = msg.Rows
		}
		e.offset = 0
		return e, nil
	case spinner.TickMsg:
		if !e.loading {
			return e, nil
		}
		var cmd tea.Cmd
		e.spinner, cmd = e.spinner.Update(msg)
		return e, cmd
	case tea.WindowSizeMsg:
		// Leave room for the roster, summary and footer above and below.
		e.visible = max(msg.Height-22, minLedgerRows)
		e.clampOffset()
		return e, nil
	case tea.KeyMsg:
		if !e.focused {
			return e, nil
		}
		switch {
		case key.Matches(msg, e.keys.Down):
			e.offset++
		case key.Matches(msg, e.keys.Up):
			e.offset--
		case key.Matches(msg, e.keys.Top):
			e.offset = 0
		case key.Matches(msg, e.keys.Bottom):
			e.offset = len(e.rows)
		}
		e.clampOffset()
	}
	return e, nil
}

func (e *EventLedgerView) clampOffset() {
	maxOffset := max(len(e.rows)-e.visible, 0)
	e.offset = min(max(e.offset, 0), maxOffset)
}

// View implements View.
func (e *EventLedgerView) View() string {
	var b strings.Builder
	title := Styles.Title.Render(ledgerTitle)
	if e.loading {
		title += "  " + e.spinner.View() + Styles.Muted.Render(" Loading...")
	}
	b.WriteString(title + "\n")
	if e.err != "" {
		b.WriteString(Styles.Error.Render(e.err) + "\n")
	}
	b.WriteString("\n")

	headers := make([]string, len(ledgerColumns))
	for i, c := range ledgerColumns {
		headers[i] = textutil.PadRight(c.title, c.width)
	}
	b.WriteString(Styles.TableHeader.Render(strings.Join(headers, " ")) + "\n")

	end := min(e.offset+e.visible, len(e.rows))
	for _, row := range e.rows[e.offset:end] {
		b.WriteString(renderLedgerRow(row) + "\n")
	}
	if len(e.rows) == 0 && !e.loading {
		b.WriteString(Styles.Empty.Render(ledgerEmpty) + "\n")
	}
	if len(e.rows) > e.visible {
		b.WriteString(Styles.Hint.Render(fmt.Sprintf("rows %d-%d of %d", e.offset+1, end, len(e.rows))) + "\n")
	}

	return boxFor(e.focused).Render(strings.TrimSuffix(b.String(), "\n"))
}

// renderLedgerRow lays out one row; attended and missed use contrasting styles.
func renderLedgerRow(r api.EventStatRow) string {
	cells := []string{
		Styles.Normal.Bold(true).Render(textutil.PadRight(r.EventName, ledgerColumns[0].width)),
		Styles.Normal.Render(textutil.PadRight(strconv.Itoa(r.Held), ledgerColumns[1].width)),
		Styles.Positive.Render(textutil.PadRight(strconv.Itoa(r.Attended), ledgerColumns[2].width)),
		Styles.Negative.Render(textutil.PadRight(strconv.Itoa(r.Missed), ledgerColumns[3].width)),
	}
	return strings.Join(cells, " ")
}
