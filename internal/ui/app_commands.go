package ui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
)

// loadRollNumbersCmd fetches the roster for sel. The result is tagged with token
// so the roster can drop it if the selection has moved on.
func loadRollNumbersCmd(ctx context.Context, b Backend, token string, sel Selection) tea.Cmd {
	return func() tea.Msg {
		rolls, err := b.RollNumbers(ctx, sel.AcademicYear, string(sel.Branch))
		return rollNumbersLoadedMsg{Token: token, Selection: sel, Rolls: rolls, Err: err}
	}
}

// loadStudentCmd fetches the profile for roll.
func loadStudentCmd(ctx context.Context, b Backend, token, roll string) tea.Cmd {
	return func() tea.Msg {
		s, err := b.Student(ctx, roll)
		return studentLoadedMsg{Token: token, Roll: roll, Student: s, Err: err}
	}
}

// loadEventStatsCmd fetches the event summary for roll, qualified by year when set.
func loadEventStatsCmd(ctx context.Context, b Backend, token, roll, year string) tea.Cmd {
	return func() tea.Msg {
		rows, err := b.EventStats(ctx, roll, year)
		return eventStatsLoadedMsg{Token: token, Roll: roll, Rows: rows, Err: err}
	}
}
