package ui

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"eventperf/internal/api"

	tea "github.com/charmbracelet/bubbletea"
)

var errBackend = errors.New("backend unavailable")

func semester(n int) *int { return &n }

// fakeBackend serves canned data and records every call.
type fakeBackend struct {
	mu sync.Mutex

	rolls    map[Selection][]string
	rollsErr error

	students   map[string]*api.Student
	studentErr error

	stats    map[string][]api.EventStatRow
	statsErr error

	calls []string
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{
		rolls:    map[Selection][]string{},
		students: map[string]*api.Student{},
		stats:    map[string][]api.EventStatRow{},
	}
}

func (f *fakeBackend) record(call string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, call)
}

func (f *fakeBackend) Calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls...)
}

func (f *fakeBackend) RollNumbers(ctx context.Context, year, branch string) ([]string, error) {
	f.record(fmt.Sprintf("roll-numbers %s|%s", year, branch))
	if f.rollsErr != nil {
		return nil, f.rollsErr
	}
	return f.rolls[Selection{AcademicYear: year, Branch: Branch(branch)}], nil
}

func (f *fakeBackend) Student(ctx context.Context, roll string) (*api.Student, error) {
	f.record("students " + roll)
	if f.studentErr != nil {
		return nil, f.studentErr
	}
	s, ok := f.students[roll]
	if !ok {
		return nil, errors.New("not found")
	}
	return s, nil
}

func (f *fakeBackend) EventStats(ctx context.Context, roll, year string) ([]api.EventStatRow, error) {
	f.record(fmt.Sprintf("stats %s|%s", roll, year))
	if f.statsErr != nil {
		return nil, f.statsErr
	}
	return f.stats[roll], nil
}

// runCmd executes cmd and any batched children one level deep, returning the
// messages they produce. Commands returned by Update are not executed, so
// spinner ticks do not loop.
func runCmd(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, runCmd(c)...)
		}
		return out
	}
	if msg == nil {
		return nil
	}
	return []tea.Msg{msg}
}

// findMsg returns the first message of type T.
func findMsg[T any](msgs []tea.Msg) (T, bool) {
	for _, m := range msgs {
		if t, ok := m.(T); ok {
			return t, true
		}
	}
	var zero T
	return zero, false
}

// deliver runs cmd and feeds each resulting message back into v.
func deliver(v View, cmd tea.Cmd) []tea.Msg {
	msgs := runCmd(cmd)
	for _, m := range msgs {
		v.Update(m)
	}
	return msgs
}

// keyMsg creates a tea.KeyMsg for testing. Bubble Tea uses KeyType and Runes.
func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "space", " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "backspace":
		return tea.KeyMsg{Type: tea.KeyBackspace}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

// isQuit reports whether cmd produces tea.QuitMsg.
func isQuit(cmd tea.Cmd) bool {
	_, ok := findMsg[tea.QuitMsg](runCmd(cmd))
	return ok
}
