package ui

import "eventperf/internal/api"

// SelectionMsg is sent when the user confirms the selector.
type SelectionMsg struct {
	Selection Selection
}

// RollSelectedMsg is sent when the user picks a roll number in the roster.
type RollSelectedMsg struct {
	Roll string
}

// rollNumbersLoadedMsg carries the roster fetch result for one request generation.
type rollNumbersLoadedMsg struct {
	Token     string
	Selection Selection
	Rolls     []string
	Err       error
}

// studentLoadedMsg carries the profile fetch result for one request generation.
type studentLoadedMsg struct {
	Token   string
	Roll    string
	Student *api.Student
	Err     error
}

// eventStatsLoadedMsg carries the event summary fetch result for one request generation.
type eventStatsLoadedMsg struct {
	Token string
	Roll  string
	Rows  []api.EventStatRow
	Err   error
}
