package ui

import (
	"context"
	"log/slog"

	"eventperf/internal/api"
	"eventperf/internal/fetch"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Backend is the read-only data source the views fetch from.
// *api.Client implements it.
type Backend interface {
	RollNumbers(ctx context.Context, academicYear, branch string) ([]string, error)
	Student(ctx context.Context, rollNumber string) (*api.Student, error)
	EventStats(ctx context.Context, rollNumber, academicYear string) ([]api.EventStatRow, error)
}

var _ Backend = (*api.Client)(nil)

// AppModel is the root controller. It holds the selection, the chosen roll
// number and that student's profile, and decides which views are shown.
type AppModel struct {
	Stage   Stage
	Backend Backend
	Keys    KeyMap

	Selection    *Selection
	SelectedRoll string
	Student      *api.Student

	Selector *SelectorView
	Roster   *RosterView
	Summary  *StudentSummaryView
	Ledger   *EventLedgerView
	Focus    *FocusManager

	studentFetch fetch.Tracker
	help         help.Model
	width        int
	height       int
}

// Ensure AppModel can be used as tea.Model via adapter.
var _ tea.Model = (*appModelAdapter)(nil)

// appModelAdapter wraps AppModel to implement tea.Model.
type appModelAdapter struct {
	*AppModel
}

// NewAppModel creates the root model in the selection stage.
func NewAppModel(b Backend) *AppModel {
	a := &AppModel{
		Stage:    StageSelect,
		Backend:  b,
		Keys:     DefaultKeyMap,
		Selector: NewSelectorView(DefaultKeyMap),
		Summary:  NewStudentSummaryView(),
		Focus:    &FocusManager{Order: []string{panelRoster}},
		help:     newHelpModel(),
	}
	a.Focus.OnChange = func(_, _ string) { a.applyFocus() }
	return a
}

// AsTeaModel returns a tea.Model adapter for use with tea.NewProgram.
func (a *AppModel) AsTeaModel() tea.Model {
	return &appModelAdapter{AppModel: a}
}

// Init implements tea.Model.
func (a *appModelAdapter) Init() tea.Cmd {
	return a.Selector.Init()
}

// Update implements tea.Model.
func (a *appModelAdapter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
		a.help.Width = msg.Width
		return a, a.broadcast(msg)
	case SelectionMsg:
		return a, a.applySelection(msg.Selection)
	case RollSelectedMsg:
		return a, a.chooseRoll(msg.Roll)
	case studentLoadedMsg:
		a.applyStudent(msg)
		return a, nil
	case tea.KeyMsg:
		return a, a.handleKey(msg)
	}
	return a, a.broadcast(msg)
}

// broadcast forwards non-key messages (fetch results, spinner ticks, resizes)
// to every live view. Each view ignores what isn't addressed to it.
func (a *AppModel) broadcast(msg tea.Msg) tea.Cmd {
	var cmds []tea.Cmd
	for _, v := range a.liveViews() {
		_, cmd := v.Update(msg)
		cmds = append(cmds, cmd)
	}
	return tea.Batch(cmds...)
}

func (a *AppModel) liveViews() []View {
	if a.Stage == StageSelect {
		return []View{a.Selector}
	}
	views := []View{a.Roster}
	if a.Ledger != nil {
		views = append(views, a.Ledger)
	}
	return views
}

func (a *AppModel) handleKey(msg tea.KeyMsg) tea.Cmd {
	if key.Matches(msg, a.Keys.ForceQuit) {
		return tea.Quit
	}
	// The selector owns a text field, so every other key is input there.
	if a.Stage == StageSelect {
		_, cmd := a.Selector.Update(msg)
		return cmd
	}
	if key.Matches(msg, a.Keys.Quit) {
		return tea.Quit
	}
	if a.Stage == StageStudent {
		switch {
		case key.Matches(msg, a.Keys.FocusNext):
			a.Focus.Next()
			return nil
		case key.Matches(msg, a.Keys.FocusPrev):
			a.Focus.Prev()
			return nil
		}
	}

	var cmd tea.Cmd
	switch a.Focus.Current {
	case panelLedger:
		_, cmd = a.Ledger.Update(msg)
	default:
		_, cmd = a.Roster.Update(msg)
	}
	return cmd
}

// applySelection stores sel and shows the roster for it.
func (a *AppModel) applySelection(sel Selection) tea.Cmd {
	a.Selection = &sel
	if a.Stage == StageSelect {
		a.Stage = StageBrowse
	}
	slog.Info("selection confirmed", "year", sel.AcademicYear, "branch", sel.Branch)

	if a.Roster == nil {
		a.Roster = NewRosterView(a.Backend, a.Keys, sel)
		a.Roster.SetWidth(a.width)
		a.Focus.SetFocus(panelRoster)
		a.applyFocus()
		return a.Roster.Init()
	}
	cmds := []tea.Cmd{a.Roster.SetSelection(sel)}
	if a.Ledger != nil {
		cmds = append(cmds, a.Ledger.SetInputs(a.SelectedRoll, sel.AcademicYear))
	}
	return tea.Batch(cmds...)
}

// chooseRoll records a new roll number and fetches its profile and event
// stats. Choosing the roll already shown changes nothing.
func (a *AppModel) chooseRoll(roll string) tea.Cmd {
	if a.Selection == nil || roll == "" || roll == a.SelectedRoll {
		return nil
	}
	a.SelectedRoll = roll
	a.Stage = StageStudent
	a.Student = nil
	a.Summary.Student = nil
	slog.Info("roll selected", "roll", roll)

	ctx, token := a.studentFetch.Begin(context.Background())
	cmds := []tea.Cmd{loadStudentCmd(ctx, a.Backend, token, roll)}

	year := a.Selection.AcademicYear
	if a.Ledger == nil {
		a.Ledger = NewEventLedgerView(a.Backend, a.Keys, roll, year)
		if a.height > 0 {
			a.Ledger.Update(tea.WindowSizeMsg{Width: a.width, Height: a.height})
		}
		a.Focus.Order = []string{panelRoster, panelLedger}
		a.applyFocus()
		cmds = append(cmds, a.Ledger.Init())
	} else {
		cmds = append(cmds, a.Ledger.SetInputs(roll, year))
	}
	return tea.Batch(cmds...)
}

// applyStudent stores the profile result. Failures clear the student without
// any message.
func (a *AppModel) applyStudent(msg studentLoadedMsg) {
	if !a.studentFetch.Current(msg.Token) {
		return
	}
	a.studentFetch.Done(msg.Token)
	if msg.Err != nil {
		slog.Debug("student fetch failed", "roll", msg.Roll, "err", msg.Err)
		a.Student = nil
	} else {
		a.Student = msg.Student
	}
	a.Summary.Student = a.Student
}

// applyFocus pushes the focus manager's state into the views.
func (a *AppModel) applyFocus() {
	if a.Roster != nil {
		a.Roster.SetFocused(a.Focus.Current == panelRoster)
	}
	if a.Ledger != nil {
		a.Ledger.SetFocused(a.Focus.Current == panelLedger)
	}
}

// View implements tea.Model.
func (a *appModelAdapter) View() string {
	var parts []string
	if a.Stage == StageSelect || a.Roster == nil {
		parts = append(parts, a.Selector.View())
	} else {
		parts = append(parts, a.Roster.View())
		if a.SelectedRoll != "" {
			parts = append(parts, a.Summary.View())
			if a.Ledger != nil {
				parts = append(parts, a.Ledger.View())
			}
		}
	}
	parts = append(parts, "", a.help.View(stageKeyMap{keys: a.Keys, stage: a.Stage}))
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}
