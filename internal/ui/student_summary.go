package ui

import (
	"strconv"
	"strings"

	"eventperf/internal/api"

	tea "github.com/charmbracelet/bubbletea"
)

// missingName is shown when there is no student or the name is blank.
const missingName = "-"

// StudentSummaryView renders a student's profile. It never fetches;
// AppModel sets Student. A nil Student renders placeholders.
type StudentSummaryView struct {
	Student *api.Student
}

// Ensure StudentSummaryView implements View.
var _ View = (*StudentSummaryView)(nil)

// NewStudentSummaryView creates an empty summary.
func NewStudentSummaryView() *StudentSummaryView {
	return &StudentSummaryView{}
}

// Init implements View.
func (v *StudentSummaryView) Init() tea.Cmd { return nil }

// Update implements View.
func (v *StudentSummaryView) Update(tea.Msg) (View, tea.Cmd) { return v, nil }

// View implements View.
func (v *StudentSummaryView) View() string {
	name, roll, branch, semester := missingName, "", "", ""
	if s := v.Student; s != nil {
		if s.Name != "" {
			name = s.Name
		}
		roll = s.RollNumber
		branch = s.Branch
		if s.CurrentSemester != nil {
			semester = strconv.Itoa(*s.CurrentSemester)
		}
	}

	fields := []string{
		field("Name", name),
		field("Roll Number", roll),
		field("Branch", branch),
		field("Current Semester", semester),
	}
	body := Styles.Title.Render("Student Details") + "\n" + strings.Join(fields, "   ")
	return Styles.BoxBlurred.Render(body)
}

func field(label, value string) string {
	return Styles.Label.Render(label+":") + " " + Styles.Value.Render(value)
}
