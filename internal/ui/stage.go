package ui

// Stage is the root controller's progress through the browse flow.
// Transitions only move forward.
type Stage int

const (
	StageSelect Stage = iota
	StageBrowse
	StageStudent
)

func (s Stage) String() string {
	switch s {
	case StageSelect:
		return "Select"
	case StageBrowse:
		return "Browse"
	case StageStudent:
		return "Student"
	default:
		return "Unknown"
	}
}
