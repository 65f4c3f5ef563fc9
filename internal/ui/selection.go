package ui

// Branch is an academic department.
type Branch string

const (
	BranchAIML Branch = "AI & ML"
	BranchCSE  Branch = "CSE"
	BranchECE  Branch = "ECE"
	BranchEEE  Branch = "EEE"
	BranchMECH Branch = "MECH"
)

// Branches lists the selectable branches in display order. The first is the default.
var Branches = []Branch{BranchAIML, BranchCSE, BranchECE, BranchEEE, BranchMECH}

// DefaultAcademicYear pre-fills the selector.
const DefaultAcademicYear = "2024-25"

// Selection is the confirmed year and branch. It is a value; a new
// confirmation replaces it wholesale.
type Selection struct {
	AcademicYear string
	Branch       Branch
}
