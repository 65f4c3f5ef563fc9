package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type selectorField int

const (
	fieldYear selectorField = iota
	fieldBranch
)

const (
	selectorTitle = "Student Event Performance Analyzer"
	selectorHint  = "Select an academic year and branch to view students."
)

// SelectorView captures the academic year and branch.
// The year is free text and is not validated.
type SelectorView struct {
	year   textinput.Model
	branch int // index into Branches
	focus  selectorField
	keys   KeyMap
}

// Ensure SelectorView implements View.
var _ View = (*SelectorView)(nil)

// NewSelectorView creates a selector pre-filled with the default year and branch.
func NewSelectorView(keys KeyMap) *SelectorView {
	ti := textinput.New()
	ti.Placeholder = "e.g., 2024-25"
	ti.Prompt = ""
	ti.Width = 20
	ti.SetValue(DefaultAcademicYear)
	ti.Focus()
	return &SelectorView{year: ti, keys: keys}
}

// Selection returns the current field values.
func (s *SelectorView) Selection() Selection {
	return Selection{AcademicYear: s.year.Value(), Branch: Branches[s.branch]}
}

// Init implements View.
func (s *SelectorView) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements View.
func (s *SelectorView) Update(msg tea.Msg) (View, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, s.keys.Confirm):
			sel := s.Selection()
			return s, func() tea.Msg { return SelectionMsg{Selection: sel} }
		case key.Matches(msg, s.keys.NextField), key.Matches(msg, s.keys.PrevField):
			// Two fields: either direction toggles.
			if s.focus == fieldYear {
				s.setFocus(fieldBranch)
			} else {
				s.setFocus(fieldYear)
			}
			return s, nil
		}
		if s.focus == fieldBranch {
			switch {
			case key.Matches(msg, s.keys.BranchPrev):
				s.cycleBranch(-1)
			case key.Matches(msg, s.keys.BranchNext):
				s.cycleBranch(1)
			}
			return s, nil
		}
	}

	var cmd tea.Cmd
	s.year, cmd = s.year.Update(msg)
	return s, cmd
}

func (s *SelectorView) setFocus(f selectorField) {
	s.focus = f
	if f == fieldYear {
		s.year.Focus()
	} else {
		s.year.Blur()
	}
}

func (s *SelectorView) cycleBranch(delta int) {
	n := len(Branches)
	s.branch = ((s.branch+delta)%n + n) % n
}

// View implements View.
func (s *SelectorView) View() string {
	var b strings.Builder
	b.WriteString(Styles.Title.Render(selectorTitle) + "\n")
	b.WriteString(Styles.Subtitle.Render(selectorHint) + "\n\n")

	b.WriteString(s.label("Academic Year", fieldYear) + "\n")
	b.WriteString("  " + s.year.View() + "\n\n")

	b.WriteString(s.label("Branch", fieldBranch) + "\n")
	opts := make([]string, len(Branches))
	for i, br := range Branches {
		if i == s.branch {
			opts[i] = Styles.Selected.Render("‹ " + string(br) + " ›")
		} else {
			opts[i] = Styles.Muted.Render(string(br))
		}
	}
	b.WriteString("  " + strings.Join(opts, "  ") + "\n")

	return Styles.Box.Render(b.String())
}

func (s *SelectorView) label(text string, f selectorField) string {
	if s.focus == f {
		return Styles.Selected.Render("▸ " + text)
	}
	return Styles.Label.Render("  " + text)
}
