// Package ui is the Bubble Tea front end of eventperf.
//
// The screen is composed of Views driven by a root AppModel:
//   - SelectorView: academic year and branch entry
//   - RosterView: roll numbers for the chosen year and branch
//   - StudentSummaryView: profile fields of the chosen student
//   - EventLedgerView: per-event held/attended/missed counts
//
// AppModel moves forward through three stages (select, browse, student) and
// owns the student profile fetch. Views that fetch their own data track each
// request with a fetch.Tracker so results for superseded inputs are dropped.
package ui
