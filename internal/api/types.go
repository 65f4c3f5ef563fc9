package api

// Student is the profile returned by GET /students/<roll>.
// CurrentSemester is nil when the backend omits it or sends null.
type Student struct {
	Name            string `json:"name"`
	RollNumber      string `json:"roll_number"`
	Branch          string `json:"branch"`
	CurrentSemester *int   `json:"current_semester"`
}

// EventStatRow is one line of a student's event summary.
// Missed is computed by the backend and shown as received.
type EventStatRow struct {
	EventName string `json:"event_name"`
	Held      int    `json:"held"`
	Attended  int    `json:"attended"`
	Missed    int    `json:"missed"`
}

type rollNumbersResponse struct {
	RollNumbers []string `json:"roll_numbers"`
}

type statsResponse struct {
	Summary []EventStatRow `json:"summary"`
}
