package ui

// Panel IDs used for focus rotation.
const (
	panelRoster = "roster"
	panelLedger = "ledger"
)

// FocusManager tracks which panel receives navigation keys.
type FocusManager struct {
	Current  string   // ID of the focused panel
	Order    []string // Tab order
	OnChange func(from, to string)
}

// Next moves focus to the following panel, wrapping around.
func (f *FocusManager) Next() string {
	return f.step(1)
}

// Prev moves focus to the preceding panel, wrapping around.
func (f *FocusManager) Prev() string {
	return f.step(-1)
}

func (f *FocusManager) step(delta int) string {
	n := len(f.Order)
	if n == 0 {
		return ""
	}
	idx := f.indexOf(f.Current)
	if idx < 0 {
		// Unknown current: Next lands on the first panel, Prev on the last.
		if delta > 0 {
			idx = -1
		} else {
			idx = 0
		}
	}
	return f.set(f.Order[((idx+delta)%n+n)%n])
}

// SetFocus focuses id. Returns false if id is not in Order.
func (f *FocusManager) SetFocus(id string) bool {
	if f.indexOf(id) < 0 {
		return false
	}
	f.set(id)
	return true
}

func (f *FocusManager) set(id string) string {
	from := f.Current
	f.Current = id
	if f.OnChange != nil && from != id {
		f.OnChange(from, id)
	}
	return id
}

func (f *FocusManager) indexOf(id string) int {
	for i, o := range f.Order {
		if o == id {
			return i
		}
	}
	return -1
}
