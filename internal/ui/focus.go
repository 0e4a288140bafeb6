package ui

// FocusManager tracks which panel has focus and rotates through the
// panels currently on screen.
type FocusManager struct {
	Current  PanelID
	Order    []PanelID // Tab order for focus rotation
	OnChange func(from, to PanelID)
}

// NewFocusManager focuses the first panel of order.
func NewFocusManager(order ...PanelID) *FocusManager {
	f := &FocusManager{}
	f.SetOrder(order...)
	return f
}

// SetOrder replaces the tab order. Focus stays put if the current panel is
// still present, otherwise it moves to the first panel.
func (f *FocusManager) SetOrder(order ...PanelID) {
	f.Order = append([]PanelID(nil), order...)
	if f.indexOf(f.Current) >= 0 {
		return
	}
	next := PanelID("")
	if len(f.Order) > 0 {
		next = f.Order[0]
	}
	f.move(next)
}

// Next advances focus to the next panel in order.
// Returns the new current focus.
func (f *FocusManager) Next() PanelID {
	return f.step(1)
}

// Prev moves focus to the previous panel in order.
func (f *FocusManager) Prev() PanelID {
	return f.step(-1)
}

// SetFocus focuses id. Returns false if id is not in the order.
func (f *FocusManager) SetFocus(id PanelID) bool {
	if f.indexOf(id) < 0 {
		return false
	}
	f.move(id)
	return true
}

// Is reports whether id has focus.
func (f *FocusManager) Is(id PanelID) bool {
	return f.Current == id
}

func (f *FocusManager) step(dir int) PanelID {
	n := len(f.Order)
	if n == 0 {
		return ""
	}
	idx := f.indexOf(f.Current)
	if idx < 0 {
		idx = 0
	} else {
		idx = ((idx+dir)%n + n) % n
	}
	f.move(f.Order[idx])
	return f.Current
}

func (f *FocusManager) move(to PanelID) {
	from := f.Current
	f.Current = to
	if f.OnChange != nil && from != to {
		f.OnChange(from, to)
	}
}

func (f *FocusManager) indexOf(id PanelID) int {
	for i, o := range f.Order {
		if o == id {
			return i
		}
	}
	return -1
}
