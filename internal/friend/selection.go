package friend

// Selection tracks at most one selected friend.
type Selection struct {
	id  ID
	set bool
}

// Toggle selects id, or clears the selection if id is already selected.
// Returns true when id is selected afterwards.
func (s *Selection) Toggle(id ID) bool {
	if s.set && s.id == id {
		s.Clear()
		return false
	}
	s.id = id
	s.set = true
	return true
}

// Clear drops the selection.
func (s *Selection) Clear() {
	s.id = ""
	s.set = false
}

// ID returns the selected friend id, if any.
func (s Selection) ID() (ID, bool) {
	return s.id, s.set
}

// IsSelected reports whether id is the selected friend.
func (s Selection) IsSelected(id ID) bool {
	return s.set && s.id == id
}
