package friend

// Registry is the ordered list of friends. Entries are appended and their
// balances adjusted; nothing is ever removed.
type Registry struct {
	friends []Friend
}

// NewRegistry creates a registry holding a copy of friends, in order.
func NewRegistry(friends ...Friend) *Registry {
	r := &Registry{friends: make([]Friend, len(friends))}
	copy(r.friends, friends)
	return r
}

// Add appends f at the end. Duplicate ids are not checked.
func (r *Registry) Add(f Friend) {
	r.friends = append(r.friends, f)
}

// UpdateBalance adds delta to the balance of every entry whose id matches.
// Each match is replaced by an updated copy; order and all other entries are
// left as they were. Returns false when no entry matched.
func (r *Registry) UpdateBalance(id ID, delta float64) bool {
	next := make([]Friend, len(r.friends))
	found := false
	for i, f := range r.friends {
		if f.ID == id {
			f.Balance += delta
			found = true
		}
		next[i] = f
	}
	if found {
		r.friends = next
	}
	return found
}

// Friends returns a copy of the entries in order.
func (r *Registry) Friends() []Friend {
	out := make([]Friend, len(r.friends))
	copy(out, r.friends)
	return out
}

// Get returns the first entry with the given id.
func (r *Registry) Get(id ID) (Friend, bool) {
	for _, f := range r.friends {
		if f.ID == id {
			return f, true
		}
	}
	return Friend{}, false
}

// Len returns the number of entries.
func (r *Registry) Len() int {
	return len(r.friends)
}
