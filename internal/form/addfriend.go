package form

import "splitbill/internal/friend"

// DefaultImage is the image field's initial value.
const DefaultImage = friend.AvatarBase

// AddFriend is the state of the add-friend form.
type AddFriend struct {
	Name  string
	Image string
}

// NewAddFriend returns a form with default field values.
func NewAddFriend() *AddFriend {
	f := &AddFriend{}
	f.Reset()
	return f
}

// Reset restores both fields to their defaults.
func (f *AddFriend) Reset() {
	f.Name = ""
	f.Image = DefaultImage
}

// Submit builds a new friend from the fields and resets the form.
// An empty name leaves the form untouched and returns false.
func (f *AddFriend) Submit(gen friend.IDGenerator) (friend.Friend, bool) {
	if f.Name == "" {
		return friend.Friend{}, false
	}
	if gen == nil {
		gen = friend.NewUUID
	}
	id := gen()
	image := DefaultImage
	if f.Image != "" {
		image = f.Image + "?=" + string(id)
	}
	nf := friend.Friend{
		ID:      id,
		Name:    f.Name,
		Image:   image,
		Balance: 0,
	}
	f.Reset()
	return nf, true
}
