package ui

// PanelID names a focusable region of the screen.
type PanelID string

const (
	PanelFriends   PanelID = "friends"
	PanelAddFriend PanelID = "add-friend"
	PanelSplitBill PanelID = "split-bill"
)

func (p PanelID) String() string {
	return string(p)
}
