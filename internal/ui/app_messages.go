package ui

import "splitbill/internal/friend"

// ToggleAddFriendMsg opens or closes the add-friend panel ("Agregar perfil" / "Cerrar").
type ToggleAddFriendMsg struct{}

// AddFriendMsg is sent when the add-friend form produced a new friend ("Crear").
type AddFriendMsg struct {
	Friend friend.Friend
}

// SelectFriendMsg is sent when the user presses "Split!" or "Cerrar" on a friend row.
type SelectFriendMsg struct {
	ID friend.ID
}

// SplitBillMsg is sent when the split-bill form was submitted.
// Delta is the change to the selected friend's balance.
type SplitBillMsg struct {
	Delta float64
}

// ToggleHelpMsg shows or hides the full key help ("?").
type ToggleHelpMsg struct{}

// FocusFriendsMsg returns focus to the friend list (Esc in a form).
type FocusFriendsMsg struct{}
