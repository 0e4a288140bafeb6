// Package ui is the Bubble Tea front end of splitbill.
//
// AppModel is the root controller: it owns the friend registry, the
// selection and the add-friend panel flag. Child views receive read-only
// data and report user actions as messages:
//   - FriendListView: friends with their balance lines (SelectFriendMsg)
//   - AddFriendView: name and image inputs (AddFriendMsg)
//   - SplitBillView: bill, user share and payer for the selected friend (SplitBillMsg)
//
// FocusManager decides which panel receives keys; KeyHandler dispatches
// single keys and SPC-prefixed sequences while the friend list has focus.
package ui
