package ui

import (
	"fmt"
	"io"
	"strings"

	"splitbill/internal/friend"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	defaultListWidth  = 48
	defaultListHeight = 24
)

// friendItem implements list.Item for a friend row.
type friendItem struct {
	friend.Friend
	Selected bool
}

func (f friendItem) FilterValue() string { return f.Name }

// ButtonLabel is the row's toggle label.
func (f friendItem) ButtonLabel() string {
	if f.Selected {
		return "Cerrar"
	}
	return "Split!"
}

// friendDelegate renders a friend as three lines: name with its button,
// the balance message, and the avatar URL.
type friendDelegate struct{}

func (friendDelegate) Height() int                         { return 3 }
func (friendDelegate) Spacing() int                        { return 1 }
func (friendDelegate) Update(tea.Msg, *list.Model) tea.Cmd { return nil }
func (friendDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	f, ok := item.(friendItem)
	if !ok {
		return
	}
	marker := "  "
	nameStyle := Styles.Normal
	if f.Selected {
		nameStyle = Styles.Selected
	}
	if index == m.Index() {
		marker = Styles.Cursor.Render("▸ ")
		if !f.Selected {
			nameStyle = Styles.Cursor
		}
	}

	width := m.Width() - 2
	if width < 10 {
		width = 10
	}
	clip := lipgloss.NewStyle().MaxWidth(width)

	header := nameStyle.Render(f.Name) + " " + Styles.Button.Render(f.ButtonLabel())
	lines := []string{
		marker + clip.Render(header),
		"  " + clip.Render(balanceStyle(f.Friend).Render(friend.BalanceMessage(f.Friend))),
		"  " + clip.Render(Styles.Muted.Render(f.Image)),
	}
	fmt.Fprint(w, strings.Join(lines, "\n"))
}

func balanceStyle(f friend.Friend) lipgloss.Style {
	switch f.Standing() {
	case friend.StandingOwe:
		return Styles.Owe
	case friend.StandingOwed:
		return Styles.Owed
	default:
		return Styles.Settled
	}
}

// FriendListView shows the registry. It never changes friends itself;
// Enter on a row emits SelectFriendMsg.
type FriendListView struct {
	list list.Model
}

// Ensure FriendListView implements View.
var _ View = (*FriendListView)(nil)

// NewFriendListView creates an empty list. Rows are supplied with SetFriends.
func NewFriendListView() *FriendListView {
	l := list.New(nil, friendDelegate{}, defaultListWidth, defaultListHeight)
	l.Title = "Amigos"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)
	l.DisableQuitKeybindings()
	l.Styles.Title = Styles.Title
	l.Styles.NoItems = Styles.Empty
	return &FriendListView{list: l}
}

// SetFriends replaces the rows, marking the selected friend. The cursor
// stays on the same index.
func (v *FriendListView) SetFriends(friends []friend.Friend, sel friend.Selection) {
	items := make([]list.Item, len(friends))
	for i, f := range friends {
		items[i] = friendItem{Friend: f, Selected: sel.IsSelected(f.ID)}
	}
	idx := v.list.Index()
	v.list.SetItems(items)
	if idx < len(items) {
		v.list.Select(idx)
	}
}

// SetSize resizes the list.
func (v *FriendListView) SetSize(width, height int) {
	v.list.SetSize(width, height)
}

// Cursor returns the index of the highlighted row.
func (v *FriendListView) Cursor() int {
	return v.list.Index()
}

// Current returns the highlighted friend.
func (v *FriendListView) Current() (friend.Friend, bool) {
	f, ok := v.list.SelectedItem().(friendItem)
	if !ok {
		return friend.Friend{}, false
	}
	return f.Friend, true
}

// Init implements View.
func (v *FriendListView) Init() tea.Cmd {
	return nil
}

// Update implements View.
func (v *FriendListView) Update(msg tea.Msg) (View, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok && k.String() == "enter" {
		f, ok := v.Current()
		if !ok {
			return v, nil
		}
		return v, func() tea.Msg { return SelectFriendMsg{ID: f.ID} }
	}
	// j/k/up/down/g/G and paging are handled by list.Model.
	var cmd tea.Cmd
	v.list, cmd = v.list.Update(msg)
	return v, cmd
}

// View implements View.
func (v *FriendListView) View() string {
	return v.list.View()
}
