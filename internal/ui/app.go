package ui

import (
	"context"
	"log/slog"

	"splitbill/internal/friend"
	"splitbill/internal/telemetry"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// AppModel is the root controller. It owns the friend registry, the
// selection and the add-friend panel flag; child views only read them.
type AppModel struct {
	Friends       *friend.Registry
	Selection     friend.Selection
	ShowAddFriend bool
	ShowHelp      bool // full key help instead of the one-line footer

	List      *FriendListView
	AddForm   *AddFriendView // nil while the panel is closed
	SplitForm *SplitBillView // nil while no friend is selected

	Focus      *FocusManager
	KeyHandler *KeyHandler

	NewID  friend.IDGenerator
	Log    *slog.Logger
	Tracer *telemetry.Tracer

	ctx    context.Context
	width  int
	height int
}

// Options configures NewAppModel. Zero values give a seeded registry,
// random UUIDs and discarded logs and traces.
type Options struct {
	NoSeed  bool // start with no friends instead of friend.Seed()
	NewID   friend.IDGenerator
	Log     *slog.Logger
	Tracer  *telemetry.Tracer
	Context context.Context
}

// NewAppModel creates the root application model.
func NewAppModel(opts Options) *AppModel {
	var friends []friend.Friend
	if !opts.NoSeed {
		friends = friend.Seed()
	}
	if opts.NewID == nil {
		opts.NewID = friend.NewUUID
	}
	if opts.Log == nil {
		opts.Log = slog.New(slog.DiscardHandler)
	}
	if opts.Tracer == nil {
		opts.Tracer = telemetry.Disabled()
	}
	if opts.Context == nil {
		opts.Context = context.Background()
	}

	a := &AppModel{
		Friends: friend.NewRegistry(friends...),
		List:    NewFriendListView(),
		Focus:   NewFocusManager(PanelFriends),
		NewID:   opts.NewID,
		Log:     opts.Log,
		Tracer:  opts.Tracer,
		ctx:     opts.Context,
	}
	a.KeyHandler = NewKeyHandler(newKeybindRegistry(a))
	a.Focus.OnChange = a.onFocusChange
	a.refresh()
	return a
}

func newKeybindRegistry(a *AppModel) *KeybindRegistry {
	toggle := func() tea.Msg { return ToggleAddFriendMsg{} }
	split := func() tea.Msg {
		if f, ok := a.List.Current(); ok {
			return SelectFriendMsg{ID: f.ID}
		}
		return nil
	}
	reg := NewKeybindRegistry()
	reg.Bind("q", tea.Quit, "Salir")
	reg.Bind("a", toggle, "Agregar perfil")
	reg.Bind("?", func() tea.Msg { return ToggleHelpMsg{} }, "Ayuda")
	reg.Bind("SPC a", toggle, "Agregar perfil / Cerrar")
	reg.Bind("SPC s", split, "Split!")
	reg.Bind("SPC q", tea.Quit, "Salir")
	return reg
}

// ToggleAddFriend opens or closes the add-friend panel. Opening starts
// with fresh fields and focuses the panel.
func (a *AppModel) ToggleAddFriend() {
	a.ShowAddFriend = !a.ShowAddFriend
	if a.ShowAddFriend {
		a.AddForm = NewAddFriendView(a.NewID)
	} else {
		a.AddForm = nil
	}
	a.Log.Debug("add-friend panel toggled", "open", a.ShowAddFriend)
	a.refresh()
	if a.ShowAddFriend {
		a.Focus.SetFocus(PanelAddFriend)
	}
}

// AddFriend appends f to the registry. The add-friend panel stays open.
func (a *AppModel) AddFriend(f friend.Friend) {
	_, span := a.Tracer.Start(a.ctx, telemetry.SpanAddFriend, telemetry.FriendID(string(f.ID)))
	defer span.End()

	a.Friends.Add(f)
	a.Log.Info("friend added", "friend_id", f.ID, "name", f.Name, "friends", a.Friends.Len())
	a.refresh()
}

// SelectFriend toggles the selection of id and always closes the
// add-friend panel. Selecting opens a fresh split-bill form.
func (a *AppModel) SelectFriend(id friend.ID) {
	_, span := a.Tracer.Start(a.ctx, telemetry.SpanSelectFriend, telemetry.FriendID(string(id)))
	defer span.End()

	f, ok := a.Friends.Get(id)
	if !ok {
		a.Log.Warn("select: unknown friend", "friend_id", id)
		return
	}
	selected := a.Selection.Toggle(id)
	span.SetAttributes(telemetry.Selected(selected))

	a.ShowAddFriend = false
	a.AddForm = nil
	if selected {
		a.SplitForm = NewSplitBillView(f)
	} else {
		a.SplitForm = nil
	}
	a.Log.Debug("friend selection toggled", "friend_id", id, "selected", selected)
	a.refresh()
	if selected {
		a.Focus.SetFocus(PanelSplitBill)
	} else {
		a.Focus.SetFocus(PanelFriends)
	}
}

// SplitBill applies delta to the selected friend's balance and clears the
// selection. Returns false when no friend is selected.
func (a *AppModel) SplitBill(delta float64) bool {
	id, ok := a.Selection.ID()
	if !ok {
		return false
	}
	_, span := a.Tracer.Start(a.ctx, telemetry.SpanSplitBill, telemetry.FriendID(string(id)), telemetry.Delta(delta))
	defer span.End()

	a.Friends.UpdateBalance(id, delta)
	a.Selection.Clear()
	a.SplitForm = nil

	f, _ := a.Friends.Get(id)
	span.SetAttributes(telemetry.Balance(f.Balance))
	a.Log.Info("bill split", "friend_id", id, "delta", delta, "balance", f.Balance, "standing", f.Standing().String())
	a.refresh()
	a.Focus.SetFocus(PanelFriends)
	return true
}

// refresh pushes current state into the views and recomputes focus order.
func (a *AppModel) refresh() {
	a.List.SetFriends(a.Friends.Friends(), a.Selection)
	order := []PanelID{PanelFriends}
	if a.AddForm != nil {
		order = append(order, PanelAddFriend)
	}
	if a.SplitForm != nil {
		order = append(order, PanelSplitBill)
	}
	a.Focus.SetOrder(order...)
}

// onFocusChange moves the text cursor with panel focus, so only the
// focused panel shows an active input.
func (a *AppModel) onFocusChange(from, to PanelID) {
	if v := a.inputPanel(from); v != nil {
		v.Blur()
	}
	if v := a.inputPanel(to); v != nil {
		v.Focus()
	}
}

// inputPanel is a panel holding text inputs.
type inputPanel interface {
	Focus()
	Blur()
}

func (a *AppModel) inputPanel(id PanelID) inputPanel {
	switch id {
	case PanelAddFriend:
		if a.AddForm != nil {
			return a.AddForm
		}
	case PanelSplitBill:
		if a.SplitForm != nil {
			return a.SplitForm
		}
	}
	return nil
}

// focusedView returns the view receiving keys.
func (a *AppModel) focusedView() View {
	switch a.Focus.Current {
	case PanelAddFriend:
		if a.AddForm != nil {
			return a.AddForm
		}
	case PanelSplitBill:
		if a.SplitForm != nil {
			return a.SplitForm
		}
	}
	return a.List
}

// Ensure AppModel can be used as tea.Model via adapter.
var _ tea.Model = (*appModelAdapter)(nil)

// appModelAdapter wraps AppModel to implement tea.Model.
type appModelAdapter struct {
	*AppModel
}

// AsTeaModel returns a tea.Model adapter for use with tea.NewProgram.
func (a *AppModel) AsTeaModel() tea.Model {
	return &appModelAdapter{AppModel: a}
}

// Init implements tea.Model.
func (a *appModelAdapter) Init() tea.Cmd {
	return a.List.Init()
}

// Update implements tea.Model.
func (a *appModelAdapter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
		a.List.SetSize(listWidth(msg.Width), max(msg.Height-4, 4))
		return a, nil
	case ToggleAddFriendMsg:
		a.ToggleAddFriend()
		if a.AddForm != nil {
			return a, a.AddForm.Init()
		}
		return a, nil
	case AddFriendMsg:
		a.AddFriend(msg.Friend)
		return a, nil
	case SelectFriendMsg:
		a.SelectFriend(msg.ID)
		if a.SplitForm != nil {
			return a, a.SplitForm.Init()
		}
		return a, nil
	case SplitBillMsg:
		a.SplitBill(msg.Delta)
		return a, nil
	case ToggleHelpMsg:
		a.ShowHelp = !a.ShowHelp
		return a, nil
	case FocusFriendsMsg:
		a.Focus.SetFocus(PanelFriends)
		return a, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return a, tea.Quit
		case "tab":
			a.KeyHandler.reset()
			a.Focus.Next()
			return a, nil
		case "shift+tab":
			a.KeyHandler.reset()
			a.Focus.Prev()
			return a, nil
		}
		// Single-key bindings only apply while no text field has focus.
		if a.Focus.Is(PanelFriends) {
			if consumed, cmd := a.KeyHandler.Handle(msg); consumed {
				return a, cmd
			}
		}
	}

	v, cmd := a.focusedView().Update(msg)
	a.setFocusedView(v)
	return a, cmd
}

func (a *appModelAdapter) setFocusedView(v View) {
	switch v := v.(type) {
	case *FriendListView:
		a.List = v
	case *AddFriendView:
		a.AddForm = v
	case *SplitBillView:
		a.SplitForm = v
	}
}

// View implements tea.Model.
func (a *appModelAdapter) View() string {
	sidebar := panelBox(a.Focus.Is(PanelFriends)).Render(a.List.View())
	if a.AddForm != nil {
		sidebar = lipgloss.JoinVertical(lipgloss.Left, sidebar,
			panelBox(a.Focus.Is(PanelAddFriend)).Render(a.AddForm.View()))
	}
	sidebar = lipgloss.JoinVertical(lipgloss.Left, sidebar, " "+Styles.Button.Render(a.addFriendLabel()))

	body := sidebar
	if a.SplitForm != nil {
		body = lipgloss.JoinHorizontal(lipgloss.Top, sidebar, " ",
			panelBox(a.Focus.Is(PanelSplitBill)).Render(a.SplitForm.View()))
	}

	footer := RenderKeybindHelp(a.KeyHandler)
	if footer == "" {
		if a.ShowHelp {
			footer = RenderFullHelp(a.Focus.Current, a.ShowAddFriend)
		} else {
			footer = RenderFooter(a.Focus.Current, a.ShowAddFriend)
		}
	}
	return body + "\n" + footer
}

// addFriendLabel is the add-friend toggle's label.
func (a *AppModel) addFriendLabel() string {
	if a.ShowAddFriend {
		return "Cerrar"
	}
	return "Agregar perfil"
}

func listWidth(termWidth int) int {
	if termWidth <= 0 {
		return defaultListWidth
	}
	return min(defaultListWidth, max(termWidth/2, 24))
}
