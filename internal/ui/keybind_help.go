package ui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

func newHelpModel() help.Model {
	h := help.New()
	h.Styles.ShortKey = lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight)).
		Bold(true)
	h.Styles.ShortDesc = Styles.Hint
	h.Styles.ShortSeparator = Styles.Hint
	h.Styles.FullKey = h.Styles.ShortKey
	h.Styles.FullDesc = Styles.Hint
	h.Styles.FullSeparator = Styles.Hint
	return h
}

// RenderKeybindHelp produces the transient help bar shown after SPC.
// When the handler has typed part of a sequence, shows next-level hints.
func RenderKeybindHelp(h *KeyHandler) string {
	if h == nil || !h.LeaderWaiting {
		return ""
	}
	seq := h.Sequence()
	bindings := h.Registry.Hints(seq)
	if len(bindings) == 0 {
		return ""
	}
	bindings = append(bindings, key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "cancel"),
	))

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorAccent)).
		Padding(0, 1)
	return box.Render(Styles.Hint.Render(seq) + " " + newHelpModel().ShortHelpView(bindings))
}

// footerKeys lists the keys that work in the focused panel.
func footerKeys(focus PanelID, showAddFriend bool) []key.Binding {
	tab := key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "panel"))
	switch focus {
	case PanelAddFriend:
		return []key.Binding{
			key.NewBinding(key.WithKeys("up", "down"), key.WithHelp("↑/↓", "campo")),
			key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "Crear")),
			key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "volver")),
			tab,
		}
	case PanelSplitBill:
		return []key.Binding{
			key.NewBinding(key.WithKeys("up", "down"), key.WithHelp("↑/↓", "campo")),
			key.NewBinding(key.WithKeys("left", "right"), key.WithHelp("←/→", "quién paga")),
			key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "Split!")),
			key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "volver")),
			tab,
		}
	}
	addLabel := "Agregar perfil"
	if showAddFriend {
		addLabel = "Cerrar"
	}
	return []key.Binding{
		key.NewBinding(key.WithKeys("j", "k"), key.WithHelp("j/k", "mover")),
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "Split!/Cerrar")),
		key.NewBinding(key.WithKeys("a"), key.WithHelp("a", addLabel)),
		key.NewBinding(key.WithKeys(" "), key.WithHelp("SPC", "comandos")),
		tab,
		key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "ayuda")),
		key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "salir")),
	}
}

// panelKeyMap implements help.KeyMap for one panel's keys.
type panelKeyMap struct {
	short []key.Binding
	extra []key.Binding
}

func (k panelKeyMap) ShortHelp() []key.Binding { return k.short }

// FullHelp shows the footer keys in one column and the less common ones in another.
func (k panelKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.short, k.extra}
}

func newPanelKeyMap(focus PanelID, showAddFriend bool) panelKeyMap {
	return panelKeyMap{
		short: footerKeys(focus, showAddFriend),
		extra: []key.Binding{
			key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "panel anterior")),
			key.NewBinding(key.WithKeys(" "), key.WithHelp("SPC s", "Split! en la fila actual")),
			key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "salir")),
		},
	}
}

// RenderFullHelp renders every key of the focused panel in columns.
func RenderFullHelp(focus PanelID, showAddFriend bool) string {
	h := newHelpModel()
	h.ShowAll = true
	return h.View(newPanelKeyMap(focus, showAddFriend))
}

// RenderFooter renders the one-line key hint for the focused panel.
func RenderFooter(focus PanelID, showAddFriend bool) string {
	return newHelpModel().View(newPanelKeyMap(focus, showAddFriend))
}
