package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"splitbill/internal/friend"
)

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "space", " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "backspace":
		return tea.KeyMsg{Type: tea.KeyBackspace}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

// press sends one key and, if it produced one of the app's own messages,
// feeds that message back. Cursor blink commands are never run.
func press(m tea.Model, k string) tea.Model {
	m, cmd := m.Update(keyMsg(k))
	if cmd == nil || !returnsAppMsg(k) {
		return m
	}
	if msg := cmd(); msg != nil {
		m, _ = m.Update(msg)
	}
	return m
}

func returnsAppMsg(k string) bool {
	switch k {
	case "enter", "esc", "a", "?":
		return true
	}
	return false
}

// typeText types s into whatever has focus without running blink commands.
func typeText(m tea.Model, s string) tea.Model {
	m, _ = m.Update(keyMsg(s))
	return m
}

func sequentialIDs(ids ...string) friend.IDGenerator {
	i := 0
	return func() friend.ID {
		id := friend.ID(ids[i%len(ids)])
		i++
		return id
	}
}

func newTestApp() (*AppModel, tea.Model) {
	a := NewAppModel(Options{NewID: sequentialIDs("id-1", "id-2", "id-3")})
	return a, a.AsTeaModel()
}
