package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeybindRegistry_BindLookup(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.Bind("q", tea.Quit, "Salir")
	reg.Bind("SPC q", tea.Quit, "Salir")
	reg.Bind("space a", tea.Quit, "")

	assert.NotNil(t, reg.Lookup("q"))
	assert.NotNil(t, reg.Lookup("SPC q"))
	assert.NotNil(t, reg.Lookup("SPC a"), "space normalizes to SPC")
	assert.Nil(t, reg.Lookup("unknown"))
	assert.True(t, reg.HasPrefix("SPC"))
	assert.False(t, reg.HasPrefix("q"))
}

func TestKeybindRegistry_Hints(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.Bind("SPC s", tea.Quit, "Split!")
	reg.Bind("SPC a", tea.Quit, "Agregar perfil")
	reg.Bind("SPC x y", tea.Quit, "deep")
	reg.Bind("q", tea.Quit, "Salir")

	hints := reg.Hints("SPC")
	require.Len(t, hints, 3)
	assert.Equal(t, "a", hints[0].Help().Key)
	assert.Equal(t, "Agregar perfil", hints[0].Help().Desc)
	assert.Equal(t, "s", hints[1].Help().Key)
	assert.Equal(t, "x…", hints[2].Help().Desc)
}

func TestKeyHandler_LeaderKey(t *testing.T) {
	reg := NewKeybindRegistry()
	var executed bool
	reg.Bind("SPC x", func() tea.Msg {
		executed = true
		return nil
	}, "")
	h := NewKeyHandler(reg)

	consumed, cmd := h.Handle(keyMsg(" "))
	assert.True(t, consumed)
	assert.Nil(t, cmd)
	assert.True(t, h.LeaderWaiting)
	assert.Equal(t, "SPC", h.Sequence())

	consumed, cmd = h.Handle(keyMsg("x"))
	assert.True(t, consumed)
	assert.False(t, h.LeaderWaiting)
	require.NotNil(t, cmd)
	cmd()
	assert.True(t, executed)
}

func TestKeyHandler_EscCancelsLeader(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.Bind("SPC x", tea.Quit, "")
	h := NewKeyHandler(reg)

	h.Handle(keyMsg(" "))
	consumed, cmd := h.Handle(keyMsg("esc"))
	assert.True(t, consumed)
	assert.Nil(t, cmd)
	assert.False(t, h.LeaderWaiting)

	consumed, _ = h.Handle(keyMsg("esc"))
	assert.False(t, consumed, "esc outside leader mode passes through")
}

func TestKeyHandler_UnknownSequenceResets(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.Bind("SPC x y", tea.Quit, "")
	h := NewKeyHandler(reg)

	h.Handle(keyMsg(" "))
	consumed, _ := h.Handle(keyMsg("x"))
	assert.True(t, consumed)
	assert.True(t, h.LeaderWaiting, "prefix of a longer binding")

	consumed, cmd := h.Handle(keyMsg("z"))
	assert.True(t, consumed)
	assert.Nil(t, cmd)
	assert.False(t, h.LeaderWaiting)
}

func TestKeyHandler_SingleKeyAndPassThrough(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.Bind("a", func() tea.Msg { return ToggleAddFriendMsg{} }, "")
	h := NewKeyHandler(reg)

	consumed, cmd := h.Handle(keyMsg("a"))
	assert.True(t, consumed)
	require.NotNil(t, cmd)
	assert.Equal(t, ToggleAddFriendMsg{}, cmd())

	consumed, cmd = h.Handle(keyMsg("j"))
	assert.False(t, consumed)
	assert.Nil(t, cmd)
}

func TestRenderKeybindHelp(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.Bind("SPC s", tea.Quit, "Split!")
	h := NewKeyHandler(reg)

	assert.Empty(t, RenderKeybindHelp(h), "hidden outside leader mode")

	h.Handle(keyMsg(" "))
	out := RenderKeybindHelp(h)
	assert.Contains(t, out, "Split!")
	assert.Contains(t, out, "cancel")
}

func TestRenderFooter(t *testing.T) {
	assert.Contains(t, RenderFooter(PanelFriends, false), "Agregar perfil")
	assert.Contains(t, RenderFooter(PanelFriends, true), "Cerrar")
	assert.Contains(t, RenderFooter(PanelAddFriend, true), "Crear")
	assert.Contains(t, RenderFooter(PanelSplitBill, false), "quién paga")
}
