package friend

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSelection_Toggle(t *testing.T) {
	var s Selection

	_, ok := s.ID()
	assert.False(t, ok, "zero value has no selection")

	assert.True(t, s.Toggle("a"))
	assert.True(t, s.IsSelected("a"))

	// Selecting a different friend moves the selection.
	assert.True(t, s.Toggle("b"))
	assert.False(t, s.IsSelected("a"))
	assert.True(t, s.IsSelected("b"))

	// Re-selecting clears it.
	assert.False(t, s.Toggle("b"))
	_, ok = s.ID()
	assert.False(t, ok)
}

func TestSelection_Clear(t *testing.T) {
	var s Selection
	s.Toggle("a")
	s.Clear()

	id, ok := s.ID()
	assert.False(t, ok)
	assert.Empty(t, id)
	assert.False(t, s.IsSelected(""))
}
