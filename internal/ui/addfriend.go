package ui

import (
	"splitbill/internal/form"
	"splitbill/internal/friend"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	addFieldName = iota
	addFieldImage
	addFieldCount
)

// AddFriendView is the add-friend panel: name and image inputs and a
// "Crear" action. Submitting clears the fields but keeps the panel open.
type AddFriendView struct {
	form   *form.AddFriend
	inputs [addFieldCount]textinput.Model
	field  int
	newID  friend.IDGenerator
}

// Ensure AddFriendView implements View.
var _ View = (*AddFriendView)(nil)

// NewAddFriendView creates the panel with default field values.
// newID generates ids for created friends; nil uses random UUIDs.
func NewAddFriendView(newID friend.IDGenerator) *AddFriendView {
	v := &AddFriendView{form: form.NewAddFriend(), newID: newID}
	for i := range v.inputs {
		ti := textinput.New()
		ti.Width = 32
		ti.Prompt = ""
		v.inputs[i] = ti
	}
	v.inputs[addFieldName].Placeholder = "Nombre"
	v.inputs[addFieldImage].Placeholder = form.DefaultImage
	v.syncInputs()
	v.focusField(addFieldName)
	return v
}

// Form exposes the field state.
func (v *AddFriendView) Form() *form.AddFriend {
	return v.form
}

// Init implements View.
func (v *AddFriendView) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements View.
func (v *AddFriendView) Update(msg tea.Msg) (View, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok {
		switch k.String() {
		case "esc":
			return v, func() tea.Msg { return FocusFriendsMsg{} }
		case "up", "shift+up":
			v.focusField((v.field + addFieldCount - 1) % addFieldCount)
			return v, nil
		case "down", "shift+down":
			v.focusField((v.field + 1) % addFieldCount)
			return v, nil
		case "enter":
			return v, v.submit()
		}
	}

	var cmd tea.Cmd
	v.inputs[v.field], cmd = v.inputs[v.field].Update(msg)
	v.form.Name = v.inputs[addFieldName].Value()
	v.form.Image = v.inputs[addFieldImage].Value()
	return v, cmd
}

func (v *AddFriendView) submit() tea.Cmd {
	nf, ok := v.form.Submit(v.newID)
	if !ok {
		return nil
	}
	v.syncInputs()
	v.focusField(addFieldName)
	return func() tea.Msg { return AddFriendMsg{Friend: nf} }
}

func (v *AddFriendView) syncInputs() {
	v.inputs[addFieldName].SetValue(v.form.Name)
	v.inputs[addFieldImage].SetValue(v.form.Image)
}

func (v *AddFriendView) focusField(i int) {
	v.field = i
	for j := range v.inputs {
		if j == i {
			v.inputs[j].Focus()
		} else {
			v.inputs[j].Blur()
		}
	}
}

// Focus puts the cursor back on the last active field.
func (v *AddFriendView) Focus() {
	v.focusField(v.field)
}

// Blur hides the cursor while another panel has focus.
func (v *AddFriendView) Blur() {
	for i := range v.inputs {
		v.inputs[i].Blur()
	}
}

// View implements View.
func (v *AddFriendView) View() string {
	content := Styles.Label.Render("👨🏻‍👩‍👧‍👦🏾Nombre") + "\n"
	content += v.inputs[addFieldName].View() + "\n"
	content += Styles.Label.Render("🖼️Imagen") + "\n"
	content += v.inputs[addFieldImage].View() + "\n\n"
	content += Styles.Button.Render("Crear")
	return content
}
