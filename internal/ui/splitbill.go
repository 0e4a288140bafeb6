package ui

import (
	"splitbill/internal/form"
	"splitbill/internal/friend"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	splitFieldBill = iota
	splitFieldUser
	splitFieldPayer
	splitFieldCount
)

// SplitBillView is the split-bill panel for the selected friend.
type SplitBillView struct {
	Friend friend.Friend
	form   *form.SplitBill
	bill   textinput.Model
	user   textinput.Model
	field  int
}

// Ensure SplitBillView implements View.
var _ View = (*SplitBillView)(nil)

// NewSplitBillView creates an empty form for f with the user as payer.
func NewSplitBillView(f friend.Friend) *SplitBillView {
	newInput := func() textinput.Model {
		ti := textinput.New()
		ti.Width = 16
		ti.Prompt = ""
		return ti
	}
	v := &SplitBillView{
		Friend: f,
		form:   form.NewSplitBill(),
		bill:   newInput(),
		user:   newInput(),
	}
	v.focusField(splitFieldBill)
	return v
}

// Form exposes the field state.
func (v *SplitBillView) Form() *form.SplitBill {
	return v.form
}

// Init implements View.
func (v *SplitBillView) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements View.
func (v *SplitBillView) Update(msg tea.Msg) (View, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok {
		switch k.String() {
		case "esc":
			return v, func() tea.Msg { return FocusFriendsMsg{} }
		case "up", "shift+up":
			v.focusField((v.field + splitFieldCount - 1) % splitFieldCount)
			return v, nil
		case "down", "shift+down":
			v.focusField((v.field + 1) % splitFieldCount)
			return v, nil
		case "enter":
			return v, v.submit()
		}
		if v.field == splitFieldPayer {
			switch k.String() {
			case "left", "right", "h", "l", " ":
				v.form.TogglePayer()
			}
			return v, nil
		}
	}

	var cmd tea.Cmd
	switch v.field {
	case splitFieldBill:
		v.bill, cmd = v.bill.Update(msg)
		v.form.SetBill(v.bill.Value())
	case splitFieldUser:
		v.user, cmd = v.user.Update(msg)
		if !v.form.SetUserExpense(v.user.Value()) {
			v.user.SetValue(v.form.UserExpenseText)
		}
	}
	return v, cmd
}

func (v *SplitBillView) submit() tea.Cmd {
	delta, ok := v.form.Delta()
	if !ok {
		return nil
	}
	return func() tea.Msg { return SplitBillMsg{Delta: delta} }
}

func (v *SplitBillView) focusField(i int) {
	v.field = i
	v.bill.Blur()
	v.user.Blur()
	switch i {
	case splitFieldBill:
		v.bill.Focus()
	case splitFieldUser:
		v.user.Focus()
	}
}

// Focus puts the cursor back on the last active field.
func (v *SplitBillView) Focus() {
	v.focusField(v.field)
}

// Blur hides the cursor while another panel has focus.
func (v *SplitBillView) Blur() {
	v.bill.Blur()
	v.user.Blur()
}

// PayerLabel is the payer selector's current option.
func (v *SplitBillView) PayerLabel() string {
	if v.form.WhoPays == form.PayerFriend {
		return v.Friend.Name
	}
	return "You"
}

// View implements View.
func (v *SplitBillView) View() string {
	name := v.Friend.Name
	content := Styles.Title.Render("Divide la cuenta con "+name) + "\n\n"
	content += Styles.Label.Render("💵Monto") + "\n" + v.bill.View() + "\n"
	content += Styles.Label.Render("😎Tu gasto") + "\n" + v.user.View() + "\n"
	content += Styles.Label.Render("✌️Gasto de "+name) + "\n" + Styles.Disabled.Render(v.form.FriendExpense().String()) + "\n"

	payer := "‹ " + v.PayerLabel() + " ›"
	if v.field == splitFieldPayer {
		payer = Styles.Cursor.Render(payer)
	}
	content += Styles.Label.Render("🤑Quién paga?") + "\n" + payer + "\n\n"
	content += Styles.Button.Render("Split!")
	return content
}
