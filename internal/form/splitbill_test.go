package form

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func filled(bill, user string, p Payer) *SplitBill {
	s := NewSplitBill()
	s.SetBill(bill)
	s.SetUserExpense(user)
	if p == PayerFriend {
		s.TogglePayer()
	}
	return s
}

func TestSplitBill_Defaults(t *testing.T) {
	s := NewSplitBill()
	assert.Equal(t, PayerUser, s.WhoPays)
	assert.Equal(t, Empty, s.FriendExpense())
	_, ok := s.Delta()
	assert.False(t, ok)
}

func TestSplitBill_DeltaUserPays(t *testing.T) {
	s := filled("100", "40", PayerUser)
	assert.Equal(t, AmountOf(60), s.FriendExpense())

	d, ok := s.Delta()
	require.True(t, ok)
	assert.Equal(t, 60.0, d)
}

func TestSplitBill_DeltaFriendPays(t *testing.T) {
	s := filled("100", "40", PayerFriend)

	d, ok := s.Delta()
	require.True(t, ok)
	assert.Equal(t, -40.0, d)
}

func TestSplitBill_DeltaMissingValues(t *testing.T) {
	tests := []struct {
		name, bill, user string
	}{
		{"empty bill", "", ""},
		{"zero bill", "0", ""},
		{"empty user expense", "100", ""},
		{"zero user expense", "100", "0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := filled(tt.bill, tt.user, PayerUser)
			_, ok := s.Delta()
			assert.False(t, ok)
		})
	}
}

func TestSplitBill_UserExpenseAboveBillIsRejected(t *testing.T) {
	s := NewSplitBill()
	s.SetBill("100")
	require.True(t, s.SetUserExpense("40"))

	assert.False(t, s.SetUserExpense("150"))
	assert.Equal(t, AmountOf(40), s.UserExpense)
	assert.Equal(t, "40", s.UserExpenseText)

	assert.True(t, s.SetUserExpense("100"), "equal to bill is allowed")
	assert.Equal(t, AmountOf(100), s.UserExpense)
}

func TestSplitBill_UserExpenseWithoutBill(t *testing.T) {
	s := NewSplitBill()
	assert.False(t, s.SetUserExpense("5"), "empty bill counts as zero")
	assert.Equal(t, Empty, s.UserExpense)
}

func TestSplitBill_FriendExpenseWithoutUserExpense(t *testing.T) {
	s := NewSplitBill()
	s.SetBill("50")
	assert.Equal(t, AmountOf(50), s.FriendExpense())
}

func TestSplitBill_BillChangeKeepsUserExpense(t *testing.T) {
	s := filled("100", "80", PayerUser)
	s.SetBill("50")

	assert.Equal(t, AmountOf(80), s.UserExpense)
	assert.Equal(t, AmountOf(-30), s.FriendExpense())
}

func TestSplitBill_TogglePayer(t *testing.T) {
	s := NewSplitBill()
	s.TogglePayer()
	assert.Equal(t, PayerFriend, s.WhoPays)
	s.TogglePayer()
	assert.Equal(t, PayerUser, s.WhoPays)
}
