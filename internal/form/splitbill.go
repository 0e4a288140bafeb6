package form

// Payer is who paid the whole bill.
type Payer int

const (
	PayerUser Payer = iota
	PayerFriend
)

func (p Payer) String() string {
	switch p {
	case PayerUser:
		return "user"
	case PayerFriend:
		return "friend"
	default:
		return "unknown"
	}
}

// SplitBill is the state of the split-bill form for one selected friend.
// Text fields keep what the user typed; the parsed amounts are derived from
// them on every change.
type SplitBill struct {
	BillText        string
	UserExpenseText string
	Bill            Amount
	UserExpense     Amount
	WhoPays         Payer
}

// NewSplitBill returns an empty form with the user as payer.
func NewSplitBill() *SplitBill {
	return &SplitBill{WhoPays: PayerUser}
}

// SetBill replaces the bill text and re-parses it.
// The user expense is not re-checked against the new bill.
func (s *SplitBill) SetBill(raw string) {
	s.BillText = raw
	s.Bill = ParseAmount(raw)
}

// SetUserExpense replaces the user's share unless it exceeds the current
// bill, in which case the previous value is kept and false is returned.
// An empty bill counts as zero.
func (s *SplitBill) SetUserExpense(raw string) bool {
	a := ParseAmount(raw)
	if a.Set && a.Value > s.Bill.Value {
		return false
	}
	s.UserExpenseText = raw
	s.UserExpense = a
	return true
}

// FriendExpense is the friend's share: bill minus the user's share.
// It is empty while the bill is empty or zero.
func (s *SplitBill) FriendExpense() Amount {
	if s.Bill.IsZero() {
		return Empty
	}
	return AmountOf(s.Bill.Value - s.UserExpense.Value)
}

// TogglePayer switches between the user and the friend.
func (s *SplitBill) TogglePayer() {
	if s.WhoPays == PayerUser {
		s.WhoPays = PayerFriend
	} else {
		s.WhoPays = PayerUser
	}
}

// Delta is the change to apply to the friend's balance. When the user pays,
// the friend now owes their share (+friendExpense). When the friend pays,
// the user now owes their own share (-userExpense).
// Returns false when the bill or the user's share is missing.
func (s *SplitBill) Delta() (float64, bool) {
	if s.Bill.IsZero() || s.UserExpense.IsZero() {
		return 0, false
	}
	if s.WhoPays == PayerUser {
		return s.FriendExpense().Value, true
	}
	return -s.UserExpense.Value, true
}
