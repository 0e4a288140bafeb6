// Package friend holds the friend registry and the single-friend selection
// used by the split-bill controller.
package friend

import (
	"fmt"
	"math"
	"strconv"

	"github.com/google/uuid"
)

// ID identifies a friend for the lifetime of the registry.
type ID string

// Friend is one entry of the registry.
// Balance: negative = the user owes the friend, positive = the friend owes
// the user, zero = settled.
type Friend struct {
	ID      ID
	Name    string
	Image   string
	Balance float64
}

// Standing classifies a balance for display.
type Standing int

const (
	StandingSettled Standing = iota
	StandingOwe              // user owes the friend
	StandingOwed             // friend owes the user
)

func (s Standing) String() string {
	switch s {
	case StandingSettled:
		return "settled"
	case StandingOwe:
		return "owe"
	case StandingOwed:
		return "owed"
	default:
		return "unknown"
	}
}

// Standing returns which of the three balance modes f is in.
func (f Friend) Standing() Standing {
	switch {
	case f.Balance < 0:
		return StandingOwe
	case f.Balance > 0:
		return StandingOwed
	default:
		return StandingSettled
	}
}

// BalanceMessage renders the balance line shown under a friend's name.
func BalanceMessage(f Friend) string {
	switch f.Standing() {
	case StandingOwe:
		return fmt.Sprintf("Le debes $%s a %s", FormatAmount(math.Abs(f.Balance)), f.Name)
	case StandingOwed:
		return fmt.Sprintf("%s te debe $%s", f.Name, FormatAmount(math.Abs(f.Balance)))
	default:
		return fmt.Sprintf("Tú y %s están a mano", f.Name)
	}
}

// FormatAmount formats v with the shortest decimal representation ("7", "12.5").
func FormatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// IDGenerator produces identifiers for new friends.
type IDGenerator func() ID

// NewUUID is the default IDGenerator: a random v4 UUID string.
func NewUUID() ID {
	return ID(uuid.NewString())
}
