package friend

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_AddAppendsAtEnd(t *testing.T) {
	r := NewRegistry(Seed()...)
	before := r.Friends()

	r.Add(Friend{ID: "new", Name: "Lucía"})

	got := r.Friends()
	require.Len(t, got, len(before)+1)
	assert.Equal(t, before, got[:len(before)], "existing entries must not change or reorder")
	assert.Equal(t, ID("new"), got[len(got)-1].ID)
}

func TestRegistry_AddDoesNotCheckDuplicates(t *testing.T) {
	r := NewRegistry(Seed()...)
	r.Add(Friend{ID: "118836", Name: "Otro Juan"})
	assert.Equal(t, 4, r.Len())
}

func TestRegistry_UpdateBalance(t *testing.T) {
	r := NewRegistry(Seed()...)

	ok := r.UpdateBalance("933372", 30)
	require.True(t, ok)

	got := r.Friends()
	assert.Equal(t, -7.0, got[0].Balance)
	assert.Equal(t, 50.0, got[1].Balance)
	assert.Equal(t, 0.0, got[2].Balance)
	assert.Equal(t, []ID{"118836", "933372", "499476"}, ids(got))
}

func TestRegistry_UpdateBalanceUnknownID(t *testing.T) {
	r := NewRegistry(Seed()...)
	before := r.Friends()

	assert.False(t, r.UpdateBalance("missing", 10))
	assert.Equal(t, before, r.Friends())
}

func TestRegistry_FriendsIsACopy(t *testing.T) {
	r := NewRegistry(Seed()...)
	got := r.Friends()
	got[0].Balance = 1000

	f, ok := r.Get("118836")
	require.True(t, ok)
	assert.Equal(t, -7.0, f.Balance)
}

func TestNewRegistry_CopiesInput(t *testing.T) {
	seed := Seed()
	r := NewRegistry(seed...)
	seed[1].Name = "changed"

	f, _ := r.Get("933372")
	assert.Equal(t, "Sara", f.Name)
}

func TestBalanceMessage(t *testing.T) {
	tests := []struct {
		name     string
		friend   Friend
		want     string
		standing Standing
	}{
		{"owe", Friend{Name: "Juan", Balance: -7}, "Le debes $7 a Juan", StandingOwe},
		{"owed", Friend{Name: "Sara", Balance: 20}, "Sara te debe $20", StandingOwed},
		{"settled", Friend{Name: "Anthony"}, "Tú y Anthony están a mano", StandingSettled},
		{"fractional", Friend{Name: "Ana", Balance: 12.5}, "Ana te debe $12.5", StandingOwed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, BalanceMessage(tt.friend))
			assert.Equal(t, tt.standing, tt.friend.Standing())
		})
	}
}

func TestNewUUID_Unique(t *testing.T) {
	seen := make(map[ID]bool)
	for range 100 {
		id := NewUUID()
		require.NotEmpty(t, id)
		require.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
	}
}

func ids(fs []Friend) []ID {
	out := make([]ID, len(fs))
	for i, f := range fs {
		out[i] = f.ID
	}
	return out
}
