// Package form holds the input state of the add-friend and split-bill forms,
// independent of how the forms are drawn.
package form

import (
	"math"
	"strconv"
	"strings"

	"splitbill/internal/friend"
)

// Amount is a numeric form value that may be empty.
type Amount struct {
	Value float64
	Set   bool
}

// Empty is the amount of a blank or unparseable field.
var Empty = Amount{}

// AmountOf returns a set amount holding v.
func AmountOf(v float64) Amount {
	return Amount{Value: v, Set: true}
}

// ParseAmount converts raw field text into an Amount. Blank text and text
// that is not a finite number both yield Empty. A decimal comma is accepted.
func ParseAmount(raw string) Amount {
	s := strings.TrimSpace(raw)
	if s == "" {
		return Empty
	}
	s = strings.ReplaceAll(s, ",", ".")
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return Empty
	}
	return AmountOf(v)
}

// IsZero reports whether a is empty or zero. Forms treat both as missing.
func (a Amount) IsZero() bool {
	return !a.Set || a.Value == 0
}

// String renders the amount for a field, "" when empty.
func (a Amount) String() string {
	if !a.Set {
		return ""
	}
	return friend.FormatAmount(a.Value)
}
