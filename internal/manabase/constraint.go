package manabase

import "fmt"

// Constraint is a single spell's casting requirement: a ManaCost that must
// be castable by a given turn. If Turn is left at zero when constructing
// directly, use NewConstraint, which defaults it to the cost's mana value —
// the common case of "you want to cast this on curve".
type Constraint struct {
	Required ManaCost
	Turn     int
}

// NewConstraint builds a Constraint, defaulting turn to the cost's mana
// value when turn <= 0.
func NewConstraint(required ManaCost, turn int) Constraint {
	if turn <= 0 {
		turn = required.ManaValue()
	}
	return Constraint{Required: required, Turn: turn}
}

func (c Constraint) String() string {
	return fmt.Sprintf("T%d %s", c.Turn, c.Required)
}

// ColorCombinations is the set of color combinations this constraint needs
// source counts for: every non-empty sub-multiset of its colored pips.
func (c Constraint) ColorCombinations() []ColorCombination {
	return c.Required.ColorCombinations()
}

// GenericOK reports whether the cost has at least one generic pip, which
// widens which lands are admissible for the untapped-land-drop requirement
// (spec §4.2 step 4: "all lands if the cost has any generic pip").
func (c Constraint) GenericOK() bool {
	return c.Required.HasGeneric()
}
