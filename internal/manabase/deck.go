package manabase

import (
	"fmt"
	"sort"
)

// validDeckSizes are the deck sizes the Frank table publishes numbers for.
var validDeckSizes = map[int]bool{40: true, 60: true, 80: true, 99: true}

// Deck is a set of casting requirements plus the deck size they live in.
type Deck struct {
	Constraints []Constraint
	DeckSize    int
}

// NewDeck validates and builds a Deck. It fails fast on the caller errors
// spec §7 calls out: no constraints, an unsupported deck size, or any
// constraint with turn < 1.
func NewDeck(constraints []Constraint, deckSize int) (Deck, error) {
	if len(constraints) == 0 {
		return Deck{}, fmt.Errorf("manabase: deck has no constraints")
	}
	if !validDeckSizes[deckSize] {
		return Deck{}, fmt.Errorf("manabase: unsupported deck size %d (want one of 40, 60, 80, 99)", deckSize)
	}
	for _, c := range constraints {
		if c.Turn < 1 {
			return Deck{}, fmt.Errorf("manabase: constraint %s has turn < 1", c)
		}
	}
	cp := make([]Constraint, len(constraints))
	copy(cp, constraints)
	return Deck{Constraints: cp, DeckSize: deckSize}, nil
}

// Colors is the union of colored pips across every constraint in the deck,
// in canonical color order.
func (d Deck) Colors() []Color {
	seen := map[Color]bool{}
	for _, c := range d.Constraints {
		for _, col := range c.Required.ColoredPips() {
			seen[col] = true
		}
	}
	var out []Color
	for _, c := range colorOrder {
		if seen[c] {
			out = append(out, c)
		}
	}
	return out
}

// MaxTurn is the latest turn any constraint in the deck cares about.
func (d Deck) MaxTurn() int {
	max := 0
	for _, c := range d.Constraints {
		if c.Turn > max {
			max = c.Turn
		}
	}
	return max
}

// sortedConstraints returns the deck's constraints in a deterministic
// order, so model construction (and therefore variable naming) is
// reproducible across runs — needed for the "deterministic optimum"
// property in spec §8.
func (d Deck) sortedConstraints() []Constraint {
	cp := make([]Constraint, len(d.Constraints))
	copy(cp, d.Constraints)
	sort.Slice(cp, func(i, j int) bool {
		if cp[i].Turn != cp[j].Turn {
			return cp[i].Turn < cp[j].Turn
		}
		return cp[i].Required.String() < cp[j].Required.String()
	})
	return cp
}
