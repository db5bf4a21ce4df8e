package manabase

import (
	"strconv"
	"strings"
)

// Pip is a single mana symbol in a ManaCost: either a specific Color or a
// generic integer ("any N mana"). Exactly one of the two is meaningful,
// selected by IsGeneric.
type Pip struct {
	Color    Color
	Generic  int
	isGeneric bool
}

// ColorPip makes a colored pip.
func ColorPip(c Color) Pip { return Pip{Color: c} }

// GenericPip makes a generic pip worth n mana.
func GenericPip(n int) Pip { return Pip{Generic: n, isGeneric: true} }

// IsGeneric reports whether the pip is a generic (non-colored) pip.
func (p Pip) IsGeneric() bool { return p.isGeneric }

func (p Pip) String() string {
	if p.isGeneric {
		return strconv.Itoa(p.Generic)
	}
	return p.Color.String()
}

// ManaCost is an ordered sequence of pips, exactly as printed on a card,
// e.g. {2}{W}{W} is ManaCost{pips: [2, W, W]}.
type ManaCost struct {
	pips []Pip
}

// NewManaCost builds a ManaCost from pips in printed order.
func NewManaCost(pips ...Pip) ManaCost {
	cp := make([]Pip, len(pips))
	copy(cp, pips)
	return ManaCost{pips: cp}
}

// ManaValue is the total mana value: 1 per colored pip, plus the value of
// every generic pip.
func (mc ManaCost) ManaValue() int {
	total := 0
	for _, p := range mc.pips {
		if p.isGeneric {
			total += p.Generic
		} else {
			total++
		}
	}
	return total
}

// ColoredPips is the sequence of colored pips only, generic pips removed,
// order preserved.
func (mc ManaCost) ColoredPips() []Color {
	var out []Color
	for _, p := range mc.pips {
		if !p.isGeneric {
			out = append(out, p.Color)
		}
	}
	return out
}

// HasGeneric reports whether the cost has at least one generic pip.
func (mc ManaCost) HasGeneric() bool {
	for _, p := range mc.pips {
		if p.isGeneric {
			return true
		}
	}
	return false
}

// Pips returns the raw pip sequence, in printed order.
func (mc ManaCost) Pips() []Pip {
	out := make([]Pip, len(mc.pips))
	copy(out, mc.pips)
	return out
}

func (mc ManaCost) String() string {
	var b strings.Builder
	for _, p := range mc.pips {
		b.WriteString(p.String())
	}
	return b.String()
}

// ColorCombinations returns the non-empty sub-multisets of mc's colored
// pips — the set of color combinations a Constraint built from this cost
// needs sources for (spec §3).
func (mc ManaCost) ColorCombinations() []ColorCombination {
	return nonEmptySubMultisets(mc.ColoredPips())
}
