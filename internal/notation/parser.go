// Package notation parses the shorthand mana-cost strings used throughout
// deck lists and test fixtures, e.g. "2WW" for {2}{W}{W}, into the value
// types internal/manabase solves against. It is an external collaborator
// to the core model (manabase spec §6): nothing in internal/manabase
// depends on this package.
package notation

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/bakert/manabase/internal/manabase"
)

var costPattern = regexp.MustCompile(`^(\d*)([WUBRGC]*)$`)

// ParseCost parses a shorthand cost string: an optional leading generic
// number followed by zero or more colored pip letters (W, U, B, R, G, C),
// e.g. "2WW", "1UB", "C", "WW".
func ParseCost(s string) (manabase.ManaCost, error) {
	match := costPattern.FindStringSubmatch(s)
	if match == nil || (match[1] == "" && match[2] == "") {
		return manabase.ManaCost{}, fmt.Errorf("notation: %q is not a valid shorthand cost", s)
	}

	var pips []manabase.Pip
	if match[1] != "" {
		generic, err := strconv.Atoi(match[1])
		if err != nil {
			return manabase.ManaCost{}, fmt.Errorf("notation: %q has an invalid generic amount: %w", s, err)
		}
		pips = append(pips, manabase.GenericPip(generic))
	}
	for _, letter := range match[2] {
		color, ok := manabase.ColorByCode(string(letter))
		if !ok {
			return manabase.ManaCost{}, fmt.Errorf("notation: %q contains an unrecognized color %q", s, letter)
		}
		pips = append(pips, manabase.ColorPip(color))
	}

	return manabase.NewManaCost(pips...), nil
}

// ParseConstraint parses a shorthand cost string into a Constraint due on
// the given turn. A turn of 0 or less defaults to the cost's mana value,
// matching manabase.NewConstraint.
func ParseConstraint(s string, turn int) (manabase.Constraint, error) {
	cost, err := ParseCost(s)
	if err != nil {
		return manabase.Constraint{}, err
	}
	return manabase.NewConstraint(cost, turn), nil
}

// ParseConstraintLine parses "<cost>" or "<cost>@<turn>", e.g. "1WW@3" for
// {1}{W}{W} due on turn 3, or plain "W" which defaults its turn to the
// cost's mana value.
func ParseConstraintLine(line string) (manabase.Constraint, error) {
	cost, turnPart, hasTurn := strings.Cut(line, "@")
	turn := 0
	if hasTurn {
		parsed, err := strconv.Atoi(turnPart)
		if err != nil {
			return manabase.Constraint{}, fmt.Errorf("notation: %q has an invalid turn: %w", line, err)
		}
		turn = parsed
	}
	return ParseConstraint(cost, turn)
}
