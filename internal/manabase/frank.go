package manabase

import "fmt"

// UnsatisfiableConstraint is raised by the Frank lookup when a
// (pip-count, turn) pair has no published entry. Callers inside this
// package catch it and substitute a pessimistic fallback (need_untapped,
// num_lands); it should never escape Solve in normal operation (spec §7).
type UnsatisfiableConstraint struct {
	Pips int
	Turn int
}

func (e *UnsatisfiableConstraint) Error() string {
	return fmt.Sprintf("manabase: no Frank table entry for %d pip(s) on turn %d", e.Pips, e.Turn)
}

// frankKey is the (pip count, turn) lookup key into the Frank table.
type frankKey struct {
	pips int
	turn int
}

// frankTable is the published Karsten/Frank source-count table: for N
// colored pips of the same color needed by a given turn, how many sources
// of that color a deck of a given size should run. Values are preserved
// bit-for-bit from the published numbers (spec §6) — never "simplify" or
// round these.
var frankTable = map[frankKey]map[int]int{
	{1, 1}: {60: 14, 80: 19, 99: 19, 40: 9},  // C Monastery Swiftspear
	{1, 2}: {60: 13, 80: 18, 99: 19, 40: 9},  // 1C Ledger Shredder
	{2, 2}: {60: 21, 80: 28, 99: 30, 40: 14}, // CC Lord of Atlantis
	{1, 3}: {60: 12, 80: 16, 99: 18, 40: 8},  // 2C Reckless Stormseeker
	{2, 3}: {60: 18, 80: 25, 99: 28, 40: 12}, // 1CC Narset, Parter of Veils
	{3, 3}: {60: 23, 80: 32, 99: 36, 40: 16}, // CCC Goblin Chainwhirler
	{1, 4}: {60: 10, 80: 15, 99: 16, 40: 7},  // 3C Collected Company
	{2, 4}: {60: 16, 80: 23, 99: 26, 40: 11}, // 2CC Wrath of God
	{3, 4}: {60: 21, 80: 29, 99: 33, 40: 14}, // 1CCC Cryptic Command
	{4, 4}: {60: 24, 80: 34, 99: 39, 40: 17}, // CCCC Dawn Elemental
	{1, 5}: {60: 9, 80: 14, 99: 15, 40: 6},   // 4C Doubling Season
	{2, 5}: {60: 15, 80: 20, 99: 23, 40: 10}, // 3CC Baneslayer Angel
	{3, 5}: {60: 19, 80: 26, 99: 30, 40: 13}, // 2CCC Garruk, Primal Hunter
	{4, 5}: {60: 22, 80: 31, 99: 36, 40: 15}, // 1CCCC Unnatural Growth
	{1, 6}: {60: 9, 80: 12, 99: 14, 40: 6},   // 5C Drowner of Hope
	{2, 6}: {60: 13, 80: 19, 99: 22, 40: 9},  // 4CC Primeval Titan
	{3, 6}: {60: 16, 80: 22, 99: 26, 40: 10}, // 3CCC Massacre Wurm
	{2, 7}: {60: 12, 80: 17, 99: 20, 40: 8},  // 5CC Hullbreaker Horror
	{3, 7}: {60: 16, 80: 22, 99: 26, 40: 10}, // 4CCC Nyxbloom Ancient
}

// frank computes, for every color combination the constraint's colored
// pips imply, the required source count at the given deck size. The table
// is keyed by how many pips the *combination itself* carries, not by any
// single color's count in the full cost — a combination of 2 differently
// colored pips (e.g. {R, B} drawn from a {R,R,B} cost) needs exactly the
// same source count as 2 pips of the same color (spec §8 example 6). It
// raises UnsatisfiableConstraint for any combination outside the published
// table.
func frank(c Constraint, deckSize int) (map[ColorCombination]int, error) {
	results := map[ColorCombination]int{}
	for _, cc := range c.ColorCombinations() {
		entry, ok := frankTable[frankKey{cc.Size(), c.Turn}][deckSize]
		if !ok {
			return nil, &UnsatisfiableConstraint{Pips: cc.Size(), Turn: c.Turn}
		}
		results[cc] = entry
	}
	return results, nil
}

// needUntapped returns how many lands must be in play untapped by the
// given turn to reliably hit a land drop that turn, falling back to the
// turn-6 figure for turns beyond the table's coverage (spec §4.4).
func needUntapped(turn int) int {
	c := NewConstraint(NewManaCost(ColorPip(Colorless)), turn)
	result, err := frank(c, 60)
	if err != nil {
		c = NewConstraint(NewManaCost(ColorPip(Colorless)), 6)
		result, _ = frank(c, 60) // the (1,6) entry always exists; err is unreachable here
	}
	return result[NewColorCombination(Colorless)]
}

// numLands returns the recommended total land count for casting a spell of
// the given mana value on the given turn, falling back to the (4,4) entry
// on overflow (turn > 7 or mana value > 4), per spec §4.4.
func numLands(manaValue, turn int) int {
	pips := make([]Pip, manaValue)
	whites := make([]Color, manaValue)
	for i := range pips {
		pips[i] = ColorPip(White)
		whites[i] = White
	}
	c := NewConstraint(NewManaCost(pips...), turn)
	result, err := frank(c, 60)
	cc := NewColorCombination(whites...)
	if err != nil {
		fallback := NewConstraint(NewManaCost(ColorPip(White), ColorPip(White), ColorPip(White), ColorPip(White)), 4)
		result, _ = frank(fallback, 60) // the (4,4) entry always exists
		cc = NewColorCombination(White, White, White, White)
	}
	return result[cc]
}

// numLandsRequired is the recommended total land count for a constraint's
// own mana value and turn (spec §4.2 step 5).
func numLandsRequired(c Constraint) int {
	return numLands(c.Required.ManaValue(), c.Turn)
}
