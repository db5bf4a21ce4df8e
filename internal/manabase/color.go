// Package manabase implements the manabase optimizer: it turns a deck's
// casting requirements into a mixed-integer model over candidate lands and
// solves it for the land counts that best satisfy the published Frank
// source-count table while maximizing playability.
package manabase

import "sort"

// Color is one of the five colors plus colorless. Values are ordered
// W < U < B < R < G < C, matching the order cards are conventionally
// printed and discussed in.
type Color struct {
	code string
	name string
}

func (c Color) String() string { return c.code }

// Name is the full color name, e.g. "White".
func (c Color) Name() string { return c.name }

var (
	White     = Color{"W", "White"}
	Blue      = Color{"U", "Blue"}
	Black     = Color{"B", "Black"}
	Red       = Color{"R", "Red"}
	Green     = Color{"G", "Green"}
	Colorless = Color{"C", "Colorless"}
)

// colorOrder fixes W < U < B < R < G < C for deterministic iteration and
// sorting; map iteration order in Go is randomized, so anywhere we need a
// stable traversal of "all colors" we go through this slice instead.
var colorOrder = []Color{White, Blue, Black, Red, Green, Colorless}

// AllColors returns the six colors in their canonical order.
func AllColors() []Color {
	out := make([]Color, len(colorOrder))
	copy(out, colorOrder)
	return out
}

func colorIndex(c Color) int {
	for i, o := range colorOrder {
		if o == c {
			return i
		}
	}
	return len(colorOrder)
}

// ColorByCode looks up a Color by its single-letter code (case sensitive:
// "W", "U", "B", "R", "G", "C"). ok is false for any other input.
func ColorByCode(code string) (c Color, ok bool) {
	for _, o := range colorOrder {
		if o.code == code {
			return o, true
		}
	}
	return Color{}, false
}

// BasicLandType names one of the five basic land types and the color it
// produces. It exists separately from Color because a land's typeline can
// carry basic types (Plains, Island, ...) that matter for Check and Snarl
// lands independent of what colors the land actually produces.
type BasicLandType struct {
	Name     string
	Produces Color
}

func (t BasicLandType) String() string { return t.Name + " Type" }

var (
	PlainsType   = BasicLandType{"Plains", White}
	IslandType   = BasicLandType{"Island", Blue}
	SwampType    = BasicLandType{"Swamp", Black}
	MountainType = BasicLandType{"Mountain", Red}
	ForestType   = BasicLandType{"Forest", Green}
)

// AllBasicLandTypes is the five basic land types, in the same order as
// AllColors.
var AllBasicLandTypes = []BasicLandType{PlainsType, IslandType, SwampType, MountainType, ForestType}

// ColorCombination is a *multiset* of colors, e.g. {R, R, B}. Two
// combinations are equal iff their per-color counts match; insertion order
// never matters. It is the unit a constraint's source-count requirement is
// checked against (spec §3, §4.4).
type ColorCombination struct {
	counts [len(colorOrder)]int
}

// NewColorCombination builds a combination from a list of colors,
// duplicates included.
func NewColorCombination(colors ...Color) ColorCombination {
	var cc ColorCombination
	for _, c := range colors {
		cc.counts[colorIndex(c)]++
	}
	return cc
}

// Count returns how many times c appears in the combination.
func (cc ColorCombination) Count(c Color) int { return cc.counts[colorIndex(c)] }

// Size is the total number of colored pips in the combination.
func (cc ColorCombination) Size() int {
	total := 0
	for _, n := range cc.counts {
		total += n
	}
	return total
}

// Colors returns the distinct colors present, in canonical order.
func (cc ColorCombination) Colors() []Color {
	var out []Color
	for i, n := range cc.counts {
		if n > 0 {
			out = append(out, colorOrder[i])
		}
	}
	return out
}

// Contains reports whether cc has at least n copies of c (n defaults to 1
// via ContainsColor for the common case).
func (cc ColorCombination) Contains(c Color, n int) bool { return cc.Count(c) >= n }

// ContainsColor reports whether cc has at least one copy of c.
func (cc ColorCombination) ContainsColor(c Color) bool { return cc.Count(c) > 0 }

// String renders the combination as its colors repeated by count, in
// canonical color order, e.g. "BRR" for {R, R, B}.
func (cc ColorCombination) String() string {
	var out []byte
	for i, n := range cc.counts {
		for k := 0; k < n; k++ {
			out = append(out, colorOrder[i].code...)
		}
	}
	if len(out) == 0 {
		return "-"
	}
	return string(out)
}

// powersetKey turns a ColorCombination into a value usable as a map key
// alongside other ColorCombinations (the struct is already comparable, this
// just documents the intent at call sites).
type powersetKey = ColorCombination

// nonEmptySubMultisets returns every non-empty sub-multiset of colored,
// deduplicated, sorted by size and then by String. For {R, R, B} it returns
// {B}, {R}, {B,R}, {R,R}, {B,R,R}, matching spec §3's example.
func nonEmptySubMultisets(colored []Color) []ColorCombination {
	counts := map[Color]int{}
	order := []Color{}
	for _, c := range colored {
		if counts[c] == 0 {
			order = append(order, c)
		}
		counts[c]++
	}
	sort.Slice(order, func(i, j int) bool { return colorIndex(order[i]) < colorIndex(order[j]) })

	seen := map[powersetKey]bool{}
	var results []ColorCombination

	// Enumerate every combination of per-color take-counts (0..counts[c])
	// and skip the all-zero case.
	maxima := make([]int, len(order))
	for i, c := range order {
		maxima[i] = counts[c]
	}
	choice := make([]int, len(order))
	var recurse func(idx int)
	recurse = func(idx int) {
		if idx == len(order) {
			total := 0
			for _, n := range choice {
				total += n
			}
			if total == 0 {
				return
			}
			var colors []Color
			for i, n := range choice {
				for k := 0; k < n; k++ {
					colors = append(colors, order[i])
				}
			}
			cc := NewColorCombination(colors...)
			if !seen[cc] {
				seen[cc] = true
				results = append(results, cc)
			}
			return
		}
		for take := 0; take <= maxima[idx]; take++ {
			choice[idx] = take
			recurse(idx + 1)
		}
		choice[idx] = 0
	}
	recurse(0)

	sort.Slice(results, func(i, j int) bool {
		if results[i].Size() != results[j].Size() {
			return results[i].Size() < results[j].Size()
		}
		return results[i].String() < results[j].String()
	})
	return results
}
