package manabase

import "strings"

// Kind tags which of the land archetypes in spec §4.1 a Land belongs to.
// Each kind has its own untapped-entry rule and its own source-contribution
// rule; Model dispatches on Kind rather than through an interface so that
// catalog data (name, produces, typeline, ...) stays plain data shared by
// every kind (spec §9: "shared data lives in a common struct").
type Kind int

const (
	Basic Kind = iota
	Tapland
	Check
	Snarl
	Filter
	Pain
	Tango
	Bicycle
	RiverOfTearsLike
)

func (k Kind) String() string {
	switch k {
	case Basic:
		return "Basic"
	case Tapland:
		return "Tapland"
	case Check:
		return "Check"
	case Snarl:
		return "Snarl"
	case Filter:
		return "Filter"
	case Pain:
		return "Pain"
	case Tango:
		return "Tango"
	case Bicycle:
		return "Bicycle"
	case RiverOfTearsLike:
		return "RiverOfTearsLike"
	default:
		return "Unknown"
	}
}

// KindByName looks up a Kind by the name its String method returns, the
// inverse lookup store.CatalogOverrides needs to rehydrate a Kind out of a
// database column.
func KindByName(name string) (k Kind, ok bool) {
	for _, candidate := range []Kind{Basic, Tapland, Check, Snarl, Filter, Pain, Tango, Bicycle, RiverOfTearsLike} {
		if candidate.String() == name {
			return candidate, true
		}
	}
	return Kind(0), false
}

const maxDeckSize = 100

// Land is an immutable catalog entry. Two Lands are the same card iff
// their Name matches; Name is therefore what Model and Solution key on.
type Land struct {
	Name     string
	Typeline string
	Produces []Color
	Painful  bool
	Kind     Kind

	basicLandTypes []BasicLandType
}

// NewLand builds a Land and precomputes its basic land types from the
// typeline.
func NewLand(name, typeline string, produces []Color, kind Kind, painful bool) Land {
	l := Land{Name: name, Typeline: typeline, Produces: produces, Painful: painful, Kind: kind}
	for _, t := range AllBasicLandTypes {
		if strings.Contains(typeline, t.Name) {
			l.basicLandTypes = append(l.basicLandTypes, t)
		}
	}
	return l
}

// MaxCopies is the per-copy cap: unlimited (capped at the deck-size
// ceiling) for basic lands, 4 for everything else — the same rule every
// non-basic land in Magic's templating follows unless a card's own text
// overrides it, which this catalog does not model (spec §3).
func (l Land) MaxCopies() int {
	if strings.HasPrefix(l.Typeline, "Basic Land") {
		return maxDeckSize
	}
	return 4
}

// BasicLandTypes are the basic types (Plains, Island, ...) mentioned in
// the typeline.
func (l Land) BasicLandTypes() []BasicLandType {
	out := make([]BasicLandType, len(l.basicLandTypes))
	copy(out, l.basicLandTypes)
	return out
}

// CanProduce reports whether the land can ever tap for c.
func (l Land) CanProduce(c Color) bool {
	for _, p := range l.Produces {
		if p == c {
			return true
		}
	}
	return false
}

// CanProduceAny reports whether the land can produce at least one color in
// cc.
func (l Land) CanProduceAny(cc ColorCombination) bool {
	for _, c := range cc.Colors() {
		if l.CanProduce(c) {
			return true
		}
	}
	return false
}

// HasAnyBasicLandType reports whether l shares at least one basic land
// type with needed — the predicate Check and Snarl lands use to find the
// lands that "count towards" their own conditional untapped trigger
// (spec §4.1).
func (l Land) HasAnyBasicLandType(needed []BasicLandType) bool {
	for _, n := range needed {
		for _, t := range l.basicLandTypes {
			if t == n {
				return true
			}
		}
	}
	return false
}

// basicLandTypesNeeded is the set of basic land types whose color the land
// itself produces — the types a Check/Snarl land "cares about" (spec
// §4.1: BasicTypeCaring).
func (l Land) basicLandTypesNeeded() []BasicLandType {
	var out []BasicLandType
	for _, t := range AllBasicLandTypes {
		if l.CanProduce(t.Produces) {
			out = append(out, t)
		}
	}
	return out
}
