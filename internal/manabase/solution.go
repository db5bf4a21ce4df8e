package manabase

import (
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
)

// SourceReport is one reportable (turn, resource) slot: how many sources
// were required, how many the solve produced, and which lands (and how
// many copies of each) account for that total.
type SourceReport struct {
	Turn      int
	Resource  string // a ColorCombination's String(), or "UNTAPPED"
	Required  int
	Sources   int
	Providing []string // "n Land Name", highest count first
}

// Solution is the frozen result of a successful solve (spec §4.3). It is
// never mutated after Solve returns it.
type Solution struct {
	Lands map[string]int // only positive counts, keyed by Land.Name

	TotalLands          int
	MinLands            int
	ManaSpend           int
	MaxManaSpend        int
	Pain                int
	TotalColoredSources int
	Objective           int

	Sources []SourceReport

	// SolveID and SolvedAt identify this particular solve for logging,
	// persistence, and live-progress correlation; they carry no bearing
	// on the optimization itself.
	SolveID  uuid.UUID
	SolvedAt time.Time
}

// String renders a short human-readable summary, land counts descending.
func (s *Solution) String() string {
	type lc struct {
		name  string
		count int
	}
	var lands []lc
	for name, count := range s.Lands {
		lands = append(lands, lc{name, count})
	}
	sort.Slice(lands, func(i, j int) bool {
		if lands[i].count != lands[j].count {
			return lands[i].count > lands[j].count
		}
		return lands[i].name < lands[j].name
	})

	out := fmt.Sprintf("%d lands (objective %d, mana_spend %d/%d, pain %d):\n",
		s.TotalLands, s.Objective, s.ManaSpend, s.MaxManaSpend, s.Pain)
	for _, l := range lands {
		out += fmt.Sprintf("  %d %s\n", l.count, l.name)
	}
	return out
}
