package manabase

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/bakert/manabase/internal/solver"
)

// Solve builds the mixed-integer model for deck against the given
// candidate lands and weights, solves it, and returns the resulting
// Solution, or nil if no assignment satisfies every constraint (spec
// §4.3, §7). forcedLands pins count[L] = v for every Land.Name present in
// the map, before solving; it may be nil.
func Solve(deck Deck, weights Weights, lands []Land, forcedLands map[string]int) (*Solution, error) {
	if len(lands) == 0 {
		return nil, fmt.Errorf("manabase: no candidate lands supplied")
	}
	// Candidates that produce none of the deck's colors leave every colored
	// requirement unmet: an infeasible deck, reported as nil like any other.
	if len(deck.Colors()) > 0 && len(viableLands(deck.Colors(), lands)) == 0 {
		return nil, nil
	}

	bm, err := buildModel(deck, lands, weights, forcedLands)
	if err != nil {
		return nil, err
	}

	result, err := solver.Solve(bm.problem)
	if err != nil {
		return nil, fmt.Errorf("manabase: solve failed: %w", err)
	}
	if result.Status != solver.Optimal {
		return nil, nil
	}

	value := func(v solver.Var) float64 { return float64(result.Values[v]) }

	solution := &Solution{
		Lands:               map[string]int{},
		TotalLands:          result.Values[bm.totalLands],
		MinLands:            result.Values[bm.minLands],
		ManaSpend:           result.Values[bm.manaSpend],
		MaxManaSpend:        result.Values[bm.maxManaSpend],
		Pain:                result.Values[bm.pain],
		TotalColoredSources: result.Values[bm.totalColoredSources],
		Objective:           result.Values[bm.objective],
		SolveID:             uuid.New(),
		SolvedAt:            time.Now(),
	}

	for _, l := range bm.lands {
		if count := result.Values[bm.model.count(l)]; count > 0 {
			solution.Lands[l.Name] = count
		}
	}

	for _, entry := range bm.sourceReport {
		var providing []string
		provided := map[string]int{}
		for _, contrib := range entry.contributions {
			if n := int(math.Round(contrib.expr.Eval(value))); n > 0 {
				line := fmt.Sprintf("%d %s", n, contrib.name)
				providing = append(providing, line)
				provided[line] = n
			}
		}
		sort.Slice(providing, func(i, j int) bool {
			if provided[providing[i]] != provided[providing[j]] {
				return provided[providing[i]] > provided[providing[j]]
			}
			return providing[i] < providing[j]
		})
		solution.Sources = append(solution.Sources, SourceReport{
			Turn:      entry.turn,
			Resource:  entry.resource,
			Required:  entry.required,
			Sources:   result.Values[entry.variable],
			Providing: providing,
		})
	}

	return solution, nil
}
