package manabase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bakert/manabase/internal/catalog"
	"github.com/bakert/manabase/internal/notation"
)

func mustDeck(t *testing.T, constraints []Constraint, deckSize int) Deck {
	t.Helper()
	deck, err := NewDeck(constraints, deckSize)
	require.NoError(t, err)
	return deck
}

// TestSolveMonoWhite is spec §8 scenario 1: a single on-curve white
// requirement against a three-land candidate pool where only Plains can
// help, settles on exactly the Frank-table minimum, no filler.
func TestSolveMonoWhite(t *testing.T) {
	deck := mustDeck(t, []Constraint{NewConstraint(NewManaCost(ColorPip(White)), 1)}, 60)
	candidates := []Land{
		NewLand("Plains", "Basic Land - Plains", []Color{White}, Basic, false),
		NewLand("Island", "Basic Land - Island", []Color{Blue}, Basic, false),
		NewLand("Mystic Gate", "Land", []Color{White, Blue}, Filter, false),
	}

	solution, err := Solve(deck, DefaultWeights, candidates, nil)
	require.NoError(t, err)
	require.NotNil(t, solution)

	assert.Equal(t, 14, solution.Lands["Plains"])
	assert.Zero(t, solution.Lands["Island"])
	assert.Zero(t, solution.Lands["Mystic Gate"])
	assert.Equal(t, 14, solution.TotalLands)
}

// TestSolveLightVsIntensePrairieStream is spec §8 scenario 4: a tango land
// only earns its slot once the deck actually wants double pips on turn 2;
// a light single-pip curve has no use for it.
func TestSolveLightVsIntensePrairieStream(t *testing.T) {
	candidates := []Land{
		NewLand("Plains", "Basic Land - Plains", []Color{White}, Basic, false),
		NewLand("Island", "Basic Land - Island", []Color{Blue}, Basic, false),
		NewLand("Prairie Stream", "Land", []Color{White, Blue}, Tango, false),
	}

	intense := mustDeck(t, []Constraint{
		NewConstraint(NewManaCost(GenericPip(1), ColorPip(White)), 2),
		NewConstraint(NewManaCost(GenericPip(1), ColorPip(Blue)), 2),
	}, 60)
	solution, err := Solve(intense, DefaultWeights, candidates, nil)
	require.NoError(t, err)
	require.NotNil(t, solution)
	assert.Equal(t, 4, solution.Lands["Prairie Stream"])

	light := mustDeck(t, []Constraint{
		NewConstraint(NewManaCost(ColorPip(White)), 1),
		NewConstraint(NewManaCost(ColorPip(Blue)), 1),
	}, 60)
	solution, err = Solve(light, DefaultWeights, candidates, nil)
	require.NoError(t, err)
	require.NotNil(t, solution)
	assert.Zero(t, solution.Lands["Prairie Stream"])
}

func sampleDecksAndCandidates(t *testing.T) []struct {
	name       string
	deck       Deck
	candidates []Land
} {
	t.Helper()
	basics := []Land{
		NewLand("Plains", "Basic Land - Plains", []Color{White}, Basic, false),
		NewLand("Island", "Basic Land - Island", []Color{Blue}, Basic, false),
		NewLand("Swamp", "Basic Land - Swamp", []Color{Black}, Basic, false),
		NewLand("Mountain", "Basic Land - Mountain", []Color{Red}, Basic, false),
	}
	duals := []Land{
		NewLand("Mystic Gate", "Land", []Color{White, Blue}, Filter, false),
		NewLand("Isolated Chapel", "Land", []Color{White, Black}, Check, false),
		NewLand("Battlefield Forge", "Land", []Color{Red, White}, Pain, true),
		NewLand("Port Town", "Land", []Color{White, Blue}, Snarl, false),
	}
	candidates := append(append([]Land{}, basics...), duals...)

	return []struct {
		name       string
		deck       Deck
		candidates []Land
	}{
		{
			name: "mono white",
			deck: mustDeck(t, []Constraint{NewConstraint(NewManaCost(ColorPip(White)), 1)}, 60),
			candidates: candidates,
		},
		{
			name: "boros burn",
			deck: mustDeck(t, []Constraint{
				NewConstraint(NewManaCost(ColorPip(White)), 1),
				NewConstraint(NewManaCost(ColorPip(Red)), 1),
				NewConstraint(NewManaCost(ColorPip(White), ColorPip(Red)), 2),
			}, 60),
			candidates: candidates,
		},
		{
			name: "azorius taxes",
			deck: mustDeck(t, []Constraint{
				NewConstraint(NewManaCost(ColorPip(White)), 1),
				NewConstraint(NewManaCost(ColorPip(Blue), ColorPip(White)), 2),
				NewConstraint(NewManaCost(ColorPip(White), ColorPip(White)), 2),
				NewConstraint(NewManaCost(GenericPip(1), ColorPip(Blue), ColorPip(White)), 3),
			}, 60),
			candidates: candidates,
		},
	}
}

// TestSolveSourceSufficiency is spec §8's quantified invariant: every
// reported source total meets or exceeds its Frank-table requirement.
func TestSolveSourceSufficiency(t *testing.T) {
	for _, tc := range sampleDecksAndCandidates(t) {
		t.Run(tc.name, func(t *testing.T) {
			solution, err := Solve(tc.deck, DefaultWeights, tc.candidates, nil)
			require.NoError(t, err)
			require.NotNil(t, solution)
			for _, entry := range solution.Sources {
				assert.GreaterOrEqualf(t, entry.Sources, entry.Required,
					"turn %d resource %s: sources %d < required %d", entry.Turn, entry.Resource, entry.Sources, entry.Required)
			}
		})
	}
}

// TestSolveTotalLandsBound is spec §8's bound: min_lands <= total_lands <=
// deck_size.
func TestSolveTotalLandsBound(t *testing.T) {
	for _, tc := range sampleDecksAndCandidates(t) {
		t.Run(tc.name, func(t *testing.T) {
			solution, err := Solve(tc.deck, DefaultWeights, tc.candidates, nil)
			require.NoError(t, err)
			require.NotNil(t, solution)
			assert.LessOrEqual(t, solution.MinLands, solution.TotalLands)
			assert.LessOrEqual(t, solution.TotalLands, tc.deck.DeckSize)
		})
	}
}

// TestSolveMonotoneCounts is spec §8's bound on individual land counts.
func TestSolveMonotoneCounts(t *testing.T) {
	for _, tc := range sampleDecksAndCandidates(t) {
		t.Run(tc.name, func(t *testing.T) {
			solution, err := Solve(tc.deck, DefaultWeights, tc.candidates, nil)
			require.NoError(t, err)
			require.NotNil(t, solution)

			byName := map[string]Land{}
			for _, l := range tc.candidates {
				byName[l.Name] = l
			}
			for name, count := range solution.Lands {
				land := byName[name]
				assert.GreaterOrEqual(t, count, 0)
				assert.LessOrEqual(t, count, land.MaxCopies())
			}
		})
	}
}

// TestSolveDeterministicOptimum is spec §8's determinism property:
// identical inputs must yield identical objective values across repeated
// solves.
func TestSolveDeterministicOptimum(t *testing.T) {
	for _, tc := range sampleDecksAndCandidates(t) {
		t.Run(tc.name, func(t *testing.T) {
			first, err := Solve(tc.deck, DefaultWeights, tc.candidates, nil)
			require.NoError(t, err)
			second, err := Solve(tc.deck, DefaultWeights, tc.candidates, nil)
			require.NoError(t, err)
			require.NotNil(t, first)
			require.NotNil(t, second)
			assert.Equal(t, first.Objective, second.Objective)
		})
	}
}

// TestSolveForcedLandsHonored checks that a pinned count survives
// solving, even when it would not otherwise be chosen.
func TestSolveForcedLandsHonored(t *testing.T) {
	deck := mustDeck(t, []Constraint{NewConstraint(NewManaCost(ColorPip(White)), 1)}, 60)
	candidates := []Land{
		NewLand("Plains", "Basic Land - Plains", []Color{White}, Basic, false),
	}
	solution, err := Solve(deck, DefaultWeights, candidates, map[string]int{"Plains": 20})
	require.NoError(t, err)
	require.NotNil(t, solution)
	assert.Equal(t, 20, solution.Lands["Plains"])
}

// TestSolveInfeasibleReturnsNil is spec §7's infeasible-solve contract: no
// exception, a nil Solution.
func TestSolveInfeasibleReturnsNil(t *testing.T) {
	deck := mustDeck(t, []Constraint{NewConstraint(NewManaCost(ColorPip(White)), 1)}, 60)
	candidates := []Land{
		NewLand("Plains", "Basic Land - Plains", []Color{White}, Basic, false),
	}
	solution, err := Solve(deck, DefaultWeights, candidates, map[string]int{"Plains": 0})
	require.NoError(t, err)
	assert.Nil(t, solution)
}

// TestSolveNoCandidatesIsCallerError is spec §7: an empty candidate land
// set is a caller error, not an infeasible solve.
func TestSolveNoCandidatesIsCallerError(t *testing.T) {
	deck := mustDeck(t, []Constraint{NewConstraint(NewManaCost(ColorPip(White)), 1)}, 60)
	_, err := Solve(deck, DefaultWeights, nil, nil)
	assert.Error(t, err)
}

func mustConstraints(t *testing.T, lines ...string) []Constraint {
	t.Helper()
	constraints := make([]Constraint, 0, len(lines))
	for _, line := range lines {
		c, err := notation.ParseConstraintLine(line)
		require.NoErrorf(t, err, "parsing %q", line)
		constraints = append(constraints, c)
	}
	return constraints
}

// TestSolveAzoriusTaxesFullCatalog is spec §8 scenario 2, run against the
// real built-in catalog (not a hand-picked subset): the documented optimum
// uses exactly 10 Plains and 4 Port Town, for 23 lands total.
func TestSolveAzoriusTaxesFullCatalog(t *testing.T) {
	deck := mustDeck(t, mustConstraints(t, "W@1", "UW@2", "WW@2", "1UW@3"), 60)

	solution, err := Solve(deck, DefaultWeights, catalog.All(), nil)
	require.NoError(t, err)
	require.NotNil(t, solution)

	assert.Equal(t, 23, solution.TotalLands)
	assert.Equal(t, 4, solution.Lands["Port Town"])
	assert.Equal(t, 10, solution.Lands["Plains"])
}

// TestSolveCounterWeenieFullCatalog is spec §8 scenario 3, run against the
// real built-in catalog: the documented optimum runs 4 copies of Mystic
// Gate to cover double-white and double-blue on turn 2.
func TestSolveCounterWeenieFullCatalog(t *testing.T) {
	deck := mustDeck(t, mustConstraints(t, "WW@2", "UU@2"), 60)

	solution, err := Solve(deck, DefaultWeights, catalog.All(), nil)
	require.NoError(t, err)
	require.NotNil(t, solution)

	assert.Equal(t, 4, solution.Lands["Mystic Gate"])
}

// TestSolveBorosBurnFullCatalog is spec §8 scenario 5, run against the real
// built-in catalog: the documented optimum runs 4 copies of Battlefield
// Forge to cover turn-2 double-pip red-white.
func TestSolveBorosBurnFullCatalog(t *testing.T) {
	deck := mustDeck(t, mustConstraints(t, "W@1", "R@1", "WR@2"), 60)

	solution, err := Solve(deck, DefaultWeights, catalog.All(), nil)
	require.NoError(t, err)
	require.NotNil(t, solution)

	assert.Equal(t, 4, solution.Lands["Battlefield Forge"])
}

// TestWeightMonotonicity is spec §8: increasing w_spend, holding the
// others fixed, must not decrease the chosen manabase's mana_spend.
func TestWeightMonotonicity(t *testing.T) {
	deck := mustDeck(t, []Constraint{
		NewConstraint(NewManaCost(ColorPip(White)), 1),
		NewConstraint(NewManaCost(ColorPip(Red)), 1),
		NewConstraint(NewManaCost(ColorPip(White), ColorPip(Red)), 2),
	}, 60)
	candidates := []Land{
		NewLand("Plains", "Basic Land - Plains", []Color{White}, Basic, false),
		NewLand("Mountain", "Basic Land - Mountain", []Color{Red}, Basic, false),
		NewLand("Battlefield Forge", "Land", []Color{Red, White}, Pain, true),
	}

	low := DefaultWeights
	low.ManaSpend = 1
	high := DefaultWeights
	high.ManaSpend = 20

	lowSolution, err := Solve(deck, low, candidates, nil)
	require.NoError(t, err)
	require.NotNil(t, lowSolution)
	highSolution, err := Solve(deck, high, candidates, nil)
	require.NoError(t, err)
	require.NotNil(t, highSolution)

	assert.GreaterOrEqual(t, highSolution.ManaSpend, lowSolution.ManaSpend)
}
