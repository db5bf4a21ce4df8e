package manabase

import (
	"fmt"
	"sort"

	"github.com/bakert/manabase/internal/solver"
)

// builtModel is everything build needs to hand back to Solve: the
// underlying solver.Problem plus the handles Solve needs to read a
// Solution back out of a finished Result.
type builtModel struct {
	problem *solver.Problem
	model   *Model
	lands   []Land

	totalLands           solver.Var
	minLands             solver.Var
	pain                 solver.Var
	totalColoredSources  solver.Var
	manaSpend            solver.Var
	maxManaSpend          solver.Var
	objective            solver.Var

	// sourceReport lets Solve reconstruct, per (turn, cc), the required
	// count and the solved source total without re-deriving either.
	sourceReport []sourceEntry
}

// sourceEntry is a reportable line in the Solution: a (turn, resource)
// slot's required count, its solved variable, and the per-land
// expressions that feed it, so Solve can render a "providing" list
// without re-deriving anything.
type sourceEntry struct {
	turn          int
	resource      string // a ColorCombination's String(), or "UNTAPPED"
	required      int
	variable      solver.Var
	contributions []landContribution
}

type landContribution struct {
	name string
	expr solver.LinExpr
}

// viableLands implements spec §4.2 step 1: drop lands that produce none of
// the deck's colors, and drop any land touching 3 or more distinct colors
// unless the deck itself uses at least 3 colors.
func viableLands(deckColors []Color, candidates []Land) []Land {
	wanted := map[Color]bool{}
	for _, c := range deckColors {
		wanted[c] = true
	}

	var out []Land
	for _, l := range candidates {
		producesWanted := false
		distinct := map[Color]bool{}
		for _, p := range l.Produces {
			distinct[p] = true
			if wanted[p] {
				producesWanted = true
			}
		}
		if !producesWanted {
			continue
		}
		if len(distinct) >= 3 && len(deckColors) < 3 {
			continue
		}
		out = append(out, l)
	}
	return out
}

// requiredColors is the set of distinct colors a constraint's colored pips
// touch, in canonical order.
func requiredColors(c Constraint) []Color {
	seen := map[Color]bool{}
	var out []Color
	for _, col := range c.Required.ColoredPips() {
		if !seen[col] {
			seen[col] = true
			out = append(out, col)
		}
	}
	return out
}

func anyLandProduces(l Land, colors []Color) bool {
	for _, c := range colors {
		if l.CanProduce(c) {
			return true
		}
	}
	return false
}

// buildModel runs spec §4.2's nine-step procedure and returns the
// populated solver.Problem along with the handles Solve needs afterward.
func buildModel(deck Deck, lands []Land, weights Weights, forcedLands map[string]int) (*builtModel, error) {
	viable := viableLands(deck.Colors(), lands)
	if len(viable) == 0 {
		return nil, fmt.Errorf("manabase: no viable candidate lands for colors %v", deck.Colors())
	}

	problem := solver.NewProblem()
	m := newModel(problem, viable)

	// Step 2: one count[L] per viable land, honoring any forced count.
	for _, l := range viable {
		lo, hi := 0, l.MaxCopies()
		if forced, ok := forcedLands[l.Name]; ok {
			lo, hi = forced, forced
		}
		m.countVar[l.Name] = problem.NewIntVar(lo, hi, "count|"+l.Name)
	}

	bm := &builtModel{problem: problem, model: m, lands: viable}

	// Step 3: per-constraint, per-color-combination source totals.
	for _, c := range deck.sortedConstraints() {
		required, err := frank(c, deck.DeckSize)
		if err != nil {
			return nil, err
		}
		for _, cc := range c.ColorCombinations() {
			name := fmt.Sprintf("sources|%d|%s", c.Turn, cc)
			sourcesVar, exists := m.sourceVar[name]
			if !exists {
				sourcesVar = problem.NewIntVar(0, deck.DeckSize, name)
				m.sourceVar[name] = sourcesVar

				var landContribs []landContribution
				contributions := []solver.LinExpr{solver.Constant(0)}
				for _, l := range viable {
					if expr, ok := m.addToModel(l, c)[cc]; ok {
						contributions = append(contributions, expr)
						landContribs = append(landContribs, landContribution{name: l.Name, expr: expr})
					}
				}
				total := solver.SumExprs(contributions...)
				problem.AddEQ(solver.Sum(sourcesVar).Plus(total.Scale(-1)), 0)

				bm.sourceReport = append(bm.sourceReport, sourceEntry{
					turn: c.Turn, resource: cc.String(), required: required[cc],
					variable: sourcesVar, contributions: landContribs,
				})
			}
			problem.AddGE(solver.Sum(sourcesVar), float64(required[cc]))
		}
	}

	// Step 4: required-untapped per on-curve constraint, admissible lands
	// pooled across every constraint that shares that turn.
	admissibleByTurn := map[int]map[string]Land{}
	var onCurveTurns []int
	for _, c := range deck.sortedConstraints() {
		if c.Turn != c.Required.ManaValue() {
			continue
		}
		if _, seen := admissibleByTurn[c.Turn]; !seen {
			admissibleByTurn[c.Turn] = map[string]Land{}
			onCurveTurns = append(onCurveTurns, c.Turn)
		}
		colors := requiredColors(c)
		for _, l := range viable {
			if c.GenericOK() || anyLandProduces(l, colors) {
				admissibleByTurn[c.Turn][l.Name] = l
			}
		}
	}
	sort.Ints(onCurveTurns)
	for _, turn := range onCurveTurns {
		var landContribs []landContribution
		exprs := []solver.LinExpr{solver.Constant(0)}
		for _, l := range admissibleByTurn[turn] {
			expr := m.untappedRules(l, turn)
			exprs = append(exprs, expr)
			landContribs = append(landContribs, landContribution{name: l.Name, expr: expr})
		}
		sumExpr := solver.SumExprs(exprs...)
		name := fmt.Sprintf("sources|%d|UNTAPPED", turn)
		sourcesVar := problem.NewIntVar(0, deck.DeckSize, name)
		problem.AddEQ(solver.Sum(sourcesVar).Plus(sumExpr.Scale(-1)), 0)
		requiredUntapped := needUntapped(turn)
		problem.AddGE(solver.Sum(sourcesVar), float64(requiredUntapped))

		bm.sourceReport = append(bm.sourceReport, sourceEntry{
			turn: turn, resource: "UNTAPPED", required: requiredUntapped,
			variable: sourcesVar, contributions: landContribs,
		})
	}

	// Step 5: total lands.
	countExprs := []solver.LinExpr{solver.Constant(0)}
	for _, l := range viable {
		countExprs = append(countExprs, m.countExpr(l))
	}
	totalLandsExpr := solver.SumExprs(countExprs...)
	bm.totalLands = problem.NewIntVar(0, deck.DeckSize, "total_lands")
	problem.AddEQ(solver.Sum(bm.totalLands).Plus(totalLandsExpr.Scale(-1)), 0)
	problem.AddLE(solver.Sum(bm.totalLands), float64(deck.DeckSize))

	minLands := 0
	for _, c := range deck.Constraints {
		if n := numLandsRequired(c); n > minLands {
			minLands = n
		}
	}
	bm.minLands = problem.NewIntVar(minLands, minLands, "min_lands")
	problem.AddGE(solver.Sum(bm.totalLands), float64(minLands))

	// Step 6: pain.
	painExprs := []solver.LinExpr{solver.Constant(0)}
	for _, l := range viable {
		if l.Painful {
			painExprs = append(painExprs, m.countExpr(l))
		}
	}
	painExpr := solver.SumExprs(painExprs...)
	bm.pain = problem.NewIntVar(0, deck.DeckSize, "pain")
	problem.AddEQ(solver.Sum(bm.pain).Plus(painExpr.Scale(-1)), 0)

	// Step 7: total colored sources.
	colorSourceExprs := []solver.LinExpr{solver.Constant(0)}
	for _, col := range deck.Colors() {
		for _, l := range viable {
			if l.CanProduce(col) {
				colorSourceExprs = append(colorSourceExprs, m.countExpr(l))
			}
		}
	}
	colorSourcesExpr := solver.SumExprs(colorSourceExprs...)
	bm.totalColoredSources = problem.NewIntVar(0, deck.DeckSize*len(AllColors()), "total_colored_sources")
	problem.AddEQ(solver.Sum(bm.totalColoredSources).Plus(colorSourcesExpr.Scale(-1)), 0)

	// Step 8: per-turn mana spend.
	maxTurn := deck.MaxTurn()
	manaSpendExprs := []solver.LinExpr{solver.Constant(0)}
	maxManaSpend := 0
	for t := 1; t <= maxTurn; t++ {
		exprs := []solver.LinExpr{solver.Constant(0)}
		for _, l := range viable {
			exprs = append(exprs, m.untappedRules(l, t))
		}
		sumExpr := solver.SumExprs(exprs...)
		enough := m.reifiedGE(fmt.Sprintf("enough|%d", t), sumExpr, numLands(t, t))
		manaSpendExprs = append(manaSpendExprs, solver.Constant(float64(t-1)).Add(1, enough))
		maxManaSpend += t
	}
	manaSpendExpr := solver.SumExprs(manaSpendExprs...)
	bm.manaSpend = problem.NewIntVar(0, maxManaSpend, "mana_spend")
	problem.AddEQ(solver.Sum(bm.manaSpend).Plus(manaSpendExpr.Scale(-1)), 0)
	bm.maxManaSpend = problem.NewIntVar(maxManaSpend, maxManaSpend, "max_mana_spend")

	// Step 9: objective.
	objectiveExpr := solver.Constant(1000).
		Add(float64(weights.ManaSpend), bm.manaSpend).
		Add(float64(weights.TotalLands), bm.totalLands).
		Add(float64(weights.Pain), bm.pain).
		Add(float64(weights.TotalColoredSources), bm.totalColoredSources)
	bm.objective = problem.NewIntVar(-1_000_000, 1_000_000, "objective")
	problem.AddEQ(solver.Sum(bm.objective).Plus(objectiveExpr.Scale(-1)), 0)
	problem.Maximize(solver.Sum(bm.objective))

	return bm, nil
}
