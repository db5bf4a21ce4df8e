package manabase

import (
	"fmt"

	"github.com/bakert/manabase/internal/solver"
)

// Model is the variable store a Deck gets translated into: every Land's
// count, every (turn, color-combination) source total, and every
// aggregate the objective depends on, each created exactly once and
// remembered by name (spec §9). Land kinds are dispatched on Kind rather
// than through an interface — see untappedRules and addToModel — so the
// catalog data in Land stays a plain struct.
type Model struct {
	problem *solver.Problem
	lands   []Land

	countVar map[string]solver.Var
	sourceVar map[string]solver.Var

	// gated caches the "count[L] if active else 0" helper variable per
	// (land, tag) so repeated calls for the same turn don't re-create it
	// and trip the store's KeyCollision guard.
	gated map[string]solver.Var
	// activeCache caches reified "enough lands in play" booleans keyed by
	// an arbitrary caller-chosen tag (land+turn, or just turn).
	activeCache map[string]solver.Var
	// filterAux caches a Filter land's per-turn mm/mn/nn/consumed tuple.
	filterAux map[string]filterVars
}

type filterVars struct {
	mm, mn, nn         solver.Var
	mConsumed, nConsumed solver.Var
}

func newModel(problem *solver.Problem, lands []Land) *Model {
	return &Model{
		problem:     problem,
		lands:       lands,
		countVar:    map[string]solver.Var{},
		sourceVar:   map[string]solver.Var{},
		gated:       map[string]solver.Var{},
		activeCache: map[string]solver.Var{},
		filterAux:   map[string]filterVars{},
	}
}

func (m *Model) count(l Land) solver.Var { return m.countVar[l.Name] }

func (m *Model) countExpr(l Land) solver.LinExpr { return solver.Sum(m.count(l)) }

// reifiedGE returns (creating it on first use) the boolean that AddReifiedGE
// ties to "expr >= threshold", cached under tag so callers that need the
// same activation condition more than once share a single variable.
func (m *Model) reifiedGE(tag string, expr solver.LinExpr, threshold int) solver.Var {
	if v, ok := m.activeCache[tag]; ok {
		return v
	}
	v := m.problem.NewBoolVar("active|" + tag)
	m.problem.AddReifiedGE(v, expr, float64(threshold))
	m.activeCache[tag] = v
	return v
}

// gatedCount returns a variable equal to count[l] when active=1 and 0 when
// active=0, cached under tag. It is the linearization of "count[L] AND
// active" used by Check, Snarl, Tango, and Filter's untapped rule.
func (m *Model) gatedCount(l Land, active solver.Var, tag string) solver.LinExpr {
	key := l.Name + "|" + tag
	if v, ok := m.gated[key]; ok {
		return solver.Sum(v)
	}
	max := float64(l.MaxCopies())
	u := m.problem.NewIntVar(0, l.MaxCopies(), "gated|"+key)
	m.gated[key] = u

	countExpr := m.countExpr(l)
	// u <= count[L]
	m.problem.AddLE(solver.Sum(u).Plus(countExpr.Scale(-1)), 0)
	// u <= max*active
	m.problem.AddLE(solver.Sum(u).Plus(solver.Term(-max, active)), 0)
	// u >= count[L] - max*(1-active)  <=>  u - count[L] - max*active >= -max
	lhs := solver.Sum(u).Plus(countExpr.Scale(-1)).Add(-max, active)
	m.problem.AddGE(lhs, -max)
	return solver.Sum(u)
}

// landsSharingBasicType sums count[L'] over every land in the model
// sharing at least one of the given basic land types — the population
// Check and Snarl lands key their own untapped condition on.
func (m *Model) landsSharingBasicType(needed []BasicLandType) solver.LinExpr {
	exprs := []solver.LinExpr{solver.Constant(0)}
	for _, l := range m.lands {
		if l.HasAnyBasicLandType(needed) {
			exprs = append(exprs, m.countExpr(l))
		}
	}
	return solver.SumExprs(exprs...)
}

// basicLandCount sums count[L] over every Basic-kind land in the model —
// the population Tango lands key their own untapped condition on.
func (m *Model) basicLandCount() solver.LinExpr {
	exprs := []solver.LinExpr{solver.Constant(0)}
	for _, l := range m.lands {
		if l.Kind == Basic {
			exprs = append(exprs, m.countExpr(l))
		}
	}
	return solver.SumExprs(exprs...)
}

// filterFeederCount sums count[L'] over lands producing either of a
// Filter's two colors, excluding other Filter lands when turn <= 2 (spec
// §4.1: a filter that cannot itself be untapped that early cannot feed
// another filter's activation either).
func (m *Model) filterFeederCount(l Land, turn int) solver.LinExpr {
	exprs := []solver.LinExpr{solver.Constant(0)}
	for _, other := range m.lands {
		if turn <= 2 && other.Kind == Filter {
			continue
		}
		if other.CanProduce(l.Produces[0]) || other.CanProduce(l.Produces[1]) {
			exprs = append(exprs, m.countExpr(other))
		}
	}
	return solver.SumExprs(exprs...)
}

// untappedRules returns how many copies of l are assumed in play untapped
// by turn (spec §4.1).
func (m *Model) untappedRules(l Land, turn int) solver.LinExpr {
	switch l.Kind {
	case Basic, Pain, RiverOfTearsLike:
		return m.countExpr(l)
	case Tapland, Bicycle:
		return solver.Constant(0)
	case Check:
		if turn <= 1 {
			return solver.Constant(0)
		}
		tag := fmt.Sprintf("check|%s|%d", l.Name, turn)
		active := m.reifiedGE(tag, m.landsSharingBasicType(l.basicLandTypesNeeded()), needUntapped(turn))
		return m.gatedCount(l, active, tag)
	case Snarl:
		tag := fmt.Sprintf("snarl|%s|%d", l.Name, turn)
		active := m.reifiedGE(tag, m.landsSharingBasicType(l.basicLandTypesNeeded()), numLands(turn, turn))
		return m.gatedCount(l, active, tag)
	case Tango:
		if turn <= 2 {
			return solver.Constant(0)
		}
		tag := fmt.Sprintf("tango|%s|%d", l.Name, turn)
		active := m.reifiedGE(tag, m.basicLandCount(), numLands(2, turn-1))
		return m.gatedCount(l, active, tag)
	case Filter:
		if turn <= 1 {
			return solver.Constant(0)
		}
		active := m.filterActive(l, turn)
		return m.gatedCount(l, active, fmt.Sprintf("filter-untapped|%s|%d", l.Name, turn))
	default:
		return solver.Constant(0)
	}
}

func (m *Model) filterActive(l Land, turn int) solver.Var {
	tag := fmt.Sprintf("filter|%s|%d", l.Name, turn)
	return m.reifiedGE(tag, m.filterFeederCount(l, turn), needUntapped(turn))
}

// filterAuxVars returns (creating them on first use) a Filter land's
// mm/mn/nn/m_consumed/n_consumed tuple for the given turn, wired per
// spec §4.1: mm+mn+nn = 2*(m_consumed+n_consumed), and
// mm+mn+nn-m_consumed-n_consumed equals the turn's active-gated count, so
// every one of the five is forced to zero when active is false.
func (m *Model) filterAuxVars(l Land, turn int) filterVars {
	key := fmt.Sprintf("%s|%d", l.Name, turn)
	if fv, ok := m.filterAux[key]; ok {
		return fv
	}
	maxCopies := l.MaxCopies()
	fv := filterVars{
		mm:          m.problem.NewIntVar(0, 2*maxCopies, "filter-mm|"+key),
		mn:          m.problem.NewIntVar(0, 2*maxCopies, "filter-mn|"+key),
		nn:          m.problem.NewIntVar(0, 2*maxCopies, "filter-nn|"+key),
		mConsumed:   m.problem.NewIntVar(0, maxCopies, "filter-mc|"+key),
		nConsumed:   m.problem.NewIntVar(0, maxCopies, "filter-nc|"+key),
	}
	active := m.filterActive(l, turn)
	gated := m.gatedCount(l, active, "filter-net|"+key)

	outputs := solver.Sum(fv.mm, fv.mn, fv.nn)
	consumed := solver.Sum(fv.mConsumed, fv.nConsumed)
	m.problem.AddEQ(outputs.Plus(consumed.Scale(-2)), 0)
	m.problem.AddEQ(outputs.Plus(consumed.Scale(-1)).Plus(gated.Scale(-1)), 0)

	m.filterAux[key] = fv
	return fv
}

// filterImpossible reports the one edge case spec §4.1 calls out: a
// fully-colored two-pip cost on turn 2 whose second printed pip is
// neither of the filter's two colors, where a single-tap contribution
// cannot realistically help cast the spell on curve.
func filterImpossible(c Constraint, m1, n1 Color) bool {
	if c.Turn != 2 || c.Required.HasGeneric() {
		return false
	}
	pips := c.Required.Pips()
	if len(pips) != 2 {
		return false
	}
	second := pips[1]
	if second.IsGeneric() {
		return false
	}
	return second.Color != m1 && second.Color != n1
}

// addToModel returns, for each color combination in c, the linear
// expression for how much l contributes to that combination's source
// count (spec §4.1). Combinations absent from the result contribute 0.
func (m *Model) addToModel(l Land, c Constraint) map[ColorCombination]solver.LinExpr {
	out := map[ColorCombination]solver.LinExpr{}
	switch l.Kind {
	case Basic, Check, Snarl, Pain:
		for _, cc := range c.ColorCombinations() {
			if l.CanProduceAny(cc) {
				out[cc] = m.countExpr(l)
			}
		}
	case RiverOfTearsLike:
		for _, cc := range c.ColorCombinations() {
			if cc.ContainsColor(Blue) || cc.ContainsColor(Black) {
				out[cc] = m.countExpr(l)
			}
		}
	case Tapland, Bicycle:
		if c.Turn <= 1 {
			return out
		}
		for _, cc := range c.ColorCombinations() {
			if l.CanProduceAny(cc) {
				out[cc] = m.countExpr(l)
			}
		}
	case Tango:
		if c.Turn <= 1 {
			return out
		}
		for _, cc := range c.ColorCombinations() {
			if l.CanProduceAny(cc) {
				out[cc] = m.countExpr(l)
			}
		}
	case Filter:
		m1, n1 := l.Produces[0], l.Produces[1]
		fv := m.filterAuxVars(l, c.Turn)
		impossible := filterImpossible(c, m1, n1)
		for _, cc := range c.ColorCombinations() {
			switch {
			case cc.Count(m1) >= 2:
				out[cc] = solver.Sum(fv.mm)
			case cc.Count(m1) == 1 && cc.Count(n1) == 1:
				out[cc] = solver.Sum(fv.mn)
			case cc.Count(n1) >= 2:
				out[cc] = solver.Sum(fv.nn)
			case cc.Size() == 1 && (cc.ContainsColor(m1) || cc.ContainsColor(n1)):
				if !impossible {
					out[cc] = m.countExpr(l)
				}
			case cc.ContainsColor(Colorless):
				out[cc] = m.countExpr(l)
			}
		}
	}
	return out
}
