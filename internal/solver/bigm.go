package solver

// AddReifiedGE ties boolean b to the truth of "expr >= threshold": in every
// integer-feasible solution, b == 1 iff expr >= threshold. It lowers the
// CP-SAT-style pair
//
//	model.Add(expr >= threshold).OnlyEnforceIf(b)
//	model.Add(expr < threshold).OnlyEnforceIf(b.Not())
//
// to two big-M linear inequalities, with M derived from expr's own
// variable bounds so it is always tight enough to exclude no feasible
// point and loose enough to forbid none.
func (p *Problem) AddReifiedGE(b Var, expr LinExpr, threshold float64) {
	lo, hi := p.ExprBounds(expr)

	// b=1 => expr >= threshold. When b=0 the constraint must be slack no
	// matter how low expr can go, so M1 = threshold - lo (clamped to >=0).
	m1 := threshold - lo
	if m1 < 0 {
		m1 = 0
	}
	// expr >= threshold - m1*(1-b)  <=>  expr - threshold + m1 - m1*b >= 0
	lhs1 := expr.AddConst(m1-threshold).Add(-m1, b)
	p.AddGE(lhs1, 0)

	// b=0 => expr <= threshold-1 (strict "expr < threshold" over integers).
	// When b=1 the constraint must be slack even at expr's max, so
	// M2 = hi - (threshold-1) (clamped to >=0).
	m2 := hi - (threshold - 1)
	if m2 < 0 {
		m2 = 0
	}
	// expr <= (threshold-1) + m2*b
	lhs2 := expr.Add(-m2, b)
	p.AddLE(lhs2, threshold-1)
}
