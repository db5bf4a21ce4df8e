package solver

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/optimize/convex/lp"
)

// Eval computes the expression's value given a variable lookup.
func (e LinExpr) Eval(value func(Var) float64) float64 {
	total := e.Const
	for v, coef := range e.Terms {
		total += coef * value(v)
	}
	return total
}

// bounds is the current (possibly branch-tightened) [lo, hi] for every
// variable, indexed by Var.
type bounds []struct{ lo, hi float64 }

func (p *Problem) currentBounds(overrides map[Var][2]float64) bounds {
	b := make(bounds, p.NumVars())
	for i := range b {
		lo, hi := p.Bounds(Var(i))
		b[i].lo, b[i].hi = lo, hi
	}
	for v, ov := range overrides {
		b[v].lo, b[v].hi = ov[0], ov[1]
	}
	return b
}

// relaxResult is the outcome of solving one node's LP relaxation.
type relaxResult struct {
	feasible  bool
	objective float64
	values    []float64 // length p.NumVars(), original variable space
}

// errTrivialInfeasible marks a node pruned before ever calling the
// simplex solver, because some variable's tightened bounds already cross.
var errTrivialInfeasible = errors.New("solver: bounds crossed")

// solveRelaxation solves the LP relaxation of p under the given bound
// overrides: integrality is dropped, every variable may take any real
// value in its current [lo, hi].
func (p *Problem) solveRelaxation(b bounds) (relaxResult, error) {
	n := p.NumVars()
	for i := 0; i < n; i++ {
		if b[i].lo > b[i].hi {
			return relaxResult{}, errTrivialInfeasible
		}
	}

	// Standard form: minimize c^T x' s.t. A x' = rhs, x' >= 0, where
	// x'_i = x_i - lo_i. Columns: n shifted variables, then n bound
	// slacks (x'_i + s_i = hi_i - lo_i), then one slack per <= or >=
	// constraint. Equality constraints get no slack.
	numIneq := 0
	for _, c := range p.constraints {
		if c.Rel != EQ {
			numIneq++
		}
	}
	numCols := n + n + numIneq
	numRows := n + len(p.constraints)

	A := mat.NewDense(numRows, numCols, nil)
	rhs := make([]float64, numRows)
	row := 0

	for i := 0; i < n; i++ {
		A.Set(row, i, 1)
		A.Set(row, n+i, 1)
		rhs[row] = b[i].hi - b[i].lo
		row++
	}

	slackCol := n + n
	for _, c := range p.constraints {
		// expr(x) = sum coef*x'_v + sum coef*lo_v + const
		shiftedConst := c.Expr.Const
		for v, coef := range c.Expr.Terms {
			shiftedConst += coef * b[v].lo
			A.Set(row, int(v), A.At(row, int(v))+coef)
		}
		adjustedRHS := c.RHS - shiftedConst

		switch c.Rel {
		case LE:
			A.Set(row, slackCol, 1)
			rhs[row] = adjustedRHS
			slackCol++
		case GE:
			A.Set(row, slackCol, -1)
			rhs[row] = adjustedRHS
			slackCol++
		case EQ:
			rhs[row] = adjustedRHS
		}

		// gonum's lp.Simplex expects b >= 0; flip the row's sign if not.
		if rhs[row] < 0 {
			for col := 0; col < numCols; col++ {
				A.Set(row, col, -A.At(row, col))
			}
			rhs[row] = -rhs[row]
		}
		row++
	}

	c := make([]float64, numCols)
	sign := 1.0
	if p.maximize {
		sign = -1.0
	}
	for v, coef := range p.objective.Terms {
		c[int(v)] = sign * coef
	}

	_, x, err := lp.Simplex(c, A, rhs, 0, nil)
	if errors.Is(err, lp.ErrInfeasible) {
		return relaxResult{feasible: false}, nil
	}
	if err != nil {
		return relaxResult{}, fmt.Errorf("lp relaxation: %w", err)
	}

	values := make([]float64, n)
	for i := 0; i < n; i++ {
		values[i] = b[i].lo + x[i]
	}
	objective := p.objective.Eval(func(v Var) float64 { return values[v] })

	return relaxResult{feasible: true, objective: objective, values: values}, nil
}
