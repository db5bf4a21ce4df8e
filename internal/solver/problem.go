// Package solver is a small mixed-integer linear solver: bounded integer
// (including boolean) decision variables, linear constraints, and a linear
// objective, solved by branch-and-bound over an LP relaxation. It plays the
// role a CP-SAT call plays in the original manabase model: every land kind
// in internal/manabase builds its contribution as Vars, LinExprs, and
// (where it needs a reified "is this land active" boolean) a call to
// AddReifiedGE — never a language-level if/else over solved values, since
// nothing is solved yet at model-construction time.
package solver

import "fmt"

// Var is an opaque handle to a decision variable in a Problem.
type Var int

// Relation is the comparison a linear constraint enforces.
type Relation int

const (
	LE Relation = iota
	GE
	EQ
)

type varInfo struct {
	name string
	lo   float64
	hi   float64
}

// LinExpr is a linear expression: a constant offset plus coefficients on
// zero or more Vars.
type LinExpr struct {
	Const float64
	Terms map[Var]float64
}

// NewExpr builds an empty (zero-valued) expression.
func NewExpr() LinExpr {
	return LinExpr{Terms: map[Var]float64{}}
}

// Constant builds a constant expression.
func Constant(c float64) LinExpr {
	return LinExpr{Const: c, Terms: map[Var]float64{}}
}

// Term builds a single coef*v expression.
func Term(coef float64, v Var) LinExpr {
	return LinExpr{Terms: map[Var]float64{v: coef}}
}

// Plus returns a new expression equal to e + other.
func (e LinExpr) Plus(other LinExpr) LinExpr {
	out := LinExpr{Const: e.Const + other.Const, Terms: map[Var]float64{}}
	for v, c := range e.Terms {
		out.Terms[v] += c
	}
	for v, c := range other.Terms {
		out.Terms[v] += c
	}
	return out
}

// Add returns a new expression equal to e + coef*v.
func (e LinExpr) Add(coef float64, v Var) LinExpr {
	return e.Plus(Term(coef, v))
}

// AddConst returns a new expression equal to e + c.
func (e LinExpr) AddConst(c float64) LinExpr {
	return e.Plus(Constant(c))
}

// Scale returns a new expression equal to k*e.
func (e LinExpr) Scale(k float64) LinExpr {
	out := LinExpr{Const: e.Const * k, Terms: map[Var]float64{}}
	for v, c := range e.Terms {
		out.Terms[v] = c * k
	}
	return out
}

// Sum builds the expression that is the sum of 1*v for every v given.
func Sum(vars ...Var) LinExpr {
	out := NewExpr()
	for _, v := range vars {
		out = out.Add(1, v)
	}
	return out
}

// SumExprs adds together a slice of expressions.
func SumExprs(exprs ...LinExpr) LinExpr {
	out := NewExpr()
	for _, e := range exprs {
		out = out.Plus(e)
	}
	return out
}

// Constraint is a stored linear constraint: expr <rel> rhs.
type Constraint struct {
	Expr LinExpr
	Rel  Relation
	RHS  float64
}

// Problem is a MIP under construction. It mirrors the "Model as a
// remembered-variable store" design note (manabase spec §9): every
// variable is created once, keyed by name, and re-creating a name that
// already exists is a bug the caller should hear about immediately.
type Problem struct {
	vars        []varInfo
	names       map[string]Var
	constraints []Constraint
	objective   LinExpr
	maximize    bool
}

// KeyCollisionError is raised when a caller tries to create two variables
// under the same name.
type KeyCollisionError struct {
	Name string
}

func (e *KeyCollisionError) Error() string {
	return fmt.Sprintf("solver: variable %q already exists", e.Name)
}

// NewProblem creates an empty problem.
func NewProblem() *Problem {
	return &Problem{names: map[string]Var{}}
}

// NewIntVar creates an integer variable bounded to [lo, hi], named name.
// It panics on a duplicate name — see KeyCollisionError — since a
// collision always indicates a bug in the caller's variable-key scheme,
// not a runtime condition to recover from.
func (p *Problem) NewIntVar(lo, hi int, name string) Var {
	if _, exists := p.names[name]; exists {
		panic(&KeyCollisionError{Name: name})
	}
	v := Var(len(p.vars))
	p.vars = append(p.vars, varInfo{name: name, lo: float64(lo), hi: float64(hi)})
	p.names[name] = v
	return v
}

// NewBoolVar creates a boolean (0/1) variable named name.
func (p *Problem) NewBoolVar(name string) Var {
	return p.NewIntVar(0, 1, name)
}

// Name returns the variable's name.
func (p *Problem) Name(v Var) string { return p.vars[v].name }

// Bounds returns the variable's declared [lo, hi].
func (p *Problem) Bounds(v Var) (lo, hi float64) {
	info := p.vars[v]
	return info.lo, info.hi
}

// ExprBounds computes a conservative [lo, hi] for a linear expression from
// its variables' declared bounds. It is exact when every coefficient has a
// fixed sign, which is always true here since coefficients never change
// after being written into an expression.
func (p *Problem) ExprBounds(e LinExpr) (lo, hi float64) {
	lo, hi = e.Const, e.Const
	for v, coef := range e.Terms {
		vlo, vhi := p.Bounds(v)
		if coef >= 0 {
			lo += coef * vlo
			hi += coef * vhi
		} else {
			lo += coef * vhi
			hi += coef * vlo
		}
	}
	return lo, hi
}

// AddLE adds expr <= rhs.
func (p *Problem) AddLE(expr LinExpr, rhs float64) {
	p.constraints = append(p.constraints, Constraint{Expr: expr, Rel: LE, RHS: rhs})
}

// AddGE adds expr >= rhs.
func (p *Problem) AddGE(expr LinExpr, rhs float64) {
	p.constraints = append(p.constraints, Constraint{Expr: expr, Rel: GE, RHS: rhs})
}

// AddEQ adds expr == rhs.
func (p *Problem) AddEQ(expr LinExpr, rhs float64) {
	p.constraints = append(p.constraints, Constraint{Expr: expr, Rel: EQ, RHS: rhs})
}

// Maximize sets the objective to maximize expr.
func (p *Problem) Maximize(expr LinExpr) {
	p.objective = expr
	p.maximize = true
}

// Minimize sets the objective to minimize expr.
func (p *Problem) Minimize(expr LinExpr) {
	p.objective = expr
	p.maximize = false
}

// NumVars reports how many variables the problem has.
func (p *Problem) NumVars() int { return len(p.vars) }
