package rules

import (
	"github.com/gnoswap-labs/axiom/internal/logic"
)

// Substitution replaces the free occurrences of Var by Replacement.
type Substitution struct {
	Var         string
	Replacement logic.Expr
}

func (Substitution) Name() string { return "Substitution" }
func (r Substitution) Description() string {
	return "replace " + r.Var + " by " + exprString(r.Replacement)
}

func (r Substitution) Apply(premises ...logic.Expr) (logic.Expr, bool) {
	if !arity(premises, 1) || r.Var == "" || r.Replacement == nil {
		return nil, false
	}
	return logic.Substitute(premises[0], r.Var, r.Replacement), true
}

// UniversalInstantiation derives P(t) from ∀x: P(x).
type UniversalInstantiation struct {
	Term logic.Expr
}

func (UniversalInstantiation) Name() string { return "Universal Instantiation" }
func (r UniversalInstantiation) Description() string {
	return "from ∀x: P(x), derive P(" + exprString(r.Term) + ")"
}

func (r UniversalInstantiation) Apply(premises ...logic.Expr) (logic.Expr, bool) {
	if !arity(premises, 1) || r.Term == nil {
		return nil, false
	}
	q, ok := logic.IsForall(premises[0])
	if !ok {
		return nil, false
	}
	return logic.Substitute(q.Body, q.Var, r.Term), true
}

// ExistentialGeneralization derives ∃v: P(v) from P(t).
//
// Occurrences of t are found by comparing printed forms, so structurally
// different terms that print the same way are both generalized.
type ExistentialGeneralization struct {
	Term logic.Expr
	Var  string
}

func (ExistentialGeneralization) Name() string { return "Existential Generalization" }
func (r ExistentialGeneralization) Description() string {
	return "from P(" + exprString(r.Term) + "), derive ∃" + r.Var + ": P(" + r.Var + ")"
}

func (r ExistentialGeneralization) Apply(premises ...logic.Expr) (logic.Expr, bool) {
	if !arity(premises, 1) || r.Term == nil || r.Var == "" {
		return nil, false
	}
	g := generalizer{
		text:     r.Term.String(),
		variable: r.Var,
		termFree: logic.FreeVars(r.Term),
	}
	return logic.Exists(r.Var, g.replace(premises[0])), true
}

type generalizer struct {
	text     string
	variable string
	termFree map[string]struct{}
}

func (g generalizer) replace(e logic.Expr) logic.Expr {
	if e.String() == g.text {
		return logic.Variable{Name: g.variable}
	}
	switch x := e.(type) {
	case logic.BinaryOp:
		return logic.BinaryOp{Op: x.Op, Left: g.replace(x.Left), Right: g.replace(x.Right), Precedence: x.Precedence}
	case logic.UnaryOp:
		return logic.UnaryOp{Op: x.Op, Operand: g.replace(x.Operand)}
	case logic.Function:
		return logic.Function{Name: x.Name, Args: g.replaceAll(x.Args)}
	case logic.Predicate:
		return logic.Predicate{Name: x.Name, Args: g.replaceAll(x.Args)}
	case logic.Quantifier:
		out := x
		if x.Domain != nil {
			out.Domain = g.replace(x.Domain)
		}
		// the new variable would be captured, or the occurrence is not the
		// same term any more
		_, bindsTermVar := g.termFree[x.Var]
		if x.Var == g.variable || bindsTermVar {
			return out
		}
		out.Body = g.replace(x.Body)
		return out
	default:
		return e
	}
}

func (g generalizer) replaceAll(args []logic.Expr) []logic.Expr {
	out := make([]logic.Expr, len(args))
	for i, a := range args {
		out[i] = g.replace(a)
	}
	return out
}
