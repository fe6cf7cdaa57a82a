package rules

import (
	"fmt"

	"github.com/gnoswap-labs/axiom/internal/logic"
)

// ModusPonens derives Q from P and P ⟹ Q.
type ModusPonens struct{}

func (ModusPonens) Name() string        { return "Modus Ponens" }
func (ModusPonens) Description() string { return "from P and P ⟹ Q, derive Q" }

func (ModusPonens) Apply(premises ...logic.Expr) (logic.Expr, bool) {
	if !arity(premises, 2) {
		return nil, false
	}
	impl, ok := logic.IsBinary(premises[1], logic.OpImplies)
	if !ok || !logic.Equal(premises[0], impl.Left) {
		return nil, false
	}
	return impl.Right, true
}

// ModusTollens derives ¬P from ¬Q and P ⟹ Q.
type ModusTollens struct{}

func (ModusTollens) Name() string        { return "Modus Tollens" }
func (ModusTollens) Description() string { return "from ¬Q and P ⟹ Q, derive ¬P" }

func (ModusTollens) Apply(premises ...logic.Expr) (logic.Expr, bool) {
	if !arity(premises, 2) {
		return nil, false
	}
	notQ, ok := logic.IsUnary(premises[0], logic.OpNot)
	if !ok {
		return nil, false
	}
	impl, ok := logic.IsBinary(premises[1], logic.OpImplies)
	if !ok || !logic.Equal(notQ.Operand, impl.Right) {
		return nil, false
	}
	return logic.Not(impl.Left), true
}

// Conjunction derives P ∧ Q from P and Q.
type Conjunction struct{}

func (Conjunction) Name() string        { return "Conjunction Introduction" }
func (Conjunction) Description() string { return "from P and Q, derive P ∧ Q" }

func (Conjunction) Apply(premises ...logic.Expr) (logic.Expr, bool) {
	if !arity(premises, 2) {
		return nil, false
	}
	return logic.And(premises[0], premises[1]), true
}

// Disjunction derives P ∨ With from P.
type Disjunction struct {
	With logic.Expr
}

func (Disjunction) Name() string { return "Disjunction Introduction" }
func (r Disjunction) Description() string {
	return "from P, derive P ∨ " + exprString(r.With)
}

func (r Disjunction) Apply(premises ...logic.Expr) (logic.Expr, bool) {
	if !arity(premises, 1) || r.With == nil {
		return nil, false
	}
	return logic.Or(premises[0], r.With), true
}

// Hypothetical (hypothetical syllogism) derives P ⟹ R from P ⟹ Q and Q ⟹ R.
type Hypothetical struct{}

func (Hypothetical) Name() string        { return "Hypothetical Syllogism" }
func (Hypothetical) Description() string { return "from P ⟹ Q and Q ⟹ R, derive P ⟹ R" }

func (Hypothetical) Apply(premises ...logic.Expr) (logic.Expr, bool) {
	if !arity(premises, 2) {
		return nil, false
	}
	first, ok := logic.IsBinary(premises[0], logic.OpImplies)
	if !ok {
		return nil, false
	}
	second, ok := logic.IsBinary(premises[1], logic.OpImplies)
	if !ok || !logic.Equal(first.Right, second.Left) {
		return nil, false
	}
	return logic.Implies(first.Left, second.Right), true
}

// Side selects an operand of a conjunction.
type Side int

const (
	Left Side = iota
	Right
)

func (s Side) String() string {
	if s == Right {
		return "right"
	}
	return "left"
}

// ParseSide accepts "left" and "right". The empty string is Left.
func ParseSide(s string) (Side, error) {
	switch s {
	case "", "left":
		return Left, nil
	case "right":
		return Right, nil
	default:
		return Left, fmt.Errorf("unknown side %q", s)
	}
}

// ConjunctionElimination derives one operand of P ∧ Q.
type ConjunctionElimination struct {
	Side Side
}

func (r ConjunctionElimination) Name() string {
	return "Conjunction Elimination (" + r.Side.String() + ")"
}

func (r ConjunctionElimination) Description() string {
	if r.Side == Right {
		return "from P ∧ Q, derive Q"
	}
	return "from P ∧ Q, derive P"
}

func (r ConjunctionElimination) Apply(premises ...logic.Expr) (logic.Expr, bool) {
	if !arity(premises, 1) {
		return nil, false
	}
	conj, ok := logic.IsBinary(premises[0], logic.OpAnd)
	if !ok {
		return nil, false
	}
	if r.Side == Right {
		return conj.Right, true
	}
	return conj.Left, true
}

// DoubleNegation removes (Eliminate) or introduces a double negation.
type DoubleNegation struct {
	Eliminate bool
}

func (DoubleNegation) Name() string { return "Double Negation" }
func (r DoubleNegation) Description() string {
	if r.Eliminate {
		return "from ¬¬P, derive P"
	}
	return "from P, derive ¬¬P"
}

func (r DoubleNegation) Apply(premises ...logic.Expr) (logic.Expr, bool) {
	if !arity(premises, 1) {
		return nil, false
	}
	if !r.Eliminate {
		return logic.Not(logic.Not(premises[0])), true
	}
	outer, ok := logic.IsUnary(premises[0], logic.OpNot)
	if !ok {
		return nil, false
	}
	inner, ok := logic.IsUnary(outer.Operand, logic.OpNot)
	if !ok {
		return nil, false
	}
	return inner.Operand, true
}

func exprString(e logic.Expr) string {
	if e == nil {
		return "<nil>"
	}
	return e.String()
}
