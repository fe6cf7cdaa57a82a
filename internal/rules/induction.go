package rules

import (
	"github.com/gnoswap-labs/axiom/internal/logic"
)

// The induction rules trust their premises: they check the shape of the
// inductive step and lift the property out of it, but they do not
// re-derive the base case.

// MathematicalInduction derives ∀n: P(n) from a base case and
// ∀n: P(n) ⟹ P(S(n)).
type MathematicalInduction struct{}

func (MathematicalInduction) Name() string { return "Mathematical Induction" }
func (MathematicalInduction) Description() string {
	return "from P(0) and ∀n: P(n) ⟹ P(S(n)), derive ∀n: P(n)"
}

func (MathematicalInduction) Apply(premises ...logic.Expr) (logic.Expr, bool) {
	if !arity(premises, 2) {
		return nil, false
	}
	q, impl, ok := inductiveStep(premises[1])
	if !ok {
		return nil, false
	}
	return logic.Quantifier{Quant: logic.ForallKind, Var: q.Var, Domain: q.Domain, Body: impl.Left}, true
}

// StrongInduction derives ∀n: P(n) from a base case and
// ∀n: (∀k < n: P(k)) ⟹ P(n).
type StrongInduction struct{}

func (StrongInduction) Name() string { return "Strong Induction" }
func (StrongInduction) Description() string {
	return "from P(0) and ∀n: (∀k < n: P(k)) ⟹ P(n), derive ∀n: P(n)"
}

func (StrongInduction) Apply(premises ...logic.Expr) (logic.Expr, bool) {
	if !arity(premises, 2) {
		return nil, false
	}
	q, impl, ok := inductiveStep(premises[1])
	if !ok {
		return nil, false
	}
	return logic.Quantifier{Quant: logic.ForallKind, Var: q.Var, Domain: q.Domain, Body: impl.Right}, true
}

// StructuralInduction derives ∀x: P(x) from the base cases of a
// structure followed by one inductive step per recursive constructor,
// each shaped ∀x: P(x) ⟹ P(c(x)).
//
// Bases is the number of leading base-case premises; zero means one.
type StructuralInduction struct {
	Bases int
}

func (StructuralInduction) Name() string { return "Structural Induction" }
func (StructuralInduction) Description() string {
	return "from P(base) and ∀x: P(x) ⟹ P(c(x)) for every constructor c, derive ∀x: P(x)"
}

func (r StructuralInduction) Apply(premises ...logic.Expr) (logic.Expr, bool) {
	bases := r.Bases
	if bases <= 0 {
		bases = 1
	}
	if len(premises) <= bases || !arity(premises, len(premises)) {
		return nil, false
	}

	first, firstImpl, ok := inductiveStep(premises[bases])
	if !ok {
		return nil, false
	}
	for _, step := range premises[bases+1:] {
		q, impl, ok := inductiveStep(step)
		if !ok || q.Var != first.Var || !logic.Equal(impl.Left, firstImpl.Left) {
			return nil, false
		}
	}
	return logic.Quantifier{Quant: logic.ForallKind, Var: first.Var, Domain: first.Domain, Body: firstImpl.Left}, true
}

func inductiveStep(e logic.Expr) (logic.Quantifier, logic.BinaryOp, bool) {
	q, ok := logic.IsForall(e)
	if !ok {
		return logic.Quantifier{}, logic.BinaryOp{}, false
	}
	impl, ok := logic.IsBinary(q.Body, logic.OpImplies)
	if !ok {
		return logic.Quantifier{}, logic.BinaryOp{}, false
	}
	return q, impl, true
}
