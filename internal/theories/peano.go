package theories

import (
	"github.com/gnoswap-labs/axiom/internal/axioms"
	"github.com/gnoswap-labs/axiom/internal/logic"
	"github.com/gnoswap-labs/axiom/internal/proof"
	"github.com/gnoswap-labs/axiom/internal/rules"
)

// Naturals is the set ℕ.
var Naturals = logic.Var("ℕ")

// Peano returns Peano's axioms for the natural numbers with the recursive
// definitions of addition, multiplication and order.
func Peano() *axioms.System {
	n, m, k := logic.Var("n"), logic.Var("m"), logic.Var("k")
	nat := func(e logic.Expr) logic.Expr { return logic.In(e, Naturals) }
	forallN := func(v string, body logic.Expr) logic.Expr { return logic.ForallIn(v, Naturals, body) }
	apply := func(e logic.Expr) logic.Expr { return logic.Func("P", e) }

	s := axioms.NewSystem("Natural Numbers (Peano)",
		"The natural numbers axiomatized by Peano")

	ax := []axioms.Axiom{
		{
			Name:        "P1-Zero",
			Statement:   nat(Zero),
			Description: "0 is a natural number",
			Tags:        []string{"peano", "base"},
		},
		{
			Name:        "P2-Successor",
			Statement:   forallN("n", logic.Implies(nat(n), nat(logic.Succ(n)))),
			Description: "the successor of a natural number is a natural number",
			Tags:        []string{"peano", "successor", "closure"},
		},
		{
			Name:        "P3-Zero-Not-Successor",
			Statement:   forallN("n", logic.Implies(nat(n), logic.Neq(logic.Succ(n), Zero))),
			Description: "0 is not a successor",
			Tags:        []string{"peano", "zero", "successor"},
		},
		{
			Name: "P4-Successor-Injective",
			Statement: forallN("n", forallN("m", logic.Implies(
				logic.And(nat(n), nat(m)),
				logic.Implies(logic.Eq(logic.Succ(n), logic.Succ(m)), logic.Eq(n, m)),
			))),
			Description: "distinct natural numbers have distinct successors",
			Tags:        []string{"peano", "successor", "injective"},
		},
		{
			Name: "P5-Induction",
			Statement: logic.Forall("P", logic.Implies(
				logic.And(
					apply(Zero),
					forallN("n", logic.Implies(apply(n), apply(logic.Succ(n)))),
				),
				forallN("n", apply(n)),
			)),
			Description: "if P(0) and P(n) ⟹ P(S(n)) for all n, then P(n) for all n",
			Tags:        []string{"peano", "induction"},
		},
	}
	for _, a := range ax {
		mustAdd(s.AddAxiom(a))
	}

	defs := []axioms.Definition{
		{
			Name:   "Addition",
			Symbol: logic.OpAdd,
			Statement: logic.And(
				forallN("n", logic.Eq(logic.Add(n, Zero), n)),
				forallN("n", forallN("m", logic.Eq(logic.Add(n, logic.Succ(m)), logic.Succ(logic.Add(n, m))))),
			),
			Description: "n + 0 = n, n + S(m) = S(n + m)",
		},
		{
			Name:   "Multiplication",
			Symbol: logic.OpMul,
			Statement: logic.And(
				forallN("n", logic.Eq(logic.Mul(n, Zero), Zero)),
				forallN("n", forallN("m", logic.Eq(logic.Mul(n, logic.Succ(m)), logic.Add(logic.Mul(n, m), n)))),
			),
			Description: "n · 0 = 0, n · S(m) = n · m + n",
		},
		{
			Name:   "LessThan",
			Symbol: logic.PredLt,
			Statement: forallN("n", forallN("m", logic.Iff(
				logic.Lt(n, m),
				logic.ExistsIn("k", Naturals, logic.And(logic.Neq(k, Zero), logic.Eq(logic.Add(n, k), m))),
			))),
			Description: "n < m ⟺ n + k = m for some k ≠ 0",
		},
	}
	for _, d := range defs {
		mustAdd(s.AddDefinition(d))
	}
	return s
}

// PeanoLibrary derives closure of ℕ under successor by induction, and
// a few facts about 1 = S(0).
func PeanoLibrary() (*proof.Library, error) {
	sys := Peano()
	lib := proof.NewLibrary()
	n := logic.Var("n")
	one := logic.Succ(Zero)

	// ∀n ∈ ℕ: n ∈ ℕ
	closed := logic.ForallIn("n", Naturals, logic.In(n, Naturals))
	d := start(closed, sys, "induction on P1 and P2")
	base := d.axiom("P1-Zero")
	step := d.axiom("P2-Successor")
	d.infer(closed, rules.MathematicalInduction{}, base, step)
	if err := d.theorem(lib, "T1-Naturals-Closed", "every element of ℕ is reached by induction", "peano", "induction"); err != nil {
		return nil, err
	}

	// S(0) ≠ 0
	notZero := logic.Neq(one, Zero)
	d = start(notZero, sys, "instantiate P3 at 0 and apply P1")
	zero := d.axiom("P1-Zero")
	p3 := d.axiom("P3-Zero-Not-Successor")
	inst := d.infer(logic.Implies(logic.In(Zero, Naturals), notZero), rules.UniversalInstantiation{Term: Zero}, p3)
	d.infer(notZero, rules.ModusPonens{}, zero, inst)
	if err := d.theorem(lib, "T2-One-Not-Zero", "S(0) ≠ 0", "peano", "successor"); err != nil {
		return nil, err
	}

	// S(0) + 0 = S(0)
	rightIdentity := logic.Eq(logic.Add(one, Zero), one)
	d = start(rightIdentity, sys, "instantiate the base clause of addition")
	clause := d.definition("Addition")
	d.infer(logic.ForallIn("n", Naturals, logic.Eq(logic.Add(n, Zero), n)), rules.ConjunctionElimination{Side: rules.Left}, clause)
	d.infer(rightIdentity, rules.UniversalInstantiation{Term: one}, d.last)
	if err := d.lemma(lib, "L1-One-Plus-Zero", "S(0) + 0 = S(0)", "peano", "addition"); err != nil {
		return nil, err
	}

	// S(0) ∈ ℕ
	oneNat := logic.In(one, Naturals)
	d = start(oneNat, sys, "instantiate T1 at S(0)")
	d.cite(lib, "T1-Naturals-Closed")
	d.infer(oneNat, rules.UniversalInstantiation{Term: one}, d.last)
	if err := d.corollary(lib, "C1-One-Natural", "T1-Naturals-Closed", "S(0) is a natural number", "peano"); err != nil {
		return nil, err
	}

	// ∃k: k + 0 = k
	witness := logic.Exists("k", logic.Eq(logic.Add(logic.Var("k"), Zero), logic.Var("k")))
	d = start(witness, sys, "generalize S(0) in L1")
	d.cite(lib, "L1-One-Plus-Zero")
	d.infer(witness, rules.ExistentialGeneralization{Term: one, Var: "k"}, d.last)
	if err := d.theorem(lib, "T3-Right-Identity-Witness", "some k satisfies k + 0 = k", "peano", "addition"); err != nil {
		return nil, err
	}
	return lib, nil
}
