// Package theories provides ready-made axiom systems and libraries of
// results derived in them.
package theories

import (
	"github.com/gnoswap-labs/axiom/internal/axioms"
	"github.com/gnoswap-labs/axiom/internal/logic"
	"github.com/gnoswap-labs/axiom/internal/proof"
	"github.com/gnoswap-labs/axiom/internal/rules"
)

// Carrier of the Boolean algebra.
var boolSet = logic.Var("B")

var (
	Zero = logic.Const(0, "0")
	One  = logic.Const(1, "1")
)

func overB(vars []string, body logic.Expr) logic.Expr {
	for i := len(vars) - 1; i >= 0; i-- {
		body = logic.ForallIn(vars[i], boolSet, body)
	}
	return body
}

// Huntington returns Huntington's 1904 postulates for Boolean algebra
// over a carrier B with + (or), · (and) and the complement '.
func Huntington() *axioms.System {
	a, b, c := logic.Var("a"), logic.Var("b"), logic.Var("c")
	s := axioms.NewSystem("Boolean Algebra (Huntington)",
		"Boolean algebra axiomatized by Huntington's postulates")

	postulates := []axioms.Postulate{
		{
			Name: "P1-Closure",
			Statement: overB([]string{"a", "b"}, logic.And(
				logic.In(logic.Add(a, b), boolSet),
				logic.In(logic.Mul(a, b), boolSet),
			)),
			Description: "B is closed under + and ·",
			Tags:        []string{"closure", "binary-operations"},
		},
		{
			Name:        "P2a-Commutative-OR",
			Statement:   overB([]string{"a", "b"}, logic.Eq(logic.Add(a, b), logic.Add(b, a))),
			Description: "a + b = b + a",
			Tags:        []string{"commutative", "or"},
		},
		{
			Name:        "P2b-Commutative-AND",
			Statement:   overB([]string{"a", "b"}, logic.Eq(logic.Mul(a, b), logic.Mul(b, a))),
			Description: "a · b = b · a",
			Tags:        []string{"commutative", "and"},
		},
		{
			Name: "P3a-Identity-Zero",
			Statement: logic.ExistsIn("0", boolSet,
				logic.ForallIn("a", boolSet, logic.Eq(logic.Add(a, logic.Var("0")), a))),
			Description: "there is 0 with a + 0 = a",
			Tags:        []string{"identity", "zero", "or"},
		},
		{
			Name: "P3b-Identity-One",
			Statement: logic.ExistsIn("1", boolSet,
				logic.ForallIn("a", boolSet, logic.Eq(logic.Mul(a, logic.Var("1")), a))),
			Description: "there is 1 with a · 1 = a",
			Tags:        []string{"identity", "one", "and"},
		},
		{
			Name: "P4a-Distributive-OR-over-AND",
			Statement: overB([]string{"a", "b", "c"}, logic.Eq(
				logic.Add(a, logic.Mul(b, c)),
				logic.Mul(logic.Add(a, b), logic.Add(a, c)),
			)),
			Description: "a + (b · c) = (a + b) · (a + c)",
			Tags:        []string{"distributive", "or", "and"},
		},
		{
			Name: "P4b-Distributive-AND-over-OR",
			Statement: overB([]string{"a", "b", "c"}, logic.Eq(
				logic.Mul(a, logic.Add(b, c)),
				logic.Add(logic.Mul(a, b), logic.Mul(a, c)),
			)),
			Description: "a · (b + c) = (a · b) + (a · c)",
			Tags:        []string{"distributive", "and", "or"},
		},
		{
			Name: "P5-Complement",
			Statement: logic.ForallIn("a", boolSet, logic.ExistsIn("a'", boolSet, logic.And(
				logic.Eq(logic.Add(a, logic.Complement(a)), One),
				logic.Eq(logic.Mul(a, logic.Complement(a)), Zero),
			))),
			Description: "every a has a complement a' with a + a' = 1 and a · a' = 0",
			Tags:        []string{"complement"},
		},
		{
			Name: "P6-Distinct-Elements",
			Statement: logic.ExistsIn("a", boolSet,
				logic.ExistsIn("b", boolSet, logic.Neq(a, b))),
			Description: "B has at least two distinct elements",
			Tags:        []string{"distinct", "non-trivial"},
		},
	}
	for _, p := range postulates {
		mustAdd(s.AddPostulate(p))
	}

	mustAdd(s.AddDefinition(axioms.Definition{
		Name:        "NOT",
		Symbol:      "¬",
		Statement:   logic.Eq(logic.Not(a), logic.Complement(a)),
		Description: "negation is the complement",
	}))
	return s
}

// BooleanLibrary derives instances of the Huntington postulates for the
// elements x, y and z.
func BooleanLibrary() (*proof.Library, error) {
	sys := Huntington()
	lib := proof.NewLibrary()
	x, y, z := logic.Var("x"), logic.Var("y"), logic.Var("z")

	// x + y = y + x
	commutative := logic.Eq(logic.Add(x, y), logic.Add(y, x))
	d := start(commutative, sys, "instantiate P2a for x and y")
	d.axiom("P2a-Commutative-OR")
	d.infer(logic.ForallIn("b", boolSet, logic.Eq(logic.Add(x, logic.Var("b")), logic.Add(logic.Var("b"), x))),
		rules.UniversalInstantiation{Term: x}, d.last)
	d.infer(commutative, rules.UniversalInstantiation{Term: y}, d.last)
	if err := d.theorem(lib, "T1-Commutative-OR-xy", "x + y = y + x", "commutative", "or"); err != nil {
		return nil, err
	}

	// x + y ∈ B
	closed := logic.In(logic.Add(x, y), boolSet)
	d = start(closed, sys, "instantiate P1 and keep the + half")
	d.axiom("P1-Closure")
	d.infer(logic.ForallIn("b", boolSet, logic.And(
		logic.In(logic.Add(x, logic.Var("b")), boolSet),
		logic.In(logic.Mul(x, logic.Var("b")), boolSet),
	)), rules.UniversalInstantiation{Term: x}, d.last)
	d.infer(logic.And(closed, logic.In(logic.Mul(x, y), boolSet)), rules.UniversalInstantiation{Term: y}, d.last)
	d.infer(closed, rules.ConjunctionElimination{Side: rules.Left}, d.last)
	if err := d.lemma(lib, "L1-Sum-Closed", "x + y ∈ B", "closure"); err != nil {
		return nil, err
	}

	// x · (y + z) = x · y + x · z
	distributive := logic.Eq(logic.Mul(x, logic.Add(y, z)), logic.Add(logic.Mul(x, y), logic.Mul(x, z)))
	b, c := logic.Var("b"), logic.Var("c")
	d = start(distributive, sys, "instantiate P4b for x, y and z")
	d.axiom("P4b-Distributive-AND-over-OR")
	d.infer(overB([]string{"b", "c"}, logic.Eq(logic.Mul(x, logic.Add(b, c)), logic.Add(logic.Mul(x, b), logic.Mul(x, c)))),
		rules.UniversalInstantiation{Term: x}, d.last)
	d.infer(logic.ForallIn("c", boolSet, logic.Eq(logic.Mul(x, logic.Add(y, c)), logic.Add(logic.Mul(x, y), logic.Mul(x, c)))),
		rules.UniversalInstantiation{Term: y}, d.last)
	d.infer(distributive, rules.UniversalInstantiation{Term: z}, d.last)
	if err := d.theorem(lib, "T2-Distributive-AND-xyz", "x · (y + z) = x · y + x · z", "distributive"); err != nil {
		return nil, err
	}

	// ¬x = x'
	negation := logic.Eq(logic.Not(x), logic.Complement(x))
	d = start(negation, sys, "rename the variable of the NOT definition")
	d.definition("NOT")
	d.infer(negation, rules.Substitution{Var: "a", Replacement: x}, d.last)
	if err := d.theorem(lib, "T3-Not-Is-Complement", "¬x = x'", "complement"); err != nil {
		return nil, err
	}

	// both laws at once
	both := logic.And(commutative, distributive)
	d = start(both, sys, "combine T1 and T2")
	first := d.cite(lib, "T1-Commutative-OR-xy")
	second := d.cite(lib, "T2-Distributive-AND-xyz")
	d.infer(both, rules.Conjunction{}, first, second)
	if err := d.corollary(lib, "C1-Commutative-And-Distributive", "T1-Commutative-OR-xy", "T1 and T2 together"); err != nil {
		return nil, err
	}
	return lib, nil
}

func mustAdd(err error) {
	if err != nil {
		panic(err)
	}
}
