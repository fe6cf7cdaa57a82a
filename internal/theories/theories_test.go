package theories

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gnoswap-labs/axiom/internal/logic"
	"github.com/gnoswap-labs/axiom/internal/proof"
	"github.com/gnoswap-labs/axiom/internal/verify"
)

func TestHuntington(t *testing.T) {
	t.Parallel()
	s := Huntington()
	assert.Len(t, s.Postulates(), 9)
	assert.Empty(t, s.Axioms())
	assert.Len(t, s.Definitions(), 1)

	commutative := s.ByTag("commutative")
	require.Len(t, commutative, 2)
	assert.Equal(t, "P2a-Commutative-OR", commutative[0].Name)

	p, ok := s.Postulate("P2a-Commutative-OR")
	require.True(t, ok)
	assert.Equal(t, "∀a ∈ B: ∀b ∈ B: a + b = b + a", p.Statement.String())

	c, ok := s.Postulate("P5-Complement")
	require.True(t, ok)
	assert.Equal(t, "∀a ∈ B: ∃a' ∈ B: a + a' = 1 ∧ a · a' = 0", c.Statement.String())
}

func TestPeano(t *testing.T) {
	t.Parallel()
	s := Peano()
	assert.Len(t, s.Axioms(), 5)
	assert.Len(t, s.Definitions(), 3)

	a, ok := s.Axiom("P2-Successor")
	require.True(t, ok)
	assert.Equal(t, "∀n ∈ ℕ: n ∈ ℕ ⟹ S(n) ∈ ℕ", a.Statement.String())

	assert.True(t, s.Defines(logic.ForallIn("n", Naturals, logic.Eq(logic.Mul(logic.Var("n"), Zero), Zero))))
}

func verifyLibrary(t *testing.T, lib *proof.Library) {
	t.Helper()
	v := verify.New(verify.WithLibrary(lib), verify.WithMode(verify.Batch))
	for _, th := range lib.Theorems() {
		report := v.Verify(th.Proof)
		assert.True(t, report.Valid, "%s: %s", th.Name, report)
	}
	for _, lm := range lib.Lemmas() {
		report := v.Verify(lm.Proof)
		assert.True(t, report.Valid, "%s: %s", lm.Name, report)
	}
	for _, c := range lib.Corollaries() {
		report := v.Verify(c.Proof)
		assert.True(t, report.Valid, "%s: %s", c.Name, report)
	}
}

func TestBooleanLibraryVerifies(t *testing.T) {
	t.Parallel()
	lib, err := BooleanLibrary()
	require.NoError(t, err)
	assert.Equal(t, 5, lib.Len())
	verifyLibrary(t, lib)

	th, ok := lib.Theorem("T1-Commutative-OR-xy")
	require.True(t, ok)
	assert.Equal(t, "x + y = y + x", th.Statement.String())
}

func TestPeanoLibraryVerifies(t *testing.T) {
	t.Parallel()
	lib, err := PeanoLibrary()
	require.NoError(t, err)
	assert.Equal(t, 5, lib.Len())
	verifyLibrary(t, lib)

	c, ok := lib.Corollary("C1-One-Natural")
	require.True(t, ok)
	assert.Equal(t, "S(0) ∈ ℕ", c.Statement.String())
}

func TestBooleanIdentities(t *testing.T) {
	t.Parallel()
	lib, err := BooleanLibrary()
	require.NoError(t, err)

	// every derived quantifier-free result holds in the two-element algebra
	for _, th := range lib.Theorems() {
		ok, err := IsBooleanIdentity(th.Statement)
		require.NoError(t, err, th.Name)
		assert.True(t, ok, th.Name)
	}

	x := logic.Var("x")
	ok, err := IsBooleanIdentity(logic.Eq(logic.Add(x, x), x))
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = IsBooleanIdentity(logic.Eq(logic.Add(x, One), x))
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = IsBooleanIdentity(logic.Forall("x", x))
	assert.ErrorIs(t, err, ErrNotEvaluable)
}

func TestEvalBoolean(t *testing.T) {
	t.Parallel()
	x, y := logic.Var("x"), logic.Var("y")
	values := map[string]bool{"x": true, "y": false}

	tests := []struct {
		expr logic.Expr
		want bool
	}{
		{logic.Add(x, y), true},
		{logic.Mul(x, y), false},
		{logic.Complement(x), false},
		{logic.Not(y), true},
		{logic.Implies(x, y), false},
		{logic.Neq(x, y), true},
		{logic.Mul(x, One), true},
		{logic.Add(y, Zero), false},
	}
	for _, tt := range tests {
		got, err := EvalBoolean(tt.expr, values)
		require.NoError(t, err, tt.expr.String())
		assert.Equal(t, tt.want, got, tt.expr.String())
	}

	_, err := EvalBoolean(logic.Var("z"), values)
	assert.ErrorIs(t, err, ErrNotEvaluable)
	_, err = EvalBoolean(logic.Lt(x, y), values)
	assert.ErrorIs(t, err, ErrNotEvaluable)
}

func TestArithmetic(t *testing.T) {
	t.Parallel()
	assert.Equal(t, uint64(7), Add(3, 4))
	assert.Equal(t, uint64(5), Add(5, 0))
	assert.Equal(t, uint64(12), Multiply(3, 4))
	assert.Equal(t, uint64(0), Multiply(3, 0))
	assert.Equal(t, uint64(8), Power(2, 3))
	assert.Equal(t, uint64(1), Power(9, 0))

	assert.Equal(t, "0", Numeral(0).String())
	assert.Equal(t, "S(S(0))", Numeral(2).String())
}

func TestCatalog(t *testing.T) {
	t.Parallel()
	all := Catalog()
	require.Len(t, all, 2)
	assert.Equal(t, "boolean", all[0].Name)
	assert.Equal(t, "peano", all[1].Name)

	th, ok := Lookup("peano")
	require.True(t, ok)
	assert.Equal(t, "Natural Numbers (Peano)", th.System().Name)

	_, ok = Lookup("zfc")
	assert.False(t, ok)
}
