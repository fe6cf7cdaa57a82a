package proof

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gnoswap-labs/axiom/internal/logic"
)

func completed(t *testing.T, goal logic.Expr) *Proof {
	t.Helper()
	pr := New(goal)
	_, err := pr.AddPremise(goal)
	require.NoError(t, err)
	require.NoError(t, pr.MarkComplete())
	return pr
}

func TestLibraryRejectsIncompleteProof(t *testing.T) {
	t.Parallel()
	lib := NewLibrary()

	pending := New(q)
	_, err := pending.AddPremise(q)
	require.NoError(t, err)

	assert.ErrorIs(t, lib.AddTheorem(Theorem{Name: "T", Statement: q, Proof: pending}), ErrIncompleteProof)
	assert.ErrorIs(t, lib.AddTheorem(Theorem{Name: "T", Statement: q}), ErrIncompleteProof)
	assert.ErrorIs(t, lib.AddLemma(Lemma{Name: "L", Statement: q, Proof: pending}), ErrIncompleteProof)
	assert.Zero(t, lib.Len())

	// a rejected name stays free
	require.NoError(t, pending.MarkComplete())
	assert.NoError(t, lib.AddTheorem(Theorem{Name: "T", Statement: q, Proof: pending}))
}

func TestLibraryRejectsStatementMismatch(t *testing.T) {
	t.Parallel()
	lib := NewLibrary()
	err := lib.AddTheorem(Theorem{Name: "T", Statement: r, Proof: completed(t, q)})
	assert.ErrorIs(t, err, ErrStatementMismatch)
}

func TestLibraryFillsStatementFromGoal(t *testing.T) {
	t.Parallel()
	lib := NewLibrary()
	require.NoError(t, lib.AddLemma(Lemma{Name: "L", Proof: completed(t, q)}))

	lm, ok := lib.Lemma("L")
	require.True(t, ok)
	assert.True(t, logic.Equal(q, lm.Statement))
}

func TestLibraryDuplicatesAndCorollaries(t *testing.T) {
	t.Parallel()
	lib := NewLibrary()
	require.NoError(t, lib.AddTheorem(Theorem{Name: "T", Proof: completed(t, q)}))

	assert.ErrorIs(t, lib.AddLemma(Lemma{Name: "T", Proof: completed(t, p)}), ErrDuplicate)
	assert.ErrorIs(t, lib.AddCorollary(Corollary{Name: "C", Proof: completed(t, p), FromTheorem: "missing"}), ErrNotFound)
	require.NoError(t, lib.AddCorollary(Corollary{Name: "C", Proof: completed(t, p), FromTheorem: "T"}))

	c, ok := lib.Corollary("C")
	require.True(t, ok)
	assert.Equal(t, "T", c.FromTheorem)
	assert.Equal(t, 2, lib.Len())
}

func TestLibraryCite(t *testing.T) {
	t.Parallel()
	lib := NewLibrary()
	require.NoError(t, lib.AddTheorem(Theorem{Name: "T", Proof: completed(t, q)}))
	require.NoError(t, lib.AddLemma(Lemma{Name: "L", Proof: completed(t, p)}))
	require.NoError(t, lib.AddCorollary(Corollary{Name: "C", Proof: completed(t, r), FromTheorem: "T"}))

	stmt, kind, err := lib.Cite("L")
	require.NoError(t, err)
	assert.Equal(t, LemmaRef, kind)
	assert.True(t, logic.Equal(p, stmt))

	_, kind, err = lib.Cite("C")
	require.NoError(t, err)
	assert.Equal(t, TheoremRef, kind)

	_, _, err = lib.Cite("X")
	assert.ErrorIs(t, err, ErrNotFound)

	var none *Library
	_, _, err = none.Cite("T")
	assert.ErrorIs(t, err, ErrNotFound)

	assert.True(t, lib.Holds(TheoremRef, q))
	assert.True(t, lib.Holds(TheoremRef, r))
	assert.False(t, lib.Holds(TheoremRef, p))
	assert.True(t, lib.Holds(LemmaRef, p))
	assert.False(t, lib.Holds(Axiom, q))
	assert.False(t, none.Holds(TheoremRef, q))
}

func TestCitationStep(t *testing.T) {
	t.Parallel()
	lib := NewLibrary()
	require.NoError(t, lib.AddLemma(Lemma{Name: "L", Proof: completed(t, p)}))

	pr := New(p)
	i, err := pr.AddCitationStep(lib, "L")
	require.NoError(t, err)
	step, _ := pr.Step(i)
	assert.Equal(t, LemmaRef, step.Kind)
	assert.Equal(t, "Lemma L", step.Rationale)

	_, err = pr.AddCitationStep(lib, "T")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, pr.MarkComplete())
}

func TestShowAndList(t *testing.T) {
	t.Parallel()
	lib := NewLibrary()
	assert.Equal(t, "(empty library)\n", lib.List())

	th := Theorem{Name: "T", Proof: completed(t, q), Description: "Q holds"}
	require.NoError(t, lib.AddTheorem(th))
	require.NoError(t, lib.AddCorollary(Corollary{Name: "C", Proof: completed(t, p), FromTheorem: "T"}))

	out := lib.List()
	assert.Contains(t, out, "Theorems:\n  T: Q\n")
	assert.Contains(t, out, "Corollaries:\n  C: P (from T)\n")

	stored, _ := lib.Theorem("T")
	shown := stored.Show()
	assert.Contains(t, shown, "Theorem T: Q\nQ holds\n")
	assert.Contains(t, shown, "Proof of T")

	c, _ := lib.Corollary("C")
	assert.Contains(t, c.Show(), "Follows from theorem T")
}
