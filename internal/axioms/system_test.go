package axioms

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gnoswap-labs/axiom/internal/logic"
)

func toySystem(t *testing.T) *System {
	t.Helper()
	p, q := logic.Var("P"), logic.Var("Q")
	s := NewSystem("Toy", "a tiny system")
	require.NoError(t, s.AddAxiom(Axiom{Name: "A1", Statement: logic.Implies(p, q), Tags: []string{"implication"}}))
	require.NoError(t, s.AddPostulate(Postulate{Name: "P1", Statement: logic.Or(p, logic.Not(p)), Tags: []string{"classical", "implication"}}))
	require.NoError(t, s.AddDefinition(Definition{
		Name:      "Iff",
		Symbol:    "⟺",
		Statement: logic.And(logic.Implies(p, q), logic.Implies(q, p)),
		Tags:      []string{"connective"},
	}))
	return s
}

func TestSystemLookups(t *testing.T) {
	t.Parallel()
	s := toySystem(t)

	a, ok := s.Axiom("A1")
	require.True(t, ok)
	assert.Equal(t, "A1: P ⟹ Q", a.String())

	_, ok = s.Axiom("P1")
	assert.False(t, ok)

	p, ok := s.Postulate("P1")
	require.True(t, ok)
	assert.Equal(t, "P1", p.Name)

	d, ok := s.Definition("Iff")
	require.True(t, ok)
	assert.Equal(t, "⟺", d.Symbol)

	assert.Equal(t, 3, s.Len())
	assert.Equal(t, "Toy (1 axioms, 1 postulates, 1 definitions)", s.String())
}

func TestSystemCite(t *testing.T) {
	t.Parallel()
	s := toySystem(t)

	_, kind, err := s.Cite("A1")
	require.NoError(t, err)
	assert.Equal(t, KindAxiom, kind)

	got, kind, err := s.Cite("P1")
	require.NoError(t, err)
	assert.Equal(t, KindPostulate, kind)
	assert.Equal(t, "P1", got.Name)

	_, _, err = s.Cite("A9")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSystemRejectsBadEntries(t *testing.T) {
	t.Parallel()
	s := toySystem(t)

	tests := []struct {
		name string
		add  func() error
		want error
	}{
		{"duplicate axiom", func() error { return s.AddAxiom(Axiom{Name: "A1", Statement: logic.Var("R")}) }, ErrDuplicate},
		{"name shared across kinds", func() error { return s.AddDefinition(Definition{Name: "P1", Statement: logic.Var("R")}) }, ErrDuplicate},
		{"empty name", func() error { return s.AddAxiom(Axiom{Name: " ", Statement: logic.Var("R")}) }, ErrInvalid},
		{"nil statement", func() error { return s.AddPostulate(Postulate{Name: "P9"}) }, ErrInvalid},
	}
	for _, tt := range tests {
		assert.ErrorIs(t, tt.add(), tt.want, tt.name)
	}
	assert.Equal(t, 3, s.Len())
}

func TestSystemAcceptsAndDefines(t *testing.T) {
	t.Parallel()
	s := toySystem(t)
	p, q := logic.Var("P"), logic.Var("Q")

	assert.True(t, s.Accepts(logic.Implies(p, q)))
	assert.True(t, s.Accepts(logic.Or(p, logic.Not(p))))
	assert.False(t, s.Accepts(logic.Implies(q, p)))

	assert.True(t, s.Defines(logic.And(logic.Implies(p, q), logic.Implies(q, p))))
	assert.True(t, s.Defines(logic.Implies(q, p)))
	assert.True(t, s.Defines(logic.Implies(p, q)))
	assert.False(t, s.Defines(p))
}

func TestDefinitionClauses(t *testing.T) {
	t.Parallel()
	a, b, c := logic.Var("a"), logic.Var("b"), logic.Var("c")
	d := Definition{Name: "D", Statement: logic.And(logic.And(a, b), c)}
	clauses := d.Clauses()
	require.Len(t, clauses, 4)
	assert.True(t, logic.Equal(a, clauses[1]))
	assert.True(t, logic.Equal(b, clauses[2]))
	assert.True(t, logic.Equal(c, clauses[3]))

	single := Definition{Name: "E", Statement: a}
	assert.Len(t, single.Clauses(), 1)
}

func TestSystemTags(t *testing.T) {
	t.Parallel()
	s := toySystem(t)

	assert.Equal(t, []string{"classical", "connective", "implication"}, s.Tags())

	tagged := s.ByTag("implication")
	require.Len(t, tagged, 2)
	assert.Equal(t, "A1", tagged[0].Name)
	assert.Equal(t, "P1", tagged[1].Name)
	assert.Empty(t, s.ByTag("missing"))
}

func TestSystemsAreIndependent(t *testing.T) {
	t.Parallel()
	first := toySystem(t)
	second := NewSystem("Other", "")
	require.NoError(t, second.AddAxiom(Axiom{Name: "A1", Statement: logic.Var("R")}))

	a, _ := first.Axiom("A1")
	b, _ := second.Axiom("A1")
	assert.False(t, logic.Equal(a.Statement, b.Statement))
}

func TestListingsAreCopies(t *testing.T) {
	t.Parallel()
	s := toySystem(t)
	axioms := s.Axioms()
	axioms[0].Name = "changed"

	_, ok := s.Axiom("A1")
	assert.True(t, ok)
	assert.Len(t, s.Postulates(), 1)
	assert.Len(t, s.Definitions(), 1)
}

func TestSummary(t *testing.T) {
	t.Parallel()
	s := toySystem(t)
	out := s.Summary()

	assert.Contains(t, out, "Toy\n===\n")
	assert.Contains(t, out, "Axioms:\n  A1: P ⟹ Q")
	assert.Contains(t, out, "Postulates:\n  P1: P ∨ ¬P")
	assert.Contains(t, out, "Definitions:\n  Iff (⟺)")
	assert.Contains(t, out, "Tags: classical, connective, implication")

	empty := NewSystem("Empty", "")
	assert.NotContains(t, empty.Summary(), "Axioms:")
}
