package proof

import (
	"fmt"
	"strings"

	"github.com/gnoswap-labs/axiom/internal/logic"
)

// Theorem is a proven statement.
type Theorem struct {
	Name        string
	Statement   logic.Expr
	Proof       *Proof
	Description string
	Tags        []string
}

func (t Theorem) Show() string {
	return show("Theorem", t.Name, t.Statement, t.Description, "", t.Proof)
}

// Lemma is a proven statement used as a stepping stone.
type Lemma struct {
	Name        string
	Statement   logic.Expr
	Proof       *Proof
	Description string
	Tags        []string
}

func (l Lemma) Show() string {
	return show("Lemma", l.Name, l.Statement, l.Description, "", l.Proof)
}

// Corollary is a proven statement that follows from a theorem.
type Corollary struct {
	Name        string
	Statement   logic.Expr
	Proof       *Proof
	Description string
	Tags        []string
	FromTheorem string
}

func (c Corollary) Show() string {
	return show("Corollary", c.Name, c.Statement, c.Description, c.FromTheorem, c.Proof)
}

func show(kind, name string, stmt logic.Expr, description, from string, p *Proof) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s %s: %s\n", kind, name, stmt)
	if from != "" {
		fmt.Fprintf(&sb, "Follows from theorem %s\n", from)
	}
	if description != "" {
		sb.WriteString(description)
		sb.WriteString("\n")
	}
	if p != nil {
		sb.WriteString("\n")
		sb.WriteString(p.Show(name))
	}
	return sb.String()
}

// Library holds proven results by name. Only complete proofs whose goal is
// the stated result are accepted.
type Library struct {
	theorems    []Theorem
	lemmas      []Lemma
	corollaries []Corollary
	names       map[string]string
}

func NewLibrary() *Library {
	return &Library{names: make(map[string]string)}
}

// AddTheorem registers t. A nil statement is taken from the proof goal.
func (l *Library) AddTheorem(t Theorem) error {
	stmt, err := l.admit("theorem", t.Name, t.Statement, t.Proof)
	if err != nil {
		return err
	}
	t.Statement = stmt
	l.theorems = append(l.theorems, t)
	return nil
}

// AddLemma registers a lemma.
func (l *Library) AddLemma(lm Lemma) error {
	stmt, err := l.admit("lemma", lm.Name, lm.Statement, lm.Proof)
	if err != nil {
		return err
	}
	lm.Statement = stmt
	l.lemmas = append(l.lemmas, lm)
	return nil
}

// AddCorollary registers a corollary. Its parent theorem, when named,
// must already be in the library.
func (l *Library) AddCorollary(c Corollary) error {
	if c.FromTheorem != "" {
		if _, ok := l.Theorem(c.FromTheorem); !ok {
			return fmt.Errorf("corollary %q: %w: theorem %q", c.Name, ErrNotFound, c.FromTheorem)
		}
	}
	stmt, err := l.admit("corollary", c.Name, c.Statement, c.Proof)
	if err != nil {
		return err
	}
	c.Statement = stmt
	l.corollaries = append(l.corollaries, c)
	return nil
}

func (l *Library) admit(kind, name string, stmt logic.Expr, p *Proof) (logic.Expr, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("%w: %s without a name", ErrInvalidStep, kind)
	}
	if p == nil || !p.IsComplete() {
		return nil, fmt.Errorf("%s %q: %w", kind, name, ErrIncompleteProof)
	}
	if stmt == nil {
		stmt = p.Goal()
	}
	if !logic.Equal(stmt, p.Goal()) {
		return nil, fmt.Errorf("%s %q: %w: states %s, proves %s", kind, name, ErrStatementMismatch, stmt, p.Goal())
	}
	if l.names == nil {
		l.names = make(map[string]string)
	}
	if prev, ok := l.names[name]; ok {
		return nil, fmt.Errorf("%s %q: %w: already a %s", kind, name, ErrDuplicate, prev)
	}
	l.names[name] = kind
	return stmt, nil
}

func (l *Library) Theorem(name string) (Theorem, bool) {
	for _, t := range l.theorems {
		if t.Name == name {
			return t, true
		}
	}
	return Theorem{}, false
}

func (l *Library) Lemma(name string) (Lemma, bool) {
	for _, lm := range l.lemmas {
		if lm.Name == name {
			return lm, true
		}
	}
	return Lemma{}, false
}

func (l *Library) Corollary(name string) (Corollary, bool) {
	for _, c := range l.corollaries {
		if c.Name == name {
			return c, true
		}
	}
	return Corollary{}, false
}

// Cite resolves name to its statement. Theorems and corollaries are cited
// as theorems, lemmas as lemmas.
func (l *Library) Cite(name string) (logic.Expr, Justification, error) {
	if l != nil {
		if t, ok := l.Theorem(name); ok {
			return t.Statement, TheoremRef, nil
		}
		if c, ok := l.Corollary(name); ok {
			return c.Statement, TheoremRef, nil
		}
		if lm, ok := l.Lemma(name); ok {
			return lm.Statement, LemmaRef, nil
		}
	}
	return nil, 0, fmt.Errorf("%w: no theorem or lemma %q", ErrNotFound, name)
}

// Holds reports whether stmt is established by an entry citable with
// kind, which must be TheoremRef or LemmaRef.
func (l *Library) Holds(kind Justification, stmt logic.Expr) bool {
	if l == nil {
		return false
	}
	switch kind {
	case TheoremRef:
		for _, t := range l.theorems {
			if logic.Equal(t.Statement, stmt) {
				return true
			}
		}
		for _, c := range l.corollaries {
			if logic.Equal(c.Statement, stmt) {
				return true
			}
		}
	case LemmaRef:
		for _, lm := range l.lemmas {
			if logic.Equal(lm.Statement, stmt) {
				return true
			}
		}
	}
	return false
}

func (l *Library) Theorems() []Theorem { return append([]Theorem(nil), l.theorems...) }

func (l *Library) Lemmas() []Lemma { return append([]Lemma(nil), l.lemmas...) }

func (l *Library) Corollaries() []Corollary { return append([]Corollary(nil), l.corollaries...) }

func (l *Library) Len() int {
	return len(l.theorems) + len(l.lemmas) + len(l.corollaries)
}

// List renders the library contents grouped by kind.
func (l *Library) List() string {
	var sb strings.Builder
	if len(l.theorems) > 0 {
		sb.WriteString("Theorems:\n")
		for _, t := range l.theorems {
			fmt.Fprintf(&sb, "  %s: %s\n", t.Name, t.Statement)
		}
	}
	if len(l.lemmas) > 0 {
		sb.WriteString("Lemmas:\n")
		for _, lm := range l.lemmas {
			fmt.Fprintf(&sb, "  %s: %s\n", lm.Name, lm.Statement)
		}
	}
	if len(l.corollaries) > 0 {
		sb.WriteString("Corollaries:\n")
		for _, c := range l.corollaries {
			fmt.Fprintf(&sb, "  %s: %s (from %s)\n", c.Name, c.Statement, c.FromTheorem)
		}
	}
	if sb.Len() == 0 {
		return "(empty library)\n"
	}
	return sb.String()
}
