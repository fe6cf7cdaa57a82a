// Package proof implements append-only proofs, the theorems they
// establish and libraries of proven results.
//
// A Proof starts pending and becomes complete once its last step states
// the goal. Steps are never edited or removed, so a step index stays a
// valid reference for the rest of the proof's life. A proof has a single
// writer while pending; once complete it is read-only and may be shared.
package proof

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gnoswap-labs/axiom/internal/axioms"
	"github.com/gnoswap-labs/axiom/internal/logic"
	"github.com/gnoswap-labs/axiom/internal/rules"
)

var (
	ErrSealed            = errors.New("proof is complete")
	ErrNoSystem          = errors.New("proof has no axiom system")
	ErrInvalidStep       = errors.New("invalid step")
	ErrIncompleteProof   = errors.New("proof is not complete")
	ErrStatementMismatch = errors.New("statement does not match proof goal")
	ErrDuplicate         = errors.New("duplicate name")
	ErrNotFound          = errors.New("not found")
)

// CompletionError is returned by MarkComplete when the proof does not
// end with its goal.
type CompletionError struct {
	Goal logic.Expr
	// Last is the statement of the last step, nil when there are no steps.
	Last logic.Expr
}

func (e *CompletionError) Error() string {
	if e.Last == nil {
		return "cannot complete proof of " + e.Goal.String() + ": no steps"
	}
	return fmt.Sprintf("cannot complete proof of %s: last step states %s", e.Goal, e.Last)
}

// Option configures a Proof.
type Option func(*Proof)

// WithSystem binds the axiom system that axiom and definition steps
// resolve against.
func WithSystem(s *axioms.System) Option {
	return func(p *Proof) { p.system = s }
}

// WithPremises declares premises without adding steps for them.
func WithPremises(premises ...logic.Expr) Option {
	return func(p *Proof) {
		for _, e := range premises {
			p.declare(&p.premises, e)
		}
	}
}

func WithDescription(description string) Option {
	return func(p *Proof) { p.description = description }
}

// Proof is a derivation of a goal.
type Proof struct {
	goal        logic.Expr
	description string
	system      *axioms.System
	steps       []Step
	premises    []logic.Expr
	hypotheses  []logic.Expr
	complete    bool
}

// New starts a pending proof of goal. It panics if goal is nil.
func New(goal logic.Expr, opts ...Option) *Proof {
	if goal == nil {
		panic("proof: nil goal")
	}
	p := &Proof{goal: goal}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func (p *Proof) declare(list *[]logic.Expr, e logic.Expr) {
	if e == nil {
		panic("proof: nil premise")
	}
	for _, have := range *list {
		if logic.Equal(have, e) {
			return
		}
	}
	*list = append(*list, e)
}

func (p *Proof) appendStep(s Step) (int, error) {
	if p.complete {
		return 0, ErrSealed
	}
	if s.Statement == nil {
		return 0, fmt.Errorf("%w: step %d has no statement", ErrInvalidStep, len(p.steps)+1)
	}
	p.steps = append(p.steps, s.clone())
	return len(p.steps), nil
}

// AddPremise declares stmt as a premise and appends it as a step.
func (p *Proof) AddPremise(stmt logic.Expr) (int, error) {
	if p.complete {
		return 0, ErrSealed
	}
	if stmt == nil {
		return 0, fmt.Errorf("%w: nil premise", ErrInvalidStep)
	}
	p.declare(&p.premises, stmt)
	return p.appendStep(Step{Statement: stmt, Rationale: "Premise", Kind: Premise})
}

// AddHypothesis declares stmt as a hypothesis and appends it as a step.
func (p *Proof) AddHypothesis(stmt logic.Expr, rationale string) (int, error) {
	if p.complete {
		return 0, ErrSealed
	}
	if stmt == nil {
		return 0, fmt.Errorf("%w: nil hypothesis", ErrInvalidStep)
	}
	if rationale == "" {
		rationale = "Hypothesis"
	}
	p.declare(&p.hypotheses, stmt)
	return p.appendStep(Step{Statement: stmt, Rationale: rationale, Kind: Hypothesis})
}

// AddStep appends a step as given. Nothing but the presence of a
// statement is checked; the verifier judges the rest.
func (p *Proof) AddStep(stmt logic.Expr, rationale string, kind Justification, dependsOn []int, rule rules.Rule) (int, error) {
	return p.appendStep(Step{
		Statement: stmt,
		Rationale: rationale,
		Kind:      kind,
		DependsOn: dependsOn,
		Rule:      rule,
	})
}

// AddAxiomStep appends the statement of the named axiom or postulate of
// the bound system.
func (p *Proof) AddAxiomStep(name string) (int, error) {
	if p.complete {
		return 0, ErrSealed
	}
	if p.system == nil {
		return 0, fmt.Errorf("cite %q: %w", name, ErrNoSystem)
	}
	a, kind, err := p.system.Cite(name)
	if err != nil {
		return 0, err
	}
	step := Step{Statement: a.Statement, Rationale: "Axiom " + name, Kind: Axiom, Citation: name}
	if kind == axioms.KindPostulate {
		step.Kind = Postulate
		step.Rationale = "Postulate " + name
	}
	return p.appendStep(step)
}

// AddDefinitionStep appends the statement of the named definition of the
// bound system.
func (p *Proof) AddDefinitionStep(name string) (int, error) {
	if p.complete {
		return 0, ErrSealed
	}
	if p.system == nil {
		return 0, fmt.Errorf("cite %q: %w", name, ErrNoSystem)
	}
	d, ok := p.system.Definition(name)
	if !ok {
		return 0, fmt.Errorf("%w: no definition %q in %s", ErrNotFound, name, p.system.Name)
	}
	return p.appendStep(Step{Statement: d.Statement, Rationale: "Definition " + name, Kind: Definition, Citation: name})
}

// AddInferenceStep appends conclusion as derived by rule from the steps in
// dependsOn. The rationale defaults to the rule name.
func (p *Proof) AddInferenceStep(conclusion logic.Expr, rule rules.Rule, dependsOn []int, rationale string) (int, error) {
	if rule == nil {
		return 0, fmt.Errorf("%w: inference step without a rule", ErrInvalidStep)
	}
	if rationale == "" {
		rationale = rule.Name()
	}
	return p.appendStep(Step{
		Statement: conclusion,
		Rationale: rationale,
		Kind:      Inference,
		DependsOn: dependsOn,
		Rule:      rule,
	})
}

// AddCitationStep appends the statement of a theorem, corollary or lemma
// from lib.
func (p *Proof) AddCitationStep(lib *Library, name string) (int, error) {
	if p.complete {
		return 0, ErrSealed
	}
	stmt, kind, err := lib.Cite(name)
	if err != nil {
		return 0, err
	}
	rationale := "Theorem " + name
	if kind == LemmaRef {
		rationale = "Lemma " + name
	}
	return p.appendStep(Step{Statement: stmt, Rationale: rationale, Kind: kind, Citation: name})
}

// MarkComplete seals the proof. It fails, leaving the proof pending, unless
// the last step states the goal. Completing a complete proof does nothing.
func (p *Proof) MarkComplete() error {
	if p.complete {
		return nil
	}
	if len(p.steps) == 0 {
		return &CompletionError{Goal: p.goal}
	}
	last := p.steps[len(p.steps)-1].Statement
	if !logic.Equal(last, p.goal) {
		return &CompletionError{Goal: p.goal, Last: last}
	}
	p.complete = true
	return nil
}

func (p *Proof) IsComplete() bool { return p.complete }

func (p *Proof) Goal() logic.Expr { return p.goal }

func (p *Proof) Description() string { return p.description }

// System returns the bound axiom system, or nil.
func (p *Proof) System() *axioms.System { return p.system }

// Len returns the number of steps.
func (p *Proof) Len() int { return len(p.steps) }

// Step returns the step at the 1-based index i.
func (p *Proof) Step(i int) (Step, bool) {
	if i < 1 || i > len(p.steps) {
		return Step{}, false
	}
	return p.steps[i-1].clone(), true
}

func (p *Proof) Steps() []Step {
	out := make([]Step, len(p.steps))
	for i, s := range p.steps {
		out[i] = s.clone()
	}
	return out
}

func (p *Proof) Premises() []logic.Expr {
	return append([]logic.Expr(nil), p.premises...)
}

func (p *Proof) Hypotheses() []logic.Expr {
	return append([]logic.Expr(nil), p.hypotheses...)
}

// HasPremise reports whether e is a declared premise.
func (p *Proof) HasPremise(e logic.Expr) bool { return contains(p.premises, e) }

// HasHypothesis reports whether e is a declared hypothesis.
func (p *Proof) HasHypothesis(e logic.Expr) bool { return contains(p.hypotheses, e) }

func contains(list []logic.Expr, e logic.Expr) bool {
	for _, have := range list {
		if logic.Equal(have, e) {
			return true
		}
	}
	return false
}

func (p *Proof) String() string {
	state := "pending"
	if p.complete {
		state = "complete"
	}
	return fmt.Sprintf("proof of %s (%d steps, %s)", p.goal, len(p.steps), state)
}

// Show renders the proof as a numbered transcript.
func (p *Proof) Show(title string) string {
	var sb strings.Builder
	if title != "" {
		fmt.Fprintf(&sb, "Proof of %s\n", title)
	} else {
		sb.WriteString("Proof\n")
	}
	fmt.Fprintf(&sb, "Goal: %s\n", p.goal)
	if p.description != "" {
		sb.WriteString(p.description)
		sb.WriteString("\n")
	}
	if len(p.premises) > 0 {
		fmt.Fprintf(&sb, "Premises: %s\n", joinExprs(p.premises))
	}
	if len(p.hypotheses) > 0 {
		fmt.Fprintf(&sb, "Hypotheses: %s\n", joinExprs(p.hypotheses))
	}

	width := 0
	for _, s := range p.steps {
		if n := len([]rune(s.Statement.String())); n > width {
			width = n
		}
	}
	for i, s := range p.steps {
		stmt := s.Statement.String()
		pad := strings.Repeat(" ", width-len([]rune(stmt)))
		fmt.Fprintf(&sb, "%3d. %s%s  [%s]\n", i+1, stmt, pad, s.Reason())
	}

	if p.complete {
		sb.WriteString("∎\n")
	} else {
		sb.WriteString("(incomplete)\n")
	}
	return sb.String()
}

func joinExprs(exprs []logic.Expr) string {
	parts := make([]string, len(exprs))
	for i, e := range exprs {
		parts[i] = e.String()
	}
	return strings.Join(parts, ", ")
}
