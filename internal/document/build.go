package document

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gnoswap-labs/axiom/internal/axioms"
	"github.com/gnoswap-labs/axiom/internal/logic"
	"github.com/gnoswap-labs/axiom/internal/proof"
	"github.com/gnoswap-labs/axiom/internal/rules"
)

// StepError reports a proof that could not be built. Step is 1-based; zero
// means the proof as a whole.
type StepError struct {
	Proof string
	Step  int
	Err   error
}

func (e *StepError) Error() string {
	if e.Step == 0 {
		return fmt.Sprintf("proof %q: %v", e.Proof, e.Err)
	}
	return fmt.Sprintf("proof %q, step %d: %v", e.Proof, e.Step, e.Err)
}

func (e *StepError) Unwrap() error { return e.Err }

// Built is a proof constructed from a document. Err is set, and Proof may
// be partial, when construction stopped early.
type Built struct {
	Name  string
	Kind  string
	Proof *proof.Proof
	Err   error
}

// Result holds everything built from one document. Library contains the
// proofs that were completed, so later proofs can cite earlier ones.
type Result struct {
	System  *axioms.System
	Library *proof.Library
	Proofs  []Built
}

// Build constructs the axiom system and proofs of doc. Problems with
// individual proofs are reported in Result.Proofs; the returned error is
// for a malformed system.
func Build(doc *Document) (*Result, error) {
	res := &Result{Library: proof.NewLibrary()}
	if doc == nil {
		return res, nil
	}
	if doc.System != nil {
		sys, err := BuildSystem(doc.System)
		if err != nil {
			return nil, err
		}
		res.System = sys
	}
	for _, p := range doc.Proofs {
		res.Proofs = append(res.Proofs, buildProof(p, res.System, res.Library))
	}
	return res, nil
}

// BuildSystem constructs an axiom system.
func BuildSystem(s *System) (*axioms.System, error) {
	sys := axioms.NewSystem(s.Name, s.Description)
	for _, e := range s.Axioms {
		if err := sys.AddAxiom(axioms.Axiom{Name: e.Name, Statement: e.Statement.expr(), Description: e.Description, Tags: e.Tags}); err != nil {
			return nil, fmt.Errorf("system %s: %w", s.Name, err)
		}
	}
	for _, e := range s.Postulates {
		if err := sys.AddPostulate(axioms.Postulate{Name: e.Name, Statement: e.Statement.expr(), Description: e.Description, Tags: e.Tags}); err != nil {
			return nil, fmt.Errorf("system %s: %w", s.Name, err)
		}
	}
	for _, e := range s.Definitions {
		if err := sys.AddDefinition(axioms.Definition{Name: e.Name, Symbol: e.Symbol, Statement: e.Statement.expr(), Description: e.Description, Tags: e.Tags}); err != nil {
			return nil, fmt.Errorf("system %s: %w", s.Name, err)
		}
	}
	return sys, nil
}

func (n *Node) expr() logic.Expr {
	if n == nil {
		return nil
	}
	return n.Expr
}

func buildProof(d Proof, sys *axioms.System, lib *proof.Library) Built {
	b := Built{Name: d.Name, Kind: d.Kind}
	if b.Kind == "" {
		b.Kind = "theorem"
	}
	fail := func(step int, err error) Built {
		b.Err = &StepError{Proof: d.Name, Step: step, Err: err}
		return b
	}

	switch b.Kind {
	case "theorem", "lemma", "corollary":
	default:
		return fail(0, fmt.Errorf("%w: unknown proof kind %q", ErrInvalid, d.Kind))
	}
	if strings.TrimSpace(d.Name) == "" {
		return fail(0, fmt.Errorf("%w: proof without a name", ErrInvalid))
	}
	if d.Goal == nil {
		return fail(0, fmt.Errorf("%w: proof without a goal", ErrInvalid))
	}

	opts := []proof.Option{proof.WithDescription(d.Description)}
	if sys != nil {
		opts = append(opts, proof.WithSystem(sys))
	}
	for i, prem := range d.Premises {
		if prem == nil {
			return fail(0, fmt.Errorf("%w: premise %d is empty", ErrInvalid, i+1))
		}
		opts = append(opts, proof.WithPremises(prem.Expr))
	}
	b.Proof = proof.New(d.Goal.Expr, opts...)

	for i, s := range d.Steps {
		if err := addStep(b.Proof, lib, s); err != nil {
			return fail(i+1, err)
		}
	}

	// an unfinished proof is left pending for the verifier to report
	if err := b.Proof.MarkComplete(); err != nil {
		return b
	}

	var err error
	switch b.Kind {
	case "theorem":
		err = lib.AddTheorem(proof.Theorem{Name: d.Name, Proof: b.Proof, Description: d.Description, Tags: d.Tags})
	case "lemma":
		err = lib.AddLemma(proof.Lemma{Name: d.Name, Proof: b.Proof, Description: d.Description, Tags: d.Tags})
	case "corollary":
		err = lib.AddCorollary(proof.Corollary{Name: d.Name, Proof: b.Proof, Description: d.Description, Tags: d.Tags, FromTheorem: d.From})
	}
	if err != nil {
		return fail(0, err)
	}
	return b
}

func (s Step) justifications() int {
	n := 0
	for _, set := range []bool{
		s.Premise != nil, s.Hypothesis != nil, s.Axiom != "", s.Postulate != "",
		s.Definition != "", s.Theorem != "", s.Lemma != "", s.Infer != nil,
		s.Previous != nil, s.Kind != "",
	} {
		if set {
			n++
		}
	}
	return n
}

var errNoStatement = fmt.Errorf("%w: step needs a statement", ErrInvalid)

func addStep(p *proof.Proof, lib *proof.Library, s Step) error {
	if n := s.justifications(); n != 1 {
		return fmt.Errorf("%w: step needs exactly one justification, found %d", ErrInvalid, n)
	}
	stmt := s.Statement.expr()

	var err error
	switch {
	case s.Premise != nil:
		_, err = p.AddPremise(s.Premise.Expr)

	case s.Hypothesis != nil:
		_, err = p.AddHypothesis(s.Hypothesis.Expr, s.Rationale)

	case s.Axiom != "" || s.Postulate != "":
		name, kind := s.Axiom, proof.Axiom
		if name == "" {
			name, kind = s.Postulate, proof.Postulate
		}
		if stmt == nil {
			_, err = p.AddAxiomStep(name)
		} else {
			_, err = p.AddStep(stmt, orDefault(s.Rationale, titled(kind)+" "+name), kind, nil, nil)
		}

	case s.Definition != "":
		if stmt == nil {
			_, err = p.AddDefinitionStep(s.Definition)
		} else {
			_, err = p.AddStep(stmt, orDefault(s.Rationale, "Definition "+s.Definition), proof.Definition, nil, nil)
		}

	case s.Theorem != "" || s.Lemma != "":
		name, kind := s.Theorem, proof.TheoremRef
		if name == "" {
			name, kind = s.Lemma, proof.LemmaRef
		}
		if stmt == nil {
			_, err = p.AddCitationStep(lib, name)
		} else {
			_, err = p.AddStep(stmt, orDefault(s.Rationale, titled(kind)+" "+name), kind, nil, nil)
		}

	case s.Infer != nil:
		if stmt == nil {
			return errNoStatement
		}
		rule, ruleErr := s.Infer.rule()
		if ruleErr != nil {
			return ruleErr
		}
		_, err = p.AddInferenceStep(stmt, rule, s.Infer.From, s.Rationale)

	case s.Previous != nil:
		if stmt == nil {
			return errNoStatement
		}
		_, err = p.AddStep(stmt, s.Rationale, proof.PreviousStep, s.Previous.From, nil)

	default:
		kind, kindErr := proof.ParseJustification(s.Kind)
		if kindErr != nil {
			return fmt.Errorf("%w: %v", ErrInvalid, kindErr)
		}
		if kind == proof.Inference {
			return fmt.Errorf("%w: inference steps are written with infer", ErrInvalid)
		}
		if stmt == nil {
			return errNoStatement
		}
		_, err = p.AddStep(stmt, s.Rationale, kind, s.From, nil)
	}
	return err
}

func (inf *Inference) params() (rules.Params, error) {
	side, err := rules.ParseSide(inf.Side)
	if err != nil {
		return rules.Params{}, err
	}
	return rules.Params{
		Term:        inf.Term.expr(),
		Var:         inf.Var,
		Replacement: inf.Replacement.expr(),
		With:        inf.With.expr(),
		Side:        side,
		Eliminate:   inf.Eliminate,
		Bases:       inf.Bases,
	}, nil
}

func (inf *Inference) rule() (rules.Rule, error) {
	if inf.Rule == "" {
		return nil, fmt.Errorf("%w: infer needs a rule", ErrInvalid)
	}
	params, err := inf.params()
	if err != nil {
		return nil, err
	}
	return rules.Build(inf.Rule, params)
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

func titled(j proof.Justification) string {
	s := j.String()
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// IsBuildError reports whether err came from building a proof.
func IsBuildError(err error) bool {
	var se *StepError
	return errors.As(err, &se)
}
