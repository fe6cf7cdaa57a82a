package document

import (
	"fmt"

	"github.com/gnoswap-labs/axiom/internal/axioms"
	"github.com/gnoswap-labs/axiom/internal/logic"
	"github.com/gnoswap-labs/axiom/internal/proof"
	"github.com/gnoswap-labs/axiom/internal/rules"
)

// FromSystem returns a document holding sys.
func FromSystem(sys *axioms.System) *Document {
	s := &System{Name: sys.Name, Description: sys.Description}
	for _, a := range sys.Axioms() {
		s.Axioms = append(s.Axioms, Entry{Name: a.Name, Statement: N(a.Statement), Description: a.Description, Tags: a.Tags})
	}
	for _, p := range sys.Postulates() {
		s.Postulates = append(s.Postulates, Entry{Name: p.Name, Statement: N(p.Statement), Description: p.Description, Tags: p.Tags})
	}
	for _, d := range sys.Definitions() {
		s.Definitions = append(s.Definitions, Entry{Name: d.Name, Symbol: d.Symbol, Statement: N(d.Statement), Description: d.Description, Tags: d.Tags})
	}
	return &Document{System: s}
}

// FromLibrary returns a document holding sys and every proof of lib.
// Lemmas come first and corollaries last, so citations of lemmas by
// theorems and of theorems by corollaries resolve when the document is
// built again.
func FromLibrary(sys *axioms.System, lib *proof.Library) (*Document, error) {
	doc := &Document{}
	if sys != nil {
		doc = FromSystem(sys)
	}
	add := func(name, kind, from, description string, tags []string, p *proof.Proof) error {
		d, err := FromProof(name, p)
		if err != nil {
			return err
		}
		d.Kind, d.From, d.Description, d.Tags = kind, from, description, tags
		doc.Proofs = append(doc.Proofs, d)
		return nil
	}
	for _, l := range lib.Lemmas() {
		if err := add(l.Name, "lemma", "", l.Description, l.Tags, l.Proof); err != nil {
			return nil, err
		}
	}
	for _, t := range lib.Theorems() {
		if err := add(t.Name, "", "", t.Description, t.Tags, t.Proof); err != nil {
			return nil, err
		}
	}
	for _, c := range lib.Corollaries() {
		if err := add(c.Name, "corollary", c.FromTheorem, c.Description, c.Tags, c.Proof); err != nil {
			return nil, err
		}
	}
	return doc, nil
}

// FromProof converts p to its document form.
func FromProof(name string, p *proof.Proof) (Proof, error) {
	d := Proof{Name: name, Goal: N(p.Goal()), Description: p.Description()}
	for _, prem := range p.Premises() {
		d.Premises = append(d.Premises, N(prem))
	}
	for i, s := range p.Steps() {
		step, err := fromStep(s)
		if err != nil {
			return Proof{}, &StepError{Proof: name, Step: i + 1, Err: err}
		}
		d.Steps = append(d.Steps, step)
	}
	return d, nil
}

func fromStep(s proof.Step) (Step, error) {
	cited := func(kind proof.Justification) string {
		return titled(kind) + " " + s.Citation
	}
	var out Step
	switch s.Kind {
	case proof.Premise:
		out.Premise = N(s.Statement)
		return out, nil

	case proof.Hypothesis:
		out.Hypothesis = N(s.Statement)
		if s.Rationale != "Hypothesis" {
			out.Rationale = s.Rationale
		}
		return out, nil

	case proof.Axiom, proof.Postulate, proof.Definition, proof.TheoremRef, proof.LemmaRef:
		if s.Citation == "" {
			break
		}
		switch s.Kind {
		case proof.Axiom:
			out.Axiom = s.Citation
		case proof.Postulate:
			out.Postulate = s.Citation
		case proof.Definition:
			out.Definition = s.Citation
		case proof.TheoremRef:
			out.Theorem = s.Citation
		case proof.LemmaRef:
			out.Lemma = s.Citation
		}
		if s.Rationale != cited(s.Kind) {
			out.Rationale = s.Rationale
		}
		return out, nil

	case proof.Inference:
		key, params, ok := rules.Describe(s.Rule)
		if !ok {
			return Step{}, fmt.Errorf("%w: rule %s", ErrUnsupported, rules.String(s.Rule))
		}
		out.Infer = &Inference{
			Rule:        key,
			From:        s.DependsOn,
			Var:         params.Var,
			Eliminate:   params.Eliminate,
			Bases:       params.Bases,
			Term:        wrap(params.Term),
			Replacement: wrap(params.Replacement),
			With:        wrap(params.With),
		}
		if key == "conjunction-elimination" && params.Side == rules.Right {
			out.Infer.Side = params.Side.String()
		}
		out.Statement = N(s.Statement)
		if s.Rationale != s.Rule.Name() {
			out.Rationale = s.Rationale
		}
		return out, nil

	case proof.PreviousStep:
		out.Previous = &Previous{From: s.DependsOn}
		out.Statement = N(s.Statement)
		out.Rationale = s.Rationale
		return out, nil
	}

	out.Kind = s.Kind.String()
	out.Statement = N(s.Statement)
	out.Rationale = s.Rationale
	out.From = s.DependsOn
	return out, nil
}

func wrap(e logic.Expr) *Node {
	if e == nil {
		return nil
	}
	return N(e)
}
