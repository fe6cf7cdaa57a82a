package theories

import (
	"fmt"

	"github.com/gnoswap-labs/axiom/internal/axioms"
	"github.com/gnoswap-labs/axiom/internal/logic"
	"github.com/gnoswap-labs/axiom/internal/proof"
	"github.com/gnoswap-labs/axiom/internal/rules"
)

// derivation builds a proof and keeps the first error, so a chain of steps
// can be written without checking each one.
type derivation struct {
	proof *proof.Proof
	last  int
	err   error
}

func start(goal logic.Expr, sys *axioms.System, description string) *derivation {
	return &derivation{proof: proof.New(goal, proof.WithSystem(sys), proof.WithDescription(description))}
}

func (d *derivation) record(i int, err error) int {
	if d.err != nil {
		return 0
	}
	if err != nil {
		d.err = err
		return 0
	}
	d.last = i
	return i
}

func (d *derivation) axiom(name string) int {
	if d.err != nil {
		return 0
	}
	return d.record(d.proof.AddAxiomStep(name))
}

func (d *derivation) definition(name string) int {
	if d.err != nil {
		return 0
	}
	return d.record(d.proof.AddDefinitionStep(name))
}

func (d *derivation) cite(lib *proof.Library, name string) int {
	if d.err != nil {
		return 0
	}
	return d.record(d.proof.AddCitationStep(lib, name))
}

func (d *derivation) infer(conclusion logic.Expr, rule rules.Rule, deps ...int) int {
	if d.err != nil {
		return 0
	}
	return d.record(d.proof.AddInferenceStep(conclusion, rule, deps, ""))
}

func (d *derivation) complete(name string) error {
	if d.err == nil {
		d.err = d.proof.MarkComplete()
	}
	if d.err != nil {
		return fmt.Errorf("derive %s: %w", name, d.err)
	}
	return nil
}

func (d *derivation) theorem(lib *proof.Library, name, description string, tags ...string) error {
	if err := d.complete(name); err != nil {
		return err
	}
	return lib.AddTheorem(proof.Theorem{Name: name, Proof: d.proof, Description: description, Tags: tags})
}

func (d *derivation) lemma(lib *proof.Library, name, description string, tags ...string) error {
	if err := d.complete(name); err != nil {
		return err
	}
	return lib.AddLemma(proof.Lemma{Name: name, Proof: d.proof, Description: description, Tags: tags})
}

func (d *derivation) corollary(lib *proof.Library, name, from, description string, tags ...string) error {
	if err := d.complete(name); err != nil {
		return err
	}
	return lib.AddCorollary(proof.Corollary{Name: name, Proof: d.proof, Description: description, Tags: tags, FromTheorem: from})
}
