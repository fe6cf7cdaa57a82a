// Package verify checks proofs step by step without trusting how they were
// built.
//
// Every failure becomes a Diagnostic in the returned Report; Verify itself
// never fails.
package verify

import (
	"fmt"
	"strconv"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/gnoswap-labs/axiom/internal/axioms"
	"github.com/gnoswap-labs/axiom/internal/logic"
	"github.com/gnoswap-labs/axiom/internal/proof"
)

// Mode controls what happens after a step fails.
type Mode int

const (
	// FailFast stops at the first failure.
	FailFast Mode = iota
	// Batch checks every step and reports all failures.
	Batch
)

func (m Mode) String() string {
	if m == Batch {
		return "batch"
	}
	return "fail-fast"
}

// ParseMode accepts "fail-fast" and "batch". The empty string is FailFast.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "", "fail-fast", "failfast":
		return FailFast, nil
	case "batch":
		return Batch, nil
	default:
		return FailFast, fmt.Errorf("unknown verification mode %q", s)
	}
}

type Option func(*Verifier)

// WithSystem sets the axiom system to check citations against, in place of
// the one bound to each proof.
func WithSystem(s *axioms.System) Option {
	return func(v *Verifier) { v.system = s }
}

// WithLibrary sets the library that theorem and lemma steps cite.
func WithLibrary(l *proof.Library) Option {
	return func(v *Verifier) { v.library = l }
}

func WithMode(m Mode) Option {
	return func(v *Verifier) { v.mode = m }
}

func WithLogger(l *zap.Logger) Option {
	return func(v *Verifier) {
		if l != nil {
			v.logger = l
		}
	}
}

// Verifier checks proofs.
type Verifier struct {
	system  *axioms.System
	library *proof.Library
	mode    Mode
	logger  *zap.Logger

	mu   sync.Mutex
	last []Diagnostic
}

func New(opts ...Option) *Verifier {
	v := &Verifier{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Errors returns the diagnostics of the most recent Verify call.
func (v *Verifier) Errors() []string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return Report{Diagnostics: v.last}.Errors()
}

// Verify checks p.
func (v *Verifier) Verify(p *proof.Proof) Report {
	run := &run{v: v, proof: p}
	run.check()

	v.mu.Lock()
	v.last = append([]Diagnostic(nil), run.diags...)
	v.mu.Unlock()

	return Report{Valid: len(run.diags) == 0, Diagnostics: run.diags}
}

type run struct {
	v     *Verifier
	proof *proof.Proof
	steps []proof.Step
	diags []Diagnostic
}

// fail records a diagnostic and reports whether checking should go on.
func (r *run) fail(step int, reason ReasonCode, format string, args ...any) bool {
	d := Diagnostic{Step: step, Reason: reason, Message: fmt.Sprintf(format, args...)}
	r.diags = append(r.diags, d)
	r.v.logger.Debug("verification failure",
		zap.Int("step", step),
		zap.String("reason", reason.String()),
		zap.String("detail", d.Message))
	return r.v.mode == Batch
}

func (r *run) check() {
	if r.proof == nil {
		r.fail(0, ReasonNoProof, "")
		return
	}
	r.steps = r.proof.Steps()
	goal := r.proof.Goal()
	r.v.logger.Debug("verifying proof", zap.Stringer("goal", goal), zap.Int("steps", len(r.steps)))

	if len(r.steps) == 0 {
		r.fail(0, ReasonNoSteps, "goal %s", goal)
		return
	}
	last := r.steps[len(r.steps)-1].Statement
	if !logic.Equal(last, goal) {
		if !r.fail(len(r.steps), ReasonGoalMismatch, "states %s, goal is %s", last, goal) {
			return
		}
	}

	for i, s := range r.steps {
		if !r.checkStep(i+1, s) {
			return
		}
	}
}

func (r *run) system() *axioms.System {
	if r.v.system != nil {
		return r.v.system
	}
	return r.proof.System()
}

// checkStep reports whether checking should go on.
func (r *run) checkStep(i int, s proof.Step) bool {
	r.v.logger.Debug("checking step",
		zap.Int("step", i),
		zap.String("kind", s.Kind.String()),
		zap.Stringer("statement", s.Statement))

	switch s.Kind {
	case proof.Axiom, proof.Postulate:
		sys := r.system()
		if sys == nil {
			return r.fail(i, ReasonNoSystem, "cannot check %s %s", s.Kind, s.Statement)
		}
		if !sys.Accepts(s.Statement) {
			return r.fail(i, ReasonUnknownAxiom, "%s is not an axiom or postulate of %s", s.Statement, sys.Name)
		}

	case proof.Definition:
		sys := r.system()
		if sys == nil {
			return r.fail(i, ReasonNoSystem, "cannot check definition %s", s.Statement)
		}
		if !sys.Defines(s.Statement) {
			return r.fail(i, ReasonUnknownDefinition, "%s is not a definition of %s", s.Statement, sys.Name)
		}

	case proof.Premise:
		if !r.proof.HasPremise(s.Statement) {
			return r.fail(i, ReasonUndeclaredPremise, "%s", s.Statement)
		}

	case proof.Hypothesis:
		if !r.proof.HasHypothesis(s.Statement) {
			return r.fail(i, ReasonUndeclaredHypothesis, "%s", s.Statement)
		}

	case proof.Inference:
		return r.checkInference(i, s)

	case proof.PreviousStep:
		if bad, ok := outOfRange(i, s.DependsOn); !ok {
			return r.fail(i, ReasonBadDependency, "step %d cited from step %d", bad, i)
		}

	case proof.TheoremRef, proof.LemmaRef:
		if r.v.library == nil {
			return r.fail(i, ReasonNoLibrary, "cannot check %s %s", s.Kind, s.Statement)
		}
		if !r.v.library.Holds(s.Kind, s.Statement) {
			return r.fail(i, ReasonUnknownResult, "no %s states %s", s.Kind, s.Statement)
		}

	default:
		return r.fail(i, ReasonUnknownJustification, "%s", s.Kind)
	}
	return true
}

func (r *run) checkInference(i int, s proof.Step) bool {
	if s.Rule == nil {
		return r.fail(i, ReasonMissingRule, "%s", s.Statement)
	}
	if bad, ok := outOfRange(i, s.DependsOn); !ok {
		return r.fail(i, ReasonBadDependency, "step %d cited from step %d", bad, i)
	}

	premises := make([]logic.Expr, len(s.DependsOn))
	for k, d := range s.DependsOn {
		premises[k] = r.steps[d-1].Statement
	}
	got, ok := s.Rule.Apply(premises...)
	if !ok {
		return r.fail(i, ReasonRuleInapplicable, "%s to %s", s.Rule.Name(), stepList(s.DependsOn))
	}
	if !logic.Equal(got, s.Statement) {
		return r.fail(i, ReasonConclusionMismatch, "%s yields %s, step states %s", s.Rule.Name(), got, s.Statement)
	}
	return true
}

// outOfRange returns the first dependency outside [1, i-1].
func outOfRange(i int, deps []int) (int, bool) {
	for _, d := range deps {
		if d < 1 || d >= i {
			return d, false
		}
	}
	return 0, true
}

func stepList(deps []int) string {
	if len(deps) == 0 {
		return "no steps"
	}
	parts := make([]string, len(deps))
	for i, d := range deps {
		parts[i] = strconv.Itoa(d)
	}
	if len(parts) == 1 {
		return "step " + parts[0]
	}
	return "steps " + strings.Join(parts, ", ")
}

// Verify checks p with a verifier built from opts.
func Verify(p *proof.Proof, opts ...Option) Report {
	return New(opts...).Verify(p)
}
