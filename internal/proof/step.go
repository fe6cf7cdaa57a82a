package proof

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gnoswap-labs/axiom/internal/logic"
	"github.com/gnoswap-labs/axiom/internal/rules"
)

// Justification says why a step holds.
type Justification int

const (
	Axiom Justification = iota
	Postulate
	Definition
	Premise
	Hypothesis
	Inference
	PreviousStep
	TheoremRef
	LemmaRef
)

var justificationNames = [...]string{
	Axiom:        "axiom",
	Postulate:    "postulate",
	Definition:   "definition",
	Premise:      "premise",
	Hypothesis:   "hypothesis",
	Inference:    "inference",
	PreviousStep: "previous_step",
	TheoremRef:   "theorem",
	LemmaRef:     "lemma",
}

func (j Justification) String() string {
	if j < 0 || int(j) >= len(justificationNames) {
		return "unknown"
	}
	return justificationNames[j]
}

// ParseJustification is the inverse of Justification.String.
func ParseJustification(s string) (Justification, error) {
	for i, name := range justificationNames {
		if name == s {
			return Justification(i), nil
		}
	}
	return 0, fmt.Errorf("unknown justification %q", s)
}

// Step is one justified line of a proof.
type Step struct {
	Statement logic.Expr
	Rationale string
	Kind      Justification
	// DependsOn lists the 1-based indices of earlier steps.
	DependsOn []int
	// Rule is set for inference steps.
	Rule rules.Rule
	// Citation names the axiom, definition or library entry the step
	// cites, when there is one.
	Citation string
}

func (s Step) clone() Step {
	s.DependsOn = append([]int(nil), s.DependsOn...)
	return s
}

// Reason renders the rationale followed by the cited steps.
func (s Step) Reason() string {
	reason := s.Rationale
	if reason == "" {
		reason = s.Kind.String()
	}
	if len(s.DependsOn) == 0 {
		return reason
	}
	deps := make([]string, len(s.DependsOn))
	for i, d := range s.DependsOn {
		deps[i] = strconv.Itoa(d)
	}
	return reason + " (" + strings.Join(deps, ", ") + ")"
}
