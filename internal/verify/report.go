package verify

import (
	"fmt"
	"strings"
)

// ReasonCode classifies why a step was rejected.
type ReasonCode int

const (
	ReasonNone ReasonCode = iota
	ReasonNoProof
	ReasonNoSteps
	ReasonGoalMismatch
	ReasonNoSystem
	ReasonUnknownAxiom
	ReasonUnknownDefinition
	ReasonUndeclaredPremise
	ReasonUndeclaredHypothesis
	ReasonMissingRule
	ReasonBadDependency
	ReasonRuleInapplicable
	ReasonConclusionMismatch
	ReasonNoLibrary
	ReasonUnknownResult
	ReasonUnknownJustification
)

func (r ReasonCode) String() string {
	switch r {
	case ReasonNone:
		return "none"
	case ReasonNoProof:
		return "no proof"
	case ReasonNoSteps:
		return "proof has no steps"
	case ReasonGoalMismatch:
		return "last step is not the goal"
	case ReasonNoSystem:
		return "no axiom system"
	case ReasonUnknownAxiom:
		return "not an axiom of the system"
	case ReasonUnknownDefinition:
		return "not a definition of the system"
	case ReasonUndeclaredPremise:
		return "undeclared premise"
	case ReasonUndeclaredHypothesis:
		return "undeclared hypothesis"
	case ReasonMissingRule:
		return "inference without a rule"
	case ReasonBadDependency:
		return "dependency out of range"
	case ReasonRuleInapplicable:
		return "rule does not apply"
	case ReasonConclusionMismatch:
		return "rule yields a different conclusion"
	case ReasonNoLibrary:
		return "no proof library"
	case ReasonUnknownResult:
		return "not a proven result"
	case ReasonUnknownJustification:
		return "unknown justification"
	default:
		return "unknown"
	}
}

// Diagnostic explains one failure. Step is the 1-based step index, or 0
// for failures of the proof as a whole.
type Diagnostic struct {
	Step    int
	Reason  ReasonCode
	Message string
}

func (d Diagnostic) String() string {
	where := "proof"
	if d.Step > 0 {
		where = fmt.Sprintf("step %d", d.Step)
	}
	if d.Message == "" {
		return where + ": " + d.Reason.String()
	}
	return where + ": " + d.Reason.String() + ": " + d.Message
}

// Report is the outcome of verifying one proof. Valid is true exactly when
// Diagnostics is empty.
type Report struct {
	Valid       bool
	Diagnostics []Diagnostic
}

// Errors renders the diagnostics.
func (r Report) Errors() []string {
	out := make([]string, len(r.Diagnostics))
	for i, d := range r.Diagnostics {
		out[i] = d.String()
	}
	return out
}

func (r Report) String() string {
	if r.Valid {
		return "valid"
	}
	return "invalid: " + strings.Join(r.Errors(), "; ")
}
