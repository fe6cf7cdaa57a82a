// Package rules provides the catalogue of inference rules used to justify
// proof steps.
//
// A rule maps premises to a conclusion. When the premises do not have the
// shape a rule expects, Apply reports false instead of failing, so callers
// can treat inapplicability as an ordinary result.
package rules

import (
	"github.com/gnoswap-labs/axiom/internal/logic"
)

// Rule is an inference rule.
type Rule interface {
	// Name returns the name of the rule.
	Name() string
	// Description returns a human-readable summary, used in transcripts.
	Description() string
	// Apply derives a conclusion from the premises. It returns false when
	// the rule does not apply.
	Apply(premises ...logic.Expr) (logic.Expr, bool)
}

// String renders a rule as "name: description".
func String(r Rule) string {
	if r == nil {
		return "<none>"
	}
	return r.Name() + ": " + r.Description()
}

func arity(premises []logic.Expr, n int) bool {
	if len(premises) != n {
		return false
	}
	for _, p := range premises {
		if p == nil {
			return false
		}
	}
	return true
}
