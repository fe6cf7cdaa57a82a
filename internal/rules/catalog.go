package rules

import (
	"errors"
	"fmt"
	"sort"

	"github.com/gnoswap-labs/axiom/internal/logic"
)

var (
	ErrUnknownRule  = errors.New("unknown inference rule")
	ErrMissingParam = errors.New("missing rule parameter")
)

// Params carries the parameters of the parametrized rules.
// Each rule reads only the fields it needs.
type Params struct {
	Term        logic.Expr
	Var         string
	Replacement logic.Expr
	With        logic.Expr
	Side        Side
	Eliminate   bool
	Bases       int
}

// Entry describes a rule of the catalogue.
type Entry struct {
	Key     string
	Summary string
	build   func(Params) (Rule, error)
}

// Build instantiates the rule with the given parameters.
func (e Entry) Build(p Params) (Rule, error) {
	r, err := e.build(p)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", e.Key, err)
	}
	return r, nil
}

var catalog = map[string]Entry{
	"modus-ponens": {
		Summary: ModusPonens{}.Description(),
		build:   func(Params) (Rule, error) { return ModusPonens{}, nil },
	},
	"modus-tollens": {
		Summary: ModusTollens{}.Description(),
		build:   func(Params) (Rule, error) { return ModusTollens{}, nil },
	},
	"conjunction": {
		Summary: Conjunction{}.Description(),
		build:   func(Params) (Rule, error) { return Conjunction{}, nil },
	},
	"disjunction": {
		Summary: "from P, derive P ∨ with",
		build: func(p Params) (Rule, error) {
			if p.With == nil {
				return nil, fmt.Errorf("%w: with", ErrMissingParam)
			}
			return Disjunction{With: p.With}, nil
		},
	},
	"hypothetical-syllogism": {
		Summary: Hypothetical{}.Description(),
		build:   func(Params) (Rule, error) { return Hypothetical{}, nil },
	},
	"conjunction-elimination": {
		Summary: "from P ∧ Q, derive the selected side",
		build: func(p Params) (Rule, error) {
			return ConjunctionElimination{Side: p.Side}, nil
		},
	},
	"double-negation": {
		Summary: "remove or introduce ¬¬",
		build: func(p Params) (Rule, error) {
			return DoubleNegation{Eliminate: p.Eliminate}, nil
		},
	},
	"substitution": {
		Summary: "replace a free variable by a term",
		build: func(p Params) (Rule, error) {
			if p.Var == "" {
				return nil, fmt.Errorf("%w: var", ErrMissingParam)
			}
			if p.Replacement == nil {
				return nil, fmt.Errorf("%w: replacement", ErrMissingParam)
			}
			return Substitution{Var: p.Var, Replacement: p.Replacement}, nil
		},
	},
	"universal-instantiation": {
		Summary: "from ∀x: P(x), derive P(term)",
		build: func(p Params) (Rule, error) {
			if p.Term == nil {
				return nil, fmt.Errorf("%w: term", ErrMissingParam)
			}
			return UniversalInstantiation{Term: p.Term}, nil
		},
	},
	"existential-generalization": {
		Summary: "from P(term), derive ∃var: P(var)",
		build: func(p Params) (Rule, error) {
			if p.Term == nil {
				return nil, fmt.Errorf("%w: term", ErrMissingParam)
			}
			if p.Var == "" {
				return nil, fmt.Errorf("%w: var", ErrMissingParam)
			}
			return ExistentialGeneralization{Term: p.Term, Var: p.Var}, nil
		},
	},
	"induction": {
		Summary: MathematicalInduction{}.Description(),
		build:   func(Params) (Rule, error) { return MathematicalInduction{}, nil },
	},
	"strong-induction": {
		Summary: StrongInduction{}.Description(),
		build:   func(Params) (Rule, error) { return StrongInduction{}, nil },
	},
	"structural-induction": {
		Summary: StructuralInduction{}.Description(),
		build: func(p Params) (Rule, error) {
			return StructuralInduction{Bases: p.Bases}, nil
		},
	},
}

func init() {
	for k, e := range catalog {
		e.Key = k
		catalog[k] = e
	}
}

// Lookup returns the catalogue entry registered under key.
func Lookup(key string) (Entry, bool) {
	e, ok := catalog[key]
	return e, ok
}

// Build instantiates the rule registered under key.
func Build(key string, p Params) (Rule, error) {
	e, ok := Lookup(key)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownRule, key)
	}
	return e.Build(p)
}

// Keys returns the registered rule keys in sorted order.
func Keys() []string {
	keys := make([]string, 0, len(catalog))
	for k := range catalog {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Describe is the inverse of Build: it returns the catalogue key and the
// parameters that rebuild r.
func Describe(r Rule) (string, Params, bool) {
	switch r := r.(type) {
	case ModusPonens:
		return "modus-ponens", Params{}, true
	case ModusTollens:
		return "modus-tollens", Params{}, true
	case Conjunction:
		return "conjunction", Params{}, true
	case Disjunction:
		return "disjunction", Params{With: r.With}, true
	case Hypothetical:
		return "hypothetical-syllogism", Params{}, true
	case ConjunctionElimination:
		return "conjunction-elimination", Params{Side: r.Side}, true
	case DoubleNegation:
		return "double-negation", Params{Eliminate: r.Eliminate}, true
	case Substitution:
		return "substitution", Params{Var: r.Var, Replacement: r.Replacement}, true
	case UniversalInstantiation:
		return "universal-instantiation", Params{Term: r.Term}, true
	case ExistentialGeneralization:
		return "existential-generalization", Params{Term: r.Term, Var: r.Var}, true
	case MathematicalInduction:
		return "induction", Params{}, true
	case StrongInduction:
		return "strong-induction", Params{}, true
	case StructuralInduction:
		return "structural-induction", Params{Bases: r.Bases}, true
	default:
		return "", Params{}, false
	}
}
