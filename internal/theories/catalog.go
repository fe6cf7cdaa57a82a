package theories

import (
	"sort"

	"github.com/gnoswap-labs/axiom/internal/axioms"
	"github.com/gnoswap-labs/axiom/internal/proof"
)

// Theory is a built-in axiom system with its derived results.
type Theory struct {
	Name        string
	Description string
	System      func() *axioms.System
	Library     func() (*proof.Library, error)
}

var catalog = map[string]Theory{
	"boolean": {
		Name:        "boolean",
		Description: "Boolean algebra from Huntington's postulates",
		System:      Huntington,
		Library:     BooleanLibrary,
	},
	"peano": {
		Name:        "peano",
		Description: "natural numbers from Peano's axioms",
		System:      Peano,
		Library:     PeanoLibrary,
	},
}

// Lookup returns the built-in theory called name.
func Lookup(name string) (Theory, bool) {
	t, ok := catalog[name]
	return t, ok
}

// Catalog lists the built-in theories sorted by name.
func Catalog() []Theory {
	out := make([]Theory, 0, len(catalog))
	for _, t := range catalog {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
