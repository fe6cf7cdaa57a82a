// Package axioms holds axiom systems: named collections of axioms,
// postulates and definitions that proofs may cite.
//
// Systems are plain values owned by the caller. Any number of them can
// coexist; nothing is registered globally.
package axioms

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/gnoswap-labs/axiom/internal/logic"
)

var (
	ErrDuplicate = errors.New("duplicate name")
	ErrNotFound  = errors.New("not found")
	ErrInvalid   = errors.New("invalid entry")
)

// Kind distinguishes the entries of a system.
type Kind int

const (
	KindAxiom Kind = iota
	KindPostulate
	KindDefinition
)

func (k Kind) String() string {
	switch k {
	case KindAxiom:
		return "axiom"
	case KindPostulate:
		return "postulate"
	case KindDefinition:
		return "definition"
	default:
		return "unknown"
	}
}

// Axiom is a statement accepted without proof.
type Axiom struct {
	Name        string
	Statement   logic.Expr
	Description string
	Tags        []string
}

func (a Axiom) String() string {
	return a.Name + ": " + a.Statement.String()
}

// HasTag reports whether the axiom carries tag.
func (a Axiom) HasTag(tag string) bool {
	for _, t := range a.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// Postulate is an axiom that a theory presents as a postulate, as in
// Huntington's presentation of Boolean algebra. It is cited the same way.
type Postulate Axiom

func (p Postulate) String() string { return Axiom(p).String() }

// Definition introduces a symbol through a defining statement.
type Definition struct {
	Name        string
	Symbol      string
	Statement   logic.Expr
	Description string
	Tags        []string
}

func (d Definition) String() string {
	if d.Symbol != "" {
		return d.Name + " (" + d.Symbol + "): " + d.Statement.String()
	}
	return d.Name + ": " + d.Statement.String()
}

// Clauses returns the statement followed by its top-level conjuncts,
// left to right. A definition may be cited by any of them.
func (d Definition) Clauses() []logic.Expr {
	out := []logic.Expr{d.Statement}
	var walk func(e logic.Expr)
	walk = func(e logic.Expr) {
		if conj, ok := logic.IsBinary(e, logic.OpAnd); ok {
			walk(conj.Left)
			walk(conj.Right)
			return
		}
		out = append(out, e)
	}
	if _, ok := logic.IsBinary(d.Statement, logic.OpAnd); ok {
		walk(d.Statement)
	}
	return out
}

// System is a named axiom system.
type System struct {
	Name        string
	Description string

	axioms      []Axiom
	postulates  []Postulate
	definitions []Definition
	names       map[string]Kind
}

// NewSystem returns an empty system.
func NewSystem(name, description string) *System {
	return &System{
		Name:        name,
		Description: description,
		names:       make(map[string]Kind),
	}
}

// AddAxiom registers an axiom. Names are unique across all entries.
func (s *System) AddAxiom(a Axiom) error {
	if err := s.reserve(a.Name, a.Statement, KindAxiom); err != nil {
		return err
	}
	a.Tags = cloneTags(a.Tags)
	s.axioms = append(s.axioms, a)
	return nil
}

// AddPostulate registers a postulate.
func (s *System) AddPostulate(p Postulate) error {
	if err := s.reserve(p.Name, p.Statement, KindPostulate); err != nil {
		return err
	}
	p.Tags = cloneTags(p.Tags)
	s.postulates = append(s.postulates, p)
	return nil
}

// AddDefinition registers a definition.
func (s *System) AddDefinition(d Definition) error {
	if err := s.reserve(d.Name, d.Statement, KindDefinition); err != nil {
		return err
	}
	d.Tags = cloneTags(d.Tags)
	s.definitions = append(s.definitions, d)
	return nil
}

func (s *System) reserve(name string, stmt logic.Expr, kind Kind) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: %s without a name", ErrInvalid, kind)
	}
	if stmt == nil {
		return fmt.Errorf("%w: %s %q has no statement", ErrInvalid, kind, name)
	}
	if s.names == nil {
		s.names = make(map[string]Kind)
	}
	if prev, ok := s.names[name]; ok {
		return fmt.Errorf("%w: %q is already a %s of %s", ErrDuplicate, name, prev, s.Name)
	}
	s.names[name] = kind
	return nil
}

// Axiom looks up an axiom by name.
func (s *System) Axiom(name string) (Axiom, bool) {
	for _, a := range s.axioms {
		if a.Name == name {
			return a, true
		}
	}
	return Axiom{}, false
}

// Postulate looks up a postulate by name.
func (s *System) Postulate(name string) (Postulate, bool) {
	for _, p := range s.postulates {
		if p.Name == name {
			return p, true
		}
	}
	return Postulate{}, false
}

// Definition looks up a definition by name.
func (s *System) Definition(name string) (Definition, bool) {
	for _, d := range s.definitions {
		if d.Name == name {
			return d, true
		}
	}
	return Definition{}, false
}

// Cite resolves name to an axiom or, failing that, a postulate. The
// returned kind tells which one was found.
func (s *System) Cite(name string) (Axiom, Kind, error) {
	if a, ok := s.Axiom(name); ok {
		return a, KindAxiom, nil
	}
	if p, ok := s.Postulate(name); ok {
		return Axiom(p), KindPostulate, nil
	}
	return Axiom{}, 0, fmt.Errorf("%w: no axiom or postulate %q in %s", ErrNotFound, name, s.Name)
}

// Accepts reports whether stmt is the statement of a registered axiom or
// postulate.
func (s *System) Accepts(stmt logic.Expr) bool {
	for _, a := range s.axioms {
		if logic.Equal(a.Statement, stmt) {
			return true
		}
	}
	for _, p := range s.postulates {
		if logic.Equal(p.Statement, stmt) {
			return true
		}
	}
	return false
}

// Defines reports whether stmt is the statement of a registered definition
// or one of its top-level conjuncts.
func (s *System) Defines(stmt logic.Expr) bool {
	for _, d := range s.definitions {
		for _, c := range d.Clauses() {
			if logic.Equal(c, stmt) {
				return true
			}
		}
	}
	return false
}

// ByTag returns the axioms and postulates carrying tag, axioms first, each
// group in insertion order. Postulates are returned as axioms.
func (s *System) ByTag(tag string) []Axiom {
	var out []Axiom
	for _, a := range s.axioms {
		if a.HasTag(tag) {
			out = append(out, a)
		}
	}
	for _, p := range s.postulates {
		if Axiom(p).HasTag(tag) {
			out = append(out, Axiom(p))
		}
	}
	return out
}

// Tags returns every tag used in the system, sorted.
func (s *System) Tags() []string {
	seen := make(map[string]struct{})
	add := func(tags []string) {
		for _, t := range tags {
			seen[t] = struct{}{}
		}
	}
	for _, a := range s.axioms {
		add(a.Tags)
	}
	for _, p := range s.postulates {
		add(p.Tags)
	}
	for _, d := range s.definitions {
		add(d.Tags)
	}
	out := make([]string, 0, len(seen))
	for t := range seen {
		out = append(out, t)
	}
	sort.Strings(out)
	return out
}

func (s *System) Axioms() []Axiom {
	return append([]Axiom(nil), s.axioms...)
}

func (s *System) Postulates() []Postulate {
	return append([]Postulate(nil), s.postulates...)
}

func (s *System) Definitions() []Definition {
	return append([]Definition(nil), s.definitions...)
}

// Len returns the number of registered entries.
func (s *System) Len() int {
	return len(s.axioms) + len(s.postulates) + len(s.definitions)
}

func (s *System) String() string {
	return fmt.Sprintf("%s (%d axioms, %d postulates, %d definitions)",
		s.Name, len(s.axioms), len(s.postulates), len(s.definitions))
}

// Summary renders the system as a multi-section listing.
func (s *System) Summary() string {
	var sb strings.Builder
	sb.WriteString(s.Name)
	sb.WriteString("\n")
	sb.WriteString(strings.Repeat("=", len([]rune(s.Name))))
	sb.WriteString("\n")
	if s.Description != "" {
		sb.WriteString(s.Description)
		sb.WriteString("\n")
	}

	section := func(title string, lines []string) {
		if len(lines) == 0 {
			return
		}
		fmt.Fprintf(&sb, "\n%s:\n", title)
		for _, l := range lines {
			sb.WriteString("  ")
			sb.WriteString(l)
			sb.WriteString("\n")
		}
	}

	var lines []string
	for _, a := range s.axioms {
		lines = append(lines, entryLine(a.String(), a.Description))
	}
	section("Axioms", lines)

	lines = nil
	for _, p := range s.postulates {
		lines = append(lines, entryLine(p.String(), p.Description))
	}
	section("Postulates", lines)

	lines = nil
	for _, d := range s.definitions {
		lines = append(lines, entryLine(d.String(), d.Description))
	}
	section("Definitions", lines)

	if tags := s.Tags(); len(tags) > 0 {
		fmt.Fprintf(&sb, "\nTags: %s\n", strings.Join(tags, ", "))
	}
	return sb.String()
}

func entryLine(text, description string) string {
	if description == "" {
		return text
	}
	return text + "  -- " + description
}

func cloneTags(tags []string) []string {
	if len(tags) == 0 {
		return nil
	}
	return append([]string(nil), tags...)
}
