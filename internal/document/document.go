// Package document reads and writes axiom systems and proofs as YAML.
//
// A document holds at most one axiom system and any number of proofs.
// Expressions are written as trees of single-key mappings (see Node);
// there is no textual formula syntax.
package document

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

var (
	ErrInvalid     = errors.New("invalid document")
	ErrUnsupported = errors.New("cannot encode")
)

type Document struct {
	System *System `yaml:"system,omitempty"`
	Proofs []Proof `yaml:"proofs,omitempty"`
}

type System struct {
	Name        string  `yaml:"name"`
	Description string  `yaml:"description,omitempty"`
	Axioms      []Entry `yaml:"axioms,omitempty"`
	Postulates  []Entry `yaml:"postulates,omitempty"`
	Definitions []Entry `yaml:"definitions,omitempty"`
}

// Entry is an axiom, postulate or definition.
type Entry struct {
	Name        string   `yaml:"name"`
	Symbol      string   `yaml:"symbol,omitempty"`
	Statement   *Node    `yaml:"statement"`
	Description string   `yaml:"description,omitempty"`
	Tags        []string `yaml:"tags,flow,omitempty"`
}

// Proof is a named derivation. Kind is theorem, lemma or corollary; an
// empty kind is a theorem.
type Proof struct {
	Name        string   `yaml:"name"`
	Kind        string   `yaml:"kind,omitempty"`
	From        string   `yaml:"from,omitempty"`
	Goal        *Node    `yaml:"goal"`
	Description string   `yaml:"description,omitempty"`
	Tags        []string `yaml:"tags,flow,omitempty"`
	Premises    []*Node  `yaml:"premises,omitempty"`
	Steps       []Step   `yaml:"steps"`
}

// Step is one proof step. Exactly one of the justification fields is set.
// A citation without a statement takes the statement of the cited entry.
type Step struct {
	Premise    *Node      `yaml:"premise,omitempty"`
	Hypothesis *Node      `yaml:"hypothesis,omitempty"`
	Axiom      string     `yaml:"axiom,omitempty"`
	Postulate  string     `yaml:"postulate,omitempty"`
	Definition string     `yaml:"definition,omitempty"`
	Theorem    string     `yaml:"theorem,omitempty"`
	Lemma      string     `yaml:"lemma,omitempty"`
	Infer      *Inference `yaml:"infer,omitempty"`
	Previous   *Previous  `yaml:"previous,omitempty"`
	// Kind is the generic form, for steps that cite nothing by name.
	Kind string `yaml:"kind,omitempty"`

	Statement *Node  `yaml:"statement,omitempty"`
	Rationale string `yaml:"rationale,omitempty"`
	From      []int  `yaml:"from,flow,omitempty"`
}

// Inference names a rule of the catalogue and its parameters.
type Inference struct {
	Rule        string `yaml:"rule"`
	From        []int  `yaml:"from,flow"`
	Term        *Node  `yaml:"term,omitempty"`
	Var         string `yaml:"var,omitempty"`
	Replacement *Node  `yaml:"replacement,omitempty"`
	With        *Node  `yaml:"with,omitempty"`
	Side        string `yaml:"side,omitempty"`
	Eliminate   bool   `yaml:"eliminate,omitempty"`
	Bases       int    `yaml:"bases,omitempty"`
}

type Previous struct {
	From []int `yaml:"from,flow"`
}

// Load reads a document from a file.
func Load(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open document: %w", err)
	}
	defer f.Close()

	doc, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

// Decode reads a document.
func Decode(r io.Reader) (*Document, error) {
	var doc Document
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrInvalid)
		}
		return nil, err
	}
	return &doc, nil
}

// Encode writes doc as YAML.
func Encode(w io.Writer, doc *Document) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(doc); err != nil {
		return err
	}
	return encoder.Close()
}
