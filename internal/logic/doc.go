// Package logic implements the expression model of the proof kernel.
//
// Statements and terms are immutable trees built from a closed set of
// node kinds: variables, constants, binary and unary operators, function
// applications, predicates and quantifiers. Every transformation returns
// a new tree, so expressions can be shared freely between proofs and
// goroutines once they are built.
//
// The package provides:
//   - free-variable computation and capture-avoiding substitution
//   - structural equality, canonical keys and hashing
//   - one-directional pattern matching
//   - symmetric unification with an occurs-check
//
// Equality is literal: two quantifiers that differ only in the name of
// their bound variable are different expressions.
package logic
