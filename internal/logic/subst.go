package logic

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"sync/atomic"
)

// FreeVars returns the set of variable names that occur free in e.
func FreeVars(e Expr) map[string]struct{} {
	out := make(map[string]struct{})
	collectFree(e, nil, out)
	return out
}

// FreeVarList returns the free variables of e in sorted order.
func FreeVarList(e Expr) []string {
	return sortedKeys(FreeVars(e))
}

// IsFree reports whether name occurs free in e.
func IsFree(name string, e Expr) bool {
	_, ok := FreeVars(e)[name]
	return ok
}

func collectFree(e Expr, bound map[string]int, out map[string]struct{}) {
	switch x := e.(type) {
	case Variable:
		if bound[x.Name] == 0 {
			out[x.Name] = struct{}{}
		}
	case Constant:
	case BinaryOp:
		collectFree(x.Left, bound, out)
		collectFree(x.Right, bound, out)
	case UnaryOp:
		collectFree(x.Operand, bound, out)
	case Function:
		for _, a := range x.Args {
			collectFree(a, bound, out)
		}
	case Predicate:
		for _, a := range x.Args {
			collectFree(a, bound, out)
		}
	case Quantifier:
		if x.Domain != nil {
			collectFree(x.Domain, bound, out)
		}
		if bound == nil {
			bound = make(map[string]int)
		}
		bound[x.Var]++
		collectFree(x.Body, bound, out)
		bound[x.Var]--
	default:
		panic(fmt.Sprintf("logic: unknown expression %T", e))
	}
}

// Names returns every variable name in e, free or bound.
func Names(e Expr) map[string]struct{} {
	out := make(map[string]struct{})
	collectNames(e, out)
	return out
}

func collectNames(e Expr, out map[string]struct{}) {
	switch x := e.(type) {
	case Variable:
		out[x.Name] = struct{}{}
	case Constant:
	case BinaryOp:
		collectNames(x.Left, out)
		collectNames(x.Right, out)
	case UnaryOp:
		collectNames(x.Operand, out)
	case Function:
		for _, a := range x.Args {
			collectNames(a, out)
		}
	case Predicate:
		for _, a := range x.Args {
			collectNames(a, out)
		}
	case Quantifier:
		out[x.Var] = struct{}{}
		if x.Domain != nil {
			collectNames(x.Domain, out)
		}
		collectNames(x.Body, out)
	default:
		panic(fmt.Sprintf("logic: unknown expression %T", e))
	}
}

// Substitute replaces every free occurrence of the variable name in e
// with replacement. Bound variables that would capture a free variable of
// replacement are renamed first.
func Substitute(e Expr, name string, replacement Expr) Expr {
	switch x := e.(type) {
	case Variable:
		if x.Name == name {
			return replacement
		}
		return x
	case Constant:
		return x
	case BinaryOp:
		return BinaryOp{
			Op:         x.Op,
			Left:       Substitute(x.Left, name, replacement),
			Right:      Substitute(x.Right, name, replacement),
			Precedence: x.Precedence,
		}
	case UnaryOp:
		return UnaryOp{Op: x.Op, Operand: Substitute(x.Operand, name, replacement)}
	case Function:
		return Function{Name: x.Name, Args: substituteAll(x.Args, name, replacement)}
	case Predicate:
		return Predicate{Name: x.Name, Args: substituteAll(x.Args, name, replacement)}
	case Quantifier:
		return substituteQuantifier(x, name, replacement)
	default:
		panic(fmt.Sprintf("logic: unknown expression %T", e))
	}
}

func substituteAll(args []Expr, name string, replacement Expr) []Expr {
	out := make([]Expr, len(args))
	for i, a := range args {
		out[i] = Substitute(a, name, replacement)
	}
	return out
}

func substituteQuantifier(q Quantifier, name string, replacement Expr) Expr {
	out := Quantifier{Quant: q.Quant, Var: q.Var, Body: q.Body}
	if q.Domain != nil {
		out.Domain = Substitute(q.Domain, name, replacement)
	}

	// name is shadowed by the binder
	if q.Var == name {
		return out
	}
	if !IsFree(name, q.Body) {
		return out
	}

	replacementFree := FreeVars(replacement)
	if _, capture := replacementFree[q.Var]; !capture {
		out.Body = Substitute(q.Body, name, replacement)
		return out
	}

	avoid := replacementFree
	for v := range FreeVars(q) {
		avoid[v] = struct{}{}
	}
	for v := range Names(q.Body) {
		avoid[v] = struct{}{}
	}
	fresh := FreshName(q.Var, avoid)

	out.Var = fresh
	out.Body = Substitute(Substitute(q.Body, q.Var, Variable{Name: fresh}), name, replacement)
	return out
}

var freshCounter atomic.Uint64

// FreshName returns a variable name derived from base that is not in avoid.
// Names are drawn from a process-wide counter that only increases, so two
// calls never return the same name.
func FreshName(base string, avoid map[string]struct{}) string {
	base = strings.TrimRight(base, "0123456789_'")
	if base == "" {
		base = "v"
	}
	for {
		candidate := base + "_" + strconv.FormatUint(freshCounter.Add(1), 10)
		if _, taken := avoid[candidate]; !taken {
			return candidate
		}
	}
}

func sortedKeys(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
