package logic

import (
	"sort"
	"strings"
)

// Bindings maps variable names to the expressions bound to them.
// Match and Unify never modify the Bindings they are given.
type Bindings map[string]Expr

func (b Bindings) with(name string, e Expr) Bindings {
	out := make(Bindings, len(b)+1)
	for k, v := range b {
		out[k] = v
	}
	out[name] = e
	return out
}

// String renders the bindings in name order.
func (b Bindings) String() string {
	names := make([]string, 0, len(b))
	for k := range b {
		names = append(names, k)
	}
	sort.Strings(names)
	parts := make([]string, len(names))
	for i, n := range names {
		parts[i] = n + " ↦ " + b[n].String()
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

// Apply substitutes every bound variable of e by its fully resolved binding.
func (b Bindings) Apply(e Expr) Expr {
	return b.apply(e, 0)
}

func (b Bindings) apply(e Expr, depth int) Expr {
	// bindings produced by Unify are acyclic; depth guards hand-built ones
	if depth > len(b) {
		return e
	}
	out := e
	for _, name := range FreeVarList(e) {
		t, ok := b[name]
		if !ok {
			continue
		}
		out = Substitute(out, name, b.apply(t, depth+1))
	}
	return out
}

// Match matches pattern against expr. Variables of the pattern bind to
// arbitrary subtrees of expr; a variable used twice must bind to equal
// subtrees. Everything else must line up exactly. The extended bindings
// are returned, or false when expr is not an instance of pattern.
func Match(pattern, expr Expr, bindings Bindings) (Bindings, bool) {
	if bindings == nil {
		bindings = Bindings{}
	}
	if pattern == nil || expr == nil {
		if pattern == nil && expr == nil {
			return bindings, true
		}
		return nil, false
	}

	switch p := pattern.(type) {
	case Variable:
		if bound, ok := bindings[p.Name]; ok {
			if Equal(bound, expr) {
				return bindings, true
			}
			return nil, false
		}
		return bindings.with(p.Name, expr), true
	case Constant:
		if Equal(p, expr) {
			return bindings, true
		}
		return nil, false
	case BinaryOp:
		e, ok := expr.(BinaryOp)
		if !ok || p.Op != e.Op {
			return nil, false
		}
		left, ok := Match(p.Left, e.Left, bindings)
		if !ok {
			return nil, false
		}
		return Match(p.Right, e.Right, left)
	case UnaryOp:
		e, ok := expr.(UnaryOp)
		if !ok || p.Op != e.Op {
			return nil, false
		}
		return Match(p.Operand, e.Operand, bindings)
	case Function:
		e, ok := expr.(Function)
		if !ok || p.Name != e.Name {
			return nil, false
		}
		return matchArgs(p.Args, e.Args, bindings)
	case Predicate:
		e, ok := expr.(Predicate)
		if !ok || p.Name != e.Name {
			return nil, false
		}
		return matchArgs(p.Args, e.Args, bindings)
	case Quantifier:
		e, ok := expr.(Quantifier)
		if !ok || p.Quant != e.Quant || p.Var != e.Var {
			return nil, false
		}
		current, ok := Match(p.Domain, e.Domain, bindings)
		if !ok {
			return nil, false
		}
		return Match(p.Body, e.Body, current)
	default:
		return nil, false
	}
}

func matchArgs(patterns, exprs []Expr, bindings Bindings) (Bindings, bool) {
	if len(patterns) != len(exprs) {
		return nil, false
	}
	current := bindings
	for i := range patterns {
		var ok bool
		current, ok = Match(patterns[i], exprs[i], current)
		if !ok {
			return nil, false
		}
	}
	return current, true
}

// Unify computes the most general substitution that makes a and b
// structurally identical. Variables on either side may be bound. Binding
// a variable to a term that contains it is rejected. Quantifiers only
// unify when they are already equal.
func Unify(a, b Expr, subst Bindings) (Bindings, bool) {
	if subst == nil {
		subst = Bindings{}
	}
	a = subst.walk(a)
	b = subst.walk(b)

	if Equal(a, b) {
		return subst, true
	}
	if v, ok := a.(Variable); ok {
		return subst.bind(v.Name, b)
	}
	if v, ok := b.(Variable); ok {
		return subst.bind(v.Name, a)
	}

	switch x := a.(type) {
	case BinaryOp:
		y, ok := b.(BinaryOp)
		if !ok || x.Op != y.Op {
			return nil, false
		}
		left, ok := Unify(x.Left, y.Left, subst)
		if !ok {
			return nil, false
		}
		return Unify(x.Right, y.Right, left)
	case UnaryOp:
		y, ok := b.(UnaryOp)
		if !ok || x.Op != y.Op {
			return nil, false
		}
		return Unify(x.Operand, y.Operand, subst)
	case Function:
		y, ok := b.(Function)
		if !ok || x.Name != y.Name {
			return nil, false
		}
		return unifyArgs(x.Args, y.Args, subst)
	case Predicate:
		y, ok := b.(Predicate)
		if !ok || x.Name != y.Name {
			return nil, false
		}
		return unifyArgs(x.Args, y.Args, subst)
	default:
		return nil, false
	}
}

func unifyArgs(xs, ys []Expr, subst Bindings) (Bindings, bool) {
	if len(xs) != len(ys) {
		return nil, false
	}
	current := subst
	for i := range xs {
		var ok bool
		current, ok = Unify(xs[i], ys[i], current)
		if !ok {
			return nil, false
		}
	}
	return current, true
}

// walk follows variable bindings until it reaches an unbound variable or
// a non-variable expression.
func (b Bindings) walk(e Expr) Expr {
	for i := 0; i <= len(b); i++ {
		v, ok := e.(Variable)
		if !ok {
			return e
		}
		next, bound := b[v.Name]
		if !bound {
			return e
		}
		e = next
	}
	return e
}

func (b Bindings) bind(name string, e Expr) (Bindings, bool) {
	if IsFree(name, b.Apply(e)) {
		return nil, false
	}
	return b.with(name, e), true
}
