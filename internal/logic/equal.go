package logic

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// Equal reports whether a and b are structurally identical.
// Bound variable names are compared literally. Display-only fields
// (BinaryOp.Precedence, Constant.Label) are ignored.
func Equal(a, b Expr) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	switch left := a.(type) {
	case Variable:
		right, ok := b.(Variable)
		return ok && left.Name == right.Name
	case Constant:
		right, ok := b.(Constant)
		return ok && constEqual(left.Value, right.Value)
	case BinaryOp:
		right, ok := b.(BinaryOp)
		if !ok || left.Op != right.Op {
			return false
		}
		return Equal(left.Left, right.Left) && Equal(left.Right, right.Right)
	case UnaryOp:
		right, ok := b.(UnaryOp)
		if !ok || left.Op != right.Op {
			return false
		}
		return Equal(left.Operand, right.Operand)
	case Function:
		right, ok := b.(Function)
		return ok && left.Name == right.Name && equalArgs(left.Args, right.Args)
	case Predicate:
		right, ok := b.(Predicate)
		return ok && left.Name == right.Name && equalArgs(left.Args, right.Args)
	case Quantifier:
		right, ok := b.(Quantifier)
		if !ok || left.Quant != right.Quant || left.Var != right.Var {
			return false
		}
		return Equal(left.Domain, right.Domain) && Equal(left.Body, right.Body)
	default:
		return false
	}
}

func equalArgs(a, b []Expr) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !Equal(a[i], b[i]) {
			return false
		}
	}
	return true
}

func constEqual(a, b any) bool {
	if reflect.TypeOf(a) != reflect.TypeOf(b) {
		return false
	}
	if a == nil {
		return true
	}
	if !reflect.TypeOf(a).Comparable() {
		return false
	}
	return a == b
}

// Key returns a canonical encoding of e. Two expressions have the same key
// if and only if they are Equal.
func Key(e Expr) string {
	var sb strings.Builder
	writeKey(&sb, e)
	return sb.String()
}

func writeKey(sb *strings.Builder, e Expr) {
	switch x := e.(type) {
	case nil:
		sb.WriteString("_")
	case Variable:
		sb.WriteString("v")
		sb.WriteString(strconv.Quote(x.Name))
	case Constant:
		sb.WriteString("c")
		sb.WriteString(strconv.Quote(fmt.Sprintf("%T:%#v", x.Value, x.Value)))
	case BinaryOp:
		sb.WriteString("b")
		sb.WriteString(strconv.Quote(x.Op))
		sb.WriteByte('(')
		writeKey(sb, x.Left)
		sb.WriteByte(',')
		writeKey(sb, x.Right)
		sb.WriteByte(')')
	case UnaryOp:
		sb.WriteString("u")
		sb.WriteString(strconv.Quote(x.Op))
		sb.WriteByte('(')
		writeKey(sb, x.Operand)
		sb.WriteByte(')')
	case Function:
		sb.WriteString("f")
		sb.WriteString(strconv.Quote(x.Name))
		writeArgKeys(sb, x.Args)
	case Predicate:
		sb.WriteString("p")
		sb.WriteString(strconv.Quote(x.Name))
		writeArgKeys(sb, x.Args)
	case Quantifier:
		sb.WriteString("q")
		sb.WriteString(string(x.Quant))
		sb.WriteString(strconv.Quote(x.Var))
		sb.WriteByte('(')
		writeKey(sb, x.Domain)
		sb.WriteByte(',')
		writeKey(sb, x.Body)
		sb.WriteByte(')')
	}
}

func writeArgKeys(sb *strings.Builder, args []Expr) {
	sb.WriteByte('(')
	for i, a := range args {
		if i > 0 {
			sb.WriteByte(',')
		}
		writeKey(sb, a)
	}
	sb.WriteByte(')')
}

// Hash returns a structural hash of e, consistent with Equal.
func Hash(e Expr) uint64 {
	return xxhash.Sum64String(Key(e))
}

// Set is an insertion-ordered set of expressions under structural equality.
type Set struct {
	index map[string]int
	items []Expr
}

// NewSet creates a set holding the given expressions.
func NewSet(exprs ...Expr) *Set {
	s := &Set{index: make(map[string]int, len(exprs))}
	for _, e := range exprs {
		s.Add(e)
	}
	return s
}

// Add inserts e and reports whether it was not already present.
func (s *Set) Add(e Expr) bool {
	k := Key(e)
	if _, ok := s.index[k]; ok {
		return false
	}
	s.index[k] = len(s.items)
	s.items = append(s.items, e)
	return true
}

// Contains reports whether an expression Equal to e is in the set.
func (s *Set) Contains(e Expr) bool {
	if s == nil {
		return false
	}
	_, ok := s.index[Key(e)]
	return ok
}

// Len returns the number of distinct expressions.
func (s *Set) Len() int {
	if s == nil {
		return 0
	}
	return len(s.items)
}

// Items returns the expressions in insertion order.
func (s *Set) Items() []Expr {
	if s == nil {
		return nil
	}
	out := make([]Expr, len(s.items))
	copy(out, s.items)
	return out
}
