package logic

import (
	"fmt"
	"strings"
)

// Kind discriminates the expression variants.
type Kind int

const (
	_ Kind = iota
	KindVariable
	KindConstant
	KindBinary
	KindUnary
	KindFunction
	KindQuantifier
	KindPredicate
)

func (k Kind) String() string {
	switch k {
	case KindVariable:
		return "var"
	case KindConstant:
		return "const"
	case KindBinary:
		return "binop"
	case KindUnary:
		return "unop"
	case KindFunction:
		return "func"
	case KindQuantifier:
		return "quant"
	case KindPredicate:
		return "pred"
	default:
		return "?"
	}
}

// Expr represents a term or formula.
type Expr interface {
	isExpr()
	Kind() Kind
	String() string
}

// Variable is a named variable.
type Variable struct {
	Name string
}

func (Variable) isExpr() {}
func (Variable) Kind() Kind { return KindVariable }
func (e Variable) String() string { return e.Name }

// Constant is a literal value with an optional display label.
// Value must be comparable.
type Constant struct {
	Value any
	Label string
}

func (Constant) isExpr() {}
func (Constant) Kind() Kind { return KindConstant }
func (e Constant) String() string {
	if e.Label != "" {
		return e.Label
	}
	return fmt.Sprint(e.Value)
}

// BinaryOp applies an infix operator to two operands.
// Precedence only affects rendering.
type BinaryOp struct {
	Op         string
	Left       Expr
	Right      Expr
	Precedence int
}

func (BinaryOp) isExpr() {}
func (BinaryOp) Kind() Kind { return KindBinary }
func (e BinaryOp) String() string {
	return e.operand(e.Left, true) + " " + e.Op + " " + e.operand(e.Right, false)
}

func (e BinaryOp) operand(child Expr, left bool) string {
	switch c := child.(type) {
	case BinaryOp:
		if c.Precedence < e.Precedence {
			return "(" + c.String() + ")"
		}
		if c.Precedence == e.Precedence && (c.Op != e.Op || !left) {
			return "(" + c.String() + ")"
		}
	case Quantifier:
		return "(" + c.String() + ")"
	}
	return child.String()
}

// UnaryOp applies a prefix or postfix operator to one operand.
type UnaryOp struct {
	Op      string
	Operand Expr
}

func (UnaryOp) isExpr() {}
func (UnaryOp) Kind() Kind { return KindUnary }
func (e UnaryOp) String() string {
	operand := e.Operand.String()
	switch e.Operand.(type) {
	case BinaryOp, Quantifier:
		operand = "(" + operand + ")"
	}
	if isPostfix(e.Op) {
		return operand + e.Op
	}
	return e.Op + operand
}

func isPostfix(op string) bool {
	switch op {
	case OpComplement, "†", "*":
		return true
	default:
		return false
	}
}

// Function is the application of a named function to ordered arguments.
type Function struct {
	Name string
	Args []Expr
}

func (Function) isExpr() {}
func (Function) Kind() Kind { return KindFunction }
func (e Function) String() string {
	return e.Name + "(" + joinExprs(e.Args) + ")"
}

// Predicate is a named relation over ordered arguments.
type Predicate struct {
	Name string
	Args []Expr
}

func (Predicate) isExpr() {}
func (Predicate) Kind() Kind { return KindPredicate }
func (e Predicate) String() string {
	if len(e.Args) == 2 && isRelation(e.Name) {
		return e.Args[0].String() + " " + e.Name + " " + e.Args[1].String()
	}
	return e.Name + "(" + joinExprs(e.Args) + ")"
}

func isRelation(name string) bool {
	switch name {
	case PredEq, PredNeq, PredLt, PredGt, PredLe, PredGe, PredIn, "⊆", "⊂":
		return true
	default:
		return false
	}
}

// QuantifierKind is either universal or existential.
type QuantifierKind string

const (
	ForallKind QuantifierKind = "∀"
	ExistsKind QuantifierKind = "∃"
)

// Quantifier binds Var over Body, optionally ranging over Domain.
// Domain is outside the scope of the binder.
type Quantifier struct {
	Quant  QuantifierKind
	Var    string
	Domain Expr // nil when unrestricted
	Body   Expr
}

func (Quantifier) isExpr() {}
func (Quantifier) Kind() Kind { return KindQuantifier }
func (e Quantifier) String() string {
	if e.Domain != nil {
		return string(e.Quant) + e.Var + " ∈ " + e.Domain.String() + ": " + e.Body.String()
	}
	return string(e.Quant) + e.Var + ": " + e.Body.String()
}

// IsForall reports whether e is a universal quantifier.
func IsForall(e Expr) (Quantifier, bool) {
	q, ok := e.(Quantifier)
	return q, ok && q.Quant == ForallKind
}

// IsExists reports whether e is an existential quantifier.
func IsExists(e Expr) (Quantifier, bool) {
	q, ok := e.(Quantifier)
	return q, ok && q.Quant == ExistsKind
}

// IsBinary reports whether e is a binary operation with the given operator.
func IsBinary(e Expr, op string) (BinaryOp, bool) {
	b, ok := e.(BinaryOp)
	return b, ok && b.Op == op
}

// IsUnary reports whether e is a unary operation with the given operator.
func IsUnary(e Expr, op string) (UnaryOp, bool) {
	u, ok := e.(UnaryOp)
	return u, ok && u.Op == op
}

func joinExprs(exprs []Expr) string {
	parts := make([]string, len(exprs))
	for i, e := range exprs {
		parts[i] = e.String()
	}
	return strings.Join(parts, ", ")
}
