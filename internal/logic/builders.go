package logic

import (
	"fmt"
	"reflect"
)

// Operator and relation symbols used by the algebraic helpers.
const (
	OpAnd        = "∧"
	OpOr         = "∨"
	OpImplies    = "⟹"
	OpIff        = "⟺"
	OpAdd        = "+"
	OpMul        = "·"
	OpNot        = "¬"
	OpComplement = "'"

	PredEq  = "="
	PredNeq = "≠"
	PredLt  = "<"
	PredGt  = ">"
	PredLe  = "≤"
	PredGe  = "≥"
	PredIn  = "∈"

	FuncSucc = "S"
)

// Rendering precedences of the algebraic helpers.
const (
	PrecImplies = 0
	PrecOr      = 1
	PrecAnd     = 2
	PrecAdd     = 4
	PrecMul     = 5
)

// Helper functions to construct expression nodes.
// They panic on malformed arguments.

// Var creates a variable.
func Var(name string) Expr {
	mustName("variable", name)
	return Variable{Name: name}
}

// Const creates a constant. An optional label controls how it is printed.
func Const(value any, label ...string) Expr {
	if value == nil || !reflect.TypeOf(value).Comparable() {
		panic(fmt.Sprintf("logic: constant value %#v is not comparable", value))
	}
	c := Constant{Value: value}
	if len(label) > 0 {
		c.Label = label[0]
	}
	return c
}

// Binary creates a binary operation.
func Binary(op string, left, right Expr, precedence int) Expr {
	mustName("operator", op)
	mustExpr(op, left)
	mustExpr(op, right)
	return BinaryOp{Op: op, Left: left, Right: right, Precedence: precedence}
}

// Unary creates a unary operation.
func Unary(op string, operand Expr) Expr {
	mustName("operator", op)
	mustExpr(op, operand)
	return UnaryOp{Op: op, Operand: operand}
}

// Func creates a function application. Zero arguments are allowed.
func Func(name string, args ...Expr) Expr {
	mustName("function", name)
	return Function{Name: name, Args: copyArgs(name, args)}
}

// Pred creates a predicate. Zero arguments are allowed.
func Pred(name string, args ...Expr) Expr {
	mustName("predicate", name)
	return Predicate{Name: name, Args: copyArgs(name, args)}
}

// Quant creates a quantifier of the given kind.
// domain may be nil.
func Quant(kind QuantifierKind, variable string, domain, body Expr) Expr {
	if kind != ForallKind && kind != ExistsKind {
		panic(fmt.Sprintf("logic: unknown quantifier %q", kind))
	}
	mustName("bound variable", variable)
	mustExpr(string(kind)+variable, body)
	return Quantifier{Quant: kind, Var: variable, Domain: domain, Body: body}
}

// Forall creates an unrestricted universal quantifier.
func Forall(variable string, body Expr) Expr {
	return Quant(ForallKind, variable, nil, body)
}

// ForallIn creates a universal quantifier over a domain.
func ForallIn(variable string, domain, body Expr) Expr {
	mustExpr("domain", domain)
	return Quant(ForallKind, variable, domain, body)
}

// Exists creates an unrestricted existential quantifier.
func Exists(variable string, body Expr) Expr {
	return Quant(ExistsKind, variable, nil, body)
}

// ExistsIn creates an existential quantifier over a domain.
func ExistsIn(variable string, domain, body Expr) Expr {
	mustExpr("domain", domain)
	return Quant(ExistsKind, variable, domain, body)
}

// And creates a conjunction.
func And(left, right Expr) Expr { return Binary(OpAnd, left, right, PrecAnd) }

// Or creates a disjunction.
func Or(left, right Expr) Expr { return Binary(OpOr, left, right, PrecOr) }

// Implies creates an implication.
func Implies(left, right Expr) Expr { return Binary(OpImplies, left, right, PrecImplies) }

// Iff creates a biconditional.
func Iff(left, right Expr) Expr { return Binary(OpIff, left, right, PrecImplies) }

// Not creates a negation.
func Not(operand Expr) Expr { return Unary(OpNot, operand) }

// Complement creates a postfix Boolean complement (a').
func Complement(operand Expr) Expr { return Unary(OpComplement, operand) }

// Add creates a sum.
func Add(left, right Expr) Expr { return Binary(OpAdd, left, right, PrecAdd) }

// Mul creates a product.
func Mul(left, right Expr) Expr { return Binary(OpMul, left, right, PrecMul) }

// Eq creates an equality predicate.
func Eq(left, right Expr) Expr { return Pred(PredEq, left, right) }

// Neq creates an inequality predicate.
func Neq(left, right Expr) Expr { return Pred(PredNeq, left, right) }

// Lt creates a strict ordering predicate.
func Lt(left, right Expr) Expr { return Pred(PredLt, left, right) }

// Gt creates a strict ordering predicate.
func Gt(left, right Expr) Expr { return Pred(PredGt, left, right) }

// Le creates a non-strict ordering predicate.
func Le(left, right Expr) Expr { return Pred(PredLe, left, right) }

// Ge creates a non-strict ordering predicate.
func Ge(left, right Expr) Expr { return Pred(PredGe, left, right) }

// In creates a membership predicate.
func In(element, set Expr) Expr { return Pred(PredIn, element, set) }

// Succ creates the successor term S(n).
func Succ(n Expr) Expr { return Func(FuncSucc, n) }

func mustName(what, name string) {
	if name == "" {
		panic("logic: empty " + what + " name")
	}
}

func mustExpr(owner string, e Expr) {
	if e == nil {
		panic(fmt.Sprintf("logic: nil operand for %s", owner))
	}
}

func copyArgs(owner string, args []Expr) []Expr {
	out := make([]Expr, len(args))
	for i, a := range args {
		mustExpr(owner, a)
		out[i] = a
	}
	return out
}
