package theories

import (
	"errors"
	"fmt"

	"github.com/gnoswap-labs/axiom/internal/logic"
)

var ErrNotEvaluable = errors.New("expression cannot be evaluated")

// EvalBoolean evaluates a quantifier-free Boolean expression under an
// assignment. + and ∨ are or, · and ∧ are and, ' and ¬ are negation, and
// = compares truth values. Constants are true unless they equal 0 or false.
func EvalBoolean(e logic.Expr, values map[string]bool) (bool, error) {
	switch x := e.(type) {
	case logic.Variable:
		v, ok := values[x.Name]
		if !ok {
			return false, fmt.Errorf("%w: %s has no value", ErrNotEvaluable, x.Name)
		}
		return v, nil
	case logic.Constant:
		switch v := x.Value.(type) {
		case bool:
			return v, nil
		case int:
			return v != 0, nil
		default:
			return false, fmt.Errorf("%w: constant %s", ErrNotEvaluable, x)
		}
	case logic.BinaryOp:
		l, err := EvalBoolean(x.Left, values)
		if err != nil {
			return false, err
		}
		r, err := EvalBoolean(x.Right, values)
		if err != nil {
			return false, err
		}
		switch x.Op {
		case logic.OpAdd, logic.OpOr:
			return l || r, nil
		case logic.OpMul, logic.OpAnd:
			return l && r, nil
		case logic.OpImplies:
			return !l || r, nil
		case logic.OpIff:
			return l == r, nil
		}
		return false, fmt.Errorf("%w: operator %s", ErrNotEvaluable, x.Op)
	case logic.UnaryOp:
		v, err := EvalBoolean(x.Operand, values)
		if err != nil {
			return false, err
		}
		if x.Op == logic.OpNot || x.Op == logic.OpComplement {
			return !v, nil
		}
		return false, fmt.Errorf("%w: operator %s", ErrNotEvaluable, x.Op)
	case logic.Predicate:
		if len(x.Args) != 2 || (x.Name != logic.PredEq && x.Name != logic.PredNeq) {
			return false, fmt.Errorf("%w: predicate %s", ErrNotEvaluable, x.Name)
		}
		l, err := EvalBoolean(x.Args[0], values)
		if err != nil {
			return false, err
		}
		r, err := EvalBoolean(x.Args[1], values)
		if err != nil {
			return false, err
		}
		return (l == r) == (x.Name == logic.PredEq), nil
	default:
		return false, fmt.Errorf("%w: %s", ErrNotEvaluable, e)
	}
}

// IsBooleanIdentity reports whether e evaluates to true under every
// assignment of its free variables.
func IsBooleanIdentity(e logic.Expr) (bool, error) {
	vars := logic.FreeVarList(e)
	if len(vars) > 20 {
		return false, fmt.Errorf("%w: %d variables", ErrNotEvaluable, len(vars))
	}
	values := make(map[string]bool, len(vars))
	for mask := 0; mask < 1<<len(vars); mask++ {
		for i, v := range vars {
			values[v] = mask&(1<<i) != 0
		}
		ok, err := EvalBoolean(e, values)
		if err != nil {
			return false, err
		}
		if !ok {
			return false, nil
		}
	}
	return true, nil
}

// Numeral returns S(S(...S(0))) with n applications of S.
func Numeral(n uint) logic.Expr {
	e := Zero
	for i := uint(0); i < n; i++ {
		e = logic.Succ(e)
	}
	return e
}

// The arithmetic below follows the recursive definitions of the Peano
// system literally.

func Add(n, m uint64) uint64 {
	if m == 0 {
		return n
	}
	return Add(n, m-1) + 1
}

func Multiply(n, m uint64) uint64 {
	if m == 0 {
		return 0
	}
	return Add(Multiply(n, m-1), n)
}

func Power(base, exp uint64) uint64 {
	if exp == 0 {
		return 1
	}
	return Multiply(Power(base, exp-1), base)
}
