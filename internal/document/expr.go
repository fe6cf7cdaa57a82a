package document

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/gnoswap-labs/axiom/internal/logic"
)

// Node is an expression as it appears in a document: a mapping with a
// single key naming the node kind.
//
//	{var: x}
//	{const: 0}  or  {const: {value: 0, label: "0"}}
//	{binary: {op: "+", left: ..., right: ..., prec: 4}}
//	{unary: {op: "'", operand: ...}}
//	{func: {name: S, args: [...]}}  and  {pred: {name: P, args: [...]}}
//	{forall: {var: x, in: ..., body: ...}}  and  {exists: ...}
//
// The helpers and, or, implies, iff, add, mul, eq, neq, lt, gt, le, ge
// and in take a list of two nodes; not and succ take one node.
type Node struct {
	Expr logic.Expr
}

// N wraps e.
func N(e logic.Expr) *Node { return &Node{Expr: e} }

func (n *Node) UnmarshalYAML(value *yaml.Node) error {
	e, err := decodeExpr(value)
	if err != nil {
		return err
	}
	n.Expr = e
	return nil
}

func (n Node) MarshalYAML() (any, error) {
	if n.Expr == nil {
		return nil, fmt.Errorf("%w: empty expression", ErrInvalid)
	}
	return encodeExpr(n.Expr)
}

var binaryHelpers = map[string]func(l, r logic.Expr) logic.Expr{
	"and":     logic.And,
	"or":      logic.Or,
	"implies": logic.Implies,
	"iff":     logic.Iff,
	"add":     logic.Add,
	"mul":     logic.Mul,
	"eq":      logic.Eq,
	"neq":     logic.Neq,
	"lt":      logic.Lt,
	"gt":      logic.Gt,
	"le":      logic.Le,
	"ge":      logic.Ge,
	"in":      logic.In,
}

var unaryHelpers = map[string]func(e logic.Expr) logic.Expr{
	"not":  logic.Not,
	"succ": logic.Succ,
}

// operator symbol to helper key, for the operators whose helper sets
// the default precedence
var operatorKeys = map[string]string{
	logic.OpAnd:     "and",
	logic.OpOr:      "or",
	logic.OpImplies: "implies",
	logic.OpIff:     "iff",
	logic.OpAdd:     "add",
	logic.OpMul:     "mul",
}

var relationKeys = map[string]string{
	logic.PredEq:  "eq",
	logic.PredNeq: "neq",
	logic.PredLt:  "lt",
	logic.PredGt:  "gt",
	logic.PredLe:  "le",
	logic.PredGe:  "ge",
	logic.PredIn:  "in",
}

var defaultPrecedence = map[string]int{
	logic.OpAnd:     logic.PrecAnd,
	logic.OpOr:      logic.PrecOr,
	logic.OpImplies: logic.PrecImplies,
	logic.OpIff:     logic.PrecImplies,
	logic.OpAdd:     logic.PrecAdd,
	logic.OpMul:     logic.PrecMul,
}

// precedence of operators without a default
const otherPrecedence = 3

func nodeErr(v *yaml.Node, format string, args ...any) error {
	return fmt.Errorf("line %d: %w: %s", v.Line, ErrInvalid, fmt.Sprintf(format, args...))
}

type constBody struct {
	Value any    `yaml:"value"`
	Label string `yaml:"label,omitempty"`
}

type binaryBody struct {
	Op    string `yaml:"op"`
	Left  *Node  `yaml:"left"`
	Right *Node  `yaml:"right"`
	Prec  *int   `yaml:"prec,omitempty"`
}

type unaryBody struct {
	Op      string `yaml:"op"`
	Operand *Node  `yaml:"operand"`
}

type applyBody struct {
	Name string  `yaml:"name"`
	Args []*Node `yaml:"args,flow"`
}

type quantBody struct {
	Var  string `yaml:"var"`
	In   *Node  `yaml:"in,omitempty"`
	Body *Node  `yaml:"body"`
}

func decodeExpr(v *yaml.Node) (logic.Expr, error) {
	if v.Kind == yaml.AliasNode && v.Alias != nil {
		v = v.Alias
	}
	if v.Kind != yaml.MappingNode || len(v.Content) != 2 {
		return nil, nodeErr(v, "expression must be a mapping with exactly one key")
	}
	key, body := v.Content[0].Value, v.Content[1]

	if build, ok := binaryHelpers[key]; ok {
		args, err := decodeList(body, key)
		if err != nil {
			return nil, err
		}
		if len(args) != 2 {
			return nil, nodeErr(body, "%s takes two operands, got %d", key, len(args))
		}
		return build(args[0], args[1]), nil
	}
	if build, ok := unaryHelpers[key]; ok {
		operand, err := decodeExpr(body)
		if err != nil {
			return nil, err
		}
		return build(operand), nil
	}

	switch key {
	case "var":
		var name string
		if err := body.Decode(&name); err != nil || name == "" {
			return nil, nodeErr(body, "var needs a name")
		}
		return logic.Var(name), nil

	case "const":
		return decodeConst(body)

	case "binary":
		var b binaryBody
		if err := body.Decode(&b); err != nil {
			return nil, err
		}
		if b.Op == "" || b.Left == nil || b.Right == nil {
			return nil, nodeErr(body, "binary needs op, left and right")
		}
		prec, ok := defaultPrecedence[b.Op]
		if !ok {
			prec = otherPrecedence
		}
		if b.Prec != nil {
			prec = *b.Prec
		}
		return logic.Binary(b.Op, b.Left.Expr, b.Right.Expr, prec), nil

	case "unary":
		var u unaryBody
		if err := body.Decode(&u); err != nil {
			return nil, err
		}
		if u.Op == "" || u.Operand == nil {
			return nil, nodeErr(body, "unary needs op and operand")
		}
		return logic.Unary(u.Op, u.Operand.Expr), nil

	case "func", "pred":
		var a applyBody
		if err := body.Decode(&a); err != nil {
			return nil, err
		}
		if a.Name == "" {
			return nil, nodeErr(body, "%s needs a name", key)
		}
		args := make([]logic.Expr, len(a.Args))
		for i, arg := range a.Args {
			if arg == nil {
				return nil, nodeErr(body, "%s %s: argument %d is empty", key, a.Name, i+1)
			}
			args[i] = arg.Expr
		}
		if key == "func" {
			return logic.Func(a.Name, args...), nil
		}
		return logic.Pred(a.Name, args...), nil

	case "forall", "exists":
		var q quantBody
		if err := body.Decode(&q); err != nil {
			return nil, err
		}
		if q.Var == "" || q.Body == nil {
			return nil, nodeErr(body, "%s needs var and body", key)
		}
		kind := logic.ForallKind
		if key == "exists" {
			kind = logic.ExistsKind
		}
		var domain logic.Expr
		if q.In != nil {
			domain = q.In.Expr
		}
		return logic.Quant(kind, q.Var, domain, q.Body.Expr), nil

	default:
		return nil, nodeErr(v, "unknown expression kind %q", key)
	}
}

func decodeList(v *yaml.Node, key string) ([]logic.Expr, error) {
	if v.Kind != yaml.SequenceNode {
		return nil, nodeErr(v, "%s takes a list of operands", key)
	}
	out := make([]logic.Expr, len(v.Content))
	for i, item := range v.Content {
		e, err := decodeExpr(item)
		if err != nil {
			return nil, err
		}
		out[i] = e
	}
	return out, nil
}

func decodeConst(v *yaml.Node) (logic.Expr, error) {
	switch v.Kind {
	case yaml.ScalarNode:
		value, err := scalarValue(v)
		if err != nil {
			return nil, err
		}
		return logic.Const(value), nil
	case yaml.MappingNode:
		var body struct {
			Value yaml.Node `yaml:"value"`
			Label string    `yaml:"label"`
		}
		if err := v.Decode(&body); err != nil {
			return nil, err
		}
		if body.Value.Kind != yaml.ScalarNode {
			return nil, nodeErr(v, "const needs a scalar value")
		}
		value, err := scalarValue(&body.Value)
		if err != nil {
			return nil, err
		}
		return logic.Const(value, body.Label), nil
	default:
		return nil, nodeErr(v, "const needs a scalar value")
	}
}

func scalarValue(v *yaml.Node) (any, error) {
	var value any
	if err := v.Decode(&value); err != nil {
		return nil, err
	}
	if value == nil {
		return nil, nodeErr(v, "const value is null")
	}
	return value, nil
}

func encodeExpr(e logic.Expr) (any, error) {
	switch x := e.(type) {
	case logic.Variable:
		return map[string]any{"var": x.Name}, nil

	case logic.Constant:
		if !encodable(x.Value) {
			return nil, fmt.Errorf("%w: constant of type %T", ErrUnsupported, x.Value)
		}
		if x.Label == "" || x.Label == fmt.Sprint(x.Value) {
			return map[string]any{"const": x.Value}, nil
		}
		return map[string]any{"const": constBody{Value: x.Value, Label: x.Label}}, nil

	case logic.BinaryOp:
		if key, ok := operatorKeys[x.Op]; ok && defaultPrecedence[x.Op] == x.Precedence {
			return map[string]any{key: []*Node{N(x.Left), N(x.Right)}}, nil
		}
		prec := x.Precedence
		return map[string]any{"binary": binaryBody{Op: x.Op, Left: N(x.Left), Right: N(x.Right), Prec: &prec}}, nil

	case logic.UnaryOp:
		if x.Op == logic.OpNot {
			return map[string]any{"not": N(x.Operand)}, nil
		}
		return map[string]any{"unary": unaryBody{Op: x.Op, Operand: N(x.Operand)}}, nil

	case logic.Function:
		if x.Name == logic.FuncSucc && len(x.Args) == 1 {
			return map[string]any{"succ": N(x.Args[0])}, nil
		}
		return map[string]any{"func": applyBody{Name: x.Name, Args: wrapAll(x.Args)}}, nil

	case logic.Predicate:
		if key, ok := relationKeys[x.Name]; ok && len(x.Args) == 2 {
			return map[string]any{key: []*Node{N(x.Args[0]), N(x.Args[1])}}, nil
		}
		return map[string]any{"pred": applyBody{Name: x.Name, Args: wrapAll(x.Args)}}, nil

	case logic.Quantifier:
		body := quantBody{Var: x.Var, Body: N(x.Body)}
		if x.Domain != nil {
			body.In = N(x.Domain)
		}
		key := "forall"
		if x.Quant == logic.ExistsKind {
			key = "exists"
		}
		return map[string]any{key: body}, nil

	default:
		return nil, fmt.Errorf("%w: expression %T", ErrUnsupported, e)
	}
}

func wrapAll(args []logic.Expr) []*Node {
	out := make([]*Node, len(args))
	for i, a := range args {
		out[i] = N(a)
	}
	return out
}

func encodable(v any) bool {
	switch v.(type) {
	case bool, string, int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64, float32, float64:
		return true
	default:
		return false
	}
}
