// Package kvexpr implements the Expression Evaluator from spec.md §4.3:
// string-literal shielding, Turkish operator translation, a small
// recursive-descent lexer/parser over the canonical grammar, and a
// tree-walking evaluator running against the interpreter's frame stack.
package kvexpr

import (
	"strings"

	"github.com/kavun-lang/kavun/internal/interp/runtime"
)

// Caller lets the evaluator invoke a built-in or user-defined function
// without importing the executor package, mirroring the teacher's
// builtins.Context indirection and avoiding the import cycle that would
// otherwise exist between kvexpr and the statement executor.
type Caller interface {
	CallFunction(name string, args []runtime.Value) (runtime.Value, error)
}

// Evaluator compiles and runs Kavun expressions against a frame stack.
type Evaluator struct {
	cache *Cache
}

// New builds an Evaluator with its own expression cache.
func New() *Evaluator {
	return &Evaluator{cache: NewCache()}
}

// Eval runs the full pipeline from spec.md §4.3 over a raw expression
// string and returns its value: shield string literals, translate
// Turkish operators, parse (from cache when possible), then walk the
// resulting AST against frames, resolving calls through caller.
func (e *Evaluator) Eval(expr string, frames *runtime.FrameStack, caller Caller) (runtime.Value, error) {
	shielded, placeholders := ShieldStrings(expr)
	shielded = NormalizeCallSyntax(shielded)
	canonical := TranslateOperators(shielded)

	root, err := e.cache.Parse(canonical, placeholders)
	if err != nil {
		return nil, err
	}

	return e.walk(root, frames, caller)
}

func (e *Evaluator) walk(n Node, frames *runtime.FrameStack, caller Caller) (runtime.Value, error) {
	switch node := n.(type) {
	case *IntLit:
		return &runtime.IntegerValue{Value: node.Value}, nil
	case *FloatLit:
		return &runtime.FloatValue{Value: node.Value}, nil
	case *StringLit:
		return &runtime.StringValue{Value: node.Value}, nil
	case *BoolLit:
		return &runtime.BooleanValue{Value: node.Value}, nil

	case *Ident:
		if v, ok := frames.Get(node.Name); ok {
			return v, nil
		}
		return nil, runtime.NewUndefinedVariableError(node.Name)

	case *Unary:
		return e.walkUnary(node, frames, caller)

	case *Binary:
		return e.walkBinary(node, frames, caller)

	case *Index:
		return e.walkIndex(node, frames, caller)

	case *Call:
		return e.walkCall(node, frames, caller)

	default:
		return nil, runtime.NewParseError("", "tanınmayan ifade düğümü")
	}
}

func (e *Evaluator) walkUnary(n *Unary, frames *runtime.FrameStack, caller Caller) (runtime.Value, error) {
	v, err := e.walk(n.Operand, frames, caller)
	if err != nil {
		return nil, err
	}
	switch n.Op {
	case "-":
		switch num := v.(type) {
		case *runtime.IntegerValue:
			return &runtime.IntegerValue{Value: -num.Value}, nil
		case *runtime.FloatValue:
			return &runtime.FloatValue{Value: -num.Value}, nil
		default:
			return nil, runtime.NewTypeError("sayı", v, "birli eksi")
		}
	case "!":
		return &runtime.BooleanValue{Value: !runtime.Truthy(v)}, nil
	default:
		return nil, runtime.NewParseError(n.Op, "bilinmeyen birli operatör")
	}
}

func (e *Evaluator) walkBinary(n *Binary, frames *runtime.FrameStack, caller Caller) (runtime.Value, error) {
	// && and || short-circuit, per spec.md §4.3.6.
	if n.Op == "&&" {
		left, err := e.walk(n.Left, frames, caller)
		if err != nil {
			return nil, err
		}
		if !runtime.Truthy(left) {
			return &runtime.BooleanValue{Value: false}, nil
		}
		right, err := e.walk(n.Right, frames, caller)
		if err != nil {
			return nil, err
		}
		return &runtime.BooleanValue{Value: runtime.Truthy(right)}, nil
	}
	if n.Op == "||" {
		left, err := e.walk(n.Left, frames, caller)
		if err != nil {
			return nil, err
		}
		if runtime.Truthy(left) {
			return &runtime.BooleanValue{Value: true}, nil
		}
		right, err := e.walk(n.Right, frames, caller)
		if err != nil {
			return nil, err
		}
		return &runtime.BooleanValue{Value: runtime.Truthy(right)}, nil
	}

	left, err := e.walk(n.Left, frames, caller)
	if err != nil {
		return nil, err
	}
	right, err := e.walk(n.Right, frames, caller)
	if err != nil {
		return nil, err
	}

	switch n.Op {
	case "+":
		return runtime.Add(left, right)
	case "-", "*", "/", "//", "%":
		return arithmetic(n.Op, left, right)
	case "==":
		return &runtime.BooleanValue{Value: equalValues(left, right)}, nil
	case "!=":
		return &runtime.BooleanValue{Value: !equalValues(left, right)}, nil
	case "<", "<=", ">", ">=":
		return compareValues(n.Op, left, right)
	default:
		return nil, runtime.NewParseError(n.Op, "bilinmeyen ikili operatör")
	}
}

func (e *Evaluator) walkIndex(n *Index, frames *runtime.FrameStack, caller Caller) (runtime.Value, error) {
	receiver, err := e.walk(n.Receiver, frames, caller)
	if err != nil {
		return nil, err
	}
	key, err := e.walk(n.Key, frames, caller)
	if err != nil {
		return nil, err
	}

	switch r := receiver.(type) {
	case *runtime.ListValue:
		idx, ok := key.(*runtime.IntegerValue)
		if !ok {
			return nil, runtime.NewTypeError("TAMSAYI", key, "liste indeksi")
		}
		return r.Get(int(idx.Value))
	case *runtime.DictValue:
		s, ok := key.(*runtime.StringValue)
		if !ok {
			return nil, runtime.NewTypeError("METIN", key, "sözlük anahtarı")
		}
		if v, ok := r.Get(s.Value); ok {
			return v, nil
		}
		return runtime.Nil, nil
	default:
		return nil, runtime.NewTypeError("LISTE veya SOZLUK", receiver, "indeksleme")
	}
}

func (e *Evaluator) walkCall(n *Call, frames *runtime.FrameStack, caller Caller) (runtime.Value, error) {
	if n.Name == "__liste__" {
		elements := make([]runtime.Value, len(n.Args))
		for i, a := range n.Args {
			v, err := e.walk(a, frames, caller)
			if err != nil {
				return nil, err
			}
			elements[i] = v
		}
		return runtime.NewList(elements), nil
	}

	args := make([]runtime.Value, len(n.Args))
	for i, a := range n.Args {
		v, err := e.walk(a, frames, caller)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}
	return caller.CallFunction(n.Name, args)
}

func arithmetic(op string, a, b runtime.Value) (runtime.Value, error) {
	an, aOK := a.(runtime.NumericValue)
	bn, bOK := b.(runtime.NumericValue)
	if !aOK || !bOK {
		return nil, runtime.NewTypeError("sayı", pickNonNumeric(a, b, aOK), "aritmetik işlem")
	}

	_, aFloat := a.(*runtime.FloatValue)
	_, bFloat := b.(*runtime.FloatValue)
	useFloat := aFloat || bFloat || op == "/"

	if useFloat {
		af, _ := an.AsFloat()
		bf, _ := bn.AsFloat()
		switch op {
		case "-":
			return &runtime.FloatValue{Value: af - bf}, nil
		case "*":
			return &runtime.FloatValue{Value: af * bf}, nil
		case "/":
			if bf == 0 {
				return nil, runtime.NewArithmeticError("sıfıra bölme")
			}
			return &runtime.FloatValue{Value: af / bf}, nil
		case "//":
			if bf == 0 {
				return nil, runtime.NewArithmeticError("sıfıra bölme")
			}
			return &runtime.FloatValue{Value: floorDiv(af, bf)}, nil
		case "%":
			if bf == 0 {
				return nil, runtime.NewArithmeticError("sıfıra bölme")
			}
			return &runtime.FloatValue{Value: floatMod(af, bf)}, nil
		}
	}

	ai, _ := an.AsInteger()
	bi, _ := bn.AsInteger()
	switch op {
	case "-":
		return &runtime.IntegerValue{Value: ai - bi}, nil
	case "*":
		return &runtime.IntegerValue{Value: ai * bi}, nil
	case "//":
		if bi == 0 {
			return nil, runtime.NewArithmeticError("sıfıra bölme")
		}
		return &runtime.IntegerValue{Value: intFloorDiv(ai, bi)}, nil
	case "%":
		if bi == 0 {
			return nil, runtime.NewArithmeticError("sıfıra bölme")
		}
		return &runtime.IntegerValue{Value: intMod(ai, bi)}, nil
	}
	return nil, runtime.NewParseError(op, "bilinmeyen aritmetik operatör")
}

func pickNonNumeric(a, b runtime.Value, aOK bool) runtime.Value {
	if !aOK {
		return a
	}
	return b
}

func floorDiv(a, b float64) float64 {
	q := a / b
	return float64(int64(q)) - boolToFloat(q < 0 && float64(int64(q)) != q)
}

func boolToFloat(b bool) float64 {
	if b {
		return 1
	}
	return 0
}

func floatMod(a, b float64) float64 {
	m := a - floorDiv(a, b)*b
	return m
}

func intFloorDiv(a, b int64) int64 {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func intMod(a, b int64) int64 {
	m := a % b
	if m != 0 && ((m < 0) != (b < 0)) {
		m += b
	}
	return m
}

func equalValues(a, b runtime.Value) bool {
	an, aOK := a.(runtime.NumericValue)
	bn, bOK := b.(runtime.NumericValue)
	if aOK && bOK {
		af, _ := an.AsFloat()
		bf, _ := bn.AsFloat()
		return af == bf
	}
	as, aStr := a.(*runtime.StringValue)
	bs, bStr := b.(*runtime.StringValue)
	if aStr && bStr {
		return as.Value == bs.Value
	}
	ab, aBool := a.(*runtime.BooleanValue)
	bb, bBool := b.(*runtime.BooleanValue)
	if aBool && bBool {
		return ab.Value == bb.Value
	}
	_, aNil := a.(*runtime.NilValue)
	_, bNil := b.(*runtime.NilValue)
	if aNil || bNil {
		return aNil == bNil
	}
	return false
}

func compareValues(op string, a, b runtime.Value) (runtime.Value, error) {
	an, aOK := a.(runtime.NumericValue)
	bn, bOK := b.(runtime.NumericValue)
	if aOK && bOK {
		af, _ := an.AsFloat()
		bf, _ := bn.AsFloat()
		return &runtime.BooleanValue{Value: compareFloat(op, af, bf)}, nil
	}
	as, aStr := a.(*runtime.StringValue)
	bs, bStr := b.(*runtime.StringValue)
	if aStr && bStr {
		return &runtime.BooleanValue{Value: compareString(op, as.Value, bs.Value)}, nil
	}
	return nil, runtime.NewTypeError("karşılaştırılabilir tür", a, "karşılaştırma")
}

func compareFloat(op string, a, b float64) bool {
	switch op {
	case "<":
		return a < b
	case "<=":
		return a <= b
	case ">":
		return a > b
	case ">=":
		return a >= b
	}
	return false
}

func compareString(op string, a, b string) bool {
	switch op {
	case "<":
		return strings.Compare(a, b) < 0
	case "<=":
		return strings.Compare(a, b) <= 0
	case ">":
		return strings.Compare(a, b) > 0
	case ">=":
		return strings.Compare(a, b) >= 0
	}
	return false
}
