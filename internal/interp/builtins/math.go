package builtins

import (
	"math"

	"github.com/kavun-lang/kavun/internal/interp/runtime"
)

// RegisterMathFunctions wires the numeric built-ins named in SPEC_FULL.md
// §4, grounded on the teacher's internal/interp/builtins/math*.go files.
func RegisterMathFunctions(r *Registry) {
	r.Register("rastgele", builtinRastgele, CategoryMath)
	r.Register("ondalık_rastgele", builtinOndalikRastgele, CategoryMath)
	r.Register("karekök", builtinSqrt, CategoryMath)
	r.Register("kuvvet", builtinPow, CategoryMath)
	r.Register("mutlak", builtinAbs, CategoryMath)
	r.Register("yuvarla", builtinRound, CategoryMath)
	r.Register("sin", builtinSin, CategoryMath)
	r.Register("cos", builtinCos, CategoryMath)
	r.Register("tan", builtinTan, CategoryMath)
	r.Register("log", builtinLog, CategoryMath)
	r.Register("log10", builtinLog10, CategoryMath)
}

func asFloat(v Value) (float64, bool) {
	n, ok := v.(runtime.NumericValue)
	if !ok {
		return 0, false
	}
	f, _ := n.AsFloat()
	return f, true
}

func builtinRastgele(ctx Context, args []Value) (Value, error) {
	if len(args) != 2 {
		return nil, runtime.NewArithmeticError("rastgele() iki argüman bekler")
	}
	lo, ok1 := args[0].(*runtime.IntegerValue)
	hi, ok2 := args[1].(*runtime.IntegerValue)
	if !ok1 || !ok2 {
		return nil, runtime.NewTypeError("TAMSAYI", args[0], "rastgele")
	}
	if hi.Value < lo.Value {
		return nil, runtime.NewArithmeticError("rastgele() aralığı geçersiz")
	}
	span := hi.Value - lo.Value + 1
	return &runtime.IntegerValue{Value: lo.Value + ctx.Rand().Int63n(span)}, nil
}

func builtinOndalikRastgele(ctx Context, _ []Value) (Value, error) {
	return &runtime.FloatValue{Value: ctx.Rand().Float64()}, nil
}

func builtinSqrt(_ Context, args []Value) (Value, error) {
	if len(args) != 1 {
		return nil, runtime.NewArithmeticError("karekök() tek argüman bekler")
	}
	f, ok := asFloat(args[0])
	if !ok {
		return nil, runtime.NewTypeError("sayı", args[0], "karekök")
	}
	if f < 0 {
		return nil, runtime.NewArithmeticError("negatif sayının karekökü")
	}
	return &runtime.FloatValue{Value: math.Sqrt(f)}, nil
}

func builtinPow(_ Context, args []Value) (Value, error) {
	if len(args) != 2 {
		return nil, runtime.NewArithmeticError("kuvvet() iki argüman bekler")
	}
	base, ok1 := asFloat(args[0])
	exp, ok2 := asFloat(args[1])
	if !ok1 || !ok2 {
		return nil, runtime.NewTypeError("sayı", args[0], "kuvvet")
	}
	result := math.Pow(base, exp)
	if _, baseInt := args[0].(*runtime.IntegerValue); baseInt {
		if _, expInt := args[1].(*runtime.IntegerValue); expInt && exp >= 0 {
			return &runtime.IntegerValue{Value: int64(result)}, nil
		}
	}
	return &runtime.FloatValue{Value: result}, nil
}

func builtinAbs(_ Context, args []Value) (Value, error) {
	if len(args) != 1 {
		return nil, runtime.NewArithmeticError("mutlak() tek argüman bekler")
	}
	switch v := args[0].(type) {
	case *runtime.IntegerValue:
		if v.Value < 0 {
			return &runtime.IntegerValue{Value: -v.Value}, nil
		}
		return v, nil
	case *runtime.FloatValue:
		return &runtime.FloatValue{Value: math.Abs(v.Value)}, nil
	default:
		return nil, runtime.NewTypeError("sayı", args[0], "mutlak")
	}
}

func builtinRound(_ Context, args []Value) (Value, error) {
	if len(args) != 1 {
		return nil, runtime.NewArithmeticError("yuvarla() tek argüman bekler")
	}
	f, ok := asFloat(args[0])
	if !ok {
		return nil, runtime.NewTypeError("sayı", args[0], "yuvarla")
	}
	return &runtime.IntegerValue{Value: int64(math.Round(f))}, nil
}

func unaryTrig(name string, fn func(float64) float64) Func {
	return func(_ Context, args []Value) (Value, error) {
		if len(args) != 1 {
			return nil, runtime.NewArithmeticError(name + "() tek argüman bekler")
		}
		f, ok := asFloat(args[0])
		if !ok {
			return nil, runtime.NewTypeError("sayı", args[0], name)
		}
		return &runtime.FloatValue{Value: fn(f)}, nil
	}
}

var (
	builtinSin   = unaryTrig("sin", math.Sin)
	builtinCos   = unaryTrig("cos", math.Cos)
	builtinTan   = unaryTrig("tan", math.Tan)
	builtinLog   = unaryTrig("log", math.Log)
	builtinLog10 = unaryTrig("log10", math.Log10)
)
