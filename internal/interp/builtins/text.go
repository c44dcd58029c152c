package builtins

import (
	"strings"

	"github.com/kavun-lang/kavun/internal/interp/runtime"
)

// RegisterTextFunctions wires the string built-ins named in
// SPEC_FULL.md §4, grounded on the teacher's
// internal/interp/builtins/strings*.go files. büyük_harf/küçük_harf are
// also reachable as the executor's '.büyük_harf()'/'.küçük_harf()'
// statement forms (spec.md §4.4 row 18); these are their
// expression-callable equivalents.
func RegisterTextFunctions(r *Registry) {
	r.Register("metin_uzunluk", builtinMetinUzunluk, CategoryText)
	r.Register("metin_kes", builtinMetinKes, CategoryText)
	r.Register("metin_bul", builtinMetinBul, CategoryText)
	r.Register("metin_degistir", builtinMetinDegistir, CategoryText)
	r.Register("büyük_harf", builtinBuyukHarf, CategoryText)
	r.Register("küçük_harf", builtinKucukHarf, CategoryText)
}

func asString(v Value) (string, bool) {
	s, ok := v.(*runtime.StringValue)
	if !ok {
		return "", false
	}
	return s.Value, true
}

func builtinMetinUzunluk(_ Context, args []Value) (Value, error) {
	if len(args) != 1 {
		return nil, runtime.NewArithmeticError("metin_uzunluk() tek argüman bekler")
	}
	s, ok := asString(args[0])
	if !ok {
		return nil, runtime.NewTypeError("METIN", args[0], "metin_uzunluk")
	}
	return &runtime.IntegerValue{Value: int64(len([]rune(s)))}, nil
}

// builtinMetinKes implements metin_kes(metin, baslangic, bitis): a
// 0-based, end-exclusive substring over runes, clamped to bounds rather
// than erroring — matching the original interpreter's lenient slicing.
func builtinMetinKes(_ Context, args []Value) (Value, error) {
	if len(args) != 3 {
		return nil, runtime.NewArithmeticError("metin_kes() üç argüman bekler")
	}
	s, ok := asString(args[0])
	if !ok {
		return nil, runtime.NewTypeError("METIN", args[0], "metin_kes")
	}
	start, ok1 := args[1].(*runtime.IntegerValue)
	end, ok2 := args[2].(*runtime.IntegerValue)
	if !ok1 || !ok2 {
		return nil, runtime.NewTypeError("TAMSAYI", args[1], "metin_kes")
	}
	runes := []rune(s)
	lo := clamp(int(start.Value), 0, len(runes))
	hi := clamp(int(end.Value), lo, len(runes))
	return &runtime.StringValue{Value: string(runes[lo:hi])}, nil
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func builtinMetinBul(_ Context, args []Value) (Value, error) {
	if len(args) != 2 {
		return nil, runtime.NewArithmeticError("metin_bul() iki argüman bekler")
	}
	s, ok1 := asString(args[0])
	needle, ok2 := asString(args[1])
	if !ok1 || !ok2 {
		return nil, runtime.NewTypeError("METIN", args[0], "metin_bul")
	}
	idx := strings.Index(s, needle)
	if idx < 0 {
		return &runtime.IntegerValue{Value: -1}, nil
	}
	return &runtime.IntegerValue{Value: int64(len([]rune(s[:idx])))}, nil
}

func builtinMetinDegistir(_ Context, args []Value) (Value, error) {
	if len(args) != 3 {
		return nil, runtime.NewArithmeticError("metin_degistir() üç argüman bekler")
	}
	s, ok1 := asString(args[0])
	old, ok2 := asString(args[1])
	newV, ok3 := asString(args[2])
	if !ok1 || !ok2 || !ok3 {
		return nil, runtime.NewTypeError("METIN", args[0], "metin_degistir")
	}
	return &runtime.StringValue{Value: strings.ReplaceAll(s, old, newV)}, nil
}

func builtinBuyukHarf(_ Context, args []Value) (Value, error) {
	s, ok := asString(args[0])
	if !ok {
		return nil, runtime.NewTypeError("METIN", args[0], "büyük_harf")
	}
	return &runtime.StringValue{Value: strings.ToUpper(s)}, nil
}

func builtinKucukHarf(_ Context, args []Value) (Value, error) {
	s, ok := asString(args[0])
	if !ok {
		return nil, runtime.NewTypeError("METIN", args[0], "küçük_harf")
	}
	return &runtime.StringValue{Value: strings.ToLower(s)}, nil
}
