package builtins

import (
	"testing"

	"github.com/kavun-lang/kavun/internal/interp/runtime"
)

func TestBuiltinRastgele_RangeInclusive(t *testing.T) {
	ctx := newFakeContext()
	for n := 0; n < 50; n++ {
		v, err := builtinRastgele(ctx, []Value{i(1), i(3)})
		if err != nil {
			t.Fatal(err)
		}
		iv := v.(*runtime.IntegerValue).Value
		if iv < 1 || iv > 3 {
			t.Fatalf("rastgele(1,3) = %d, out of range", iv)
		}
	}
}

func TestBuiltinSqrt(t *testing.T) {
	v, err := builtinSqrt(nil, []Value{fl(9)})
	if err != nil {
		t.Fatal(err)
	}
	if v.String() != "3.0" {
		t.Errorf("karekök(9) = %s, want 3.0", v.String())
	}

	if _, err := builtinSqrt(nil, []Value{fl(-1)}); err == nil {
		t.Error("karekök of a negative number should error")
	}
}

func TestBuiltinAbs(t *testing.T) {
	v, _ := builtinAbs(nil, []Value{i(-5)})
	if v.String() != "5" {
		t.Errorf("mutlak(-5) = %s, want 5", v.String())
	}
}

func TestBuiltinRound(t *testing.T) {
	v, _ := builtinRound(nil, []Value{fl(2.6)})
	if v.String() != "3" {
		t.Errorf("yuvarla(2.6) = %s, want 3", v.String())
	}
}

func TestBuiltinPow_IntegerWhenBothIntegerOperands(t *testing.T) {
	v, _ := builtinPow(nil, []Value{i(2), i(10)})
	if v.Type() != "TAMSAYI" || v.String() != "1024" {
		t.Errorf("kuvvet(2,10) = %s (%s), want 1024 TAMSAYI", v.String(), v.Type())
	}
}
