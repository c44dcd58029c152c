// Package runtime provides the runtime value system for the Kavun
// interpreter: the tagged-union Value type, list and dict reference
// types, the frame stack, and the typed runtime error family.
package runtime

import (
	"fmt"
	"strconv"
	"strings"
)

// Value represents a runtime value in the Kavun interpreter. All value
// variants (Integer, Float, Boolean, String, List, Dict, Nil) implement it.
type Value interface {
	// Type returns the type name of the value (e.g. "TAMSAYI", "METIN").
	Type() string
	// String returns the textual form used by 'yaz' and string concatenation.
	String() string
}

// NumericValue is implemented by values that participate in arithmetic.
type NumericValue interface {
	Value
	AsInteger() (int64, bool)
	AsFloat() (float64, bool)
}

// IntegerValue is a signed 64-bit integer.
type IntegerValue struct {
	Value int64
}

func (i *IntegerValue) Type() string   { return "TAMSAYI" }
func (i *IntegerValue) String() string { return strconv.FormatInt(i.Value, 10) }

func (i *IntegerValue) AsInteger() (int64, bool)   { return i.Value, true }
func (i *IntegerValue) AsFloat() (float64, bool)   { return float64(i.Value), true }

// FloatValue is a binary64 floating point number.
type FloatValue struct {
	Value float64
}

func (f *FloatValue) Type() string { return "ONDALIK" }

// String renders f the way Python's str() renders a float: a
// whole-number float still carries a trailing ".0" (spec.md §6), so
// "val: " + (10/2) prints "val: 5.0", never "val: 5".
func (f *FloatValue) String() string {
	s := strconv.FormatFloat(f.Value, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}

func (f *FloatValue) AsInteger() (int64, bool) { return int64(f.Value), true }
func (f *FloatValue) AsFloat() (float64, bool) { return f.Value, true }

// BooleanValue is a boolean, printed in the canonical True/False form
// required by spec.md §6.
type BooleanValue struct {
	Value bool
}

func (b *BooleanValue) Type() string { return "MANTIKSAL" }
func (b *BooleanValue) String() string {
	if b.Value {
		return "True"
	}
	return "False"
}

// StringValue is a UTF-8 string.
type StringValue struct {
	Value string
}

func (s *StringValue) Type() string   { return "METIN" }
func (s *StringValue) String() string { return s.Value }

// NilValue is the absent/no-return sentinel.
type NilValue struct{}

func (n *NilValue) Type() string   { return "YOK" }
func (n *NilValue) String() string { return "yok" }

// Nil is the single shared Nil instance; Nil values carry no state so
// sharing one instance is safe and avoids an allocation per return.
var Nil = &NilValue{}

// Truthy implements Kavun's definition of truthiness for 'ise'/'iken'
// conditions and the '&&'/'||' short-circuit operators: booleans use
// their own value, numbers are truthy if non-zero, strings and
// containers are truthy if non-empty, Nil is always falsey.
func Truthy(v Value) bool {
	switch val := v.(type) {
	case *BooleanValue:
		return val.Value
	case *IntegerValue:
		return val.Value != 0
	case *FloatValue:
		return val.Value != 0
	case *StringValue:
		return val.Value != ""
	case *ListValue:
		return len(val.Elements) != 0
	case *DictValue:
		return val.Len() != 0
	case *NilValue, nil:
		return false
	default:
		return true
	}
}

// Add implements the lenient '+' overload from spec.md §4.3.6: numeric
// operands add arithmetically (any float operand promotes to float),
// string operands concatenate, and a mixed pair stringifies the
// non-string operand before concatenating.
func Add(a, b Value) (Value, error) {
	as, aIsString := a.(*StringValue)
	bs, bIsString := b.(*StringValue)

	if aIsString && bIsString {
		return &StringValue{Value: as.Value + bs.Value}, nil
	}
	if aIsString {
		return &StringValue{Value: as.Value + b.String()}, nil
	}
	if bIsString {
		return &StringValue{Value: a.String() + bs.Value}, nil
	}

	an, aIsNum := a.(NumericValue)
	bn, bIsNum := b.(NumericValue)
	if aIsNum && bIsNum {
		if _, aIsFloat := a.(*FloatValue); aIsFloat {
			af, _ := an.AsFloat()
			bf, _ := bn.AsFloat()
			return &FloatValue{Value: af + bf}, nil
		}
		if _, bIsFloat := b.(*FloatValue); bIsFloat {
			af, _ := an.AsFloat()
			bf, _ := bn.AsFloat()
			return &FloatValue{Value: af + bf}, nil
		}
		ai, _ := an.AsInteger()
		bi, _ := bn.AsInteger()
		return &IntegerValue{Value: ai + bi}, nil
	}

	return nil, fmt.Errorf("'+' operatörü %s ve %s için tanımlı değil", a.Type(), b.Type())
}
