package runtime

import "testing"

func TestTruthy(t *testing.T) {
	cases := []struct {
		v    Value
		want bool
	}{
		{&BooleanValue{Value: true}, true},
		{&BooleanValue{Value: false}, false},
		{&IntegerValue{Value: 0}, false},
		{&IntegerValue{Value: 3}, true},
		{&StringValue{Value: ""}, false},
		{&StringValue{Value: "x"}, true},
		{NewList(nil), false},
		{NewList([]Value{&IntegerValue{Value: 1}}), true},
		{Nil, false},
	}
	for _, c := range cases {
		if got := Truthy(c.v); got != c.want {
			t.Errorf("Truthy(%v) = %v, want %v", c.v, got, c.want)
		}
	}
}

func TestAdd_LenientOverload(t *testing.T) {
	cases := []struct {
		a, b Value
		want string
	}{
		{&IntegerValue{Value: 2}, &IntegerValue{Value: 3}, "5"},
		{&IntegerValue{Value: 2}, &FloatValue{Value: 1.5}, "3.5"},
		{&StringValue{Value: "a"}, &StringValue{Value: "b"}, "ab"},
		{&StringValue{Value: "n="}, &IntegerValue{Value: 5}, "n=5"},
		{&IntegerValue{Value: 5}, &StringValue{Value: "!"}, "5!"},
	}
	for _, c := range cases {
		v, err := Add(c.a, c.b)
		if err != nil {
			t.Fatalf("Add(%v, %v) error: %v", c.a, c.b, err)
		}
		if v.String() != c.want {
			t.Errorf("Add(%v, %v) = %q, want %q", c.a, c.b, v.String(), c.want)
		}
	}
}

func TestAdd_BooleanIsUnsupported(t *testing.T) {
	_, err := Add(&BooleanValue{Value: true}, &IntegerValue{Value: 1})
	if err == nil {
		t.Fatal("expected an error adding a boolean to a number")
	}
}

func TestBooleanString_Canonical(t *testing.T) {
	if (&BooleanValue{Value: true}).String() != "True" {
		t.Error("boolean true must print as True")
	}
	if (&BooleanValue{Value: false}).String() != "False" {
		t.Error("boolean false must print as False")
	}
}

func TestIntegerString_NoDecimalPoint(t *testing.T) {
	if (&IntegerValue{Value: 5}).String() != "5" {
		t.Error("integers must not print a decimal point")
	}
}

func TestFloatString_WholeNumberKeepsTrailingPointZero(t *testing.T) {
	if (&FloatValue{Value: 5}).String() != "5.0" {
		t.Errorf("(&FloatValue{5}).String() = %q, want \"5.0\"", (&FloatValue{Value: 5}).String())
	}
	if (&FloatValue{Value: 3.5}).String() != "3.5" {
		t.Errorf("(&FloatValue{3.5}).String() = %q, want \"3.5\"", (&FloatValue{Value: 3.5}).String())
	}
}
