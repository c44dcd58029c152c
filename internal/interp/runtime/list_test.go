package runtime

import "testing"

func TestList_AppendGetSetRemove(t *testing.T) {
	l := NewList([]Value{&IntegerValue{Value: 1}, &IntegerValue{Value: 2}})
	l.Append(&IntegerValue{Value: 3})
	if l.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", l.Len())
	}

	v, err := l.Get(2)
	if err != nil || v.String() != "3" {
		t.Fatalf("Get(2) = %v, %v", v, err)
	}

	if err := l.Set(0, &IntegerValue{Value: 99}); err != nil {
		t.Fatal(err)
	}
	v, _ = l.Get(0)
	if v.String() != "99" {
		t.Fatalf("after Set, Get(0) = %v", v)
	}

	removed, err := l.RemoveAt(1)
	if err != nil || removed.String() != "2" {
		t.Fatalf("RemoveAt(1) = %v, %v", removed, err)
	}
	if l.Len() != 2 {
		t.Fatalf("Len() after remove = %d, want 2", l.Len())
	}
}

func TestList_OutOfBounds(t *testing.T) {
	l := NewList([]Value{&IntegerValue{Value: 1}})
	if _, err := l.Get(5); err == nil {
		t.Error("expected an IndexError")
	}
	if _, err := l.RemoveAt(-1); err == nil {
		t.Error("expected an IndexError")
	}
}

func TestList_Aliasing(t *testing.T) {
	a := NewList([]Value{&IntegerValue{Value: 1}})
	b := a // assignment in Kavun aliases the same backing list
	b.Append(&IntegerValue{Value: 2})
	if a.Len() != 2 {
		t.Fatalf("mutation through b must be visible through a: a.Len() = %d", a.Len())
	}
}

func TestList_StringQuotesElements(t *testing.T) {
	l := NewList([]Value{&StringValue{Value: "merhaba"}, &IntegerValue{Value: 1}})
	if got, want := l.String(), `["merhaba", 1]`; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
