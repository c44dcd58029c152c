package runtime

import "testing"

func TestDict_SetGetInsertionOrder(t *testing.T) {
	d := NewDict()
	d.Set("b", &IntegerValue{Value: 2})
	d.Set("a", &IntegerValue{Value: 1})
	d.Set("b", &IntegerValue{Value: 20}) // overwrite, order unchanged

	keys := d.Keys()
	if len(keys) != 2 || keys[0] != "b" || keys[1] != "a" {
		t.Fatalf("Keys() = %v, want insertion order [b a]", keys)
	}

	v, ok := d.Get("b")
	if !ok || v.String() != "20" {
		t.Fatalf("Get(b) = %v, %v", v, ok)
	}
}

func TestDict_MissingKey(t *testing.T) {
	d := NewDict()
	_, ok := d.Get("yok")
	if ok {
		t.Error("expected Get on a missing key to report ok=false")
	}
}

func TestDict_Delete(t *testing.T) {
	d := NewDict()
	d.Set("x", &IntegerValue{Value: 1})
	d.Set("y", &IntegerValue{Value: 2})
	d.Delete("x")

	if d.Len() != 1 {
		t.Fatalf("Len() after delete = %d, want 1", d.Len())
	}
	if _, ok := d.Get("x"); ok {
		t.Error("deleted key still present")
	}
}

func TestDict_Aliasing(t *testing.T) {
	a := NewDict()
	a.Set("k", &IntegerValue{Value: 1})
	b := a
	b.Set("k", &IntegerValue{Value: 2})

	v, _ := a.Get("k")
	if v.String() != "2" {
		t.Fatalf("mutation through b must be visible through a: a[k] = %v", v)
	}
}
