package builtins

import (
	"github.com/kavun-lang/kavun/internal/interp/runtime"
)

// RegisterCollectionFunctions wires the list/dict built-ins named in
// SPEC_FULL.md §4: expression-callable equivalents of the statement
// forms in spec.md §4.4 rows 10/11/14/15/16/17/18, grounded on the
// teacher's internal/interp/builtins/array.go and collections.go.
func RegisterCollectionFunctions(r *Registry) {
	r.Register("liste_oluştur", builtinListeOlustur, CategoryCollections)
	r.Register("liste_ekle", builtinListeEkle, CategoryCollections)
	r.Register("liste_uzunluk", builtinListeUzunluk, CategoryCollections)
	r.Register("liste_eleman", builtinListeEleman, CategoryCollections)
	r.Register("liste_sil", builtinListeSil, CategoryCollections)

	r.Register("sözlük_oluştur", builtinSozlukOlustur, CategoryCollections)
	r.Register("sözlük_eleman", builtinSozlukEleman, CategoryCollections)
	r.Register("sözlük_ekle", builtinSozlukEkle, CategoryCollections)
	r.Register("sözlük_sil", builtinSozlukSil, CategoryCollections)
	r.Register("sözlük_anahtarlar", builtinSozlukAnahtarlar, CategoryCollections)
	r.Register("sözlük_değerler", builtinSozlukDegerler, CategoryCollections)
	r.Register("sözlük_uzunluk", builtinSozlukUzunluk, CategoryCollections)
}

func asList(v Value) (*runtime.ListValue, bool) {
	l, ok := v.(*runtime.ListValue)
	return l, ok
}

func asDict(v Value) (*runtime.DictValue, bool) {
	d, ok := v.(*runtime.DictValue)
	return d, ok
}

func builtinListeOlustur(_ Context, args []Value) (Value, error) {
	return runtime.NewList(append([]runtime.Value{}, args...)), nil
}

func builtinListeEkle(_ Context, args []Value) (Value, error) {
	if len(args) != 2 {
		return nil, runtime.NewArithmeticError("liste_ekle() iki argüman bekler")
	}
	l, ok := asList(args[0])
	if !ok {
		return nil, runtime.NewTypeError("LISTE", args[0], "liste_ekle")
	}
	l.Append(args[1])
	return l, nil
}

func builtinListeUzunluk(_ Context, args []Value) (Value, error) {
	l, ok := asList(args[0])
	if !ok {
		return nil, runtime.NewTypeError("LISTE", args[0], "liste_uzunluk")
	}
	return &runtime.IntegerValue{Value: int64(l.Len())}, nil
}

func builtinListeEleman(_ Context, args []Value) (Value, error) {
	if len(args) != 2 {
		return nil, runtime.NewArithmeticError("liste_eleman() iki argüman bekler")
	}
	l, ok := asList(args[0])
	if !ok {
		return nil, runtime.NewTypeError("LISTE", args[0], "liste_eleman")
	}
	idx, ok := args[1].(*runtime.IntegerValue)
	if !ok {
		return nil, runtime.NewTypeError("TAMSAYI", args[1], "liste_eleman")
	}
	return l.Get(int(idx.Value))
}

func builtinListeSil(_ Context, args []Value) (Value, error) {
	if len(args) != 2 {
		return nil, runtime.NewArithmeticError("liste_sil() iki argüman bekler")
	}
	l, ok := asList(args[0])
	if !ok {
		return nil, runtime.NewTypeError("LISTE", args[0], "liste_sil")
	}
	idx, ok := args[1].(*runtime.IntegerValue)
	if !ok {
		return nil, runtime.NewTypeError("TAMSAYI", args[1], "liste_sil")
	}
	return l.RemoveAt(int(idx.Value))
}

func builtinSozlukOlustur(_ Context, _ []Value) (Value, error) {
	return runtime.NewDict(), nil
}

func builtinSozlukEleman(_ Context, args []Value) (Value, error) {
	if len(args) != 2 {
		return nil, runtime.NewArithmeticError("sözlük_eleman() iki argüman bekler")
	}
	d, ok := asDict(args[0])
	if !ok {
		return nil, runtime.NewTypeError("SOZLUK", args[0], "sözlük_eleman")
	}
	key, ok := asString(args[1])
	if !ok {
		return nil, runtime.NewTypeError("METIN", args[1], "sözlük_eleman")
	}
	if v, found := d.Get(key); found {
		return v, nil
	}
	return runtime.Nil, nil
}

func builtinSozlukEkle(_ Context, args []Value) (Value, error) {
	if len(args) != 3 {
		return nil, runtime.NewArithmeticError("sözlük_ekle() üç argüman bekler")
	}
	d, ok := asDict(args[0])
	if !ok {
		return nil, runtime.NewTypeError("SOZLUK", args[0], "sözlük_ekle")
	}
	key, ok := asString(args[1])
	if !ok {
		return nil, runtime.NewTypeError("METIN", args[1], "sözlük_ekle")
	}
	d.Set(key, args[2])
	return d, nil
}

func builtinSozlukSil(_ Context, args []Value) (Value, error) {
	if len(args) != 2 {
		return nil, runtime.NewArithmeticError("sözlük_sil() iki argüman bekler")
	}
	d, ok := asDict(args[0])
	if !ok {
		return nil, runtime.NewTypeError("SOZLUK", args[0], "sözlük_sil")
	}
	key, ok := asString(args[1])
	if !ok {
		return nil, runtime.NewTypeError("METIN", args[1], "sözlük_sil")
	}
	v := d.Delete(key)
	if v == nil {
		return runtime.Nil, nil
	}
	return v, nil
}

func builtinSozlukAnahtarlar(_ Context, args []Value) (Value, error) {
	d, ok := asDict(args[0])
	if !ok {
		return nil, runtime.NewTypeError("SOZLUK", args[0], "sözlük_anahtarlar")
	}
	keys := d.Keys()
	elements := make([]runtime.Value, len(keys))
	for i, k := range keys {
		elements[i] = &runtime.StringValue{Value: k}
	}
	return runtime.NewList(elements), nil
}

func builtinSozlukDegerler(_ Context, args []Value) (Value, error) {
	d, ok := asDict(args[0])
	if !ok {
		return nil, runtime.NewTypeError("SOZLUK", args[0], "sözlük_değerler")
	}
	return runtime.NewList(d.Values()), nil
}

func builtinSozlukUzunluk(_ Context, args []Value) (Value, error) {
	d, ok := asDict(args[0])
	if !ok {
		return nil, runtime.NewTypeError("SOZLUK", args[0], "sözlük_uzunluk")
	}
	return &runtime.IntegerValue{Value: int64(d.Len())}, nil
}
