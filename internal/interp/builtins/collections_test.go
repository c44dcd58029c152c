package builtins

import "testing"

func TestBuiltinListeOlustur(t *testing.T) {
	v, err := builtinListeOlustur(nil, []Value{i(1), i(2), i(3)})
	if err != nil {
		t.Fatal(err)
	}
	if v.String() != "[1, 2, 3]" {
		t.Errorf("liste_oluştur(1,2,3) = %s, want [1, 2, 3]", v.String())
	}
}

func TestBuiltinListeEkle(t *testing.T) {
	l, _ := builtinListeOlustur(nil, []Value{i(1)})
	v, err := builtinListeEkle(nil, []Value{l, i(2)})
	if err != nil {
		t.Fatal(err)
	}
	if v.String() != "[1, 2]" {
		t.Errorf("liste_ekle = %s, want [1, 2]", v.String())
	}
}

func TestBuiltinListeUzunluk(t *testing.T) {
	l, _ := builtinListeOlustur(nil, []Value{i(1), i(2)})
	v, err := builtinListeUzunluk(nil, []Value{l})
	if err != nil {
		t.Fatal(err)
	}
	if v.String() != "2" {
		t.Errorf("liste_uzunluk = %s, want 2", v.String())
	}
}

func TestBuiltinListeEleman(t *testing.T) {
	l, _ := builtinListeOlustur(nil, []Value{s("a"), s("b")})
	v, err := builtinListeEleman(nil, []Value{l, i(1)})
	if err != nil {
		t.Fatal(err)
	}
	if v.String() != "b" {
		t.Errorf("liste_eleman(l,1) = %s, want b", v.String())
	}

	if _, err := builtinListeEleman(nil, []Value{l, i(9)}); err == nil {
		t.Error("out-of-bounds liste_eleman should error")
	}
}

func TestBuiltinListeSil(t *testing.T) {
	l, _ := builtinListeOlustur(nil, []Value{i(1), i(2), i(3)})
	removed, err := builtinListeSil(nil, []Value{l, i(1)})
	if err != nil {
		t.Fatal(err)
	}
	if removed.String() != "2" {
		t.Errorf("liste_sil returned %s, want 2", removed.String())
	}
	if l.String() != "[1, 3]" {
		t.Errorf("liste_sil should mutate the original list, got %s", l.String())
	}
}

func TestBuiltinSozlukEkleEleman(t *testing.T) {
	d, _ := builtinSozlukOlustur(nil, nil)
	if _, err := builtinSozlukEkle(nil, []Value{d, s("ad"), s("kavun")}); err != nil {
		t.Fatal(err)
	}
	v, err := builtinSozlukEleman(nil, []Value{d, s("ad")})
	if err != nil {
		t.Fatal(err)
	}
	if v.String() != "kavun" {
		t.Errorf("sözlük_eleman(d,ad) = %s, want kavun", v.String())
	}
}

func TestBuiltinSozlukEleman_MissingKeyReturnsNil(t *testing.T) {
	d, _ := builtinSozlukOlustur(nil, nil)
	v, err := builtinSozlukEleman(nil, []Value{d, s("yok")})
	if err != nil {
		t.Fatal(err)
	}
	if v.Type() != "YOK" {
		t.Errorf("sözlük_eleman on a missing key = %s, want YOK", v.Type())
	}
}

func TestBuiltinSozlukSil(t *testing.T) {
	d, _ := builtinSozlukOlustur(nil, nil)
	builtinSozlukEkle(nil, []Value{d, s("k"), i(7)})
	v, err := builtinSozlukSil(nil, []Value{d, s("k")})
	if err != nil {
		t.Fatal(err)
	}
	if v.String() != "7" {
		t.Errorf("sözlük_sil returned %s, want 7", v.String())
	}
	if d.Len() != 0 {
		t.Errorf("sözlük_sil should remove the key, dict length = %d", d.Len())
	}
}

func TestBuiltinSozlukAnahtarlarDegerlerPreserveInsertionOrder(t *testing.T) {
	d, _ := builtinSozlukOlustur(nil, nil)
	builtinSozlukEkle(nil, []Value{d, s("b"), i(2)})
	builtinSozlukEkle(nil, []Value{d, s("a"), i(1)})

	keys, err := builtinSozlukAnahtarlar(nil, []Value{d})
	if err != nil {
		t.Fatal(err)
	}
	if keys.String() != "[\"b\", \"a\"]" {
		t.Errorf("sözlük_anahtarlar = %s, want [\"b\", \"a\"]", keys.String())
	}

	values, err := builtinSozlukDegerler(nil, []Value{d})
	if err != nil {
		t.Fatal(err)
	}
	if values.String() != "[2, 1]" {
		t.Errorf("sözlük_değerler = %s, want [2, 1]", values.String())
	}
}

func TestBuiltinSozlukUzunluk(t *testing.T) {
	d, _ := builtinSozlukOlustur(nil, nil)
	builtinSozlukEkle(nil, []Value{d, s("k"), i(1)})
	v, err := builtinSozlukUzunluk(nil, []Value{d})
	if err != nil {
		t.Fatal(err)
	}
	if v.String() != "1" {
		t.Errorf("sözlük_uzunluk = %s, want 1", v.String())
	}
}
