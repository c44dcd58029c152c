package builtins

import "testing"

func TestBuiltinMetinUzunluk(t *testing.T) {
	v, err := builtinMetinUzunluk(nil, []Value{s("merhaba")})
	if err != nil {
		t.Fatal(err)
	}
	if v.String() != "7" {
		t.Errorf("metin_uzunluk(merhaba) = %s, want 7", v.String())
	}
}

func TestBuiltinMetinUzunluk_CountsRunesNotBytes(t *testing.T) {
	v, err := builtinMetinUzunluk(nil, []Value{s("çöğüş")})
	if err != nil {
		t.Fatal(err)
	}
	if v.String() != "5" {
		t.Errorf("metin_uzunluk(çöğüş) = %s, want 5 (rune count)", v.String())
	}
}

func TestBuiltinMetinKes_NormalRange(t *testing.T) {
	v, err := builtinMetinKes(nil, []Value{s("merhaba"), i(0), i(3)})
	if err != nil {
		t.Fatal(err)
	}
	if v.String() != "mer" {
		t.Errorf("metin_kes(merhaba,0,3) = %s, want mer", v.String())
	}
}

func TestBuiltinMetinKes_ClampsOutOfBounds(t *testing.T) {
	v, err := builtinMetinKes(nil, []Value{s("ab"), i(-5), i(50)})
	if err != nil {
		t.Fatal(err)
	}
	if v.String() != "ab" {
		t.Errorf("metin_kes should clamp to full string, got %s", v.String())
	}
}

func TestBuiltinMetinBul(t *testing.T) {
	v, err := builtinMetinBul(nil, []Value{s("merhaba dünya"), s("dünya")})
	if err != nil {
		t.Fatal(err)
	}
	if v.String() != "8" {
		t.Errorf("metin_bul = %s, want 8", v.String())
	}

	v, err = builtinMetinBul(nil, []Value{s("merhaba"), s("yok")})
	if err != nil {
		t.Fatal(err)
	}
	if v.String() != "-1" {
		t.Errorf("metin_bul for a missing substring = %s, want -1", v.String())
	}
}

func TestBuiltinMetinDegistir(t *testing.T) {
	v, err := builtinMetinDegistir(nil, []Value{s("ab ab"), s("ab"), s("xy")})
	if err != nil {
		t.Fatal(err)
	}
	if v.String() != "xy xy" {
		t.Errorf("metin_degistir = %s, want xy xy", v.String())
	}
}

func TestBuiltinBuyukKucukHarf(t *testing.T) {
	v, _ := builtinBuyukHarf(nil, []Value{s("merhaba")})
	if v.String() != "MERHABA" {
		t.Errorf("büyük_harf = %s, want MERHABA", v.String())
	}

	v, _ = builtinKucukHarf(nil, []Value{s("MERHABA")})
	if v.String() != "merhaba" {
		t.Errorf("küçük_harf = %s, want merhaba", v.String())
	}
}

func TestBuiltinMetinUzunluk_TypeError(t *testing.T) {
	if _, err := builtinMetinUzunluk(nil, []Value{i(5)}); err == nil {
		t.Error("metin_uzunluk on a non-string should error")
	}
}
