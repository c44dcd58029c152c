package builtins

import (
	"os"

	"github.com/kavun-lang/kavun/internal/interp/runtime"
)

// RegisterFileFunctions wires the filesystem built-ins named in
// SPEC_FULL.md §4, grounded on the teacher's internal/interp I/O
// helpers but trimmed to whole-file text operations — Kavun has no
// streaming file handle value.
func RegisterFileFunctions(r *Registry) {
	r.Register("dosya_oku", builtinDosyaOku, CategoryFiles)
	r.Register("dosya_yaz", builtinDosyaYaz, CategoryFiles)
	r.Register("dosya_ekle", builtinDosyaEkle, CategoryFiles)
	r.Register("dosya_var_mi", builtinDosyaVarMi, CategoryFiles)
	r.Register("dosya_sil", builtinDosyaSil, CategoryFiles)
	r.Register("klasor_oluştur", builtinKlasorOlustur, CategoryFiles)
	r.Register("klasor_listesi", builtinKlasorListesi, CategoryFiles)
}

func builtinDosyaOku(_ Context, args []Value) (Value, error) {
	path, ok := asString(args[0])
	if !ok {
		return nil, runtime.NewTypeError("METIN", args[0], "dosya_oku")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, runtime.NewArithmeticError("dosya okunamadı: " + err.Error())
	}
	return &runtime.StringValue{Value: string(data)}, nil
}

func builtinDosyaYaz(_ Context, args []Value) (Value, error) {
	if len(args) != 2 {
		return nil, runtime.NewArithmeticError("dosya_yaz() iki argüman bekler")
	}
	path, ok1 := asString(args[0])
	content, ok2 := asString(args[1])
	if !ok1 || !ok2 {
		return nil, runtime.NewTypeError("METIN", args[0], "dosya_yaz")
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return nil, runtime.NewArithmeticError("dosya yazılamadı: " + err.Error())
	}
	return runtime.Nil, nil
}

func builtinDosyaEkle(_ Context, args []Value) (Value, error) {
	if len(args) != 2 {
		return nil, runtime.NewArithmeticError("dosya_ekle() iki argüman bekler")
	}
	path, ok1 := asString(args[0])
	content, ok2 := asString(args[1])
	if !ok1 || !ok2 {
		return nil, runtime.NewTypeError("METIN", args[0], "dosya_ekle")
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, runtime.NewArithmeticError("dosya açılamadı: " + err.Error())
	}
	defer f.Close()
	if _, err := f.WriteString(content); err != nil {
		return nil, runtime.NewArithmeticError("dosyaya yazılamadı: " + err.Error())
	}
	return runtime.Nil, nil
}

func builtinDosyaVarMi(_ Context, args []Value) (Value, error) {
	path, ok := asString(args[0])
	if !ok {
		return nil, runtime.NewTypeError("METIN", args[0], "dosya_var_mi")
	}
	_, err := os.Stat(path)
	return &runtime.BooleanValue{Value: err == nil}, nil
}

func builtinDosyaSil(_ Context, args []Value) (Value, error) {
	path, ok := asString(args[0])
	if !ok {
		return nil, runtime.NewTypeError("METIN", args[0], "dosya_sil")
	}
	if err := os.Remove(path); err != nil {
		return nil, runtime.NewArithmeticError("dosya silinemedi: " + err.Error())
	}
	return runtime.Nil, nil
}

func builtinKlasorOlustur(_ Context, args []Value) (Value, error) {
	path, ok := asString(args[0])
	if !ok {
		return nil, runtime.NewTypeError("METIN", args[0], "klasor_oluştur")
	}
	if err := os.MkdirAll(path, 0o755); err != nil {
		return nil, runtime.NewArithmeticError("klasör oluşturulamadı: " + err.Error())
	}
	return runtime.Nil, nil
}

func builtinKlasorListesi(_ Context, args []Value) (Value, error) {
	path, ok := asString(args[0])
	if !ok {
		return nil, runtime.NewTypeError("METIN", args[0], "klasor_listesi")
	}
	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, runtime.NewArithmeticError("klasör okunamadı: " + err.Error())
	}
	names := make([]runtime.Value, len(entries))
	for i, e := range entries {
		names[i] = &runtime.StringValue{Value: e.Name()}
	}
	return runtime.NewList(names), nil
}
