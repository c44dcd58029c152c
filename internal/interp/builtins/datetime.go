package builtins

import (
	"time"

	"github.com/kavun-lang/kavun/internal/interp/runtime"
)

// RegisterDateTimeFunctions wires şimdi/tarih/saat (SPEC_FULL.md §4),
// grounded on the teacher's internal/interp/builtins/datetime*.go files
// but trimmed to the three read-only clock accessors the original
// interpreter exposes.
func RegisterDateTimeFunctions(r *Registry) {
	r.Register("şimdi", builtinSimdi, CategoryDateTime)
	r.Register("tarih", builtinTarih, CategoryDateTime)
	r.Register("saat", builtinSaat, CategoryDateTime)
}

func builtinSimdi(_ Context, _ []Value) (Value, error) {
	return &runtime.StringValue{Value: time.Now().Format("2006-01-02 15:04:05")}, nil
}

func builtinTarih(_ Context, _ []Value) (Value, error) {
	return &runtime.StringValue{Value: time.Now().Format("2006-01-02")}, nil
}

func builtinSaat(_ Context, _ []Value) (Value, error) {
	return &runtime.StringValue{Value: time.Now().Format("15:04:05")}, nil
}
