package executor

import (
	"fmt"
	"math/rand"

	"github.com/kavun-lang/kavun/internal/interp/builtins"
	"github.com/kavun-lang/kavun/internal/interp/runtime"
	"github.com/kavun-lang/kavun/internal/kvexpr"
)

// Ensure Executor implements both interfaces kvexpr/builtins depend on,
// mirroring the teacher's "var _ builtins.Context = (*Interpreter)(nil)"
// compile-time check.
var (
	_ kvexpr.Caller    = (*Executor)(nil)
	_ builtins.Context = (*Executor)(nil)
)

func (e *Executor) Rand() *rand.Rand { return e.rand }

func (e *Executor) Write(s string) { fmt.Fprint(e.output, s) }

func (e *Executor) WriteLine(s string) { fmt.Fprintln(e.output, s) }

func (e *Executor) WriteColored(s, colorName string) {
	fmt.Fprintln(e.output, builtins.Colorize(s, colorName))
}

func (e *Executor) ClearScreen() {
	fmt.Fprint(e.output, "\033[H\033[2J")
}

// CallFunction implements kvexpr.Caller: it resolves name against the
// user-function registry first, then the built-in registry, matching
// spec.md §3's resolution order (variable names are handled earlier, in
// the evaluator's Ident case).
func (e *Executor) CallFunction(name string, args []runtime.Value) (runtime.Value, error) {
	if def, ok := e.Functions.Lookup(name); ok {
		return e.callUserFunction(name, def, args)
	}
	if fn, ok := e.Builtins.Lookup(name); ok {
		return fn(e, args)
	}
	return nil, runtime.NewUndefinedFunctionError(name)
}
