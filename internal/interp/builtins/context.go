// Package builtins provides built-in function implementations for the
// Kavun interpreter, following the teacher's internal/interp/builtins
// package: functions take a Context rather than being methods on the
// executor, so this package never imports the executor and no import
// cycle exists between them.
package builtins

import (
	"math/rand"

	"github.com/kavun-lang/kavun/internal/interp/runtime"
)

// Value aliases runtime.Value so built-in signatures read naturally
// without importing runtime everywhere.
type Value = runtime.Value

// Context is the minimal surface built-in functions need from the
// executor: random source access, and the side-effecting operations
// (colored output, screen drawing, the background animation worker)
// that cannot be expressed as plain value computation.
type Context interface {
	Rand() *rand.Rand

	Write(s string)
	WriteLine(s string)
	WriteColored(s, color string)

	StartAnimation(text string)
	StopAnimation()

	ClearScreen()
}

// Func is the signature for all built-in function implementations. A
// built-in reports failures as a Go error rather than DWScript's
// error-as-Value convention, matching the rest of the Kavun runtime
// package's error handling.
type Func func(ctx Context, args []Value) (Value, error)
