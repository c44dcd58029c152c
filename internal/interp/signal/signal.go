// Package signal implements spec.md §9's redesign of Kavun's three
// host-exception control-flow signals (break/continue/return) as a
// sum-typed "step outcome" instead of Go panics, the way the teacher
// models DWScript's control flow as explicit evaluator return values
// rather than exceptions.
package signal

import "github.com/kavun-lang/kavun/internal/interp/runtime"

// Kind identifies which control-flow signal, if any, a statement or
// block produced.
type Kind int

const (
	// Normal means execution completed the statement/block without a
	// break, continue, or return in flight.
	Normal Kind = iota
	// Break means 'kır' was raised; consumed by the innermost loop.
	Break
	// Continue means 'devam' was raised; consumed by the innermost loop.
	Continue
	// Return means 'dön' (with or without a value) was raised;
	// consumed by the call site of a user function.
	Return
)

// Outcome carries a Kind and, for Return, the value produced.
type Outcome struct {
	Kind  Kind
	Value runtime.Value // only meaningful when Kind == Return
}

// Ok is the zero-value "keep going" outcome.
var Ok = Outcome{Kind: Normal}

func BreakSignal() Outcome    { return Outcome{Kind: Break} }
func ContinueSignal() Outcome { return Outcome{Kind: Continue} }
func ReturnSignal(v runtime.Value) Outcome {
	if v == nil {
		v = runtime.Nil
	}
	return Outcome{Kind: Return, Value: v}
}

// IsSignal reports whether o represents any non-Normal control-flow signal.
func (o Outcome) IsSignal() bool { return o.Kind != Normal }
