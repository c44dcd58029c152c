// Package executor implements the Statement Executor from spec.md §4.4:
// a line-by-line dispatcher that recognizes each statement form in
// priority order, recursing into the Block Structurer for compound
// statements and into the Expression Evaluator for every right-hand
// side. It owns the process-wide runtime state named in spec.md §4.5:
// the frame stack, function registry, built-in registry, expression
// cache, and call trace.
package executor

import (
	"fmt"
	"io"
	"math/rand"
	"regexp"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/fatih/color"

	"github.com/kavun-lang/kavun/internal/block"
	"github.com/kavun-lang/kavun/internal/interp/builtins"
	"github.com/kavun-lang/kavun/internal/interp/runtime"
	"github.com/kavun-lang/kavun/internal/interp/signal"
	"github.com/kavun-lang/kavun/internal/interp/trace"
	"github.com/kavun-lang/kavun/internal/kvexpr"
)

// Executor holds every piece of process-wide state from spec.md §4.5 and
// drives statement dispatch.
type Executor struct {
	Frames    *runtime.FrameStack
	Functions *runtime.FunctionRegistry
	Builtins  *builtins.Registry
	Eval      *kvexpr.Evaluator
	Trace     *trace.Stack

	output   io.Writer
	rand     *rand.Rand
	noColor  bool
	reader   func() (string, error)
	animMu   sync.Mutex
	animStop chan struct{}
	animDone chan struct{}
}

// New builds an Executor writing to output and reading interactive input
// (the 'cevap()' form, spec.md §6) via readLine.
func New(output io.Writer, readLine func() (string, error)) *Executor {
	return &Executor{
		Frames:    runtime.NewFrameStack(),
		Functions: runtime.NewFunctionRegistry(),
		Builtins:  builtins.DefaultRegistry,
		Eval:      kvexpr.New(),
		Trace:     trace.New(),
		output:    output,
		rand:      rand.New(rand.NewSource(1)),
		reader:    readLine,
	}
}

// SetNoColor disables fatih/color output (the CLI's --no-color flag).
func (e *Executor) SetNoColor(v bool) {
	e.noColor = v
	color.NoColor = v
}

// Run executes a full program: lines collected by the source reader,
// under the top-level pseudo-frame '<main>' (spec.md §4.5).
func (e *Executor) Run(lines []string) error {
	_, err := e.ExecBlock(lines)
	return err
}

// ExecBlock runs a body of lines per the statement dispatch table in
// spec.md §4.4, returning the first non-Normal Outcome it encounters
// (break/continue/return), or the error from any statement.
func (e *Executor) ExecBlock(lines []string) (signal.Outcome, error) {
	ptr := 0
	for ptr < len(lines) {
		raw := lines[ptr]
		trimmed := strings.TrimSpace(raw)

		e.Trace.SetLine(ptr + 1)

		outcome, consumed, err := e.execStatement(trimmed, lines, ptr)
		if err != nil {
			return signal.Ok, err
		}
		if outcome.IsSignal() {
			return outcome, nil
		}
		ptr += consumed
	}
	return signal.Ok, nil
}

// execStatement dispatches a single trimmed line. It returns how many
// raw lines it consumed (1 for simple statements, more for blocks) and
// any control-flow signal raised.
func (e *Executor) execStatement(trimmed string, lines []string, ptr int) (signal.Outcome, int, error) {
	switch {
	case trimmed == "" || strings.HasPrefix(trimmed, "//"):
		return signal.Ok, 1, nil

	case trimmed == "bitir":
		return signal.Ok, 1, nil

	case trimmed == "temizle":
		e.ClearScreen()
		return signal.Ok, 1, nil

	case trimmed == "yeni_satır":
		e.WriteLine("")
		return signal.Ok, 1, nil

	case trimmed == "kır":
		return signal.BreakSignal(), 1, nil

	case trimmed == "devam":
		return signal.ContinueSignal(), 1, nil

	case trimmed == "dön":
		return signal.ReturnSignal(runtime.Nil), 1, nil

	case strings.HasSuffix(trimmed, " dön"):
		expr := strings.TrimSpace(strings.TrimSuffix(trimmed, " dön"))
		v, err := e.Eval.Eval(expr, e.Frames, e)
		if err != nil {
			return signal.Ok, 1, err
		}
		return signal.ReturnSignal(v), 1, nil

	case matchSleep(trimmed) != nil:
		return signal.Ok, 1, e.execSleep(matchSleep(trimmed))
	}

	if outcome, ok, err := e.tryAssignmentForms(trimmed); ok {
		return outcome, 1, err
	}

	if ok, err := e.tryColoredPrint(trimmed); ok {
		return signal.Ok, 1, err
	}

	if ok, err := e.tryAnimation(trimmed); ok {
		return signal.Ok, 1, err
	}

	if ok, err := e.tryDrawing(trimmed); ok {
		return signal.Ok, 1, err
	}

	if strings.HasSuffix(trimmed, " yaz") {
		expr := strings.TrimSpace(strings.TrimSuffix(trimmed, " yaz"))
		v, err := e.Eval.Eval(expr, e.Frames, e)
		if err != nil {
			fmt.Fprintf(e.output, "[Hata satır %d] Yazdırma hatası: %s\n", ptr+1, err)
			return signal.Ok, 1, nil
		}
		e.WriteLine(v.String())
		return signal.Ok, 1, nil
	}

	if strings.HasSuffix(trimmed, " ise:") || trimmed == "yoksa:" || strings.HasPrefix(trimmed, "yoksa ") && strings.HasSuffix(trimmed, " ise:") {
		return e.execIfChain(lines, ptr)
	}

	if strings.HasSuffix(trimmed, " iken:") {
		return e.execWhile(lines, ptr)
	}

	if isForHeader(trimmed) {
		return e.execFor(lines, ptr)
	}

	if isFunctionDefHeader(trimmed) {
		return e.execFunctionDef(lines, ptr)
	}

	if ok, err := e.tryVoidCall(trimmed); ok {
		if err != nil {
			fmt.Fprintf(e.output, "[Hata satır %d] Çağrı hatası: %s\n", ptr+1, err)
		}
		return signal.Ok, 1, nil
	}

	fmt.Fprintln(e.output, "Tanınmayan komut:", trimmed)
	return signal.Ok, 1, nil
}

var sleepPattern = regexp.MustCompile(`^(\S+)\s+saniye\s+bekle$`)

func matchSleep(trimmed string) []string {
	return sleepPattern.FindStringSubmatch(trimmed)
}

func (e *Executor) execSleep(m []string) error {
	f, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return runtime.NewParseError(m[1], "geçersiz süre")
	}
	time.Sleep(time.Duration(f * float64(time.Second)))
	return nil
}
