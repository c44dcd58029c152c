// Package interp wires the Kavun interpreter's components together:
// Source Reader -> Block Structurer -> Statement Executor (which in turn
// drives the Expression Evaluator), matching spec.md §2's pipeline.
package interp

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/kavun-lang/kavun/internal/interp/diagnostics"
	"github.com/kavun-lang/kavun/internal/interp/executor"
	"github.com/kavun-lang/kavun/internal/source"
)

// Interpreter is the top-level entry point used by cmd/kavun.
type Interpreter struct {
	exec   *executor.Executor
	output io.Writer
}

// New builds an Interpreter writing program output to output and
// reading 'cevap()' input lines from stdin.
func New(output io.Writer) *Interpreter {
	stdin := bufio.NewReader(os.Stdin)
	readLine := func() (string, error) {
		line, err := stdin.ReadString('\n')
		if err != nil && err != io.EOF {
			return "", err
		}
		return line, nil
	}
	return &Interpreter{
		exec:   executor.New(output, readLine),
		output: output,
	}
}

// SetNoColor disables colored output.
func (i *Interpreter) SetNoColor(v bool) { i.exec.SetNoColor(v) }

// RunFile loads and runs a .kvn source file, implementing the CLI
// contract from spec.md §6: a missing file is an error, an empty
// program (no non-comment/non-blank lines) is informational and not an
// error.
func (i *Interpreter) RunFile(path string) error {
	lines, err := source.Read(path)
	if err != nil {
		return err
	}
	return i.run(lines)
}

// RunSource runs inline program text, for the CLI's -e/--eval flag.
func (i *Interpreter) RunSource(text string) error {
	return i.run(source.Split(text))
}

func (i *Interpreter) run(lines source.Lines) error {
	if len(lines.NonBlank()) == 0 {
		fmt.Fprintln(i.output, "Program boş, çalıştırılacak bir şey yok.")
		return nil
	}

	if err := i.exec.Run(lines); err != nil {
		fmt.Fprint(os.Stderr, diagnostics.Report(err, i.exec.Trace))
		return err
	}
	return nil
}
