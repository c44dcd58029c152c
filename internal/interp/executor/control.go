package executor

import (
	"regexp"
	"strings"

	"github.com/kavun-lang/kavun/internal/block"
	"github.com/kavun-lang/kavun/internal/interp/builtins"
	"github.com/kavun-lang/kavun/internal/interp/runtime"
	"github.com/kavun-lang/kavun/internal/interp/signal"
	"github.com/kavun-lang/kavun/internal/kvexpr"
)

var coloredPrintRe = regexp.MustCompile(`^(.+)\s+(kırmızı|yesil|sarı|mavi|mor|turkuaz)_yaz$`)

// tryColoredPrint implements row 21: '<expr> <color>_yaz'.
func (e *Executor) tryColoredPrint(trimmed string) (bool, error) {
	m := coloredPrintRe.FindStringSubmatch(trimmed)
	if m == nil {
		return false, nil
	}
	v, err := e.Eval.Eval(m[1], e.Frames, e)
	if err != nil {
		return true, err
	}
	e.WriteColored(v.String(), m[2])
	return true, nil
}

var animatedPrintRe = regexp.MustCompile(`^(.+)\s+animasyonlu_yaz$`)

// tryAnimation implements row 22: '<expr> animasyonlu_yaz' and the bare
// 'animasyon_durdur' statement.
func (e *Executor) tryAnimation(trimmed string) (bool, error) {
	if trimmed == "animasyon_durdur" {
		e.StopAnimation()
		return true, nil
	}
	m := animatedPrintRe.FindStringSubmatch(trimmed)
	if m == nil {
		return false, nil
	}
	v, err := e.Eval.Eval(m[1], e.Frames, e)
	if err != nil {
		return true, err
	}
	e.StartAnimation(v.String())
	return true, nil
}

var (
	triangleRe = regexp.MustCompile(`^üçgen_çiz\((.+)\)$`)
	squareRe   = regexp.MustCompile(`^kare_çiz\((.+)\)$`)
	heartRe    = regexp.MustCompile(`^kalp_çiz\(\s*\)$`)
	graphRe    = regexp.MustCompile(`^grafik_çiz\((.+)\)$`)
)

// tryDrawing implements row 23: the ASCII drawing built-ins.
func (e *Executor) tryDrawing(trimmed string) (bool, error) {
	if m := triangleRe.FindStringSubmatch(trimmed); m != nil {
		n, err := e.evalInt(m[1])
		if err != nil {
			return true, err
		}
		e.Write(builtins.Triangle(int(n)))
		return true, nil
	}
	if m := squareRe.FindStringSubmatch(trimmed); m != nil {
		n, err := e.evalInt(m[1])
		if err != nil {
			return true, err
		}
		e.Write(builtins.Square(int(n)))
		return true, nil
	}
	if heartRe.MatchString(trimmed) {
		e.Write(builtins.Heart())
		return true, nil
	}
	if m := graphRe.FindStringSubmatch(trimmed); m != nil {
		v, err := e.Eval.Eval(m[1], e.Frames, e)
		if err != nil {
			return true, err
		}
		list, ok := v.(*runtime.ListValue)
		if !ok {
			return true, runtime.NewTypeError("LISTE", v, "grafik_çiz")
		}
		nums := make([]float64, list.Len())
		for i, el := range list.Elements {
			n, ok := el.(runtime.NumericValue)
			if !ok {
				return true, runtime.NewTypeError("sayı", el, "grafik_çiz")
			}
			nums[i], _ = n.AsFloat()
		}
		e.Write(builtins.Graph(nums))
		return true, nil
	}
	return false, nil
}

var (
	ifHeaderRe   = regexp.MustCompile(`^(.+)\s+ise:$`)
	elifHeaderRe = regexp.MustCompile(`^yoksa\s+(.+)\s+ise:$`)
)

// execIfChain implements spec.md §4.4.2: collect consecutive
// ise/yoksa-ise/yoksa clauses, run the first truthy one.
func (e *Executor) execIfChain(lines []string, ptr int) (signal.Outcome, int, error) {
	type clause struct {
		cond string // empty for the trailing else
		body []string
	}
	var clauses []clause
	start := ptr

	header := strings.TrimSpace(lines[ptr])
	m := ifHeaderRe.FindStringSubmatch(header)
	cond := m[1]
	ptr++
	body, term := block.Collect(lines, ptr)
	clauses = append(clauses, clause{cond: cond, body: body})
	ptr = term + 1

	for ptr < len(lines) {
		next := strings.TrimSpace(lines[ptr])
		if em := elifHeaderRe.FindStringSubmatch(next); em != nil {
			ptr++
			body, term := block.Collect(lines, ptr)
			clauses = append(clauses, clause{cond: em[1], body: body})
			ptr = term + 1
			continue
		}
		if next == "yoksa:" {
			ptr++
			body, term := block.Collect(lines, ptr)
			clauses = append(clauses, clause{cond: "", body: body})
			ptr = term + 1
		}
		break
	}

	for _, c := range clauses {
		if c.cond != "" {
			v, err := e.Eval.Eval(c.cond, e.Frames, e)
			if err != nil {
				return signal.Ok, 0, err
			}
			if !runtime.Truthy(v) {
				continue
			}
		}
		// A break/continue inside a clause propagates out of the chain
		// to the enclosing loop (spec.md §4.4.2); only return ends here
		// the same as any other signal, since this function just
		// forwards whatever ExecBlock produces.
		outcome, err := e.ExecBlock(c.body)
		if err != nil {
			return signal.Ok, 0, err
		}
		return outcome, ptr - start, nil
	}
	return signal.Ok, ptr - start, nil
}

// execWhile implements spec.md §4.4.3's while loop: the condition text
// is re-evaluated every iteration, never cached.
func (e *Executor) execWhile(lines []string, ptr int) (signal.Outcome, int, error) {
	header := strings.TrimSpace(lines[ptr])
	cond := strings.TrimSuffix(header, " iken:")
	body, term := block.Collect(lines, ptr+1)
	consumed := term + 1 - ptr

	for {
		v, err := e.Eval.Eval(cond, e.Frames, e)
		if err != nil {
			return signal.Ok, 0, err
		}
		if !runtime.Truthy(v) {
			break
		}
		outcome, err := e.ExecBlock(body)
		if err != nil {
			return signal.Ok, 0, err
		}
		switch outcome.Kind {
		case signal.Break:
			return signal.Ok, consumed, nil
		case signal.Return:
			return outcome, consumed, nil
		}
	}
	return signal.Ok, consumed, nil
}

var forHeaderRe = regexp.MustCompile(`^(` + identPattern + `)\s+için\s+(.+)\s+den\s+(.+)\s+kadar:$`)

func isForHeader(trimmed string) bool {
	return forHeaderRe.MatchString(trimmed)
}

// execFor implements spec.md §4.4.3's for loop: an inclusive integer
// range, ascending only.
func (e *Executor) execFor(lines []string, ptr int) (signal.Outcome, int, error) {
	header := strings.TrimSpace(lines[ptr])
	m := forHeaderRe.FindStringSubmatch(header)
	varName, loExpr, hiExpr := m[1], m[2], m[3]

	body, term := block.Collect(lines, ptr+1)
	consumed := term + 1 - ptr

	lo, err := e.evalInt(loExpr)
	if err != nil {
		return signal.Ok, 0, err
	}
	hi, err := e.evalInt(hiExpr)
	if err != nil {
		return signal.Ok, 0, err
	}

	for i := lo; i <= hi; i++ {
		e.Frames.Set(varName, &runtime.IntegerValue{Value: i})
		outcome, err := e.ExecBlock(body)
		if err != nil {
			return signal.Ok, 0, err
		}
		switch outcome.Kind {
		case signal.Break:
			return signal.Ok, consumed, nil
		case signal.Return:
			return outcome, consumed, nil
		}
	}
	return signal.Ok, consumed, nil
}

var funcDefHeaderRe = regexp.MustCompile(`^(.*)\s+ile\s+(` + identPattern + `)\s+işi:$`)

func isFunctionDefHeader(trimmed string) bool {
	return funcDefHeaderRe.MatchString(trimmed)
}

// execFunctionDef implements spec.md §4.4.4's definition form: capture
// (params, body-lines) into the registry; redefinition overwrites.
func (e *Executor) execFunctionDef(lines []string, ptr int) (signal.Outcome, int, error) {
	header := strings.TrimSpace(lines[ptr])
	m := funcDefHeaderRe.FindStringSubmatch(header)
	paramsText, name := m[1], m[2]

	body, term := block.Collect(lines, ptr+1)
	consumed := term + 1 - ptr

	var params []string
	for _, p := range kvexpr.SplitArgs(paramsText) {
		if p != "" {
			params = append(params, p)
		}
	}
	e.Functions.Define(name, params, body)
	return signal.Ok, consumed, nil
}

var (
	postfixVoidCallRe = regexp.MustCompile(`^(.*)\s+ile\s+(` + identPattern + `)\s+işi$`)
	prefixVoidCallRe  = regexp.MustCompile(`^iş\s+(` + identPattern + `)\((.*)\)$`)
)

// tryVoidCall implements rows 30/31: a function call used as a
// statement, discarding its result. The whole line is handed to
// e.Eval.Eval rather than split by hand here, so that string-literal
// shielding runs before argument splitting — the same pipeline the
// call-as-expression path uses (spec.md §4.3.2). Splitting argsText
// off an unshielded line would tear a literal like
// '"merhaba, dünya" ile selamla işi' apart at the comma inside the
// string.
func (e *Executor) tryVoidCall(trimmed string) (bool, error) {
	if !prefixVoidCallRe.MatchString(trimmed) && !postfixVoidCallRe.MatchString(trimmed) {
		return false, nil
	}
	_, err := e.Eval.Eval(trimmed, e.Frames, e)
	return true, err
}

// callUserFunction implements spec.md §4.4.4's call semantics.
func (e *Executor) callUserFunction(name string, def *runtime.FunctionDef, args []runtime.Value) (runtime.Value, error) {
	e.Trace.Push(name)
	defer e.Trace.Pop()

	e.Frames.Push()
	defer e.Frames.Pop()

	for i, param := range def.Params {
		var v runtime.Value = runtime.Nil
		if i < len(args) {
			v = args[i]
		}
		e.Frames.Set(param, v)
	}

	outcome, err := e.ExecBlock(def.Body)
	if err != nil {
		return nil, err
	}
	if outcome.Kind == signal.Return {
		return outcome.Value, nil
	}
	return runtime.Nil, nil
}
