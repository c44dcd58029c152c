package executor

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/kavun-lang/kavun/internal/interp/runtime"
	"github.com/kavun-lang/kavun/internal/interp/signal"
	"github.com/kavun-lang/kavun/internal/kvexpr"
)

// Patterns for the assignment-family rows of spec.md §4.4's dispatch
// table (rows 10, 11, 13-20, 24). Rows 12 and 15 (index/key read into a
// variable) need no dedicated pattern: the generic assignment form
// already evaluates arbitrary right-hand-side expressions, including
// index reads, through kvexpr's Index AST node.
var (
	identPattern     = `\p{L}[\p{L}0-9_]*`
	listLiteralRe    = regexp.MustCompile(`^(` + identPattern + `)\s+eşittir\s+(\[.*\])$`)
	dictLiteralRe    = regexp.MustCompile(`^(` + identPattern + `)\s+eşittir\s+(\{.*\})$`)
	indexWriteRe     = regexp.MustCompile(`^(` + identPattern + `)\[(.+)\]\s+eşittir\s+(.+)$`)
	listAppendRe     = regexp.MustCompile(`^(` + identPattern + `)\.ekle\((.*)\)$`)
	listRemoveRe     = regexp.MustCompile(`^(` + identPattern + `)\.sil\((.*)\)$`)
	listMethodRe     = regexp.MustCompile(`^(` + identPattern + `)\.(uzunluk|büyük_harf|küçük_harf)\(\)$`)
	randomRangeRe    = regexp.MustCompile(`^(\S+)\s+ile\s+(\S+)\s+arasi_rastgele\(\)$`)
	namedRandomRe    = regexp.MustCompile(`^(` + identPattern + `)\s+eşittir\s+(\S+)\s+ile\s+(\S+)\s+arasi_rastgele\(\)$`)
	genericAssignRe  = regexp.MustCompile(`^(` + identPattern + `)\s+(?:eşittir|=)\s+(.+)$`)
)

// tryAssignmentForms attempts every assignment-family row in priority
// order; the bool return reports whether trimmed matched one of them.
func (e *Executor) tryAssignmentForms(trimmed string) (signal.Outcome, bool, error) {
	if m := listLiteralRe.FindStringSubmatch(trimmed); m != nil {
		return signal.Ok, true, e.assignListLiteral(m[1], m[2])
	}
	if m := dictLiteralRe.FindStringSubmatch(trimmed); m != nil {
		return signal.Ok, true, e.assignDictLiteral(m[1], m[2])
	}
	if m := namedRandomRe.FindStringSubmatch(trimmed); m != nil {
		return signal.Ok, true, e.assignRandomRange(m[1], m[2], m[3])
	}
	if m := randomRangeRe.FindStringSubmatch(trimmed); m != nil {
		return signal.Ok, true, e.assignRandomRange("rastgele", m[1], m[2])
	}
	if m := indexWriteRe.FindStringSubmatch(trimmed); m != nil {
		return signal.Ok, true, e.assignIndexWrite(m[1], m[2], m[3])
	}
	if m := listAppendRe.FindStringSubmatch(trimmed); m != nil {
		return signal.Ok, true, e.listAppend(m[1], m[2])
	}
	if m := listRemoveRe.FindStringSubmatch(trimmed); m != nil {
		return signal.Ok, true, e.listRemove(m[1], m[2])
	}
	if m := listMethodRe.FindStringSubmatch(trimmed); m != nil {
		return signal.Ok, true, e.derivedMethod(m[1], m[2])
	}
	if m := genericAssignRe.FindStringSubmatch(trimmed); m != nil {
		return signal.Ok, true, e.genericAssign(m[1], m[2])
	}
	return signal.Ok, false, nil
}

func (e *Executor) assignListLiteral(name, payload string) error {
	inner := strings.TrimSuffix(strings.TrimPrefix(payload, "["), "]")
	elements := []runtime.Value{}
	for _, part := range kvexpr.SplitArgs(inner) {
		if part == "" {
			continue
		}
		v, err := e.Eval.Eval(part, e.Frames, e)
		if err != nil {
			return err
		}
		elements = append(elements, v)
	}
	e.Frames.Set(name, runtime.NewList(elements))
	return nil
}

func (e *Executor) assignDictLiteral(name, payload string) error {
	inner := strings.TrimSuffix(strings.TrimPrefix(payload, "{"), "}")
	dict := runtime.NewDict()
	for _, pair := range splitDictPairs(inner) {
		if pair == "" {
			continue
		}
		key, valueExpr, err := splitDictPair(pair)
		if err != nil {
			return err
		}
		v, err := e.Eval.Eval(valueExpr, e.Frames, e)
		if err != nil {
			return err
		}
		dict.Set(key, v)
	}
	e.Frames.Set(name, dict)
	return nil
}

// splitDictPairs splits a dict literal's payload on top-level commas,
// tracking quote state per spec.md §4.4.1.
func splitDictPairs(payload string) []string {
	var parts []string
	depth := 0
	inQuote := byte(0)
	start := 0
	for i := 0; i < len(payload); i++ {
		c := payload[i]
		switch {
		case inQuote != 0:
			if c == inQuote {
				inQuote = 0
			}
		case c == '"' || c == '\'':
			inQuote = c
		case c == '[' || c == '{' || c == '(':
			depth++
		case c == ']' || c == '}' || c == ')':
			depth--
		case c == ',' && depth == 0:
			parts = append(parts, strings.TrimSpace(payload[start:i]))
			start = i + 1
		}
	}
	parts = append(parts, strings.TrimSpace(payload[start:]))
	return parts
}

// splitDictPair separates "key": value on the first top-level colon,
// per spec.md §4.4.1, and unquotes the key.
func splitDictPair(pair string) (key string, valueExpr string, err error) {
	inQuote := byte(0)
	for i := 0; i < len(pair); i++ {
		c := pair[i]
		switch {
		case inQuote != 0:
			if c == inQuote {
				inQuote = 0
			}
		case c == '"' || c == '\'':
			inQuote = c
		case c == ':':
			keyText := strings.TrimSpace(pair[:i])
			keyText = strings.Trim(keyText, `"'`)
			return keyText, strings.TrimSpace(pair[i+1:]), nil
		}
	}
	return "", "", runtime.NewParseError(pair, "sözlük çifti ':' içermiyor")
}

func (e *Executor) assignRandomRange(name, loExpr, hiExpr string) error {
	lo, err := e.evalInt(loExpr)
	if err != nil {
		return err
	}
	hi, err := e.evalInt(hiExpr)
	if err != nil {
		return err
	}
	if hi < lo {
		lo, hi = hi, lo
	}
	n := lo + e.rand.Int63n(hi-lo+1)
	e.Frames.Set(name, &runtime.IntegerValue{Value: n})
	return nil
}

func (e *Executor) evalInt(expr string) (int64, error) {
	v, err := e.Eval.Eval(expr, e.Frames, e)
	if err != nil {
		return 0, err
	}
	i, ok := v.(*runtime.IntegerValue)
	if !ok {
		return 0, runtime.NewTypeError("TAMSAYI", v, expr)
	}
	return i.Value, nil
}

func (e *Executor) assignIndexWrite(name, keyExpr, valueExpr string) error {
	receiver, ok := e.Frames.Get(name)
	if !ok {
		return runtime.NewUndefinedVariableError(name)
	}
	value, err := e.Eval.Eval(valueExpr, e.Frames, e)
	if err != nil {
		return err
	}

	switch r := receiver.(type) {
	case *runtime.ListValue:
		idx, err := e.evalInt(keyExpr)
		if err != nil {
			return err
		}
		return r.Set(int(idx), value)
	case *runtime.DictValue:
		keyVal, err := e.Eval.Eval(keyExpr, e.Frames, e)
		if err != nil {
			return err
		}
		keyStr, ok := keyVal.(*runtime.StringValue)
		if !ok {
			return runtime.NewTypeError("METIN", keyVal, "sözlük anahtarı")
		}
		r.Set(keyStr.Value, value)
		return nil
	default:
		return runtime.NewTypeError("LISTE veya SOZLUK", receiver, "indeksli atama")
	}
}

func (e *Executor) listAppend(name, argExpr string) error {
	receiver, ok := e.Frames.Get(name)
	if !ok {
		return runtime.NewUndefinedVariableError(name)
	}
	list, ok := receiver.(*runtime.ListValue)
	if !ok {
		return runtime.NewTypeError("LISTE", receiver, "ekle")
	}
	v, err := e.Eval.Eval(argExpr, e.Frames, e)
	if err != nil {
		return err
	}
	list.Append(v)
	return nil
}

func (e *Executor) listRemove(name, argExpr string) error {
	receiver, ok := e.Frames.Get(name)
	if !ok {
		return runtime.NewUndefinedVariableError(name)
	}
	list, ok := receiver.(*runtime.ListValue)
	if !ok {
		return runtime.NewTypeError("LISTE", receiver, "sil")
	}
	idx, err := e.evalInt(argExpr)
	if err != nil {
		return err
	}
	_, err = list.RemoveAt(int(idx))
	return err
}

// derivedMethod implements row 18: '.uzunluk()'/'.büyük_harf()'/
// '.küçük_harf()' compute a value and store it into a suffix-derived
// variable name.
func (e *Executor) derivedMethod(name, method string) error {
	receiver, ok := e.Frames.Get(name)
	if !ok {
		return runtime.NewUndefinedVariableError(name)
	}

	switch method {
	case "uzunluk":
		var n int
		switch r := receiver.(type) {
		case *runtime.StringValue:
			n = len([]rune(r.Value))
		case *runtime.ListValue:
			n = r.Len()
		case *runtime.DictValue:
			n = r.Len()
		default:
			return runtime.NewTypeError("METIN, LISTE veya SOZLUK", receiver, "uzunluk")
		}
		e.Frames.Set(name+"_uzunluk", &runtime.IntegerValue{Value: int64(n)})
	case "büyük_harf":
		s, ok := receiver.(*runtime.StringValue)
		if !ok {
			return runtime.NewTypeError("METIN", receiver, "büyük_harf")
		}
		e.Frames.Set(name+"_büyük", &runtime.StringValue{Value: strings.ToUpper(s.Value)})
	case "küçük_harf":
		s, ok := receiver.(*runtime.StringValue)
		if !ok {
			return runtime.NewTypeError("METIN", receiver, "küçük_harf")
		}
		e.Frames.Set(name+"_küçük", &runtime.StringValue{Value: strings.ToLower(s.Value)})
	}
	return nil
}

// genericAssign implements row 24: a bare name assignment whose
// right-hand side is any expression, with the 'cevap()' read-a-line
// special case from spec.md §6.
func (e *Executor) genericAssign(name, rhs string) error {
	rhs = strings.TrimSpace(rhs)
	if rhs == "cevap()" {
		line, err := e.reader()
		if err != nil {
			return err
		}
		e.Frames.Set(name, autoParseLine(line))
		return nil
	}
	v, err := e.Eval.Eval(rhs, e.Frames, e)
	if err != nil {
		return err
	}
	e.Frames.Set(name, v)
	return nil
}

// autoParseLine implements spec.md §6's 'cevap()' auto-parsing: a line
// is checked against the Boolean spellings before the numeric forms
// (matching the original interpreter's parse_input_value), then an
// integer, then a float, and otherwise stored as a string verbatim.
func autoParseLine(line string) runtime.Value {
	line = strings.TrimRight(line, "\r\n")
	trimmed := strings.TrimSpace(line)
	switch trimmed {
	case "doğru", "true":
		return &runtime.BooleanValue{Value: true}
	case "yanlış", "false":
		return &runtime.BooleanValue{Value: false}
	}
	if i, err := strconv.ParseInt(trimmed, 10, 64); err == nil {
		return &runtime.IntegerValue{Value: i}
	}
	if f, err := strconv.ParseFloat(trimmed, 64); err == nil {
		return &runtime.FloatValue{Value: f}
	}
	return &runtime.StringValue{Value: line}
}
