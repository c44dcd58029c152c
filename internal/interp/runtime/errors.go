package runtime

import "fmt"

// ============================================================================
// Runtime error types
// ============================================================================
//
// Structured errors for the failure modes named in spec.md §7's taxonomy:
// resolution, type, bounds and user errors. Each carries the context a
// caller needs to format spec.md's "[Hata satır N] ..." or the top-level
// "Çalışma zamanı hatası: ..." report without re-parsing a message string.
// ============================================================================

// UndefinedNameError is a resolution error: an identifier that is neither
// a frame variable, a user function, nor a built-in.
type UndefinedNameError struct {
	Name string
	Kind string // "değişken" or "fonksiyon"
}

func (e *UndefinedNameError) Error() string {
	return fmt.Sprintf("Tanımsız %s: %s", e.Kind, e.Name)
}

func NewUndefinedVariableError(name string) error {
	return &UndefinedNameError{Name: name, Kind: "değişken"}
}

func NewUndefinedFunctionError(name string) error {
	return &UndefinedNameError{Name: name, Kind: "fonksiyon"}
}

// TypeError represents a type mismatch or an operation attempted on the
// wrong kind of value (e.g. indexing a non-list).
type TypeError struct {
	Expected string
	Got      Value
	Context  string
}

func (e *TypeError) Error() string {
	got := "yok"
	if e.Got != nil {
		got = e.Got.Type()
	}
	if e.Context != "" {
		return fmt.Sprintf("tür hatası (%s): %s bekleniyordu, %s bulundu", e.Context, e.Expected, got)
	}
	return fmt.Sprintf("tür hatası: %s bekleniyordu, %s bulundu", e.Expected, got)
}

func NewTypeError(expected string, got Value, context string) error {
	return &TypeError{Expected: expected, Got: got, Context: context}
}

// IndexError represents an out-of-bounds list index.
type IndexError struct {
	Index    int64
	Min, Max int64
	Kind     string
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("geçersiz indeks: %d (%s sınırları [%d..%d])", e.Index, e.Kind, e.Min, e.Max)
}

func NewIndexError(index, min, max int64, kind string) error {
	return &IndexError{Index: index, Min: min, Max: max, Kind: kind}
}

// ArithmeticError represents a user arithmetic error, e.g. division by zero.
type ArithmeticError struct {
	Operation string
}

func (e *ArithmeticError) Error() string {
	return fmt.Sprintf("aritmetik hata: %s", e.Operation)
}

func NewArithmeticError(operation string) error {
	return &ArithmeticError{Operation: operation}
}

// ParseError represents a malformed expression after translation, the
// "Geçersiz ifade" case from the original interpreter.
type ParseError struct {
	Expr   string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("Geçersiz ifade [%s]: %s", e.Expr, e.Reason)
}

func NewParseError(expr, reason string) error {
	return &ParseError{Expr: expr, Reason: reason}
}
