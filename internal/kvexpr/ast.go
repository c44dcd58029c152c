package kvexpr

// Node is an expression AST node produced by the parser and consumed by
// the tree-walking evaluator (spec.md §4.3.5-4.3.6).
type Node interface {
	node()
}

// IntLit is an integer literal.
type IntLit struct{ Value int64 }

// FloatLit is a floating point literal.
type FloatLit struct{ Value float64 }

// StringLit is a string literal, already unshielded to its raw text.
type StringLit struct{ Value string }

// BoolLit is a boolean literal (translated from doğru/yanlış).
type BoolLit struct{ Value bool }

// Ident is a bare identifier: a variable reference or, when immediately
// followed by a call, a function name.
type Ident struct{ Name string }

// Unary is a prefix operator applied to one operand: "-" or "!".
type Unary struct {
	Op      string
	Operand Node
}

// Binary is an infix operator applied to two operands.
type Binary struct {
	Op          string
	Left, Right Node
}

// Call is a function invocation, built from either call syntax recognized
// in evaluator.go before parsing (spec.md §4.3.2).
type Call struct {
	Name string
	Args []Node
}

// Index is a single-subscript container access, used for both list
// element access and dict key access — the evaluator decides which based
// on the runtime type of the receiver (spec.md §4.3.6).
type Index struct {
	Receiver Node
	Key      Node
}

func (*IntLit) node()    {}
func (*FloatLit) node()  {}
func (*StringLit) node() {}
func (*BoolLit) node()   {}
func (*Ident) node()     {}
func (*Unary) node()     {}
func (*Binary) node()    {}
func (*Call) node()      {}
func (*Index) node()     {}
