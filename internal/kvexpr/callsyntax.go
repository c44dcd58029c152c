package kvexpr

import "regexp"

// Two function-call surface syntaxes are recognized and rewritten to the
// canonical fname(args) form before parsing (spec.md §4.3.2):
//
//	<args> ile <fname> işi      (postfix)
//	iş <fname>(<args>)          (prefix, already canonical apart from 'iş')
//
// Both run against shielded text, so commas and parentheses inside string
// literals never interfere with the rewrite.
var (
	postfixCallPattern = regexp.MustCompile(`^(.*)\s+ile\s+(\p{L}[\p{L}0-9_]*)\s+işi$`)
	prefixCallPattern  = regexp.MustCompile(`^iş\s+(\p{L}[\p{L}0-9_]*)\((.*)\)$`)
)

// NormalizeCallSyntax rewrites either recognized call form in shielded
// into canonical fname(arg1, arg2, ...) form. It returns the input
// unchanged if neither form matches.
func NormalizeCallSyntax(shielded string) string {
	if m := prefixCallPattern.FindStringSubmatch(shielded); m != nil {
		return m[1] + "(" + m[2] + ")"
	}
	if m := postfixCallPattern.FindStringSubmatch(shielded); m != nil {
		args := SplitArgs(m[1])
		joined := ""
		for i, a := range args {
			if i > 0 {
				joined += ", "
			}
			joined += a
		}
		return m[2] + "(" + joined + ")"
	}
	return shielded
}
