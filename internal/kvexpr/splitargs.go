package kvexpr

import "strings"

// SplitArgs splits a comma-separated argument list at top level only,
// ignoring commas nested inside parentheses or brackets. expr is expected
// to already be shielded, so a comma can never appear inside a string
// literal either. Used for both call-site argument lists and list
// literals (spec.md §4.3.2, §4.4).
func SplitArgs(expr string) []string {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return nil
	}

	var parts []string
	depth := 0
	start := 0
	for i, r := range expr {
		switch r {
		case '(', '[':
			depth++
		case ')', ']':
			depth--
		case ',':
			if depth == 0 {
				parts = append(parts, strings.TrimSpace(expr[start:i]))
				start = i + 1
			}
		}
	}
	parts = append(parts, strings.TrimSpace(expr[start:]))
	return parts
}
