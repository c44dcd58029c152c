package kvexpr

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// stringLiteralPattern matches a double- or single-quoted literal, running
// from an opening quote to the next matching quote with no escape
// processing — Kavun strings may contain raw backslashes, matching
// spec.md §4.3.1.
var stringLiteralPattern = regexp.MustCompile(`"[^"]*"|'[^']*'`)

// placeholderPattern recognizes a shielding placeholder emitted by
// ShieldStrings.
var placeholderPattern = regexp.MustCompile(`^__KAVUN_STR_(\d+)__$`)

// ShieldStrings replaces every quoted string literal in expr with a
// unique placeholder token, returning the shielded text and the original
// literal text (including its quotes) of each placeholder in order. This
// keeps later operator translation from touching string content
// (spec.md §4.3.1).
func ShieldStrings(expr string) (shielded string, placeholders []string) {
	shielded = stringLiteralPattern.ReplaceAllStringFunc(expr, func(m string) string {
		placeholders = append(placeholders, m)
		return fmt.Sprintf("__KAVUN_STR_%d__", len(placeholders)-1)
	})
	return shielded, placeholders
}

// placeholderIndex reports whether ident is a shielding placeholder and,
// if so, its index into the placeholders slice.
func placeholderIndex(ident string) (int, bool) {
	m := placeholderPattern.FindStringSubmatch(ident)
	if m == nil {
		return 0, false
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return n, true
}

// ContainsPlaceholder reports whether s holds a shielding placeholder
// anywhere in its text.
func ContainsPlaceholder(s string) bool {
	return strings.Contains(s, "__KAVUN_STR_")
}
