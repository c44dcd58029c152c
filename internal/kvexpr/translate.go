package kvexpr

import "regexp"

// Translation from spec.md §4.3.3: Turkish operator words and phrases to
// canonical operators, applied to shielded text only so string content
// is never touched.

var (
	relEqualPhrase   = regexp.MustCompile(`(\S+)\s+(\S+)\s+eşit\b`)
	relNotEqualPhrase = regexp.MustCompile(`(\S+)\s+(\S+)\s+farklı([^\p{L}\p{N}_]|$)`)

	wordEqual     = regexp.MustCompile(`\beşit\b`)
	wordNotEqual  = regexp.MustCompile(`\bfarklı([^\p{L}\p{N}_]|$)`)
	wordLess      = regexp.MustCompile(`\bküçüktür\b`)
	wordGreater   = regexp.MustCompile(`\bbüyüktür\b`)
	wordTrue      = regexp.MustCompile(`\bdoğru\b`)
	wordFalse     = regexp.MustCompile(`\byanlış([^\p{L}\p{N}_]|$)`)
	wordAnd       = regexp.MustCompile(`\bve\b`)
	wordOr        = regexp.MustCompile(`\bveya\b`)
	wordNot       = regexp.MustCompile(`\bdeğil\b`)
)

// TranslateOperators rewrites Turkish operator keywords in shielded
// expression text into the canonical symbols understood by the parser
// (spec.md §4.3.3). The relational postfix phrases are applied once,
// before the single-word substitutions, matching the original
// interpreter's translate_ops order.
func TranslateOperators(e string) string {
	e = relEqualPhrase.ReplaceAllString(e, "$1 == $2")
	e = relNotEqualPhrase.ReplaceAllString(e, "$1 != $2$3")

	e = wordEqual.ReplaceAllString(e, "==")
	e = wordNotEqual.ReplaceAllString(e, "!=$1")
	e = wordLess.ReplaceAllString(e, "<")
	e = wordGreater.ReplaceAllString(e, ">")
	e = wordTrue.ReplaceAllString(e, "true")
	e = wordFalse.ReplaceAllString(e, "false$1")
	e = wordAnd.ReplaceAllString(e, "&&")
	e = wordOr.ReplaceAllString(e, "||")
	e = wordNot.ReplaceAllString(e, "!")
	return e
}
