// Package block implements the Block Structurer from spec.md §4.2: given
// a line sequence and a start index, it collects a body up to (but not
// including) the matching 'bitir' terminator, tracking nested block
// depth. The match is purely lexical — it never interprets what kind of
// block header it saw; the Statement Executor re-parses headers when it
// recurses into the collected body.
package block

import "strings"

// Collect returns the body lines starting at ptr up to the matching
// 'bitir', plus the index of that terminator (not included in body).
func Collect(lines []string, ptr int) (body []string, terminatorIdx int) {
	depth := 0
	for ptr < len(lines) {
		trimmed := strings.TrimSpace(lines[ptr])

		if trimmed == "bitir" && depth == 0 {
			return body, ptr
		}
		if isBlockOpener(trimmed) {
			depth++
			body = append(body, lines[ptr])
			ptr++
			continue
		}
		if trimmed == "bitir" && depth > 0 {
			depth--
			body = append(body, lines[ptr])
			ptr++
			continue
		}
		body = append(body, lines[ptr])
		ptr++
	}
	return body, ptr
}

// isBlockOpener reports whether a trimmed line opens a nested block:
// '... ise:', 'yoksa ... ise:', 'yoksa:', '... iken:', '... için ... kadar:',
// or '... ile ... işi:' — any line ending in ':' qualifies, matching the
// lexical (non-semantic) rule from spec.md §4.2.
func isBlockOpener(trimmed string) bool {
	return strings.HasSuffix(trimmed, ":")
}
