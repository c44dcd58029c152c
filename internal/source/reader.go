// Package source implements the Source Reader from spec.md §4.1: it loads
// a UTF-8 file into an ordered, 1-based-stable sequence of raw lines.
package source

import (
	"fmt"
	"os"
	"strings"
)

// Lines is an ordered sequence of raw source lines, index 0 corresponds
// to line number 1. Blank lines and whole-line '//' comments are kept in
// place so line numbers stay stable for diagnostics (spec.md §4.1); the
// Statement Executor is responsible for skipping them at run time.
type Lines []string

// Read loads path as UTF-8 and splits it into Lines on line terminators.
func Read(path string) (Lines, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("Dosya bulunamadı: %s", path)
		}
		return nil, fmt.Errorf("Dosya okuma hatası: %s: %w", path, err)
	}
	return Split(string(content)), nil
}

// Split breaks raw UTF-8 text into Lines, tolerating both LF and CRLF
// terminators. A terminator at the very end of the text does not start
// an extra empty line.
func Split(text string) Lines {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.TrimSuffix(text, "\n")
	return strings.Split(text, "\n")
}

// IsComment reports whether the trimmed line is blank or a whole-line
// '//' comment (spec.md §4.1).
func IsComment(trimmed string) bool {
	return trimmed == "" || strings.HasPrefix(trimmed, "//")
}

// NonBlank returns only the lines that are neither blank nor comments,
// used by the CLI to detect an empty program (spec.md §6).
func (l Lines) NonBlank() []string {
	var out []string
	for _, ln := range l {
		t := strings.TrimSpace(ln)
		if !IsComment(t) {
			out = append(out, ln)
		}
	}
	return out
}
