package builtins

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fatih/color"
)

// RegisterOutputFunctions exists for symmetry with the teacher's
// one-file-per-category registration pattern, but colored print,
// animation, and ASCII drawing (spec.md §4.4 rows 21-23) are statement
// syntax recognized directly by the executor, not expression-callable
// functions — so there is nothing to register here. The rendering
// helpers below are called directly by the executor: Colorize from its
// WriteColored method, the drawing helpers from its drawing statements.
func RegisterOutputFunctions(_ *Registry) {}

var colorNames = map[string]*color.Color{
	"kırmızı": color.New(color.FgRed),
	"yesil":   color.New(color.FgGreen),
	"sarı":    color.New(color.FgYellow),
	"mavi":    color.New(color.FgBlue),
	"mor":     color.New(color.FgMagenta),
	// The original's colorama-based "turkuaz" has no matching ANSI
	// color name; cyan is the closest terminal color (see DESIGN.md).
	"turkuaz": color.New(color.FgCyan),
}

// Colorize renders text in the named Kavun color, or returns it
// unchanged if the name isn't recognized.
func Colorize(text, name string) string {
	c, ok := colorNames[name]
	if !ok {
		return text
	}
	return c.Sprint(text)
}

// Triangle renders an ASCII right triangle of height n (üçgen_çiz).
func Triangle(n int) string {
	var sb strings.Builder
	for i := 1; i <= n; i++ {
		sb.WriteString(strings.Repeat("*", i))
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Square renders an ASCII square of side n (kare_çiz).
func Square(n int) string {
	var sb strings.Builder
	row := strings.Repeat("*", n)
	for i := 0; i < n; i++ {
		sb.WriteString(row)
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Heart renders a fixed ASCII heart shape (kalp_çiz).
func Heart() string {
	lines := []string{
		" **   ** ",
		"*  * *  *",
		"*   *   *",
		" *     * ",
		"  *   *  ",
		"   * *   ",
		"    *    ",
	}
	return strings.Join(lines, "\n") + "\n"
}

// Graph renders a horizontal-bar ASCII chart of nums (grafik_çiz).
func Graph(nums []float64) string {
	var sb strings.Builder
	for i, n := range nums {
		bar := strings.Repeat("#", int(n))
		sb.WriteString(fmt.Sprintf("%d: %s %s\n", i+1, bar, strconv.FormatFloat(n, 'g', -1, 64)))
	}
	return sb.String()
}
