// Package diagnostics formats runtime errors for the CLI, the single
// place spec.md §7's "Çalışma zamanı hatası: ..." report plus call-stack
// dump is assembled. There is no structured logging framework here,
// matching the teacher repo's own bare fmt.Errorf-based error reporting.
package diagnostics

import (
	"fmt"
	"os"

	"github.com/kavun-lang/kavun/internal/interp/trace"
)

// Report renders a runtime error the way the original interpreter's
// print_runtime_error does: the top-line message, the call trace
// (most-recent-call-first), and, when KAVUN_DEBUG=1, the underlying Go
// error chain instead of a native stack trace.
func Report(err error, tr *trace.Stack) string {
	out := fmt.Sprintf("Çalışma zamanı hatası: %s\n", err.Error())
	out += "Çağrı yığını (son çağrı en üstte):\n"
	out += tr.String()
	if os.Getenv("KAVUN_DEBUG") == "1" {
		out += fmt.Sprintf("\nHata zinciri:\n%+v\n", err)
	} else {
		out += "Ayrıntılı izleme için KAVUN_DEBUG=1 ile yeniden çalıştırın.\n"
	}
	return out
}
