// Command kavun runs Kavun source files.
package main

import (
	"fmt"
	"os"

	"github.com/kavun-lang/kavun/cmd/kavun/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Hata:", err)
		os.Exit(1)
	}
}
