package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kavun-lang/kavun/internal/interp"
)

var (
	// Version information (set by build flags)
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
)

var (
	evalExpr string
	debug    bool
	noColor  bool
)

var rootCmd = &cobra.Command{
	Use:   "kavun [dosya.kvn]",
	Short: "Kavun yorumlayıcısı",
	Long: `kavun, Türkçe anahtar kelimeler ve operatörler içeren küçük bir
betik dilinin yorumlayıcısıdır.

  kavun program.kvn
  kavun -e "5 3 eşit yaz"
`,
	Version:       Version,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runKavun,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "dosya yerine satır içi program çalıştır")
	rootCmd.Flags().BoolVar(&debug, "debug", false, "çalışma zamanı hatalarında tam iç izleme göster (KAVUN_DEBUG=1)")
	rootCmd.Flags().BoolVar(&noColor, "no-color", false, "renkli çıktıyı kapat")
}

func runKavun(cmd *cobra.Command, args []string) error {
	if debug {
		os.Setenv("KAVUN_DEBUG", "1")
	}

	if evalExpr == "" && len(args) == 0 {
		cmd.Usage()
		return fmt.Errorf("çalıştırılacak dosya belirtilmedi")
	}

	i := interp.New(os.Stdout)
	i.SetNoColor(noColor)

	if evalExpr != "" {
		// RunSource already reports runtime errors to stderr; a non-nil
		// error here only needs to drive the process exit code.
		if err := i.RunSource(evalExpr); err != nil {
			return fmt.Errorf("çalıştırma başarısız")
		}
		return nil
	}

	if err := i.RunFile(args[0]); err != nil {
		// A missing/unreadable file never reaches the runtime-error
		// reporter, so print it here.
		fmt.Fprintln(os.Stderr, err)
		return fmt.Errorf("çalıştırma başarısız")
	}
	return nil
}
