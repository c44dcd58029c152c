package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

// captureStdout runs fn with os.Stdout redirected to a pipe and returns
// everything written to it, mirroring the teacher's run_unit_test.go
// capture pattern.
func captureStdout(t *testing.T, fn func()) string {
	t.Helper()
	old := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	os.Stdout = w
	defer func() { os.Stdout = old }()

	fn()

	w.Close()
	var buf bytes.Buffer
	buf.ReadFrom(r)
	return buf.String()
}

func TestRunKavun_EvalFlag(t *testing.T) {
	evalExpr = `"merhaba" yaz`
	defer func() { evalExpr = "" }()

	out := captureStdout(t, func() {
		if err := runKavun(rootCmd, nil); err != nil {
			t.Fatal(err)
		}
	})
	if out != "merhaba\n" {
		t.Errorf("got %q, want \"merhaba\\n\"", out)
	}
}

func TestRunKavun_FileArgument(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "prog.kvn")
	if err := os.WriteFile(path, []byte("x eşittir 2\nx yaz\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	out := captureStdout(t, func() {
		if err := runKavun(rootCmd, []string{path}); err != nil {
			t.Fatal(err)
		}
	})
	if out != "2\n" {
		t.Errorf("got %q, want \"2\\n\"", out)
	}
}

func TestRunKavun_NoArgsReturnsError(t *testing.T) {
	evalExpr = ""
	if err := runKavun(rootCmd, nil); err == nil {
		t.Error("runKavun with neither -e nor a file argument should error")
	}
}

func TestRunKavun_MissingFileReturnsError(t *testing.T) {
	evalExpr = ""
	err := runKavun(rootCmd, []string{filepath.Join(t.TempDir(), "yok.kvn")})
	if err == nil {
		t.Error("runKavun on a missing file should error")
	}
}
