package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func executeCommand(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)
	defer func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	}()

	err = rootCmd.Execute()
	return out.String(), errOut.String(), err
}

func writeSource(t *testing.T, source string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "input.bolo")
	if err := os.WriteFile(path, []byte(source), 0o644); err != nil {
		t.Fatalf("write source: %v", err)
	}
	return path
}

func TestVersionCommand(t *testing.T) {
	out, _, err := executeCommand(t, "version")
	if err != nil {
		t.Fatalf("version failed: %v", err)
	}
	if !strings.Contains(out, "bologna v"+version) {
		t.Fatalf("unexpected version output: %q", out)
	}
}

func TestCheckCommandValidFile(t *testing.T) {
	path := writeSource(t, "def add(a b) a + b\nextern sin(x);\nadd(1, 2)\n")

	_, stderr, err := executeCommand(t, "check", path)
	if err != nil {
		t.Fatalf("check failed: %v", err)
	}
	if stderr != "" {
		t.Fatalf("unexpected diagnostics: %q", stderr)
	}
}

func TestCheckCommandTreeOutput(t *testing.T) {
	path := writeSource(t, "def add(a b) a+b")

	out, _, err := executeCommand(t, "check", "--tree", path)
	if err != nil {
		t.Fatalf("check --tree failed: %v", err)
	}
	if !strings.Contains(out, "def add(a b) a + b") {
		t.Fatalf("unexpected tree output: %q", out)
	}

	checkTree = false
}

func TestCheckCommandReportsParseErrors(t *testing.T) {
	path := writeSource(t, "def broken(\n")

	_, stderr, err := executeCommand(t, "check", path)
	if err == nil {
		t.Fatalf("expected check to fail")
	}
	if !strings.Contains(err.Error(), "1 file(s) had parse errors") {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(stderr, "parse error at") {
		t.Fatalf("expected diagnostics on stderr, got %q", stderr)
	}
}

func TestCheckCommandMissingFile(t *testing.T) {
	_, _, err := executeCommand(t, "check", filepath.Join(t.TempDir(), "absent.bolo"))
	if err == nil {
		t.Fatalf("expected missing file error")
	}
	if !strings.Contains(err.Error(), "read") {
		t.Fatalf("unexpected error: %v", err)
	}
}
