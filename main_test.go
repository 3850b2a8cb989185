package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeScript(t *testing.T, source string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "script.lox")
	if err := os.WriteFile(path, []byte(source), 0o644); err != nil {
		t.Fatalf("writing script: %v", err)
	}
	return path
}

func exitCode(t *testing.T, err error) int {
	t.Helper()
	if err == nil {
		return 0
	}
	var ee *exitError
	if !errors.As(err, &ee) {
		t.Fatalf("expected exitError, got %T: %v", err, err)
	}
	return ee.code
}

func TestRunScriptHappyPath(t *testing.T) {
	path := writeScript(t, "var a = 1; { var a = 2; }")
	if err := runScript(path); err != nil {
		t.Fatalf("runScript: %v", err)
	}
}

func TestRunScriptMissingFile(t *testing.T) {
	err := runScript(filepath.Join(t.TempDir(), "nope.lox"))
	if got := exitCode(t, err); got != 66 {
		t.Fatalf("expected exit code 66, got %d", got)
	}
}

func TestRunScriptParseErrorSkipsEvaluation(t *testing.T) {
	path := writeScript(t, "var = 1;\nprint 0 / 0;\n")
	err := runScript(path)
	if got := exitCode(t, err); got != 65 {
		t.Fatalf("expected exit code 65, got %d", got)
	}
}

func TestRunScriptRuntimeError(t *testing.T) {
	path := writeScript(t, "print 1 / 0;")
	err := runScript(path)
	if got := exitCode(t, err); got != 70 {
		t.Fatalf("expected exit code 70, got %d", got)
	}
}

func TestReplHistoryPathOverride(t *testing.T) {
	t.Setenv("RLOX_HISTORY", "/tmp/custom_history")
	if got := replHistoryPath(); got != "/tmp/custom_history" {
		t.Fatalf("expected env override, got %q", got)
	}
}
