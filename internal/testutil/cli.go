// Package testutil runs the databoxes binary for end-to-end tests.
package testutil

import (
	"bytes"
	"errors"
	"os"
	"os/exec"
	"testing"
)

// ExecResult holds the result of a CLI command execution.
type ExecResult struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// BinaryPath locates the databoxes binary, first in the current directory
// and then two levels up (the module root when run from cmd/databoxes).
func BinaryPath(tb testing.TB) string {
	tb.Helper()
	for _, candidate := range []string{"./databoxes", "../../databoxes"} {
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}
	tb.Fatalf("databoxes binary not found - run 'make build' first")
	return ""
}

// RunCLI executes the databoxes binary with the given arguments and extra
// environment and returns the result.
func RunCLI(tb testing.TB, env []string, args ...string) ExecResult {
	tb.Helper()

	cmd := exec.Command(BinaryPath(tb), args...)
	cmd.Env = append(os.Environ(), env...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	exitCode := 0
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		exitCode = exitErr.ExitCode()
	} else if err != nil {
		tb.Fatalf("failed to run databoxes: %v", err)
	}

	return ExecResult{
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
		ExitCode: exitCode,
	}
}
