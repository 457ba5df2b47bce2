package executor

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"runtime"
	"strings"
	"testing"
)

func newTestShell(t *testing.T) (*Shell, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("skip on windows: tests rely on a POSIX shell")
	}
	t.Setenv("SHELL", "/bin/sh")
	var stdout, stderr bytes.Buffer
	s := NewShell(nil)
	s.Stdin = strings.NewReader("")
	s.Stdout = &stdout
	s.Stderr = &stderr
	return s, &stdout, &stderr
}

func TestShellRunInterpretsCommand(t *testing.T) {
	s, stdout, _ := newTestShell(t)
	if err := s.Run(context.Background(), "echo hello | tr a-z A-Z && echo done"); err != nil {
		t.Fatalf("Run error: %v", err)
	}
	if got := stdout.String(); got != "HELLO\ndone\n" {
		t.Fatalf("unexpected output %q", got)
	}
}

func TestShellRunReportsExitStatus(t *testing.T) {
	s, _, stderr := newTestShell(t)
	err := s.Run(context.Background(), "echo oops >&2; exit 3")
	var exitErr *exec.ExitError
	if !errors.As(err, &exitErr) {
		t.Fatalf("expected exit error, got %v", err)
	}
	if exitErr.ExitCode() != 3 {
		t.Fatalf("expected exit code 3, got %d", exitErr.ExitCode())
	}
	if !strings.Contains(stderr.String(), "oops") {
		t.Fatalf("stderr not forwarded: %q", stderr.String())
	}
}

func TestShellCommandUsesShellEnv(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("skip on windows")
	}
	t.Setenv("SHELL", "/bin/zsh")
	shell, args := ShellCommand("ls -la")
	if shell != "/bin/zsh" || len(args) != 2 || args[0] != "-c" || args[1] != "ls -la" {
		t.Fatalf("unexpected shell invocation %s %v", shell, args)
	}

	t.Setenv("SHELL", "")
	if shell, _ := ShellCommand("ls"); shell != "/bin/sh" {
		t.Fatalf("expected /bin/sh fallback, got %s", shell)
	}
}
