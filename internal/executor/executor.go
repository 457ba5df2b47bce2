package executor

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"runtime"

	"go.uber.org/zap"
)

// Runner executes a command string through a shell
type Runner interface {
	Run(ctx context.Context, command string) error
}

// Shell runs commands through the user's shell with full interpretation.
// The command is passed as-is: no escaping, no sandboxing, no timeout.
type Shell struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	log    *zap.Logger
}

// NewShell creates a shell runner attached to the current process's stdio
func NewShell(log *zap.Logger) *Shell {
	if log == nil {
		log = zap.NewNop()
	}
	return &Shell{
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		log:    log,
	}
}

// ShellCommand returns the shell binary and arguments used to interpret command
func ShellCommand(command string) (string, []string) {
	if runtime.GOOS == "windows" {
		return "cmd", []string{"/C", command}
	}
	shell := os.Getenv("SHELL")
	if shell == "" {
		shell = "/bin/sh"
	}
	return shell, []string{"-c", command}
}

// Run executes the command and waits for it to finish
func (s *Shell) Run(ctx context.Context, command string) error {
	shell, args := ShellCommand(command)
	s.log.Debug("executing command", zap.String("shell", shell), zap.String("command", command))

	cmd := exec.CommandContext(ctx, shell, args...)
	cmd.Stdin = s.Stdin
	cmd.Stdout = s.Stdout
	cmd.Stderr = s.Stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			s.log.Debug("command failed", zap.Int("exit_code", exitErr.ExitCode()))
		} else {
			s.log.Debug("command failed", zap.Error(err))
		}
		return fmt.Errorf("command failed: %w", err)
	}

	s.log.Debug("command completed successfully")
	return nil
}
