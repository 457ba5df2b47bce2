// Package repl implements the interactive translate-confirm-execute loop.
//
// Each iteration reads one request, asks the agent for a single shell
// command, shows it, and runs it only when the confirmation line is exactly
// "y" after trimming and lowercasing. Nothing else ever reaches the shell.
package repl

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	"github.com/iishyfishyy/aiterm/internal/agent"
	"github.com/iishyfishyy/aiterm/internal/executor"
	"github.com/iishyfishyy/aiterm/internal/inspect"
	"github.com/iishyfishyy/aiterm/internal/ui"
)

// State is the loop's position in its two-state machine
type State int

const (
	StateAwaitingInput State = iota
	StateTerminated
)

func (s State) String() string {
	switch s {
	case StateAwaitingInput:
		return "awaiting-input"
	case StateTerminated:
		return "terminated"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Suggestion is the outcome of one inference call: a command or an error, never both
type Suggestion struct {
	Command string
	Err     error
}

// OK reports whether the call produced a command
func (s Suggestion) OK() bool {
	return s.Err == nil
}

// Loop wires the agent, the shell and the terminal together
type Loop struct {
	Agent  agent.Agent
	Runner executor.Runner
	In     io.Reader
	Out    io.Writer

	// Copy, when set, receives every suggestion (e.g. the system clipboard)
	Copy func(string) error

	Log *zap.Logger

	reader *bufio.Reader
	state  State
}

// New creates a loop reading from in and writing to out
func New(ag agent.Agent, runner executor.Runner, in io.Reader, out io.Writer, log *zap.Logger) *Loop {
	if log == nil {
		log = zap.NewNop()
	}
	return &Loop{
		Agent:  ag,
		Runner: runner,
		In:     in,
		Out:    out,
		Log:    log,
	}
}

// State returns the current loop state
func (l *Loop) State() State {
	return l.state
}

// IsExit reports whether input is an exit keyword
func IsExit(input string) bool {
	switch strings.ToLower(strings.TrimSpace(input)) {
	case "exit", "quit":
		return true
	}
	return false
}

// IsConfirmed reports whether a confirmation line authorizes execution
func IsConfirmed(input string) bool {
	return strings.ToLower(strings.TrimSpace(input)) == "y"
}

// Run processes requests until an exit keyword or end of input
func (l *Loop) Run(ctx context.Context) error {
	if l.Log == nil {
		l.Log = zap.NewNop()
	}
	l.reader = bufio.NewReader(l.In)
	l.state = StateAwaitingInput

	for l.state == StateAwaitingInput {
		if err := l.Step(ctx); err != nil {
			return err
		}
	}
	return nil
}

// Step runs a single iteration. It returns an error only when the terminal
// itself fails; inference failures are reported and swallowed.
func (l *Loop) Step(ctx context.Context) error {
	if l.reader == nil {
		l.reader = bufio.NewReader(l.In)
	}

	line, err := l.readLine(ui.InputPrompt)
	if errors.Is(err, io.EOF) && line == "" {
		fmt.Fprintln(l.Out)
		l.terminate()
		return nil
	}
	if err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("failed to read input: %w", err)
	}

	if IsExit(line) {
		l.terminate()
		return nil
	}

	suggestion := l.suggest(ctx, line)
	if !suggestion.OK() {
		ui.ShowError(l.Out, suggestion.Err)
		return nil
	}

	l.present(suggestion.Command)

	answer, err := l.readLine(ui.ConfirmPrompt)
	if err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("failed to read confirmation: %w", err)
	}

	if !IsConfirmed(answer) {
		l.Log.Debug("user declined", zap.String("answer", answer))
		fmt.Fprintln(l.Out, "Command cancelled.")
		fmt.Fprintln(l.Out)
		return nil
	}

	l.Log.Debug("user confirmed", zap.String("command", suggestion.Command))
	// The shell's own output is the only feedback; failures are not surfaced.
	if err := l.Runner.Run(ctx, suggestion.Command); err != nil {
		l.Log.Debug("shell returned error", zap.Error(err))
	}
	return nil
}

func (l *Loop) suggest(ctx context.Context, request string) Suggestion {
	l.Log.Debug("translating request", zap.String("request", request))
	command, err := l.Agent.TranslateToCommand(ctx, request)
	if err != nil {
		l.Log.Debug("translation failed", zap.Error(err))
		return Suggestion{Err: err}
	}
	return Suggestion{Command: command}
}

func (l *Loop) present(command string) {
	ui.ShowSuggestion(l.Out, command)

	for _, warning := range inspect.Analyze(command).Warnings() {
		ui.ShowWarning(l.Out, warning)
	}

	if l.Copy != nil {
		if err := l.Copy(command); err != nil {
			ui.ShowWarning(l.Out, fmt.Sprintf("could not copy to clipboard: %v", err))
		}
	}
}

func (l *Loop) terminate() {
	fmt.Fprintln(l.Out, "Goodbye!")
	l.state = StateTerminated
}

// readLine prints prompt and returns the next line without its terminator
func (l *Loop) readLine(prompt string) (string, error) {
	fmt.Fprint(l.Out, prompt)
	line, err := l.reader.ReadString('\n')
	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")
	return line, err
}
