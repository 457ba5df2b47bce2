package agent

import "context"

// Agent represents an LLM backend that can translate natural language to shell commands
type Agent interface {
	// TranslateToCommand takes a natural language request and returns a shell command
	TranslateToCommand(ctx context.Context, request string) (string, error)
}
