package agent

import (
	"context"
	"fmt"
)

// MockAgent for testing code that depends on Agent interface
type MockAgent struct {
	TranslateFn func(context.Context, string) (string, error)
}

var (
	_ Agent = (*GeminiAgent)(nil)
	_ Agent = (*MockAgent)(nil)
)

func (m *MockAgent) TranslateToCommand(ctx context.Context, request string) (string, error) {
	if m.TranslateFn != nil {
		return m.TranslateFn(ctx, request)
	}
	return "echo mock", nil
}

func Example_mockAgent() {
	mock := &MockAgent{
		TranslateFn: func(ctx context.Context, req string) (string, error) {
			if req == "list files" {
				return "ls -la", nil
			}
			return "echo unknown", nil
		},
	}

	cmd, _ := mock.TranslateToCommand(context.Background(), "list files")
	fmt.Println(cmd)
	// Output: ls -la
}
