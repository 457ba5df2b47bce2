package agent

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"google.golang.org/genai"
)

// DefaultModel is the Gemini model used when none is configured.
const DefaultModel = "gemini-2.5-flash"

// ErrEmptyResponse is returned when the model answers with no text.
var ErrEmptyResponse = errors.New("gemini returned empty response")

// ContentGenerator is the slice of the Gemini client the agent depends on.
// *genai.Models satisfies it.
type ContentGenerator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// GeminiAgent implements the Agent interface using the Gemini API
type GeminiAgent struct {
	models ContentGenerator
	model  string
	log    *zap.Logger
}

// NewGeminiClient creates the Gemini API client for the given credential.
func NewGeminiClient(ctx context.Context, apiKey string) (*genai.Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini API key is required")
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	return client, nil
}

// NewGeminiAgent creates a new Gemini agent. An empty model selects DefaultModel.
func NewGeminiAgent(models ContentGenerator, model string, log *zap.Logger) *GeminiAgent {
	if model == "" {
		model = DefaultModel
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &GeminiAgent{models: models, model: model, log: log}
}

// Model returns the model identifier sent with every request.
func (g *GeminiAgent) Model() string {
	return g.model
}

// TranslateToCommand translates natural language to a shell command
func (g *GeminiAgent) TranslateToCommand(ctx context.Context, request string) (string, error) {
	prompt := BuildPrompt(request)
	g.log.Debug("calling gemini", zap.String("model", g.model), zap.Int("prompt_bytes", len(prompt)))

	resp, err := g.models.GenerateContent(ctx, g.model, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("failed to call gemini: %w", err)
	}
	if resp == nil {
		return "", ErrEmptyResponse
	}

	output := strings.TrimSpace(resp.Text())
	if output == "" {
		return "", ErrEmptyResponse
	}

	g.log.Debug("gemini responded", zap.String("command", output))
	return output, nil
}
