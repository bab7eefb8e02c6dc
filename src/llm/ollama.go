package llm

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"stock-backend/src/helpers"

	"github.com/ollama/ollama/api"
)

// OllamaProvider generates completions with a local Ollama model.
type OllamaProvider struct {
	Client      *api.Client
	Model       string
	Temperature float32
	MaxTokens   int
}

// -----------------------------------------------------------------------------

func NewOllamaProvider(baseURL, model string, temperature float32, maxTokens int, timeout time.Duration) (*OllamaProvider, error) {
	if baseURL == "" {
		baseURL = "http://localhost:11434"
	}
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid ollama url: %w", err)
	}
	return &OllamaProvider{
		Client:      api.NewClient(u, &http.Client{Timeout: timeout}),
		Model:       model,
		Temperature: temperature,
		MaxTokens:   maxTokens,
	}, nil
}

// -----------------------------------------------------------------------------

func (p *OllamaProvider) Name() string {
	return "ollama"
}

// -----------------------------------------------------------------------------

func (p *OllamaProvider) Generate(ctx context.Context, prompt string) (string, error) {
	stream := false
	options := map[string]any{"temperature": p.Temperature}
	if p.MaxTokens > 0 {
		options["num_predict"] = p.MaxTokens
	}

	var sb strings.Builder
	err := p.Client.Generate(ctx, &api.GenerateRequest{
		Model:   p.Model,
		Prompt:  prompt,
		Stream:  &stream,
		Options: options,
	}, func(resp api.GenerateResponse) error {
		sb.WriteString(resp.Response)
		return nil
	})
	if err != nil {
		return "", helpers.NewLLMError("ollama generate failed", err)
	}
	return sb.String(), nil
}
