package llm

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"stock-backend/src/helpers"

	openai "github.com/sashabaranov/go-openai"
)

const openRouterURL = "https://openrouter.ai/api/v1"

// ChatCompletionProvider sends the prompt as a single user message to an
// OpenAI compatible chat-completions endpoint.
type ChatCompletionProvider struct {
	Client      *openai.Client
	Model       string
	Temperature float32
	MaxTokens   int
	name        string
}

// -----------------------------------------------------------------------------

// headerTransport adds fixed headers to every outgoing request.
type headerTransport struct {
	base    http.RoundTripper
	headers map[string]string
}

func (t *headerTransport) RoundTrip(r *http.Request) (*http.Response, error) {
	r = r.Clone(r.Context())
	for k, v := range t.headers {
		if v != "" {
			r.Header.Set(k, v)
		}
	}
	return t.base.RoundTrip(r)
}

// -----------------------------------------------------------------------------

// NewOpenRouterProvider targets OpenRouter. siteURL and siteName are sent as
// the HTTP-Referer and X-Title attribution headers.
func NewOpenRouterProvider(baseURL, apiKey, model, siteURL, siteName string, temperature float32, maxTokens int, timeout time.Duration) *ChatCompletionProvider {
	cfg := openai.DefaultConfig(apiKey)
	cfg.BaseURL = openRouterURL
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	cfg.HTTPClient = &http.Client{
		Timeout: timeout,
		Transport: &headerTransport{
			base: http.DefaultTransport,
			headers: map[string]string{
				"HTTP-Referer": siteURL,
				"X-Title":      siteName,
			},
		},
	}
	return &ChatCompletionProvider{
		Client:      openai.NewClientWithConfig(cfg),
		Model:       model,
		Temperature: temperature,
		MaxTokens:   maxTokens,
		name:        "openrouter",
	}
}

// -----------------------------------------------------------------------------

func NewAzureOpenAIProvider(apiKey, endpoint, deployment string, temperature float32, maxTokens int, timeout time.Duration) (*ChatCompletionProvider, error) {
	if apiKey == "" || endpoint == "" {
		return nil, fmt.Errorf("azure openai provider needs AZURE_OPENAI_API_KEY and AZURE_OPENAI_ENDPOINT")
	}
	cfg := openai.DefaultAzureConfig(apiKey, endpoint)
	cfg.HTTPClient = &http.Client{Timeout: timeout}
	return &ChatCompletionProvider{
		Client:      openai.NewClientWithConfig(cfg),
		Model:       deployment,
		Temperature: temperature,
		MaxTokens:   maxTokens,
		name:        "azure_openai",
	}, nil
}

// -----------------------------------------------------------------------------

func (p *ChatCompletionProvider) Name() string {
	return p.name
}

// -----------------------------------------------------------------------------

func (p *ChatCompletionProvider) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := p.Client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: p.Model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		Temperature: p.Temperature,
		MaxTokens:   p.MaxTokens,
	})
	if err != nil {
		return "", helpers.NewLLMError(p.name+" chat completion failed", err)
	}
	if len(resp.Choices) == 0 {
		return "", helpers.NewLLMError(p.name+" returned no choices", nil)
	}
	return resp.Choices[0].Message.Content, nil
}
