package embedding

import (
	"context"
	"fmt"
	"net/http"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

// AzureOpenAIEmbedder embeds text with an Azure OpenAI embedding deployment.
type AzureOpenAIEmbedder struct {
	Client *openai.Client
	model  string
}

// -----------------------------------------------------------------------------

func NewAzureOpenAIEmbedder(apiKey, endpoint, model string, timeout time.Duration) (*AzureOpenAIEmbedder, error) {
	if apiKey == "" || endpoint == "" {
		return nil, fmt.Errorf("azure openai embedder needs AZURE_OPENAI_API_KEY and AZURE_OPENAI_ENDPOINT")
	}
	cfg := openai.DefaultAzureConfig(apiKey, endpoint)
	cfg.HTTPClient = &http.Client{Timeout: timeout}
	return &AzureOpenAIEmbedder{
		Client: openai.NewClientWithConfig(cfg),
		model:  model,
	}, nil
}

// -----------------------------------------------------------------------------

func (e *AzureOpenAIEmbedder) Model() string {
	return e.model
}

// -----------------------------------------------------------------------------

func (e *AzureOpenAIEmbedder) Embed(ctx context.Context, text string) ([]float32, error) {
	resp, err := e.Client.CreateEmbeddings(ctx, openai.EmbeddingRequest{
		Input: []string{text},
		Model: openai.EmbeddingModel(e.model),
	})
	if err != nil {
		return nil, fmt.Errorf("azure openai embeddings: %w", err)
	}
	if len(resp.Data) == 0 || len(resp.Data[0].Embedding) == 0 {
		return nil, fmt.Errorf("azure openai embeddings: empty vector")
	}
	return resp.Data[0].Embedding, nil
}
