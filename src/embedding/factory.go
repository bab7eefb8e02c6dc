package embedding

import (
	"fmt"
	"time"

	"stock-backend/src/interfaces"
	"stock-backend/src/models"
)

// NewEmbedder picks the embedder for cfg.Embedding.Provider.
func NewEmbedder(cfg *models.MConfig) (interfaces.IEmbedder, error) {
	timeout := time.Duration(cfg.Network.RequestTimeout) * time.Second
	switch cfg.Embedding.Provider {
	case "ollama":
		return NewOllamaEmbedder(cfg.Embedding.BaseURL, cfg.Embedding.Model, timeout)
	case "azure_openai":
		return NewAzureOpenAIEmbedder(cfg.Embedding.APIKey, cfg.Embedding.BaseURL, cfg.Embedding.Model, timeout)
	default:
		return nil, fmt.Errorf("unknown embedding provider '%s'", cfg.Embedding.Provider)
	}
}
