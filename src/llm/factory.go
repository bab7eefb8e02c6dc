package llm

import (
	"fmt"
	"time"

	"stock-backend/src/interfaces"
	"stock-backend/src/models"
)

// NewProvider builds the provider named by cfg.LLM.Provider.
func NewProvider(cfg *models.MConfig) (interfaces.ILLMProvider, error) {
	c := cfg.LLM
	timeout := time.Duration(c.TimeoutSecs) * time.Second

	switch c.Provider {
	case "huggingface":
		return NewHuggingFaceProvider(c.BaseURL, c.Model, c.APIKey, timeout), nil
	case "openrouter":
		return NewOpenRouterProvider(c.BaseURL, c.APIKey, c.Model, c.SiteURL, c.SiteName, c.Temperature, c.MaxTokens, timeout), nil
	case "azure_openai":
		return NewAzureOpenAIProvider(c.APIKey, c.BaseURL, c.Model, c.Temperature, c.MaxTokens, timeout)
	case "ollama":
		return NewOllamaProvider(c.BaseURL, c.Model, c.Temperature, c.MaxTokens, timeout)
	default:
		return nil, fmt.Errorf("unknown llm provider '%s'", c.Provider)
	}
}
