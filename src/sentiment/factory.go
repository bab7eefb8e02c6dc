package sentiment

import (
	"fmt"

	"stock-backend/src/interfaces"
	"stock-backend/src/logger"
	"stock-backend/src/models"
)

// NewChatHandler builds the handler for cfg.Sentiment.Strategy. retriever may
// be nil for the passthrough strategy.
func NewChatHandler(
	cfg *models.MConfig,
	retriever interfaces.IRetriever,
	provider interfaces.ILLMProvider,
	log *logger.Logger,
) (interfaces.IChatHandler, error) {
	switch cfg.Sentiment.Strategy {
	case "rag":
		if retriever == nil {
			return nil, fmt.Errorf("rag strategy needs a retriever")
		}
		return NewRAGChatHandler(retriever, provider, cfg.Sentiment.TopK, cfg.Sentiment.PromptTemplate, log)
	case "passthrough":
		return NewPassthroughChatHandler(provider, log), nil
	default:
		return nil, fmt.Errorf("unknown chat strategy '%s'", cfg.Sentiment.Strategy)
	}
}
