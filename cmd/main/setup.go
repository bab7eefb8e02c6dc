package main

import (
	"stock-backend/src/blob"
	"stock-backend/src/config"
	"stock-backend/src/embedding"
	"stock-backend/src/interfaces"
	"stock-backend/src/llm"
	"stock-backend/src/logger"
	"stock-backend/src/sentiment"
	"stock-backend/src/storage"
	"stock-backend/src/vector"
)

// -----------------------------------------------------------------------------

// setupArchive opens and migrates the optional quote archive.
func setupArchive(cfg *config.Config, appLogger *logger.Logger) (interfaces.IQuoteArchive, error) {
	archive, err := storage.NewArchive(cfg.MConfig, appLogger)
	if err != nil {
		return nil, err
	}
	if err := archive.Initialize(); err != nil {
		return nil, err
	}
	return archive, nil
}

// -----------------------------------------------------------------------------

// sentimentStack is everything the chat endpoints need.
type sentimentStack struct {
	Chat    interfaces.IChatHandler
	Loader  *sentiment.IndexLoader // nil when no blob store is usable
	closers []func() error
}

func (s *sentimentStack) Close() {
	for _, c := range s.closers {
		_ = c()
	}
}

// -----------------------------------------------------------------------------

// setupSentiment builds the blob store, index loader, retriever, LLM provider
// and chat handler for the configured strategy.
func setupSentiment(cfg *config.Config, appLogger *logger.Logger) (*sentimentStack, error) {
	stack := &sentimentStack{}

	var embedder interfaces.IEmbedder
	if cfg.Sentiment.Strategy == "rag" {
		e, err := embedding.NewEmbedder(cfg.MConfig)
		if err != nil {
			return nil, err
		}
		embedder = e
	}

	holder := vector.NewIndexHolder()

	store, err := blob.NewBlobStore(cfg.MConfig, appLogger)
	if err != nil {
		appLogger.Warning("Blob store unavailable, index reload disabled: %v", err)
	} else {
		stack.Loader = sentiment.NewIndexLoader(cfg.MConfig, store, holder, embedder, appLogger)
	}

	var retriever interfaces.IRetriever
	if cfg.Sentiment.Strategy == "rag" {
		switch cfg.Sentiment.Retriever {
		case "qdrant":
			qr, err := vector.NewQdrantRetriever(cfg.Qdrant.Address, cfg.Qdrant.Collection, embedder)
			if err != nil {
				return nil, err
			}
			stack.closers = append(stack.closers, qr.Close)
			retriever = qr
		default:
			retriever = vector.NewIndexRetriever(holder, embedder)
		}
	}

	provider, err := llm.NewProvider(cfg.MConfig)
	if err != nil {
		return nil, err
	}

	chat, err := sentiment.NewChatHandler(cfg.MConfig, retriever, provider, appLogger)
	if err != nil {
		return nil, err
	}
	stack.Chat = chat

	appLogger.Info("Chat strategy %s using %s", cfg.Sentiment.Strategy, provider.Name())
	return stack, nil
}
