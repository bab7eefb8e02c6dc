package interfaces

import (
	"context"

	"stock-backend/src/models"
)

//go:generate mockgen -package=mocks -destination=../mocks/mock_sentiment.go -source=sentiment.go

// IBlobStore downloads named blobs to local files.
type IBlobStore interface {
	DownloadFile(ctx context.Context, blobName, destPath string) error
}

// IEmbedder turns text into a vector with a fixed model.
type IEmbedder interface {
	Embed(ctx context.Context, text string) ([]float32, error)
	Model() string
}

// IRetriever returns the k chunks most similar to a query.
type IRetriever interface {
	Retrieve(ctx context.Context, query string, k int) ([]models.MSearchResult, error)
}

// ILLMProvider generates a completion for a prompt.
type ILLMProvider interface {
	Generate(ctx context.Context, prompt string) (string, error)
	Name() string
}

// IChatHandler answers a user message. Implementations never panic and always
// return exactly one of response or error.
type IChatHandler interface {
	Chat(ctx context.Context, message string) models.MChatResult
}

// IIndexLoader refreshes the retrieval artifacts from blob storage.
type IIndexLoader interface {
	Load(ctx context.Context) error
	LoadGraph(ctx context.Context) error
	GraphPath() string
	Loaded() bool
}
