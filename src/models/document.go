package models

// MDocument is a retrievable text chunk stored in the docstore.
type MDocument struct {
	Text   string `json:"text"`
	Source string `json:"source,omitempty"`
}

// MDocStore is the metadata file shipped next to the vector file.
type MDocStore struct {
	EmbeddingModel string               `json:"embedding_model"`
	Dimension      int                  `json:"dimension"`
	Documents      map[string]MDocument `json:"documents"`
}

// MSearchResult is one retrieval hit.
type MSearchResult struct {
	ID       string    `json:"id"`
	Score    float32   `json:"score"`
	Document MDocument `json:"document"`
}
