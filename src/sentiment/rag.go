package sentiment

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"text/template"

	"stock-backend/src/interfaces"
	"stock-backend/src/logger"
	"stock-backend/src/models"
)

// PromptData is the data bound to the prompt template.
type PromptData struct {
	Context string
	Query   string
}

// RAGChatHandler answers with the top-k most similar chunks as context.
type RAGChatHandler struct {
	Retriever interfaces.IRetriever
	Provider  interfaces.ILLMProvider
	TopK      int
	Template  *template.Template
	Logger    *logger.Logger
}

// -----------------------------------------------------------------------------

func NewRAGChatHandler(
	retriever interfaces.IRetriever,
	provider interfaces.ILLMProvider,
	topK int,
	promptTemplate string,
	log *logger.Logger,
) (*RAGChatHandler, error) {
	tmpl, err := template.New("prompt").Option("missingkey=error").Parse(promptTemplate)
	if err != nil {
		return nil, fmt.Errorf("parse prompt template: %w", err)
	}
	if topK <= 0 {
		topK = 3
	}
	return &RAGChatHandler{
		Retriever: retriever,
		Provider:  provider,
		TopK:      topK,
		Template:  tmpl,
		Logger:    log.Named("RAGChat"),
	}, nil
}

// -----------------------------------------------------------------------------

func (h *RAGChatHandler) Chat(ctx context.Context, message string) (result models.MChatResult) {
	defer func() {
		if r := recover(); r != nil {
			h.Logger.Error("Recovered panic in chat: %v", r)
			result = models.ChatError(fmt.Errorf("internal error: %v", r))
		}
	}()

	docs, err := h.Retriever.Retrieve(ctx, message, h.TopK)
	if err != nil {
		h.Logger.Warning("Retrieval failed: %v", err)
		return models.ChatError(err)
	}

	prompt, err := h.BuildPrompt(docs, message)
	if err != nil {
		return models.ChatError(err)
	}

	text, err := h.Provider.Generate(ctx, prompt)
	if err != nil {
		h.Logger.Warning("%s generation failed: %v", h.Provider.Name(), err)
		return models.ChatError(err)
	}

	h.Logger.Debug("Answered with %d context chunks", len(docs))
	return models.ChatResponse(strings.TrimSpace(text))
}

// -----------------------------------------------------------------------------

// BuildPrompt joins the retrieved chunk texts with blank lines and fills the
// template.
func (h *RAGChatHandler) BuildPrompt(docs []models.MSearchResult, query string) (string, error) {
	texts := make([]string, 0, len(docs))
	for _, d := range docs {
		texts = append(texts, d.Document.Text)
	}

	var buf bytes.Buffer
	err := h.Template.Execute(&buf, PromptData{
		Context: strings.Join(texts, "\n\n"),
		Query:   query,
	})
	if err != nil {
		return "", fmt.Errorf("render prompt: %w", err)
	}
	return buf.String(), nil
}
