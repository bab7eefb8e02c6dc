package sentiment

import (
	"context"
	"fmt"
	"strings"

	"stock-backend/src/interfaces"
	"stock-backend/src/logger"
	"stock-backend/src/models"
)

const passthroughSuffix = "\n\nPlease respond in 1-2 short lines."

// PassthroughChatHandler forwards the raw message with a brevity instruction.
type PassthroughChatHandler struct {
	Provider interfaces.ILLMProvider
	Logger   *logger.Logger
}

func NewPassthroughChatHandler(provider interfaces.ILLMProvider, log *logger.Logger) *PassthroughChatHandler {
	return &PassthroughChatHandler{Provider: provider, Logger: log.Named("PassthroughChat")}
}

// -----------------------------------------------------------------------------

func (h *PassthroughChatHandler) Chat(ctx context.Context, message string) (result models.MChatResult) {
	defer func() {
		if r := recover(); r != nil {
			h.Logger.Error("Recovered panic in chat: %v", r)
			result = models.ChatError(fmt.Errorf("internal error: %v", r))
		}
	}()

	text, err := h.Provider.Generate(ctx, message+passthroughSuffix)
	if err != nil {
		h.Logger.Warning("%s generation failed: %v", h.Provider.Name(), err)
		return models.ChatError(err)
	}
	return models.ChatResponse(strings.TrimSpace(text))
}
