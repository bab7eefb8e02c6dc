package server

import (
	"errors"
	"net/http"
	"os"

	"stock-backend/src/models"

	"github.com/gin-gonic/gin"
)

const graphNotFoundHTML = "<html><body><h1>Sentiment graph not available</h1></body></html>"

// -----------------------------------------------------------------------------

func (s *APIServer) chat(c *gin.Context) {
	if s.Chat == nil {
		c.JSON(http.StatusOK, models.ChatError(errors.New("chat is not configured")))
		return
	}
	c.JSON(http.StatusOK, s.Chat.Chat(c.Request.Context(), c.Param("message")))
}

// -----------------------------------------------------------------------------

func (s *APIServer) reloadIndex(c *gin.Context) {
	if s.Index == nil {
		c.JSON(http.StatusOK, gin.H{"error": "index reload is not configured"})
		return
	}

	ctx := c.Request.Context()
	if err := s.Index.Load(ctx); err != nil {
		s.Logger.Error("Index reload failed: %v", err)
		c.JSON(http.StatusOK, gin.H{"error": err.Error()})
		return
	}
	if err := s.Index.LoadGraph(ctx); err != nil {
		s.Logger.Warning("Graph refresh failed after reload: %v", err)
	}

	c.JSON(http.StatusOK, gin.H{"message": "FAISS index reloaded successfully"})
}

// -----------------------------------------------------------------------------

func (s *APIServer) getGraph(c *gin.Context) {
	if s.Index == nil {
		c.Data(http.StatusNotFound, "text/html; charset=utf-8", []byte(graphNotFoundHTML))
		return
	}

	data, err := os.ReadFile(s.Index.GraphPath())
	if err != nil {
		s.Logger.Debug("Graph not available: %v", err)
		c.Data(http.StatusNotFound, "text/html; charset=utf-8", []byte(graphNotFoundHTML))
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", data)
}
