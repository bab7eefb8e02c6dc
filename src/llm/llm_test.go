package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"stock-backend/src/helpers"
	"stock-backend/src/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHuggingFaceStripsEchoedPrompt(t *testing.T) {
	t.Parallel()

	prompt := "Is TSLA overbought?\n\nPlease respond in 1-2 short lines."

	// Arrange: the inference API echoes the prompt before the completion
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/models/mistralai/Mistral-7B-Instruct-v0.2", r.URL.Path)
		assert.Equal(t, "Bearer hf-key", r.Header.Get("Authorization"))

		var body hfRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, prompt, body.Inputs)

		_ = json.NewEncoder(w).Encode([]hfGeneration{{GeneratedText: prompt + "\n  Momentum is stretched. "}})
	}))
	defer srv.Close()

	p := NewHuggingFaceProvider(srv.URL, "mistralai/Mistral-7B-Instruct-v0.2", "hf-key", 5*time.Second)

	// Act
	text, err := p.Generate(context.Background(), prompt)

	// Assert
	require.NoError(t, err)
	require.Equal(t, "Momentum is stretched.", text)
}

func TestHuggingFaceKeepsOutputWithoutEcho(t *testing.T) {
	t.Parallel()

	// Arrange: return_full_text=false style output, no echoed prompt
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode([]hfGeneration{{GeneratedText: " Bearish into earnings.\n"}})
	}))
	defer srv.Close()

	p := NewHuggingFaceProvider(srv.URL, "mistralai/Mistral-7B-Instruct-v0.2", "hf-key", 5*time.Second)

	// Act
	text, err := p.Generate(context.Background(), "Is NFLX a buy?")

	// Assert: nothing is cut from the front
	require.NoError(t, err)
	require.Equal(t, "Bearish into earnings.", text)
}

func TestHuggingFaceErrorStatus(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte(`{"error":"Model is currently loading"}`))
	}))
	defer srv.Close()

	p := NewHuggingFaceProvider(srv.URL, "m", "k", 5*time.Second)

	_, err := p.Generate(context.Background(), "hi")

	var llmErr *helpers.LLMError
	require.ErrorAs(t, err, &llmErr)
	require.Contains(t, err.Error(), "503")
	require.Contains(t, err.Error(), "Model is currently loading")
}

func TestHuggingFaceEmptyGenerations(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	p := NewHuggingFaceProvider(srv.URL, "m", "k", 5*time.Second)

	_, err := p.Generate(context.Background(), "hi")
	require.Error(t, err)
}

func TestOpenRouterSendsAttributionHeaders(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer or-key", r.Header.Get("Authorization"))
		assert.Equal(t, "https://stocks.example", r.Header.Get("HTTP-Referer"))
		assert.Equal(t, "Stock Backend", r.Header.Get("X-Title"))

		var body map[string]any
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "mistralai/mistral-7b-instruct", body["model"])

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"gen-1","object":"chat.completion","created":1,"model":"mistralai/mistral-7b-instruct",
			"choices":[{"index":0,"message":{"role":"assistant","content":"Neutral outlook."},"finish_reason":"stop"}]}`))
	}))
	defer srv.Close()

	p := NewOpenRouterProvider(srv.URL, "or-key", "mistralai/mistral-7b-instruct", "https://stocks.example", "Stock Backend", 0.2, 128, 5*time.Second)

	text, err := p.Generate(context.Background(), "How is NVDA?")

	require.NoError(t, err)
	require.Equal(t, "Neutral outlook.", text)
	require.Equal(t, "openrouter", p.Name())
}

func TestChatCompletionNoChoices(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"gen-2","object":"chat.completion","choices":[]}`))
	}))
	defer srv.Close()

	p := NewOpenRouterProvider(srv.URL, "k", "m", "", "", 0, 0, 5*time.Second)

	_, err := p.Generate(context.Background(), "hi")

	var llmErr *helpers.LLMError
	require.ErrorAs(t, err, &llmErr)
}

func TestOllamaGenerate(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/generate", r.URL.Path)
		var body map[string]any
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, false, body["stream"])
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"model":"llama3","response":"Bearish bias.","done":true}`))
	}))
	defer srv.Close()

	p, err := NewOllamaProvider(srv.URL, "llama3", 0.1, 64, 5*time.Second)
	require.NoError(t, err)

	text, err := p.Generate(context.Background(), "Is AMZN weak?")

	require.NoError(t, err)
	require.Equal(t, "Bearish bias.", text)
}

func TestNewProvider(t *testing.T) {
	t.Parallel()

	cfg := &models.MConfig{}
	cfg.LLM.TimeoutSecs = 1

	for provider, want := range map[string]string{
		"huggingface": "huggingface",
		"openrouter":  "openrouter",
		"ollama":      "ollama",
	} {
		cfg.LLM.Provider = provider
		p, err := NewProvider(cfg)
		require.NoError(t, err, provider)
		require.Equal(t, want, p.Name())
	}

	cfg.LLM.Provider = "azure_openai"
	_, err := NewProvider(cfg)
	require.Error(t, err)

	cfg.LLM.Provider = "gpt-local"
	_, err = NewProvider(cfg)
	require.Error(t, err)
}
