package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"stock-backend/src/helpers"
)

const defaultHuggingFaceURL = "https://api-inference.huggingface.co"

// HuggingFaceProvider calls the hosted inference API for a text-generation model.
type HuggingFaceProvider struct {
	BaseURL string
	Model   string
	APIKey  string
	Client  *http.Client
}

type hfRequest struct {
	Inputs string `json:"inputs"`
}

type hfGeneration struct {
	GeneratedText string `json:"generated_text"`
}

// -----------------------------------------------------------------------------

func NewHuggingFaceProvider(baseURL, model, apiKey string, timeout time.Duration) *HuggingFaceProvider {
	if baseURL == "" {
		baseURL = defaultHuggingFaceURL
	}
	return &HuggingFaceProvider{
		BaseURL: strings.TrimRight(baseURL, "/"),
		Model:   model,
		APIKey:  apiKey,
		Client:  &http.Client{Timeout: timeout},
	}
}

// -----------------------------------------------------------------------------

func (p *HuggingFaceProvider) Name() string {
	return "huggingface"
}

// -----------------------------------------------------------------------------

// Generate posts the prompt and returns the generated text with the echoed
// prompt removed.
func (p *HuggingFaceProvider) Generate(ctx context.Context, prompt string) (string, error) {
	body, err := json.Marshal(hfRequest{Inputs: prompt})
	if err != nil {
		return "", helpers.NewLLMError("encoding request", err)
	}

	url := fmt.Sprintf("%s/models/%s", p.BaseURL, p.Model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", helpers.NewLLMError("building request", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if p.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+p.APIKey)
	}

	resp, err := p.Client.Do(req)
	if err != nil {
		return "", helpers.NewLLMError("huggingface request failed", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", helpers.NewLLMError("reading huggingface response", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", helpers.NewLLMError(
			fmt.Sprintf("huggingface returned %d", resp.StatusCode),
			fmt.Errorf("%s", strings.TrimSpace(string(raw))),
		)
	}

	var generations []hfGeneration
	if err := json.Unmarshal(raw, &generations); err != nil {
		return "", helpers.NewLLMError("decoding huggingface response", err)
	}
	if len(generations) == 0 {
		return "", helpers.NewLLMError("huggingface returned no generations", nil)
	}

	// Only an echoed prompt is removed; output that does not repeat it is kept whole.
	text := strings.TrimPrefix(generations[0].GeneratedText, prompt)
	return strings.TrimSpace(text), nil
}
