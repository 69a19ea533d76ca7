// internal/adapter/inference/generator.go

package inference

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const (
	defaultGeneratorBaseURL = "https://api.openai.com/v1"
	defaultGeneratorModel   = "gpt-4o-mini"
)

// GeneratorClient produces text through an OpenAI-compatible chat
// completions endpoint.
type GeneratorClient struct {
	baseURL    string
	apiKey     string
	model      string
	httpClient *http.Client
}

// NewGeneratorClient constructs a client with sane defaults.
func NewGeneratorClient(apiKey string, opts ...func(*GeneratorClient)) *GeneratorClient {
	c := &GeneratorClient{
		baseURL: defaultGeneratorBaseURL,
		apiKey:  apiKey,
		model:   defaultGeneratorModel,
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// WithGeneratorHTTPClient overrides the internal HTTP client.
func WithGeneratorHTTPClient(hc *http.Client) func(*GeneratorClient) {
	return func(c *GeneratorClient) {
		c.httpClient = hc
	}
}

// WithGeneratorBaseURL overrides the default API base URL (useful for tests).
func WithGeneratorBaseURL(url string) func(*GeneratorClient) {
	return func(c *GeneratorClient) {
		if url != "" {
			c.baseURL = url
		}
	}
}

// WithGeneratorModel overrides the default completion model.
func WithGeneratorModel(model string) func(*GeneratorClient) {
	return func(c *GeneratorClient) {
		if model != "" {
			c.model = model
		}
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionRequest struct {
	Model     string        `json:"model"`
	Messages  []chatMessage `json:"messages"`
	MaxTokens int           `json:"max_tokens,omitempty"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Generate runs one completion for the prompt and returns the first
// choice's content.
func (c *GeneratorClient) Generate(ctx context.Context, prompt string, maxTokens int) (string, error) {
	if c.apiKey == "" {
		return "", fmt.Errorf("inference: missing API key")
	}

	body, err := json.Marshal(chatCompletionRequest{
		Model:     c.model,
		Messages:  []chatMessage{{Role: "user", Content: prompt}},
		MaxTokens: maxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("inference: marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("inference: create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.apiKey))

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("inference: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return "", fmt.Errorf("inference: api error %d: %s", resp.StatusCode, string(data))
	}

	var payload chatCompletionResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", fmt.Errorf("inference: decode response: %w", err)
	}
	if len(payload.Choices) == 0 {
		return "", fmt.Errorf("inference: empty completion response")
	}
	return payload.Choices[0].Message.Content, nil
}
