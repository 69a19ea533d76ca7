// internal/adapter/inference/sentiment.go

package inference

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"scrollmark/internal/domain/capability"
)

const (
	defaultSentimentBaseURL = "https://api-inference.huggingface.co"
	defaultSentimentModel   = "distilbert-base-uncased-finetuned-sst-2-english"
)

// SentimentClient classifies text through a hosted inference endpoint that
// speaks the Hugging Face text-classification protocol.
type SentimentClient struct {
	baseURL    string
	apiKey     string
	model      string
	httpClient *http.Client
}

// NewSentimentClient constructs a client with sane defaults.
func NewSentimentClient(apiKey string, opts ...func(*SentimentClient)) *SentimentClient {
	c := &SentimentClient{
		baseURL: defaultSentimentBaseURL,
		apiKey:  apiKey,
		model:   defaultSentimentModel,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// WithSentimentHTTPClient overrides the internal HTTP client.
func WithSentimentHTTPClient(hc *http.Client) func(*SentimentClient) {
	return func(c *SentimentClient) {
		c.httpClient = hc
	}
}

// WithSentimentBaseURL overrides the default API base URL (useful for tests).
func WithSentimentBaseURL(url string) func(*SentimentClient) {
	return func(c *SentimentClient) {
		if url != "" {
			c.baseURL = url
		}
	}
}

// WithSentimentModel overrides the default classification model.
func WithSentimentModel(model string) func(*SentimentClient) {
	return func(c *SentimentClient) {
		if model != "" {
			c.model = model
		}
	}
}

type classificationRequest struct {
	Inputs string `json:"inputs"`
}

type classificationScore struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

// Classify sends one text to the endpoint and returns the top-scoring
// label. The response is a nested array of label scores per input.
func (c *SentimentClient) Classify(ctx context.Context, text string) (capability.Prediction, error) {
	if c.apiKey == "" {
		return capability.Prediction{}, fmt.Errorf("inference: missing API key")
	}

	body, err := json.Marshal(classificationRequest{Inputs: text})
	if err != nil {
		return capability.Prediction{}, fmt.Errorf("inference: marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s", c.baseURL, c.model)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return capability.Prediction{}, fmt.Errorf("inference: create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.apiKey))

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return capability.Prediction{}, fmt.Errorf("inference: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return capability.Prediction{}, fmt.Errorf("inference: api error %d: %s", resp.StatusCode, string(data))
	}

	var payload [][]classificationScore
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return capability.Prediction{}, fmt.Errorf("inference: decode response: %w", err)
	}
	if len(payload) == 0 || len(payload[0]) == 0 {
		return capability.Prediction{}, fmt.Errorf("inference: empty classification response")
	}

	top := payload[0][0]
	for _, score := range payload[0][1:] {
		if score.Score > top.Score {
			top = score
		}
	}
	return capability.Prediction{Label: top.Label, Confidence: top.Score}, nil
}
