package capability

import "context"

// Prediction is the raw output of a sentiment classifier: a single label
// with the model's confidence in it.
type Prediction struct {
	Label      string
	Confidence float64
}

// SentimentClassifier is an externally supplied inference capability. A nil
// handle means the capability was not configured at startup; callers must
// check for nil and fall back rather than assume availability.
type SentimentClassifier interface {
	Classify(ctx context.Context, text string) (Prediction, error)
}

// TextGenerator is an externally supplied text generation capability. Same
// nil-handle contract as SentimentClassifier.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string, maxTokens int) (string, error)
}
