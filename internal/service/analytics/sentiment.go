// internal/service/analytics/sentiment.go

package analytics

import (
	"context"
	"strings"

	"scrollmark/internal/domain/capability"
	"scrollmark/internal/domain/engagement"
)

// Tones produced by the sentiment analyzer.
const (
	TonePositive = "positive"
	ToneNeutral  = "neutral"
	ToneNegative = "negative"
)

// defaultConfidenceThreshold gates the classifier's polarity labels.
// Low-confidence polarity is deliberately treated as neutral so a
// single-label classifier cannot overstate sentiment certainty.
const defaultConfidenceThreshold = 0.7

// SentimentAnalyzer wraps a pluggable classification capability behind a
// deterministic tri-state mapping. A nil classifier means the capability is
// unavailable and every text maps to neutral.
type SentimentAnalyzer struct {
	classifier capability.SentimentClassifier
	threshold  float64
}

// NewSentimentAnalyzer creates a sentiment analyzer around the given
// classifier handle. threshold <= 0 selects the default of 0.7.
func NewSentimentAnalyzer(classifier capability.SentimentClassifier, threshold float64) *SentimentAnalyzer {
	if threshold <= 0 {
		threshold = defaultConfidenceThreshold
	}
	return &SentimentAnalyzer{classifier: classifier, threshold: threshold}
}

// Available reports whether a classification capability is configured.
func (s *SentimentAnalyzer) Available() bool {
	return s.classifier != nil
}

// Tone classifies a single text. Classification failure never propagates:
// an unavailable capability, a blank text, or a failed call all yield
// neutral.
func (s *SentimentAnalyzer) Tone(ctx context.Context, text string) string {
	if s.classifier == nil || strings.TrimSpace(text) == "" {
		return ToneNeutral
	}

	prediction, err := s.classifier.Classify(ctx, text)
	if err != nil {
		return ToneNeutral
	}

	switch strings.ToUpper(prediction.Label) {
	case "POSITIVE":
		if prediction.Confidence > s.threshold {
			return TonePositive
		}
	case "NEGATIVE":
		if prediction.Confidence > s.threshold {
			return ToneNegative
		}
	}
	return ToneNeutral
}

// Count classifies every text and tallies the results.
func (s *SentimentAnalyzer) Count(ctx context.Context, texts []string) engagement.SentimentCounts {
	var counts engagement.SentimentCounts
	for _, text := range texts {
		switch s.Tone(ctx, text) {
		case TonePositive:
			counts.Positive++
		case ToneNegative:
			counts.Negative++
		default:
			counts.Neutral++
		}
	}
	return counts
}
