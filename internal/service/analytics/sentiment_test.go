package analytics

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"scrollmark/internal/domain/capability"
	"scrollmark/internal/domain/engagement"
)

type stubClassifier struct {
	prediction capability.Prediction
	err        error
	calls      int
}

func (s *stubClassifier) Classify(_ context.Context, _ string) (capability.Prediction, error) {
	s.calls++
	return s.prediction, s.err
}

func TestToneMapsLabelsThroughConfidenceThreshold(t *testing.T) {
	tests := []struct {
		name       string
		label      string
		confidence float64
		want       string
	}{
		{"confident positive", "POSITIVE", 0.95, TonePositive},
		{"confident negative", "NEGATIVE", 0.9, ToneNegative},
		{"low confidence positive", "POSITIVE", 0.5, ToneNeutral},
		{"low confidence negative", "NEGATIVE", 0.69, ToneNeutral},
		{"at threshold", "POSITIVE", 0.7, ToneNeutral},
		{"neutral label", "NEUTRAL", 0.99, ToneNeutral},
		{"unknown label", "MIXED", 0.99, ToneNeutral},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			classifier := &stubClassifier{prediction: capability.Prediction{Label: tt.label, Confidence: tt.confidence}}
			analyzer := NewSentimentAnalyzer(classifier, 0)
			assert.Equal(t, tt.want, analyzer.Tone(context.Background(), "I love this"))
		})
	}
}

func TestToneIsNeutralWhenCapabilityUnavailable(t *testing.T) {
	analyzer := NewSentimentAnalyzer(nil, 0)
	assert.False(t, analyzer.Available())
	assert.Equal(t, ToneNeutral, analyzer.Tone(context.Background(), "I love this"))
}

func TestToneSkipsBlankTextWithoutInvokingCapability(t *testing.T) {
	classifier := &stubClassifier{prediction: capability.Prediction{Label: "POSITIVE", Confidence: 0.99}}
	analyzer := NewSentimentAnalyzer(classifier, 0)

	assert.Equal(t, ToneNeutral, analyzer.Tone(context.Background(), ""))
	assert.Equal(t, ToneNeutral, analyzer.Tone(context.Background(), "   "))
	assert.Equal(t, 0, classifier.calls)
}

func TestToneRecoversClassificationFailureAsNeutral(t *testing.T) {
	classifier := &stubClassifier{err: errors.New("inference backend down")}
	analyzer := NewSentimentAnalyzer(classifier, 0)
	assert.Equal(t, ToneNeutral, analyzer.Tone(context.Background(), "terrible"))
}

func TestCountTalliesAllTexts(t *testing.T) {
	classifier := &stubClassifier{prediction: capability.Prediction{Label: "POSITIVE", Confidence: 0.9}}
	analyzer := NewSentimentAnalyzer(classifier, 0)

	counts := analyzer.Count(context.Background(), []string{"love it", "", "amazing"})
	assert.Equal(t, engagement.SentimentCounts{Positive: 2, Neutral: 1}, counts)
	assert.Equal(t, 2, classifier.calls)
}

func TestSentimentCountsPercentagesAndOverall(t *testing.T) {
	counts := engagement.SentimentCounts{Positive: 2, Neutral: 1, Negative: 0}
	positive, neutral, negative := counts.Percentages()
	assert.Equal(t, 66, positive)
	assert.Equal(t, 33, neutral)
	assert.Equal(t, 0, negative)
	assert.Equal(t, "Positive", counts.OverallLabel())

	assert.Equal(t, "Neutral", engagement.SentimentCounts{}.OverallLabel())
	assert.Equal(t, "Negative", engagement.SentimentCounts{Negative: 3, Positive: 1}.OverallLabel())
}
