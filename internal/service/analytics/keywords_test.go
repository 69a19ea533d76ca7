package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scrollmark/internal/domain/engagement"
)

func TestExtractRanksByFrequency(t *testing.T) {
	texts := []string{
		"pricing pricing pricing demo",
		"demo demo launch",
	}

	ranked := NewKeywordExtractor().Extract(texts, 5)

	require.Len(t, ranked, 3)
	assert.Equal(t, engagement.KeywordCount{Topic: "pricing", Engagement: 3}, ranked[0])
	assert.Equal(t, engagement.KeywordCount{Topic: "demo", Engagement: 3}, ranked[1])
	assert.Equal(t, engagement.KeywordCount{Topic: "launch", Engagement: 1}, ranked[2])
}

func TestExtractBreaksTiesByFirstOccurrence(t *testing.T) {
	texts := []string{"zebra apple", "apple zebra"}

	ranked := NewKeywordExtractor().Extract(texts, 2)

	require.Len(t, ranked, 2)
	assert.Equal(t, "zebra", ranked[0].Topic)
	assert.Equal(t, "apple", ranked[1].Topic)
}

func TestExtractFiltersStopwordsAndShortTokens(t *testing.T) {
	texts := []string{"the price is ok and it works, price up!!"}

	ranked := NewKeywordExtractor().Extract(texts, 5)

	require.Len(t, ranked, 1)
	assert.Equal(t, "price", ranked[0].Topic)
	assert.Equal(t, 2, ranked[0].Engagement)
}

func TestExtractSplitsOnNonAlphabeticCharacters(t *testing.T) {
	ranked := NewKeywordExtractor().Extract([]string{"demo123demo #launch-day"}, 5)

	topics := make([]string, 0, len(ranked))
	for _, kw := range ranked {
		topics = append(topics, kw.Topic)
	}
	assert.ElementsMatch(t, []string{"demo", "launch", "day"}, topics)
	for _, kw := range ranked {
		if kw.Topic == "demo" {
			assert.Equal(t, 2, kw.Engagement)
		}
	}
}

func TestExtractTruncatesToLimitAndDefaults(t *testing.T) {
	texts := []string{"alpha bravo charlie delta echo foxtrot golf"}

	assert.Len(t, NewKeywordExtractor().Extract(texts, 2), 2)
	assert.Len(t, NewKeywordExtractor().Extract(texts, 0), 5)
}

func TestExtractIsIdempotent(t *testing.T) {
	texts := []string{"pricing demo pricing", "launch demo"}

	first := NewKeywordExtractor().Extract(texts, 5)
	second := NewKeywordExtractor().Extract(texts, 5)
	assert.Equal(t, first, second)
}

func TestExtractHandlesEmptyInput(t *testing.T) {
	assert.Empty(t, NewKeywordExtractor().Extract(nil, 5))
	assert.Empty(t, NewKeywordExtractor().Extract([]string{"", "   "}, 5))
}
