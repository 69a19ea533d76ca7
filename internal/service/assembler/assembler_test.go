package assembler

import (
	"math/rand"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scrollmark/internal/service/analytics"
)

func newTestAssembler() *Assembler {
	rng := rand.New(rand.NewSource(11))
	now := func() time.Time { return time.Date(2024, 2, 1, 12, 0, 0, 0, time.UTC) }
	return New(rng, now)
}

func TestAssembleMergesComputedSections(t *testing.T) {
	report := &analytics.Report{
		TotalPosts:    3,
		TotalComments: 12,
		Sentiment: analytics.SentimentBreakdown{
			Positive: 50, Neutral: 30, Negative: 20, Overall: "Positive",
		},
	}

	payload := newTestAssembler().Assemble(report)

	_, err := uuid.Parse(payload.ReportID)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 2, 1, 12, 0, 0, 0, time.UTC), payload.GeneratedAt)

	assert.Equal(t, 3, payload.EngagementMetrics.TotalPosts)
	assert.Equal(t, 12, payload.EngagementMetrics.TotalComments)
	assert.Equal(t, 12, payload.DiagnosticMetrics.UGCVolume)
	assert.Equal(t, report.Sentiment, payload.SentimentAnalysis.OverallSentiment)
	assert.Equal(t, report.BuyerIntent, payload.BuyerIntentDiscovery)
}

func TestAssembleUniqueReportIDs(t *testing.T) {
	assembler := newTestAssembler()
	report := &analytics.Report{}

	first := assembler.Assemble(report)
	second := assembler.Assemble(report)
	assert.NotEqual(t, first.ReportID, second.ReportID)
}

func TestMetricsSummaryReflectsTotals(t *testing.T) {
	report := &analytics.Report{TotalPosts: 2, TotalComments: 7}

	cards := newTestAssembler().metricsSummary(report)

	require.Len(t, cards, 4)
	assert.Equal(t, "Total Engagement", cards[0].Title)
	assert.Equal(t, "17", cards[0].Value)
	assert.Equal(t, "Comments", cards[1].Title)
	assert.Equal(t, "7", cards[1].Value)
}

func TestViralityScoreClamped(t *testing.T) {
	assembler := newTestAssembler()

	low := assembler.viralityScore(&analytics.Report{TotalPosts: 1, TotalComments: 1})
	assert.Equal(t, 60, low.Value)

	high := assembler.viralityScore(&analytics.Report{TotalPosts: 5000, TotalComments: 0})
	assert.Equal(t, 100, high.Value)

	mid := assembler.viralityScore(&analytics.Report{TotalPosts: 1000, TotalComments: 2500})
	assert.Equal(t, 75, mid.Value)
}

func TestSentimentTrendsDerivedFromCurrent(t *testing.T) {
	trends := sentimentTrends(analytics.SentimentBreakdown{Positive: 4, Neutral: 90, Negative: 6})

	require.Len(t, trends, 4)
	assert.Equal(t, "This Week", trends[0].Period)
	assert.Equal(t, 4, trends[0].Positive)
	// Derived rows never go below zero.
	assert.Equal(t, 0, trends[1].Positive)
	assert.Equal(t, 92, trends[1].Neutral)
}

func TestMockTrendsSpanRequestedRange(t *testing.T) {
	start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	trends := newTestAssembler().mockTrends(start, 7, 1500, 500)

	require.Len(t, trends, 7)
	assert.Equal(t, "2024-03-01", trends[0].Date)
	assert.Equal(t, "2024-03-07", trends[6].Date)
	for _, point := range trends {
		assert.GreaterOrEqual(t, point.Value, 1000)
		assert.LessOrEqual(t, point.Value, 2000)
	}
}

func TestStaticSectionsPresent(t *testing.T) {
	payload := newTestAssembler().Assemble(&analytics.Report{})

	assert.NotEmpty(t, payload.EngagementMetrics.EngagementByPostType)
	assert.NotEmpty(t, payload.PublishingRecommendations.UpcomingPosts)
	assert.NotEmpty(t, payload.DiagnosticMetrics.DiagnosticAlerts)
	assert.NotEmpty(t, payload.SentimentAnalysis.AdvocacyKeywords)
	assert.NotEmpty(t, payload.ViralityScore.Tips)
	assert.NotEmpty(t, payload.AdvocateIdentification.TopAdvocates)
	assert.NotEmpty(t, payload.AdvocateIdentification.LoyaltyProgram.PointsDistribution)
	assert.Len(t, payload.PublishingRecommendations.EngagementForecast, 7)
	assert.Len(t, payload.ViralityScore.Trends, 6)
	assert.Len(t, payload.AdvocateIdentification.UGCPerformance, 5)
}
