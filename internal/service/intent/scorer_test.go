package intent

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scrollmark/internal/domain/engagement"
	"scrollmark/internal/domain/intent"
)

func fixedNow() time.Time {
	return time.Date(2024, 1, 10, 12, 0, 0, 0, time.UTC)
}

func newTestScorer() *Scorer {
	return NewScorer(rand.New(rand.NewSource(42)), fixedNow)
}

func record(postID, comment, caption string, ts *time.Time) engagement.Record {
	r := engagement.Record{PostID: postID, Timestamp: ts}
	if comment != "" {
		r.Comment = &comment
	}
	if caption != "" {
		r.Caption = &caption
	}
	return r
}

func TestScoreRowSumsMatchedKeywordWeights(t *testing.T) {
	scorer := newTestScorer()

	// "price" alone is a single high-weight match.
	assert.Equal(t, 10, scorer.ScoreRow("great price!", ""))

	// "pricing" also contains "price", and "what is" adds a low-weight
	// match; distinct keywords are never deduplicated against each other.
	assert.Equal(t, 21, scorer.ScoreRow("what is your pricing", ""))

	// Medium-weight keyword.
	assert.Equal(t, 5, scorer.ScoreRow("love this feature", ""))

	assert.Equal(t, 0, scorer.ScoreRow("beautiful sunset", ""))
}

func TestScoreRowCreditsKeywordNestedInLongerMatch(t *testing.T) {
	scorer := newTestScorer()

	// "pricing" contains "price"; both rules score even though the longer
	// keyword covers the only occurrence of the shorter one.
	assert.Equal(t, 20, scorer.ScoreRow("pricing", ""))

	report := scorer.Analyze([]engagement.Record{
		record("p1", "what is your pricing", "", nil),
	})
	require.Len(t, report.IntentSignals, 1)
	signal := report.IntentSignals[0]
	assert.Equal(t, 100, signal.Score)
	assert.Contains(t, signal.Signals, "Keyword: 'price'")
	assert.Contains(t, signal.Signals, "Keyword: 'pricing'")
	assert.Contains(t, signal.Signals, "Keyword: 'what is'")
}

func TestScoreRowCountsKeywordOncePerRowAcrossFields(t *testing.T) {
	scorer := newTestScorer()
	assert.Equal(t, 10, scorer.ScoreRow("need a demo", "demo day announcement"))
}

func TestAnalyzeAggregatesMaxScorePerPost(t *testing.T) {
	scorer := newTestScorer()
	ts1 := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
	ts2 := time.Date(2024, 1, 5, 10, 0, 0, 0, time.UTC)

	report := scorer.Analyze([]engagement.Record{
		record("p1", "any feedback?", "", &ts1),
		record("p1", "what is the cost of a demo", "", &ts2),
		record("p2", "love this feature", "", &ts1),
	})

	require.Len(t, report.IntentSignals, 2)

	// p1's best row matches cost (10) + demo (10) + what is (1) = 21.
	top := report.IntentSignals[0]
	assert.Equal(t, "@p1...", top.User)
	assert.Equal(t, intent.LevelHigh, top.Intent)
	assert.Equal(t, 100, top.Score)
	assert.Contains(t, top.Signals, "Keyword: 'cost'")
	assert.Contains(t, top.Signals, "Keyword: 'demo'")
	assert.Contains(t, top.Signals, "Keyword: 'feedback'")
	assert.Equal(t, 5, top.LastActivity)

	second := report.IntentSignals[1]
	assert.Equal(t, "@p2...", second.User)
	assert.Equal(t, intent.LevelMedium, second.Intent)
	assert.Equal(t, 25, second.Score)

	assert.Equal(t, 1, report.HighIntentUsersCount)
	assert.Equal(t, 2, report.ActiveProspects)
}

func TestAnalyzeEndToEndScenario(t *testing.T) {
	scorer := newTestScorer()
	ts := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)

	report := scorer.Analyze([]engagement.Record{
		record("p1", "great price!", "", &ts),
		record("p1", "", "", nil),
	})

	require.Len(t, report.IntentSignals, 1)
	signal := report.IntentSignals[0]
	assert.Contains(t, signal.User, "p1")
	assert.Equal(t, intent.LevelHigh, signal.Intent)
	assert.Equal(t, []string{"Keyword: 'price'"}, signal.Signals)
	assert.Equal(t, 50, signal.Score)
}

func TestAnalyzeDerivesCategories(t *testing.T) {
	scorer := newTestScorer()

	report := scorer.Analyze([]engagement.Record{
		record("p1", "what is your pricing", "", nil),
		record("p2", "how much does it cost", "", nil),
		record("p3", "book me a demo", "", nil),
	})

	require.Len(t, report.IntentCategories, 2)
	assert.Equal(t, "Pricing Questions", report.IntentCategories[0].Category)
	assert.Equal(t, 2, report.IntentCategories[0].Count)
	assert.Equal(t, "Demo/Purchase Intent", report.IntentCategories[1].Category)
	assert.Equal(t, 1, report.IntentCategories[1].Count)
}

func TestAnalyzeTruncatesSignalsToTopFive(t *testing.T) {
	scorer := newTestScorer()

	records := []engagement.Record{
		record("p1", "buy now", "", nil),
		record("p2", "price?", "", nil),
		record("p3", "need support", "", nil),
		record("p4", "any feedback", "", nil),
		record("p5", "demo please", "", nil),
		record("p6", "what is this", "", nil),
		record("p7", "trial access", "", nil),
	}

	report := scorer.Analyze(records)
	assert.Len(t, report.IntentSignals, 5)
	assert.Equal(t, 7, report.ActiveProspects)
	for i := 1; i < len(report.IntentSignals); i++ {
		assert.GreaterOrEqual(t, report.IntentSignals[i-1].Score, report.IntentSignals[i].Score)
	}
}

func TestNextBestActionsFollowFixedRuleOrder(t *testing.T) {
	scorer := newTestScorer()

	report := scorer.Analyze([]engagement.Record{
		record("p1", "send me a demo and your pricing", "", nil),
		record("p2", "missing a feature", "", nil),
	})

	require.Len(t, report.NextBestActions, 3)
	assert.Equal(t, "Send personalized product demo", report.NextBestActions[0].Action)
	assert.Equal(t, "High", report.NextBestActions[0].Priority)
	assert.Equal(t, "Drop limited-time coupon", report.NextBestActions[1].Action)
	assert.Equal(t, "Schedule feature discussion call", report.NextBestActions[2].Action)
}

func TestNextBestActionsGenericFollowUpWhenNoCategoryFires(t *testing.T) {
	scorer := newTestScorer()

	// "how to get" and "plan" are high-weight but carry no category.
	report := scorer.Analyze([]engagement.Record{
		record("p1", "how to get on the enterprise plan", "", nil),
	})

	assert.Equal(t, 1, report.HighIntentUsersCount)
	require.Len(t, report.NextBestActions, 1)
	assert.Equal(t, "Schedule general follow-up call", report.NextBestActions[0].Action)
	assert.Equal(t, 1, report.NextBestActions[0].Users)
}

func TestAnalyzeEmptyIntentYieldsGenericEngagementAction(t *testing.T) {
	scorer := newTestScorer()

	report := scorer.Analyze([]engagement.Record{
		record("p1", "beautiful sunset", "", nil),
	})

	assert.Zero(t, report.HighIntentUsersCount)
	assert.Zero(t, report.ActiveProspects)
	assert.Empty(t, report.IntentSignals)
	assert.Equal(t, "$0", report.PredictedRevenue)
	assert.Equal(t, "0%", report.ConversionRate)
	require.Len(t, report.NextBestActions, 1)
	assert.Equal(t, "Engage with top posts", report.NextBestActions[0].Action)
	assert.Equal(t, "Low", report.NextBestActions[0].Priority)
}

func TestAnalyzeKPIsStayInBounds(t *testing.T) {
	scorer := newTestScorer()

	report := scorer.Analyze([]engagement.Record{
		record("p1", "buy buy buy, price and pricing and cost", "", nil),
		record("p2", "subscribe to a trial demo", "", nil),
	})

	assert.Equal(t, 2, report.HighIntentUsersCount)
	assert.NotEqual(t, "$0", report.PredictedRevenue)

	require.Len(t, report.ConversionPredictions, 4)
	caps := []int{95, 90, 80, 70}
	for i, prediction := range report.ConversionPredictions {
		assert.LessOrEqual(t, prediction.Probability, caps[i])
		assert.GreaterOrEqual(t, prediction.Users, 0)
		assert.LessOrEqual(t, prediction.Users, report.HighIntentUsersCount)
	}

	require.Len(t, report.IntentSignalTrends, 5)
	for _, point := range report.IntentSignalTrends {
		assert.GreaterOrEqual(t, point.Value, 0)
	}
}

func TestFormatCurrency(t *testing.T) {
	assert.Equal(t, "$0", formatCurrency(0))
	assert.Equal(t, "$999", formatCurrency(999))
	assert.Equal(t, "$1,234", formatCurrency(1234))
	assert.Equal(t, "$1,234,567", formatCurrency(1234567))
	assert.Equal(t, "-$1,050", formatCurrency(-1050))
}
