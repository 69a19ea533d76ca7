// internal/service/analytics/report.go

package analytics

import (
	"scrollmark/internal/domain/engagement"
	"scrollmark/internal/domain/intent"
)

// SentimentBreakdown is the overall sentiment section of the report.
type SentimentBreakdown struct {
	Positive int    `json:"positive"`
	Neutral  int    `json:"neutral"`
	Negative int    `json:"negative"`
	Overall  string `json:"overall"`
}

// Report holds every section computed from the input data. The assembler
// merges it with static display data into the dashboard payload.
type Report struct {
	TotalPosts          int
	TotalComments       int
	EngagementOverTime  []engagement.DailyBucket
	PeakEngagementHours []engagement.HourlyBucket
	BestPostingTimes    []engagement.PostingTime
	TopPerformingPosts  []engagement.PostSummary
	TrendingTopics      []engagement.KeywordCount
	Sentiment           SentimentBreakdown
	TopMentions         []engagement.Mention
	Recommendations     []engagement.Recommendation
	BuyerIntent         intent.Report
}
