// internal/service/assembler/assembler.go

package assembler

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"scrollmark/internal/domain/engagement"
	"scrollmark/internal/domain/intent"
	"scrollmark/internal/service/analytics"
)

// Payload is the full analytics document returned to the dashboard:
// computed sections merged with static display data.
type Payload struct {
	ReportID                  string                    `json:"report_id"`
	GeneratedAt               time.Time                 `json:"generated_at"`
	EngagementMetrics         EngagementMetrics         `json:"engagement_metrics"`
	PublishingRecommendations PublishingRecommendations `json:"publishing_recommendations"`
	DiagnosticMetrics         DiagnosticMetrics         `json:"diagnostic_metrics"`
	SentimentAnalysis         SentimentAnalysis         `json:"sentiment_analysis"`
	ViralityScore             ViralityScore             `json:"virality_score"`
	BuyerIntentDiscovery      intent.Report             `json:"buyer_intent_discovery"`
	AdvocateIdentification    AdvocateIdentification    `json:"advocate_identification"`
}

// EngagementMetrics is the computed engagement section plus its summary
// cards.
type EngagementMetrics struct {
	TotalPosts           int                       `json:"total_posts"`
	TotalComments        int                       `json:"total_comments"`
	EngagementOverTime   []engagement.DailyBucket  `json:"engagement_over_time"`
	PeakEngagementHours  []engagement.HourlyBucket `json:"peak_engagement_hours"`
	TopPerformingPosts   []engagement.PostSummary  `json:"top_performing_posts"`
	MetricsSummary       []SummaryCard             `json:"metrics_summary"`
	EngagementByPostType []PostTypeEngagement      `json:"engagement_by_post_type"`
}

// PublishingRecommendations combines posting-time analytics with generated
// recommendations and scheduling display data.
type PublishingRecommendations struct {
	BestPostingTimes   []engagement.PostingTime    `json:"best_posting_times"`
	EngagementForecast []TrendPoint                `json:"engagement_forecast"`
	TrendingTopics     []engagement.KeywordCount   `json:"trending_topics"`
	AIRecommendations  []engagement.Recommendation `json:"ai_recommendations"`
	UpcomingPosts      []UpcomingPost              `json:"upcoming_posts"`
}

// DiagnosticMetrics carries the computed UGC volume and trend series along
// with static program health cards.
type DiagnosticMetrics struct {
	UGCVolume         int                      `json:"ugc_volume"`
	PerformanceTrends []engagement.DailyBucket `json:"performance_trends"`
	CurrentMetrics    []CurrentMetric          `json:"current_metrics"`
	DiagnosticAlerts  []DiagnosticAlert        `json:"diagnostic_alerts"`
	AudienceInsights  []AudienceInsight        `json:"audience_insights"`
}

// SentimentAnalysis is the computed sentiment section plus static keyword
// and feature tables.
type SentimentAnalysis struct {
	OverallSentiment           analytics.SentimentBreakdown `json:"overall_sentiment"`
	SentimentTrends            []PeriodSentiment            `json:"sentiment_trends"`
	AdvocacyKeywords           []AdvocacyKeyword            `json:"advocacy_keywords"`
	KeywordPerformance         []engagement.KeywordCount    `json:"keyword_performance"`
	TopMentions                []engagement.Mention         `json:"top_mentions"`
	FeatureSentiment           []FeatureSentiment           `json:"feature_sentiment"`
	CustomerFeedbackCategories []FeedbackCategory           `json:"customer_feedback_categories"`
	SentimentSignals           []SentimentSignal            `json:"sentiment_signals"`
	ProductFeaturesSentiment   []ProductFeatureSentiment    `json:"product_features_sentiment"`
}

// ViralityScore is the heuristic virality section.
type ViralityScore struct {
	Value          int              `json:"virality_score_value"`
	Factors        []ViralityFactor `json:"virality_factors"`
	PastViralPosts []PastViralPost  `json:"past_viral_posts"`
	Trends         []TrendPoint     `json:"virality_trends"`
	Tips           []string         `json:"virality_tips"`
}

// AdvocateIdentification is the community/advocacy display block.
type AdvocateIdentification struct {
	CommunityHealth  []CommunityMetric `json:"community_health"`
	TopAdvocates     []Advocate        `json:"top_advocates"`
	AdvocacyTiers    []AdvocacyTier    `json:"advocacy_tiers"`
	UGCPerformance   []TrendPoint      `json:"ugc_performance"`
	PerformanceRadar []RadarScore      `json:"advocate_performance_radar"`
	LoyaltyProgram   LoyaltyProgram    `json:"loyalty_program_performance"`
}

// Assembler merges a computed analytics report with the static display
// sections into the final dashboard payload. Display-only deltas are drawn
// from the injected random source.
type Assembler struct {
	rng *rand.Rand
	now func() time.Time
}

// New creates an assembler.
func New(rng *rand.Rand, now func() time.Time) *Assembler {
	if now == nil {
		now = time.Now
	}
	return &Assembler{rng: rng, now: now}
}

// Assemble builds the full payload from a computed report.
func (a *Assembler) Assemble(report *analytics.Report) Payload {
	return Payload{
		ReportID:    uuid.New().String(),
		GeneratedAt: a.now().UTC(),
		EngagementMetrics: EngagementMetrics{
			TotalPosts:           report.TotalPosts,
			TotalComments:        report.TotalComments,
			EngagementOverTime:   report.EngagementOverTime,
			PeakEngagementHours:  report.PeakEngagementHours,
			TopPerformingPosts:   report.TopPerformingPosts,
			MetricsSummary:       a.metricsSummary(report),
			EngagementByPostType: engagementByPostType,
		},
		PublishingRecommendations: PublishingRecommendations{
			BestPostingTimes:   report.BestPostingTimes,
			EngagementForecast: a.mockTrends(a.now(), 7, 1500, 500),
			TrendingTopics:     report.TrendingTopics,
			AIRecommendations:  report.Recommendations,
			UpcomingPosts:      upcomingPosts,
		},
		DiagnosticMetrics: DiagnosticMetrics{
			UGCVolume:         report.TotalComments,
			PerformanceTrends: report.EngagementOverTime,
			CurrentMetrics:    currentMetrics(report.TotalComments),
			DiagnosticAlerts:  diagnosticAlerts,
			AudienceInsights:  audienceInsights,
		},
		SentimentAnalysis: SentimentAnalysis{
			OverallSentiment:           report.Sentiment,
			SentimentTrends:            sentimentTrends(report.Sentiment),
			AdvocacyKeywords:           advocacyKeywords,
			KeywordPerformance:         report.TrendingTopics,
			TopMentions:                report.TopMentions,
			FeatureSentiment:           featureSentiment,
			CustomerFeedbackCategories: feedbackCategories,
			SentimentSignals:           sentimentSignals,
			ProductFeaturesSentiment:   productFeaturesSentiment,
		},
		ViralityScore:          a.viralityScore(report),
		BuyerIntentDiscovery:   report.BuyerIntent,
		AdvocateIdentification: a.advocateIdentification(),
	}
}

func (a *Assembler) metricsSummary(report *analytics.Report) []SummaryCard {
	totalEngagement := report.TotalComments + report.TotalPosts*5
	return []SummaryCard{
		{
			Title:  "Total Engagement",
			Value:  fmt.Sprintf("%d", totalEngagement),
			Change: fmt.Sprintf("+%.1f%%", 5+a.rng.Float64()*15),
			Trend:  "up",
			Icon:   "Heart",
			Color:  "text-red-500",
		},
		{
			Title:  "Comments",
			Value:  fmt.Sprintf("%d", report.TotalComments),
			Change: fmt.Sprintf("+%.1f%%", 5+a.rng.Float64()*15),
			Trend:  "up",
			Icon:   "MessageCircle",
			Color:  "text-blue-500",
		},
		{
			Title:  "Shares",
			Value:  fmt.Sprintf("%dK", 10+a.rng.Intn(41)),
			Change: fmt.Sprintf("-%.1f%%", 1+a.rng.Float64()*4),
			Trend:  "down",
			Icon:   "Share",
			Color:  "text-green-500",
		},
		{
			Title:  "Reach",
			Value:  fmt.Sprintf("%dK", 500+a.rng.Intn(1001)),
			Change: fmt.Sprintf("+%.1f%%", 10+a.rng.Float64()*15),
			Trend:  "up",
			Icon:   "Eye",
			Color:  "text-purple-500",
		},
	}
}

// viralityScore derives the heuristic score from overall volume, clamped
// to a 60-100 display range.
func (a *Assembler) viralityScore(report *analytics.Report) ViralityScore {
	value := (report.TotalComments + report.TotalPosts*5) / 100
	if value > 100 {
		value = 100
	}
	if value < 60 {
		value = 60
	}

	return ViralityScore{
		Value:          value,
		Factors:        viralityFactors,
		PastViralPosts: pastViralPosts,
		Trends:         a.mockTrends(a.now().AddDate(0, 0, -180), 6, float64(value), 10),
		Tips:           viralityTips,
	}
}

func (a *Assembler) advocateIdentification() AdvocateIdentification {
	return AdvocateIdentification{
		CommunityHealth:  communityHealth,
		TopAdvocates:     topAdvocates,
		AdvocacyTiers:    advocacyTiers,
		UGCPerformance:   a.mockTrends(a.now().AddDate(0, 0, -150), 5, 150, 50),
		PerformanceRadar: performanceRadar,
		LoyaltyProgram:   loyaltyProgram,
	}
}

// sentimentTrends fans the computed percentages out into the fixed weekly
// comparison rows the dashboard charts.
func sentimentTrends(current analytics.SentimentBreakdown) []PeriodSentiment {
	return []PeriodSentiment{
		{Period: "This Week", Positive: current.Positive, Neutral: current.Neutral, Negative: current.Negative},
		{Period: "Last Week", Positive: floor0(current.Positive - 5), Neutral: current.Neutral + 2, Negative: current.Negative + 3},
		{Period: "2 Weeks Ago", Positive: floor0(current.Positive - 2), Neutral: current.Neutral + 1, Negative: current.Negative + 1},
		{Period: "3 Weeks Ago", Positive: floor0(current.Positive - 7), Neutral: current.Neutral + 4, Negative: current.Negative + 3},
	}
}

// mockTrends generates an illustrative daily trend series around a base
// value.
func (a *Assembler) mockTrends(start time.Time, points int, base, fluctuation float64) []TrendPoint {
	trends := make([]TrendPoint, 0, points)
	date := start
	for i := 0; i < points; i++ {
		value := base + (a.rng.Float64()*2-1)*fluctuation
		if value < 0 {
			value = 0
		}
		trends = append(trends, TrendPoint{
			Date:  date.Format("2006-01-02"),
			Value: int(math.Round(value)),
		})
		date = date.AddDate(0, 0, 1)
	}
	return trends
}

func floor0(v int) int {
	if v < 0 {
		return 0
	}
	return v
}
