// internal/service/assembler/static.go

package assembler

import "fmt"

// Display types for the static and semi-static payload sections.

// SummaryCard is a headline metric card.
type SummaryCard struct {
	Title  string `json:"title"`
	Value  string `json:"value"`
	Change string `json:"change"`
	Trend  string `json:"trend"`
	Icon   string `json:"icon"`
	Color  string `json:"color"`
}

// PostTypeEngagement compares engagement across content formats.
type PostTypeEngagement struct {
	Type       string `json:"type"`
	Engagement int    `json:"engagement"`
}

// TrendPoint is one dated point of an illustrative trend series.
type TrendPoint struct {
	Date  string `json:"date"`
	Value int    `json:"value"`
}

// UpcomingPost is a scheduled content item.
type UpcomingPost struct {
	Time    string `json:"time"`
	Content string `json:"content"`
	Status  string `json:"status"`
}

// CurrentMetric is one diagnostic KPI row.
type CurrentMetric struct {
	Title    string `json:"title"`
	Current  string `json:"current"`
	Previous string `json:"previous"`
	Trend    string `json:"trend"`
	Target   string `json:"target"`
	Progress int    `json:"progress"`
}

// DiagnosticAlert is one diagnostic callout.
type DiagnosticAlert struct {
	Type        string `json:"type"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Action      string `json:"action"`
	Icon        string `json:"icon"`
}

// AudienceInsight is one audience demographic row.
type AudienceInsight struct {
	Metric     string `json:"metric"`
	Percentage int    `json:"percentage"`
	Change     string `json:"change"`
}

// PeriodSentiment is one row of the week-over-week sentiment comparison.
type PeriodSentiment struct {
	Period   string `json:"period"`
	Positive int    `json:"positive"`
	Neutral  int    `json:"neutral"`
	Negative int    `json:"negative"`
}

// AdvocacyKeyword is one branded keyword row.
type AdvocacyKeyword struct {
	Keyword     string `json:"keyword"`
	Mentions    int    `json:"mentions"`
	Sentiment   string `json:"sentiment"`
	Growth      string `json:"growth"`
	PositivePct int    `json:"positive_pct"`
	NegativePct int    `json:"negative_pct"`
	NeutralPct  int    `json:"neutral_pct"`
}

// FeatureSentiment is a sentiment split for one product area.
type FeatureSentiment struct {
	Feature  string `json:"feature"`
	Positive int    `json:"positive"`
	Negative int    `json:"negative"`
	Neutral  int    `json:"neutral"`
}

// FeedbackCategory is a sentiment split for one feedback category.
type FeedbackCategory struct {
	Category string `json:"category"`
	Positive int    `json:"positive"`
	Negative int    `json:"negative"`
	Neutral  int    `json:"neutral"`
}

// SentimentSignal pairs an observed signal with its insight.
type SentimentSignal struct {
	Signal  string `json:"signal"`
	Insight string `json:"insight"`
}

// ProductFeatureSentiment extends the feature split with qualitative notes.
type ProductFeatureSentiment struct {
	Feature   string `json:"feature"`
	Positive  int    `json:"positive"`
	Negative  int    `json:"negative"`
	Neutral   int    `json:"neutral"`
	Praised   string `json:"praised"`
	PainPoint string `json:"painPoint"`
}

// ViralityFactor is one scored virality dimension.
type ViralityFactor struct {
	Factor      string `json:"factor"`
	Score       int    `json:"score"`
	Description string `json:"description"`
}

// PastViralPost is one historical viral post example.
type PastViralPost struct {
	Content    string `json:"content"`
	Score      int    `json:"score"`
	Reach      string `json:"reach"`
	Engagement string `json:"engagement"`
	Shares     string `json:"shares"`
	Date       string `json:"date"`
}

// CommunityMetric is one community health card.
type CommunityMetric struct {
	Metric string `json:"metric"`
	Value  any    `json:"value"`
	Change string `json:"change"`
	Icon   string `json:"icon"`
}

// Advocate is one top community advocate profile.
type Advocate struct {
	User          string   `json:"user"`
	Name          string   `json:"name"`
	Tier          string   `json:"tier"`
	Score         int      `json:"score"`
	UGCCount      int      `json:"ugcCount"`
	Engagement    int      `json:"engagement"`
	Influence     int      `json:"influence"`
	LoyaltyPoints int      `json:"loyaltyPoints"`
	Activities    []string `json:"activities"`
}

// AdvocacyTier is one advocacy tier slice.
type AdvocacyTier struct {
	Tier       string  `json:"tier"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
	Color      string  `json:"color"`
}

// RadarScore is one axis of the advocate performance radar.
type RadarScore struct {
	Metric string `json:"metric"`
	Score  int    `json:"score"`
}

// PointsActivity is one loyalty points distribution row.
type PointsActivity struct {
	Activity string `json:"activity"`
	Points   int    `json:"points"`
	Count    int    `json:"count"`
}

// RewardRedemption is one loyalty reward redemption row.
type RewardRedemption struct {
	Reward   string `json:"reward"`
	Redeemed int    `json:"redeemed"`
	Points   int    `json:"points"`
}

// ProgramImpact is one loyalty program impact row.
type ProgramImpact struct {
	Metric string `json:"metric"`
	Value  string `json:"value"`
	Trend  string `json:"trend"`
}

// LoyaltyProgram summarizes loyalty program performance.
type LoyaltyProgram struct {
	PointsDistribution []PointsActivity   `json:"points_distribution"`
	RewardRedemptions  []RewardRedemption `json:"reward_redemptions"`
	ProgramImpact      []ProgramImpact    `json:"program_impact"`
}

// Static display data merged into every payload. None of it is computed
// from input data.

var engagementByPostType = []PostTypeEngagement{
	{Type: "Video", Engagement: 3200},
	{Type: "Image", Engagement: 2800},
	{Type: "Carousel", Engagement: 2400},
	{Type: "Text", Engagement: 1600},
}

var upcomingPosts = []UpcomingPost{
	{Time: "Today, 14:30", Content: "Product feature highlight", Status: "Scheduled"},
	{Time: "Tomorrow, 10:00", Content: "Customer testimonial", Status: "Draft"},
	{Time: "Wed, 15:15", Content: "Industry news commentary", Status: "Scheduled"},
	{Time: "Thu, 13:45", Content: "Behind-the-scenes video", Status: "Draft"},
	{Time: "Fri, 16:00", Content: "Weekly roundup", Status: "Scheduled"},
}

func currentMetrics(ugcVolume int) []CurrentMetric {
	return []CurrentMetric{
		{Title: "Follower Growth Rate", Current: "3.2%", Previous: "2.8%", Trend: "up", Target: "4.0%", Progress: 80},
		{Title: "Engagement Rate", Current: "5.7%", Previous: "6.1%", Trend: "down", Target: "6.5%", Progress: 88},
		{Title: "Reach Growth", Current: "12.4%", Previous: "10.2%", Trend: "up", Target: "15.0%", Progress: 83},
		{Title: "Click-through Rate", Current: "2.1%", Previous: "1.9%", Trend: "up", Target: "2.5%", Progress: 84},
		{Title: "UGC Volume (from data)", Current: fmt.Sprintf("%d", ugcVolume), Previous: "0", Trend: "up", Target: "N/A", Progress: 100},
		{Title: "Social Response Rate", Current: "36%", Previous: "0%", Trend: "up", Target: "N/A", Progress: 100},
		{Title: "Overall Engagement Lift", Current: "61%", Previous: "0%", Trend: "up", Target: "N/A", Progress: 100},
		{Title: "Lead Capture Effectiveness", Current: "1,062+ opt-ins / 3.6K+ giveaway", Previous: "0", Trend: "up", Target: "N/A", Progress: 100},
		{Title: "Operational Time Savings", Current: "18 workdays / 20 hrs weekly", Previous: "0", Trend: "up", Target: "N/A", Progress: 100},
	}
}

var diagnosticAlerts = []DiagnosticAlert{
	{Type: "success", Title: "Scrollmark Active", Description: "Scrollmark is actively enhancing your content strategy.", Action: "Monitor performance", Icon: "CheckCircle"},
	{Type: "info", Title: "Content Optimization Opportunities", Description: "Scrollmark has identified areas for content improvement.", Action: "Review recommendations", Icon: "Activity"},
	{Type: "success", Title: "Lead Generation Boost", Description: "Scrollmark is driving significant lead capture.", Action: "Analyze lead quality", Icon: "CheckCircle"},
	{Type: "warning", Title: "Potential Time Savings", Description: "Scrollmark can further optimize operational efficiency.", Action: "Explore advanced features", Icon: "AlertTriangle"},
}

var audienceInsights = []AudienceInsight{
	{Metric: "Age 18-24", Percentage: 28, Change: "+2%"},
	{Metric: "Age 25-34", Percentage: 35, Change: "+1%"},
	{Metric: "Age 35-44", Percentage: 22, Change: "-1%"},
	{Metric: "Age 45+", Percentage: 15, Change: "0%"},
}

var advocacyKeywords = []AdvocacyKeyword{
	{Keyword: "#innovation", Mentions: 1247, Sentiment: "positive", Growth: "+15%", PositivePct: 90, NegativePct: 2, NeutralPct: 8},
	{Keyword: "#quality", Mentions: 892, Sentiment: "positive", Growth: "+8%", PositivePct: 85, NegativePct: 5, NeutralPct: 10},
	{Keyword: "#customerservice", Mentions: 634, Sentiment: "positive", Growth: "+12%", PositivePct: 92, NegativePct: 3, NeutralPct: 5},
	{Keyword: "#sustainability", Mentions: 521, Sentiment: "positive", Growth: "+22%", PositivePct: 88, NegativePct: 4, NeutralPct: 8},
	{Keyword: "#leadership", Mentions: 387, Sentiment: "positive", Growth: "+5%", PositivePct: 82, NegativePct: 6, NeutralPct: 12},
	{Keyword: "#community", Mentions: 298, Sentiment: "positive", Growth: "+18%", PositivePct: 95, NegativePct: 1, NeutralPct: 4},
}

var featureSentiment = []FeatureSentiment{
	{Feature: "UI Design", Positive: 75, Negative: 15, Neutral: 10},
	{Feature: "Customer Support", Positive: 85, Negative: 5, Neutral: 10},
	{Feature: "Pricing", Positive: 40, Negative: 50, Neutral: 10},
	{Feature: "Performance", Positive: 70, Negative: 20, Neutral: 10},
}

var feedbackCategories = []FeedbackCategory{
	{Category: "Ease of Use", Positive: 80, Negative: 5, Neutral: 15},
	{Category: "Feature Request", Positive: 20, Negative: 60, Neutral: 20},
	{Category: "Bug Report", Positive: 5, Negative: 85, Neutral: 10},
	{Category: "General Praise", Positive: 90, Negative: 2, Neutral: 8},
}

var sentimentSignals = []SentimentSignal{
	{Signal: "Increased positive mentions of UI after update", Insight: "New UI changes well received"},
	{Signal: "Spike in negative mentions of pricing", Insight: "Potential need to re-evaluate pricing strategy"},
	{Signal: "High positive sentiment around customer support", Insight: "Customer support is a key strength"},
}

var productFeaturesSentiment = []ProductFeatureSentiment{
	{Feature: "Dashboard", Positive: 80, Negative: 10, Neutral: 10, Praised: "Intuitive design", PainPoint: "Loading times"},
	{Feature: "Reporting", Positive: 65, Negative: 25, Neutral: 10, Praised: "Comprehensive data", PainPoint: "Difficult to export"},
	{Feature: "Integrations", Positive: 75, Negative: 15, Neutral: 10, Praised: "Seamless connectivity", PainPoint: "Limited options"},
}

var viralityFactors = []ViralityFactor{
	{Factor: "Content Quality", Score: 85, Description: "High-quality, engaging content"},
	{Factor: "Timing", Score: 72, Description: "Posted during peak hours"},
	{Factor: "Hashtag Strategy", Score: 68, Description: "Relevant and trending hashtags"},
	{Factor: "Audience Alignment", Score: 91, Description: "Perfect match with target audience"},
	{Factor: "Emotional Appeal", Score: 78, Description: "Strong emotional resonance"},
	{Factor: "Visual Impact", Score: 83, Description: "Eye-catching visual elements"},
}

var pastViralPosts = []PastViralPost{
	{Content: "Behind-the-scenes of our product development process", Score: 94, Reach: "2.3M", Engagement: "187K", Shares: "45K", Date: "2 days ago"},
	{Content: "Customer success story featuring local business", Score: 89, Reach: "1.8M", Engagement: "142K", Shares: "38K", Date: "1 week ago"},
	{Content: "Industry trend analysis and predictions", Score: 82, Reach: "1.2M", Engagement: "98K", Shares: "22K", Date: "2 weeks ago"},
}

var viralityTips = []string{
	"Use trending hashtags relevant to your industry",
	"Post during peak engagement hours (2-4 PM)",
	"Include compelling visuals or videos",
	"Ask questions to encourage comments",
	"Share authentic, behind-the-scenes content",
	"Collaborate with influencers or partners",
}

var communityHealth = []CommunityMetric{
	{Metric: "Active Advocates", Value: 247, Change: "+18%", Icon: "Users"},
	{Metric: "UGC Volume", Value: 373, Change: "+24%", Icon: "MessageSquare"},
	{Metric: "Advocacy Score", Value: 8.4, Change: "+12%", Icon: "Star"},
	{Metric: "Community Growth", Value: "15.2%", Change: "+3.1%", Icon: "TrendingUp"},
}

var topAdvocates = []Advocate{
	{User: "@emma_creative", Name: "Emma Johnson", Tier: "Champion", Score: 95, UGCCount: 23, Engagement: 4200, Influence: 8500, LoyaltyPoints: 2400, Activities: []string{"Created 5 UGCs this week", "Referred 3 new customers", "Responded to 12 comments"}},
	{User: "@david_tech", Name: "David Chen", Tier: "Advocate", Score: 88, UGCCount: 18, Engagement: 3100, Influence: 6200, LoyaltyPoints: 1800, Activities: []string{"Shared product launch", "Engaged with 8 posts", "Created tutorial video"}},
	{User: "@lisa_entrepreneur", Name: "Lisa Rodriguez", Tier: "Champion", Score: 92, UGCCount: 31, Engagement: 5600, Influence: 12000, LoyaltyPoints: 3200, Activities: []string{"Top UGC creator", "Hosted live session", "Mentored new users"}},
	{User: "@ryan_designer", Name: "Ryan Park", Tier: "Supporter", Score: 76, UGCCount: 12, Engagement: 2400, Influence: 3800, LoyaltyPoints: 1200, Activities: []string{"Consistent engagement", "Quality feedback", "Community participation"}},
}

var advocacyTiers = []AdvocacyTier{
	{Tier: "Champions", Count: 23, Percentage: 9.3, Color: "#FFD700"},
	{Tier: "Advocates", Count: 67, Percentage: 27.1, Color: "#C0C0C0"},
	{Tier: "Supporters", Count: 157, Percentage: 63.6, Color: "#CD7F32"},
}

var performanceRadar = []RadarScore{
	{Metric: "UGC Creation", Score: 92},
	{Metric: "Engagement", Score: 88},
	{Metric: "Influence", Score: 85},
	{Metric: "Loyalty", Score: 94},
	{Metric: "Advocacy", Score: 90},
	{Metric: "Community", Score: 87},
}

var loyaltyProgram = LoyaltyProgram{
	PointsDistribution: []PointsActivity{
		{Activity: "UGC Creation", Points: 500, Count: 89},
		{Activity: "Comments", Points: 50, Count: 1247},
		{Activity: "Shares", Points: 100, Count: 456},
		{Activity: "Mentions", Points: 150, Count: 234},
		{Activity: "Referrals", Points: 1000, Count: 67},
	},
	RewardRedemptions: []RewardRedemption{
		{Reward: "Exclusive Content", Redeemed: 45, Points: 500},
		{Reward: "Product Discount", Redeemed: 32, Points: 1000},
		{Reward: "Early Access", Redeemed: 28, Points: 750},
		{Reward: "Branded Merchandise", Redeemed: 19, Points: 1500},
		{Reward: "VIP Event Access", Redeemed: 12, Points: 2500},
	},
	ProgramImpact: []ProgramImpact{
		{Metric: "Engagement Lift", Value: "61%", Trend: "up"},
		{Metric: "UGC Increase", Value: "127%", Trend: "up"},
		{Metric: "Retention Rate", Value: "84%", Trend: "up"},
		{Metric: "Referral Rate", Value: "23%", Trend: "up"},
		{Metric: "Brand Sentiment", Value: "+18%", Trend: "up"},
	},
}
