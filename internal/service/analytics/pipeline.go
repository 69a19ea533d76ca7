// internal/service/analytics/pipeline.go

package analytics

import (
	"context"
	"math/rand"
	"strings"

	"github.com/sirupsen/logrus"

	"scrollmark/internal/domain/engagement"
	intentservice "scrollmark/internal/service/intent"
)

// topMentionsLimit caps the sampled mentions list.
const topMentionsLimit = 5

// mentionPlatforms is the fixed platform enumeration attached to sampled
// mentions.
var mentionPlatforms = []string{"Twitter", "Instagram", "Facebook", "LinkedIn"}

// Pipeline runs the full engagement and intent analysis over a batch of
// normalized records. It is a pure function of its inputs apart from the
// capability adapters, which hold process-wide read-only handles, and the
// injected random source.
type Pipeline struct {
	aggregator  *Aggregator
	extractor   *KeywordExtractor
	sentiment   *SentimentAnalyzer
	recommender *Recommender
	scorer      *intentservice.Scorer
	rng         *rand.Rand
	topKeywords int
	logger      *logrus.Logger
}

// NewPipeline wires the analysis stages together. topKeywords <= 0 selects
// the default ranking size.
func NewPipeline(
	sentiment *SentimentAnalyzer,
	recommender *Recommender,
	scorer *intentservice.Scorer,
	rng *rand.Rand,
	topKeywords int,
	logger *logrus.Logger,
) *Pipeline {
	if topKeywords <= 0 {
		topKeywords = defaultTopKeywords
	}
	return &Pipeline{
		aggregator:  NewAggregator(),
		extractor:   NewKeywordExtractor(),
		sentiment:   sentiment,
		recommender: recommender,
		scorer:      scorer,
		rng:         rng,
		topKeywords: topKeywords,
		logger:      logger,
	}
}

// Analyze derives the full computed report for one batch of records.
func (p *Pipeline) Analyze(ctx context.Context, records []engagement.Record) *Report {
	report := &Report{
		TotalPosts:          p.aggregator.TotalPosts(records),
		TotalComments:       p.aggregator.TotalComments(records),
		EngagementOverTime:  p.aggregator.EngagementOverTime(records),
		PeakEngagementHours: p.aggregator.PeakEngagementHours(records),
		BestPostingTimes:    p.aggregator.BestPostingTimes(records),
		TopPerformingPosts:  p.aggregator.TopPerformingPosts(records),
	}
	p.logger.WithFields(logrus.Fields{
		"posts":    report.TotalPosts,
		"comments": report.TotalComments,
	}).Debug("engagement aggregation complete")

	texts := analysisTexts(records)

	report.TrendingTopics = p.trendingTopics(texts)

	counts := p.sentiment.Count(ctx, texts)
	positive, neutral, negative := counts.Percentages()
	report.Sentiment = SentimentBreakdown{
		Positive: positive,
		Neutral:  neutral,
		Negative: negative,
		Overall:  counts.OverallLabel(),
	}
	report.TopMentions = p.topMentions(ctx, texts)
	p.logger.WithField("analyzed_texts", counts.Total()).Debug("sentiment analysis complete")

	report.BuyerIntent = p.scorer.Analyze(records)
	p.logger.WithFields(logrus.Fields{
		"high_intent_users": report.BuyerIntent.HighIntentUsersCount,
		"active_prospects":  report.BuyerIntent.ActiveProspects,
	}).Debug("buyer intent analysis complete")

	report.Recommendations = p.recommender.Recommend(ctx, RecommendationInput{
		TotalPosts:       report.TotalPosts,
		TotalComments:    report.TotalComments,
		TopCaptions:      topCaptions(report.TopPerformingPosts),
		OverallSentiment: report.Sentiment.Overall,
	})

	return report
}

// analysisTexts collects the free text fed into keyword and sentiment
// analysis: all present comments first, then all present captions.
// Whitespace-only values stay in the set; they classify as neutral and
// keep the sentiment denominator and topic corpus aligned with the rows.
func analysisTexts(records []engagement.Record) []string {
	var texts []string
	for _, r := range records {
		if r.Comment != nil && *r.Comment != "" {
			texts = append(texts, *r.Comment)
		}
	}
	for _, r := range records {
		if r.Caption != nil && *r.Caption != "" {
			texts = append(texts, *r.Caption)
		}
	}
	return texts
}

// trendingTopics rescales raw keyword counts into a percentage of the
// analyzed corpus size for display.
func (p *Pipeline) trendingTopics(texts []string) []engagement.KeywordCount {
	topics := p.extractor.Extract(texts, p.topKeywords)

	corpus := len(texts)
	if corpus < 1 {
		corpus = 1
	}
	for i := range topics {
		topics[i].Engagement = topics[i].Engagement * 100 / corpus
	}
	return topics
}

// topMentions samples up to five analyzed texts without replacement and
// attaches their classified sentiment.
func (p *Pipeline) topMentions(ctx context.Context, texts []string) []engagement.Mention {
	limit := topMentionsLimit
	if len(texts) < limit {
		limit = len(texts)
	}

	mentions := make([]engagement.Mention, 0, limit)
	for _, i := range p.rng.Perm(len(texts))[:limit] {
		mentions = append(mentions, engagement.Mention{
			Text:       texts[i],
			Sentiment:  p.sentiment.Tone(ctx, texts[i]),
			Engagement: 50 + p.rng.Intn(451),
			Platform:   mentionPlatforms[p.rng.Intn(len(mentionPlatforms))],
		})
	}
	return mentions
}

func topCaptions(posts []engagement.PostSummary) []string {
	var captions []string
	for _, post := range posts {
		if len(captions) == 2 {
			break
		}
		if post.Caption != nil && strings.TrimSpace(*post.Caption) != "" {
			captions = append(captions, *post.Caption)
			continue
		}
		captions = append(captions, post.PostID)
	}
	return captions
}
