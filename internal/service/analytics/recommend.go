// internal/service/analytics/recommend.go

package analytics

import (
	"context"
	"fmt"
	"math/rand"
	"strings"

	"scrollmark/internal/domain/capability"
	"scrollmark/internal/domain/engagement"
)

// maxRecommendations caps the number of cards parsed out of generated text.
const maxRecommendations = 3

// defaultGenerationTokens bounds the generation capability's output length.
const defaultGenerationTokens = 150

// promptCue is the trailing line of the prompt; an echo of it in the
// generated text is not a recommendation.
const promptCue = "Recommendations:"

// placeholderDescription fills in when a generated line has no
// title/description separator.
const placeholderDescription = "No specific description provided by AI."

// Display attributes assigned to generated cards.
var (
	recommendationPriorities = []string{"High", "Medium", "Low"}
	recommendationIcons      = []string{"Clock", "Target", "Lightbulb", "Wand2", "Calendar"}
	recommendationColors     = []string{"text-blue-500", "text-green-500", "text-orange-500", "text-teal-500", "text-purple-500"}
)

// RecommendationInput carries the summary statistics embedded into the
// generation prompt.
type RecommendationInput struct {
	TotalPosts       int
	TotalComments    int
	TopCaptions      []string
	OverallSentiment string
}

// Recommender wraps a pluggable text generation capability, parsing its
// free-form output into structured recommendation cards. A nil generator,
// a failed call, or unusable output all yield the same deterministic
// fallback cards; the fallback is computed inline and never re-enters the
// generation path.
type Recommender struct {
	generator capability.TextGenerator
	rng       *rand.Rand
	maxTokens int
}

// NewRecommender creates a recommender around the given generator handle.
// maxTokens <= 0 selects the default of 150.
func NewRecommender(generator capability.TextGenerator, rng *rand.Rand, maxTokens int) *Recommender {
	if maxTokens <= 0 {
		maxTokens = defaultGenerationTokens
	}
	return &Recommender{generator: generator, rng: rng, maxTokens: maxTokens}
}

// Available reports whether a generation capability is configured.
func (r *Recommender) Available() bool {
	return r.generator != nil
}

// Recommend produces up to three recommendation cards for the given
// summary statistics.
func (r *Recommender) Recommend(ctx context.Context, input RecommendationInput) []engagement.Recommendation {
	if r.generator == nil {
		return fallbackRecommendations()
	}

	text, err := r.generator.Generate(ctx, buildPrompt(input), r.maxTokens)
	if err != nil {
		return fallbackRecommendations()
	}

	cards := r.parse(text)
	if len(cards) == 0 {
		return fallbackRecommendations()
	}
	return cards
}

func buildPrompt(input RecommendationInput) string {
	captions := input.TopCaptions
	if len(captions) > 2 {
		captions = captions[:2]
	}

	var b strings.Builder
	b.WriteString("Based on the following social media analytics data, provide 3 actionable recommendations to improve engagement and reach:\n")
	fmt.Fprintf(&b, "Total Posts: %d\n", input.TotalPosts)
	fmt.Fprintf(&b, "Total Comments: %d\n", input.TotalComments)
	fmt.Fprintf(&b, "Top Performing Posts (by comments): %s\n", strings.Join(captions, ", "))
	fmt.Fprintf(&b, "Overall Sentiment: %s\n\n", input.OverallSentiment)
	b.WriteString(promptCue)
	b.WriteString("\n")
	return b.String()
}

func (r *Recommender) parse(text string) []engagement.Recommendation {
	var cards []engagement.Recommendation
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, promptCue) {
			continue
		}

		title := line
		description := placeholderDescription
		if i := strings.Index(line, ":"); i >= 0 {
			title = strings.TrimSpace(line[:i])
			description = strings.TrimSpace(line[i+1:])
		}

		cards = append(cards, engagement.Recommendation{
			Type:        "AI Insight",
			Title:       title,
			Description: description,
			Priority:    pick(r.rng, recommendationPriorities),
			Icon:        pick(r.rng, recommendationIcons),
			Color:       pick(r.rng, recommendationColors),
			Action:      fmt.Sprintf("Implement '%s'", title),
		})
		if len(cards) >= maxRecommendations {
			break
		}
	}
	return cards
}

func pick(rng *rand.Rand, options []string) string {
	return options[rng.Intn(len(options))]
}

// fallbackRecommendations is the deterministic substitute used whenever
// the generation capability is unavailable or unusable.
func fallbackRecommendations() []engagement.Recommendation {
	return []engagement.Recommendation{
		{
			Type:        "Optimal Timing",
			Title:       "Post between 2-4 PM on weekdays",
			Description: "Schedule posts for peak audience activity to maximize visibility.",
			Priority:    "High",
			Icon:        "Clock",
			Color:       "text-blue-500",
			Action:      "Schedule post for 3:00 PM today",
		},
		{
			Type:        "Content Type",
			Title:       "Incorporate short-form video content",
			Description: "Short videos generate 2.3x more engagement than images. Use trending audio.",
			Priority:    "Medium",
			Icon:        "Target",
			Color:       "text-green-500",
			Action:      "Create a TikTok-style video about a recent product update",
		},
	}
}
