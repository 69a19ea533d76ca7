// internal/service/intent/scorer.go

package intent

import (
	"fmt"
	"math"
	"math/rand"
	"sort"
	"strings"
	"time"

	ahocorasick "github.com/cloudflare/ahocorasick"

	"scrollmark/internal/domain/engagement"
	"scrollmark/internal/domain/intent"
)

// Intent keyword weights.
const (
	weightHigh   = 10
	weightMedium = 5
	weightLow    = 1
)

// Intent category names.
const (
	categoryPricing     = "Pricing Questions"
	categoryDemo        = "Demo/Purchase Intent"
	categoryIntegration = "Integration Inquiry"
	categoryFeature     = "Feature Requests"
	categorySupport     = "Support Inquiry"
	categoryGeneral     = "General Inquiry/Feedback"
)

// topSignalsLimit caps the intent signal list in the report.
const topSignalsLimit = 5

type keywordRule struct {
	keyword  string
	weight   int
	category string
}

// intentRules is the fixed weighted keyword table, in evaluation order.
// Matching is substring-based on lowercased text; each rule counts at most
// once per row, but distinct rules are never deduplicated against each
// other ("price" and "pricing" both count when "pricing" appears).
var intentRules = []keywordRule{
	{"buy", weightHigh, categoryDemo},
	{"price", weightHigh, categoryPricing},
	{"cost", weightHigh, categoryPricing},
	{"demo", weightHigh, categoryDemo},
	{"trial", weightHigh, categoryDemo},
	{"subscribe", weightHigh, categoryDemo},
	{"plan", weightHigh, ""},
	{"quote", weightHigh, categoryPricing},
	{"integrate", weightHigh, categoryIntegration},
	{"how to get", weightHigh, ""},
	{"purchase", weightHigh, categoryDemo},
	{"pricing", weightHigh, categoryPricing},
	{"feature", weightMedium, categoryFeature},
	{"solution", weightMedium, categoryFeature},
	{"problem", weightMedium, ""},
	{"help", weightMedium, categorySupport},
	{"support", weightMedium, categorySupport},
	{"learn more", weightMedium, ""},
	{"interested", weightMedium, ""},
	{"compare", weightMedium, ""},
	{"question", weightLow, categoryGeneral},
	{"feedback", weightLow, categoryGeneral},
	{"review", weightLow, categoryGeneral},
	{"thoughts", weightLow, ""},
	{"what is", weightLow, ""},
}

// Scorer applies the weighted keyword rules to engagement records and
// aggregates purchase-intent signals per post. The random source drives
// the jittered heuristic KPIs; the clock drives activity recency. Both are
// injected so tests can pin them down.
type Scorer struct {
	matcher *ahocorasick.Matcher
	rng     *rand.Rand
	now     func() time.Time
}

// NewScorer creates a scorer with the fixed keyword table compiled into an
// Aho-Corasick matcher.
func NewScorer(rng *rand.Rand, now func() time.Time) *Scorer {
	if now == nil {
		now = time.Now
	}
	keywords := make([]string, len(intentRules))
	for i, rule := range intentRules {
		keywords[i] = rule.keyword
	}
	return &Scorer{
		matcher: ahocorasick.NewStringMatcher(keywords),
		rng:     rng,
		now:     now,
	}
}

// matchRow returns the indices of rules matched in either field, sorted in
// table order. A rule present in both fields counts once. The automaton is
// only a cheap pre-filter: it reports the longest hit at a position, so a
// keyword nested inside another ("price" in "pricing") would be dropped.
// The substring scan is authoritative.
func (s *Scorer) matchRow(comment, caption string) []int {
	matched := make(map[int]struct{})
	for _, text := range []string{comment, caption} {
		if text == "" {
			continue
		}
		lowered := strings.ToLower(text)
		if len(s.matcher.Match([]byte(lowered))) == 0 {
			continue
		}
		for i, rule := range intentRules {
			if strings.Contains(lowered, rule.keyword) {
				matched[i] = struct{}{}
			}
		}
	}

	indices := make([]int, 0, len(matched))
	for i := range matched {
		indices = append(indices, i)
	}
	sort.Ints(indices)
	return indices
}

// ScoreRow sums the weights of all rules matched by a single row's comment
// and caption.
func (s *Scorer) ScoreRow(comment, caption string) int {
	var score int
	for _, i := range s.matchRow(comment, caption) {
		score += intentRules[i].weight
	}
	return score
}

// postIntent accumulates per-post aggregation state.
type postIntent struct {
	postID       string
	order        int
	maxScore     int
	matchedRules map[int]struct{}
	lastActivity *time.Time
}

// Analyze scores every record, aggregates per post, and derives the full
// buyer intent discovery report.
func (s *Scorer) Analyze(records []engagement.Record) intent.Report {
	byPost := make(map[string]*postIntent)
	var postOrder []string
	categoryCounts := make(map[string]int)
	var categoryOrder []string

	for _, record := range records {
		indices := s.matchRow(record.CommentText(), record.CaptionText())
		if len(indices) == 0 {
			continue
		}

		var rowScore int
		rowCategories := make(map[string]struct{})
		for _, i := range indices {
			rowScore += intentRules[i].weight
			if c := intentRules[i].category; c != "" {
				rowCategories[c] = struct{}{}
			}
		}

		agg, ok := byPost[record.PostID]
		if !ok {
			agg = &postIntent{
				postID:       record.PostID,
				order:        len(postOrder),
				matchedRules: make(map[int]struct{}),
			}
			byPost[record.PostID] = agg
			postOrder = append(postOrder, record.PostID)
		}
		if rowScore > agg.maxScore {
			agg.maxScore = rowScore
		}
		for _, i := range indices {
			agg.matchedRules[i] = struct{}{}
		}
		if record.Timestamp != nil {
			if agg.lastActivity == nil || record.Timestamp.After(*agg.lastActivity) {
				agg.lastActivity = record.Timestamp
			}
		}

		for _, c := range orderedCategories(rowCategories) {
			if categoryCounts[c] == 0 {
				categoryOrder = append(categoryOrder, c)
			}
			categoryCounts[c]++
		}
	}

	signals := s.buildSignals(byPost, postOrder)

	var highIntentUsers int
	for _, id := range postOrder {
		if byPost[id].maxScore >= weightHigh {
			highIntentUsers++
		}
	}
	activeProspects := len(postOrder)

	return intent.Report{
		HighIntentUsersCount:  highIntentUsers,
		PredictedRevenue:      s.predictedRevenue(highIntentUsers),
		ConversionRate:        s.conversionRate(highIntentUsers, activeProspects),
		ActiveProspects:       activeProspects,
		IntentSignals:         signals,
		ConversionPredictions: s.conversionPredictions(highIntentUsers),
		IntentCategories:      s.categories(categoryCounts, categoryOrder),
		IntentSignalTrends:    s.signalTrends(highIntentUsers),
		NextBestActions:       nextBestActions(categoryCounts, highIntentUsers),
	}
}

func (s *Scorer) buildSignals(byPost map[string]*postIntent, postOrder []string) []intent.Signal {
	signals := make([]intent.Signal, 0, len(postOrder))
	for _, id := range postOrder {
		agg := byPost[id]
		display := displayScore(agg.maxScore)
		signals = append(signals, intent.Signal{
			User:           subjectHandle(agg.postID),
			Intent:         classifyLevel(agg.maxScore),
			Score:          display,
			Signals:        signalStrings(agg.matchedRules),
			LastActivity:   s.daysSince(agg.lastActivity),
			PredictedValue: formatCurrency(display*15 + int(s.rng.Float64()*100-50)),
		})
	}

	sort.SliceStable(signals, func(i, j int) bool {
		return signals[i].Score > signals[j].Score
	})

	if len(signals) > topSignalsLimit {
		signals = signals[:topSignalsLimit]
	}
	return signals
}

// classifyLevel maps an aggregated raw score to an intent level.
func classifyLevel(score int) intent.Level {
	switch {
	case score >= 10:
		return intent.LevelHigh
	case score >= 5:
		return intent.LevelMedium
	default:
		return intent.LevelLow
	}
}

// displayScore rescales a raw keyword score to the 0-100 range shown on
// the dashboard.
func displayScore(score int) int {
	if score*5 > 100 {
		return 100
	}
	return score * 5
}

// subjectHandle renders a post identifier as a truncated user-style handle.
func subjectHandle(postID string) string {
	if len(postID) > 8 {
		postID = postID[:8]
	}
	return "@" + postID + "..."
}

func signalStrings(matchedRules map[int]struct{}) []string {
	indices := make([]int, 0, len(matchedRules))
	for i := range matchedRules {
		indices = append(indices, i)
	}
	sort.Ints(indices)

	rendered := make([]string, 0, len(indices))
	for _, i := range indices {
		rendered = append(rendered, fmt.Sprintf("Keyword: '%s'", intentRules[i].keyword))
	}
	return rendered
}

func (s *Scorer) daysSince(ts *time.Time) int {
	if ts == nil {
		return 0
	}
	days := int(s.now().Sub(*ts).Hours() / 24)
	if days < 0 {
		return 0
	}
	return days
}

func (s *Scorer) predictedRevenue(highIntentUsers int) string {
	if highIntentUsers == 0 {
		return "$0"
	}
	return formatCurrency(highIntentUsers*250 + int(s.rng.Float64()*5000))
}

func (s *Scorer) conversionRate(highIntentUsers, activeProspects int) string {
	if highIntentUsers == 0 {
		return "0%"
	}
	prospects := activeProspects
	if prospects < 1 {
		prospects = 1
	}
	rate := 25 + float64(highIntentUsers)/float64(prospects)*15 + (s.rng.Float64()*4 - 2)
	return fmt.Sprintf("%d%%", int(math.Min(100, rate)))
}

func (s *Scorer) conversionPredictions(highIntentUsers int) []intent.ConversionPrediction {
	base := 10
	if highIntentUsers > 0 {
		base = 70
	}
	users := float64(highIntentUsers)

	return []intent.ConversionPrediction{
		{
			Timeframe:   "Next 7 days",
			Probability: capInt(base+s.rng.Intn(6), 95),
			Users:       int(users * (0.1 + s.rng.Float64()*0.2)),
		},
		{
			Timeframe:   "Next 14 days",
			Probability: capInt(base-s.rng.Intn(6), 90),
			Users:       int(users * (0.3 + s.rng.Float64()*0.2)),
		},
		{
			Timeframe:   "Next 30 days",
			Probability: capInt(base-5-s.rng.Intn(6), 80),
			Users:       int(users * (0.5 + s.rng.Float64()*0.2)),
		},
		{
			Timeframe:   "Next 60 days",
			Probability: capInt(base-10-s.rng.Intn(11), 70),
			Users:       int(users * (0.7 + s.rng.Float64()*0.3)),
		},
	}
}

func (s *Scorer) categories(counts map[string]int, order []string) []intent.Category {
	sorted := append([]string(nil), order...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return counts[sorted[i]] > counts[sorted[j]]
	})

	categories := make([]intent.Category, 0, len(sorted))
	for _, name := range sorted {
		count := counts[name]
		categories = append(categories, intent.Category{
			Category: name,
			Count:    count,
			Value:    formatCurrency(int(float64(count) * (200 + s.rng.Float64()*400))),
		})
	}
	return categories
}

// signalTrends produces a short historical trend series anchored to the
// current intent volume.
func (s *Scorer) signalTrends(highIntentUsers int) []intent.TrendPoint {
	const points = 5
	base := float64(highIntentUsers) / 2
	fluctuation := float64(highIntentUsers) / 10

	date := s.now().AddDate(0, 0, -30)
	trends := make([]intent.TrendPoint, 0, points)
	for i := 0; i < points; i++ {
		value := base + (s.rng.Float64()*2-1)*fluctuation
		if value < 0 {
			value = 0
		}
		trends = append(trends, intent.TrendPoint{
			Date:  date.Format("2006-01-02"),
			Value: int(math.Round(value)),
		})
		date = date.AddDate(0, 0, 1)
	}
	return trends
}

// nextBestActions evaluates the fixed action rules top to bottom, emitting
// at most one action per rule and always at least one action overall.
func nextBestActions(categoryCounts map[string]int, highIntentUsers int) []intent.NextBestAction {
	var actions []intent.NextBestAction

	if count := categoryCounts[categoryDemo]; count > 0 {
		actions = append(actions, intent.NextBestAction{
			Action:       "Send personalized product demo",
			Users:        count,
			Priority:     "High",
			ExpectedLift: "+25-35% conversion",
		})
	}
	if count := categoryCounts[categoryPricing]; count > 0 {
		actions = append(actions, intent.NextBestAction{
			Action:       "Drop limited-time coupon",
			Users:        count,
			Priority:     "Medium",
			ExpectedLift: "+15-20% conversion",
		})
	}
	if count := categoryCounts[categoryFeature]; count > 0 {
		actions = append(actions, intent.NextBestAction{
			Action:       "Schedule feature discussion call",
			Users:        count,
			Priority:     "Medium",
			ExpectedLift: "+10-15% engagement",
		})
	}

	if len(actions) == 0 {
		if highIntentUsers > 0 {
			actions = append(actions, intent.NextBestAction{
				Action:       "Schedule general follow-up call",
				Users:        highIntentUsers,
				Priority:     "High",
				ExpectedLift: "+20-30% close rate",
			})
		} else {
			actions = append(actions, intent.NextBestAction{
				Action:       "Engage with top posts",
				Users:        0,
				Priority:     "Low",
				ExpectedLift: "+5-10% engagement",
			})
		}
	}

	return actions
}

func orderedCategories(set map[string]struct{}) []string {
	ordered := make([]string, 0, len(set))
	for _, name := range []string{
		categoryPricing, categoryDemo, categoryIntegration,
		categoryFeature, categorySupport, categoryGeneral,
	} {
		if _, ok := set[name]; ok {
			ordered = append(ordered, name)
		}
	}
	return ordered
}

func capInt(v, max int) int {
	if v > max {
		return max
	}
	return v
}

// formatCurrency renders an amount as a dollar string with thousands
// separators.
func formatCurrency(amount int) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}

	digits := fmt.Sprintf("%d", amount)
	var groups []string
	for len(digits) > 3 {
		groups = append([]string{digits[len(digits)-3:]}, groups...)
		digits = digits[:len(digits)-3]
	}
	groups = append([]string{digits}, groups...)

	return sign + "$" + strings.Join(groups, ",")
}
