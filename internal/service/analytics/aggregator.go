// internal/service/analytics/aggregator.go

package analytics

import (
	"fmt"
	"sort"

	"scrollmark/internal/domain/engagement"
)

// topPostsLimit caps the top-performing-posts ranking.
const topPostsLimit = 5

// Aggregator derives time-bucketed and per-post engagement aggregates from
// normalized records.
type Aggregator struct{}

// NewAggregator creates a new aggregator.
func NewAggregator() *Aggregator {
	return &Aggregator{}
}

// TotalPosts counts distinct post identifiers across all records.
func (a *Aggregator) TotalPosts(records []engagement.Record) int {
	seen := make(map[string]struct{}, len(records))
	for _, r := range records {
		seen[r.PostID] = struct{}{}
	}
	return len(seen)
}

// TotalComments counts records whose trimmed comment text is non-empty.
func (a *Aggregator) TotalComments(records []engagement.Record) int {
	var total int
	for _, r := range records {
		if r.HasComment() {
			total++
		}
	}
	return total
}

// EngagementOverTime groups records with a valid timestamp by calendar date
// and counts distinct posts and non-empty comments per date. Records
// without a timestamp are skipped; when none carry one the result is empty,
// never an error.
func (a *Aggregator) EngagementOverTime(records []engagement.Record) []engagement.DailyBucket {
	posts := make(map[string]map[string]struct{})
	comments := make(map[string]int)

	for _, r := range records {
		if r.Timestamp == nil {
			continue
		}
		date := r.Timestamp.Format("2006-01-02")
		if posts[date] == nil {
			posts[date] = make(map[string]struct{})
		}
		posts[date][r.PostID] = struct{}{}
		if r.HasComment() {
			comments[date]++
		}
	}

	dates := make([]string, 0, len(posts))
	for date := range posts {
		dates = append(dates, date)
	}
	sort.Strings(dates)

	buckets := make([]engagement.DailyBucket, 0, len(dates))
	for _, date := range dates {
		buckets = append(buckets, engagement.DailyBucket{
			Date:     date,
			Posts:    len(posts[date]),
			Comments: comments[date],
		})
	}
	return buckets
}

// PeakEngagementHours groups records with a valid timestamp by hour of day
// and counts rows per hour.
func (a *Aggregator) PeakEngagementHours(records []engagement.Record) []engagement.HourlyBucket {
	counts := hourlyActivity(records)

	buckets := make([]engagement.HourlyBucket, 0, len(counts))
	for hour := 0; hour < 24; hour++ {
		if count, ok := counts[hour]; ok {
			buckets = append(buckets, engagement.HourlyBucket{
				Hour:     fmt.Sprintf("%02d:00", hour),
				Activity: count,
			})
		}
	}
	return buckets
}

// BestPostingTimes is the hourly activity grouping keyed the way the
// publishing recommendations section expects.
func (a *Aggregator) BestPostingTimes(records []engagement.Record) []engagement.PostingTime {
	counts := hourlyActivity(records)

	times := make([]engagement.PostingTime, 0, len(counts))
	for hour := 0; hour < 24; hour++ {
		if count, ok := counts[hour]; ok {
			times = append(times, engagement.PostingTime{
				Time:       fmt.Sprintf("%02d:00", hour),
				Engagement: count,
			})
		}
	}
	return times
}

func hourlyActivity(records []engagement.Record) map[int]int {
	counts := make(map[int]int)
	for _, r := range records {
		if r.Timestamp == nil {
			continue
		}
		counts[r.Timestamp.Hour()]++
	}
	return counts
}

// TopPerformingPosts ranks distinct posts by non-empty comment count,
// descending, keeping the first caption seen per post. Ties rank by first
// appearance in the input. The result is truncated to the top five.
func (a *Aggregator) TopPerformingPosts(records []engagement.Record) []engagement.PostSummary {
	type postAgg struct {
		order    int
		caption  *string
		comments int
	}

	byID := make(map[string]*postAgg)
	var order []string

	for _, r := range records {
		agg, ok := byID[r.PostID]
		if !ok {
			agg = &postAgg{order: len(order), caption: r.Caption}
			byID[r.PostID] = agg
			order = append(order, r.PostID)
		}
		if agg.caption == nil && r.Caption != nil {
			agg.caption = r.Caption
		}
		if r.HasComment() {
			agg.comments++
		}
	}

	summaries := make([]engagement.PostSummary, 0, len(order))
	for _, id := range order {
		agg := byID[id]
		summaries = append(summaries, engagement.PostSummary{
			PostID:   id,
			Caption:  agg.caption,
			Comments: agg.comments,
		})
	}

	sort.SliceStable(summaries, func(i, j int) bool {
		return summaries[i].Comments > summaries[j].Comments
	})

	if len(summaries) > topPostsLimit {
		summaries = summaries[:topPostsLimit]
	}
	return summaries
}
