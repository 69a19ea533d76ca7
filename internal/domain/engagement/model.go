package engagement

import (
	"strings"
	"time"
)

// Record represents one normalized row of social engagement activity.
// Comment and Caption are nil when the source column was absent; Timestamp
// is nil when the value was missing or unparsable.
type Record struct {
	PostID    string
	Comment   *string
	Caption   *string
	Timestamp *time.Time
}

// HasComment reports whether the record carries a non-empty comment after
// trimming whitespace.
func (r Record) HasComment() bool {
	return r.Comment != nil && strings.TrimSpace(*r.Comment) != ""
}

// CommentText returns the comment text, or the empty string when absent.
func (r Record) CommentText() string {
	if r.Comment == nil {
		return ""
	}
	return *r.Comment
}

// CaptionText returns the caption text, or the empty string when absent.
func (r Record) CaptionText() string {
	if r.Caption == nil {
		return ""
	}
	return *r.Caption
}

// DailyBucket aggregates activity for one calendar date.
type DailyBucket struct {
	Date     string `json:"date"`
	Posts    int    `json:"posts"`
	Comments int    `json:"comments"`
}

// HourlyBucket aggregates activity for one hour of the day.
type HourlyBucket struct {
	Hour     string `json:"hour"`
	Activity int    `json:"activity"`
}

// PostingTime mirrors HourlyBucket under the key names the publishing
// recommendations section of the dashboard expects.
type PostingTime struct {
	Time       string `json:"time"`
	Engagement int    `json:"engagement"`
}

// PostSummary aggregates activity for one distinct post.
type PostSummary struct {
	PostID   string  `json:"media_id"`
	Caption  *string `json:"media_caption"`
	Comments int     `json:"comments"`
}

// KeywordCount is one ranked keyword with its raw frequency.
type KeywordCount struct {
	Topic      string `json:"topic"`
	Engagement int    `json:"engagement"`
}

// SentimentCounts tallies classified texts by tone.
type SentimentCounts struct {
	Positive int
	Neutral  int
	Negative int
}

// Total returns the number of analyzed texts.
func (c SentimentCounts) Total() int {
	return c.Positive + c.Neutral + c.Negative
}

// Percentages derives integer percentages for each tone. Integer division
// means the three values may not sum to exactly 100.
func (c SentimentCounts) Percentages() (positive, neutral, negative int) {
	total := c.Total()
	if total == 0 {
		return 0, 0, 0
	}
	return c.Positive * 100 / total, c.Neutral * 100 / total, c.Negative * 100 / total
}

// OverallLabel reduces the percentage split to a single display label. A
// tone wins only with a strict majority over both others.
func (c SentimentCounts) OverallLabel() string {
	positive, neutral, negative := c.Percentages()
	switch {
	case positive > negative && positive > neutral:
		return "Positive"
	case negative > positive && negative > neutral:
		return "Negative"
	default:
		return "Neutral"
	}
}

// Mention is one sampled text with its classified sentiment, shown in the
// dashboard's top-mentions list.
type Mention struct {
	Text       string `json:"text"`
	Sentiment  string `json:"sentiment"`
	Engagement int    `json:"engagement"`
	Platform   string `json:"platform"`
}

// Recommendation is one structured recommendation card.
type Recommendation struct {
	Type        string `json:"type"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Priority    string `json:"priority"`
	Icon        string `json:"icon"`
	Color       string `json:"color"`
	Action      string `json:"action"`
}
