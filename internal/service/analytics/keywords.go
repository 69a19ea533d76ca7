// internal/service/analytics/keywords.go

package analytics

import (
	"sort"
	"strings"
	"unicode"

	"scrollmark/internal/domain/engagement"
)

// defaultTopKeywords is the ranking size when the caller does not ask for a
// specific one.
const defaultTopKeywords = 5

// minTokenLength filters out short tokens before stopword filtering.
const minTokenLength = 3

// KeywordExtractor tokenizes free text, filters stopwords, and ranks the
// remaining tokens by frequency.
type KeywordExtractor struct{}

// NewKeywordExtractor creates a new keyword extractor.
func NewKeywordExtractor() *KeywordExtractor {
	return &KeywordExtractor{}
}

// Extract returns the top keywords across the given texts, ordered by
// descending count with ties broken by first occurrence across the input
// sequence. limit <= 0 selects the default of five.
func (e *KeywordExtractor) Extract(texts []string, limit int) []engagement.KeywordCount {
	if limit <= 0 {
		limit = defaultTopKeywords
	}

	counts := make(map[string]int)
	firstSeen := make(map[string]int)
	var position int

	for _, text := range texts {
		for _, token := range tokenize(text) {
			if _, stop := stopwords[token]; stop {
				continue
			}
			if _, ok := firstSeen[token]; !ok {
				firstSeen[token] = position
				position++
			}
			counts[token]++
		}
	}

	ranked := make([]engagement.KeywordCount, 0, len(counts))
	for token, count := range counts {
		ranked = append(ranked, engagement.KeywordCount{Topic: token, Engagement: count})
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Engagement != ranked[j].Engagement {
			return ranked[i].Engagement > ranked[j].Engagement
		}
		return firstSeen[ranked[i].Topic] < firstSeen[ranked[j].Topic]
	})

	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}

// tokenize lowercases the text and extracts maximal runs of alphabetic
// characters of at least minTokenLength; every other character is a
// separator.
func tokenize(text string) []string {
	var tokens []string
	var current strings.Builder

	flush := func() {
		if current.Len() >= minTokenLength {
			tokens = append(tokens, current.String())
		}
		current.Reset()
	}

	for _, r := range strings.ToLower(text) {
		if unicode.IsLetter(r) {
			current.WriteRune(r)
			continue
		}
		flush()
	}
	flush()

	return tokens
}
