// internal/service/analytics/stopwords.go

package analytics

// stopwords is the fixed set of common English words and contraction stems
// excluded from keyword extraction.
var stopwords = map[string]struct{}{}

func init() {
	words := []string{
		"the", "and", "is", "in", "it", "to", "of", "for", "on", "with",
		"a", "an", "that", "this", "are", "be", "as", "by", "at", "from",
		"or", "was", "has", "had", "not", "but", "what", "when", "where",
		"who", "how", "why", "which", "you", "we", "they", "i", "me", "he",
		"she", "us", "them", "my", "your", "his", "her", "its", "our",
		"their", "can", "will", "would", "should", "could", "do", "did",
		"done", "get", "got", "go", "goes", "went", "make", "made",
		"making", "say", "says", "said", "see", "sees", "saw", "take",
		"takes", "took", "come", "comes", "came", "know", "knows", "knew",
		"think", "thinks", "thought", "look", "looks", "looked", "want",
		"wants", "wanted", "use", "uses", "used", "find", "finds", "found",
		"give", "gives", "gave", "tell", "tells", "told", "ask", "asks",
		"asked", "work", "works", "worked", "seem", "seems", "seemed",
		"feel", "feels", "felt", "try", "tries", "tried", "leave",
		"leaves", "left", "call", "calls", "called", "good", "great",
		"new", "just", "like", "very", "much", "also", "about", "into",
		"through", "down", "up", "out", "back", "over", "under", "then",
		"than", "there", "here", "all", "any", "both", "each", "few",
		"more", "most", "other", "some", "such", "no", "nor", "only",
		"own", "same", "so", "too", "s", "t", "don", "ve", "m", "d", "ll",
		"re", "y", "ain", "aren", "couldn", "didn", "doesn", "hadn",
		"hasn", "haven", "isn", "ma", "mightn", "mustn", "needn", "shan",
		"shouldn", "wasn", "weren", "won", "wouldn",
	}
	for _, w := range words {
		stopwords[w] = struct{}{}
	}
}
