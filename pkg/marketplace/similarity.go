// Package marketplace resolves reviews-research product candidates against
// a live marketplace (Amazon), scoring each match by title similarity and
// producing a verified, affiliate-linked product record.
package marketplace

import (
	"strings"

	"github.com/ridgeline-media/topfive/pkg/models"
)

// stopWords are excluded from both sides of the title-similarity
// comparison, per spec.md §4.5.
var stopWords = map[string]bool{
	"the": true, "a": true, "an": true, "and": true, "or": true,
	"for": true, "with": true, "in": true, "of": true, "to": true,
	"is": true, "by": true, "on": true, "at": true, "it": true, "new": true,
}

// tokens lowercases and splits s into a deduplicated set of word tokens
// with stopWords removed.
func tokens(s string) map[string]bool {
	out := make(map[string]bool)
	for _, f := range strings.Fields(strings.ToLower(s)) {
		w := strings.Trim(f, ".,!?:;()[]\"'")
		if w == "" || stopWords[w] {
			continue
		}
		out[w] = true
	}
	return out
}

// Similarity computes sim(q, t) = |tokens(q)\STOP ∩ tokens(t)\STOP| /
// |tokens(q)\STOP|, the fraction of the query's meaningful tokens also
// present in the candidate title. An empty query (all stop-words or
// blank) has undefined similarity against anything, so it scores 0.
func Similarity(query, title string) float64 {
	q := tokens(query)
	if len(q) == 0 {
		return 0
	}
	t := tokens(title)
	matched := 0
	for w := range q {
		if t[w] {
			matched++
		}
	}
	return float64(matched) / float64(len(q))
}

// Confidence buckets a similarity score per spec.md §4.5.
func Confidence(sim float64) models.MatchConfidence {
	switch {
	case sim > 0.6:
		return models.ConfidenceHigh
	case sim > 0.35:
		return models.ConfidenceMedium
	default:
		return models.ConfidenceLow
	}
}
