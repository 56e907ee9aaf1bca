package research

import (
	"regexp"
	"sort"
	"strings"

	"github.com/ridgeline-media/topfive/pkg/models"
)

var nonWordRun = regexp.MustCompile(`[^a-z0-9]+`)

// Normalize lowercases, strips punctuation, and collapses whitespace —
// the aggregation key for "same product, different outlets' wording".
func Normalize(name string) string {
	lower := strings.ToLower(name)
	cleaned := nonWordRun.ReplaceAllString(lower, " ")
	return strings.TrimSpace(strings.Join(strings.Fields(cleaned), " "))
}

const (
	shortlistMinSources = 2
	shortlistTopUp      = 8
	shortlistCap        = 15
)

// Aggregator folds per-outlet search results into a deduped, scored
// shortlist.
type Aggregator struct {
	candidates map[string]*models.ProductCandidate
}

// NewAggregator creates an empty aggregator.
func NewAggregator() *Aggregator {
	return &Aggregator{candidates: make(map[string]*models.ProductCandidate)}
}

// Add records one mention found in one outlet's result text.
func (a *Aggregator) Add(mention Mention, outlet Outlet, label string) {
	key := Normalize(mention.ProductName)
	if key == "" {
		return
	}
	cand, ok := a.candidates[key]
	if !ok {
		cand = &models.ProductCandidate{ProductName: mention.ProductName, Brand: mention.Brand}
		a.candidates[key] = cand
	}
	cand.AddSource(models.SourceMention{Source: outlet.Name, Label: label}, outlet.Weight)
}

// Shortlist applies spec.md §4.4's shortlist policy: include if
// source_count>=2, or source_count==1 with a "best overall" label; top up
// to 8, cap at 15. Qualified entries come first in descending
// evidence_score, followed by any top-up entries in the same order.
func (a *Aggregator) Shortlist() []models.ProductCandidate {
	var all []models.ProductCandidate
	for _, c := range a.candidates {
		all = append(all, *c)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].EvidenceScore > all[j].EvidenceScore })

	var qualified []models.ProductCandidate
	for _, c := range all {
		if c.SourceCount >= shortlistMinSources || hasBestOverall(c.KeyClaims) {
			qualified = append(qualified, c)
		}
	}

	if len(qualified) < shortlistTopUp {
		seen := make(map[string]bool, len(qualified))
		for _, c := range qualified {
			seen[Normalize(c.ProductName)] = true
		}
		for _, c := range all {
			if len(qualified) >= shortlistTopUp {
				break
			}
			key := Normalize(c.ProductName)
			if seen[key] {
				continue
			}
			qualified = append(qualified, c)
			seen[key] = true
		}
	}

	if len(qualified) > shortlistCap {
		qualified = qualified[:shortlistCap]
	}
	return qualified
}

func hasBestOverall(claims []string) bool {
	for _, c := range claims {
		if strings.Contains(strings.ToLower(c), "best overall") {
			return true
		}
	}
	return false
}
