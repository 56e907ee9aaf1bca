package research

import (
	"context"
	"fmt"

	"github.com/ridgeline-media/topfive/pkg/models"
)

// ResultsPerOutlet is the number of top results consumed per outlet query.
const ResultsPerOutlet = 5

// Service runs the reviews-research pipeline for a niche: issuing one
// "site:<domain> best <niche>" query per whitelisted outlet, extracting
// product mentions from each result, and aggregating into a shortlist.
type Service struct {
	search SearchClient
}

// NewService builds a Service over the given search backend.
func NewService(search SearchClient) *Service {
	return &Service{search: search}
}

// Research runs the full per-outlet query + extract + aggregate pipeline
// for niche and returns the final shortlist.
func (s *Service) Research(ctx context.Context, niche string) ([]models.ProductCandidate, error) {
	agg := NewAggregator()

	var lastErr error
	succeeded := 0
	for _, outlet := range Outlets {
		query := fmt.Sprintf("site:%s best %s", outlet.Domain, niche)
		results, err := s.search.Search(ctx, query, ResultsPerOutlet)
		if err != nil {
			lastErr = err
			continue
		}
		succeeded++
		for _, r := range results {
			text := r.Title + " " + r.Description
			label := ExtractLabel(text)
			for _, mention := range ExtractMentions(text) {
				agg.Add(mention, outlet, label)
			}
		}
	}

	// Only fail outright if every outlet query errored — a handful of
	// outlet failures still yields a usable (if thinner) shortlist.
	if succeeded == 0 && lastErr != nil {
		return nil, fmt.Errorf("all outlet searches failed: %w", lastErr)
	}

	return agg.Shortlist(), nil
}
