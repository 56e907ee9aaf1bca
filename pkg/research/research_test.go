package research

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSearchClient struct {
	byQuery map[string][]SearchResult
	errFor  map[string]error
	calls   []string
}

func (s *stubSearchClient) Search(_ context.Context, query string, limit int) ([]SearchResult, error) {
	s.calls = append(s.calls, query)
	if err, ok := s.errFor[query]; ok {
		return nil, err
	}
	results := s.byQuery[query]
	if len(results) > limit {
		results = results[:limit]
	}
	return results, nil
}

func TestService_Research_AggregatesAcrossOutlets(t *testing.T) {
	stub := &stubSearchClient{byQuery: map[string][]SearchResult{
		"site:nytimes.com/wirecutter best wireless headphones": {
			{Title: "Best Overall", Description: "The Sony WH-1000XM5 is the pick that leads the pack."},
		},
		"site:rtings.com best wireless headphones": {
			{Title: "Top Picks", Description: "Sony WH-1000XM5 earns the highest score in our labs."},
		},
	}}
	svc := NewService(stub)

	shortlist, err := svc.Research(context.Background(), "wireless headphones")
	require.NoError(t, err)
	require.NotEmpty(t, shortlist)
	assert.Equal(t, 2, shortlist[0].SourceCount)
}

func TestService_Research_ToleratesPartialOutletFailures(t *testing.T) {
	stub := &stubSearchClient{
		byQuery: map[string][]SearchResult{
			"site:rtings.com best travel backpacks": {
				{Title: "Best Overall", Description: "Osprey Farpoint 40 wins our test."},
			},
		},
		errFor: map[string]error{
			"site:nytimes.com/wirecutter best travel backpacks": errors.New("503 service unavailable"),
		},
	}
	svc := NewService(stub)

	shortlist, err := svc.Research(context.Background(), "travel backpacks")
	require.NoError(t, err)
	assert.NotNil(t, shortlist)
}

func TestService_Research_FailsWhenEveryOutletErrors(t *testing.T) {
	stub := &stubSearchClient{errFor: map[string]error{}}
	for _, o := range Outlets {
		stub.errFor["site:"+o.Domain+" best gaming mice"] = errors.New("503 service unavailable")
	}
	svc := NewService(stub)

	_, err := svc.Research(context.Background(), "gaming mice")
	require.Error(t, err)
}

func TestService_Research_QueriesEveryWhitelistedOutlet(t *testing.T) {
	stub := &stubSearchClient{byQuery: map[string][]SearchResult{}}
	svc := NewService(stub)

	_, err := svc.Research(context.Background(), "robot vacuums")
	require.NoError(t, err)
	assert.Len(t, stub.calls, len(Outlets))
}
