package marketplace

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ridgeline-media/topfive/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubBackend struct {
	byQuery map[string][]SearchResult
	errFor  map[string]error
	calls   []string
}

func (s *stubBackend) Search(_ context.Context, query string) ([]SearchResult, error) {
	s.calls = append(s.calls, query)
	if err, ok := s.errFor[query]; ok {
		return nil, err
	}
	return s.byQuery[query], nil
}

func noSleep(time.Duration) {}

func TestService_VerifyShortlist_PicksBestMatch(t *testing.T) {
	backend := &stubBackend{byQuery: map[string][]SearchResult{
		"Sony WH-1000XM5": {
			{ASIN: "B0WRONG", Title: "Unrelated Gadget"},
			{ASIN: "B0RIGHT", Title: "Sony WH-1000XM5 Wireless Headphones", Price: "$348.00", ReviewsCount: 12000},
		},
	}}
	svc := NewService(backend, "ridgeline-20", noSleep)

	verified := svc.VerifyShortlist(context.Background(), []models.ProductCandidate{
		{ProductName: "WH-1000XM5", Brand: "Sony"},
	})

	require.Len(t, verified, 1)
	assert.Equal(t, "B0RIGHT", verified[0].ASIN)
	assert.Equal(t, models.ConfidenceHigh, verified[0].MatchConfidence)
	assert.Equal(t, "https://www.amazon.com/dp/B0RIGHT?tag=ridgeline-20", verified[0].AffiliateURL)
}

func TestService_VerifyShortlist_RecordsErrorOnBackendFailure(t *testing.T) {
	backend := &stubBackend{errFor: map[string]error{
		"Sony WH-1000XM5": errors.New("bot detection: CAPTCHA challenge"),
	}}
	svc := NewService(backend, "ridgeline-20", noSleep)

	verified := svc.VerifyShortlist(context.Background(), []models.ProductCandidate{
		{ProductName: "WH-1000XM5", Brand: "Sony"},
	})

	require.Len(t, verified, 1)
	assert.NotEmpty(t, verified[0].Error)
	assert.Empty(t, verified[0].ASIN)
}

func TestService_VerifyShortlist_NoMatchingResultIsRecordedAsError(t *testing.T) {
	backend := &stubBackend{byQuery: map[string][]SearchResult{
		"Sony WH-1000XM5": {},
	}}
	svc := NewService(backend, "ridgeline-20", noSleep)

	verified := svc.VerifyShortlist(context.Background(), []models.ProductCandidate{
		{ProductName: "WH-1000XM5", Brand: "Sony"},
	})

	require.Len(t, verified, 1)
	assert.NotEmpty(t, verified[0].Error)
}

func TestService_VerifyShortlist_ThrottlesBetweenQueries(t *testing.T) {
	backend := &stubBackend{byQuery: map[string][]SearchResult{}}
	var slept []time.Duration
	svc := NewService(backend, "ridgeline-20", func(d time.Duration) { slept = append(slept, d) })

	svc.VerifyShortlist(context.Background(), []models.ProductCandidate{
		{ProductName: "A", Brand: "Sony"},
		{ProductName: "B", Brand: "Bose"},
	})

	require.Len(t, slept, 1)
	assert.Greater(t, slept[0], time.Duration(0))
	assert.LessOrEqual(t, slept[0], minQueryInterval)
}

func TestService_VerifyShortlist_PreservesInputOrder(t *testing.T) {
	backend := &stubBackend{byQuery: map[string][]SearchResult{
		"Sony A": {{ASIN: "B0A", Title: "Sony A"}},
		"Bose B": {{ASIN: "B0B", Title: "Bose B"}},
	}}
	svc := NewService(backend, "ridgeline-20", noSleep)

	verified := svc.VerifyShortlist(context.Background(), []models.ProductCandidate{
		{ProductName: "A", Brand: "Sony"},
		{ProductName: "B", Brand: "Bose"},
	})

	require.Len(t, verified, 2)
	assert.Equal(t, "B0A", verified[0].ASIN)
	assert.Equal(t, "B0B", verified[1].ASIN)
}
