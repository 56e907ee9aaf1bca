package database

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ridgeline-media/topfive/pkg/models"
)

func TestFetchCacheRepo_UpsertThenGetRoundTrips(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	tokens := 512
	entry := models.FetchCacheEntry{
		URL:           "https://www.rtings.com/review/smart-water-bottle",
		Method:        models.FetchMethodMarkdown,
		ContentType:   "text/markdown",
		TokenEstimate: &tokens,
		ContentLength: 4096,
		FetchedAt:     time.Date(2026, 7, 31, 8, 0, 0, 0, time.UTC),
	}
	require.NoError(t, client.FetchCache.Upsert(ctx, entry))

	got, err := client.FetchCache.Get(ctx, entry.URL)
	require.NoError(t, err)
	assert.Equal(t, entry.Method, got.Method)
	assert.Equal(t, *entry.TokenEstimate, *got.TokenEstimate)
}

func TestFetchCacheRepo_DeleteExpired_RemovesOnlyStaleRows(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	stale := models.FetchCacheEntry{URL: "https://example.com/stale", Method: models.FetchMethodHTML, ContentLength: 10, FetchedAt: time.Now().Add(-48 * time.Hour)}
	fresh := models.FetchCacheEntry{URL: "https://example.com/fresh", Method: models.FetchMethodHTML, ContentLength: 10, FetchedAt: time.Now()}
	require.NoError(t, client.FetchCache.Upsert(ctx, stale))
	require.NoError(t, client.FetchCache.Upsert(ctx, fresh))

	require.NoError(t, client.FetchCache.DeleteExpired(ctx, time.Now().Add(-24*time.Hour)))

	_, err := client.FetchCache.Get(ctx, stale.URL)
	assert.Error(t, err)
	_, err = client.FetchCache.Get(ctx, fresh.URL)
	assert.NoError(t, err)
}
