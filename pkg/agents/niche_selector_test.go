package agents

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ridgeline-media/topfive/pkg/models"
	"github.com/ridgeline-media/topfive/pkg/niche"
)

func mustLoadHistoryStore(t *testing.T) *niche.HistoryStore {
	t.Helper()
	store, err := niche.LoadHistoryStore(filepath.Join(t.TempDir(), "niche_history.json"))
	require.NoError(t, err)
	return store
}

func testNichePool() []models.NicheCandidate {
	pool := []models.NicheCandidate{
		{Keyword: "cordless vacuums", Category: "home", Subcategory: "cleaning", Intent: models.IntentGeneral, PriceMax: 200, ReviewCoverage: 5, AmazonDepth: 5, Monetization: 5},
	}
	for i := range pool {
		pool[i].DerivePriceBand()
	}
	return pool
}

func TestNicheSelector_PickForDate_PicksAndPersists(t *testing.T) {
	store := mustLoadHistoryStore(t)
	repo := niche.NewFileHistoryStore(store)
	selector := NewNicheSelector(niche.NewPicker(testNichePool()), repo)

	result, err := selector.PickForDate(context.Background(), "2026-07-31")
	require.NoError(t, err)
	assert.Equal(t, "cordless vacuums", result.Niche.Keyword)

	entries, err := repo.Entries(context.Background())
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "cordless vacuums", entries[0].Niche)
}

func TestNicheSelector_PickForDate_RejectsMalformedDate(t *testing.T) {
	store := mustLoadHistoryStore(t)
	repo := niche.NewFileHistoryStore(store)
	selector := NewNicheSelector(niche.NewPicker(testNichePool()), repo)

	_, err := selector.PickForDate(context.Background(), "not-a-date")
	assert.Error(t, err)
}
