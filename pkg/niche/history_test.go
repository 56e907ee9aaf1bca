package niche

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/ridgeline-media/topfive/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistoryStore_MissingFileIsEmpty(t *testing.T) {
	dir := t.TempDir()
	s, err := LoadHistoryStore(filepath.Join(dir, "niche_history.json"))
	require.NoError(t, err)
	assert.Empty(t, s.Entries())
}

func TestHistoryStore_UpsertReplacesSameDate(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "niche_history.json")
	s, err := LoadHistoryStore(path)
	require.NoError(t, err)

	require.NoError(t, s.Upsert(models.NicheHistoryEntry{Date: "2026-07-31", Niche: "first"}))
	require.NoError(t, s.Upsert(models.NicheHistoryEntry{Date: "2026-07-31", Niche: "second"}))

	entries := s.Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, "second", entries[0].Niche)

	reloaded, err := LoadHistoryStore(path)
	require.NoError(t, err)
	require.Len(t, reloaded.Entries(), 1)
	assert.Equal(t, "second", reloaded.Entries()[0].Niche)
}

func TestHistoryStore_UpsertAppendsDifferentDates(t *testing.T) {
	dir := t.TempDir()
	s, err := LoadHistoryStore(filepath.Join(dir, "niche_history.json"))
	require.NoError(t, err)

	require.NoError(t, s.Upsert(models.NicheHistoryEntry{Date: "2026-07-30", Niche: "a"}))
	require.NoError(t, s.Upsert(models.NicheHistoryEntry{Date: "2026-07-31", Niche: "b"}))

	assert.Len(t, s.Entries(), 2)
}

func TestUsedWithin(t *testing.T) {
	d := time.Date(2026, 7, 31, 0, 0, 0, 0, time.UTC)
	history := []models.NicheHistoryEntry{
		{Date: "2026-07-01", Niche: "old"},
		{Date: "2026-07-25", Niche: "recent"},
	}

	used := UsedWithin(history, d, 10*24*time.Hour)
	assert.True(t, used["recent"])
	assert.False(t, used["old"])
}
