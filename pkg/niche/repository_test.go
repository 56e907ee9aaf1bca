package niche

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileHistoryStore_ImplementsHistoryRepository(t *testing.T) {
	dir := t.TempDir()
	s, err := LoadHistoryStore(filepath.Join(dir, "niche_history.json"))
	require.NoError(t, err)

	var repo HistoryRepository = NewFileHistoryStore(s)

	entries, err := repo.Entries(context.Background())
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestPicker_PickAndRecord_UpsertsThroughRepository(t *testing.T) {
	dir := t.TempDir()
	s, err := LoadHistoryStore(filepath.Join(dir, "niche_history.json"))
	require.NoError(t, err)
	repo := NewFileHistoryStore(s)

	p := NewPicker(testPool())
	d := time.Date(2026, 7, 31, 0, 0, 0, 0, time.UTC)

	result, err := p.PickAndRecord(context.Background(), repo, d)
	require.NoError(t, err)

	entries, err := repo.Entries(context.Background())
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, result.Niche.Keyword, entries[0].Niche)
	assert.Equal(t, "2026-07-31", entries[0].Date)
}
