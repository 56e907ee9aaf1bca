package database

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ridgeline-media/topfive/pkg/models"
)

func testRun() *models.PipelineState {
	return &models.PipelineState{
		RunSlug:   "smart-water-bottles-2026-07-31",
		Theme:     "smart water bottles",
		Category:  "fitness",
		Status:    models.StatusDraftWaitingGate1,
		Artifacts: map[string]string{"script": "artifacts/videos/smart-water-bottles-2026-07-31/script.json"},
		History:   []models.HistoryEntry{{Status: "draft_waiting_gate_1"}},
	}
}

func TestRunRepo_UpsertThenGetRoundTrips(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	state := testRun()
	require.NoError(t, client.Runs.Upsert(ctx, state))

	got, err := client.Runs.Get(ctx, state.RunSlug)
	require.NoError(t, err)
	assert.Equal(t, state.Theme, got.Theme)
	assert.Equal(t, state.Status, got.Status)
	assert.Equal(t, state.Artifacts, got.Artifacts)
}

func TestRunRepo_ListByStatus_FiltersAndOrdersByUpdatedAt(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	waiting := testRun()
	require.NoError(t, client.Runs.Upsert(ctx, waiting))

	published := testRun()
	published.RunSlug = "smart-mats-2026-07-30"
	published.Status = models.StatusPublished
	require.NoError(t, client.Runs.Upsert(ctx, published))

	slugs, err := client.Runs.ListByStatus(ctx, models.StatusDraftWaitingGate1)
	require.NoError(t, err)
	assert.Equal(t, []string{waiting.RunSlug}, slugs)
}

func TestRunRepo_Delete_RemovesRow(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	state := testRun()
	require.NoError(t, client.Runs.Upsert(ctx, state))
	require.NoError(t, client.Runs.Delete(ctx, state.RunSlug))

	_, err := client.Runs.Get(ctx, state.RunSlug)
	assert.Error(t, err)
}
