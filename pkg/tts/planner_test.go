package tts

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ridgeline-media/topfive/pkg/models"
)

type stubVoicePlanner struct {
	durationMS int64
	err        error
}

func (s *stubVoicePlanner) EstimateDurationMS(_ context.Context, _, _ string) (int64, error) {
	if s.err != nil {
		return 0, s.err
	}
	return s.durationMS, nil
}

func testProducts() []models.TopProduct {
	return []models.TopProduct{
		{VerifiedProduct: models.VerifiedProduct{ProductName: "Hydro Flask 32oz"}, Rank: 1},
		{VerifiedProduct: models.VerifiedProduct{ProductName: "Stanley Quencher"}, Rank: 2},
	}
}

const testScript = "Intro to today's picks.\n\nNumber one is the Hydro Flask 32oz, built for durability.\n\nNumber two is the Stanley Quencher, a value pick."

func TestPlanner_Plan_StampsSequentialStartOffsets(t *testing.T) {
	p := NewPlanner(&stubVoicePlanner{durationMS: 5000}, "narrator-1")

	plan, err := p.Plan(context.Background(), "run-1", testScript, testProducts())
	require.NoError(t, err)
	require.Len(t, plan.Segments, 2)
	assert.Equal(t, int64(0), plan.Segments[0].StartMS)
	assert.Equal(t, int64(5000), plan.Segments[1].StartMS)
	assert.Equal(t, int64(10000), plan.TotalDurationMS)
}

func TestPlanner_Plan_MatchesSegmentByProductName(t *testing.T) {
	p := NewPlanner(&stubVoicePlanner{durationMS: 1000}, "narrator-1")

	plan, err := p.Plan(context.Background(), "run-1", testScript, testProducts())
	require.NoError(t, err)
	assert.Contains(t, plan.Segments[0].Text, "Hydro Flask 32oz")
	assert.Contains(t, plan.Segments[1].Text, "Stanley Quencher")
}

func TestPlanner_Plan_NilBackendEstimatesFromWordCount(t *testing.T) {
	p := NewPlanner(nil, "narrator-1")

	plan, err := p.Plan(context.Background(), "run-1", testScript, testProducts())
	require.NoError(t, err)
	assert.Greater(t, plan.Segments[0].DurationMS, int64(0))
}

func TestPlanner_Plan_PropagatesBackendError(t *testing.T) {
	p := NewPlanner(&stubVoicePlanner{err: errors.New("tts backend down")}, "narrator-1")

	_, err := p.Plan(context.Background(), "run-1", testScript, testProducts())
	assert.Error(t, err)
}
