package agents

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ridgeline-media/topfive/pkg/fsutil"
	"github.com/ridgeline-media/topfive/pkg/models"
	"github.com/ridgeline-media/topfive/pkg/tts"
)

func TestNarrationPlannerAgent_Run_WritesNarrationPlan(t *testing.T) {
	rc := &models.RunContext{RunSlug: "run-1", RootDir: t.TempDir(), Bus: models.NewBus()}
	require.NoError(t, fsutil.WriteJSONAtomic(filepath.Join(rc.RootDir, "inputs", "products.json"), fiveTopProducts()))
	require.NoError(t, fsutil.EnsureDir(filepath.Join(rc.RootDir, "script")))
	require.NoError(t, os.WriteFile(filepath.Join(rc.RootDir, "script", "script.txt"), []byte("the full script body"), 0o644))

	a := NewNarrationPlannerAgent(tts.NewService(tts.NewPlanner(nil, "narrator-1")))
	ok, err := a.Run(context.Background(), rc)
	require.NoError(t, err)
	assert.True(t, ok)

	var plan models.NarrationPlan
	require.NoError(t, fsutil.ReadJSON(filepath.Join(rc.RootDir, "resolve", "narration_plan.json"), &plan))
	assert.Len(t, plan.Segments, 5)
}

func TestNarrationPlannerAgent_Run_MissingScriptReturnsError(t *testing.T) {
	rc := &models.RunContext{RunSlug: "run-1", RootDir: t.TempDir(), Bus: models.NewBus()}
	require.NoError(t, fsutil.WriteJSONAtomic(filepath.Join(rc.RootDir, "inputs", "products.json"), fiveTopProducts()))

	a := NewNarrationPlannerAgent(tts.NewService(tts.NewPlanner(nil, "narrator-1")))
	_, err := a.Run(context.Background(), rc)
	assert.Error(t, err)
}
