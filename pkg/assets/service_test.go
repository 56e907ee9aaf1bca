package assets

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ridgeline-media/topfive/pkg/fsutil"
	"github.com/ridgeline-media/topfive/pkg/models"
)

func TestService_Run_WritesAssetPlanJSON(t *testing.T) {
	dir := t.TempDir()
	svc := NewService(NewPlanner(&stubImagePlanner{url: "https://cdn.example.com/ref.png"}))

	plan, err := svc.Run(context.Background(), "run-1", dir, testProducts())
	require.NoError(t, err)
	assert.Len(t, plan.Specs, 2)

	var fromDisk models.AssetPlan
	require.NoError(t, fsutil.ReadJSON(filepath.Join(dir, "asset_plan.json"), &fromDisk))
	assert.Equal(t, "run-1", fromDisk.RunSlug)
	assert.Len(t, fromDisk.Specs, 2)
}
