package manifest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ridgeline-media/topfive/pkg/fsutil"
	"github.com/ridgeline-media/topfive/pkg/models"
)

func seedRun(t *testing.T) (rootDir, resolveDir string) {
	t.Helper()
	rootDir = t.TempDir()
	resolveDir = filepath.Join(rootDir, "resolve")
	require.NoError(t, fsutil.EnsureDir(filepath.Join(rootDir, "inputs")))
	require.NoError(t, fsutil.EnsureDir(resolveDir))

	products := []models.TopProduct{
		{VerifiedProduct: models.VerifiedProduct{ProductName: "Hydro Flask 32oz"}, Rank: 1, CategoryLabel: models.LabelNoRegretPick},
		{VerifiedProduct: models.VerifiedProduct{ProductName: "Stanley Quencher"}, Rank: 2, CategoryLabel: models.LabelBestValue},
	}
	require.NoError(t, fsutil.WriteJSONAtomic(filepath.Join(rootDir, "inputs", "products.json"), products))

	assetPlan := models.AssetPlan{RunSlug: "run-1", Specs: []models.AssetSpec{
		{Rank: 1, ProductName: "Hydro Flask 32oz", Prompt: "hydro flask hero shot"},
		{Rank: 2, ProductName: "Stanley Quencher", Prompt: "stanley quencher hero shot"},
	}}
	require.NoError(t, fsutil.WriteJSONAtomic(filepath.Join(resolveDir, "asset_plan.json"), assetPlan))

	narrationPlan := models.NarrationPlan{RunSlug: "run-1", Segments: []models.NarrationSegment{
		{Rank: 1, ProductName: "Hydro Flask 32oz", Text: "number one pick", StartMS: 0, DurationMS: 4000},
		{Rank: 2, ProductName: "Stanley Quencher", Text: "number two pick", StartMS: 4000, DurationMS: 3500},
	}}
	require.NoError(t, fsutil.WriteJSONAtomic(filepath.Join(resolveDir, "narration_plan.json"), narrationPlan))

	return rootDir, resolveDir
}

func TestPackager_Run_WritesAllThreeResolveFiles(t *testing.T) {
	rootDir, resolveDir := seedRun(t)
	p := NewPackager()

	manifest, err := p.Run(rootDir, resolveDir, "smart water bottles", "run-1", nil)
	require.NoError(t, err)
	require.Len(t, manifest.Clips, 2)
	assert.Equal(t, "hydro flask hero shot", manifest.Clips[0].AssetPrompt)
	assert.Equal(t, "number one pick", manifest.Clips[0].NarrationText)

	for _, name := range []string{"edit_manifest.json", "markers.csv", "notes.md"} {
		_, err := os.Stat(filepath.Join(resolveDir, name))
		assert.NoError(t, err, "%s should exist", name)
	}
}

func TestPackager_Run_MarkersCSVHasOneRowPerClipPlusHeader(t *testing.T) {
	rootDir, resolveDir := seedRun(t)
	p := NewPackager()

	_, err := p.Run(rootDir, resolveDir, "smart water bottles", "run-1", nil)
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(resolveDir, "markers.csv"))
	require.NoError(t, err)
	lines := splitLines(string(data))
	assert.Len(t, lines, 3) // header + 2 clips
}

func TestPackager_Run_NotesIncludesWarnings(t *testing.T) {
	rootDir, resolveDir := seedRun(t)
	p := NewPackager()

	_, err := p.Run(rootDir, resolveDir, "smart water bottles", "run-1", []string{"brand diversity warning: Stanley accounts for 3 of 5 picks"})
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(resolveDir, "notes.md"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "brand diversity warning")
}

func TestPackager_Run_MissingUpstreamFileReturnsError(t *testing.T) {
	rootDir := t.TempDir()
	resolveDir := filepath.Join(rootDir, "resolve")
	require.NoError(t, fsutil.EnsureDir(filepath.Join(rootDir, "inputs")))
	require.NoError(t, fsutil.EnsureDir(resolveDir))
	p := NewPackager()

	_, err := p.Run(rootDir, resolveDir, "niche", "run-1", nil)
	assert.Error(t, err)
}

func splitLines(s string) []string {
	var lines []string
	start := 0
	for i, r := range s {
		if r == '\n' {
			if i > start {
				lines = append(lines, s[start:i])
			}
			start = i + 1
		}
	}
	if start < len(s) {
		lines = append(lines, s[start:])
	}
	return lines
}
