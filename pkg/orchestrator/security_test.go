package orchestrator

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ridgeline-media/topfive/pkg/fsutil"
	"github.com/ridgeline-media/topfive/pkg/models"
)

func TestSecurityGate_OnlyChecksResearchStage(t *testing.T) {
	rc := rcWithRoot(t)
	assert.Empty(t, NewSecurityGate().Check(StageVerify, rc))
}

func TestSecurityGate_FlagsDisallowedDomainInShortlist(t *testing.T) {
	rc := rcWithRoot(t)
	writeShortlist(t, rc, []models.ProductCandidate{
		{ProductName: "A", Sources: []models.SourceMention{{URL: "https://totally-not-vetted.example/a"}}},
	})
	violations := NewSecurityGate().Check(StageResearch, rc)
	require.NotEmpty(t, violations)
	assert.Contains(t, violations[0].Reason, "totally-not-vetted.example")
}

func TestSecurityGate_FlagsDisallowedDomainInResearchNotes(t *testing.T) {
	rc := rcWithRoot(t)
	require.NoError(t, fsutil.EnsureDir(filepath.Join(rc.RootDir, "inputs")))
	content := "Per https://random-blog.example/review-2026, this is the best pick.\nAlso see https://www.rtings.com/vacuums."
	require.NoError(t, os.WriteFile(filepath.Join(rc.RootDir, "inputs", "research_notes.md"), []byte(content), 0o644))

	violations := NewSecurityGate().Check(StageResearch, rc)
	require.Len(t, violations, 1)
	assert.Contains(t, violations[0].Reason, "random-blog.example")
}

func TestSecurityGate_PassesWhenAllSourcesAllowed(t *testing.T) {
	rc := rcWithRoot(t)
	writeShortlist(t, rc, []models.ProductCandidate{
		{ProductName: "A", Sources: []models.SourceMention{{URL: "https://www.nytimes.com/wirecutter/a"}}},
	})
	require.NoError(t, fsutil.EnsureDir(filepath.Join(rc.RootDir, "inputs")))
	require.NoError(t, os.WriteFile(filepath.Join(rc.RootDir, "inputs", "research_notes.md"), []byte("See https://pcmag.com/a."), 0o644))

	assert.Empty(t, NewSecurityGate().Check(StageResearch, rc))
}
