package agents

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/ridgeline-media/topfive/pkg/manifest"
	"github.com/ridgeline-media/topfive/pkg/models"
)

// ManifestPackager wraps manifest.Packager, deriving its warnings from
// whatever the rank stage's brand-diversity check and the reviewer
// gate's script-section-count check already published to rc.Bus.
type ManifestPackager struct {
	packager *manifest.Packager
}

// NewManifestPackager wraps a manifest.Packager.
func NewManifestPackager(packager *manifest.Packager) *ManifestPackager {
	return &ManifestPackager{packager: packager}
}

// Name implements orchestrator.Agent.
func (a *ManifestPackager) Name() string { return "resolve_packager" }

// Run implements orchestrator.Agent.
func (a *ManifestPackager) Run(_ context.Context, rc *models.RunContext) (bool, error) {
	resolveDir := filepath.Join(rc.RootDir, "resolve")
	result, err := a.packager.Run(rc.RootDir, resolveDir, rc.Niche, rc.RunSlug, busWarnings(rc))
	if err != nil {
		return false, err
	}
	return len(result.Clips) > 0, nil
}

// busWarnings collects every review/informational warning already on
// the bus, so notes.md carries the same brand-diversity and script-
// section-count findings the run's reviewer surfaced, not a re-derived
// copy.
func busWarnings(rc *models.RunContext) []string {
	if rc.Bus == nil {
		return nil
	}
	var warnings []string
	for _, msg := range rc.Bus.All() {
		switch {
		case msg.Type == models.MsgReview:
			warnings = append(warnings, msg.Content)
		case msg.Type == models.MsgInfo && strings.Contains(msg.Content, "warning"):
			warnings = append(warnings, msg.Content)
		}
	}
	return warnings
}
