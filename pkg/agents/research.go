package agents

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/ridgeline-media/topfive/pkg/fsutil"
	"github.com/ridgeline-media/topfive/pkg/models"
	"github.com/ridgeline-media/topfive/pkg/research"
)

// Researcher runs reviews research for a run's niche and writes both
// the structured shortlist and the free-text notes document the
// security agent scans independently, per spec.md §4.9.
type Researcher struct {
	service *research.Service
}

// NewResearcher wraps a research.Service.
func NewResearcher(service *research.Service) *Researcher {
	return &Researcher{service: service}
}

// Name implements orchestrator.Agent.
func (a *Researcher) Name() string { return "research_agent" }

// Run implements orchestrator.Agent.
func (a *Researcher) Run(ctx context.Context, rc *models.RunContext) (bool, error) {
	shortlist, err := a.service.Research(ctx, rc.Niche)
	if err != nil {
		return false, fmt.Errorf("research %q: %w", rc.Niche, err)
	}

	inputsDir := filepath.Join(rc.RootDir, "inputs")
	if err := fsutil.WriteJSONAtomic(filepath.Join(inputsDir, "shortlist.json"), shortlist); err != nil {
		return false, fmt.Errorf("write shortlist.json: %w", err)
	}
	notes := researchNotes(rc.Niche, shortlist)
	if err := fsutil.WriteFileAtomic(filepath.Join(inputsDir, "research_notes.md"), []byte(notes), 0o644); err != nil {
		return false, fmt.Errorf("write research_notes.md: %w", err)
	}
	return len(shortlist) > 0, nil
}

// researchNotes renders the shortlist as free text naming every source
// URL, so SecurityGate's regex scan has the same URLs to independently
// audit as shortlist.json's structured Sources.
func researchNotes(niche string, candidates []models.ProductCandidate) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Research notes: %s\n\n", niche)
	for _, c := range candidates {
		fmt.Fprintf(&b, "## %s (%s)\n", c.ProductName, c.Brand)
		for _, src := range c.Sources {
			fmt.Fprintf(&b, "- %s: %s\n", src.Source, src.URL)
		}
		b.WriteString("\n")
	}
	return b.String()
}
