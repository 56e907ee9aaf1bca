package agents

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/ridgeline-media/topfive/pkg/fsutil"
	"github.com/ridgeline-media/topfive/pkg/marketplace"
	"github.com/ridgeline-media/topfive/pkg/models"
)

// Verifier re-reads the research stage's flushed shortlist.json (per
// spec.md §5's "downstream stages re-read from disk" rule) and resolves
// each candidate against the marketplace.
type Verifier struct {
	service *marketplace.Service
}

// NewVerifier wraps a marketplace.Service.
func NewVerifier(service *marketplace.Service) *Verifier {
	return &Verifier{service: service}
}

// Name implements orchestrator.Agent.
func (a *Verifier) Name() string { return "amazon_verify" }

// Run implements orchestrator.Agent.
func (a *Verifier) Run(ctx context.Context, rc *models.RunContext) (bool, error) {
	var shortlist []models.ProductCandidate
	path := filepath.Join(rc.RootDir, "inputs", "shortlist.json")
	if err := fsutil.ReadJSON(path, &shortlist); err != nil {
		return false, fmt.Errorf("read shortlist.json: %w", err)
	}

	verified := a.service.VerifyShortlist(ctx, shortlist)
	if err := fsutil.WriteJSONAtomic(filepath.Join(rc.RootDir, "inputs", "verified.json"), verified); err != nil {
		return false, fmt.Errorf("write verified.json: %w", err)
	}
	return len(verified) > 0, nil
}
