// Package agents adapts each domain package's service into the
// orchestrator.Agent shape pkg/orchestrator.Runner drives, one file per
// pipeline stage. None of these types import pkg/orchestrator — Agent
// is satisfied structurally, the same way pkg/run.PipelineDriver is
// satisfied by *orchestrator.Runner without either package importing
// the other's concrete type.
package agents

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/ridgeline-media/topfive/pkg/fsutil"
	"github.com/ridgeline-media/topfive/pkg/models"
)

// NicheAgent persists the niche the run controller already selected
// (models.RunContext.Niche is set before the orchestrator starts, per
// pkg/run.Controller.RunDay) to inputs/niche.txt, satisfying the niche
// stage's QA gate.
type NicheAgent struct{}

// NewNicheAgent constructs a NicheAgent. It holds no state.
func NewNicheAgent() *NicheAgent { return &NicheAgent{} }

// Name implements orchestrator.Agent.
func (a *NicheAgent) Name() string { return "niche_strategist" }

// Run implements orchestrator.Agent.
func (a *NicheAgent) Run(_ context.Context, rc *models.RunContext) (bool, error) {
	if rc.Niche == "" {
		return false, fmt.Errorf("run context has no niche set")
	}
	path := filepath.Join(rc.RootDir, "inputs", "niche.txt")
	if err := fsutil.WriteFileAtomic(path, []byte(rc.Niche), 0o644); err != nil {
		return false, fmt.Errorf("write niche.txt: %w", err)
	}
	return true, nil
}
