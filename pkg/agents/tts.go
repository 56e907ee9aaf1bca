package agents

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ridgeline-media/topfive/pkg/fsutil"
	"github.com/ridgeline-media/topfive/pkg/models"
	"github.com/ridgeline-media/topfive/pkg/tts"
)

// NarrationPlannerAgent wraps tts.Service, re-reading the finished
// script body and ranked products, and writing
// resolve/narration_plan.json, the manifest stage's other input.
type NarrationPlannerAgent struct {
	service *tts.Service
}

// NewNarrationPlannerAgent wraps a tts.Service.
func NewNarrationPlannerAgent(service *tts.Service) *NarrationPlannerAgent {
	return &NarrationPlannerAgent{service: service}
}

// Name implements orchestrator.Agent.
func (a *NarrationPlannerAgent) Name() string { return "tts_agent" }

// Run implements orchestrator.Agent.
func (a *NarrationPlannerAgent) Run(ctx context.Context, rc *models.RunContext) (bool, error) {
	var products []models.TopProduct
	if err := fsutil.ReadJSON(filepath.Join(rc.RootDir, "inputs", "products.json"), &products); err != nil {
		return false, fmt.Errorf("read products.json: %w", err)
	}

	scriptBody, err := os.ReadFile(filepath.Join(rc.RootDir, "script", "script.txt"))
	if err != nil {
		return false, fmt.Errorf("read script.txt: %w", err)
	}

	resolveDir := filepath.Join(rc.RootDir, "resolve")
	plan, err := a.service.Run(ctx, rc.RunSlug, resolveDir, string(scriptBody), products)
	if err != nil {
		return false, err
	}
	return len(plan.Segments) == len(products), nil
}
