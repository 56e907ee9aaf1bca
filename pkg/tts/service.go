package tts

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/ridgeline-media/topfive/pkg/fsutil"
	"github.com/ridgeline-media/topfive/pkg/models"
)

// Service runs the narration planning stage and writes its output to
// resolveDir/narration_plan.json, the manifest stage's one reader.
type Service struct {
	planner *Planner
}

// NewService wraps a Planner.
func NewService(planner *Planner) *Service {
	return &Service{planner: planner}
}

// Run plans narration for scriptBody against products and persists the
// result.
func (s *Service) Run(ctx context.Context, runSlug, resolveDir, scriptBody string, products []models.TopProduct) (models.NarrationPlan, error) {
	if err := fsutil.EnsureDir(resolveDir); err != nil {
		return models.NarrationPlan{}, fmt.Errorf("ensure resolve dir: %w", err)
	}
	plan, err := s.planner.Plan(ctx, runSlug, scriptBody, products)
	if err != nil {
		return models.NarrationPlan{}, err
	}
	if err := fsutil.WriteJSONAtomic(filepath.Join(resolveDir, "narration_plan.json"), plan); err != nil {
		return models.NarrationPlan{}, fmt.Errorf("write narration_plan.json: %w", err)
	}
	return plan, nil
}
