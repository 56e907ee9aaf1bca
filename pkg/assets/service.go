package assets

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/ridgeline-media/topfive/pkg/fsutil"
	"github.com/ridgeline-media/topfive/pkg/models"
)

// Service runs the asset planning stage and writes its output to
// resolveDir/asset_plan.json — the filesystem layout in spec.md §6 has
// no dedicated assets directory, and manifest packaging is this output's
// only reader.
type Service struct {
	planner *Planner
}

// NewService wraps a Planner.
func NewService(planner *Planner) *Service {
	return &Service{planner: planner}
}

// Run plans assets for products and persists the result.
func (s *Service) Run(ctx context.Context, runSlug, resolveDir string, products []models.TopProduct) (models.AssetPlan, error) {
	if err := fsutil.EnsureDir(resolveDir); err != nil {
		return models.AssetPlan{}, fmt.Errorf("ensure resolve dir: %w", err)
	}
	plan, err := s.planner.Plan(ctx, runSlug, products)
	if err != nil {
		return models.AssetPlan{}, err
	}
	if err := fsutil.WriteJSONAtomic(filepath.Join(resolveDir, "asset_plan.json"), plan); err != nil {
		return models.AssetPlan{}, fmt.Errorf("write asset_plan.json: %w", err)
	}
	return plan, nil
}
