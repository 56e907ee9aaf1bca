package agents

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/ridgeline-media/topfive/pkg/assets"
	"github.com/ridgeline-media/topfive/pkg/fsutil"
	"github.com/ridgeline-media/topfive/pkg/models"
)

// AssetPlannerAgent wraps assets.Service, re-reading the ranked products
// and writing resolve/asset_plan.json, the manifest stage's input.
type AssetPlannerAgent struct {
	service *assets.Service
}

// NewAssetPlannerAgent wraps an assets.Service.
func NewAssetPlannerAgent(service *assets.Service) *AssetPlannerAgent {
	return &AssetPlannerAgent{service: service}
}

// Name implements orchestrator.Agent.
func (a *AssetPlannerAgent) Name() string { return "dzine_asset_agent" }

// Run implements orchestrator.Agent.
func (a *AssetPlannerAgent) Run(ctx context.Context, rc *models.RunContext) (bool, error) {
	var products []models.TopProduct
	if err := fsutil.ReadJSON(filepath.Join(rc.RootDir, "inputs", "products.json"), &products); err != nil {
		return false, fmt.Errorf("read products.json: %w", err)
	}

	resolveDir := filepath.Join(rc.RootDir, "resolve")
	plan, err := a.service.Run(ctx, rc.RunSlug, resolveDir, products)
	if err != nil {
		return false, err
	}
	return len(plan.Specs) == len(products), nil
}
