package agents

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ridgeline-media/topfive/pkg/fsutil"
	"github.com/ridgeline-media/topfive/pkg/models"
	"github.com/ridgeline-media/topfive/pkg/rank"
)

// RankAgent wraps rank.Ranker, re-reading verified.json and an optional
// subcategory_contract.json, and writes the Top-5 products.json the
// rank stage's QA gate checks.
type RankAgent struct {
	ranker *rank.Ranker
}

// NewRankAgent wraps a rank.Ranker.
func NewRankAgent(ranker *rank.Ranker) *RankAgent {
	return &RankAgent{ranker: ranker}
}

// Name implements orchestrator.Agent.
func (a *RankAgent) Name() string { return "top5_ranker" }

// Run implements orchestrator.Agent.
func (a *RankAgent) Run(_ context.Context, rc *models.RunContext) (bool, error) {
	var verified []models.VerifiedProduct
	if err := fsutil.ReadJSON(filepath.Join(rc.RootDir, "inputs", "verified.json"), &verified); err != nil {
		return false, fmt.Errorf("read verified.json: %w", err)
	}

	var contract *models.SubcategoryContract
	contractPath := filepath.Join(rc.RootDir, "inputs", "subcategory_contract.json")
	if _, err := os.Stat(contractPath); err == nil {
		contract = &models.SubcategoryContract{}
		if err := fsutil.ReadJSON(contractPath, contract); err != nil {
			return false, fmt.Errorf("read subcategory_contract.json: %w", err)
		}
	}

	products := a.ranker.Rank(verified, contract)
	if err := fsutil.WriteJSONAtomic(filepath.Join(rc.RootDir, "inputs", "products.json"), products); err != nil {
		return false, fmt.Errorf("write products.json: %w", err)
	}
	return len(products) == 5, nil
}
