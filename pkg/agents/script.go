package agents

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/ridgeline-media/topfive/pkg/fsutil"
	"github.com/ridgeline-media/topfive/pkg/models"
	"github.com/ridgeline-media/topfive/pkg/script"
)

// defaultTargetMinutes is the script length used when no target has
// been set via SetTargetMinutes, matching top5_video_pipeline.py's
// "Script A (8 min target)" default variant.
const defaultTargetMinutes = 8

// ScriptProducer builds the draft prompt and refine template from the
// run's ranked products and delegates to script.Service, which already
// writes every file the script stage's invariants need.
type ScriptProducer struct {
	service       *script.Service
	targetMinutes int
}

// NewScriptProducer wraps a script.Service.
func NewScriptProducer(service *script.Service) *ScriptProducer {
	return &ScriptProducer{service: service, targetMinutes: defaultTargetMinutes}
}

// SetTargetMinutes overrides the script length target (e.g. 12 for the
// long-form variant). Grounded on top5_video_pipeline.py's build_script
// long_version flag, which chooses between an "8-minute" and
// "12-minute" target_label; this repo generates one script per run
// rather than both variants, selected by the caller up front.
func (a *ScriptProducer) SetTargetMinutes(minutes int) {
	a.targetMinutes = minutes
}

// Name implements orchestrator.Agent.
func (a *ScriptProducer) Name() string { return "script_producer" }

// Run implements orchestrator.Agent.
func (a *ScriptProducer) Run(ctx context.Context, rc *models.RunContext) (bool, error) {
	var products []models.TopProduct
	if err := fsutil.ReadJSON(filepath.Join(rc.RootDir, "inputs", "products.json"), &products); err != nil {
		return false, fmt.Errorf("read products.json: %w", err)
	}

	outDir := filepath.Join(rc.RootDir, "script")
	meta, err := a.service.Run(ctx, draftPrompt(rc.Niche, products, a.targetMinutes), refineTemplate(), outDir)
	if err != nil {
		return false, err
	}
	return len(meta.Calls) > 0, nil
}

// draftPrompt builds the first-pass script generation instruction,
// naming every ranked product in rank order so the draft covers all
// five the reviewer gate's [PRODUCT_N] marker count expects. targetMinutes
// sets the pacing target the generator writes toward (8 or 12, per
// top5_video_pipeline.py's short/long script variants).
func draftPrompt(niche string, products []models.TopProduct, targetMinutes int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Write a %d-minute-target Top-5 video script for %q. Cover exactly these five products in rank order, ", targetMinutes, niche)
	b.WriteString("marking the start of each product's section with [PRODUCT_N] (N = rank):\n\n")
	for _, p := range products {
		fmt.Fprintf(&b, "%d. %s %s — %s. Key claims: %s\n", p.Rank, p.Brand, p.ProductName, p.CategoryLabel, strings.Join(p.KeyClaims, "; "))
	}
	return b.String()
}

// refineTemplate is the refine-pass instruction handed to
// script.Generator.Refine; it must contain script.RefinePlaceholder
// literally for the raw draft substitution to take effect.
func refineTemplate() string {
	return "Tighten pacing and punch up the hooks without changing the product order or claims:\n\n" + script.RefinePlaceholder
}
