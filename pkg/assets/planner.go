// Package assets plans the per-product image generation requests for a
// run's five ranked products. It never calls a real image backend —
// that collaborator is out of scope per spec.md's Non-goals — it only
// builds prompts and writes the plan a downstream tool consumes.
package assets

import (
	"context"
	"fmt"

	"github.com/ridgeline-media/topfive/pkg/models"
)

// ImagePlanner is the external collaborator that turns a prompt into a
// usable reference image URL (a Dzine-like generation backend, or a stub
// in tests). Implementations are supplied by the caller; this package
// only defines the seam.
type ImagePlanner interface {
	Plan(ctx context.Context, prompt string) (referenceURL string, err error)
}

// Planner builds an AssetPlan for a run's ranked products.
type Planner struct {
	backend ImagePlanner
}

// NewPlanner builds a Planner over the given image backend. backend may
// be nil, in which case Plan leaves ReferenceURL empty on every spec —
// useful for dry runs and for callers that only care about the prompts.
func NewPlanner(backend ImagePlanner) *Planner {
	return &Planner{backend: backend}
}

// Plan builds one AssetSpec per ranked product, in rank order.
func (p *Planner) Plan(ctx context.Context, runSlug string, products []models.TopProduct) (models.AssetPlan, error) {
	plan := models.AssetPlan{RunSlug: runSlug, Specs: make([]models.AssetSpec, 0, len(products))}
	for _, prod := range products {
		spec := models.AssetSpec{
			Rank:        prod.Rank,
			ProductName: prod.ProductName,
			Prompt:      buildPrompt(prod),
			Style:       "product-hero, clean background, 16:9",
		}
		if p.backend != nil {
			refURL, err := p.backend.Plan(ctx, spec.Prompt)
			if err != nil {
				return models.AssetPlan{}, fmt.Errorf("plan asset for %q: %w", prod.ProductName, err)
			}
			spec.ReferenceURL = refURL
		}
		plan.Specs = append(plan.Specs, spec)
	}
	return plan, nil
}

// buildPrompt derives a generation prompt from a ranked product's brand,
// name, and category label.
func buildPrompt(p models.TopProduct) string {
	return fmt.Sprintf("%s %s, %s placement, studio product photography", p.Brand, p.ProductName, p.CategoryLabel)
}
