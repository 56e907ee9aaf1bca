// Package tts plans the narration timeline for a run's finished script.
// It never synthesizes audio — the TTS provider is out of scope per
// spec.md's Non-goals — it only assigns voice and timing metadata a
// downstream renderer consumes.
package tts

import (
	"context"
	"fmt"
	"strings"

	"github.com/ridgeline-media/topfive/pkg/models"
)

// wordsPerMinute is the assumed narration pace used to estimate segment
// duration when a VoicePlanner is not supplied.
const wordsPerMinute = 150

// VoicePlanner is the external collaborator that estimates a spoken
// line's actual duration and assigns it a voice (a TTS provider's
// "dry-run" or metadata endpoint, or a stub in tests). Implementations
// are supplied by the caller; this package only defines the seam.
type VoicePlanner interface {
	EstimateDurationMS(ctx context.Context, text, voice string) (int64, error)
}

// Planner builds a NarrationPlan from a script body and a run's ranked
// products.
type Planner struct {
	backend VoicePlanner
	voice   string
}

// NewPlanner builds a Planner. voice is the narrator voice identifier
// passed to backend for every segment; backend may be nil, in which
// case duration is estimated from wordsPerMinute instead of a real
// provider call.
func NewPlanner(backend VoicePlanner, voice string) *Planner {
	return &Planner{backend: backend, voice: voice}
}

// Plan splits scriptBody into one narration segment per ranked product
// (matched by product name), in rank order, and stamps each with a
// start offset and estimated duration.
func (p *Planner) Plan(ctx context.Context, runSlug, scriptBody string, products []models.TopProduct) (models.NarrationPlan, error) {
	plan := models.NarrationPlan{RunSlug: runSlug, Segments: make([]models.NarrationSegment, 0, len(products))}

	var cursor int64
	for _, prod := range products {
		text := segmentFor(scriptBody, prod.ProductName)
		duration, err := p.durationFor(ctx, text)
		if err != nil {
			return models.NarrationPlan{}, fmt.Errorf("estimate duration for %q: %w", prod.ProductName, err)
		}
		plan.Segments = append(plan.Segments, models.NarrationSegment{
			Rank:        prod.Rank,
			ProductName: prod.ProductName,
			Text:        text,
			Voice:       p.voice,
			StartMS:     cursor,
			DurationMS:  duration,
		})
		cursor += duration
	}
	plan.TotalDurationMS = cursor
	return plan, nil
}

func (p *Planner) durationFor(ctx context.Context, text string) (int64, error) {
	if p.backend != nil {
		return p.backend.EstimateDurationMS(ctx, text, p.voice)
	}
	words := len(strings.Fields(text))
	if words == 0 {
		return 0, nil
	}
	return int64(words) * 60_000 / wordsPerMinute, nil
}

// segmentFor extracts the paragraph of scriptBody mentioning
// productName, falling back to the whole body when the
// script doesn't name the product verbatim (e.g. a stubbed draft in
// tests).
func segmentFor(scriptBody, productName string) string {
	for _, para := range strings.Split(scriptBody, "\n\n") {
		if strings.Contains(para, productName) {
			return strings.TrimSpace(para)
		}
	}
	return scriptBody
}
