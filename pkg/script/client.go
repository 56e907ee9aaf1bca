// Package script orchestrates the draft/refine LLM pipeline into a
// parsed, metadata-annotated video script: prompt orchestration,
// browser-then-HTTP provider fallback, and deterministic text parsing.
// The LLM providers themselves are external collaborators (spec.md §1);
// this package owns only the interfaces it calls them through.
package script

import (
	"context"
	"time"
)

// GenerateInput is the Go-side representation of one draft/refine call.
type GenerateInput struct {
	Prompt   string
	Timeout  time.Duration
}

// GenerateOutput carries an LLM call's text plus enough telemetry to
// populate script_gen_meta.json's per-call breakdown.
type GenerateOutput struct {
	Text          string
	Provider      string
	TokenEstimate int
}

// DraftClient produces the first-pass script text from a draft prompt.
type DraftClient interface {
	Draft(ctx context.Context, input GenerateInput) (GenerateOutput, error)
}

// RefineClient rewrites a draft using a refine prompt template that has
// already had the draft substituted into it.
type RefineClient interface {
	Refine(ctx context.Context, input GenerateInput) (GenerateOutput, error)
}
