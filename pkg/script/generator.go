package script

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/ridgeline-media/topfive/pkg/models"
)

// draftTimeout bounds each draft/refine LLM call, per spec.md §4.7 step 1.
const draftTimeout = 120 * time.Second

// RefinePlaceholder is the literal token a refine prompt template must
// contain; Generator.Refine substitutes the raw draft into it.
const RefinePlaceholder = "(paste draft here)"

// Generator runs the draft → refine pipeline, preferring a browser-
// driven LLM session and falling back to an HTTP client per call.
type Generator struct {
	browserDraft  DraftClient // nil disables the browser tier entirely
	httpDraft     DraftClient
	browserRefine RefineClient
	httpRefine    RefineClient
	useBrowser    bool
}

// NewGenerator builds a Generator. useBrowser=false skips the browser
// tier even when browserDraft/browserRefine are non-nil, per spec.md
// §4.7 step 1's "fall back... if use_browser=false".
func NewGenerator(browserDraft DraftClient, httpDraft DraftClient, browserRefine RefineClient, httpRefine RefineClient, useBrowser bool) *Generator {
	return &Generator{
		browserDraft:  browserDraft,
		httpDraft:     httpDraft,
		browserRefine: browserRefine,
		httpRefine:    httpRefine,
		useBrowser:    useBrowser,
	}
}

// Draft runs the first LLM pass over draftPrompt, preferring the
// browser provider and falling back to HTTP on failure.
func (g *Generator) Draft(ctx context.Context, draftPrompt string) (string, models.ScriptCallMeta, error) {
	ctx, cancel := context.WithTimeout(ctx, draftTimeout)
	defer cancel()

	started := time.Now()
	if g.useBrowser && g.browserDraft != nil {
		out, err := g.browserDraft.Draft(ctx, GenerateInput{Prompt: draftPrompt, Timeout: draftTimeout})
		if err == nil {
			return out.Text, callMeta("draft", out, started), nil
		}
	}

	if g.httpDraft == nil {
		return "", models.ScriptCallMeta{}, fmt.Errorf("script draft: no HTTP fallback provider configured")
	}
	out, err := g.httpDraft.Draft(ctx, GenerateInput{Prompt: draftPrompt, Timeout: draftTimeout})
	if err != nil {
		return "", models.ScriptCallMeta{}, fmt.Errorf("script draft failed on both providers: %w", err)
	}
	return out.Text, callMeta("draft", out, started), nil
}

// Refine substitutes rawDraft into refineTemplate and runs the second
// LLM pass, preferring the browser provider with the same fallback
// discipline as Draft. On total failure it returns rawDraft unchanged,
// per spec.md §4.7 step 2's "on failure, fall back to raw".
func (g *Generator) Refine(ctx context.Context, rawDraft, refineTemplate string) (string, models.ScriptCallMeta, error) {
	prompt := strings.Replace(refineTemplate, RefinePlaceholder, rawDraft, 1)

	ctx, cancel := context.WithTimeout(ctx, draftTimeout)
	defer cancel()

	started := time.Now()
	if g.useBrowser && g.browserRefine != nil {
		out, err := g.browserRefine.Refine(ctx, GenerateInput{Prompt: prompt, Timeout: draftTimeout})
		if err == nil {
			return out.Text, callMeta("refine", out, started), nil
		}
	}

	if g.httpRefine != nil {
		out, err := g.httpRefine.Refine(ctx, GenerateInput{Prompt: prompt, Timeout: draftTimeout})
		if err == nil {
			return out.Text, callMeta("refine", out, started), nil
		}
	}

	return rawDraft, models.ScriptCallMeta{Stage: "refine", Provider: "fallback-raw"}, nil
}

func callMeta(stage string, out GenerateOutput, started time.Time) models.ScriptCallMeta {
	return models.ScriptCallMeta{
		Stage:         stage,
		Provider:      out.Provider,
		DurationMS:    time.Since(started).Milliseconds(),
		TokenEstimate: out.TokenEstimate,
	}
}
