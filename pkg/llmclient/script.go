package llmclient

import (
	"context"

	"github.com/ridgeline-media/topfive/pkg/script"
)

// ScriptAdapter satisfies script.DraftClient and script.RefineClient
// against the same OpenAIClient, since both calls are one-shot text
// completions over a single prompt string.
type ScriptAdapter struct {
	client *OpenAIClient
}

// NewScriptAdapter wraps client for use as an HTTP-tier draft/refine
// provider in script.NewGenerator.
func NewScriptAdapter(client *OpenAIClient) *ScriptAdapter {
	return &ScriptAdapter{client: client}
}

// Draft implements script.DraftClient.
func (a *ScriptAdapter) Draft(ctx context.Context, input script.GenerateInput) (script.GenerateOutput, error) {
	return a.call(ctx, input)
}

// Refine implements script.RefineClient.
func (a *ScriptAdapter) Refine(ctx context.Context, input script.GenerateInput) (script.GenerateOutput, error) {
	return a.call(ctx, input)
}

func (a *ScriptAdapter) call(ctx context.Context, input script.GenerateInput) (script.GenerateOutput, error) {
	text, tokens, err := a.client.complete(ctx, input.Prompt)
	if err != nil {
		return script.GenerateOutput{}, err
	}
	return script.GenerateOutput{Text: text, Provider: "openai:" + a.client.model, TokenEstimate: tokens}, nil
}
