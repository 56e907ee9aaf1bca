package llmclient

import (
	"context"
	"strings"

	"github.com/ridgeline-media/topfive/pkg/job"
)

// JobAdapter satisfies job.LLMClient by flattening the conversation
// history into a single prompt. Tool-call emission is a provider-
// specific wire format out of scope per spec.md §1; a turn built this
// way always ends on plain text, which job.Runner already treats as a
// normal (non-terminal) loop exit.
type JobAdapter struct {
	client *OpenAIClient
}

// NewJobAdapter wraps client for use as a job.LLMClient.
func NewJobAdapter(client *OpenAIClient) *JobAdapter {
	return &JobAdapter{client: client}
}

// Call implements job.LLMClient.
func (a *JobAdapter) Call(ctx context.Context, history []job.Message) (job.Turn, error) {
	text, _, err := a.client.complete(ctx, flatten(history))
	if err != nil {
		return job.Turn{}, err
	}
	return job.Turn{Text: text}, nil
}

func flatten(history []job.Message) string {
	var b strings.Builder
	for _, m := range history {
		b.WriteString(m.Role)
		b.WriteString(": ")
		b.WriteString(m.Content)
		b.WriteString("\n\n")
	}
	return b.String()
}
