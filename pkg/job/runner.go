package job

import (
	"context"
	"fmt"
	"time"

	"github.com/ridgeline-media/topfive/pkg/models"
)

// Message is one entry in the LLM conversation history driving a job.
type Message struct {
	Role    string // "system", "user", "assistant", "tool"
	Content string
}

// Turn is one LLM response: free text, zero or more tool calls, or both.
type Turn struct {
	Text  string
	Calls []ToolCall
}

// LLMClient is the external collaborator that drives the job's tool loop.
// Generalizes agent.LLMClient's "send history, get back text/tool-calls"
// shape without any provider-specific wiring (out of scope per spec.md §1).
type LLMClient interface {
	Call(ctx context.Context, history []Message) (Turn, error)
}

// continuePermissionAction is the synthesized permission reason used when
// a job runs out of iterations or ends on text with no tool call, per
// spec.md §4.8 step 4.
const continuePermissionAction = "Continue past iteration limit"

// Runner drives one job's tool loop, directly generalizing
// mcp.ToolExecutor.Execute's per-call dispatch and
// queue.Worker.pollAndProcess's claim-then-drive-to-terminal shape, but
// with the LLM call itself (not the job's whole lifetime) as the
// suspension point, and disk state as the source of truth for
// cancellation/external blocking instead of a context.CancelFunc
// registry.
type Runner struct {
	store *Store
	llm   LLMClient
	cfg   Config
}

// NewRunner wires a Store and LLMClient behind the configured iteration
// bounds.
func NewRunner(store *Store, llm LLMClient, cfg Config) *Runner {
	return &Runner{store: store, llm: llm, cfg: cfg}
}

// RunJob loads jobID, drives its tool loop until a terminal state,
// blocked, or a transient error, and persists every state change as it
// happens (per spec.md §4.8, "the worker only handles... terminal status
// update", generalized to per-iteration persistence here since the job
// store replaces a database transaction boundary).
func (r *Runner) RunJob(ctx context.Context, jobID string) error {
	j, err := r.store.Load(jobID)
	if err != nil {
		return fmt.Errorf("load job %s: %w", jobID, err)
	}
	if j.Status != models.JobStatusQueued && j.Status != models.JobStatusRunning {
		return fmt.Errorf("job %s not runnable from status %s", jobID, j.Status)
	}
	j.Status = models.JobStatusRunning
	now := time.Now().UTC()
	j.StartedAt = &now
	if err := r.store.Save(j); err != nil {
		return fmt.Errorf("mark job running: %w", err)
	}

	ws := NewWorkspace(r.store.Dir(j.ID))
	history := []Message{{Role: "system", Content: buildSystemPrompt(j)}}

	endedOnTextOnly := false

	for iteration := 1; iteration <= r.cfg.MaxIterations; iteration++ {
		// Reload from disk to detect external cancel/approval-driven block,
		// per spec.md §4.8 step 3's "reload state from disk" substep.
		reloaded, err := r.store.Load(j.ID)
		if err != nil {
			return fmt.Errorf("reload job %s: %w", jobID, err)
		}
		if reloaded.Status != models.JobStatusRunning {
			return nil
		}
		j = reloaded
		j.Iteration = iteration

		turn, err := r.llm.Call(ctx, history)
		if err != nil {
			j.Status = models.JobStatusFailed
			j.Error = err.Error()
			completedAt := time.Now().UTC()
			j.CompletedAt = &completedAt
			return r.store.Save(j)
		}

		if turn.Text != "" {
			history = append(history, Message{Role: "assistant", Content: turn.Text})
		}

		if len(turn.Calls) == 0 {
			endedOnTextOnly = true
			break
		}

		terminal := false
		for _, call := range turn.Calls {
			result := ws.Execute(call, j)
			history = append(history, Message{Role: "tool", Content: result.Content})

			switch result.Outcome {
			case OutcomeBlock:
				j.Status = models.JobStatusBlocked
				terminal = true
			case OutcomeComplete:
				j.Status = models.JobStatusCompleted
				completedAt := time.Now().UTC()
				j.CompletedAt = &completedAt
				terminal = true
			}
		}

		if iteration%r.cfg.CheckpointInterval == 0 && j.Checkpoint == "" {
			j.Checkpoint = fmt.Sprintf("iteration %d: in progress", iteration)
		}

		// A cancel that landed on disk during this iteration's LLM call
		// wins; saving j here would overwrite it with running.
		if current, err := r.store.Load(j.ID); err == nil && current.Status.Terminal() {
			return nil
		}
		if err := r.store.Save(j); err != nil {
			return fmt.Errorf("save job %s: %w", jobID, err)
		}
		if terminal {
			return nil
		}
	}

	if j.Status.Terminal() || j.Status == models.JobStatusBlocked {
		return nil
	}

	// Max iterations exhausted, or the LLM ended on text with no tool
	// call: synthesize a continuation permission rather than silently
	// stopping, per spec.md §4.8 step 4.
	_ = endedOnTextOnly
	j.Permissions = append(j.Permissions, models.PermissionRequest{
		PermID:    fmt.Sprintf("perm-%d", time.Now().UnixNano()),
		JobID:     j.ID,
		Action:    continuePermissionAction,
		Reason:    "reached the iteration limit without calling complete",
		RiskLevel: models.RiskLow,
		CreatedAt: time.Now().UTC(),
	})
	j.Status = models.JobStatusBlocked
	return r.store.Save(j)
}

// buildSystemPrompt assembles the job's system prompt from its type and
// accumulated instructions, per spec.md §4.8 step 2.
func buildSystemPrompt(j *models.Job) string {
	prompt := fmt.Sprintf("You are an autonomous job worker. Job type: %s. Task: %s", j.JobType, j.Prompt)
	for _, instr := range j.Instructions {
		prompt += "\n" + instr
	}
	return prompt
}
