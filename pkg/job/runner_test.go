package job

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ridgeline-media/topfive/pkg/models"
)

// scriptedLLM plays back a fixed sequence of turns, one per Call
// invocation, regardless of history content.
type scriptedLLM struct {
	turns []Turn
	errs  []error
	calls int
}

func (s *scriptedLLM) Call(_ context.Context, _ []Message) (Turn, error) {
	i := s.calls
	s.calls++
	if i < len(s.errs) && s.errs[i] != nil {
		return Turn{}, s.errs[i]
	}
	if i >= len(s.turns) {
		return Turn{Text: "nothing more to do"}, nil
	}
	return s.turns[i], nil
}

func runnerConfig() Config {
	cfg := DefaultConfig()
	cfg.MaxIterations = 5
	cfg.CheckpointInterval = 2
	return cfg
}

func TestRunner_RunJob_CompletesOnCompleteTool(t *testing.T) {
	store := NewStore(t.TempDir())
	j := newTestJob("job-1")
	require.NoError(t, store.Create(j))

	llm := &scriptedLLM{turns: []Turn{
		{Calls: []ToolCall{{Name: "complete", Args: args(t, completeArgs{Summary: "done"})}}},
	}}
	runner := NewRunner(store, llm, runnerConfig())

	require.NoError(t, runner.RunJob(context.Background(), "job-1"))

	reloaded, err := store.Load("job-1")
	require.NoError(t, err)
	assert.Equal(t, models.JobStatusCompleted, reloaded.Status)
	assert.Equal(t, 100, reloaded.ProgressPercent)
}

func TestRunner_RunJob_BlocksOnRequestPermission(t *testing.T) {
	store := NewStore(t.TempDir())
	j := newTestJob("job-1")
	require.NoError(t, store.Create(j))

	llm := &scriptedLLM{turns: []Turn{
		{Calls: []ToolCall{{Name: "request_permission", Args: args(t, requestPermissionArgs{
			Action: "risky thing", RiskLevel: "high",
		})}}},
	}}
	runner := NewRunner(store, llm, runnerConfig())

	require.NoError(t, runner.RunJob(context.Background(), "job-1"))

	reloaded, err := store.Load("job-1")
	require.NoError(t, err)
	assert.Equal(t, models.JobStatusBlocked, reloaded.Status)
	require.Len(t, reloaded.Permissions, 1)
	assert.Nil(t, reloaded.Permissions[0].Approved)
}

func TestRunner_RunJob_FailsOnLLMError(t *testing.T) {
	store := NewStore(t.TempDir())
	j := newTestJob("job-1")
	require.NoError(t, store.Create(j))

	llm := &scriptedLLM{errs: []error{errors.New("provider unavailable")}}
	runner := NewRunner(store, llm, runnerConfig())

	require.NoError(t, runner.RunJob(context.Background(), "job-1"))

	reloaded, err := store.Load("job-1")
	require.NoError(t, err)
	assert.Equal(t, models.JobStatusFailed, reloaded.Status)
	assert.Contains(t, reloaded.Error, "provider unavailable")
}

func TestRunner_RunJob_SynthesizesPermissionAtMaxIterations(t *testing.T) {
	store := NewStore(t.TempDir())
	j := newTestJob("job-1")
	require.NoError(t, store.Create(j))

	// Every turn returns a no-op checkpoint update, never completing or
	// blocking, to exhaust MaxIterations.
	var turns []Turn
	for i := 0; i < 5; i++ {
		turns = append(turns, Turn{Calls: []ToolCall{{Name: "update_checkpoint", Args: args(t, checkpointArgs{
			Summary: "still working",
		})}}})
	}
	llm := &scriptedLLM{turns: turns}
	runner := NewRunner(store, llm, runnerConfig())

	require.NoError(t, runner.RunJob(context.Background(), "job-1"))

	reloaded, err := store.Load("job-1")
	require.NoError(t, err)
	assert.Equal(t, models.JobStatusBlocked, reloaded.Status)
	require.Len(t, reloaded.Permissions, 1)
	assert.Equal(t, continuePermissionAction, reloaded.Permissions[0].Action)
}

func TestRunner_RunJob_TextOnlyEndSynthesizesPermission(t *testing.T) {
	store := NewStore(t.TempDir())
	j := newTestJob("job-1")
	require.NoError(t, store.Create(j))

	llm := &scriptedLLM{turns: []Turn{{Text: "I'm not sure what to do next."}}}
	runner := NewRunner(store, llm, runnerConfig())

	require.NoError(t, runner.RunJob(context.Background(), "job-1"))

	reloaded, err := store.Load("job-1")
	require.NoError(t, err)
	assert.Equal(t, models.JobStatusBlocked, reloaded.Status)
	require.Len(t, reloaded.Permissions, 1)
}

func TestRunner_RunJob_RejectsAlreadyTerminalJob(t *testing.T) {
	store := NewStore(t.TempDir())
	j := newTestJob("job-1")
	j.Status = models.JobStatusCompleted
	require.NoError(t, store.Create(j))

	runner := NewRunner(store, &scriptedLLM{}, runnerConfig())
	err := runner.RunJob(context.Background(), "job-1")
	assert.Error(t, err)
}

func TestRunner_RunJob_StopsWhenExternallyCanceledMidLoop(t *testing.T) {
	store := NewStore(t.TempDir())
	j := newTestJob("job-1")
	require.NoError(t, store.Create(j))

	llm := &cancelingLLM{store: store, jobID: "job-1"}
	runner := NewRunner(store, llm, runnerConfig())

	require.NoError(t, runner.RunJob(context.Background(), "job-1"))

	reloaded, err := store.Load("job-1")
	require.NoError(t, err)
	assert.Equal(t, models.JobStatusCanceled, reloaded.Status)
}

// cancelingLLM cancels the job out-of-band on its first call, simulating
// an admin-issued cancel_job landing between iterations.
type cancelingLLM struct {
	store *Store
	jobID string
	calls int
}

func (c *cancelingLLM) Call(_ context.Context, _ []Message) (Turn, error) {
	c.calls++
	if c.calls == 1 {
		j, _ := c.store.Load(c.jobID)
		j.Status = models.JobStatusCanceled
		_ = c.store.Save(j)
	}
	return Turn{Calls: []ToolCall{{Name: "update_checkpoint", Args: []byte(`{"summary":"working"}`)}}}, nil
}
