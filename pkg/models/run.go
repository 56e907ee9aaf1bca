package models

import "time"

// RunStatus is the pipeline status of a video production run, per
// spec.md §3.
type RunStatus string

// Recognized run statuses. Transitions are monotonic except through an
// explicit reject_gateN, which rewinds to the corresponding *_waiting_*
// state.
const (
	StatusDraftWaitingGate1  RunStatus = "draft_waiting_gate_1"
	StatusAssetsWaitingGate2 RunStatus = "assets_waiting_gate_2"
	StatusRendering          RunStatus = "rendering"
	StatusUploading          RunStatus = "uploading"
	StatusPublished          RunStatus = "published"
	StatusFailed             RunStatus = "failed"
)

// GateDecision records the outcome of a human approval gate.
type GateDecision struct {
	Approved   bool       `json:"approved"`
	Rejected   bool       `json:"rejected"`
	Reviewer   string     `json:"reviewer,omitempty"`
	Notes      string     `json:"notes,omitempty"`
	DecisionAt *time.Time `json:"decision_at,omitempty"`
}

// HistoryEntry is one append-only row in a run's or job's audit trail.
type HistoryEntry struct {
	Timestamp time.Time `json:"ts"`
	Status    string    `json:"status"`
	Reason    string    `json:"reason,omitempty"`
}

// PipelineState is the persisted, per-run state document at
// artifacts/videos/<run_slug>/pipeline_state.json.
type PipelineState struct {
	RunSlug   string            `json:"run_slug"`
	Theme     string            `json:"theme"`
	Category  string            `json:"category"`
	Status    RunStatus         `json:"status"`
	Gate1     GateDecision      `json:"gate1"`
	Gate2     GateDecision      `json:"gate2"`
	Config    map[string]any    `json:"config,omitempty"`
	Artifacts map[string]string `json:"artifacts"`
	History   []HistoryEntry    `json:"history"`
}

// AppendHistory records a status change, preserving insertion order
// (spec.md §5 ordering guarantees). now is passed in rather than read
// from time.Now() so callers control the timestamp for deterministic
// persistence and testing.
func (s *PipelineState) AppendHistory(now time.Time, status, reason string) {
	s.History = append(s.History, HistoryEntry{Timestamp: now, Status: status, Reason: reason})
}

// RunContext is the in-memory, per-run execution context threaded through
// the orchestrator. It is created when stage NICHE begins and discarded
// once the run directory is archived; nothing here is persisted directly
// (PipelineState is the durable twin).
type RunContext struct {
	RunSlug         string
	Niche           string
	Category        string
	RootDir         string
	Bus             *Bus
	CompletedStages []string
	Aborted         bool
	Errors          []string
}

// MarkStageComplete appends stage to CompletedStages if not already
// present.
func (c *RunContext) MarkStageComplete(stage string) {
	for _, s := range c.CompletedStages {
		if s == stage {
			return
		}
	}
	c.CompletedStages = append(c.CompletedStages, stage)
}

// AddError records a stage error on the context. Stages never silently
// swallow errors (spec.md §7); this is the single accumulation point.
func (c *RunContext) AddError(err error) {
	if err == nil {
		return
	}
	c.Errors = append(c.Errors, err.Error())
}
