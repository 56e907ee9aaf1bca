// Package orchestrator drives a video production run through its fixed
// stage order, checking QA/security invariants after each stage and
// collecting reviewer warnings on the run's message bus, per spec.md
// §4.9.
package orchestrator

import (
	"context"

	"github.com/ridgeline-media/topfive/pkg/models"
)

// Agent is one pipeline participant. Run executes the agent's work
// against rc and reports success; a false return (with no error) means
// "ran to completion but the work did not succeed" (e.g. a verify stage
// that found zero usable products), distinct from err which means the
// agent itself failed to execute.
type Agent interface {
	Name() string
	Run(ctx context.Context, rc *models.RunContext) (bool, error)
}

// Stage names, in the fixed execution order from spec.md §4.9.
const (
	StageNiche     = "niche"
	StageResearch  = "research"
	StageVerify    = "verify"
	StageRank      = "rank"
	StageScript    = "script"
	StageAssets    = "assets"
	StageTTS       = "tts"
	StageManifest  = "manifest"
)

// StageOrder is the strict execution order every run follows. Outputs of
// one stage are fully flushed to disk before the next stage runs; stages
// re-read from disk rather than relying on in-memory state (spec.md §5).
var StageOrder = []string{
	StageNiche,
	StageResearch,
	StageVerify,
	StageRank,
	StageScript,
	StageAssets,
	StageTTS,
	StageManifest,
}

// Gate checks a stage's invariants after its agents have run. A non-empty
// []Violation from the QA gate or security agent aborts the run; the
// reviewer gate's violations are published to the bus as warnings and
// never abort.
type Gate interface {
	Check(stage string, rc *models.RunContext) []Violation
}

// Violation is one QA/security invariant failure.
type Violation struct {
	Stage  string
	Reason string
}
