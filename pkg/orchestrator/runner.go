package orchestrator

import (
	"context"
	"fmt"
	"time"

	"github.com/ridgeline-media/topfive/pkg/models"
)

// Runner drives a run through StageOrder, running each stage's agents,
// then its QA/security gates (either can abort), then its reviewer
// (warnings only). Generalizes queue.Worker.pollAndProcess's "claim, run
// to terminal, persist" shape to a fixed multi-stage chain instead of a
// single session, and services.StageService's stage bookkeeping to an
// in-memory RunContext instead of a database row.
type Runner struct {
	agents   map[string][]Agent
	qa       Gate
	security Gate
	reviewer Gate
}

// NewRunner wires the per-stage agent registry and the three gates. qa,
// security, and reviewer may each be nil to disable that check.
func NewRunner(agents map[string][]Agent, qa, security, reviewer Gate) *Runner {
	return &Runner{agents: agents, qa: qa, security: security, reviewer: reviewer}
}

// Run executes every stage in StageOrder against rc, in order, stopping
// at the first stage whose agent fails or whose QA/security gate
// reports a violation. rc.Aborted and rc.Errors record why.
func (r *Runner) Run(ctx context.Context, rc *models.RunContext) error {
	for _, stage := range StageOrder {
		for _, a := range r.agents[stage] {
			ok, err := a.Run(ctx, rc)
			if err != nil {
				rc.AddError(fmt.Errorf("stage %s agent %s: %w", stage, a.Name(), err))
				rc.Aborted = true
				r.publishGateResult(rc, stage, false, err.Error())
				return err
			}
			if !ok {
				err := fmt.Errorf("stage %s: agent %s did not succeed", stage, a.Name())
				rc.AddError(err)
				rc.Aborted = true
				r.publishGateResult(rc, stage, false, err.Error())
				return err
			}
		}

		if abortErr := r.checkGate(rc, stage, r.qa, "qa_gatekeeper"); abortErr != nil {
			return abortErr
		}
		if abortErr := r.checkGate(rc, stage, r.security, "security_agent"); abortErr != nil {
			return abortErr
		}
		if r.reviewer != nil {
			// Reviewer findings are warnings, never an abort — publish
			// whatever it reports and move on, per spec.md §4.9.
			for _, v := range r.reviewer.Check(stage, rc) {
				r.publish(rc, stage, models.MsgReview, v.Reason)
			}
		}

		rc.MarkStageComplete(stage)
		r.publishGateResult(rc, stage, true, "")
	}
	return nil
}

// checkGate runs gate against stage and, on any violation, marks rc
// aborted, publishes the failures, and returns a non-nil error.
func (r *Runner) checkGate(rc *models.RunContext, stage string, gate Gate, sender string) error {
	if gate == nil {
		return nil
	}
	violations := gate.Check(stage, rc)
	if len(violations) == 0 {
		return nil
	}
	rc.Aborted = true
	for _, v := range violations {
		rc.AddError(fmt.Errorf("%s: %s", sender, v.Reason))
		r.publish(rc, stage, models.MsgGateFail, v.Reason)
	}
	return fmt.Errorf("%s rejected stage %s: %s", sender, stage, violations[0].Reason)
}

func (r *Runner) publishGateResult(rc *models.RunContext, stage string, passed bool, reason string) {
	msgType := models.MsgGatePass
	content := fmt.Sprintf("stage %s passed", stage)
	if !passed {
		msgType = models.MsgGateFail
		content = reason
	}
	r.publish(rc, stage, msgType, content)
}

func (r *Runner) publish(rc *models.RunContext, stage string, msgType models.MsgType, content string) {
	if rc.Bus == nil {
		return
	}
	rc.Bus.Publish(models.Message{
		Sender:    "orchestrator",
		Receiver:  models.BroadcastReceiver,
		Type:      msgType,
		Stage:     stage,
		Content:   content,
		Timestamp: time.Now(),
	})
}
