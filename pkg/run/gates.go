package run

import (
	"fmt"
	"time"

	"github.com/ridgeline-media/topfive/pkg/models"
)

// ErrRequiresApproval is returned by Finalize when either gate has not
// been approved yet, per the "finalize raises requires_approval if
// either gate's approved is false" testable property.
var ErrRequiresApproval = fmt.Errorf("finalize requires both gates approved")

// decided reports whether a gate has already recorded a terminal
// decision for its current regeneration cycle.
func decided(g models.GateDecision) bool {
	return g.Approved || g.Rejected
}

// ApproveGate1 records gate-1 approval and advances the run to asset
// packaging.
func (s *Store) ApproveGate1(runSlug, reviewer, notes string) (*models.PipelineState, error) {
	state, err := s.Load(runSlug)
	if err != nil {
		return nil, err
	}
	if state.Status != models.StatusDraftWaitingGate1 {
		return nil, fmt.Errorf("%w: gate1 approve requires %s, got %s", ErrWrongStatus, models.StatusDraftWaitingGate1, state.Status)
	}
	if decided(state.Gate1) {
		return nil, ErrGateAlreadyDecided
	}

	now := time.Now().UTC()
	state.Gate1 = models.GateDecision{Approved: true, Reviewer: reviewer, Notes: notes, DecisionAt: &now}
	state.Status = models.StatusAssetsWaitingGate2
	state.AppendHistory(now, string(state.Status), "gate1 approved")
	return state, s.Save(state)
}

// RejectGate1 records gate-1 rejection. The run stays at
// StatusDraftWaitingGate1 for a regeneration pass; callers must call
// ResetGate1 once a fresh draft is produced before gate1 can be decided
// again.
func (s *Store) RejectGate1(runSlug, reviewer, notes string) (*models.PipelineState, error) {
	state, err := s.Load(runSlug)
	if err != nil {
		return nil, err
	}
	if state.Status != models.StatusDraftWaitingGate1 {
		return nil, fmt.Errorf("%w: gate1 reject requires %s, got %s", ErrWrongStatus, models.StatusDraftWaitingGate1, state.Status)
	}
	if decided(state.Gate1) {
		return nil, ErrGateAlreadyDecided
	}

	now := time.Now().UTC()
	state.Gate1 = models.GateDecision{Rejected: true, Reviewer: reviewer, Notes: notes, DecisionAt: &now}
	state.AppendHistory(now, string(state.Status), "gate1 rejected: "+notes)
	return state, s.Save(state)
}

// ResetGate1 clears a rejected gate-1 decision so a regenerated draft can
// be resubmitted for approval.
func (s *Store) ResetGate1(runSlug string) (*models.PipelineState, error) {
	state, err := s.Load(runSlug)
	if err != nil {
		return nil, err
	}
	state.Gate1 = models.GateDecision{}
	return state, s.Save(state)
}

// ApproveGate2 records gate-2 approval. The run remains at
// StatusAssetsWaitingGate2; Finalize is the operation that advances it
// into rendering once both gates are approved.
func (s *Store) ApproveGate2(runSlug, reviewer, notes string) (*models.PipelineState, error) {
	state, err := s.Load(runSlug)
	if err != nil {
		return nil, err
	}
	if state.Status != models.StatusAssetsWaitingGate2 {
		return nil, fmt.Errorf("%w: gate2 approve requires %s, got %s", ErrWrongStatus, models.StatusAssetsWaitingGate2, state.Status)
	}
	if decided(state.Gate2) {
		return nil, ErrGateAlreadyDecided
	}

	now := time.Now().UTC()
	state.Gate2 = models.GateDecision{Approved: true, Reviewer: reviewer, Notes: notes, DecisionAt: &now}
	state.AppendHistory(now, string(state.Status), "gate2 approved")
	return state, s.Save(state)
}

// RejectGate2 records gate-2 rejection. The run stays at
// StatusAssetsWaitingGate2 for an asset-regeneration pass.
func (s *Store) RejectGate2(runSlug, reviewer, notes string) (*models.PipelineState, error) {
	state, err := s.Load(runSlug)
	if err != nil {
		return nil, err
	}
	if state.Status != models.StatusAssetsWaitingGate2 {
		return nil, fmt.Errorf("%w: gate2 reject requires %s, got %s", ErrWrongStatus, models.StatusAssetsWaitingGate2, state.Status)
	}
	if decided(state.Gate2) {
		return nil, ErrGateAlreadyDecided
	}

	now := time.Now().UTC()
	state.Gate2 = models.GateDecision{Rejected: true, Reviewer: reviewer, Notes: notes, DecisionAt: &now}
	state.AppendHistory(now, string(state.Status), "gate2 rejected: "+notes)
	return state, s.Save(state)
}

// ResetGate2 clears a rejected gate-2 decision so regenerated assets can
// be resubmitted for approval.
func (s *Store) ResetGate2(runSlug string) (*models.PipelineState, error) {
	state, err := s.Load(runSlug)
	if err != nil {
		return nil, err
	}
	state.Gate2 = models.GateDecision{}
	return state, s.Save(state)
}
