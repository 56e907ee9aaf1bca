package run

import (
	"context"
	"fmt"
	"time"

	"github.com/ridgeline-media/topfive/pkg/models"
	"github.com/ridgeline-media/topfive/pkg/retry"
)

// Renderer invokes the external render subprocess for a run. Out of
// scope per spec.md §1 — this interface is the seam finalize calls
// through; the actual renderer lives outside this repository.
type Renderer interface {
	Render(ctx context.Context, runSlug string) error
}

// Uploader invokes the external upload subprocess for a rendered run.
type Uploader interface {
	Upload(ctx context.Context, runSlug string) error
}

// FinalizeOptions bounds the retry policy finalize applies to each of
// render and upload, per spec.md §6's `run_with_retries(attempts, backoff)`.
type FinalizeOptions struct {
	MaxRetries int
	BaseDelay  time.Duration
}

// DefaultFinalizeOptions mirrors the retry defaults used elsewhere for
// subprocess-class external calls.
func DefaultFinalizeOptions() FinalizeOptions {
	return FinalizeOptions{MaxRetries: 2, BaseDelay: 5 * time.Second}
}

// Finalize advances an approved run through rendering and uploading to
// published. It requires both gates approved (ErrRequiresApproval
// otherwise); a render or upload failure after retries transitions the
// run to StatusFailed with its history preserved, never discarded.
func (s *Store) Finalize(ctx context.Context, runSlug string, renderer Renderer, uploader Uploader, opts FinalizeOptions) (*models.PipelineState, error) {
	state, err := s.Load(runSlug)
	if err != nil {
		return nil, err
	}
	if !state.Gate1.Approved || !state.Gate2.Approved {
		return nil, ErrRequiresApproval
	}

	if err := s.transitionAndRun(state, models.StatusRendering, "rendering", opts, func() error {
		return renderer.Render(ctx, runSlug)
	}); err != nil {
		return state, err
	}

	if err := s.transitionAndRun(state, models.StatusUploading, "uploading", opts, func() error {
		return uploader.Upload(ctx, runSlug)
	}); err != nil {
		return state, err
	}

	now := time.Now().UTC()
	state.Status = models.StatusPublished
	state.AppendHistory(now, string(state.Status), "finalize complete")
	if err := s.Save(state); err != nil {
		return state, err
	}
	return state, nil
}

// transitionAndRun moves state into the given status, persists it, runs
// fn under the retry engine, and on failure marks the run failed with
// the original error preserved in history.
func (s *Store) transitionAndRun(state *models.PipelineState, status models.RunStatus, label string, opts FinalizeOptions, fn func() error) error {
	now := time.Now().UTC()
	state.Status = status
	state.AppendHistory(now, string(status), label+" started")
	if err := s.Save(state); err != nil {
		return err
	}

	err := retry.WithRetry(fn, retry.Options{MaxRetries: opts.MaxRetries, BaseDelay: opts.BaseDelay})
	if err != nil {
		failedAt := time.Now().UTC()
		state.Status = models.StatusFailed
		state.AppendHistory(failedAt, string(state.Status), fmt.Sprintf("%s failed: %v", label, err))
		if saveErr := s.Save(state); saveErr != nil {
			return saveErr
		}
		return fmt.Errorf("%s: %w", label, err)
	}
	return nil
}
